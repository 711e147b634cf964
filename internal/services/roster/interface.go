package roster

// Service manages playing groups and their players.
// Operations take the current groups and return a new collection.
type Service interface {
	// CreateGroup adds an empty group
	CreateGroup(input *CreateGroupInput) (*CreateGroupOutput, error)

	// RemoveGroup deletes a group and its players
	RemoveGroup(input *RemoveGroupInput) (*RemoveGroupOutput, error)

	// AddPlayer adds a new player to a group
	AddPlayer(input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer deletes a player from whichever group contains it
	RemovePlayer(input *RemovePlayerInput) (*RemovePlayerOutput, error)
}
