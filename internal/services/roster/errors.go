package roster

// RosterError is a custom error type for roster errors
type RosterError string

// Error implements the error interface
func (e RosterError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        RosterError = "config cannot be nil"
	ErrNilUUIDGenerator RosterError = "UUID generator cannot be nil"
	ErrNilInput         RosterError = "input cannot be nil"
	ErrEmptyName        RosterError = "name cannot be empty"
	ErrGroupNotFound    RosterError = "group not found"
	ErrPlayerNotFound   RosterError = "player not found"
)
