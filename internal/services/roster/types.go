package roster

import (
	"github.com/KirkDiggler/birdie/internal/common/uuid"
	"github.com/KirkDiggler/birdie/internal/models"
)

// Config holds configuration for the roster service
type Config struct {
	// UUIDGenerator creates group and player IDs
	UUIDGenerator uuid.UUID
}

// CreateGroupInput contains parameters for creating a group
type CreateGroupInput struct {
	Groups []*models.Group
	Name   string
}

// CreateGroupOutput contains the result of creating a group
type CreateGroupOutput struct {
	Groups []*models.Group
	Group  *models.Group
}

// RemoveGroupInput contains parameters for removing a group
type RemoveGroupInput struct {
	Groups  []*models.Group
	GroupID string
}

// RemoveGroupOutput contains the result of removing a group
type RemoveGroupOutput struct {
	Groups []*models.Group

	// Removed is the group that was deleted
	Removed *models.Group
}

// AddPlayerInput contains parameters for adding a player
type AddPlayerInput struct {
	Groups  []*models.Group
	GroupID string
	Name    string
}

// AddPlayerOutput contains the result of adding a player
type AddPlayerOutput struct {
	Groups []*models.Group
	Player *models.Player

	// GroupFull indicates the group has reached the advisory capacity
	GroupFull bool
}

// RemovePlayerInput contains parameters for removing a player
type RemovePlayerInput struct {
	Groups   []*models.Group
	PlayerID string
}

// RemovePlayerOutput contains the result of removing a player
type RemovePlayerOutput struct {
	Groups  []*models.Group
	Removed *models.Player
}
