package roster

import (
	"strings"

	"github.com/KirkDiggler/birdie/internal/common/uuid"
	"github.com/KirkDiggler/birdie/internal/models"
)

// service implements the Service interface
type service struct {
	uuidGenerator uuid.UUID
}

// New creates a new roster service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateGroup adds an empty group
func (s *service) CreateGroup(input *CreateGroupInput) (*CreateGroupOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	group := &models.Group{
		ID:      s.uuidGenerator.NewUUID(),
		Name:    name,
		Players: []*models.Player{},
	}

	groups := models.CloneGroups(input.Groups)
	groups = append(groups, group)

	return &CreateGroupOutput{
		Groups: groups,
		Group:  group.Clone(),
	}, nil
}

// RemoveGroup deletes a group and its players
func (s *service) RemoveGroup(input *RemoveGroupInput) (*RemoveGroupOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	groups := make([]*models.Group, 0, len(input.Groups))
	var removed *models.Group
	for _, g := range input.Groups {
		if g.ID == input.GroupID {
			removed = g.Clone()
			continue
		}
		groups = append(groups, g.Clone())
	}

	if removed == nil {
		return nil, ErrGroupNotFound
	}

	return &RemoveGroupOutput{
		Groups:  groups,
		Removed: removed,
	}, nil
}

// AddPlayer adds a new player to a group. Full groups still accept players.
func (s *service) AddPlayer(input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	groups := models.CloneGroups(input.Groups)
	for _, g := range groups {
		if g.ID != input.GroupID {
			continue
		}

		player := &models.Player{
			ID:      s.uuidGenerator.NewUUID(),
			Name:    name,
			GroupID: g.ID,
		}
		g.Players = append(g.Players, player)

		return &AddPlayerOutput{
			Groups:    groups,
			Player:    player.Clone(),
			GroupFull: g.IsFull(),
		}, nil
	}

	return nil, ErrGroupNotFound
}

// RemovePlayer deletes a player from whichever group contains it.
// The player's scores are kept.
func (s *service) RemovePlayer(input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	groups := models.CloneGroups(input.Groups)
	for _, g := range groups {
		for i, p := range g.Players {
			if p.ID != input.PlayerID {
				continue
			}

			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			return &RemovePlayerOutput{
				Groups:  groups,
				Removed: p,
			}, nil
		}
	}

	return nil, ErrPlayerNotFound
}
