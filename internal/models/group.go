package models

// GroupCapacity is the number of players at which a group is considered full.
// It is advisory only; adding a fifth player is never rejected.
const GroupCapacity = 4

// Group represents a playing group (flight) of up to GroupCapacity players
type Group struct {
	// ID is the unique identifier for the group
	ID string `json:"id"`

	// Name is the display name of the group
	Name string `json:"name"`

	// Players contains the players in the group. Order carries no meaning.
	Players []*Player `json:"players"`
}

// IsFull reports whether the group has reached the advisory capacity
func (g *Group) IsFull() bool {
	return len(g.Players) >= GroupCapacity
}

// Clone returns a deep copy of the group
func (g *Group) Clone() *Group {
	if g == nil {
		return nil
	}
	c := &Group{
		ID:      g.ID,
		Name:    g.Name,
		Players: make([]*Player, 0, len(g.Players)),
	}
	for _, p := range g.Players {
		if p == nil {
			continue
		}
		c.Players = append(c.Players, p.Clone())
	}
	return c
}

// CloneGroups returns a deep copy of a group collection
func CloneGroups(groups []*Group) []*Group {
	out := make([]*Group, 0, len(groups))
	for _, g := range groups {
		if g == nil {
			continue
		}
		out = append(out, g.Clone())
	}
	return out
}

// FindPlayer resolves a player and the group containing it.
// The returned pointers reference the input collection.
func FindPlayer(groups []*Group, playerID string) (*Player, *Group, bool) {
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, p := range g.Players {
			if p != nil && p.ID == playerID {
				return p, g, true
			}
		}
	}
	return nil, nil, false
}
