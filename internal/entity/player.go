package entity

import "github.com/samdwyer/overworld/internal/world"

// ItemSlots is the number of inventory counters a player carries.
const ItemSlots = 3

// Player is the entity controlled by keyboard input.
type Player struct {
	Entity
	Items [ItemSlots]uint8 // Inventory counters, reserved for battles
}

// NewPlayer creates a player at the given position with an empty inventory.
func NewPlayer(name string, pos world.Position) (*Player, error) {
	base, err := newEntity(RolePlayer, name, pos)
	if err != nil {
		return nil, err
	}
	return &Player{Entity: base}, nil
}
