// Package entity provides the player, the enemies and the registry holding them.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/overworld/internal/world"
)

// Role tags an entity as the player or an enemy.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is the identity and placement shared by players and enemies.
type Entity struct {
	ID       uuid.UUID      // Opaque handle, assigned at creation
	Position world.Position // Current grid position
	name     string
	role     Role
}

func newEntity(role Role, name string, pos world.Position) (Entity, error) {
	if name == "" {
		return Entity{}, errEmptyName(role)
	}
	return Entity{
		ID:       uuid.New(),
		Position: pos,
		name:     name,
		role:     role,
	}, nil
}

// Name returns the display name. It cannot change after creation.
func (e *Entity) Name() string { return e.name }

// Role returns whether the entity is the player or an enemy.
func (e *Entity) Role() Role { return e.role }

// Move sets the entity's position.
func (e *Entity) Move(pos world.Position) {
	e.Position = pos
}
