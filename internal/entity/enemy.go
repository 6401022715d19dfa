package entity

import "github.com/samdwyer/overworld/internal/world"

const (
	// DefaultHealth is the health every enemy spawns with.
	DefaultHealth uint16 = 100
	// DefaultExperience is the experience every enemy spawns with.
	DefaultExperience uint16 = 0
)

// Enemy represents a hostile creature wandering the overworld.
// Health and Experience are carried for battles and never changed here.
type Enemy struct {
	Entity
	Health     uint16
	Experience uint16
}

// NewEnemy creates an enemy at the given position with default stats.
func NewEnemy(name string, pos world.Position) (*Enemy, error) {
	base, err := newEntity(RoleEnemy, name, pos)
	if err != nil {
		return nil, err
	}
	return &Enemy{
		Entity:     base,
		Health:     DefaultHealth,
		Experience: DefaultExperience,
	}, nil
}
