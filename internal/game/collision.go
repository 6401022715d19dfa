package game

import (
	"github.com/oklog/ulid/v2"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/world"
)

// Predicate decides whether a player and an enemy collide.
type Predicate func(player, enemy world.Position) bool

// ExactMatch collides only when both entities occupy the same coordinates.
func ExactMatch(player, enemy world.Position) bool {
	return player == enemy
}

// BoxOverlap collides when square hitboxes of the given side overlap.
func BoxOverlap(size int) Predicate {
	return func(player, enemy world.Position) bool {
		return world.Hitbox{Center: player, Size: size}.
			Overlaps(world.Hitbox{Center: enemy, Size: size})
	}
}

// Encounter names the two sides of a detected collision. ID is assigned
// when the encounter starts a battle.
type Encounter struct {
	ID     ulid.ULID
	Player *entity.Player
	Enemy  *entity.Enemy
}

// Detector compares the player against every enemy after movement.
type Detector struct {
	Collides Predicate
}

// Detect returns the first enemy in registry order that collides with the
// player, or nil if none does.
func (d Detector) Detect(reg *entity.Registry) (*Encounter, error) {
	player, err := reg.Player()
	if err != nil {
		return nil, err
	}

	for _, e := range reg.Enemies() {
		if d.Collides(player.Position, e.Position) {
			return &Encounter{Player: player, Enemy: e}, nil
		}
	}
	return nil, nil
}
