package entity

import (
	"github.com/google/uuid"
	"github.com/samber/oops"
)

// Registry holds the single player slot and the enemy list.
type Registry struct {
	player  *Player
	enemies []*Enemy
}

// NewRegistry creates an empty registry. A player must be added before the
// registry is used by a game step.
func NewRegistry() *Registry {
	return &Registry{
		enemies: make([]*Enemy, 0),
	}
}

// SetPlayer fills the player slot. It fails if a player is already present.
func (r *Registry) SetPlayer(p *Player) error {
	if p == nil {
		return oops.Code(ErrCodeNoPlayer).Errorf("player must not be nil")
	}
	if r.player != nil {
		return oops.Code(ErrCodeDuplicatePlayer).
			With("existing", r.player.Name()).
			With("player", p.Name()).
			Errorf("registry already holds a player")
	}
	r.player = p
	return nil
}

// Player returns the registered player, or an error if the slot is empty.
func (r *Registry) Player() (*Player, error) {
	if r.player == nil {
		return nil, oops.Code(ErrCodeNoPlayer).Errorf("no player registered")
	}
	return r.player, nil
}

// HasPlayer returns true if the player slot is filled.
func (r *Registry) HasPlayer() bool {
	return r.player != nil
}

// AddEnemy appends an enemy. Nil enemies are ignored.
func (r *Registry) AddEnemy(e *Enemy) {
	if e == nil {
		return
	}
	r.enemies = append(r.enemies, e)
}

// Enemies returns the registered enemies in insertion order.
func (r *Registry) Enemies() []*Enemy {
	return r.enemies
}

// EnemyCount returns the number of registered enemies.
func (r *Registry) EnemyCount() int {
	return len(r.enemies)
}

// EnemyByID returns the enemy with the given ID, or nil if not found.
func (r *Registry) EnemyByID(id uuid.UUID) *Enemy {
	for _, e := range r.enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}
