package game

import (
	"math/rand"
	"time"

	"github.com/samber/oops"

	"github.com/samdwyer/overworld/internal/world"
)

// Collision policy names accepted by Config.Collision.
const (
	CollisionExact = "exact"
	CollisionBox   = "box"
)

// Config holds game configuration options.
type Config struct {
	// Seed for the enemy random source.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// CellSize is the length of one grid step.
	CellSize int

	// Collision selects the detector predicate: "exact" or "box".
	Collision string

	// HitboxSize is the side of each entity's hitbox for the "box" policy.
	// Zero uses CellSize.
	HitboxSize int

	// FrameRate is the number of input frames per second.
	FrameRate int
}

// DefaultConfig returns the configuration the game ships with.
func DefaultConfig() Config {
	return Config{
		CellSize:  world.DefaultCellSize,
		Collision: CollisionBox,
		FrameRate: 30,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return invalidConfig("cell_size", c.CellSize, "cell size must be positive")
	}
	if c.Collision != CollisionExact && c.Collision != CollisionBox {
		return invalidConfig("collision", c.Collision, "collision must be 'exact' or 'box'")
	}
	if c.HitboxSize < 0 {
		return invalidConfig("hitbox_size", c.HitboxSize, "hitbox size must not be negative")
	}
	if c.FrameRate <= 0 {
		return invalidConfig("frame_rate", c.FrameRate, "frame rate must be positive")
	}
	return nil
}

// Predicate returns the collision predicate selected by the configuration.
func (c Config) Predicate() Predicate {
	if c.Collision == CollisionExact {
		return ExactMatch
	}
	size := c.HitboxSize
	if size == 0 {
		size = c.CellSize
	}
	return BoxOverlap(size)
}

// FrameInterval returns the time between input frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// NewRand returns a random source seeded from Seed, or from the clock when
// Seed is 0.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func invalidConfig(field string, value any, msg string) error {
	return oops.Code(ErrCodeInvalidConfig).
		With("field", field).
		With("value", value).
		Errorf("%s", msg)
}
