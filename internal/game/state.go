// Package game provides the step executor and the game mode state machine.
package game

// Mode represents the coarse-grained phase of the game.
type Mode int

const (
	// ModeMenu is a placeholder that is never entered automatically.
	ModeMenu Mode = iota
	// ModeOverworld is where the player and enemies move on the grid.
	ModeOverworld
	// ModeBattle is entered when the player runs into an enemy.
	ModeBattle
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeOverworld:
		return "overworld"
	case ModeBattle:
		return "battle"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the named modes.
func (m Mode) Valid() bool {
	return m >= ModeMenu && m <= ModeBattle
}
