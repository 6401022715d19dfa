// Package input turns terminal key events into edge-triggered direction presses.
package input

import "github.com/samdwyer/overworld/internal/world"

// Source reports which directions were freshly pressed this frame.
type Source interface {
	JustPressed(d world.Direction) bool
}

// Held is the set of directions that are down during one frame.
type Held map[world.Direction]bool

// KeyState tracks direction keys across frames and reports only the frame a
// key goes from released to pressed.
type KeyState struct {
	prev    Held
	pressed Held
}

// NewKeyState creates a key state with every direction released.
func NewKeyState() *KeyState {
	return &KeyState{
		prev:    Held{},
		pressed: Held{},
	}
}

// Update advances the state by one frame given the keys held during it.
func (k *KeyState) Update(held Held) {
	pressed := Held{}
	for _, d := range world.Directions {
		if held[d] && !k.prev[d] {
			pressed[d] = true
		}
	}

	next := Held{}
	for _, d := range world.Directions {
		if held[d] {
			next[d] = true
		}
	}
	k.prev = next
	k.pressed = pressed
}

// JustPressed implements Source.
func (k *KeyState) JustPressed(d world.Direction) bool {
	return k.pressed[d]
}

// Pressed is a fixed Source, handy for driving a single step directly.
type Pressed []world.Direction

// JustPressed implements Source.
func (p Pressed) JustPressed(d world.Direction) bool {
	for _, pd := range p {
		if pd == d {
			return true
		}
	}
	return false
}
