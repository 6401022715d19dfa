package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/overworld/internal/world"
)

// DirectionForKey maps W/A/S/D and the arrow keys to a direction.
func DirectionForKey(ev *tcell.EventKey) (world.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return world.Up, true
	case tcell.KeyDown:
		return world.Down, true
	case tcell.KeyLeft:
		return world.Left, true
	case tcell.KeyRight:
		return world.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return world.Up, true
		case 's', 'S':
			return world.Down, true
		case 'a', 'A':
			return world.Left, true
		case 'd', 'D':
			return world.Right, true
		}
	}
	return 0, false
}

// IsQuit returns true for Escape, Ctrl-C and q.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Keyboard collects terminal key events between frames.
// Terminals do not report key releases, so a key counts as held for a frame
// when at least one event for it (including auto-repeat) arrived during it.
type Keyboard struct {
	state *KeyState
	frame Held
	quit  bool
}

// NewKeyboard creates a keyboard with no keys held.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		state: NewKeyState(),
		frame: Held{},
	}
}

// HandleEvent records a terminal event for the current frame.
func (k *Keyboard) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	if IsQuit(key) {
		k.quit = true
		return
	}
	if d, ok := DirectionForKey(key); ok {
		k.frame[d] = true
	}
}

// EndFrame closes the current frame and updates edge detection.
func (k *Keyboard) EndFrame() {
	k.state.Update(k.frame)
	k.frame = Held{}
}

// JustPressed implements Source for the most recently closed frame.
func (k *Keyboard) JustPressed(d world.Direction) bool {
	return k.state.JustPressed(d)
}

// QuitRequested returns true once a quit key has been seen.
func (k *Keyboard) QuitRequested() bool {
	return k.quit
}
