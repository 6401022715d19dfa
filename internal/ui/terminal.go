package ui

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/overworld/internal/game"
	"github.com/samdwyer/overworld/internal/input"
)

// Terminal is the interactive frontend. It groups key events into fixed
// frames and draws after every step.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
	keyboard *input.Keyboard
	interval time.Duration

	events chan tcell.Event
	once   sync.Once
	battle *BattleInfo
}

var _ game.Frontend = (*Terminal)(nil)

// NewTerminal creates a frontend that closes a frame every interval.
func NewTerminal(screen *Screen, renderer *Renderer, interval time.Duration) *Terminal {
	return &Terminal{
		screen:   screen,
		renderer: renderer,
		keyboard: input.NewKeyboard(),
		interval: interval,
		events:   make(chan tcell.Event, 64),
	}
}

// pump forwards screen events until the screen is closed.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		t.events <- ev
	}
}

// Draw renders the view.
func (t *Terminal) Draw(v game.View) {
	battle := t.battle
	if v.Mode == game.ModeBattle && battle == nil {
		battle = battleFor(v.Encounter)
	}
	t.renderer.Render(v, battle)
}

// ShowBattle remembers the participants for the battle screen.
func (t *Terminal) ShowBattle(playerName, enemyName string) {
	t.battle = &BattleInfo{Player: playerName, Enemy: enemyName}
}

// NextFrame collects key events for one frame interval and returns the
// keyboard as that frame's input.
func (t *Terminal) NextFrame(ctx context.Context) (input.Source, bool) {
	t.once.Do(func() { go t.pump() })

	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, false
		case ev, ok := <-t.events:
			if !ok {
				return nil, false
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				t.screen.Sync()
			}
			t.keyboard.HandleEvent(ev)
			if t.keyboard.QuitRequested() {
				return nil, false
			}
		case <-timer.C:
			t.keyboard.EndFrame()
			return t.keyboard, true
		}
	}
}
