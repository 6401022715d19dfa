package game

import (
	"github.com/samber/oops"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/input"
	"github.com/samdwyer/overworld/internal/tick"
	"github.com/samdwyer/overworld/internal/world"
)

// Rand is the random source enemies draw their steps from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// enemyDirections is indexed by the random draw.
var enemyDirections = [...]world.Direction{world.Right, world.Left, world.Up, world.Down}

// directionFromDraw maps a draw in [0,4) to a direction.
func directionFromDraw(n int) (world.Direction, error) {
	if n < 0 || n >= len(enemyDirections) {
		return 0, oops.Code(ErrCodeBadDirectionDraw).
			With("draw", n).
			Errorf("random direction draw %d out of range", n)
	}
	return enemyDirections[n], nil
}

// PlayerController moves the player one cell per freshly pressed direction.
type PlayerController struct {
	Grid world.Grid
}

// Update steps the player once for every direction pressed this frame and
// emits one tick event per step. It returns the number of steps taken.
// Nothing is mutated if the player is missing or the events would not fit.
func (c PlayerController) Update(reg *entity.Registry, keys input.Source, ch *tick.Channel) (int, error) {
	player, err := reg.Player()
	if err != nil {
		return 0, err
	}

	var pressed []world.Direction
	for _, d := range world.Directions {
		if keys.JustPressed(d) {
			pressed = append(pressed, d)
		}
	}
	if free := ch.Cap() - ch.Len(); len(pressed) > free {
		return 0, oops.Code(tick.ErrCodeChannelFull).
			With("pressed", len(pressed)).
			With("free", free).
			Errorf("not enough room for %d tick events", len(pressed))
	}

	for _, d := range pressed {
		player.Move(c.Grid.Step(player.Position, d))
		if err := ch.Emit(tick.Event{}); err != nil {
			return 0, err
		}
	}
	return len(pressed), nil
}

// EnemyController moves every enemy one random cell per tick event.
type EnemyController struct {
	Grid world.Grid
	Rand Rand
}

// Update drains the channel and, for each event, steps every enemy in an
// independently drawn direction. k events and m enemies give k*m moves.
// All directions are drawn before any enemy moves, so a bad draw leaves
// every position untouched.
func (c EnemyController) Update(reg *entity.Registry, ch *tick.Channel) (int, error) {
	events := ch.Drain()
	enemies := reg.Enemies()
	if len(events) == 0 || len(enemies) == 0 {
		return 0, nil
	}

	plan := make([]world.Direction, 0, len(events)*len(enemies))
	for range events {
		for range enemies {
			d, err := directionFromDraw(c.Rand.Intn(len(enemyDirections)))
			if err != nil {
				return 0, err
			}
			plan = append(plan, d)
		}
	}

	i := 0
	for range events {
		for _, e := range enemies {
			e.Move(c.Grid.Step(e.Position, plan[i]))
			i++
		}
	}
	return len(plan), nil
}
