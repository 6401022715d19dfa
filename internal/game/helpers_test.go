package game

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/world"
)

// scriptedRand returns draws in order, cycling when exhausted.
type scriptedRand struct {
	draws []int
	calls int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.draws[r.calls%len(r.draws)]
	r.calls++
	return v
}

// countingRand wraps a seeded source and counts draws.
type countingRand struct {
	rng   *rand.Rand
	calls int
}

func newCountingRand(seed int64) *countingRand {
	return &countingRand{rng: rand.New(rand.NewSource(seed))}
}

func (r *countingRand) Intn(n int) int {
	r.calls++
	return r.rng.Intn(n)
}

// recordingPresenter remembers every battle it was asked to show.
type recordingPresenter struct {
	battles [][2]string
}

func (p *recordingPresenter) ShowBattle(playerName, enemyName string) {
	p.battles = append(p.battles, [2]string{playerName, enemyName})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRegistry(t *testing.T, player world.Position, enemies ...world.Position) *entity.Registry {
	t.Helper()
	reg := entity.NewRegistry()

	p, err := entity.NewPlayer("hero", player)
	require.NoError(t, err)
	require.NoError(t, reg.SetPlayer(p))

	names := []string{"slime", "bat", "ghost", "rat", "imp"}
	for i, pos := range enemies {
		e, err := entity.NewEnemy(names[i%len(names)], pos)
		require.NoError(t, err)
		reg.AddEnemy(e)
	}
	return reg
}

func playerPos(t *testing.T, reg *entity.Registry) world.Position {
	t.Helper()
	p, err := reg.Player()
	require.NoError(t, err)
	return p.Position
}
