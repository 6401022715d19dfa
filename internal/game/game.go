package game

import (
	"context"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/errutil"
	"github.com/samdwyer/overworld/internal/input"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/tick"
	"github.com/samdwyer/overworld/internal/world"
)

// ErrCodeNoEncounter is returned when battle starts without a detected collision.
const ErrCodeNoEncounter = "NO_ENCOUNTER"

// Presenter shows the participants of a battle.
type Presenter interface {
	ShowBattle(playerName, enemyName string)
}

// Frontend drives the game: it draws state and supplies one input frame at
// a time.
type Frontend interface {
	Presenter
	// Draw renders the current view.
	Draw(v View)
	// NextFrame waits for the next input frame. It returns false when the
	// player asked to quit or ctx is done.
	NextFrame(ctx context.Context) (input.Source, bool)
}

// View is a read-only snapshot handed to the frontend.
type View struct {
	Mode      Mode
	Registry  *entity.Registry
	Grid      world.Grid
	Encounter *Encounter
	Steps     int
}

// Options carries optional collaborators. Zero values get defaults.
type Options struct {
	Logger    *slog.Logger
	Presenter Presenter
	Rand      Rand
	Metrics   *telemetry.Metrics
}

// Game is the step executor. It owns the registry, the tick channel and the
// mode machine, and runs every step to completion on the caller's goroutine.
type Game struct {
	cfg       Config
	grid      world.Grid
	registry  *entity.Registry
	ticks     *tick.Channel
	machine   *Machine
	players   PlayerController
	enemies   EnemyController
	detector  Detector
	presenter Presenter
	logger    *slog.Logger
	metrics   *telemetry.Metrics

	keys      input.Source // input for the step in progress
	encounter *Encounter
	steps     int
	moved     int
	enemyMvs  int
}

// New creates a game in overworld mode. The registry must already hold the
// player.
func New(cfg Config, reg *entity.Registry, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !reg.HasPlayer() {
		return nil, oops.Code(entity.ErrCodeNoPlayer).Errorf("game needs a player before it starts")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = cfg.NewRand()
	}

	machine, err := NewMachine(ModeOverworld, logger)
	if err != nil {
		return nil, err
	}

	grid := world.NewGrid(cfg.CellSize)
	g := &Game{
		cfg:       cfg,
		grid:      grid,
		registry:  reg,
		ticks:     tick.NewChannel(tick.DefaultCapacity),
		machine:   machine,
		players:   PlayerController{Grid: grid},
		enemies:   EnemyController{Grid: grid, Rand: rng},
		detector:  Detector{Collides: cfg.Predicate()},
		presenter: opts.Presenter,
		logger:    logger,
		metrics:   opts.Metrics,
	}

	machine.Register(ModeOverworld, Hooks{
		OnEnter:  g.enterOverworld,
		OnUpdate: g.updateOverworld,
	})
	machine.Register(ModeBattle, Hooks{
		OnEnter: g.enterBattle,
	})
	machine.Register(ModeMenu, Hooks{})

	return g, nil
}

// Start enters the initial mode. It must be called once before Step.
func (g *Game) Start(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.start")
	defer span.End()

	span.SetAttributes(
		attribute.Int("enemy_count", g.registry.EnemyCount()),
		attribute.Int("cell_size", g.grid.CellSize),
		attribute.String("collision", g.cfg.Collision),
	)
	if err := g.machine.Start(ctx); err != nil {
		return err
	}
	g.metrics.SetMode(g.machine.Current().String())
	return nil
}

// Step advances the simulation by one input frame. The active mode's
// systems run first; a transition requested during the step is applied
// at its end. On error the step's pending transition and tick events are
// discarded and the error is returned.
func (g *Game) Step(ctx context.Context, keys input.Source) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.step")
	defer span.End()

	g.keys = keys
	g.moved, g.enemyMvs = 0, 0
	defer func() { g.keys = nil }()

	from := g.machine.Current()
	if err := g.machine.Update(ctx); err != nil {
		g.machine.discard()
		g.ticks.Clear()
		span.SetAttributes(attribute.Bool("failed", true))
		return err
	}

	changed, err := g.machine.Apply(ctx)
	if err != nil {
		span.SetAttributes(attribute.Bool("failed", true))
		return err
	}

	g.steps++
	g.metrics.RecordStep(g.moved, g.enemyMvs)
	if changed {
		g.metrics.RecordTransition(from.String(), g.machine.Current().String())
	}
	span.SetAttributes(
		attribute.Int("step", g.steps),
		attribute.String("mode", g.machine.Current().String()),
		attribute.Int("player_moves", g.moved),
		attribute.Int("enemy_moves", g.enemyMvs),
	)
	return nil
}

// Run drives the game from fe until the player quits or a step fails.
func (g *Game) Run(ctx context.Context, fe Frontend) error {
	if g.presenter == nil {
		g.presenter = fe
	}
	if err := g.Start(ctx); err != nil {
		errutil.LogError(g.logger, "game start failed", err)
		return err
	}

	for {
		fe.Draw(g.View())

		keys, ok := fe.NextFrame(ctx)
		if !ok {
			g.logger.InfoContext(ctx, "game loop stopped", "steps", g.steps, "mode", g.machine.Current().String())
			return nil
		}
		if err := g.Step(ctx, keys); err != nil {
			errutil.LogError(g.logger, "step aborted", err)
			return err
		}
	}
}

// Mode returns the current game mode.
func (g *Game) Mode() Mode {
	return g.machine.Current()
}

// Machine returns the mode state machine.
func (g *Game) Machine() *Machine {
	return g.machine
}

// Registry returns the entity registry.
func (g *Game) Registry() *entity.Registry {
	return g.registry
}

// Encounter returns the collision that started the current battle, if any.
func (g *Game) Encounter() *Encounter {
	return g.encounter
}

// Steps returns the number of completed steps.
func (g *Game) Steps() int {
	return g.steps
}

// View returns a snapshot for drawing.
func (g *Game) View() View {
	return View{
		Mode:      g.machine.Current(),
		Registry:  g.registry,
		Grid:      g.grid,
		Encounter: g.encounter,
		Steps:     g.steps,
	}
}

// enterOverworld logs the starting roster.
func (g *Game) enterOverworld(ctx context.Context) error {
	player, err := g.registry.Player()
	if err != nil {
		return err
	}
	g.logger.InfoContext(ctx, "entering overworld",
		"player", player.Name(),
		"player_pos", player.Position.String(),
		"enemies", g.registry.EnemyCount())
	return nil
}

// updateOverworld runs the overworld systems in their required order:
// player movement, enemy movement, then collision detection.
func (g *Game) updateOverworld(ctx context.Context) error {
	keys := g.keys
	if keys == nil {
		keys = input.Pressed(nil)
	}

	moved, err := g.players.Update(g.registry, keys, g.ticks)
	if err != nil {
		return err
	}
	g.moved = moved

	enemyMoves, err := g.enemies.Update(g.registry, g.ticks)
	if err != nil {
		return err
	}
	g.enemyMvs = enemyMoves

	enc, err := g.detector.Detect(g.registry)
	if err != nil {
		return err
	}
	if enc == nil {
		return nil
	}

	enc.ID = ulid.Make()
	g.logger.DebugContext(ctx, "collision detected",
		"encounter_id", enc.ID.String(),
		"enemy", enc.Enemy.Name(),
		"enemy_id", enc.Enemy.ID.String(),
		"pos", enc.Player.Position.String())
	g.encounter = enc
	return g.machine.RequestTransition(ModeBattle)
}

// enterBattle hands the participants' names to the presenter.
func (g *Game) enterBattle(ctx context.Context) error {
	enc := g.encounter
	if enc == nil {
		return oops.Code(ErrCodeNoEncounter).Errorf("battle entered without an encounter")
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "battle.setup")
	span.SetAttributes(
		attribute.String("encounter_id", enc.ID.String()),
		attribute.String("player", enc.Player.Name()),
		attribute.String("enemy", enc.Enemy.Name()),
		attribute.Int("enemy_health", int(enc.Enemy.Health)),
	)
	span.End()

	g.logger.InfoContext(ctx, "entering battle",
		"encounter_id", enc.ID.String(),
		"player", enc.Player.Name(),
		"enemy", enc.Enemy.Name())
	if g.presenter != nil {
		g.presenter.ShowBattle(enc.Player.Name(), enc.Enemy.Name())
	}
	return nil
}
