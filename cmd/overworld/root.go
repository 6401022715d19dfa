package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/samdwyer/overworld/internal/errutil"
	"github.com/samdwyer/overworld/internal/game"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/ui"
	"github.com/samdwyer/overworld/internal/world"
)

// frontendFactory builds the frontend and returns a function releasing it.
type frontendFactory func(cfg *runConfig, roster *gamedata.Roster) (game.Frontend, func(), error)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

func newRootCmd(newFrontend frontendFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overworld",
		Short: "Walk a tile grid and bump into enemies",
		Long: `overworld runs a tile-grid overworld in the terminal. Move with
W/A/S/D or the arrow keys; touching an enemy starts a battle. Press q to quit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, newFrontend)
		},
	}

	registerFlags(cmd.Flags())
	return cmd
}

// run starts the game with the given configuration.
func run(ctx context.Context, cfg *runConfig, newFrontend frontendFactory) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if newFrontend == nil {
		newFrontend = terminalFrontend
	}

	// The terminal owns stdout, so logs go to a file.
	logOut, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logOut.Close()

	level, _ := parseLevel(cfg.LogLevel)
	logger := telemetry.NewLogger(cfg.LogFormat, level, logOut)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{})
		if err != nil {
			errutil.LogError(logger, "telemetry setup failed, continuing without traces", err)
			telemetry.Disable()
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					errutil.LogError(logger, "telemetry shutdown failed", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	var metrics *telemetry.Metrics
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics = telemetry.NewMetrics(reg)
		srv, err := telemetry.StartMetricsServer(cfg.MetricsAddr, reg, logger)
		if err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			if err := srv.Stop(context.Background()); err != nil {
				errutil.LogError(logger, "metrics server stop failed", err)
			}
		}()
		logger.Info("metrics server listening", "addr", srv.Addr())
	}

	roster, err := loadRoster(cfg.RosterPath)
	if err != nil {
		errutil.LogError(logger, "roster load failed", err)
		return fmt.Errorf("failed to load roster: %w", err)
	}
	reg, err := roster.Build(world.NewGrid(cfg.CellSize))
	if err != nil {
		return fmt.Errorf("failed to build roster: %w", err)
	}

	g, err := game.New(cfg.Game(), reg, game.Options{Logger: logger, Metrics: metrics})
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	fe, release, err := newFrontend(cfg, roster)
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer release()

	logger.Info("starting game",
		"seed", cfg.Seed,
		"cell_size", cfg.CellSize,
		"collision", cfg.Collision,
		"enemies", reg.EnemyCount())

	return g.Run(ctx, fe)
}

func loadRoster(path string) (*gamedata.Roster, error) {
	if path == "" {
		return gamedata.LoadRoster()
	}
	return gamedata.LoadRosterFile(path)
}

// terminalFrontend opens the real terminal.
func terminalFrontend(cfg *runConfig, roster *gamedata.Roster) (game.Frontend, func(), error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, nil, err
	}
	renderer := ui.NewRenderer(screen, ui.LooksFromRoster(roster))
	return ui.NewTerminal(screen, renderer, cfg.Game().FrameInterval()), screen.Close, nil
}
