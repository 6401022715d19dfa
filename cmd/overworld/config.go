package main

import (
	"fmt"
	"log/slog"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/samdwyer/overworld/internal/game"
)

// Default values for command flags.
const (
	defaultLogFile   = "overworld.log"
	defaultLogFormat = "json"
	defaultLogLevel  = "info"
)

// runConfig holds configuration for the root command. Keys match flag names
// so a YAML config file can set anything a flag can.
type runConfig struct {
	Seed        int64  `koanf:"seed"`
	CellSize    int    `koanf:"cell-size"`
	Collision   string `koanf:"collision"`
	HitboxSize  int    `koanf:"hitbox-size"`
	FrameRate   int    `koanf:"frame-rate"`
	RosterPath  string `koanf:"roster"`
	LogFile     string `koanf:"log-file"`
	LogFormat   string `koanf:"log-format"`
	LogLevel    string `koanf:"log-level"`
	MetricsAddr string `koanf:"metrics-addr"`
	Telemetry   bool   `koanf:"telemetry"`
}

// Game returns the game section of the configuration.
func (cfg *runConfig) Game() game.Config {
	return game.Config{
		Seed:       cfg.Seed,
		CellSize:   cfg.CellSize,
		Collision:  cfg.Collision,
		HitboxSize: cfg.HitboxSize,
		FrameRate:  cfg.FrameRate,
	}
}

// Validate checks that the configuration is valid.
func (cfg *runConfig) Validate() error {
	if err := cfg.Game().Validate(); err != nil {
		return err
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return fmt.Errorf("log-format must be 'json' or 'text', got %q", cfg.LogFormat)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log-level must be debug, info, warn or error, got %q", s)
	}
	return level, nil
}

// registerFlags declares every configurable flag with its default.
func registerFlags(flags *pflag.FlagSet) {
	defaults := game.DefaultConfig()

	flags.String("config", "", "YAML config file (flags override it)")
	flags.Int64("seed", 0, "enemy random seed (0 = time based)")
	flags.Int("cell-size", defaults.CellSize, "world units per grid step")
	flags.String("collision", defaults.Collision, "collision policy (exact or box)")
	flags.Int("hitbox-size", 0, "hitbox side for box collision (0 = cell size)")
	flags.Int("frame-rate", defaults.FrameRate, "input frames per second")
	flags.String("roster", "", "roster JSON file (default: built-in roster)")
	flags.String("log-file", defaultLogFile, "log file path")
	flags.String("log-format", defaultLogFormat, "log format (json or text)")
	flags.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("metrics-addr", "", "Prometheus metrics HTTP address (empty = disabled)")
	flags.Bool("telemetry", false, "export traces over OTLP")
}

// loadConfig layers flag defaults, the optional config file and explicitly
// set flags, in increasing priority.
func loadConfig(flags *pflag.FlagSet) (*runConfig, error) {
	k := koanf.New(".")

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return nil, fmt.Errorf("failed to read flags: %w", err)
	}

	cfg := &runConfig{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
