package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/overworld/internal/game"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/input"
	"github.com/samdwyer/overworld/internal/world"
)

// scriptedFrontend plays back frames and records what the game showed.
type scriptedFrontend struct {
	frames  []input.Source
	modes   []game.Mode
	battles [][2]string
}

func (f *scriptedFrontend) Draw(v game.View) {
	f.modes = append(f.modes, v.Mode)
}

func (f *scriptedFrontend) ShowBattle(playerName, enemyName string) {
	f.battles = append(f.battles, [2]string{playerName, enemyName})
}

func (f *scriptedFrontend) NextFrame(context.Context) (input.Source, bool) {
	if len(f.frames) == 0 {
		return nil, false
	}
	next := f.frames[0]
	f.frames = f.frames[1:]
	return next, true
}

func (f *scriptedFrontend) factory() frontendFactory {
	return func(*runConfig, *gamedata.Roster) (game.Frontend, func(), error) {
		return f, func() {}, nil
	}
}

func TestRootCommand_Help(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	for _, flag := range []string{"--seed", "--cell-size", "--collision", "--frame-rate", "--roster", "--config", "--log-file", "--metrics-addr", "--telemetry"} {
		assert.Contains(t, output, flag, "Help missing %q flag", flag)
	}
}

func TestRunConfig_Validate(t *testing.T) {
	valid := func() *runConfig {
		return &runConfig{CellSize: 16, Collision: "box", FrameRate: 30, LogFormat: "json", LogLevel: "info"}
	}

	tests := []struct {
		name    string
		mutate  func(*runConfig)
		wantErr bool
	}{
		{"defaults", func(*runConfig) {}, false},
		{"text logs", func(c *runConfig) { c.LogFormat = "text" }, false},
		{"debug level", func(c *runConfig) { c.LogLevel = "debug" }, false},
		{"bad log format", func(c *runConfig) { c.LogFormat = "xml" }, true},
		{"bad log level", func(c *runConfig) { c.LogLevel = "loud" }, true},
		{"bad collision", func(c *runConfig) { c.Collision = "circle" }, true},
		{"zero cell size", func(c *runConfig) { c.CellSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerFlags(flags)
	require.NoError(t, flags.Parse(nil))

	cfg, err := loadConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, game.DefaultConfig(), cfg.Game())
	assert.Equal(t, defaultLogFile, cfg.LogFile)
	assert.Equal(t, defaultLogFormat, cfg.LogFormat)
	assert.False(t, cfg.Telemetry)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overworld.yaml")
	yaml := "seed: 42\ncollision: exact\ncell-size: 8\nlog-format: text\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerFlags(flags)
	require.NoError(t, flags.Parse([]string{"--config", path, "--cell-size", "4"}))

	cfg, err := loadConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed, "file sets unflagged keys")
	assert.Equal(t, "exact", cfg.Collision)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 4, cfg.CellSize, "explicit flag beats the file")
	assert.Equal(t, 30, cfg.FrameRate, "flag default fills keys missing from the file")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerFlags(flags)
	require.NoError(t, flags.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))

	_, err := loadConfig(flags)
	assert.Error(t, err)
}

func TestRun_QuitImmediately(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "game.log")
	fe := &scriptedFrontend{}

	cmd := newRootCmd(fe.factory())
	cmd.SetArgs([]string{"--log-file", logFile, "--seed", "7"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, []game.Mode{game.ModeOverworld}, fe.modes)

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "starting game")
	assert.Contains(t, string(logs), "game loop stopped")
}

func TestRun_BattleFromRosterFile(t *testing.T) {
	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "roster.json")
	roster := `{"player":{"name":"test","x":5,"y":5},"enemies":[{"name":"bat","x":6,"y":5}]}`
	require.NoError(t, os.WriteFile(rosterPath, []byte(roster), 0o600))

	fe := &scriptedFrontend{frames: []input.Source{input.Pressed{world.Right}}}
	cmd := newRootCmd(fe.factory())
	cmd.SetArgs([]string{
		"--roster", rosterPath,
		"--log-file", filepath.Join(dir, "game.log"),
		"--hitbox-size", "1000",
		"--seed", "1",
	})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, [][2]string{{"test", "bat"}}, fe.battles)
	assert.Equal(t, []game.Mode{game.ModeOverworld, game.ModeBattle}, fe.modes)
}

func TestRun_InvalidFlags(t *testing.T) {
	fe := &scriptedFrontend{}
	cmd := newRootCmd(fe.factory())
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--collision", "circle", "--log-file", filepath.Join(t.TempDir(), "x.log")})

	assert.Error(t, cmd.Execute())
	assert.Empty(t, fe.modes)
}

func TestRun_MissingRoster(t *testing.T) {
	dir := t.TempDir()
	fe := &scriptedFrontend{}
	cmd := newRootCmd(fe.factory())
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--roster", filepath.Join(dir, "none.json"), "--log-file", filepath.Join(dir, "x.log")})

	assert.Error(t, cmd.Execute())
}

func TestSetupOTelEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("OVERWORLD_HONEYCOMB_API_KEY", "secret")
	t.Setenv("OVERWORLD_HONEYCOMB_DATASET", "")

	setupOTelEnv()

	assert.Equal(t, "https://api.honeycomb.io", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	assert.Equal(t, "x-honeycomb-team=secret,x-honeycomb-dataset=overworld", os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
}

func TestSetupOTelEnv_KeepsExplicitSettings(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-custom=1")
	t.Setenv("OVERWORLD_HONEYCOMB_API_KEY", "secret")

	setupOTelEnv()

	assert.Equal(t, "http://localhost:4318", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	assert.Equal(t, "x-custom=1", os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
}
