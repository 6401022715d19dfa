package gamedata

import (
	"github.com/gdamore/tcell/v2"
	"github.com/samber/oops"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/world"
)

// RosterFile is the name of the embedded default roster.
const RosterFile = "roster.json"

// SpawnDef places one entity. X and Y are in whole cells.
type SpawnDef struct {
	Name  string `json:"name"`  // Display name
	X     int    `json:"x"`     // Starting cell column
	Y     int    `json:"y"`     // Starting cell row, growing upward
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "@")
	Color string `json:"color"` // Hex color code (e.g., "#4040FF")
}

// GlyphRune returns the glyph as a rune for rendering.
func (s *SpawnDef) GlyphRune(fallback rune) rune {
	for _, r := range s.Glyph {
		return r
	}
	return fallback
}

// TCellColor returns the spawn's color, or fallback if it is unset or invalid.
func (s *SpawnDef) TCellColor(fallback tcell.Color) tcell.Color {
	return colorOr(s.Color, fallback)
}

// Position converts the spawn cell into a grid position.
func (s *SpawnDef) Position(grid world.Grid) world.Position {
	return world.Position{X: s.X * grid.CellSize, Y: s.Y * grid.CellSize}
}

// Roster lists everything that exists when the overworld starts.
type Roster struct {
	Player  SpawnDef   `json:"player"`
	Enemies []SpawnDef `json:"enemies"`
}

// LoadRoster loads the embedded default roster.
func LoadRoster() (*Roster, error) {
	r, err := Load[Roster](RosterFile)
	if err != nil {
		return nil, err
	}
	return &r, r.Validate()
}

// LoadRosterFile loads a roster from a JSON file on disk.
func LoadRosterFile(path string) (*Roster, error) {
	r, err := LoadFile[Roster](path)
	if err != nil {
		return nil, err
	}
	return &r, r.Validate()
}

// MustLoadRoster loads the embedded roster, panicking on error.
func MustLoadRoster() *Roster {
	r, err := LoadRoster()
	if err != nil {
		panic(err)
	}
	return r
}

// Validate checks that every spawn is named.
func (r *Roster) Validate() error {
	if r.Player.Name == "" {
		return oops.Code(ErrCodeInvalidData).Errorf("roster player has no name")
	}
	for i := range r.Enemies {
		if r.Enemies[i].Name == "" {
			return oops.Code(ErrCodeInvalidData).
				With("enemy_index", i).
				Errorf("roster enemy has no name")
		}
	}
	return nil
}

// Build creates a registry holding the roster's player and enemies.
// Enemies start with default health and experience.
func (r *Roster) Build(grid world.Grid) (*entity.Registry, error) {
	reg := entity.NewRegistry()

	player, err := entity.NewPlayer(r.Player.Name, r.Player.Position(grid))
	if err != nil {
		return nil, err
	}
	if err := reg.SetPlayer(player); err != nil {
		return nil, err
	}

	for i := range r.Enemies {
		enemy, err := entity.NewEnemy(r.Enemies[i].Name, r.Enemies[i].Position(grid))
		if err != nil {
			return nil, err
		}
		reg.AddEnemy(enemy)
	}
	return reg, nil
}
