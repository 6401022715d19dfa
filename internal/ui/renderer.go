package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/overworld/internal/game"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/world"
)

// statusLines is the number of rows reserved below the map.
const statusLines = 2

// Appearance is how one entity is drawn.
type Appearance struct {
	Glyph rune
	Style tcell.Style
}

// Looks maps entities to their appearance. Enemies are looked up by name.
type Looks struct {
	Player       Appearance
	Enemies      map[string]Appearance
	DefaultEnemy Appearance
}

// DefaultLooks draws the player as a bold yellow '@' and enemies as red 'e'.
func DefaultLooks() Looks {
	return Looks{
		Player: Appearance{
			Glyph: world.TilePlayer.Rune(),
			Style: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		},
		Enemies: map[string]Appearance{},
		DefaultEnemy: Appearance{
			Glyph: world.TileEnemy.Rune(),
			Style: tcell.StyleDefault.Foreground(tcell.ColorRed),
		},
	}
}

// LooksFromRoster takes glyphs and colors from the roster, falling back to
// DefaultLooks for anything unset.
func LooksFromRoster(r *gamedata.Roster) Looks {
	looks := DefaultLooks()
	looks.Player = Appearance{
		Glyph: r.Player.GlyphRune(looks.Player.Glyph),
		Style: tcell.StyleDefault.Foreground(r.Player.TCellColor(tcell.ColorYellow)).Bold(true),
	}
	for i := range r.Enemies {
		def := &r.Enemies[i]
		looks.Enemies[def.Name] = Appearance{
			Glyph: def.GlyphRune(looks.DefaultEnemy.Glyph),
			Style: tcell.StyleDefault.Foreground(def.TCellColor(tcell.ColorRed)),
		}
	}
	return looks
}

func (l Looks) enemy(name string) Appearance {
	if a, ok := l.Enemies[name]; ok {
		return a
	}
	return l.DefaultEnemy
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	looks  Looks
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, looks Looks) *Renderer {
	return &Renderer{screen: screen, looks: looks}
}

// Render draws the view for its mode. battle carries the names last handed
// to ShowBattle and is only used in battle mode.
func (r *Renderer) Render(v game.View, battle *BattleInfo) {
	r.screen.Clear()

	switch v.Mode {
	case game.ModeOverworld:
		r.renderOverworld(v)
	case game.ModeBattle:
		r.renderBattle(battle)
	case game.ModeMenu:
		r.renderCentered([]string{"MENU"})
	}

	r.renderStatus(v)
	r.screen.Show()
}

// renderOverworld draws floor, enemies and the player with the camera
// centered on the player's cell. Grid Y grows upward, screen Y downward.
func (r *Renderer) renderOverworld(v game.View) {
	width, height := r.screen.Size()
	mapHeight := height - statusLines
	if mapHeight <= 0 || v.Registry == nil {
		return
	}

	player, err := v.Registry.Player()
	if err != nil {
		return
	}
	originX, originY := v.Grid.Cell(player.Position)
	centerX, centerY := width/2, mapHeight/2

	project := func(p world.Position) (int, int, bool) {
		cx, cy := v.Grid.Cell(p)
		sx := centerX + (cx - originX)
		sy := centerY - (cy - originY)
		return sx, sy, sx >= 0 && sx < width && sy >= 0 && sy < mapHeight
	}

	floor := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 0; y < mapHeight; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, world.TileFloor.Rune(), floor)
		}
	}

	for _, e := range v.Registry.Enemies() {
		if sx, sy, ok := project(e.Position); ok {
			look := r.looks.enemy(e.Name())
			r.screen.SetContent(sx, sy, look.Glyph, look.Style)
		}
	}

	if sx, sy, ok := project(player.Position); ok {
		r.screen.SetContent(sx, sy, r.looks.Player.Glyph, r.looks.Player.Style)
	}
}

func (r *Renderer) renderBattle(battle *BattleInfo) {
	if battle == nil {
		r.renderCentered([]string{"BATTLE"})
		return
	}
	r.renderCentered([]string{
		"BATTLE",
		"",
		"Player: " + battle.Player,
		"Enemy:  " + battle.Enemy,
	})
}

func (r *Renderer) renderCentered(lines []string) {
	width, height := r.screen.Size()
	top := (height - statusLines - len(lines)) / 2
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	for i, line := range lines {
		x := (width - len([]rune(line))) / 2
		if x < 0 {
			x = 0
		}
		r.screen.DrawText(x, top+i, line, style)
	}
}

func (r *Renderer) renderStatus(v game.View) {
	_, height := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	status := fmt.Sprintf("mode %s  step %d", v.Mode, v.Steps)
	if v.Registry != nil {
		if p, err := v.Registry.Player(); err == nil {
			status += fmt.Sprintf("  %s %s  enemies %d", p.Name(), p.Position, v.Registry.EnemyCount())
		}
	}
	r.screen.DrawText(0, height-2, status, style)
	r.screen.DrawText(0, height-1, RenderHelp(v.Mode), tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// RenderHelp returns the key hint line for a mode.
func RenderHelp(mode game.Mode) string {
	if mode == game.ModeOverworld {
		return "WASD/arrows move, q quits"
	}
	return "q quits"
}

// BattleInfo names the participants of the battle on screen.
type BattleInfo struct {
	Player string
	Enemy  string
}

// battleFor builds the battle panel from an encounter.
func battleFor(enc *game.Encounter) *BattleInfo {
	if enc == nil {
		return nil
	}
	return &BattleInfo{Player: enc.Player.Name(), Enemy: enc.Enemy.Name()}
}
