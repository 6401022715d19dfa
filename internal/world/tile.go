// Package world provides the grid position model.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileFloor is drawn under every empty cell of the overworld.
	TileFloor Tile = '.'
	// TilePlayer marks the player's cell.
	TilePlayer Tile = '@'
	// TileEnemy marks a cell holding at least one enemy.
	TileEnemy Tile = 'e'
)

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
