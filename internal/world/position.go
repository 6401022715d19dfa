package world

import "fmt"

// DefaultCellSize is the distance covered by a single grid step.
const DefaultCellSize = 16

// Position is a cell coordinate on the overworld grid.
// Y grows upward.
type Position struct {
	X, Y int
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p translated by dx, dy.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the grid-line distance between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Direction is one of the four axis-aligned movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in the order player input is checked.
var Directions = [...]Direction{Up, Left, Down, Right}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four named directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the direction pointing the other way along the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the unit vector for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Grid describes the size of one movement step.
type Grid struct {
	CellSize int
}

// NewGrid returns a grid whose steps are cellSize long.
// A non-positive size falls back to DefaultCellSize.
func NewGrid(cellSize int) Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return Grid{CellSize: cellSize}
}

// Step returns p moved one cell in direction d.
// Positions are not clamped to any map edge.
func (g Grid) Step(p Position, d Direction) Position {
	dx, dy := d.Delta()
	return p.Add(dx*g.CellSize, dy*g.CellSize)
}

// Cell converts a position into whole-cell coordinates, rounding toward
// negative infinity.
func (g Grid) Cell(p Position) (int, int) {
	return floorDiv(p.X, g.CellSize), floorDiv(p.Y, g.CellSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
