package world

// Hitbox is a square of side Size centered on Center.
type Hitbox struct {
	Center Position
	Size   int
}

// Overlaps returns true if the two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (h Hitbox) Overlaps(other Hitbox) bool {
	// Compare doubled coordinates so odd sizes keep an exact half-extent.
	ax, ay := 2*h.Center.X, 2*h.Center.Y
	bx, by := 2*other.Center.X, 2*other.Center.Y
	reach := h.Size + other.Size

	return abs(ax-bx) < reach && abs(ay-by) < reach
}
