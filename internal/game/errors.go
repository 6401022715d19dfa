package game

// Error codes returned by this package.
const (
	ErrCodeBadDirectionDraw = "BAD_DIRECTION_DRAW"
	ErrCodeEmptyModeStack   = "EMPTY_MODE_STACK"
	ErrCodeUnknownMode      = "UNKNOWN_MODE"
	ErrCodeInvalidConfig    = "INVALID_CONFIG"
)
