package gamedata

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/oops"
)

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, oops.Code(ErrCodeInvalidData).
			With("color", hex).
			Errorf("invalid hex color length")
	}

	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, oops.Code(ErrCodeInvalidData).
			With("color", hex).
			Wrapf(err, "invalid hex color")
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// colorOr parses hex, returning fallback when it is empty or malformed.
func colorOr(hex string, fallback tcell.Color) tcell.Color {
	if hex == "" {
		return fallback
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}
