package termrender

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keystorm-dock/internal/coreapi"
)

// tcellColor converts a [0,1]-per-channel coreapi.Color to a tcell true
// color, per the teacher's own RGB-only conversion in its terminal
// backend (no palette-indexed path: this module's colors always arrive
// as floats, never as a palette index).
func tcellColor(c coreapi.Color) tcell.Color {
	clamp := func(v float64) int32 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return int32(v * 255)
	}
	return tcell.NewRGBColor(clamp(c.R), clamp(c.G), clamp(c.B))
}
