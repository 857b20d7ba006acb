package editengine

import "github.com/dshills/keystorm-dock/internal/linestore"

// Metrics hit-tests a line's content against pixel x-coordinates, letting
// Up/Down movement preserve a caret's baseline across lines of differing
// width. internal/layout supplies the codepoint-aware implementation; a
// trivial one-unit-per-column Metrics is used where none is configured,
// which is enough for tests that don't exercise variable-width rendering.
type Metrics interface {
	// ColumnAt returns the content column whose visual position is closest
	// to x.
	ColumnAt(content []rune, x float64) int
	// XAt returns the visual x-coordinate of the given column.
	XAt(content []rune, col int) float64
}

type identityMetrics struct{}

func (identityMetrics) ColumnAt(content []rune, x float64) int {
	col := int(x)
	if col < 0 {
		return 0
	}
	if col > len(content) {
		return len(content)
	}
	return col
}

func (identityMetrics) XAt(content []rune, col int) float64 { return float64(col) }

// Config carries the edit engine's behavioral settings.
type Config struct {
	// InsertMode, when true, always inserts rather than overwriting the
	// codepoint under the caret.
	InsertMode bool
	// LineEnding is the style assigned to the first half of a line split by
	// pressing Enter; the new second line keeps the split line's original
	// ending.
	LineEnding linestore.Ending
	// Metrics hit-tests line content for vertical movement and baseline
	// computation. Defaults to a one-column-per-unit implementation.
	Metrics Metrics
}

func (c Config) metrics() Metrics {
	if c.Metrics != nil {
		return c.Metrics
	}
	return identityMetrics{}
}
