package layout

import "github.com/rivo/uniseg"

// Width returns the display width, in terminal cells, of s — 2 for
// East-Asian wide and emoji codepoints, 0 for combining marks, 1 otherwise.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// CellMetrics hit-tests line content against a monospace cell grid, where
// a cell's pixel width is CellWidth units times the codepoint's display
// width. It implements editengine.Metrics structurally (ColumnAt, XAt)
// without editengine importing this package, keeping the dependency
// pointed the way spec.md's "external interfaces only" framing intends:
// the Edit Engine depends on an abstract Metrics contract, and this is one
// concrete implementation of it.
type CellMetrics struct {
	CellWidth Pixel
}

// NewCellMetrics returns a CellMetrics using the given per-cell pixel
// width, defaulting to 1 if cellWidth is non-positive.
func NewCellMetrics(cellWidth Pixel) CellMetrics {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	return CellMetrics{CellWidth: cellWidth}
}

// XAt returns the visual x-coordinate of column col within content.
func (m CellMetrics) XAt(content []rune, col int) Pixel {
	if col < 0 {
		col = 0
	}
	if col > len(content) {
		col = len(content)
	}
	var x Pixel
	for _, r := range content[:col] {
		x += Pixel(uniseg.StringWidth(string(r))) * m.CellWidth
	}
	return x
}

// ColumnAt returns the content column whose visual position is closest to
// x, used by Up/Down movement to hit-test a caret's preserved baseline
// against the target line.
func (m CellMetrics) ColumnAt(content []rune, x Pixel) int {
	if x <= 0 {
		return 0
	}
	var cur Pixel
	for i, r := range content {
		w := Pixel(uniseg.StringWidth(string(r))) * m.CellWidth
		if x < cur+w/2 {
			return i
		}
		cur += w
	}
	return len(content)
}
