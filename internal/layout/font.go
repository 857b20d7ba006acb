package layout

import "github.com/rivo/uniseg"

// MonospaceFont is the font contract's one concrete implementation in this
// module: a cell-grid font where every codepoint advances by its display
// width (1 or 2 cells) times a fixed cell size, and kerning is always zero.
// It satisfies coreapi.Font structurally; layout does not import coreapi so
// that coreapi (which needs linestore/caretset/editengine/journal for its
// EditorContext facade) stays the higher package in the dependency order.
type MonospaceFont struct {
	CellWidth, CellHeight Pixel
}

// NewMonospaceFont returns a MonospaceFont with the given cell dimensions.
func NewMonospaceFont(cellWidth, cellHeight Pixel) MonospaceFont {
	return MonospaceFont{CellWidth: cellWidth, CellHeight: cellHeight}
}

// Advance returns the pen advance for codepoint r.
func (f MonospaceFont) Advance(r rune) Pixel {
	return Pixel(uniseg.StringWidth(string(r))) * f.CellWidth
}

// GlyphRect returns the glyph's placement rectangle relative to the pen
// position. A cell-grid font always draws its glyph filling the cell.
func (f MonospaceFont) GlyphRect(r rune) Rect {
	return Rect{X: 0, Y: 0, W: f.Advance(r), H: f.CellHeight}
}

// Kerning returns the 2-D offset applied between a and b. A monospace grid
// never kerns.
func (f MonospaceFont) Kerning(a, b rune) (Pixel, Pixel) {
	return 0, 0
}

// LineHeight returns the font's line height.
func (f MonospaceFont) LineHeight() Pixel { return f.CellHeight }

// MaxAdvance returns the font's maximum advance width, the wide-glyph cell.
func (f MonospaceFont) MaxAdvance() Pixel { return 2 * f.CellWidth }
