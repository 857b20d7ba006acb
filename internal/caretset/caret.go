package caretset

import "github.com/dshills/keystorm-dock/internal/linestore"

// Rect is an axis-aligned selection rectangle in buffer-local coordinates,
// one per visible line a selection touches.
type Rect struct {
	Line   int
	X0, X1 float64
}

// Caret is an insertion point plus an optional selection and the remembered
// vertical-movement baseline.
type Caret struct {
	Active   linestore.Position
	Anchor   linestore.Position
	Baseline float64

	rectCache []Rect
	rectValid bool
}

// NewCaret returns a caret with no selection at pos.
func NewCaret(pos linestore.Position, baseline float64) Caret {
	return Caret{Active: pos, Anchor: pos, Baseline: baseline}
}

// IsEmpty reports whether the caret has no selection.
func (c Caret) IsEmpty() bool { return c.Active.Equal(c.Anchor) }

// Range returns the caret's selection range, ordered low..high. For an
// empty caret, lo == hi == Active.
func (c Caret) Range() (lo, hi linestore.Position) {
	return linestore.Min(c.Active, c.Anchor), linestore.Max(c.Active, c.Anchor)
}

// Overlaps reports whether c's range overlaps other's range, where a point
// caret touching the boundary of a ranged caret counts as overlapping.
func (c Caret) Overlaps(other Caret) bool {
	lo, hi := c.Range()
	olo, ohi := other.Range()
	return lo.LessEqual(ohi) && olo.LessEqual(hi)
}

// Contains reports whether pos lies within c's range, inclusive.
func (c Caret) Contains(pos linestore.Position) bool {
	lo, hi := c.Range()
	return lo.LessEqual(pos) && pos.LessEqual(hi)
}

// invalidateRects clears the cached selection rectangles; called on any
// position change.
func (c *Caret) invalidateRects() {
	c.rectCache = nil
	c.rectValid = false
}

// SelectionRects returns the cached selection rectangles, building them
// with build if the cache was invalidated.
func (c *Caret) SelectionRects(build func(c Caret) []Rect) []Rect {
	if !c.rectValid {
		c.rectCache = build(*c)
		c.rectValid = true
	}
	return c.rectCache
}

// collapsedTo returns a copy of c with active and anchor both set to pos
// and the selection cache invalidated.
func (c Caret) collapsedTo(pos linestore.Position) Caret {
	nc := Caret{Active: pos, Anchor: pos, Baseline: c.Baseline}
	return nc
}
