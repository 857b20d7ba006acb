package dock

import "github.com/dshills/keystorm-dock/internal/coreerr"

// SetSeparator moves split's separator to frac (clamped to [0,1]) and
// maintains descendant separators on the dragged side only, per spec.md's
// single-side recursion resolution: only same-orientation split panels
// reachable through side (0 or 1, the child edge the user is dragging)
// have their own separator rescaled, so the relative sub-division of
// every panel NOT on that side is left untouched.
func (m *Manager) SetSeparator(split SplitHandle, frac float64, side int) error {
	sp, ok := m.splits.Get(split)
	if !ok {
		return coreerr.InvalidStatef("SetSeparator: split does not exist")
	}
	if side != 0 && side != 1 {
		return coreerr.InvalidStatef("SetSeparator: side must be 0 or 1")
	}
	old := sp.Separator
	next := clamp01(frac)
	sp.Separator = next
	m.maintainSeparator(sp.Children[side], sp.Orientation, old, next)
	return nil
}

// maintainSeparator rescales ref's own separator (if ref is a split panel
// sharing orientation) by the ratio of the parent's new span to its old
// span on the dragged side, then recurses into ref's near child (side 0)
// only — the "dragged side" recursion never crosses into the sibling
// subtree, preventing the cascading layout changes spec.md's separator
// maintenance rule forbids.
func (m *Manager) maintainSeparator(ref ChildRef, orientation Orientation, oldSpan, newSpan float64) {
	if !ref.IsSplit {
		return
	}
	child, ok := m.splits.Get(ref.Split)
	if !ok || child.Orientation != orientation || oldSpan <= 0 {
		return
	}
	ratio := newSpan / oldSpan
	child.Separator = clamp01(child.Separator * ratio)
	m.maintainSeparator(child.Children[0], orientation, oldSpan, newSpan)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
