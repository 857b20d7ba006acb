package caretset

import (
	"sort"

	"github.com/dshills/keystorm-dock/internal/linestore"
)

// Set is an ordered collection of carets, kept sorted by active position,
// with the invariant that no two carets have overlapping selections.
type Set struct {
	carets    []Caret
	lastAdded int
}

// New returns a set containing a single caret with no selection at pos.
func New(pos linestore.Position) *Set {
	return &Set{carets: []Caret{NewCaret(pos, 0)}}
}

// NewEmpty returns a set with no carets at all, for callers (such as undo
// replay) that build up a set from scratch.
func NewEmpty() *Set {
	return &Set{}
}

// Count returns the number of carets.
func (s *Set) Count() int { return len(s.carets) }

// All returns a copy of every caret, in active-position order.
func (s *Set) All() []Caret {
	out := make([]Caret, len(s.carets))
	copy(out, s.carets)
	return out
}

// At returns the caret at the given index in active-position order.
func (s *Set) At(i int) Caret { return s.carets[i] }

// Last returns the last-added caret, used to center the view after edits.
func (s *Set) Last() Caret {
	if len(s.carets) == 0 {
		return Caret{}
	}
	return s.carets[s.lastAdded]
}

// ReplaceAll discards every caret and replaces the set's contents with
// carets, normalizing overlaps by merging them pairwise in the order given.
func (s *Set) ReplaceAll(carets []Caret) {
	s.carets = nil
	s.lastAdded = 0
	for _, c := range carets {
		s.Insert(c)
	}
}

// Contains reports whether pos lies within any caret's selection range.
func (s *Set) Contains(pos linestore.Position) bool {
	for _, c := range s.carets {
		if c.Contains(pos) {
			return true
		}
	}
	return false
}

// Insert adds c to the set, merging it with every existing caret whose
// range overlaps c's (adjacency counts as overlap for this purpose). It
// returns the resulting caret and whether a merge with an existing caret
// occurred, so the caller can recompute the caret's baseline when it has.
func (s *Set) Insert(c Caret) (Caret, bool) {
	c0, c1 := c.Range()

	var removed []Caret
	kept := s.carets[:0:0]
	for _, existing := range s.carets {
		elo, ehi := existing.Range()
		if elo.LessEqual(c1) && c0.LessEqual(ehi) {
			removed = append(removed, existing)
		} else {
			kept = append(kept, existing)
		}
	}

	merged := c
	if len(removed) > 0 {
		merged = mergeCaret(c, removed)
		merged.invalidateRects()
	}

	idx := sort.Search(len(kept), func(i int) bool {
		lo, _ := kept[i].Range()
		return !lo.Less(minPos(merged))
	})
	kept = append(kept, Caret{})
	copy(kept[idx+1:], kept[idx:])
	kept[idx] = merged

	s.carets = kept
	s.lastAdded = idx
	return merged, len(removed) > 0
}

func minPos(c Caret) linestore.Position {
	lo, _ := c.Range()
	return lo
}

// mergeCaret implements the spec's exhaustive merge sub-cases for a
// newly-added caret c against the set of carets it overlapped.
func mergeCaret(c Caret, removed []Caret) Caret {
	c0, c1 := c.Range()

	// Both C and some removed caret are point carets: with no overlap
	// possible between distinct points, an overlapping point/point pair
	// must sit at the same position, so no union is needed.
	if c.IsEmpty() {
		for _, r := range removed {
			if r.IsEmpty() && r.Active.Equal(c.Active) {
				return c
			}
		}
	}

	// C is a point caret strictly inside a single removed caret's range:
	// take that caret's full range and its orientation.
	if c.IsEmpty() && len(removed) == 1 {
		r := removed[0]
		rlo, rhi := r.Range()
		if rlo.Less(c0) && c0.Less(rhi) {
			return Caret{Active: r.Active, Anchor: r.Anchor, Baseline: r.Baseline}
		}
	}

	// Every removed range lies within C's own range (shared endpoints
	// allowed): the merge
	// is just C, in C's own orientation.
	allInside := len(removed) > 0
	for _, r := range removed {
		rlo, rhi := r.Range()
		if !(c0.LessEqual(rlo) && rhi.LessEqual(c1)) {
			allInside = false
			break
		}
		if rlo.Equal(c0) && rhi.Equal(c1) && rlo.Equal(rhi) && c0.Equal(c1) {
			// both degenerate and equal: not a genuine containment, fall
			// through to the general union case below.
			allInside = false
			break
		}
	}
	if allInside {
		return Caret{Active: c.Active, Anchor: c.Anchor, Baseline: c.Baseline}
	}

	// General case: span the union of every removed range and C, keeping
	// C's orientation (which end is active).
	lo, hi := c0, c1
	for _, r := range removed {
		rlo, rhi := r.Range()
		lo = linestore.Min(lo, rlo)
		hi = linestore.Max(hi, rhi)
	}
	if c.Active.LessEqual(c.Anchor) {
		return Caret{Active: lo, Anchor: hi, Baseline: c.Baseline}
	}
	return Caret{Active: hi, Anchor: lo, Baseline: c.Baseline}
}
