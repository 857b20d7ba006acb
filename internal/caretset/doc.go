// Package caretset implements the editor's ordered, merge-on-overlap
// collection of carets.
//
// A Caret is an (active, anchor) pair of linestore.Position values plus a
// baseline pixel x-coordinate remembered for vertical movement. When active
// equals anchor the caret has no selection; otherwise the selection spans
// [min(active,anchor), max(active,anchor)].
//
// A Set keeps its carets sorted by active position and enforces that no two
// carets have overlapping selections — a point caret sitting exactly at the
// boundary of another caret's selection is absorbed into it rather than
// left adjacent. Insert is the only mutator that can violate and then
// restore this invariant; every other operation assumes it already holds.
package caretset
