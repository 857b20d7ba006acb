package journal

import (
	"github.com/dshills/keystorm-dock/internal/caretset"
	"github.com/dshills/keystorm-dock/internal/linestore"
)

// Record is one text-altering sub-operation within a Pack. Front and Rear
// are expressed post-edit: for an addition, front..rear is the inserted
// range and Payload is the inserted text; for a deletion, front == rear is
// where the text used to be and Payload is the deleted text.
type Record struct {
	Front, Rear  linestore.Position
	CaretAtFront bool
	HadSelection bool
	IsAddition   bool
	Payload      []rune
}

// Pack is the ordered list of Records produced by one user command across
// every caret; it is the atomic unit of undo/redo. Before and After are
// the caret set immediately preceding and immediately following the
// command: since a pack's Records carry only post-edit (and, for
// deletions, collapsed-to-a-point) positions, reconstructing a fully
// faithful caret set purely from Records would require re-deriving the
// ascending-order dy/dx fix-up's cumulative effect across the whole pack.
// Carrying the two snapshots directly is what lets Undo/Redo restore the
// exact caret set bit-for-bit instead of recomputing it.
type Pack struct {
	Records []Record
	Before  []caretset.Caret
	After   []caretset.Caret
}
