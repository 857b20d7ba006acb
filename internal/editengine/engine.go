package editengine

import (
	"sync"

	"github.com/dshills/keystorm-dock/internal/caretset"
	"github.com/dshills/keystorm-dock/internal/coreerr"
	"github.com/dshills/keystorm-dock/internal/journal"
	"github.com/dshills/keystorm-dock/internal/linestore"
)

// Engine binds a line store, a caret set, and an undo journal and mediates
// every mutation to them through a Scope.
type Engine struct {
	mu      sync.Mutex
	store   *linestore.Store
	carets  *caretset.Set
	journal *journal.Journal
	cfg     Config
	busy    bool
}

// New returns an engine operating on the given store, caret set, and
// journal.
func New(store *linestore.Store, carets *caretset.Set, j *journal.Journal, cfg Config) *Engine {
	return &Engine{store: store, carets: carets, journal: j, cfg: cfg}
}

// Store returns the engine's backing line store.
func (e *Engine) Store() *linestore.Store { return e.store }

// Carets returns the engine's current caret set.
func (e *Engine) Carets() *caretset.Set {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.carets
}

// Begin opens a new scope over the engine's current caret set. Only one
// scope may be open at a time.
func (e *Engine) Begin() (*Scope, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return nil, coreerr.InvalidStatef("edit engine scope already active")
	}
	e.busy = true
	original := e.carets.All()
	return &Scope{
		eng:      e,
		original: original,
		newSet:   caretset.NewEmpty(),
		ly:       -1,
	}, nil
}

// Undo replays the most recent pack inversely. Records are replayed in
// reverse so each inverse edit lands in the document frame it was
// recorded against (record i's Front/Rear are stated in the frame that
// still includes edits 0..i-1, which is exactly the frame left behind
// once edits i+1..n-1 have already been inverted). The restored caret set
// is the pack's own Before snapshot rather than anything recomputed from
// the records: a record's post-edit Front/Rear alone cannot recover the
// pre-pack position without re-deriving the same ascending-order dy/dx
// fix-up Begin/Close applied across the whole pack, so the snapshot taken
// at Begin is carried forward instead.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return coreerr.InvalidStatef("cannot undo while a scope is active")
	}
	pack, err := e.journal.Undo()
	if err != nil {
		return err
	}
	for i := len(pack.Records) - 1; i >= 0; i-- {
		r := pack.Records[i]
		if r.IsAddition {
			if _, err := deleteRange(e.store, r.Front, r.Rear); err != nil {
				return err
			}
		} else {
			if err := insertVerbatim(e.store, r.Front, string(r.Payload)); err != nil {
				return err
			}
		}
	}
	e.carets = restoreCaretSet(pack.Before)
	return nil
}

// Redo replays the next pack forward, in the same ascending order it was
// originally recorded in, restoring the pack's After snapshot as the
// caret set.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return coreerr.InvalidStatef("cannot redo while a scope is active")
	}
	pack, err := e.journal.Redo()
	if err != nil {
		return err
	}
	for _, r := range pack.Records {
		if r.IsAddition {
			if err := insertVerbatim(e.store, r.Front, string(r.Payload)); err != nil {
				return err
			}
		} else {
			// A deletion record has Front == Rear, so the end of the
			// deleted span is recovered from the payload.
			lines := splitTextLines(string(r.Payload))
			rear := linestore.Position{Line: r.Front.Line + len(lines) - 1, Column: len([]rune(lines[len(lines)-1].content))}
			if len(lines) == 1 {
				rear.Column += r.Front.Column
			}
			if _, err := deleteRange(e.store, r.Front, rear); err != nil {
				return err
			}
		}
	}
	e.carets = restoreCaretSet(pack.After)
	return nil
}

// restoreCaretSet rebuilds a Set from a Pack's Before/After snapshot. The
// snapshot is already non-overlapping (it was a valid Set when captured),
// so re-inserting it caret-by-caret reproduces it exactly without
// triggering any merge.
func restoreCaretSet(snapshot []caretset.Caret) *caretset.Set {
	s := caretset.NewEmpty()
	for _, c := range snapshot {
		s.Insert(c)
	}
	return s
}

// insertVerbatim inserts text at pos without any selection handling or
// mode-sensitive overwrite, used by undo/redo replay where the record
// already describes exactly what must reappear.
func insertVerbatim(store *linestore.Store, pos linestore.Position, text string) error {
	_, _, err := insertText(store, pos, text)
	return err
}
