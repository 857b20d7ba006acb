package editengine

import (
	"github.com/dshills/keystorm-dock/internal/caretset"
	"github.com/dshills/keystorm-dock/internal/journal"
	"github.com/dshills/keystorm-dock/internal/linestore"
)

// Scope is a single command's worth of per-caret iteration: it captures
// the caret set on Begin and, on Close, swaps in the set built from each
// caret's result and hands the accumulated Modification Pack to the
// journal.
type Scope struct {
	eng      *Engine
	original []caretset.Caret
	newSet   *caretset.Set
	pack     journal.Pack

	// dy/dx/_ly are the running positional fix-up described in the package
	// doc: dy is the cumulative line-delta from completed edits this scope,
	// dx is the cumulative column-delta valid only on line ly, and ly is
	// which post-edit line dx's frame of reference is for.
	dy, dx, ly int

	skipJournal bool
	closed      bool
}

// fixup translates a captured original position by the scope's running
// delta before it is used as the basis for this caret's edit.
func (s *Scope) fixup(p linestore.Position) linestore.Position {
	line := p.Line + s.dy
	col := p.Column
	if line == s.ly {
		col += s.dx
	}
	return linestore.Position{Line: line, Column: col}
}

// afterEdit updates dy/dx/ly after an edit at editLine producing
// linesAdded new lines (negative for lines removed), leaving resultLine as
// the post-edit line subsequent same-row carets should be translated onto,
// with colDelta the additive column correction on resultLine.
func (s *Scope) afterEdit(editLine, linesAdded, resultLine, colDelta int) {
	if linesAdded != 0 {
		s.dy += linesAdded
		s.ly = resultLine
		s.dx = colDelta
		return
	}
	if editLine == s.ly {
		s.dx += colDelta
	} else {
		s.ly = editLine
		s.dx = colDelta
	}
}

func (s *Scope) recordAddition(front, rear linestore.Position, payload string, caretAtFront, hadSelection bool) {
	s.pack.Records = append(s.pack.Records, journal.Record{
		Front: front, Rear: rear, CaretAtFront: caretAtFront, HadSelection: hadSelection,
		IsAddition: true, Payload: []rune(payload),
	})
}

func (s *Scope) recordDeletion(at linestore.Position, payload string, hadSelection bool) {
	s.pack.Records = append(s.pack.Records, journal.Record{
		Front: at, Rear: at, HadSelection: hadSelection,
		IsAddition: false, Payload: []rune(payload),
	})
}

func (s *Scope) baseline(pos linestore.Position) float64 {
	content, err := s.eng.store.LineAt(pos.Line)
	if err != nil {
		return float64(pos.Column)
	}
	return s.eng.cfg.metrics().XAt(content.Content, pos.Column)
}

func (s *Scope) place(pos linestore.Position) caretset.Caret {
	return caretset.NewCaret(pos, s.baseline(pos))
}

// SkipJournal opts the scope's pack out of the undo journal: Close then
// leaves the journal unchanged.
func (s *Scope) SkipJournal() { s.skipJournal = true }

// Close swaps the engine's caret set for the one this scope produced and,
// if SkipJournal was not called and the pack is non-empty, appends the
// pack to the journal. Close is idempotent.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.eng.mu.Lock()
	s.eng.carets = s.newSet
	s.eng.busy = false
	s.eng.mu.Unlock()
	if !s.skipJournal && len(s.pack.Records) > 0 {
		s.pack.Before = s.original
		s.pack.After = s.newSet.All()
		s.eng.journal.Append(s.pack)
	}
}
