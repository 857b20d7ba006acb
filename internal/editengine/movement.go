package editengine

import (
	"github.com/dshills/keystorm-dock/internal/caretset"
	"github.com/dshills/keystorm-dock/internal/linestore"
)

func (s *Scope) placeKeepBaseline(pos linestore.Position, baseline float64) caretset.Caret {
	return caretset.Caret{Active: pos, Anchor: pos, Baseline: baseline}
}

func (s *Scope) moveLeftOne(pos linestore.Position) linestore.Position {
	if pos.Column > 0 {
		return linestore.Position{Line: pos.Line, Column: pos.Column - 1}
	}
	if pos.Line > 0 {
		prev, err := s.eng.store.LineAt(pos.Line - 1)
		if err != nil {
			return pos
		}
		return linestore.Position{Line: pos.Line - 1, Column: prev.Len()}
	}
	return pos
}

func (s *Scope) moveRightOne(pos linestore.Position) linestore.Position {
	line, err := s.eng.store.LineAt(pos.Line)
	if err != nil {
		return pos
	}
	if pos.Column < line.Len() {
		return linestore.Position{Line: pos.Line, Column: pos.Column + 1}
	}
	if pos.Line < s.eng.store.NumLines()-1 {
		return linestore.Position{Line: pos.Line + 1, Column: 0}
	}
	return pos
}

// Left applies Left-arrow movement: with a selection and shift not held,
// collapses to the lower endpoint; otherwise moves one codepoint left,
// crossing line boundaries.
func (s *Scope) Left(shift bool) {
	for _, orig := range s.original {
		active := s.fixup(orig.Active)
		anchor := s.fixup(orig.Anchor)
		if !shift && !active.Equal(anchor) {
			lo := linestore.Min(active, anchor)
			s.newSet.Insert(s.place(lo))
			continue
		}
		next := s.moveLeftOne(active)
		if shift {
			s.newSet.Insert(caretset.Caret{Active: next, Anchor: anchor, Baseline: s.baseline(next)})
		} else {
			s.newSet.Insert(s.place(next))
		}
	}
}

// Right applies Right-arrow movement, symmetric with Left.
func (s *Scope) Right(shift bool) {
	for _, orig := range s.original {
		active := s.fixup(orig.Active)
		anchor := s.fixup(orig.Anchor)
		if !shift && !active.Equal(anchor) {
			hi := linestore.Max(active, anchor)
			s.newSet.Insert(s.place(hi))
			continue
		}
		next := s.moveRightOne(active)
		if shift {
			s.newSet.Insert(caretset.Caret{Active: next, Anchor: anchor, Baseline: s.baseline(next)})
		} else {
			s.newSet.Insert(s.place(next))
		}
	}
}

// Up applies Up-arrow movement, hit-testing the target line's content
// against the caret's preserved baseline. At the top line the caret stays
// put.
func (s *Scope) Up(shift bool) {
	for _, orig := range s.original {
		active := s.fixup(orig.Active)
		anchor := s.fixup(orig.Anchor)
		next := active
		if active.Line > 0 {
			targetLine := active.Line - 1
			content, err := s.eng.store.LineAt(targetLine)
			if err == nil {
				col := s.eng.cfg.metrics().ColumnAt(content.Content, orig.Baseline)
				next = linestore.Position{Line: targetLine, Column: col}
			}
		}
		if shift {
			s.newSet.Insert(caretset.Caret{Active: next, Anchor: anchor, Baseline: orig.Baseline})
		} else {
			s.newSet.Insert(s.placeKeepBaseline(next, orig.Baseline))
		}
	}
}

// Down applies Down-arrow movement, symmetric with Up.
func (s *Scope) Down(shift bool) {
	for _, orig := range s.original {
		active := s.fixup(orig.Active)
		anchor := s.fixup(orig.Anchor)
		next := active
		if active.Line < s.eng.store.NumLines()-1 {
			targetLine := active.Line + 1
			content, err := s.eng.store.LineAt(targetLine)
			if err == nil {
				col := s.eng.cfg.metrics().ColumnAt(content.Content, orig.Baseline)
				next = linestore.Position{Line: targetLine, Column: col}
			}
		}
		if shift {
			s.newSet.Insert(caretset.Caret{Active: next, Anchor: anchor, Baseline: orig.Baseline})
		} else {
			s.newSet.Insert(s.placeKeepBaseline(next, orig.Baseline))
		}
	}
}

// Home moves to the line's first non-blank column, or to column 0 if
// already there or before it.
func (s *Scope) Home(shift bool) {
	for _, orig := range s.original {
		active := s.fixup(orig.Active)
		anchor := s.fixup(orig.Anchor)
		line, err := s.eng.store.LineAt(active.Line)
		target := 0
		if err == nil {
			fnb := line.FirstNonBlank()
			if active.Column > fnb {
				target = fnb
			}
		}
		next := linestore.Position{Line: active.Line, Column: target}
		if shift {
			s.newSet.Insert(caretset.Caret{Active: next, Anchor: anchor, Baseline: s.baseline(next)})
		} else {
			s.newSet.Insert(s.place(next))
		}
	}
}

// End moves to the line's content length.
func (s *Scope) End(shift bool) {
	for _, orig := range s.original {
		active := s.fixup(orig.Active)
		anchor := s.fixup(orig.Anchor)
		line, err := s.eng.store.LineAt(active.Line)
		target := active.Column
		if err == nil {
			target = line.Len()
		}
		next := linestore.Position{Line: active.Line, Column: target}
		if shift {
			s.newSet.Insert(caretset.Caret{Active: next, Anchor: anchor, Baseline: s.baseline(next)})
		} else {
			s.newSet.Insert(s.place(next))
		}
	}
}
