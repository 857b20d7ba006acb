package editengine

import (
	"github.com/dshills/keystorm-dock/internal/caretset"
	"github.com/dshills/keystorm-dock/internal/linestore"
)

// InsertCharacter applies the insert-character operation to every caret in
// ascending active-position order.
func (s *Scope) InsertCharacter(c rune) error {
	for _, orig := range s.original {
		active := s.fixup(orig.Active)
		anchor := s.fixup(orig.Anchor)
		hadSelection := !active.Equal(anchor)

		if hadSelection {
			lo, hi := linestore.Min(active, anchor), linestore.Max(active, anchor)
			deleted, err := deleteRange(s.eng.store, lo, hi)
			if err != nil {
				return err
			}
			s.recordDeletion(lo, deleted, true)
			s.afterDeleteRange(lo, hi)
			active, anchor = lo, lo
		}

		var result linestore.Position
		if c == '\n' {
			it, err := s.eng.store.At(active.Line)
			if err != nil {
				return err
			}
			line := it.Line()
			origEnding := line.Ending
			prefix := append([]rune{}, line.Content[:active.Column]...)
			suffix := append([]rune{}, line.Content[active.Column:]...)
			s.eng.store.SetLine(it, linestore.Line{Content: prefix, Ending: s.eng.cfg.LineEnding})
			s.eng.store.InsertAfter(it, linestore.Line{Content: suffix, Ending: origEnding})

			result = linestore.Position{Line: active.Line + 1, Column: 0}
			s.recordAddition(active, result, "\n", false, hadSelection)
			s.afterEdit(active.Line, 1, active.Line+1, -active.Column)
		} else {
			it, err := s.eng.store.At(active.Line)
			if err != nil {
				return err
			}
			line := it.Line()
			insert := s.eng.cfg.InsertMode || hadSelection || active.Column == line.Len()
			if insert {
				content := make([]rune, 0, line.Len()+1)
				content = append(content, line.Content[:active.Column]...)
				content = append(content, c)
				content = append(content, line.Content[active.Column:]...)
				s.eng.store.SetLine(it, linestore.Line{Content: content, Ending: line.Ending})

				result = linestore.Position{Line: active.Line, Column: active.Column + 1}
				s.recordAddition(active, result, string(c), false, hadSelection)
				s.afterEdit(active.Line, 0, 0, 1)
			} else {
				replaced := line.Content[active.Column]
				s.recordDeletion(active, string(replaced), hadSelection)

				content := append([]rune{}, line.Content...)
				content[active.Column] = c
				s.eng.store.SetLine(it, linestore.Line{Content: content, Ending: line.Ending})

				result = linestore.Position{Line: active.Line, Column: active.Column + 1}
				s.recordAddition(active, result, string(c), false, hadSelection)
				s.afterEdit(active.Line, 0, 0, 1)
			}
		}
		s.newSet.Insert(s.place(result))
	}
	return nil
}

// InsertText applies the insert-text operation to every caret.
func (s *Scope) InsertText(text string) error {
	for _, orig := range s.original {
		active := s.fixup(orig.Active)
		anchor := s.fixup(orig.Anchor)
		hadSelection := !active.Equal(anchor)

		if hadSelection {
			lo, hi := linestore.Min(active, anchor), linestore.Max(active, anchor)
			deleted, err := deleteRange(s.eng.store, lo, hi)
			if err != nil {
				return err
			}
			s.recordDeletion(lo, deleted, true)
			s.afterDeleteRange(lo, hi)
			active = lo
		}

		end, linesAdded, err := insertText(s.eng.store, active, text)
		if err != nil {
			return err
		}
		s.recordAddition(active, end, text, false, hadSelection)
		if linesAdded > 0 {
			s.afterEdit(active.Line, linesAdded, end.Line, end.Column-active.Column)
		} else {
			s.afterEdit(active.Line, 0, 0, end.Column-active.Column)
		}
		s.newSet.Insert(s.place(end))
	}
	return nil
}

// DeleteCharBefore applies the delete-char-before (Backspace) operation.
func (s *Scope) DeleteCharBefore() error {
	for _, orig := range s.original {
		active := s.fixup(orig.Active)
		anchor := s.fixup(orig.Anchor)
		hadSelection := !active.Equal(anchor)

		var result linestore.Position
		if hadSelection {
			lo, hi := linestore.Min(active, anchor), linestore.Max(active, anchor)
			deleted, err := deleteRange(s.eng.store, lo, hi)
			if err != nil {
				return err
			}
			s.recordDeletion(lo, deleted, true)
			s.afterDeleteRange(lo, hi)
			result = lo
		} else if active.Column > 0 {
			lo := linestore.Position{Line: active.Line, Column: active.Column - 1}
			deleted, err := deleteRange(s.eng.store, lo, active)
			if err != nil {
				return err
			}
			s.recordDeletion(lo, deleted, false)
			s.afterEdit(active.Line, 0, 0, -1)
			result = lo
		} else if active.Line > 0 {
			prevLine, err := s.eng.store.LineAt(active.Line - 1)
			if err != nil {
				return err
			}
			lo := linestore.Position{Line: active.Line - 1, Column: prevLine.Len()}
			deleted, err := deleteRange(s.eng.store, lo, active)
			if err != nil {
				return err
			}
			s.recordDeletion(lo, deleted, false)
			s.afterEdit(active.Line-1, -1, active.Line-1, lo.Column-0)
			result = lo
		} else {
			result = active
		}
		s.newSet.Insert(s.place(result))
	}
	return nil
}

// DeleteCharAfter applies the delete-char-after (Delete) operation.
func (s *Scope) DeleteCharAfter() error {
	for _, orig := range s.original {
		active := s.fixup(orig.Active)
		anchor := s.fixup(orig.Anchor)
		hadSelection := !active.Equal(anchor)

		var result linestore.Position
		if hadSelection {
			lo, hi := linestore.Min(active, anchor), linestore.Max(active, anchor)
			deleted, err := deleteRange(s.eng.store, lo, hi)
			if err != nil {
				return err
			}
			s.recordDeletion(lo, deleted, true)
			s.afterDeleteRange(lo, hi)
			result = lo
		} else {
			line, err := s.eng.store.LineAt(active.Line)
			if err != nil {
				return err
			}
			if active.Column < line.Len() {
				hi := linestore.Position{Line: active.Line, Column: active.Column + 1}
				deleted, err := deleteRange(s.eng.store, active, hi)
				if err != nil {
					return err
				}
				s.recordDeletion(active, deleted, false)
				s.afterEdit(active.Line, 0, 0, -1)
			} else if active.Line < s.eng.store.NumLines()-1 {
				hi := linestore.Position{Line: active.Line + 1, Column: 0}
				deleted, err := deleteRange(s.eng.store, active, hi)
				if err != nil {
					return err
				}
				s.recordDeletion(active, deleted, false)
				s.afterEdit(active.Line+1, -1, active.Line, active.Column-0)
			}
			result = active
		}
		s.newSet.Insert(s.place(result))
	}
	return nil
}

// MoveTo sets every caret's active and anchor to target, with no selection
// and no modification records.
func (s *Scope) MoveTo(target linestore.Position) {
	for range s.original {
		s.newSet.Insert(s.place(target))
	}
}

// MoveToWithSelection moves each caret's active endpoint to target,
// keeping its anchor fixed, swapping endpoints and flipping orientation if
// the move inverts the ordering.
func (s *Scope) MoveToWithSelection(target linestore.Position) {
	for _, orig := range s.original {
		anchor := s.fixup(orig.Anchor)
		c := caretset.Caret{Active: target, Anchor: anchor, Baseline: s.baseline(target)}
		s.newSet.Insert(c)
	}
}

// afterDeleteRange updates the positional fix-up after a selection
// deletion spanning lo..hi.
func (s *Scope) afterDeleteRange(lo, hi linestore.Position) {
	if lo.Line == hi.Line {
		s.afterEdit(lo.Line, 0, 0, -(hi.Column - lo.Column))
		return
	}
	s.afterEdit(hi.Line, -(hi.Line - lo.Line), lo.Line, lo.Column-hi.Column)
}
