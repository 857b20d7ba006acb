package editengine

import (
	"github.com/dshills/keystorm-dock/internal/coreerr"
	"github.com/dshills/keystorm-dock/internal/linestore"
)

// deleteRange removes the text in [lo, hi) from store, joining lines when
// the range spans more than one, and returns the deleted text. The merged
// line (when lo.Line != hi.Line) drops lo's own ending and adopts hi's,
// matching the single-line merge-with-previous-line rule generalized to an
// arbitrary span.
func deleteRange(store *linestore.Store, lo, hi linestore.Position) (string, error) {
	if hi.Less(lo) {
		lo, hi = hi, lo
	}
	itLo, err := store.At(lo.Line)
	if err != nil {
		return "", err
	}
	lLine := itLo.Line()

	if lo.Line == hi.Line {
		if lo.Column < 0 || hi.Column > lLine.Len() || hi.Column < lo.Column {
			return "", coreerr.OutOfRangef("delete range columns [%d,%d) on line %d of length %d", lo.Column, hi.Column, lo.Line, lLine.Len())
		}
		deleted := string(lLine.Content[lo.Column:hi.Column])
		newContent := make([]rune, 0, lLine.Len()-(hi.Column-lo.Column))
		newContent = append(newContent, lLine.Content[:lo.Column]...)
		newContent = append(newContent, lLine.Content[hi.Column:]...)
		store.SetLine(itLo, linestore.Line{Content: newContent, Ending: lLine.Ending})
		return deleted, nil
	}

	if lo.Column < 0 || lo.Column > lLine.Len() {
		return "", coreerr.OutOfRangef("delete range start column %d on line %d of length %d", lo.Column, lo.Line, lLine.Len())
	}

	var deleted []rune
	deleted = append(deleted, lLine.Content[lo.Column:]...)
	deleted = append(deleted, []rune(lLine.Ending.Text())...)

	it := itLo.Next()
	for n := 0; n < hi.Line-lo.Line-1; n++ {
		if !it.Valid() {
			return "", coreerr.OutOfRangef("delete range end line %d out of range", hi.Line)
		}
		l := it.Line()
		deleted = append(deleted, l.Content...)
		deleted = append(deleted, []rune(l.Ending.Text())...)
		it = store.EraseOne(it)
	}
	if !it.Valid() {
		return "", coreerr.OutOfRangef("delete range end line %d out of range", hi.Line)
	}
	hLine := it.Line()
	if hi.Column < 0 || hi.Column > hLine.Len() {
		return "", coreerr.OutOfRangef("delete range end column %d on line %d of length %d", hi.Column, hi.Line, hLine.Len())
	}
	deleted = append(deleted, hLine.Content[:hi.Column]...)

	newContent := make([]rune, 0, lo.Column+hLine.Len()-hi.Column)
	newContent = append(newContent, lLine.Content[:lo.Column]...)
	newContent = append(newContent, hLine.Content[hi.Column:]...)

	store.EraseOne(it)
	store.SetLine(itLo, linestore.Line{Content: newContent, Ending: hLine.Ending})

	return string(deleted), nil
}

// subLine is one line of text split out of an inserted string, using the
// same CR/LF one-codepoint-lookahead logic as the line store's loader.
type subLine struct {
	content string
	ending  linestore.Ending
}

func splitTextLines(s string) []subLine {
	runes := []rune(s)
	var out []subLine
	var cur []rune
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\n':
			out = append(out, subLine{content: string(cur), ending: linestore.EndingLF})
			cur = nil
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				out = append(out, subLine{content: string(cur), ending: linestore.EndingCRLF})
				cur = nil
				i++
			} else {
				out = append(out, subLine{content: string(cur), ending: linestore.EndingCR})
				cur = nil
			}
		default:
			cur = append(cur, runes[i])
		}
	}
	out = append(out, subLine{content: string(cur), ending: linestore.EndingNone})
	return out
}

// insertText inserts text at pos, splitting it into lines as described in
// the per-caret insert-text operation: the first sub-line is appended to
// the line's existing prefix; each subsequent sub-line becomes a new line;
// the original line's saved suffix is appended to the last inserted line,
// which inherits the original line's ending. Returns the position just
// past the inserted text and the number of lines the insertion added.
func insertText(store *linestore.Store, pos linestore.Position, text string) (linestore.Position, int, error) {
	it, err := store.At(pos.Line)
	if err != nil {
		return linestore.Position{}, 0, err
	}
	line := it.Line()
	if pos.Column < 0 || pos.Column > line.Len() {
		return linestore.Position{}, 0, coreerr.OutOfRangef("insert column %d on line %d of length %d", pos.Column, pos.Line, line.Len())
	}
	prefix := line.Content[:pos.Column]
	suffix := line.Content[pos.Column:]
	originalEnding := line.Ending

	subLines := splitTextLines(text)
	if len(subLines) == 1 {
		content := make([]rune, 0, len(prefix)+len(subLines[0].content)+len(suffix))
		content = append(content, prefix...)
		content = append(content, []rune(subLines[0].content)...)
		content = append(content, suffix...)
		store.SetLine(it, linestore.Line{Content: content, Ending: originalEnding})
		return linestore.Position{Line: pos.Line, Column: pos.Column + len([]rune(subLines[0].content))}, 0, nil
	}

	first := make([]rune, 0, len(prefix)+len(subLines[0].content))
	first = append(first, prefix...)
	first = append(first, []rune(subLines[0].content)...)
	store.SetLine(it, linestore.Line{Content: first, Ending: subLines[0].ending})

	cur := it
	for i := 1; i < len(subLines)-1; i++ {
		cur = store.InsertAfter(cur, linestore.NewLine(subLines[i].content, subLines[i].ending))
	}

	lastContent := make([]rune, 0, len(subLines[len(subLines)-1].content)+len(suffix))
	lastContent = append(lastContent, []rune(subLines[len(subLines)-1].content)...)
	lastRuneCount := len(lastContent)
	lastContent = append(lastContent, suffix...)
	store.InsertAfter(cur, linestore.Line{Content: lastContent, Ending: originalEnding})

	linesAdded := len(subLines) - 1
	return linestore.Position{Line: pos.Line + linesAdded, Column: lastRuneCount}, linesAdded, nil
}
