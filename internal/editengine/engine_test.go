package editengine

import (
	"strings"
	"testing"

	"github.com/dshills/keystorm-dock/internal/caretset"
	"github.com/dshills/keystorm-dock/internal/journal"
	"github.com/dshills/keystorm-dock/internal/linestore"
)

func pos(line, col int) linestore.Position { return linestore.Position{Line: line, Column: col} }

func newTestEngine(t *testing.T, doc string, caretPos linestore.Position, cfg Config) (*Engine, *journal.Journal) {
	t.Helper()
	store, _, err := linestore.Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	j := journal.New()
	carets := caretset.New(caretPos)
	return New(store, carets, j, cfg), j
}

func documentText(t *testing.T, store *linestore.Store) string {
	t.Helper()
	var sb strings.Builder
	if err := linestore.Save(store, &sb); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	return sb.String()
}

func TestInsertTextSplitsAcrossLines(t *testing.T) {
	eng, _ := newTestEngine(t, "abc\n", pos(0, 1), Config{})

	scope, err := eng.Begin()
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := scope.InsertText("x\ny"); err != nil {
		t.Fatalf("InsertText() error = %v", err)
	}
	scope.Close()

	if got, want := documentText(t, eng.Store()), "ax\nybc\n"; got != want {
		t.Errorf("document = %q, want %q", got, want)
	}
	last := eng.Carets().Last()
	if !last.Active.Equal(pos(1, 1)) {
		t.Errorf("caret = %v, want (1,1)", last.Active)
	}
}

func TestDeleteCharBeforeWithSelection(t *testing.T) {
	eng, _ := newTestEngine(t, "abcdef\n", pos(0, 0), Config{})
	eng.Carets().ReplaceAll([]caretset.Caret{{Active: pos(0, 4), Anchor: pos(0, 1)}})

	scope, err := eng.Begin()
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := scope.DeleteCharBefore(); err != nil {
		t.Fatalf("DeleteCharBefore() error = %v", err)
	}
	scope.Close()

	if got, want := documentText(t, eng.Store()), "aef\n"; got != want {
		t.Errorf("document = %q, want %q", got, want)
	}
	last := eng.Carets().Last()
	if !last.IsEmpty() || !last.Active.Equal(pos(0, 1)) {
		t.Errorf("caret = %+v, want empty caret at (0,1)", last)
	}
}

// TestMultiCaretAscendingBookkeeping checks that a later caret in the same
// command sees the column shift produced by an earlier caret's edit on the
// same line, per the dy/dx/_ly positional fix-up.
func TestMultiCaretAscendingBookkeeping(t *testing.T) {
	eng, _ := newTestEngine(t, "abcdef\n", pos(0, 2), Config{InsertMode: true})
	eng.Carets().Insert(caretset.NewCaret(pos(0, 5), 0))

	scope, err := eng.Begin()
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := scope.InsertCharacter('Z'); err != nil {
		t.Fatalf("InsertCharacter() error = %v", err)
	}
	scope.Close()

	if got, want := documentText(t, eng.Store()), "abZcdeZf\n"; got != want {
		t.Errorf("document = %q, want %q", got, want)
	}
	all := eng.Carets().All()
	if len(all) != 2 {
		t.Fatalf("Count() = %d, want 2", len(all))
	}
	if !all[0].Active.Equal(pos(0, 3)) {
		t.Errorf("carets[0] = %v, want (0,3)", all[0].Active)
	}
	if !all[1].Active.Equal(pos(0, 7)) {
		t.Errorf("carets[1] = %v, want (0,7)", all[1].Active)
	}
}

func TestUndoRestoresDocumentAndCarets(t *testing.T) {
	eng, _ := newTestEngine(t, "abcdef\n", pos(0, 2), Config{InsertMode: true})
	eng.Carets().Insert(caretset.NewCaret(pos(0, 5), 0))

	scope, err := eng.Begin()
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := scope.InsertCharacter('Z'); err != nil {
		t.Fatalf("InsertCharacter() error = %v", err)
	}
	scope.Close()

	if err := eng.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if got, want := documentText(t, eng.Store()), "abcdef\n"; got != want {
		t.Errorf("document after undo = %q, want %q", got, want)
	}
	all := eng.Carets().All()
	if len(all) != 2 || !all[0].Active.Equal(pos(0, 2)) || !all[1].Active.Equal(pos(0, 5)) {
		t.Errorf("carets after undo = %+v, want (0,2) and (0,5)", all)
	}

	if err := eng.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if got, want := documentText(t, eng.Store()), "abZcdeZf\n"; got != want {
		t.Errorf("document after redo = %q, want %q", got, want)
	}
}

func TestBeginRejectsConcurrentScope(t *testing.T) {
	eng, _ := newTestEngine(t, "abc\n", pos(0, 0), Config{})
	scope, err := eng.Begin()
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	defer scope.Close()

	if _, err := eng.Begin(); err == nil {
		t.Fatal("Begin() during active scope error = nil, want error")
	}
}

func TestHomeGoesToFirstNonBlankThenColumnZero(t *testing.T) {
	eng, _ := newTestEngine(t, "  indented\n", pos(0, 6), Config{})

	scope, err := eng.Begin()
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	scope.Home(false)
	scope.Close()
	if last := eng.Carets().Last(); !last.Active.Equal(pos(0, 2)) {
		t.Errorf("Home() from mid-line = %v, want (0,2)", last.Active)
	}

	scope, err = eng.Begin()
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	scope.Home(false)
	scope.Close()
	if last := eng.Carets().Last(); !last.Active.Equal(pos(0, 0)) {
		t.Errorf("Home() from first-non-blank = %v, want (0,0)", last.Active)
	}
}
