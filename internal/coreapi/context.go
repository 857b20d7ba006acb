package coreapi

import (
	"io"

	"github.com/dshills/keystorm-dock/internal/caretset"
	"github.com/dshills/keystorm-dock/internal/editengine"
	"github.com/dshills/keystorm-dock/internal/journal"
	"github.com/dshills/keystorm-dock/internal/linestore"
)

// Re-export the core types a host application needs, so callers depend on
// coreapi alone rather than reaching into internal/linestore,
// internal/caretset, internal/editengine, and internal/journal directly.
// Grounded on the teacher's internal/engine re-export block
// (internal/engine/engine.go), which does the same for buffer/cursor/
// history/tracking.
type (
	// Position is a line/column position, codepoint-indexed.
	Position = linestore.Position
	// Ending is a line terminator style.
	Ending = linestore.Ending
	// Line is one line of document content plus its terminator.
	Line = linestore.Line

	// Caret is one caret's active/anchor/baseline state.
	Caret = caretset.Caret
	// CaretSet is an ordered, merge-on-overlap collection of carets.
	CaretSet = caretset.Set

	// EditConfig carries the Edit Engine's behavioral settings.
	EditConfig = editengine.Config
	// Metrics hit-tests line content against pixel x-coordinates.
	Metrics = editengine.Metrics
	// Scope is one command's worth of per-caret edits.
	Scope = editengine.Scope

	// PackInfo is the journal's current undo/redo position.
	PackInfo = journal.PackInfo
)

// EditorContext binds a document's Line Store, Caret Set, Edit Engine, and
// Undo Journal into the one object a host application holds per open
// document. It is the &mut EditorContext the design notes describe: all
// mutation flows through its Begin/Close pair, never by poking the line
// store or caret set directly.
type EditorContext struct {
	store  *linestore.Store
	carets *CaretSet
	jrnl   *journal.Journal
	engine *editengine.Engine
}

// NewEditorContext returns a context over a freshly created empty
// document.
func NewEditorContext(cfg EditConfig) *EditorContext {
	store := linestore.New()
	carets := caretset.New(linestore.Position{})
	jrnl := journal.New()
	return &EditorContext{
		store:  store,
		carets: carets,
		jrnl:   jrnl,
		engine: editengine.New(store, carets, jrnl, cfg),
	}
}

// LoadEditorContext builds a context from r's contents, reporting any
// malformed-UTF-8 substitution warnings alongside the usual I/O error.
func LoadEditorContext(r io.Reader, cfg EditConfig) (*EditorContext, []EncodingWarning, error) {
	store, warnings, err := linestore.Load(r)
	if err != nil {
		return nil, nil, err
	}
	carets := caretset.New(linestore.Position{})
	jrnl := journal.New()
	ctx := &EditorContext{
		store:  store,
		carets: carets,
		jrnl:   jrnl,
		engine: editengine.New(store, carets, jrnl, cfg),
	}
	out := make([]EncodingWarning, len(warnings))
	for i, w := range warnings {
		out[i] = EncodingWarning{ByteOffset: w.ByteOffset, Replaced: w.Replaced}
	}
	return ctx, out, nil
}

// EncodingWarning reports one malformed-UTF-8 substitution made while
// loading a document, re-exported from coreerr.EncodingError so callers
// need not import that package just to inspect load warnings.
type EncodingWarning struct {
	ByteOffset int
	Replaced   byte
}

// Save writes the document's current contents to w.
func (c *EditorContext) Save(w io.Writer) error {
	return linestore.Save(c.store, w)
}

// NumLines returns the document's current line count.
func (c *EditorContext) NumLines() int { return c.store.NumLines() }

// LineAt returns the line at the given 0-based index.
func (c *EditorContext) LineAt(index int) (Line, error) { return c.store.LineAt(index) }

// Substring extracts document text between two positions, as linestore.Substring.
func (c *EditorContext) Substring(start, end Position) (string, error) {
	return c.store.Substring(start, end)
}

// Carets returns a snapshot of every caret's current state, in active-position order.
func (c *EditorContext) Carets() []Caret { return c.engine.Carets().All() }

// Begin opens a Scope over the context's current caret set for one
// command's worth of edits. The caller must Close the returned scope on
// every exit path.
func (c *EditorContext) Begin() (*Scope, error) { return c.engine.Begin() }

// Undo replays the most recent pack inversely.
func (c *EditorContext) Undo() error { return c.engine.Undo() }

// Redo replays the next pack forward.
func (c *EditorContext) Redo() error { return c.engine.Redo() }

// UndoInfo reports the journal's current undo/redo position.
func (c *EditorContext) UndoInfo() PackInfo { return c.jrnl.Info() }
