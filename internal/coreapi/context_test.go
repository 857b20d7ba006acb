package coreapi

import (
	"strings"
	"testing"
)

func TestLoadEditorContextRoundTrip(t *testing.T) {
	const doc = "alpha\r\nbeta\ngamma\r"
	ctx, warnings, err := LoadEditorContext(strings.NewReader(doc), EditConfig{})
	if err != nil {
		t.Fatalf("LoadEditorContext() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}

	var sb strings.Builder
	if err := ctx.Save(&sb); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := sb.String(); got != doc {
		t.Errorf("round trip = %q, want %q", got, doc)
	}
}

func TestEditorContextInsertAndUndo(t *testing.T) {
	ctx := NewEditorContext(EditConfig{})

	scope, err := ctx.Begin()
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := scope.InsertText("hello"); err != nil {
		t.Fatalf("InsertText() error = %v", err)
	}
	scope.Close()

	var sb strings.Builder
	if err := ctx.Save(&sb); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got, want := sb.String(), "hello"; got != want {
		t.Fatalf("document = %q, want %q", got, want)
	}

	if err := ctx.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	sb.Reset()
	if err := ctx.Save(&sb); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got, want := sb.String(), ""; got != want {
		t.Errorf("document after undo = %q, want %q", got, want)
	}
	if info := ctx.UndoInfo(); info.NextID >= info.Size {
		t.Errorf("expected redo to be available after undo, info = %+v", info)
	}
}
