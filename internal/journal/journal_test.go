package journal

import "testing"

func TestAppendTruncatesRedoTail(t *testing.T) {
	j := New()
	j.Append(Pack{Records: []Record{{IsAddition: true}}})
	j.Append(Pack{Records: []Record{{IsAddition: true}}})
	if _, err := j.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if !j.CanRedo() {
		t.Fatal("CanRedo() = false after one undo, want true")
	}

	j.Append(Pack{Records: []Record{{IsAddition: false}}})
	if j.CanRedo() {
		t.Error("CanRedo() = true after new edit, want false (redo tail truncated)")
	}
	if info := j.Info(); info.NextID != info.Size {
		t.Errorf("Info() = %+v, want NextID == Size", info)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	j := New()
	p1 := Pack{Records: []Record{{IsAddition: true, Payload: []rune("a")}}}
	p2 := Pack{Records: []Record{{IsAddition: true, Payload: []rune("b")}}}
	j.Append(p1)
	j.Append(p2)

	got, err := j.Undo()
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if string(got.Records[0].Payload) != "b" {
		t.Errorf("Undo() pack = %q, want %q", got.Records[0].Payload, "b")
	}

	got, err = j.Undo()
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if string(got.Records[0].Payload) != "a" {
		t.Errorf("Undo() pack = %q, want %q", got.Records[0].Payload, "a")
	}
	if j.CanUndo() {
		t.Error("CanUndo() = true at start of history, want false")
	}

	got, err = j.Redo()
	if err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if string(got.Records[0].Payload) != "a" {
		t.Errorf("Redo() pack = %q, want %q", got.Records[0].Payload, "a")
	}
}

func TestUndoPastStartFails(t *testing.T) {
	j := New()
	if _, err := j.Undo(); err == nil {
		t.Fatal("Undo() on empty journal error = nil, want error")
	}
}

func TestRedoPastEndFails(t *testing.T) {
	j := New()
	j.Append(Pack{})
	if _, err := j.Redo(); err == nil {
		t.Fatal("Redo() with no undo yet error = nil, want error")
	}
}
