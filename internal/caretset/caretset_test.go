package caretset

import (
	"testing"

	"github.com/dshills/keystorm-dock/internal/linestore"
)

func pos(line, col int) linestore.Position { return linestore.Position{Line: line, Column: col} }

func TestInsertNoOverlap(t *testing.T) {
	s := New(pos(0, 0))
	_, merged := s.Insert(NewCaret(pos(5, 0), 0))
	if merged {
		t.Fatal("Insert() merged = true, want false for disjoint carets")
	}
	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", s.Count())
	}
}

func TestInsertDuplicatePointCaret(t *testing.T) {
	s := New(pos(2, 2))
	got, merged := s.Insert(NewCaret(pos(2, 2), 0))
	if !merged {
		t.Fatal("Insert() merged = false, want true for duplicate point carets")
	}
	if !got.IsEmpty() || !got.Active.Equal(pos(2, 2)) {
		t.Errorf("merged caret = %+v, want empty caret at (2,2)", got)
	}
	if s.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", s.Count())
	}
}

func TestInsertPointInsideSelectionTakesItsRange(t *testing.T) {
	s := NewEmpty()
	sel := Caret{Active: pos(0, 5), Anchor: pos(0, 1)}
	s.Insert(sel)

	got, merged := s.Insert(NewCaret(pos(0, 3), 0))
	if !merged {
		t.Fatal("Insert() merged = false, want true")
	}
	lo, hi := got.Range()
	if lo != pos(0, 1) || hi != pos(0, 5) {
		t.Errorf("Range() = %v..%v, want (0,1)..(0,5)", lo, hi)
	}
	if !got.Active.Equal(pos(0, 5)) || !got.Anchor.Equal(pos(0, 1)) {
		t.Errorf("orientation = active %v anchor %v, want removed's own orientation", got.Active, got.Anchor)
	}
}

func TestInsertSpanningSelectionsTakesCOrientation(t *testing.T) {
	s := NewEmpty()
	s.Insert(Caret{Active: pos(0, 2), Anchor: pos(0, 1)})
	s.Insert(Caret{Active: pos(0, 8), Anchor: pos(0, 7)})

	spanning := Caret{Active: pos(0, 0), Anchor: pos(0, 9)}
	got, merged := s.Insert(spanning)
	if !merged {
		t.Fatal("Insert() merged = false, want true")
	}
	if !got.Active.Equal(pos(0, 0)) || !got.Anchor.Equal(pos(0, 9)) {
		t.Errorf("orientation = active %v anchor %v, want C's own (0,0)/(0,9)", got.Active, got.Anchor)
	}
	if s.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 (both absorbed)", s.Count())
	}
}

func TestInsertUnionFollowsCOrientation(t *testing.T) {
	s := NewEmpty()
	s.Insert(Caret{Active: pos(0, 5), Anchor: pos(0, 2)})

	c := Caret{Active: pos(0, 4), Anchor: pos(0, 8)}
	got, merged := s.Insert(c)
	if !merged {
		t.Fatal("Insert() merged = false, want true")
	}
	lo, hi := got.Range()
	if lo != pos(0, 2) || hi != pos(0, 8) {
		t.Errorf("Range() = %v..%v, want (0,2)..(0,8)", lo, hi)
	}
	if !got.Active.Equal(pos(0, 2)) || !got.Anchor.Equal(pos(0, 8)) {
		t.Errorf("orientation = active %v anchor %v, want C's own active-at-low", got.Active, got.Anchor)
	}
}

func TestInsertAdjacentPointAbsorbed(t *testing.T) {
	s := NewEmpty()
	s.Insert(Caret{Active: pos(0, 5), Anchor: pos(0, 2)})

	got, merged := s.Insert(NewCaret(pos(0, 5), 0))
	if !merged {
		t.Fatal("Insert() merged = false, want true for boundary-adjacent point")
	}
	lo, hi := got.Range()
	if lo != pos(0, 2) || hi != pos(0, 5) {
		t.Errorf("Range() = %v..%v, want unchanged (0,2)..(0,5)", lo, hi)
	}
}

func TestOrderingMaintainedAfterMerges(t *testing.T) {
	s := New(pos(3, 0))
	s.Insert(NewCaret(pos(1, 0), 0))
	s.Insert(NewCaret(pos(5, 0), 0))

	all := s.All()
	for i := 1; i < len(all); i++ {
		if !all[i-1].Active.Less(all[i].Active) {
			t.Fatalf("carets out of order: %v", all)
		}
	}
}

func TestContains(t *testing.T) {
	s := NewEmpty()
	s.Insert(Caret{Active: pos(0, 5), Anchor: pos(0, 2)})
	if !s.Contains(pos(0, 3)) {
		t.Error("Contains((0,3)) = false, want true")
	}
	if s.Contains(pos(0, 9)) {
		t.Error("Contains((0,9)) = true, want false")
	}
}
