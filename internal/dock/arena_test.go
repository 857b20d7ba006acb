package dock

import "testing"

func TestArenaInsertGetRemove(t *testing.T) {
	a := NewArena[string]()
	h := a.Insert("alpha")

	got, ok := a.Get(h)
	if !ok || *got != "alpha" {
		t.Fatalf("Get() = (%v, %v), want (alpha, true)", got, ok)
	}

	if !a.Remove(h) {
		t.Fatalf("Remove() = false, want true")
	}
	if _, ok := a.Get(h); ok {
		t.Errorf("Get() after Remove() found a value, want none")
	}
}

func TestArenaHandleStaleAfterReuse(t *testing.T) {
	a := NewArena[string]()
	h1 := a.Insert("first")
	a.Remove(h1)
	h2 := a.Insert("second")

	if h1 == h2 {
		t.Fatalf("reused slot produced an identical handle: %v", h1)
	}
	if _, ok := a.Get(h1); ok {
		t.Errorf("stale handle h1 resolved after slot reuse")
	}
	got, ok := a.Get(h2)
	if !ok || *got != "second" {
		t.Errorf("Get(h2) = (%v, %v), want (second, true)", got, ok)
	}
}

func TestArenaZeroHandleNeverLive(t *testing.T) {
	a := NewArena[string]()
	a.Insert("occupies slot 0 with generation 1")

	var zero Handle[string]
	if !zero.IsZero() {
		t.Fatalf("zero value IsZero() = false")
	}
	if _, ok := a.Get(zero); ok {
		t.Errorf("Get(zero handle) found a value, want none")
	}
}
