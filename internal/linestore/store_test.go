package linestore

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoadMixedEndings(t *testing.T) {
	s, warnings, err := Load(strings.NewReader("a\r\nb\nc\r"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if got := s.NumLines(); got != 4 {
		t.Fatalf("NumLines() = %d, want 4", got)
	}

	want := []struct {
		text   string
		ending Ending
	}{
		{"a", EndingCRLF},
		{"b", EndingLF},
		{"c", EndingCR},
		{"", EndingNone},
	}
	for i, w := range want {
		l, err := s.LineAt(i)
		if err != nil {
			t.Fatalf("LineAt(%d) error = %v", i, err)
		}
		if l.Text() != w.text || l.Ending != w.ending {
			t.Errorf("LineAt(%d) = %q/%v, want %q/%v", i, l.Text(), l.Ending, w.text, w.ending)
		}
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	inputs := []string{
		"a\r\nb\nc\r",
		"",
		"no newline at all",
		"one\ntwo\nthree\n",
		"\n\n\n",
	}
	for _, in := range inputs {
		s, _, err := Load(strings.NewReader(in))
		if err != nil {
			t.Fatalf("Load(%q) error = %v", in, err)
		}
		var buf bytes.Buffer
		if err := Save(s, &buf); err != nil {
			t.Fatalf("Save(%q) error = %v", in, err)
		}
		if buf.String() != in {
			t.Errorf("round trip %q = %q, want %q", in, buf.String(), in)
		}
	}
}

func TestLoadMalformedUTF8(t *testing.T) {
	raw := append([]byte("ab"), 0xff)
	raw = append(raw, []byte("cd\n")...)
	s, warnings, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
	l, err := s.LineAt(0)
	if err != nil {
		t.Fatalf("LineAt(0) error = %v", err)
	}
	if !strings.Contains(l.Text(), "�") {
		t.Errorf("line text = %q, want substitution rune present", l.Text())
	}
}

func TestDetectEndingTieBreak(t *testing.T) {
	s, _, err := Load(strings.NewReader("a\r\nb\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := DetectEnding(s); got != EndingCRLF {
		t.Errorf("DetectEnding() = %v, want EndingCRLF (tie break)", got)
	}
}

func TestInsertAndEraseLine(t *testing.T) {
	s := New()
	first := s.Begin()
	s.InsertAfter(first, NewLine("second", EndingLF))
	if got := s.NumLines(); got != 2 {
		t.Fatalf("NumLines() = %d, want 2", got)
	}

	it := s.Begin().Next()
	if it.Line().Text() != "second" {
		t.Fatalf("inserted line = %q, want %q", it.Line().Text(), "second")
	}

	s.EraseOne(s.Begin())
	if got := s.NumLines(); got != 1 {
		t.Fatalf("NumLines() after erase = %d, want 1", got)
	}
	if s.Begin().Line().Text() != "second" {
		t.Errorf("remaining line = %q, want %q", s.Begin().Line().Text(), "second")
	}
}

func TestInsertBeforeEndAppends(t *testing.T) {
	s := New()
	s.InsertBefore(s.End(), NewLine("tail", EndingLF))
	if got := s.NumLines(); got != 2 {
		t.Fatalf("NumLines() = %d, want 2", got)
	}
	last, err := s.LineAt(1)
	if err != nil {
		t.Fatalf("LineAt(1) error = %v", err)
	}
	if last.Text() != "tail" {
		t.Errorf("LineAt(1) = %q, want %q", last.Text(), "tail")
	}
}

func TestLineAtOutOfRange(t *testing.T) {
	s := New()
	if _, err := s.LineAt(5); err == nil {
		t.Fatal("LineAt(5) error = nil, want out-of-range error")
	}
}

func TestSubstringAcrossLines(t *testing.T) {
	s, _, err := Load(strings.NewReader("hello\nworld\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got, err := s.Substring(Position{0, 2}, Position{1, 3})
	if err != nil {
		t.Fatalf("Substring() error = %v", err)
	}
	if want := "llo\nwor"; got != want {
		t.Errorf("Substring() = %q, want %q", got, want)
	}
}

func TestBlockSplitPreservesOrder(t *testing.T) {
	s := New()
	it := s.Begin()
	const n = DefaultBlockCapacity*2 + 10
	for i := 0; i < n; i++ {
		it = s.InsertAfter(it, NewLine("x", EndingLF))
	}
	if got := s.NumLines(); got != n+1 {
		t.Fatalf("NumLines() = %d, want %d", got, n+1)
	}
	count := 0
	for it := s.Begin(); it.Valid(); it = it.Next() {
		count++
	}
	if count != s.NumLines() {
		t.Errorf("forward iteration count = %d, want %d", count, s.NumLines())
	}
	count = 0
	for it := s.End().Prev(); it.Valid(); it = it.Prev() {
		count++
	}
	if count != s.NumLines() {
		t.Errorf("backward iteration count = %d, want %d", count, s.NumLines())
	}
}
