// Package linestore provides a chunked, bidirectional-iterable sequence of
// lines backing the editor's document model.
//
// # Why not a rope, why not a flat vector
//
// A flat line vector penalizes insertion at arbitrary positions with O(N)
// shifting. A balanced tree (as the rope the teacher lineage otherwise
// favors for byte storage) is overkill for line-granularity edits, which
// only ever insert, erase, or split at a single line boundary per
// sub-operation. A doubly-linked list of blocks, each a doubly-linked list
// of lines, gives O(1) insertion given an iterator, O(B) line-index lookup
// where B is the block count, and cache-friendly in-block traversal — B
// grows roughly as sqrt(N) when edits are evenly distributed across the
// document.
//
// # Per-line endings
//
// Unlike a buffer-wide line-ending setting, every Line carries its own
// EndingLF/EndingCRLF/EndingCR/EndingNone tag, so a file with mixed line
// endings round-trips byte-for-byte through Load/Save.
//
// # Basic usage
//
//	ls, warnings, err := linestore.Load(strings.NewReader("a\r\nb\nc\r"))
//	ls.NumLines()          // 4
//	line, err := ls.LineAt(0) // Line{Content: "a", Ending: EndingCRLF}
//
//	var buf bytes.Buffer
//	linestore.Save(ls, &buf) // byte-identical round trip
//
// # Iteration and random access
//
// LineAt performs O(B) random access by walking the block chain. For
// sequential scans, use an Iterator acquired via Begin/End, which advances
// in O(1) per step without bounds-checking — callers must compare against
// the End sentinel themselves, matching the chunked-block design's
// trade-off of arithmetic speed for caller discipline.
package linestore
