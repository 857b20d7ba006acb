// Package editengine applies insert/delete/move operations to a line store
// under multi-caret iteration, keeping every caret's position consistent
// as earlier carets' edits shift later ones, and recording a Modification
// Pack of the resulting text changes for the undo journal.
//
// A Scope is a scoped acquisition: Begin captures the current caret set and
// starts a new pack; Close swaps in the caret set produced by the
// operations applied during the scope and, unless told to skip, hands the
// pack to the journal. Every exit path — normal completion or an error
// partway through — must reach Close so no half-applied pack is left
// sitting on an engine that still reports itself busy.
//
// This diverges from the teacher lineage's own edit path, which rewrites
// selections in one reverse-order batch pass per command rather than
// threading a running (dy, dx, _ly) translation through an ascending-order
// per-caret loop; the translation is what lets later carets in the same
// command see the line/column shifts earlier carets in the command already
// produced.
package editengine
