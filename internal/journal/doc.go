// Package journal implements the undo/redo history as a single growable
// vector of Modification Packs, not the pop-based two-stack design the
// teacher lineage uses for its own undo history.
//
// The vector plus two counters (nextID, size) keeps the redo tail
// physically addressable after an undo: packs at [0, nextID) are the
// current history, packs at [nextID, size) are the redo tail still sitting
// in the backing slice, preserved until a new edit truncates them. A
// pop-based stack would discard that tail the moment it popped past it,
// which cannot support peeking or replaying it before an overwrite.
package journal
