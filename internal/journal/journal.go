package journal

import "github.com/dshills/keystorm-dock/internal/coreerr"

// Journal is a vector of Modification Packs plus the nextID/size counters
// that track the boundary between current history and redo tail.
type Journal struct {
	packs  []Pack
	nextID int
	size   int
}

// New returns an empty journal.
func New() *Journal {
	return &Journal{}
}

// Append adds pack as the next edit, truncating any redo tail left over
// from a prior undo.
func (j *Journal) Append(pack Pack) {
	j.packs = append(j.packs[:j.nextID], pack)
	j.nextID++
	j.size = j.nextID
}

// CanUndo reports whether there is a pack to undo.
func (j *Journal) CanUndo() bool { return j.nextID > 0 }

// CanRedo reports whether there is a pack in the redo tail.
func (j *Journal) CanRedo() bool { return j.nextID < j.size }

// Undo returns the pack to replay inversely and moves nextID back over it.
func (j *Journal) Undo() (Pack, error) {
	if !j.CanUndo() {
		return Pack{}, coreerr.InvalidStatef("undo past the start of history")
	}
	j.nextID--
	return j.packs[j.nextID], nil
}

// Redo returns the pack to replay forward and moves nextID past it.
func (j *Journal) Redo() (Pack, error) {
	if !j.CanRedo() {
		return Pack{}, coreerr.InvalidStatef("redo past the end of history")
	}
	pack := j.packs[j.nextID]
	j.nextID++
	return pack, nil
}

// PackInfo is a read-only projection of the journal's current position,
// for diagnostics and UI state (enabling/disabling undo/redo commands).
type PackInfo struct {
	NextID int
	Size   int
}

// Info returns the journal's current position.
func (j *Journal) Info() PackInfo {
	return PackInfo{NextID: j.nextID, Size: j.size}
}
