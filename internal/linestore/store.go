package linestore

import "github.com/dshills/keystorm-dock/internal/coreerr"

// Iterator addresses a single line within a Store. The zero Iterator for a
// given Store is equal to that Store's End(): it addresses no line, and may
// only be passed to InsertBefore/InsertAfter (as an append-at-tail position)
// or compared for equality — never to EraseOne or dereferenced for content.
type Iterator struct {
	store *Store
	node  *lineNode
}

// Valid reports whether it addresses an actual line rather than the End
// sentinel.
func (it Iterator) Valid() bool { return it.node != nil }

// Line returns the line this iterator addresses. Calling Line on an invalid
// (End) iterator panics, matching the "caller discipline" contract
// documented on the package.
func (it Iterator) Line() Line { return it.node.line }

// Next returns an iterator to the line immediately following it, or End if
// it is the last line.
func (it Iterator) Next() Iterator {
	if it.node == nil {
		return it
	}
	if it.node.next != nil {
		return Iterator{store: it.store, node: it.node.next}
	}
	for b := it.node.block.next; b != nil; b = b.next {
		if b.head != nil {
			return Iterator{store: it.store, node: b.head}
		}
	}
	return it.store.End()
}

// Prev returns an iterator to the line immediately preceding it. Calling
// Prev on Begin() returns End, symmetric with Next on the last line.
func (it Iterator) Prev() Iterator {
	var startBlock *block
	if it.node != nil {
		if it.node.prev != nil {
			return Iterator{store: it.store, node: it.node.prev}
		}
		startBlock = it.node.block.prev
	} else {
		startBlock = it.store.tailBlock
	}
	for b := startBlock; b != nil; b = b.prev {
		if b.tail != nil {
			return Iterator{store: it.store, node: b.tail}
		}
	}
	return it.store.End()
}

// Store is the chunked, bidirectionally-iterable line sequence described in
// the package overview.
type Store struct {
	headBlock, tailBlock *block
	lineCount            int
	blockCap             int
}

// New returns an empty Store containing a single empty line, matching the
// convention that a document always has at least one line.
func New() *Store {
	s := &Store{blockCap: DefaultBlockCapacity}
	b := &block{}
	b.append(&lineNode{line: Line{}})
	s.headBlock, s.tailBlock = b, b
	s.lineCount = 1
	return s
}

// NumLines returns the number of lines currently in the store.
func (s *Store) NumLines() int { return s.lineCount }

// Begin returns an iterator to the first line, or End if the store is
// empty.
func (s *Store) Begin() Iterator {
	for b := s.headBlock; b != nil; b = b.next {
		if b.head != nil {
			return Iterator{store: s, node: b.head}
		}
	}
	return s.End()
}

// End returns the one-past-the-last sentinel iterator.
func (s *Store) End() Iterator { return Iterator{store: s} }

// LineAt performs O(B) random access to the line at the given 0-based
// index, where B is the block count.
func (s *Store) LineAt(index int) (Line, error) {
	it, err := s.iteratorAt(index)
	if err != nil {
		return Line{}, err
	}
	return it.Line(), nil
}

// At returns an iterator to the line at the given 0-based index.
func (s *Store) At(index int) (Iterator, error) {
	return s.iteratorAt(index)
}

// SetLine replaces the content of the line addressed by it in place,
// without changing the store's line count or shifting any other iterator.
// it must be Valid.
func (s *Store) SetLine(it Iterator, line Line) {
	it.node.line = line
}

// iteratorAt walks the block chain to find the index'th line.
func (s *Store) iteratorAt(index int) (Iterator, error) {
	if index < 0 || index >= s.lineCount {
		return Iterator{}, coreerr.OutOfRangef("line index %d (have %d lines)", index, s.lineCount)
	}
	offset := index
	for b := s.headBlock; b != nil; b = b.next {
		if offset < b.count {
			n := b.head
			for i := 0; i < offset; i++ {
				n = n.next
			}
			return Iterator{store: s, node: n}, nil
		}
		offset -= b.count
	}
	return Iterator{}, coreerr.OutOfRangef("line index %d (have %d lines)", index, s.lineCount)
}

// InsertBefore inserts line immediately before it (which may be End, to
// append), returning an iterator to the newly inserted line. O(1) given the
// iterator.
func (s *Store) InsertBefore(it Iterator, line Line) Iterator {
	n := &lineNode{line: line}
	var b *block
	if it.node != nil {
		b = it.node.block
		b.insertBefore(it.node, n)
	} else {
		b = s.tailBlock
		if b == nil {
			b = &block{}
			s.headBlock, s.tailBlock = b, b
		}
		b.append(n)
	}
	s.lineCount++
	s.maybeSplit(b)
	return Iterator{store: s, node: n}
}

// InsertAfter inserts line immediately after it, returning an iterator to
// the newly inserted line. it must be Valid.
func (s *Store) InsertAfter(it Iterator, line Line) Iterator {
	return s.InsertBefore(it.Next(), line)
}

// EraseOne removes the line addressed by it (which must be Valid), returning
// an iterator to the line that followed it.
func (s *Store) EraseOne(it Iterator) Iterator {
	next := it.Next()
	b := it.node.block
	b.remove(it.node)
	s.lineCount--
	if b.count == 0 {
		s.unlinkBlock(b)
	}
	return next
}

// maybeSplit splits b once it has grown past twice the advised capacity,
// keeping block size roughly bounded so LineAt's O(B) bound holds in
// practice under sustained editing at one position.
func (s *Store) maybeSplit(b *block) {
	if b.count <= 2*s.blockCap {
		return
	}
	nb := b.splitInHalf()
	nb.prev = b
	nb.next = b.next
	if b.next != nil {
		b.next.prev = nb
	} else {
		s.tailBlock = nb
	}
	b.next = nb
}

// unlinkBlock removes an emptied block from the chain.
func (s *Store) unlinkBlock(b *block) {
	if b.prev != nil {
		b.prev.next = b.next
	} else {
		s.headBlock = b.next
	}
	if b.next != nil {
		b.next.prev = b.prev
	} else {
		s.tailBlock = b.prev
	}
	// Never drop the last block: an empty store still needs one anchor
	// block so Begin/End and InsertBefore(End, ...) keep working.
	if s.headBlock == nil {
		s.headBlock, s.tailBlock = b, b
		b.prev, b.next = nil, nil
		b.head, b.tail, b.count = nil, nil, 0
	}
}

// Substring extracts the codepoints of line content from (startLine,
// startCol) to (endLine, endCol) inclusive of intervening line terminators,
// using each line's own Ending. start must be LessEqual end.
func (s *Store) Substring(start, end Position) (string, error) {
	if end.Less(start) {
		return "", coreerr.InvalidStatef("substring range end %v before start %v", end, start)
	}
	it, err := s.iteratorAt(start.Line)
	if err != nil {
		return "", err
	}
	var out []rune
	for line := start.Line; ; line++ {
		l := it.Line()
		from, to := 0, l.Len()
		if line == start.Line {
			from = start.Column
		}
		if line == end.Line {
			to = end.Column
		}
		if from < 0 || from > l.Len() || to < from || to > l.Len() {
			return "", coreerr.OutOfRangef("column range [%d,%d) on line %d of length %d", from, to, line, l.Len())
		}
		out = append(out, l.Content[from:to]...)
		if line == end.Line {
			break
		}
		out = append(out, []rune(l.Ending.Text())...)
		it = it.Next()
		if !it.Valid() {
			break
		}
	}
	return string(out), nil
}
