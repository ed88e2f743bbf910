package ptable

import "fmt"

// Insert splices item into t at logical position idx, shifting every
// element at or after idx one position to the right. It panics if idx >
// t.Len().
//
// Insert first tries the reusable_insert fast path: if the last mutation
// left a Fresh or Undone hint at a piece contiguous with the add buffer's
// tail, and idx names the next element to append there, Insert extends
// that piece in O(1). Otherwise it falls back to [Table.rawInsert], which
// resolves idx to a location and splits the piece table accordingly, in
// O(p).
func (t *Table[T]) Insert(idx int, item T) {
	if idx < 0 || idx > t.length {
		panic(fmt.Sprintf("ptable: insert index %d out of range (length %d)", idx, t.length))
	}
	if t.tryFastInsert(idx, item) {
		return
	}
	t.rawInsert(idx, item)
}

// tryFastInsert attempts the O(1) fast path described in §4.2. It reports
// whether the fast path applied.
func (t *Table[T]) tryFastInsert(idx int, item T) bool {
	if !t.insValid {
		return false
	}
	match := (t.insFresh && idx == t.lastIdx+1) || (!t.insFresh && idx == t.lastIdx)
	if !match {
		return false
	}
	p := &t.pieces[t.insPiece]
	t.add = append(t.add, item)
	p.length++
	t.length++
	t.lastIdx = idx
	t.insFresh = true
	t.remValid = false
	return true
}

// rawInsert is the slow path of Insert: it appends item to the add buffer,
// resolves idx to a location, and splices the piece table to match.
func (t *Table[T]) rawInsert(idx int, item T) {
	t.add = append(t.add, item)
	itemIdx := len(t.add) - 1
	newPiece := piece{source: bufAdd, start: itemIdx, length: 1}

	loc := t.locate(idx)
	switch loc.kind {
	case locHead:
		t.pieces = insertPieceAt(t.pieces, loc.piece, newPiece)
		t.insPiece = loc.piece

	case locMid, locTail:
		orig := t.pieces[loc.piece]
		left := piece{source: orig.source, start: orig.start, length: loc.delta}
		right := piece{source: orig.source, start: orig.start + loc.delta, length: orig.length - loc.delta}
		t.pieces[loc.piece] = left
		t.pieces = insertTwoPiecesAfter(t.pieces, loc.piece, newPiece, right)
		t.insPiece = loc.piece + 1

	case locEOF:
		t.pieces = append(t.pieces, newPiece)
		t.insPiece = len(t.pieces) - 1

	default:
		panic("ptable: unreachable location kind in rawInsert")
	}

	t.insValid = true
	t.insFresh = true
	t.remValid = false
	t.lastIdx = idx
	t.length++
}
