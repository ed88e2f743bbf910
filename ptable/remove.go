package ptable

import "fmt"

// Remove drops the element at logical position idx, shifting every element
// after idx one position to the left. It panics if idx >= t.Len().
//
// Remove tries two fast paths before falling back to the general,
// location-based removal:
//
//   - undo-of-insert: if idx names the element most recently pushed onto the
//     add buffer by Insert, Remove pops it back off in O(1) instead of
//     splitting a piece.
//   - backward sweep: if idx+1 == lastIdx, a cached [location] from the
//     previous removal is reused instead of re-walking the piece table.
func (t *Table[T]) Remove(idx int) {
	if idx < 0 || idx >= t.length {
		panic(fmt.Sprintf("ptable: remove index %d out of range (length %d)", idx, t.length))
	}
	if t.tryUndoInsert(idx) {
		return
	}
	t.insValid = false
	var loc location
	if t.remValid && idx+1 == t.lastIdx {
		loc = t.remLoc
	} else {
		loc = t.locate(idx)
	}
	t.rawRemove(idx, loc)
}

// tryUndoInsert implements §4.3's fast path A: removing the element most
// recently appended to the add buffer by Insert's fast or slow path. It
// reports whether the fast path applied.
func (t *Table[T]) tryUndoInsert(idx int) bool {
	if !t.insValid {
		return false
	}
	match := (t.insFresh && idx == t.lastIdx) || (!t.insFresh && idx+1 == t.lastIdx)
	if !match {
		return false
	}
	p := &t.pieces[t.insPiece]
	t.add = t.add[:len(t.add)-1]
	p.length--
	if p.length == 0 {
		t.pieces = removePieceAt(t.pieces, t.insPiece)
		t.insValid = false
	} else {
		t.insFresh = false
	}
	t.remValid = false
	t.lastIdx = idx
	t.length--
	return true
}

// rawRemove applies the piece-table splice for removing the element at idx,
// already resolved to loc, per §4.3's three live branches (locEOF cannot
// occur here: the caller's bounds check rules out idx == length). It seeds
// reusable_remove for a subsequent backward-sequential Remove whenever a
// predecessor piece exists.
func (t *Table[T]) rawRemove(idx int, loc location) {
	switch loc.kind {
	case locHead:
		p := &t.pieces[loc.piece]
		p.start++
		p.length--
		predecessor := loc.piece - 1
		if p.length == 0 {
			t.pieces = removePieceAt(t.pieces, loc.piece)
		}
		t.seedRemoveBefore(predecessor)

	case locTail:
		p := &t.pieces[loc.piece]
		p.length--
		if p.length == 0 {
			t.pieces = removePieceAt(t.pieces, loc.piece)
			t.seedRemoveBefore(loc.piece - 1)
		} else {
			t.seedRemoveAt(loc.piece)
		}

	case locMid:
		orig := t.pieces[loc.piece]
		left := piece{source: orig.source, start: orig.start, length: loc.delta}
		right := piece{
			source: orig.source,
			start:  orig.start + loc.delta + 1,
			length: orig.length - loc.delta - 1,
		}
		t.pieces[loc.piece] = left
		t.pieces = insertPieceAt(t.pieces, loc.piece+1, right)
		t.seedRemoveAt(loc.piece)

	default:
		panic("ptable: unreachable location kind in rawRemove")
	}

	t.lastIdx = idx
	t.length--
}

// seedRemoveAt points reusable_remove at the tail of piece p (or its head,
// if p has become a single-element piece, per the resolver's PieceHead-
// over-PieceTail classification rule), for use by a subsequent
// backward-sequential Remove.
func (t *Table[T]) seedRemoveAt(p int) {
	length := t.pieces[p].length
	if length <= 1 {
		t.remLoc = location{kind: locHead, piece: p, delta: 0}
	} else {
		t.remLoc = location{kind: locTail, piece: p, delta: length - 1}
	}
	t.remValid = true
}

// seedRemoveBefore seeds reusable_remove at piece p, or leaves it unset if p
// names no piece (the removal happened at the very start of the sequence).
func (t *Table[T]) seedRemoveBefore(p int) {
	if p < 0 {
		t.remValid = false
		return
	}
	t.seedRemoveAt(p)
}
