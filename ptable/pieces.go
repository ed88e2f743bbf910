package ptable

// insertPieceAt inserts p into pieces immediately before index i, shifting
// everything at or after i one slot to the right.
func insertPieceAt(pieces []piece, i int, p piece) []piece {
	pieces = append(pieces, piece{})
	copy(pieces[i+1:], pieces[i:])
	pieces[i] = p
	return pieces
}

// insertTwoPiecesAfter inserts p1 then p2 into pieces immediately after
// index i, shifting everything after i two slots to the right. pieces[i]
// itself is left untouched; the caller is expected to have already updated
// it (e.g. to the left remnant of a split).
func insertTwoPiecesAfter(pieces []piece, i int, p1, p2 piece) []piece {
	n := len(pieces)
	pieces = append(pieces, piece{}, piece{})
	copy(pieces[i+3:], pieces[i+1:n])
	pieces[i+1] = p1
	pieces[i+2] = p2
	return pieces
}

// removePieceAt drops the piece at index i, shifting everything after it
// one slot to the left.
func removePieceAt(pieces []piece, i int) []piece {
	return append(pieces[:i], pieces[i+1:]...)
}

// growSlice returns vs, or a copy of vs with capacity for at least n more
// elements if vs does not already have that much spare capacity. It is used
// to implement the advisory ReserveData/ReservePieces capacity hints.
func growSlice[T any](vs []T, n int) []T {
	if n <= 0 || cap(vs)-len(vs) >= n {
		return vs
	}
	grown := make([]T, len(vs), len(vs)+n)
	copy(grown, vs)
	return grown
}
