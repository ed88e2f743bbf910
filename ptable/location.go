package ptable

// locKind classifies a logical index relative to the piece that contains it.
type locKind uint8

const (
	locHead locKind = iota // idx is the first element of the piece
	locMid                 // idx is strictly inside the piece
	locTail                // idx is the last element of the piece
	locEOF                 // idx == length: one past the end of the sequence
)

// location is the result of resolving a logical index against the piece
// table: which piece it falls in, the kind of position within that piece,
// and the offset (delta) from the piece's start. For locEOF, piece and delta
// are meaningless.
type location struct {
	kind  locKind
	piece int
	delta int
}

// locate resolves a logical index to a location by walking the piece table
// in order, accumulating an offset. It runs in O(p) time, where p is the
// number of pieces; the entire performance argument of a piece table rests
// on p staying small relative to the logical length.
//
// A single-element piece's only index always classifies as locHead, never
// locTail: delta == 0 is checked before delta == length-1, and for a
// length-1 piece both are the same index.
func (t *Table[T]) locate(idx int) location {
	offset := 0
	for i, p := range t.pieces {
		if idx >= offset && idx < offset+p.length {
			delta := idx - offset
			switch {
			case delta == 0:
				return location{kind: locHead, piece: i, delta: 0}
			case delta == p.length-1:
				return location{kind: locTail, piece: i, delta: delta}
			default:
				return location{kind: locMid, piece: i, delta: delta}
			}
		}
		offset += p.length
	}
	return location{kind: locEOF}
}
