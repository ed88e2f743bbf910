package ptable

import "fmt"

// All calls f for each element of t in order. If f returns false, All stops
// early and returns false; otherwise it returns true after visiting every
// element. All allocates nothing: it walks the piece table directly,
// yielding each buffer slice's elements in turn.
//
// Because All returns a result, it is not usable directly as a
// range-over-func expression; a function that discards the result adapts it:
//
//	for v := range func(yield func(T) bool) { t.All(yield) } {
//		...
//	}
func (t *Table[T]) All(f func(T) bool) bool {
	for _, p := range t.pieces {
		buf := t.buffer(p.source)
		for _, v := range buf[p.start : p.start+p.length] {
			if !f(v) {
				return false
			}
		}
	}
	return true
}

// Bound is one endpoint of a [Table.Range] query, mirroring the shape of
// Rust's std::collections::Bound: a logical index is either included,
// excluded, or the endpoint is unbounded.
type Bound struct {
	kind  boundKind
	value int
}

type boundKind uint8

const (
	boundUnbounded boundKind = iota
	boundIncluded
	boundExcluded
)

// Included returns a Bound including idx.
func Included(idx int) Bound { return Bound{kind: boundIncluded, value: idx} }

// Excluded returns a Bound excluding idx.
func Excluded(idx int) Bound { return Bound{kind: boundExcluded, value: idx} }

// Unbounded returns a Bound with no endpoint.
func Unbounded() Bound { return Bound{kind: boundUnbounded} }

// normalizeLow converts a lower Bound to an inclusive logical index.
func normalizeLow(b Bound) int {
	switch b.kind {
	case boundIncluded:
		return b.value
	case boundExcluded:
		return b.value + 1
	default:
		return 0
	}
}

// normalizeHigh converts an upper Bound to an exclusive logical index,
// given the current length (used when the bound is Unbounded).
func normalizeHigh(b Bound, length int) int {
	switch b.kind {
	case boundIncluded:
		return b.value + 1
	case boundExcluded:
		return b.value
	default:
		return length
	}
}

// Range calls f for each element of t in the half-open span [lo, hi)
// obtained by normalizing from and to against t's current length, in order.
// If f returns false, Range stops early and returns false; otherwise it
// returns true after visiting every element in the span.
//
// Range panics if the normalized bounds are out of order or if the
// normalized lower bound exceeds t.Len().
func (t *Table[T]) Range(from, to Bound, f func(T) bool) bool {
	lo := normalizeLow(from)
	hi := normalizeHigh(to, t.length)
	if lo < 0 || lo > t.length {
		panic(fmt.Sprintf("ptable: range lower bound %d out of range (length %d)", lo, t.length))
	}
	if hi < lo || hi > t.length {
		panic(fmt.Sprintf("ptable: range upper bound %d invalid for lower bound %d (length %d)", hi, lo, t.length))
	}
	if lo == hi {
		return true
	}

	loc := t.locate(lo)
	remaining := hi - lo

	buf := t.buffer(t.pieces[loc.piece].source)
	start := t.pieces[loc.piece].start + loc.delta
	end := t.pieces[loc.piece].start + t.pieces[loc.piece].length
	for _, v := range buf[start:end] {
		if remaining == 0 {
			return true
		}
		if !f(v) {
			return false
		}
		remaining--
	}
	if remaining == 0 {
		return true
	}
	return t.walkN(loc.piece+1, remaining, f)
}

// walkN yields up to n elements starting at piece index startPiece, offset
// 0 within it, stopping early if f returns false or n elements have been
// produced.
func (t *Table[T]) walkN(startPiece int, n int, f func(T) bool) bool {
	for _, p := range t.pieces[startPiece:] {
		buf := t.buffer(p.source)
		for _, v := range buf[p.start : p.start+p.length] {
			if n == 0 {
				return true
			}
			if !f(v) {
				return false
			}
			n--
		}
	}
	return true
}
