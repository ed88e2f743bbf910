package ptable

// A Table is a piece-table sequence container over elements of type T. The
// zero Table is a valid, empty container with no source, ready for use the
// same way a zero [queue.Queue] or [stack.Stack] is: New just makes that
// explicit.
type Table[T any] struct {
	original []T   // borrowed, never mutated
	add      []T   // owned, append-only
	pieces   []piece
	length   int

	// lastIdx is the logical index most recently touched by Insert or
	// Remove; it anchors both fast-path hints below.
	lastIdx int

	// insPiece/insFresh are valid only while insValid is true. insFresh
	// distinguishes "the last op at lastIdx was an insert" (true, the
	// "Fresh" state) from "the last op undid the element just inserted
	// there" (false, the "Undone" state); see Insert and Remove.
	insValid bool
	insPiece int
	insFresh bool

	// remLoc is valid only while remValid is true, and caches the location
	// of the predecessor of lastIdx for a subsequent backward-sequential
	// Remove.
	remValid bool
	remLoc   location
}

// New constructs a new, empty Table with no source.
func New[T any]() *Table[T] { return new(Table[T]) }

// WithCapacity constructs a new, empty Table with storage reserved for at
// least dataCap elements in the add buffer and pieceCap piece descriptors.
// The hints are advisory and never change observable behavior; they only
// reduce reallocation.
func WithCapacity[T any](dataCap, pieceCap int) *Table[T] {
	return &Table[T]{
		add:    make([]T, 0, dataCap),
		pieces: make([]piece, 0, pieceCap),
	}
}

// FromIterable constructs a new Table containing items, in order. It is
// equivalent to calling [Table.Extend] on a new, empty Table.
func FromIterable[T any](items ...T) *Table[T] {
	t := New[T]()
	t.Extend(items...)
	return t
}

// Src assigns src as t's read-only source, replacing any prior source, and
// resets t to contain exactly src's elements: the add buffer and piece
// table are emptied, a single piece covering src is installed (if src is
// non-empty), and both fast-path hints are cleared.
//
// The caller must ensure src outlives t, or at least outlives every read
// through t that could observe an element drawn from it.
func (t *Table[T]) Src(src []T) *Table[T] {
	t.original = src
	t.add = t.add[:0]
	t.pieces = t.pieces[:0]
	if len(src) > 0 {
		t.pieces = append(t.pieces, piece{source: bufOriginal, start: 0, length: len(src)})
	}
	t.length = len(src)
	t.lastIdx = 0
	t.insValid = false
	t.remValid = false
	return t
}

// Len reports the number of elements in t.
func (t *Table[T]) Len() int { return t.length }

// IsEmpty reports whether t has no elements.
func (t *Table[T]) IsEmpty() bool { return t.length == 0 }

// CapacityData reports the current capacity of the add buffer.
func (t *Table[T]) CapacityData() int { return cap(t.add) }

// CapacityPieces reports the current capacity of the piece table.
func (t *Table[T]) CapacityPieces() int { return cap(t.pieces) }

// ReserveData grows the add buffer, if needed, to hold at least n more
// elements than it currently contains. It is advisory: callers never need
// to call it for correctness, only to avoid reallocation on a known-large
// sequence of inserts.
func (t *Table[T]) ReserveData(n int) { t.add = growSlice(t.add, n) }

// ReservePieces grows the piece table, if needed, to hold at least n more
// pieces than it currently contains. It is advisory in the same sense as
// ReserveData.
func (t *Table[T]) ReservePieces(n int) { t.pieces = growSlice(t.pieces, n) }

// Clear empties t: it drops the source reference, empties the add buffer
// and the piece table, and resets the length and both fast-path hints.
func (t *Table[T]) Clear() {
	t.original = nil
	t.add = t.add[:0]
	t.pieces = t.pieces[:0]
	t.length = 0
	t.lastIdx = 0
	t.insValid = false
	t.remValid = false
}

// Clone returns a new Table with the same logical contents as t. The clone
// owns independent copies of the add buffer and piece table; it retains the
// same (shared, non-owning) reference to t's original source.
func (t *Table[T]) Clone() *Table[T] {
	cp := &Table[T]{
		original: t.original,
		length:   t.length,
		lastIdx:  t.lastIdx,
		insValid: t.insValid,
		insPiece: t.insPiece,
		insFresh: t.insFresh,
		remValid: t.remValid,
		remLoc:   t.remLoc,
	}
	if t.add != nil {
		cp.add = append([]T(nil), t.add...)
	}
	if t.pieces != nil {
		cp.pieces = append([]piece(nil), t.pieces...)
	}
	return cp
}

// Push appends item to the end of t in O(1) amortized time. Push never
// consults the fast-path hints to decide how to do its own work, but it
// must still drop the reusable_insert hint unconditionally, in both its
// Fresh and Undone states: the hint's fast paths append to or pop from the
// add buffer's tail and decide whether to fire by comparing an incoming
// index against lastIdx, while Push moves that tail and lastIdx only moves
// on Insert/Remove, so keeping the hint would let a following Insert or
// Remove splice or drop the wrong element. The same goes for reusable_remove whenever
// Push extends an existing piece in place: a cached location pointing at
// that piece's old tail no longer names the element a subsequent backward
// Remove is asked for, since Push just moved the tail out from under it.
func (t *Table[T]) Push(item T) {
	t.insValid = false
	if n := len(t.pieces); n > 0 {
		last := &t.pieces[n-1]
		if last.source == bufAdd && last.start+last.length == len(t.add) {
			t.add = append(t.add, item)
			last.length++
			t.length++
			t.remValid = false
			return
		}
	}
	t.add = append(t.add, item)
	t.pieces = append(t.pieces, piece{source: bufAdd, start: len(t.add) - 1, length: 1})
	t.length++
}

// Extend appends items, in order, to the end of t. It records the add
// buffer's length before appending, then creates one new piece covering the
// whole appended run, rather than growing an existing trailing piece
// element by element. Like Push, it unconditionally drops the
// reusable_insert hint, for the same reason: the add buffer's tail moves
// here and lastIdx does not.
func (t *Table[T]) Extend(items ...T) {
	if len(items) == 0 {
		return
	}
	t.insValid = false
	start := len(t.add)
	t.add = append(t.add, items...)
	t.pieces = append(t.pieces, piece{source: bufAdd, start: start, length: len(items)})
	t.length += len(items)
}

// PieceCount reports the number of live pieces in t's piece table. It is a
// white-box accessor, exposed so tests can confirm that sequential edits
// stay on the O(1) fast path instead of fragmenting the piece table.
func (t *Table[T]) PieceCount() int { return len(t.pieces) }

// AddLen reports the current length of t's internal add buffer. It is a
// white-box accessor for tests verifying that undoing an insert also
// retracts the add buffer rather than merely hiding the element behind a
// shortened piece.
func (t *Table[T]) AddLen() int { return len(t.add) }

// buffer returns the backing slice for the given buffer tag.
func (t *Table[T]) buffer(source bufferKind) []T {
	if source == bufAdd {
		return t.add
	}
	return t.original
}
