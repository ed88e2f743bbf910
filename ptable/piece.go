// Package ptable implements a piece-table sequence container: an ordered,
// indexable collection of elements of a generic type T whose internal
// layout amortizes the cost of scattered insertions and removals.
//
// A [Table] splices together an immutable, externally-owned original buffer
// with an append-only, table-owned add buffer, presented through a small
// ordered table of piece descriptors. Reads (iteration, [Table.Get],
// [Table.Range]) walk the piece table to resolve a logical position into a
// slice of one of the two buffers; writes ([Table.Insert], [Table.Remove])
// do the same and then splice, split, or drop pieces.
//
// Sequential edits at adjacent logical indices are fast-pathed to O(1); a
// cold edit costs O(p), where p is the number of pieces, which in editor-like
// workloads stays small relative to the logical length:
//
//	src := []byte("hello world")
//	t := ptable.New[byte]().Src(src)
//	t.Insert(5, ',')  // O(p): resolves the split point
//	t.Insert(6, ' ')  // O(1): extends the piece just created
//
// A Table is single-owner: it is not designed for concurrent mutation, and
// values returned by [Table.Get], [Table.All], and [Table.Range] remain
// valid only as long as no mutation occurs through any path to the table,
// and not longer than the table's own lifetime or (for elements drawn from
// the original buffer) the original slice's lifetime, whichever ends first.
package ptable

// bufferKind selects which of the two backing buffers a piece projects into.
type bufferKind uint8

const (
	bufOriginal bufferKind = iota
	bufAdd
)

// piece is a single contiguous run (source, start, length) that projects
// into either the original or the add buffer. The logical sequence is the
// concatenation, in order, of the projections of all live pieces.
//
// A live piece always has length > 0; a piece that would become empty is
// spliced out of the table immediately rather than retained.
type piece struct {
	source bufferKind
	start  int
	length int
}
