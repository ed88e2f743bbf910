package ptable

import "fmt"

// Get returns the element at logical position idx. It panics if idx >=
// t.Len().
func (t *Table[T]) Get(idx int) T {
	if idx < 0 || idx >= t.length {
		panic(fmt.Sprintf("ptable: index %d out of range (length %d)", idx, t.length))
	}
	loc := t.locate(idx)
	p := t.pieces[loc.piece]
	return t.buffer(p.source)[p.start+loc.delta]
}
