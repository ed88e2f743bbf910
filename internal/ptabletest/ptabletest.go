// Package ptabletest includes internal utilities shared by the tests of the
// ptable package.
package ptabletest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Sequence is the subset of Table[T]'s behavior needed to check its contents
// against a model slice. It is defined here, rather than imported, so that
// this package does not need to depend on ptable and can be shared by
// ptable's own _test.go files without an import cycle.
type Sequence[T any] interface {
	All(func(T) bool) bool
	Len() int
}

// CheckContents verifies that s contains the specified elements in order, or
// reports an error to t.
func CheckContents[T any](t *testing.T, s Sequence[T], want []T) {
	t.Helper()
	var got []T
	s.All(func(v T) bool {
		got = append(got, v)
		return true
	})
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Wrong contents (-want, +got):\n%s", diff)
	}
	if n := s.Len(); n != len(got) || n != len(want) {
		t.Errorf("Wrong length: got %d, want %d == %d", n, len(got), len(want))
	}
}
