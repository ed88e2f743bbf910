package ptable_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gopiece/ptable/internal/ptabletest"
	"github.com/gopiece/ptable/ptable"
)

func check[T any](t *testing.T, tab *ptable.Table[T], want []T) {
	t.Helper()
	ptabletest.CheckContents(t, tab, want)
}

func TestEmpty(t *testing.T) {
	tab := ptable.New[int]()
	check(t, tab, nil)
	if !tab.IsEmpty() {
		t.Error("IsEmpty is incorrectly false")
	}
}

func TestSrc(t *testing.T) {
	src := []int{0, 1, 2, 3, 4}
	tab := ptable.New[int]().Src(src)
	check(t, tab, []int{0, 1, 2, 3, 4})
	if n := tab.Len(); n != 5 {
		t.Errorf("Len: got %d, want 5", n)
	}

	// Reseeding replaces the prior source and state entirely.
	tab.Src([]int{9, 9})
	check(t, tab, []int{9, 9})
}

func TestFromIterable(t *testing.T) {
	tab := ptable.FromIterable(1, 2, 3)
	check(t, tab, []int{1, 2, 3})
}

func TestPushAndExtend(t *testing.T) {
	tab := ptable.New[int]()
	tab.Push(1)
	tab.Push(2)
	check(t, tab, []int{1, 2})

	tab.Extend(3, 4, 5)
	check(t, tab, []int{1, 2, 3, 4, 5})

	// A lone Push after Extend keeps growing the same trailing piece.
	tab.Push(6)
	check(t, tab, []int{1, 2, 3, 4, 5, 6})
}

func TestClear(t *testing.T) {
	tab := ptable.New[int]().Src([]int{1, 2, 3})
	tab.Insert(0, 9)
	tab.Clear()
	check(t, tab, nil)
	if n := tab.Len(); n != 0 {
		t.Errorf("Len after Clear: got %d, want 0", n)
	}
	// The container is still usable after Clear.
	tab.Push(42)
	check(t, tab, []int{42})
}

func TestClone(t *testing.T) {
	src := []int{0, 1, 2}
	orig := ptable.New[int]().Src(src)
	orig.Insert(1, 100)

	clone := orig.Clone()
	check(t, clone, []int{0, 100, 1, 2})

	// Mutating the clone must not affect the original, and vice versa.
	clone.Insert(0, -1)
	check(t, clone, []int{-1, 0, 100, 1, 2})
	check(t, orig, []int{0, 100, 1, 2})
}

func TestCapacityHints(t *testing.T) {
	tab := ptable.WithCapacity[int](16, 4)
	if got := tab.CapacityData(); got < 16 {
		t.Errorf("CapacityData: got %d, want >= 16", got)
	}
	if got := tab.CapacityPieces(); got < 4 {
		t.Errorf("CapacityPieces: got %d, want >= 4", got)
	}
	tab.ReserveData(100)
	tab.ReservePieces(100)
	if got := tab.CapacityData(); got < 100 {
		t.Errorf("CapacityData after reserve: got %d, want >= 100", got)
	}
	if got := tab.CapacityPieces(); got < 100 {
		t.Errorf("CapacityPieces after reserve: got %d, want >= 100", got)
	}
}

// TestScenarioS1 is seed scenario S1 from the container's testable
// properties: linear inserts followed by a splice-then-remove.
func TestScenarioS1(t *testing.T) {
	tab := ptable.New[int]()
	tab.Insert(0, 1)
	tab.Insert(1, 2)
	tab.Insert(2, 3)
	tab.Insert(1, 27)
	tab.Insert(4, 4)
	tab.Insert(5, 5)
	tab.Remove(1)
	tab.Insert(5, 6)
	check(t, tab, []int{1, 2, 3, 4, 5, 6})
}

// TestScenarioS2 is seed scenario S2: a source buffer with a mid-sequence
// insert, checked by both full iteration and range.
func TestScenarioS2(t *testing.T) {
	src := make([]int, 10)
	for i := range src {
		src[i] = i
	}
	tab := ptable.New[int]().Src(src)
	tab.Insert(3, 42)
	check(t, tab, []int{0, 1, 2, 42, 3, 4, 5, 6, 7, 8, 9})

	var got []int
	tab.Range(ptable.Included(2), ptable.Excluded(5), func(v int) bool {
		got = append(got, v)
		return true
	})
	if diff := cmp.Diff([]int{2, 42, 3}, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Range (-want, +got):\n%s", diff)
	}
}

// TestScenarioS4 is seed scenario S4: repeated backward-sequential removal
// exercising the reusable_remove fast path.
func TestScenarioS4(t *testing.T) {
	src := make([]int, 10)
	for i := range src {
		src[i] = i
	}
	tab := ptable.New[int]().Src(src)
	for i := 9; i >= 0; i-- {
		tab.Remove(i)
		check(t, tab, src[:i])
	}
}
