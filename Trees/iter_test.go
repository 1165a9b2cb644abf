package Trees

import (
	"slices"
	"testing"
)

func TestIterator_Symmetry(t *testing.T) {
	tree := New[int, uint16](0)
	for _i := 0; _i < 2000; _i++ {
		tree.Insert(rg.Intn(500), false)
	}
	begin, end := tree.Begin(), tree.End()
	for it := begin; it.Valid(); it = it.Next() {
		if !it.Next().Prev().Equal(it) {
			t.Fatalf("prev of next of %v isn't itself", it.Value())
		}
		if !it.Equal(begin) && !it.Prev().Next().Equal(it) {
			t.Fatalf("next of prev of %v isn't itself", it.Value())
		}
		if n := it.Next(); !n.Equal(end) && !n.Prev().Next().Equal(n) {
			t.Fatalf("next of prev of next of %v isn't next", it.Value())
		}
	}
	if !begin.Prev().Equal(end) {
		t.Error("prev of begin isn't end")
	}
	if !end.Next().Equal(end) {
		t.Error("next of end isn't end")
	}
	if !end.Prev().Equal(tree.Last()) {
		t.Error("prev of end isn't last")
	}
}

func TestIterator_Backward(t *testing.T) {
	tree := From[int, uint](rg.Perm(300)...)
	var s []int
	for it := tree.End().Prev(); it.Valid(); it = it.Prev() {
		s = append(s, it.Value())
	}
	if len(s) != 300 {
		t.Errorf("backward walk gives %d values, want %d", len(s), 300)
	}
	if !slices.IsSortedFunc(s, func(a, b int) int { return b - a }) {
		t.Error("backward walk isn't descending")
	}
	f := tree.ReverseOrder()
	for i, valid := 0, true; valid; i++ {
		var v int
		if v, valid = f(); valid && v != s[i] {
			t.Fatalf("reverse order gives %v at %d, want %v", v, i, s[i])
		}
	}
}

func TestIterator_InOrder(t *testing.T) {
	tree := sample()
	f := tree.InOrder()
	var s []int
	for v, valid := f(); valid; v, valid = f() {
		s = append(s, v)
	}
	if !slices.Equal(s, []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Errorf("in order gives %v", s)
	}
	if _, valid := f(); valid {
		t.Error("exhausted in order became valid again")
	}
	var firstTwo []int
	tree.Range(func(v int) bool {
		firstTwo = append(firstTwo, v)
		return len(firstTwo) < 2
	})
	if !slices.Equal(firstTwo, []int{1, 3}) {
		t.Errorf("stopped range gives %v", firstTwo)
	}
}

func TestIterator_Equal(t *testing.T) {
	a, b := sample(), sample()
	if !a.End().Equal(b.End()) || !a.End().Equal(Iterator[int, uint]{}) {
		t.Error("end iterators aren't equal")
	}
	if a.Find(5).Equal(b.Find(5)) {
		t.Error("iterators of different trees are equal")
	}
	if !a.Find(5).Equal(a.Begin().Next().Next().Next()) {
		t.Error("iterators at the same node aren't equal")
	}
	if (Iterator[int, uint]{}).Prev().Valid() || (Iterator[int, uint]{}).Value() != 0 {
		t.Error("zero iterator moved")
	}
}
