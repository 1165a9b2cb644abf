package TreeSet

import (
	"cmp"

	"github.com/g-m-twostay/bst/Sets"
	"github.com/g-m-twostay/bst/Trees"
)

// TreeSet is an ordered set on top of an unbalanced BST. Operations cost O(D) where D
// is the depth of the tree, which is O(log n) for random insertion orders and O(n) for
// sorted ones.
type TreeSet[E any] struct {
	t *Trees.BST[E, uint]
}

var _ Sets.OrderedSet[int] = (*TreeSet[int])(nil)

// New empty set ordered by <, with room for size elements.
func New[E cmp.Ordered](size uint) *TreeSet[E] {
	return &TreeSet[E]{Trees.New[E](size)}
}

// NewFunc returns an empty set ordered by less.
func NewFunc[E any](size uint, less func(a, b E) bool) *TreeSet[E] {
	return &TreeSet[E]{Trees.NewFunc[E](size, less)}
}

// Put e into the set. Returns false if an equal element is already there.
func (u *TreeSet[E]) Put(e E) bool {
	_, in := u.t.Insert(e, true)
	return in
}

func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Find(e).Valid()
}

// Remove e from the set. Returns false if it wasn't there.
func (u *TreeSet[E]) Remove(e E) bool {
	if it := u.t.Find(e); it.Valid() {
		u.t.Erase(it)
		return true
	}
	return false
}

func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

// Take removes and returns the smallest element. The zero value if the set is empty.
func (u *TreeSet[E]) Take() (e E) {
	if it := u.t.Begin(); it.Valid() {
		e = it.Value()
		u.t.Erase(it)
	}
	return
}

// Range over elements in ascending order until f returns false.
func (u *TreeSet[E]) Range(f func(E) bool) {
	u.t.Range(f)
}

func (u *TreeSet[E]) Min() (E, bool) {
	it := u.t.Begin()
	return it.Value(), it.Valid()
}

func (u *TreeSet[E]) Max() (E, bool) {
	it := u.t.Last()
	return it.Value(), it.Valid()
}

// Clone is a deep copy of the set.
func (u *TreeSet[E]) Clone() *TreeSet[E] {
	return &TreeSet[E]{u.t.Clone()}
}

// Clear removes every element.
func (u *TreeSet[E]) Clear() {
	u.t.Clear()
}
