package TreeMap

import (
	"cmp"

	"github.com/g-m-twostay/bst/Maps"
	"github.com/g-m-twostay/bst/Trees"
)

// entry is stored by pointer so a value can be replaced without touching the tree.
type entry[K, V any] struct {
	k K
	v V
}

// TreeMap is an ordered map on top of an unbalanced BST keyed by K.
type TreeMap[K, V any] struct {
	t *Trees.BST[*entry[K, V], uint]
}

var _ Maps.Map[int, int] = (*TreeMap[int, int])(nil)

// New empty map ordered by < on keys, with room for size entries.
func New[K cmp.Ordered, V any](size uint) *TreeMap[K, V] {
	return NewFunc[K, V](size, cmp.Less[K])
}

// NewFunc returns an empty map ordered by less on keys.
func NewFunc[K, V any](size uint, less func(a, b K) bool) *TreeMap[K, V] {
	return &TreeMap[K, V]{Trees.NewFunc[*entry[K, V]](size, func(a, b *entry[K, V]) bool {
		return less(a.k, b.k)
	})}
}

func (u *TreeMap[K, V]) find(k K) *entry[K, V] {
	if it := u.t.Find(&entry[K, V]{k: k}); it.Valid() {
		return it.Value()
	}
	return nil
}

// Put v at k. Returns the previous value and true if k was already present.
func (u *TreeMap[K, V]) Put(k K, v V) (old V, replaced bool) {
	it, inserted := u.t.Insert(&entry[K, V]{k, v}, true)
	if !inserted {
		e := it.Value()
		old, e.v, replaced = e.v, v, true
	}
	return
}

func (u *TreeMap[K, V]) HasKey(k K) bool {
	return u.find(k) != nil
}

func (u *TreeMap[K, V]) Get(k K) (v V, ok bool) {
	if e := u.find(k); e != nil {
		v, ok = e.v, true
	}
	return
}

// Remove the entry at k. Returns false if there wasn't one.
func (u *TreeMap[K, V]) Remove(k K) bool {
	if it := u.t.Find(&entry[K, V]{k: k}); it.Valid() {
		u.t.Erase(it)
		return true
	}
	return false
}

// Take removes and returns the entry with the smallest key. Zero values if the map is empty.
func (u *TreeMap[K, V]) Take() (k K, v V) {
	if it := u.t.Begin(); it.Valid() {
		e := it.Value()
		k, v = e.k, e.v
		u.t.Erase(it)
	}
	return
}

// Range over entries in ascending key order until f returns false.
func (u *TreeMap[K, V]) Range(f func(K, V) bool) {
	u.t.Range(func(e *entry[K, V]) bool {
		return f(e.k, e.v)
	})
}

// Keys in ascending order.
func (u *TreeMap[K, V]) Keys() []K {
	ks := make([]K, 0, u.t.Size())
	u.t.Range(func(e *entry[K, V]) bool {
		ks = append(ks, e.k)
		return true
	})
	return ks
}

func (u *TreeMap[K, V]) Size() uint {
	return u.t.Size()
}

// Clone is a deep copy of the map. Values themselves are copied by assignment.
func (u *TreeMap[K, V]) Clone() *TreeMap[K, V] {
	return &TreeMap[K, V]{u.t.CloneWith(func(e *entry[K, V]) *entry[K, V] {
		return &entry[K, V]{e.k, e.v}
	})}
}
