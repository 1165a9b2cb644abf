package Trees

import (
	"cmp"

	"github.com/g-m-twostay/bst/Queues"
	"golang.org/x/exp/constraints"
)

// BST is a binary search tree without balancing. T is the type of values it holds,
// S is the type of the indexes into the node arena; S bounds the number of nodes the
// tree can ever hold at once to the max value of S.
// Values in the left subtree of a node are less than the node's value, values in the
// right subtree are not less, so equal values end up to the right. Duplicates are
// allowed unless Insert is asked to keep values unique.
// The tree holds its arena by pointer, so Swap and the move operations are O(1) and
// iterators keep following their nodes across them.
// BST shouldn't be created directly using struct literal, use New, NewFunc or From.
type BST[T any, S constraints.Unsigned] struct {
	*base[T, S]
	less func(a, b T) bool
}

// New empty tree ordered by <. hint is the number of nodes to reserve memory for.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *BST[T, S] {
	return &BST[T, S]{newBase[T, S](hint), cmp.Less[T]}
}

// NewFunc returns an empty tree ordered by less, which must be a strict weak order.
// Two values a and b are considered equal when neither less(a,b) nor less(b,a).
func NewFunc[T any, S constraints.Unsigned](hint S, less func(a, b T) bool) *BST[T, S] {
	return &BST[T, S]{newBase[T, S](hint), less}
}

// From a sequence of values, inserted one by one in the given order. Duplicates are kept.
// Time: O(n*D)
func From[T cmp.Ordered, S constraints.Unsigned](vs ...T) *BST[T, S] {
	u := New[T, S](S(len(vs)))
	for _, v := range vs {
		u.Insert(v, false)
	}
	return u
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *BST[T, S]) Size() S {
	return u.sz
}

// Empty reports whether the tree has no nodes.
func (u *BST[T, S]) Empty() bool {
	return u.sz == 0
}

// Begin is the iterator at the smallest value, End() if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Begin() Iterator[T, S] {
	if u.root == 0 {
		return u.End()
	}
	return Iterator[T, S]{u.base, u.leftmost(u.root)}
}

// Last is the iterator at the largest value, End() if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Last() Iterator[T, S] {
	if u.root == 0 {
		return u.End()
	}
	return Iterator[T, S]{u.base, u.rightmost(u.root)}
}

// End is the iterator past the last value. It refers to no node.
func (u *BST[T, S]) End() Iterator[T, S] {
	return Iterator[T, S]{u.base, 0}
}

// Find a node whose value is equal to v. Returns End() when there isn't any.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Find(v T) Iterator[T, S] {
	for curI := u.root; curI != 0; {
		if cur := &u.ns[curI]; u.less(v, cur.v) {
			curI = cur.l
		} else if u.less(cur.v, v) {
			curI = cur.r
		} else {
			return Iterator[T, S]{u.base, curI}
		}
	}
	return u.End()
}

// Insert v into the tree. If keepUnique is true and a value equal to v already exists,
// nothing is inserted and the iterator at the existing value is returned with false.
// Otherwise, the new node is placed at the leaf position found by going left on less and
// right on not less, and its iterator is returned with true.
// The new node is linked only after its slot is allocated, so a CapacityError panic
// leaves the tree unchanged.
// Time: O(D)
func (u *BST[T, S]) Insert(v T, keepUnique bool) (Iterator[T, S], bool) {
	if keepUnique {
		if it := u.Find(v); it.i != 0 {
			return it, false
		}
	}
	var p S
	right := false
	for curI := u.root; curI != 0; {
		p = curI
		if right = !u.less(v, u.ns[curI].v); right {
			curI = u.ns[curI].r
		} else {
			curI = u.ns[curI].l
		}
	}
	i := u.alloc(v, p)
	if p == 0 {
		u.root = i
	} else if right {
		u.ns[p].r = i
	} else {
		u.ns[p].l = i
	}
	u.sz++
	return Iterator[T, S]{u.base, i}, true
}

// Erase the node at it and return the iterator at its in-order successor, End() if there's
// none. Erasing End() is a no-op returning End().
// A node with 2 children is replaced by its successor node, which is relinked into the
// erased position; the successor's own right subtree takes the successor's old place.
// Panics with ForeignIteratorError if it isn't from u, and with StaleIteratorError if its
// node is known to be erased already.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Erase(it Iterator[T, S]) Iterator[T, S] {
	z := it.i
	if z == 0 {
		return u.End()
	}
	if it.b != u.base {
		panic(ForeignIteratorError{})
	}
	if u.freed(z) {
		panic(StaleIteratorError{uint64(z)})
	}
	next := u.next(z)
	if n := u.ns[z]; n.l == 0 {
		u.transplant(z, n.r)
	} else if n.r == 0 {
		u.transplant(z, n.l)
	} else {
		s := u.leftmost(n.r)
		if u.ns[s].p != z {
			u.transplant(s, u.ns[s].r)
			u.ns[s].r = n.r
			u.ns[n.r].p = s
		}
		u.transplant(z, s)
		u.ns[s].l = n.l
		u.ns[n.l].p = s
	}
	u.addFree(z)
	u.sz--
	return Iterator[T, S]{u.base, next}
}

// Clear the tree. Every node is released exactly once and the arena keeps its capacity.
// Clearing an empty tree does nothing.
// Time: O(n); Space: O(1)
func (u *BST[T, S]) Clear() {
	u.base.clear()
}

// Clone returns a deep copy of u with the same shape and order. The two trees share nothing.
// Time: O(n); Space: O(n)
func (u *BST[T, S]) Clone() *BST[T, S] {
	return &BST[T, S]{u.clone(identity[T]), u.less}
}

// CloneWith is Clone with every value copied by cp, for values that hold references.
// cp must keep the order of values.
// Time: O(n); Space: O(n)
func (u *BST[T, S]) CloneWith(cp func(T) T) *BST[T, S] {
	return &BST[T, S]{u.clone(cp), u.less}
}

func identity[T any](v T) T {
	return v
}

// CopyFrom replaces the content of u by a deep copy of src. The copy is built aside and
// installed when complete, so u is untouched if building it fails. Iterators of u are
// invalidated. Copying a tree onto itself does nothing.
// Time: O(n); Space: O(n)
func (u *BST[T, S]) CopyFrom(src *BST[T, S]) {
	if u.base != src.base {
		u.base, u.less = src.clone(identity[T]), src.less
	}
}

// Take the content of src into a new tree, leaving src empty.
// Time: O(1); Space: O(1)
func Take[T any, S constraints.Unsigned](src *BST[T, S]) *BST[T, S] {
	u := &BST[T, S]{src.base, src.less}
	src.base = newBase[T, S](0)
	return u
}

// MoveFrom clears u and then takes over the content of src, leaving src empty.
// Moving a tree onto itself does nothing.
// Time: O(n) for clearing u; Space: O(1)
func (u *BST[T, S]) MoveFrom(src *BST[T, S]) {
	if u.base != src.base {
		u.Clear()
		u.Swap(src)
	}
}

// Assign clears u and inserts vs one by one in the given order. Duplicates are kept.
// Time: O(n*D)
func (u *BST[T, S]) Assign(vs ...T) {
	u.Clear()
	for _, v := range vs {
		u.Insert(v, false)
	}
}

// Swap the contents, including the orders, of u and o. No node is visited.
// Time: O(1); Space: O(1)
func (u *BST[T, S]) Swap(o *BST[T, S]) {
	u.base, o.base = o.base, u.base
	u.less, o.less = o.less, u.less
}

// InOrder returns A closure function f acting like an iterator. f gives values in the
// in-order traversal of the tree. val, valid=f(); val is meaningful only if valid is true.
// valid can't turn true after it first became false.
// The tree must not be modified during the iteration of f.
// Time: f(): amortized O(1). Space: O(1)
func (u *BST[T, S]) InOrder() func() (T, bool) {
	it := u.Begin()
	return func() (v T, valid bool) {
		if valid = it.i != 0; valid {
			v, it = it.Value(), it.Next()
		}
		return
	}
}

// ReverseOrder is InOrder from the largest value to the smallest.
func (u *BST[T, S]) ReverseOrder() func() (T, bool) {
	it := u.Last()
	return func() (v T, valid bool) {
		if valid = it.i != 0; valid {
			v, it = it.Value(), it.Prev()
		}
		return
	}
}

// Range calls f on each value in ascending order until f returns false.
func (u *BST[T, S]) Range(f func(T) bool) {
	for it := u.Begin(); it.i != 0 && f(it.Value()); it = it.Next() {
	}
}

// LevelOrder calls f on each value breadth first, root first, until f returns false.
// Time: O(n); Space: O(width)
func (u *BST[T, S]) LevelOrder(f func(T) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[S](16)
	for q.Push(u.root); !q.Empty(); {
		curI, _ := q.Pop()
		cur := &u.ns[curI]
		if !f(cur.v) {
			return
		}
		if cur.l != 0 {
			q.Push(cur.l)
		}
		if cur.r != 0 {
			q.Push(cur.r)
		}
	}
}

// Height is the number of nodes on the longest path from the root, 0 for an empty tree.
// Time: O(n); Space: O(D)
func (u *BST[T, S]) Height() (h uint) {
	if u.root == 0 {
		return
	}
	type frame struct {
		i S
		d uint
	}
	for st := []frame{{u.root, 1}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, top.d)
		cur := &u.ns[top.i]
		if cur.l != 0 {
			st = append(st, frame{cur.l, top.d + 1})
		}
		if cur.r != 0 {
			st = append(st, frame{cur.r, top.d + 1})
		}
	}
	return
}

// Corrupt returns whether the tree has corrupt structures: a value on the wrong side of
// an ancestor, a child not linking back to its parent, a reachable free slot, a link out
// of the arena, or a size not matching the number of reachable nodes.
// Time: O(n); Space: O(D)
func (u *BST[T, S]) Corrupt() bool {
	if u.root != 0 && (u.freed(u.root) || u.ns[u.root].p != 0) {
		return true
	}
	type frame struct {
		i      S
		lo, hi S //nodes whose values bound the subtree: lo<=v<hi; 0 when unbounded.
	}
	var count S
	for st := []frame{{u.root, 0, 0}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.i == 0 {
			continue
		}
		if count++; count > u.sz {
			return true
		}
		cur := &u.ns[top.i]
		if top.lo != 0 && u.less(cur.v, u.ns[top.lo].v) || top.hi != 0 && !u.less(cur.v, u.ns[top.hi].v) {
			return true
		}
		for _, c := range [2]S{cur.l, cur.r} {
			if c != 0 && (u.freed(c) || u.ns[c].p != top.i) {
				return true
			}
		}
		st = append(st, frame{cur.l, top.lo, top.i}, frame{cur.r, top.i, top.hi})
	}
	return count != u.sz
}
