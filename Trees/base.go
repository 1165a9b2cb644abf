package Trees

import (
	"github.com/g-m-twostay/bst/Queues"
	"golang.org/x/exp/constraints"
)

// base is the arena owning every node of a tree.
// ns[0] is the absent node; its fields are never written.
type base[T any, S constraints.Unsigned] struct {
	root, free, sz S //free is the beginning of the linked list that contains all the free indexes; node::l represents next.
	ns             []node[T, S]
}

func newBase[T any, S constraints.Unsigned](hint S) *base[T, S] {
	return &base[T, S]{ns: make([]node[T, S], 1, int(hint)+1)}
}

// alloc a slot holding v with parent p. Free slots are reused before the arena grows.
// Panics with CapacityError, before anything is modified, if S can't index another slot.
func (u *base[T, S]) alloc(v T, p S) S {
	if i := u.free; i != 0 {
		u.free = u.ns[i].l
		u.ns[i] = node[T, S]{v: v, p: p}
		return i
	}
	i := S(len(u.ns))
	if int(i) != len(u.ns) {
		panic(CapacityError{uint64(^S(0))})
	}
	u.ns = append(u.ns, node[T, S]{v: v, p: p})
	return i
}

// addFree slot i once. The value is dropped so that it can be collected.
func (u *base[T, S]) addFree(i S) {
	u.ns[i] = node[T, S]{l: u.free, p: i}
	u.free = i
}

// freed reports whether i is out of the arena or currently in the free list.
func (u *base[T, S]) freed(i S) bool {
	return int(i) >= len(u.ns) || u.ns[i].p == i
}

// clear every slot, keeping the allocated capacity.
// Time: O(len(ns)); Space: O(1)
func (u *base[T, S]) clear() {
	clear(u.ns[1:])
	u.ns = u.ns[:1]
	u.root, u.free, u.sz = 0, 0, 0
}

// link of a node waiting to be copied: the source index and where its copy hangs.
type link[S constraints.Unsigned] struct {
	src, dst S
	right    bool
}

// clone the tree into a new, compact arena with the same shape, copying values with cp.
// The traversal is breadth first over a queue, so depth of the tree doesn't matter. u isn't modified.
// Time: O(n); Space: O(n)
func (u *base[T, S]) clone(cp func(T) T) *base[T, S] {
	c := newBase[T, S](u.sz)
	if u.root == 0 {
		return c
	}
	q := Queues.MakeArrayQueue[link[S]](uint(u.sz))
	for q.Push(link[S]{src: u.root}); !q.Empty(); {
		e, _ := q.Pop()
		s := &u.ns[e.src]
		i := S(len(c.ns))
		c.ns = append(c.ns, node[T, S]{v: cp(s.v), p: e.dst})
		if e.dst == 0 {
			c.root = i
		} else if e.right {
			c.ns[e.dst].r = i
		} else {
			c.ns[e.dst].l = i
		}
		if s.l != 0 {
			q.Push(link[S]{s.l, i, false})
		}
		if s.r != 0 {
			q.Push(link[S]{s.r, i, true})
		}
	}
	c.sz = u.sz
	return c
}
