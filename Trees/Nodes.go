package Trees

import "golang.org/x/exp/constraints"

// A node slot in the arena of a BST.
// l, r, p are indices of the left child, right child and parent; 0 means absent.
// A free slot has p equal to its own index and l linking to the next free slot.
type node[T any, S constraints.Unsigned] struct {
	v       T
	l, r, p S
}

// leftmost node of the subtree rooted at i. i mustn't be 0.
// Time: O(D); Space: O(1)
func (u *base[T, S]) leftmost(i S) S {
	for u.ns[i].l != 0 {
		i = u.ns[i].l
	}
	return i
}

// rightmost node of the subtree rooted at i. i mustn't be 0.
// Time: O(D); Space: O(1)
func (u *base[T, S]) rightmost(i S) S {
	for u.ns[i].r != 0 {
		i = u.ns[i].r
	}
	return i
}

// isLeft reports whether i is the left child of its parent. The root isn't a child.
func (u *base[T, S]) isLeft(i S) bool {
	p := u.ns[i].p
	return p != 0 && u.ns[p].l == i
}

// isRight reports whether i is the right child of its parent.
func (u *base[T, S]) isRight(i S) bool {
	p := u.ns[i].p
	return p != 0 && u.ns[p].r == i
}

// next is the in-order successor of i, 0 if i is the last node.
// Only child and parent links are followed.
// Time: amortized O(1), worst O(D); Space: O(1)
func (u *base[T, S]) next(i S) S {
	if r := u.ns[i].r; r != 0 {
		return u.leftmost(r)
	}
	for u.isRight(i) {
		i = u.ns[i].p
	}
	return u.ns[i].p
}

// prev is the in-order predecessor of i, 0 if i is the first node.
// Time: amortized O(1), worst O(D); Space: O(1)
func (u *base[T, S]) prev(i S) S {
	if l := u.ns[i].l; l != 0 {
		return u.rightmost(l)
	}
	for u.isLeft(i) {
		i = u.ns[i].p
	}
	return u.ns[i].p
}

// transplant puts the subtree b (possibly absent) at the position of a.
// Links of a itself are left untouched.
func (u *base[T, S]) transplant(a, b S) {
	p := u.ns[a].p
	if p == 0 {
		u.root = b
	} else if u.ns[p].l == a {
		u.ns[p].l = b
	} else {
		u.ns[p].r = b
	}
	if b != 0 {
		u.ns[b].p = p
	}
}
