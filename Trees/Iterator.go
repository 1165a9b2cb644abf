package Trees

import "golang.org/x/exp/constraints"

// Iterator is a cursor at a node of a BST, or at the end when it refers to no node.
// It owns nothing; once its node is erased it must not be used anymore.
// Iterators are values: Next and Prev return the moved cursor and leave the receiver
// where it was. Two iterators are equal when they refer to the same node.
type Iterator[T any, S constraints.Unsigned] struct {
	b *base[T, S]
	i S
}

// Valid reports whether it refers to a node, that is, it isn't an end iterator.
func (it Iterator[T, S]) Valid() bool {
	return it.i != 0
}

// Value at the node. Undefined (zero) for the end iterator.
func (it Iterator[T, S]) Value() (v T) {
	if it.i != 0 {
		v = it.b.ns[it.i].v
	}
	return
}

// Next is the iterator at the in-order successor, the end iterator after the last node.
// Next of the end iterator is itself.
// Time: amortized O(1), worst O(D); Space: O(1)
func (it Iterator[T, S]) Next() Iterator[T, S] {
	if it.i != 0 {
		it.i = it.b.next(it.i)
	}
	return it
}

// Prev is the iterator at the in-order predecessor, the end iterator before the first node.
// Prev of the end iterator is the last node, so a tree can be walked backward from End().
// Time: amortized O(1), worst O(D); Space: O(1)
func (it Iterator[T, S]) Prev() Iterator[T, S] {
	if it.i != 0 {
		it.i = it.b.prev(it.i)
	} else if it.b != nil && it.b.root != 0 {
		it.i = it.b.rightmost(it.b.root)
	}
	return it
}

// Equal reports whether it and o refer to the same node. All end iterators are equal.
func (it Iterator[T, S]) Equal(o Iterator[T, S]) bool {
	return it.i == o.i && (it.i == 0 || it.b == o.b)
}
