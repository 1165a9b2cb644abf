// Package Trees implements an unbalanced binary search tree whose nodes live in
// an index addressed arena. Each node keeps links to its children and its parent,
// which lets iterators walk in-order in both directions without a stack.
//
// Absence is never an error: lookups return the end iterator, and receivers with a
// bool as the second return value use it to tell whether the first one is defined.
// Breaking a precondition, like erasing with an iterator of another tree, panics
// with one of the error types below. Methods implemented recursively should be noted,
// otherwise functions are implemented iteratively.
//
// A tree isn't safe for concurrent use. Any number of readers may share it while
// no writer is active; the caller enforces that.
package Trees

import "fmt"

// ForeignIteratorError is raised when an iterator is handed to a tree that doesn't own its node.
type ForeignIteratorError struct{}

func (e ForeignIteratorError) Error() string {
	return "Trees: iterator belongs to a different tree"
}

// StaleIteratorError is raised when an iterator refers to a node that was already erased.
// Detection is best effort: once the slot is reused by Insert the iterator looks valid again.
type StaleIteratorError struct {
	Index uint64
}

func (e StaleIteratorError) Error() string {
	return fmt.Sprintf("Trees: iterator refers to erased node %d", e.Index)
}

// CapacityError is raised when the index type of a tree can't address another node.
// The tree is left as it was before the failed call.
type CapacityError struct {
	Max uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("Trees: index type is exhausted at %d nodes", e.Max)
}
