package Sets

// Set of unique elements.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}

// OrderedSet is a Set whose Range visits elements in ascending order and whose
// Take removes the smallest element.
type OrderedSet[E any] interface {
	Set[E]
	Min() (E, bool)
	Max() (E, bool)
}
