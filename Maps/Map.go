package Maps

// Map from keys to values. Keys are compared by whatever order the implementation uses.
type Map[K, V any] interface {
	Put(K, V) (V, bool)
	HasKey(K) bool
	Get(K) (V, bool)
	Remove(K) bool
	Take() (K, V)
	Range(func(K, V) bool)
	Size() uint
}
