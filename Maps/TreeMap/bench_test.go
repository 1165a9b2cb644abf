package TreeMap

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
)

// compares lookups with https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap,
// which give up order for O(1) reads, and with the gods tree map, which keeps it.
const benchmarkItemCount = 1 << 12

var sideEff bool

func benchKeys(b *testing.B) []int {
	b.Helper()
	return rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)
}

func BenchmarkReadTreeMap(b *testing.B) {
	ks := benchKeys(b)
	m := New[int, int](benchmarkItemCount)
	for _, k := range ks {
		m.Put(k, k)
	}
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, k := range ks {
			_, sideEff = m.Get(k)
		}
	}
}

func BenchmarkReadGodsTreeMap(b *testing.B) {
	ks := benchKeys(b)
	m := treemap.NewWithIntComparator()
	for _, k := range ks {
		m.Put(k, k)
	}
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, k := range ks {
			_, sideEff = m.Get(k)
		}
	}
}

func BenchmarkReadHaxMap(b *testing.B) {
	ks := benchKeys(b)
	m := haxmap.New[int, int]()
	for _, k := range ks {
		m.Set(k, k)
	}
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, k := range ks {
			_, sideEff = m.Get(k)
		}
	}
}

func BenchmarkReadHashMap(b *testing.B) {
	ks := benchKeys(b)
	m := hashmap.New[int, int]()
	for _, k := range ks {
		m.Set(k, k)
	}
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, k := range ks {
			_, sideEff = m.Get(k)
		}
	}
}

func BenchmarkWriteTreeMap(b *testing.B) {
	ks := benchKeys(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		m := New[int, int](benchmarkItemCount)
		for _, k := range ks {
			m.Put(k, k)
		}
	}
}

func BenchmarkWriteHaxMap(b *testing.B) {
	ks := benchKeys(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		m := haxmap.New[int, int]()
		for _, k := range ks {
			m.Set(k, k)
		}
	}
}

func BenchmarkWriteHashMap(b *testing.B) {
	ks := benchKeys(b)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		m := hashmap.New[int, int]()
		for _, k := range ks {
			m.Set(k, k)
		}
	}
}
