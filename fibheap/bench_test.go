package fibheap_test

import (
	"math/rand"
	"testing"

	"github.com/pathwalk/pathwalk/fibheap"
)

func BenchmarkInsertExtractMin(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	h := fibheap.New[int]()
	for i := 0; i < b.N; i++ {
		_, _ = h.Insert(rng.Float64()*float64(b.N), i)
	}
	b.ResetTimer()
	for !h.IsEmpty() {
		_, _ = h.ExtractMin()
	}
}

func BenchmarkDecreaseKey(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	h := fibheap.New[int]()
	handles := make([]*fibheap.Handle[int], b.N)
	for i := 0; i < b.N; i++ {
		hd, _ := h.Insert(rng.Float64()*float64(b.N)+float64(b.N), i)
		handles[i] = hd
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.DecreaseKey(handles[i], float64(i))
	}
}
