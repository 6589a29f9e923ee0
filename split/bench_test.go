package split_test

import (
	"testing"

	"github.com/ben-s-southworth/coarsen/csr"
	"github.com/ben-s-southworth/coarsen/split"
	"github.com/ben-s-southworth/coarsen/strength"
)

// benchStrength builds S and its transpose for the n-node 1-D Laplacian.
func benchStrength(b *testing.B, n int) (*csr.Matrix, *csr.Matrix) {
	b.Helper()
	ptr := make([]int, n+1)
	var ind []int
	var val []float64
	for i := 0; i < n; i++ {
		if i > 0 {
			ind = append(ind, i-1)
			val = append(val, -1)
		}
		ind = append(ind, i)
		val = append(val, 2)
		if i < n-1 {
			ind = append(ind, i+1)
			val = append(val, -1)
		}
		ptr[i+1] = len(ind)
	}
	a, err := csr.New(n, n, ptr, ind, val)
	if err != nil {
		b.Fatal(err)
	}
	s, err := strength.ClassicalMin(a, strength.Options{Theta: 0.25})
	if err != nil {
		b.Fatal(err)
	}
	st, err := s.Transpose()
	if err != nil {
		b.Fatal(err)
	}

	return s, st
}

func BenchmarkRS(b *testing.B) {
	s, st := benchStrength(b, 4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := split.RS(s, st); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCLJPNaive(b *testing.B) {
	s, st := benchStrength(b, 4096)
	opts := split.DefaultCLJPOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := split.CLJPNaive(s, st, opts); err != nil {
			b.Fatal(err)
		}
	}
}
