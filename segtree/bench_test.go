package segtree_test

import (
	"testing"

	"github.com/katalvlaran/aads/segtree"
)

// Benchmark constants.
const (
	benchSmall  = 1 << 10
	benchMedium = 1 << 14
	benchLarge  = 1 << 18
)

// newBenchTree builds a sum tree over n predictable ints, failing the
// benchmark on construction errors.
func newBenchTree(b *testing.B, n int) *segtree.SegmentTree[int] {
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	st, err := segtree.New(elems, func(a, x int) int { return a + x })
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	return st
}

// benchmarkQuery measures mid-size range folds on a tree of n elements.
func benchmarkQuery(b *testing.B, n int) {
	st := newBenchTree(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := st.Query(n/4, 3*n/4); err != nil {
			b.Fatalf("Query failed: %v", err)
		}
	}
}

// benchmarkUpdate measures rotating point writes on a tree of n elements.
func benchmarkUpdate(b *testing.B, n int) {
	st := newBenchTree(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := st.Update(i%n, i); err != nil {
			b.Fatalf("Update failed: %v", err)
		}
	}
}

// BenchmarkNew_Small measures building a 1k-element tree.
func BenchmarkNew_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		newBenchTree(b, benchSmall)
	}
}

// BenchmarkNew_Large measures building a 256k-element tree.
func BenchmarkNew_Large(b *testing.B) {
	for i := 0; i < b.N; i++ {
		newBenchTree(b, benchLarge)
	}
}

// BenchmarkQuery_Small benchmarks range folds over 1k elements.
func BenchmarkQuery_Small(b *testing.B) { benchmarkQuery(b, benchSmall) }

// BenchmarkQuery_Medium benchmarks range folds over 16k elements.
func BenchmarkQuery_Medium(b *testing.B) { benchmarkQuery(b, benchMedium) }

// BenchmarkQuery_Large benchmarks range folds over 256k elements.
func BenchmarkQuery_Large(b *testing.B) { benchmarkQuery(b, benchLarge) }

// BenchmarkUpdate_Small benchmarks point writes over 1k elements.
func BenchmarkUpdate_Small(b *testing.B) { benchmarkUpdate(b, benchSmall) }

// BenchmarkUpdate_Large benchmarks point writes over 256k elements.
func BenchmarkUpdate_Large(b *testing.B) { benchmarkUpdate(b, benchLarge) }
