package sortings_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aads/sortings"
)

// Benchmark constants.
const (
	benchLen    = 1 << 10
	benchSpread = 1 << 8
)

// benchInput returns a fresh slice of benchLen pseudo-random ints drawn
// from [0, benchSpread).
func benchInput(seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	v := make([]int, benchLen)
	for i := range v {
		v[i] = rng.Intn(benchSpread)
	}

	return v
}

// benchmarkComparisonSort re-sorts a fresh copy of the same input each
// iteration; copying is excluded via StopTimer/StartTimer.
func benchmarkComparisonSort(b *testing.B, sortFn func([]int, sortings.CompareFunc[int]) error) {
	src := benchInput(1)
	v := make([]int, len(src))

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(v, src)
		b.StartTimer()
		if err := sortFn(v, func(a, x int) bool { return a <= x }); err != nil {
			b.Fatalf("sort failed: %v", err)
		}
	}
}

// BenchmarkBubbleSort benchmarks BubbleSort on 1k random ints.
func BenchmarkBubbleSort(b *testing.B) { benchmarkComparisonSort(b, sortings.BubbleSort[int]) }

// BenchmarkSelectionSort benchmarks SelectionSort on 1k random ints.
func BenchmarkSelectionSort(b *testing.B) { benchmarkComparisonSort(b, sortings.SelectionSort[int]) }

// BenchmarkInsertionSort benchmarks InsertionSort on 1k random ints.
func BenchmarkInsertionSort(b *testing.B) { benchmarkComparisonSort(b, sortings.InsertionSort[int]) }

// BenchmarkCountingSort benchmarks CountingSort on 1k dense keys.
func BenchmarkCountingSort(b *testing.B) {
	src := benchInput(2)
	v := make([]int, len(src))

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(v, src)
		b.StartTimer()
		if err := sortings.CountingSort(v); err != nil {
			b.Fatalf("CountingSort failed: %v", err)
		}
	}
}
