package sortings

// maxCountingSpread bounds the count-table size CountingSort will
// allocate: one int bucket per distinct value in [min, max].
const maxCountingSpread = 1 << 26

// CountingSort sorts v in place in ascending order by counting value
// occurrences, linear in the slice length plus the value spread.
// Returns ErrRangeTooWide — leaving v untouched — when the max-min
// spread reaches the table bound; such inputs belong with a comparison
// sort.
//
// Complexity: O(n + k) time, O(k) memory, k = max-min+1.
func CountingSort(v []int) error {
	if len(v) < 2 {
		return nil
	}

	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	// The spread is computed in unsigned arithmetic: hi-lo can exceed
	// MaxInt (e.g. hi=MaxInt, lo=MinInt) and would wrap as a signed int,
	// slipping past the guard with an undersized table.
	spread := uint(hi) - uint(lo)
	if spread >= maxCountingSpread {
		return ErrRangeTooWide
	}

	counts := make([]int, spread+1)
	for _, x := range v {
		counts[x-lo]++
	}

	i := 0
	for offset, c := range counts {
		for ; c > 0; c-- {
			v[i] = lo + offset
			i++
		}
	}

	return nil
}
