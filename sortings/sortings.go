package sortings

// Comparison sorts.
//
// Each routine sorts v in place under a caller-supplied comparator:
// cmp(a, b) reports whether a may precede b in the final order. For an
// ascending int sort pass func(a, b int) bool { return a <= b }.
// A rejected call (nil comparator) leaves v untouched.

// CompareFunc reports whether a may precede b in sorted order.
type CompareFunc[T any] func(a, b T) bool

// BubbleSort sorts v in place by repeatedly sweeping adjacent pairs and
// swapping the ones out of order. Each sweep floats the largest
// remaining element to the end of the unsorted prefix.
//
// Complexity: O(n²) time, O(1) memory.
func BubbleSort[T any](v []T, cmp CompareFunc[T]) error {
	if cmp == nil {
		return ErrNilCompare
	}

	n := len(v)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if !cmp(v[j], v[j+1]) {
				v[j], v[j+1] = v[j+1], v[j]
			}
		}
	}

	return nil
}

// SelectionSort sorts v in place by repeatedly selecting the minimal
// element of the unsorted suffix and swapping it into position.
//
// Complexity: O(n²) comparisons, O(n) swaps, O(1) memory.
func SelectionSort[T any](v []T, cmp CompareFunc[T]) error {
	if cmp == nil {
		return ErrNilCompare
	}

	n := len(v)
	for i := 0; i < n-1; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if !cmp(v[best], v[j]) {
				best = j
			}
		}
		if best != i {
			v[i], v[best] = v[best], v[i]
		}
	}

	return nil
}

// InsertionSort sorts v in place by growing a sorted prefix: each
// element is shifted left past its larger predecessors. Stable —
// elements comparing equal keep their relative order.
//
// Complexity: O(n²) worst case, O(n) on already-sorted input, O(1) memory.
func InsertionSort[T any](v []T, cmp CompareFunc[T]) error {
	if cmp == nil {
		return ErrNilCompare
	}

	for i := 1; i < len(v); i++ {
		x := v[i]
		j := i - 1
		for j >= 0 && !cmp(v[j], x) {
			v[j+1] = v[j]
			j--
		}
		v[j+1] = x
	}

	return nil
}
