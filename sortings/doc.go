// Package sortings provides textbook comparison and counting sorts with
// the comparator supplied as a first-class function value.
//
// What:
//
//   - BubbleSort, SelectionSort, InsertionSort — in-place O(n²)
//     comparison sorts over any element type, ordered by a caller
//     comparator cmp(a, b) reporting whether a may precede b.
//   - CountingSort — O(n + k) distribution sort for int slices, where
//     k is the spread between the smallest and largest value.
//
// Why:
//
//   - Tiny or nearly-sorted inputs where an O(n²) pass beats the
//     constant factors of a general sort (InsertionSort is stable).
//   - Dense small-range integer keys where CountingSort is linear.
//   - Teaching and reference: each routine is the plain textbook
//     procedure, no hybrid cutoffs.
//
// Errors:
//
//   - ErrNilCompare: a comparison sort received a nil comparator.
//   - ErrRangeTooWide: CountingSort would need an oversized count table.
//
// Empty and single-element slices are valid inputs and no-ops.
package sortings
