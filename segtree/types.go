// Package segtree defines core types and sentinel errors
// for the segtree subpackage of github.com/katalvlaran/aads.
package segtree

// CombineFunc aggregates two adjacent sub-range results into one.
// It must be associative: combine(combine(a,b),c) == combine(a,combine(b,c)).
// Commutativity is NOT required — Query always folds left-to-right, so
// non-commutative operations (string concatenation, matrix product)
// behave correctly.
type CombineFunc[T any] func(a, b T) T

// SegmentTree indexes a fixed sequence of n elements with an implicit
// balanced binary tree, supporting point updates and half-open range
// aggregation in O(log n) under an arbitrary associative combiner.
//
// The tree is stored flat: nodes[1] is the root and node i owns
// children 2i and 2i+1 (nodes[0] is unused). Node shape is determined
// purely by n and never changes after New; only leaf values and the
// aggregates derived from them do.
//
// A SegmentTree is NOT safe for concurrent use: Update rewrites every
// ancestor of the touched leaf, so callers running updates and queries
// from multiple goroutines must serialize them externally.
type SegmentTree[T any] struct {
	// nodes holds every aggregate; length 4*n covers any n ≥ 1.
	nodes []T
	// n is the logical element count, fixed at construction.
	n int
	// combine is the combiner captured by New, applied on every
	// build/update/query for the lifetime of the tree.
	combine CombineFunc[T]
}

// Size returns the number of logical elements the tree indexes.
func (st *SegmentTree[T]) Size() int { return st.n }
