// Package segtree implements a generic segment tree: a fixed array of
// elements indexed by an implicit binary tree of aggregates, giving
// O(log n) point updates and O(log n) range folds under any associative
// combining function.
//
// What:
//
//   - SegmentTree[T] wraps a sequence of n elements and a combiner
//     func(T, T) T captured at construction.
//   - Update(position, value) replaces one element and repairs every
//     ancestor aggregate on the leaf-to-root path.
//   - Query(left, right) folds the combiner over the half-open range
//     [left, right) in element order; Query(k, k) reports "no value"
//     explicitly instead of inventing a neutral element.
//   - Get(position) reads back a single element.
//
// Why:
//
//   - Running totals: sum over any sub-range of counters after point
//     writes (inventory, scores, traffic buckets).
//   - Sliding extremes: min/max over arbitrary windows without
//     rescanning.
//   - Ordered folds: non-commutative combiners (concatenation, matrix
//     product) work because evaluation order is preserved.
//
// Complexity:
//
//   - New:    O(n) time, O(n) memory (flat 4n node slice, no pointers).
//   - Update: O(log n) — one combine per tree level.
//   - Query:  O(log n) — at most two partial paths per level.
//
// Errors:
//
//   - ErrEmptyElements: New with an empty element slice.
//   - ErrNilCombine: New with a nil combiner.
//   - ErrIndexOutOfRange: position or query bounds outside the tree.
//
// The structure is single-threaded; see SegmentTree docs for the
// external-synchronization contract. Range assignment (lazy
// propagation) and resizing after construction are not provided.
package segtree
