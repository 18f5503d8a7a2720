package segtree

// SegmentTree — point-update / range-query over an associative combiner.
//
// Description:
//
//	A segment tree augments a fixed array of n elements with an implicit
//	binary tree of aggregates, so that any half-open range [l, r) can be
//	folded under the combiner in O(log n), and any single element can be
//	replaced in O(log n) while keeping every aggregate consistent.
//
// Algorithm Outline:
//  1. New allocates nodes of length 4n and builds bottom-up recursively:
//     a node covering one element stores that element; a node covering
//     [lo, hi) stores combine(left child over [lo, mid), right child
//     over [mid, hi)), mid = lo + (hi-lo)/2.
//  2. Update descends from the root to the leaf at position, rewrites
//     the leaf, then recomputes each ancestor from its two children on
//     the way back up — one combine per level.
//  3. Query descends from the root; at each node it either takes the
//     whole aggregate (node range inside [l, r)), skips (disjoint), or
//     recurses into both children and combines the partial results in
//     left-to-right order.
//
// No identity element is assumed: an empty query range yields an
// explicit "no value" result instead of a synthesized neutral value,
// and partially covered nodes never contribute a default-constructed T.
//
// Complexity:
//
//	New    — O(n) time, O(n) memory
//	Update — O(log n) time
//	Query  — O(log n) time (at most two partial-coverage paths per level)
//
// Errors:
//   - ErrEmptyElements    — New with an empty slice.
//   - ErrNilCombine       — New with a nil combiner.
//   - ErrIndexOutOfRange  — Update/Get/Query bounds violation.

// New builds a SegmentTree over a copy of elements using combine as the
// aggregation. The input slice is not retained; later mutations of it
// do not affect the tree.
//
// Example:
//
//	st, err := segtree.New([]int{1, 2, 3, 4, 5}, func(a, b int) int { return a + b })
//	total, ok, err := st.Query(0, st.Size()) // 15, true, nil
func New[T any](elements []T, combine CombineFunc[T]) (*SegmentTree[T], error) {
	if len(elements) == 0 {
		return nil, ErrEmptyElements
	}
	if combine == nil {
		return nil, ErrNilCombine
	}

	st := &SegmentTree[T]{
		nodes:   make([]T, 4*len(elements)),
		n:       len(elements),
		combine: combine,
	}
	st.build(elements, 1, 0, st.n)

	return st, nil
}

// build fills node v covering [lo, hi) from elements, recursing into
// children 2v and 2v+1. hi-lo ≥ 1 always holds here.
func (st *SegmentTree[T]) build(elements []T, v, lo, hi int) {
	if hi-lo == 1 {
		st.nodes[v] = elements[lo]

		return
	}

	mid := lo + (hi-lo)/2
	st.build(elements, 2*v, lo, mid)
	st.build(elements, 2*v+1, mid, hi)
	st.nodes[v] = st.combine(st.nodes[2*v], st.nodes[2*v+1])
}

// Update sets the element at position to value and restores the
// aggregate of every ancestor up to the root.
// Returns ErrIndexOutOfRange if position is outside [0, n); the tree is
// left untouched in that case.
func (st *SegmentTree[T]) Update(position int, value T) error {
	if position < 0 || position >= st.n {
		return ErrIndexOutOfRange
	}
	st.set(1, 0, st.n, position, value)

	return nil
}

// set descends from node v covering [lo, hi) to the leaf at position,
// then recomputes each node from its children while unwinding.
func (st *SegmentTree[T]) set(v, lo, hi, position int, value T) {
	if hi-lo == 1 {
		st.nodes[v] = value

		return
	}

	mid := lo + (hi-lo)/2
	if position < mid {
		st.set(2*v, lo, mid, position, value)
	} else {
		st.set(2*v+1, mid, hi, position, value)
	}
	st.nodes[v] = st.combine(st.nodes[2*v], st.nodes[2*v+1])
}

// Query folds the combiner over the half-open range [left, right) in
// original element order and reports the result.
//
// ok is false — with a zero T and a nil error — when left == right:
// there is nothing to fold and no identity element exists to stand in,
// so the empty range is reported explicitly rather than synthesized.
// The combiner is never invoked for an empty range.
//
// Returns ErrIndexOutOfRange when left > right, left < 0 or right > n.
func (st *SegmentTree[T]) Query(left, right int) (result T, ok bool, err error) {
	if left < 0 || right > st.n || left > right {
		return result, false, ErrIndexOutOfRange
	}
	if left == right {
		return result, false, nil
	}

	result, ok = st.get(1, 0, st.n, left, right)

	return result, ok, nil
}

// get returns the fold of leaves in the intersection of node v's range
// [lo, hi) with the query range [left, right), and whether that
// intersection is non-empty. Partial results from the two children are
// combined left child first, preserving element order.
func (st *SegmentTree[T]) get(v, lo, hi, left, right int) (T, bool) {
	if left <= lo && hi <= right {
		// [lo, hi) lies entirely inside the query range.
		return st.nodes[v], true
	}
	if hi <= left || right <= lo {
		// Disjoint.
		var zero T

		return zero, false
	}

	mid := lo + (hi-lo)/2
	lVal, lOK := st.get(2*v, lo, mid, left, right)
	rVal, rOK := st.get(2*v+1, mid, hi, left, right)
	switch {
	case lOK && rOK:
		return st.combine(lVal, rVal), true
	case lOK:
		return lVal, true
	default:
		return rVal, rOK
	}
}

// Get returns the element currently stored at position; shorthand for a
// single-leaf Query. Returns ErrIndexOutOfRange if position is outside
// [0, n).
func (st *SegmentTree[T]) Get(position int) (T, error) {
	var zero T
	if position < 0 || position >= st.n {
		return zero, ErrIndexOutOfRange
	}
	value, _ := st.get(1, 0, st.n, position, position+1)

	return value, nil
}
