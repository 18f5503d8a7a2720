package segtree

import "errors"

// Sentinel errors for segtree operations. All public operations return
// these sentinels directly; match with errors.Is. No user-triggered
// condition panics, and a rejected call leaves the tree unchanged.
var (
	// ErrEmptyElements indicates New was called with zero elements;
	// there is no meaningful empty tree (range queries presuppose at
	// least one leaf).
	ErrEmptyElements = errors.New("segtree: elements must be non-empty")
	// ErrNilCombine indicates New was called with a nil combiner.
	ErrNilCombine = errors.New("segtree: combine function must be non-nil")
	// ErrIndexOutOfRange indicates an Update/Get position outside [0,n)
	// or Query bounds violating 0 ≤ left ≤ right ≤ n.
	ErrIndexOutOfRange = errors.New("segtree: index out of range")
)
