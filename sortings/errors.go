package sortings

import "errors"

// Sentinel errors for sorting operations; match with errors.Is.
var (
	// ErrNilCompare indicates a comparison sort was called with a nil
	// comparator.
	ErrNilCompare = errors.New("sortings: compare function must be non-nil")
	// ErrRangeTooWide indicates CountingSort refused to allocate a count
	// table for an excessive value spread.
	ErrRangeTooWide = errors.New("sortings: value range too wide for counting sort")
)
