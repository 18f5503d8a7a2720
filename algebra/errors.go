package algebra

import "errors"

// Sentinel errors for algebra operations; match with errors.Is.
var (
	// ErrZeroPower indicates BinaryExponentiation was asked for power 0,
	// which would require a multiplicative identity for the element type.
	ErrZeroPower = errors.New("algebra: power must be at least 1")
	// ErrNilMultiply indicates BinaryExponentiation was called with a
	// nil multiplication function.
	ErrNilMultiply = errors.New("algebra: multiply function must be non-nil")
)
