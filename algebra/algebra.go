package algebra

// MultiplyFunc multiplies two values of T. It must be associative;
// commutativity is not required.
type MultiplyFunc[T any] func(a, b T) T

// BinaryExponentiation raises element to power by repeated squaring:
// element^p = (element^(p/2))² for even p, times one extra element for
// odd p. The multiplication is supplied as a value, mirroring the
// combiner-as-value contract used across this module.
//
// power must be ≥ 1 — with no identity element assumed there is no
// representable element^0.
//
// Complexity: O(log power) applications of mul.
func BinaryExponentiation[T any](element T, power uint64, mul MultiplyFunc[T]) (T, error) {
	var zero T
	if mul == nil {
		return zero, ErrNilMultiply
	}
	if power == 0 {
		return zero, ErrZeroPower
	}

	// Iterative square-and-multiply, consuming power bit by bit from the
	// low end. acc starts unset (accSet=false) instead of at an identity.
	var acc T
	accSet := false
	base := element
	for power > 0 {
		if power&1 == 1 {
			if accSet {
				acc = mul(acc, base)
			} else {
				acc = base
				accSet = true
			}
		}
		power >>= 1
		if power > 0 {
			base = mul(base, base)
		}
	}

	return acc, nil
}

// ExtendedGCD returns g = gcd(a, b) and Bézout coefficients x, y with
// a*x + b*y = g. The gcd is non-negative; gcd(0, 0) is 0 with zero
// coefficients.
//
// Complexity: O(log min(|a|, |b|)).
func ExtendedGCD(a, b int64) (g, x, y int64) {
	if b == 0 {
		switch {
		case a > 0:
			return a, 1, 0
		case a < 0:
			return -a, -1, 0
		default:
			return 0, 0, 0
		}
	}

	g, x1, y1 := ExtendedGCD(b, a%b)

	// g = b*x1 + (a%b)*y1 and a%b = a - (a/b)*b, so regroup on a and b.
	return g, y1, x1 - (a/b)*y1
}
