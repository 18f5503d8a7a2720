// Package algebra provides number-theoretic primitives: exponentiation
// by squaring over an arbitrary multiplication, and the extended
// Euclidean algorithm.
//
// What:
//
//   - BinaryExponentiation(element, power, mul) — raises element to a
//     positive integer power using O(log power) applications of a
//     caller-supplied associative multiplication.
//   - ExtendedGCD(a, b) — greatest common divisor of a and b together
//     with Bézout coefficients x, y satisfying a*x + b*y = gcd.
//
// Why:
//
//   - Modular exponentiation (mul reduces mod m) for cryptographic and
//     hashing arithmetic.
//   - Matrix powers for linear recurrences (mul is matrix product).
//   - Modular inverses via Bézout coefficients when gcd(a, m) = 1.
//
// No multiplicative identity is assumed: power must be ≥ 1, so the
// result is always a product of concrete elements.
//
// Errors:
//
//   - ErrZeroPower: BinaryExponentiation with power 0.
//   - ErrNilMultiply: BinaryExponentiation with a nil multiplication.
package algebra
