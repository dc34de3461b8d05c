package softfloat

import "math/big"

// Arbitrary-precision integer helpers. The kernel performs all exact
// arithmetic with math/big rather than fixed-width machine integers
// (spec.md §9); these are the handful of primitives every higher-level
// operation is built from.

// stickyRightShift shifts x right by n bits (n >= 0) and reports whether
// any of the discarded bits were set — the "sticky right shift" primitive
// spec.md §9 calls for. x is not mutated.
func stickyRightShift(x *big.Int, n uint) (shifted *big.Int, sticky bool) {
	if n == 0 {
		return new(big.Int).Set(x), false
	}
	shifted = new(big.Int).Rsh(x, n)
	// Sticky iff any of the low n bits of x are set.
	discardMask := lowMask(n)
	remainder := new(big.Int).And(x, discardMask)
	return shifted, remainder.Sign() != 0
}

// trailingZeros returns the number of trailing zero bits of x, or 0 if
// x == 0.
func trailingZeros(x *big.Int) int {
	return int(x.TrailingZeroBits())
}

// ceilLog2 returns the smallest n such that x <= 2^n, for x > 0.
func ceilLog2(x *big.Int) int {
	bl := x.BitLen()
	// x is an exact power of two iff it has a single set bit.
	if new(big.Int).And(x, new(big.Int).Sub(x, big.NewInt(1))).Sign() == 0 {
		return bl - 1
	}
	return bl
}

// powerOfTwo returns 2^n as a *big.Int, for n >= 0.
func powerOfTwo(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

// bitLen returns x.BitLen(), the number of bits needed to represent |x|.
func bitLen(x *big.Int) uint {
	return uint(x.BitLen())
}
