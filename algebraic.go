package softfloat

import "math/big"

// one returns the bit pattern of +1.0 in fmt.
func one(fmt *FloatProperties) *big.Int {
	return Pack(false, fmt.Bias(), big.NewInt(0), fmt)
}

// Sqrt returns the correctly-rounded square root of a (spec.md §4.4).
// Every negative operand other than -0 is invalid. +0 square-roots to +0;
// -0 yields -0 when fmt.Platform.SqrtNegativeZeroIsNegative is set and +0
// otherwise.
func Sqrt(a *big.Int, fmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	class := Classify(a, fmt)

	if class.IsNaN() {
		result, invalid := propagateNaN1(a, fmt)
		var flags StatusFlags
		if invalid {
			flags = flags.With(InvalidOperation)
		}
		return result, state.WithFlags(flags)
	}
	if class.IsZero() {
		sign := class.IsNegative() && fmt.Platform.SqrtNegativeZeroIsNegative
		return Pack(sign, 0, big.NewInt(0), fmt), state
	}
	if class.IsNegative() {
		return CanonicalNaN(fmt), state.WithFlags(StatusFlags(0).With(InvalidOperation))
	}
	if class.IsInfinity() {
		return a, state
	}

	_, v, _ := unpackExact(a, fmt)
	sig, exponent := sqrtSignificand(v.sig, v.lsbExp, fmt)
	return RoundPack(false, exponent, sig, fmt, state, tininess)
}

// sqrtSignificand computes the correctly-roundable significand of
// sqrt(sig*2^lsbExp) as an integer occupying fmt.precision()+2 bits, its
// low bit folded with the integer square root's remainder so it serves
// as RoundPack's sticky bit, mirroring divSignificand's shift-and-adjust
// structure (spec.md §4.4 "implementations may use any algorithm that is
// equivalent to computing the infinitely precise result and rounding
// once").
func sqrtSignificand(sig *big.Int, lsbExp int64, fmt *FloatProperties) (*big.Int, int64) {
	P := int(fmt.precision())

	s := new(big.Int).Set(sig)
	e0 := lsbExp
	if e0%2 != 0 {
		s.Lsh(s, 1)
		e0--
	}
	half := e0 / 2

	m := P + 2 - s.BitLen()/2
	if m < 0 {
		m = 0
	}
	scaled := new(big.Int).Lsh(s, uint(2*m))
	q := new(big.Int).Sqrt(scaled)
	rem := new(big.Int).Sub(scaled, new(big.Int).Mul(q, q))
	sticky := rem.Sign() != 0

	if diff := q.BitLen() - (P + 2); diff > 0 {
		shifted, lost := stickyRightShift(q, uint(diff))
		q = shifted
		sticky = sticky || lost
		m -= diff
	} else if diff < 0 {
		q = new(big.Int).Lsh(q, uint(-diff))
		m += -diff
	}
	if sticky {
		q.SetBit(q, 0, 1)
	}
	return q, half - int64(m) + int64(P) + 1
}

// Reciprocal returns the correctly-rounded 1/a (spec.md §4.4, derived
// directly from Div so it shares Div's single rounding and exception
// behaviour rather than re-deriving them).
func Reciprocal(a *big.Int, fmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	return Div(one(fmt), a, fmt, state, tininess)
}

// RSqrt returns 1/sqrt(a). Unlike Sqrt and Div, this kernel does not give
// RSqrt its own fused rounding step: it composes Sqrt then Div, each
// independently correctly rounded, so the final result carries two
// roundings rather than one. A fused single-rounding RSqrt would need its
// own significand routine symmetric to sqrtSignificand; the composed form
// is what this kernel implements (documented as an accepted Open Question
// resolution, not an oversight).
func RSqrt(a *big.Int, fmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	root, state := Sqrt(a, fmt, state, tininess)
	if IsNaN(root, fmt) {
		return root, state
	}
	return Div(one(fmt), root, fmt, state, tininess)
}
