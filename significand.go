package softfloat

import "math/big"

// exactValue is the exact (infinite-precision) magnitude of a finite,
// non-zero encoded operand: value = sig * 2^lsbExp. Every arithmetic op
// unpacks its finite operands into this form, operates on it with exact
// big.Int arithmetic, and hands the (sign, magnitude, lsbExp) result to
// RoundPack through packExact — the single rounding point.
type exactValue struct {
	sig    *big.Int
	lsbExp int64
}

// unpackExact decodes bits into an exact value. isZero is reported
// separately because zero has no meaningful lsbExp; callers must handle
// it before reaching general significand arithmetic (the sign-of-zero
// rules in spec.md §9 are op-specific, not something this helper can
// decide for them).
func unpackExact(bits *big.Int, fmt *FloatProperties) (sign bool, v exactValue, isZero bool) {
	sign, biasedExp, mant := Unpack(bits, fmt)
	if biasedExp == 0 && mant.Sign() == 0 {
		return sign, exactValue{}, true
	}
	if biasedExp == 0 {
		return sign, exactValue{sig: new(big.Int).Set(mant), lsbExp: 2 - fmt.Bias() - int64(fmt.precision())}, false
	}
	sig := new(big.Int).Set(mant)
	if fmt.HasImplicitLeadingBit {
		sig.SetBit(sig, int(fmt.MantissaWidth), 1)
	}
	return sign, exactValue{sig: sig, lsbExp: biasedExp - fmt.Bias() - int64(fmt.precision()) + 1}, false
}

// packExact converts an exact (sign, magnitude, lsbExp) triple — value =
// mag * 2^lsbExp — into the (sig, exponent) pair RoundPack expects. mag
// must be the exact, untruncated magnitude: packExact itself never
// discards precision, it only re-expresses it in RoundPack's convention.
func packExact(mag *big.Int, lsbExp int64, fmt *FloatProperties) (sig *big.Int, exponent int64) {
	return new(big.Int).Lsh(mag, 2), lsbExp + int64(fmt.precision()) - 1
}

// alignToCommonLsb re-expresses a and b at a common lsbExp (the smaller of
// the two), by exactly left-shifting whichever operand currently has the
// coarser (larger) lsbExp. A left shift only appends zero bits, so this
// never discards information — unlike a real hardware aligner, this
// kernel doesn't need to track round/sticky bits during alignment at all.
func alignToCommonLsb(a, b exactValue) (aVal, bVal *big.Int, lsbExp int64) {
	lsbExp = a.lsbExp
	if b.lsbExp < lsbExp {
		lsbExp = b.lsbExp
	}
	aVal = new(big.Int).Lsh(a.sig, uint(a.lsbExp-lsbExp))
	bVal = new(big.Int).Lsh(b.sig, uint(b.lsbExp-lsbExp))
	return aVal, bVal, lsbExp
}
