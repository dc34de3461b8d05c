package softfloat

import "math/big"

// withSign returns mag (a raw exponent+mantissa bit field, sign bit
// clear) with its sign bit set according to sign. Used by the bit-level
// operations in this file, which manipulate encodings directly rather
// than going through Pack's separate-fields convention.
func withSign(sign bool, mag *big.Int, fmt *FloatProperties) *big.Int {
	result := new(big.Int).Set(mag)
	if sign && fmt.HasSignBit {
		result.SetBit(result, int(fmt.ExponentWidth+fmt.MantissaWidth), 1)
	}
	return result
}

func magnitudeField(bits *big.Int, fmt *FloatProperties) *big.Int {
	return new(big.Int).And(bits, lowMask(fmt.ExponentWidth+fmt.MantissaWidth))
}

// Negate flips the sign bit unconditionally, including on NaNs — this is
// a bit-level operation, not an arithmetic one, so it never raises a
// status flag (spec.md §4.6).
func Negate(bits *big.Int, fmt *FloatProperties) *big.Int {
	result := new(big.Int).Set(bits)
	if fmt.HasSignBit {
		pos := int(fmt.ExponentWidth + fmt.MantissaWidth)
		var bit uint
		if result.Bit(pos) == 0 {
			bit = 1
		}
		result.SetBit(result, pos, bit)
	}
	return result
}

// AbsBits clears the sign bit unconditionally (spec.md §4.6).
func AbsBits(bits *big.Int, fmt *FloatProperties) *big.Int {
	return withSign(false, magnitudeField(bits, fmt), fmt)
}

// CopySign returns a's magnitude with b's sign (spec.md §4.6).
func CopySign(a, b *big.Int, fmt *FloatProperties) *big.Int {
	return withSign(Signbit(b, fmt), magnitudeField(a, fmt), fmt)
}

// NextUp returns the least representable value strictly greater than a
// (spec.md §4.6). The sign-magnitude encoding is walked as a single
// ordered integer (magnitude field, negated for negative numbers), which
// carries -∞ to the most negative finite value and the largest finite
// value to +∞; zeros and +∞ are handled as explicit cases.
// A signaling NaN raises InvalidOperation and returns the canonical quiet
// NaN; a quiet NaN passes through unchanged.
func NextUp(a *big.Int, fmt *FloatProperties) (*big.Int, StatusFlags) {
	class := Classify(a, fmt)
	if class == ClassSignalingNaN {
		return CanonicalNaN(fmt), StatusFlags(0).With(InvalidOperation)
	}
	if class.IsNaN() {
		return a, StatusFlags(0)
	}
	if class == ClassPositiveInfinity {
		return a, StatusFlags(0)
	}
	if class.IsZero() {
		return withSign(false, bigOne, fmt), StatusFlags(0)
	}
	sign := Signbit(a, fmt)
	mag := magnitudeField(a, fmt)
	if sign {
		mag.Sub(mag, bigOne)
	} else {
		mag.Add(mag, bigOne)
	}
	return withSign(sign, mag, fmt), StatusFlags(0)
}

// NextDown returns the greatest representable value strictly less than a
// (spec.md §4.6): the mirror image of NextUp.
func NextDown(a *big.Int, fmt *FloatProperties) (*big.Int, StatusFlags) {
	if Classify(a, fmt) == ClassSignalingNaN {
		return CanonicalNaN(fmt), StatusFlags(0).With(InvalidOperation)
	}
	result, flags := NextUp(Negate(a, fmt), fmt)
	return Negate(result, fmt), flags
}

// RoundToIntegral rounds a to an integral value representable in the same
// format, under rnd. Inexact is raised for a non-integral input only when
// raiseInexact is true (spec.md §4.6's "roundToIntegralExact" distinction
// is carried by that parameter).
func RoundToIntegral(a *big.Int, fmt *FloatProperties, rnd RoundingMode, raiseInexact bool) (*big.Int, StatusFlags) {
	class := Classify(a, fmt)
	if class.IsNaN() {
		result, invalid := propagateNaN1(a, fmt)
		var flags StatusFlags
		if invalid {
			flags = flags.With(InvalidOperation)
		}
		return result, flags
	}
	if class.IsInfinity() || class.IsZero() {
		return a, StatusFlags(0)
	}

	sign, v, _ := unpackExact(a, fmt)
	if v.lsbExp >= 0 {
		return a, StatusFlags(0)
	}

	extended := new(big.Int).Lsh(v.sig, 2)
	shifted := shiftRightRoundSticky(extended, uint(-v.lsbExp))
	roundBit := shifted.Bit(1)
	stickyBit := shifted.Bit(0)
	intPart := new(big.Int).Rsh(shifted, 2)

	roundUp := false
	switch rnd {
	case TiesToEven:
		roundUp = roundBit == 1 && (stickyBit == 1 || intPart.Bit(0) == 1)
	case TiesToAway:
		roundUp = roundBit == 1
	case TowardZero:
		roundUp = false
	case TowardPositive:
		roundUp = !sign && (roundBit == 1 || stickyBit == 1)
	case TowardNegative:
		roundUp = sign && (roundBit == 1 || stickyBit == 1)
	}
	if roundUp {
		intPart.Add(intPart, bigOne)
	}

	var flags StatusFlags
	if raiseInexact && (roundBit == 1 || stickyBit == 1) {
		flags = flags.With(Inexact)
	}
	if intPart.Sign() == 0 {
		return Pack(sign, 0, big.NewInt(0), fmt), flags
	}
	sig, exponent := packExact(intPart, 0, fmt)
	result, packState := RoundPack(sign, exponent, sig, fmt, NewFPState(rnd), BeforeRounding)
	return result, flags.Union(packState.Flags)
}

// RoundToIntegralExact is RoundToIntegral with Inexact reporting enabled
// (spec.md §4.6).
func RoundToIntegralExact(a *big.Int, fmt *FloatProperties, rnd RoundingMode) (*big.Int, StatusFlags) {
	return RoundToIntegral(a, fmt, rnd, true)
}

// MinNum and MaxNum implement the NaN-ignoring IEEE 754-2008 minimum and
// maximum: if exactly one operand is NaN, the other is returned; a
// signaling NaN operand still raises InvalidOperation even though its
// value is discarded (spec.md §4.6).
func MinNum(a, b *big.Int, fmt *FloatProperties) (*big.Int, StatusFlags) {
	return minMaxNum(a, b, fmt, true)
}

func MaxNum(a, b *big.Int, fmt *FloatProperties) (*big.Int, StatusFlags) {
	return minMaxNum(a, b, fmt, false)
}

func minMaxNum(a, b *big.Int, fmt *FloatProperties, wantMin bool) (*big.Int, StatusFlags) {
	classA := Classify(a, fmt)
	classB := Classify(b, fmt)
	var flags StatusFlags
	if classA == ClassSignalingNaN || classB == ClassSignalingNaN {
		flags = flags.With(InvalidOperation)
	}
	if classA.IsNaN() && classB.IsNaN() {
		return CanonicalNaN(fmt), flags
	}
	if classA.IsNaN() {
		return b, flags
	}
	if classB.IsNaN() {
		return a, flags
	}
	if classA.IsZero() && classB.IsZero() {
		if wantMin == classA.IsNegative() {
			return a, flags
		}
		return b, flags
	}
	less := compare(a, b, fmt) == Less
	if less == wantMin {
		return a, flags
	}
	return b, flags
}

// Min and Max implement the NaN-propagating comparison introduced by
// IEEE 754-2019 (spec.md §4.6): any NaN operand propagates per the usual
// rule rather than being ignored.
func Min(a, b *big.Int, fmt *FloatProperties) (*big.Int, StatusFlags) {
	return minMax(a, b, fmt, true)
}

func Max(a, b *big.Int, fmt *FloatProperties) (*big.Int, StatusFlags) {
	return minMax(a, b, fmt, false)
}

func minMax(a, b *big.Int, fmt *FloatProperties, wantMin bool) (*big.Int, StatusFlags) {
	classA := Classify(a, fmt)
	classB := Classify(b, fmt)
	if classA.IsNaN() || classB.IsNaN() {
		result, invalid := propagateNaN([]*big.Int{a, b}, []FloatClass{classA, classB}, fmt)
		var flags StatusFlags
		if invalid {
			flags = flags.With(InvalidOperation)
		}
		return result, flags
	}
	if classA.IsZero() && classB.IsZero() {
		if wantMin == classA.IsNegative() {
			return a, StatusFlags(0)
		}
		return b, StatusFlags(0)
	}
	less := compare(a, b, fmt) == Less
	if less == wantMin {
		return a, StatusFlags(0)
	}
	return b, StatusFlags(0)
}
