package softfloat

import "math/big"

// FloatToFloat converts bits from srcFmt to dstFmt, rounding under
// state.Rounding when dstFmt has less precision (spec.md §4.5). NaN
// payloads are not carried across formats: a propagated NaN is always
// re-manufactured as dstFmt's canonical NaN, since a source payload may
// not even fit dstFmt's mantissa width. InvalidOperation is still raised
// exactly when the source NaN was signaling.
func FloatToFloat(bits *big.Int, srcFmt, dstFmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	class := Classify(bits, srcFmt)
	sign := class.IsNegative()

	if class.IsNaN() {
		_, invalid := propagateNaN1(bits, srcFmt)
		var flags StatusFlags
		if invalid {
			flags = flags.With(InvalidOperation)
		}
		return CanonicalNaN(dstFmt), state.WithFlags(flags)
	}
	if class.IsInfinity() {
		return Pack(sign, dstFmt.MaxBiasedExponent(), big.NewInt(0), dstFmt), state
	}
	if class.IsZero() {
		return Pack(sign, 0, big.NewInt(0), dstFmt), state
	}

	_, v, _ := unpackExact(bits, srcFmt)
	sig, exponent := packExact(v.sig, v.lsbExp, dstFmt)
	return RoundPack(sign, exponent, sig, dstFmt, state, tininess)
}

// ScaleB returns a*2^n exactly, except where the result over- or
// underflows fmt's range (spec.md §4.5). It never rounds when the
// result is representable, since multiplying by a power of two only
// moves the exponent.
func ScaleB(a *big.Int, fmt *FloatProperties, n int64, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	class := Classify(a, fmt)
	if class.IsNaN() {
		result, invalid := propagateNaN1(a, fmt)
		var flags StatusFlags
		if invalid {
			flags = flags.With(InvalidOperation)
		}
		return result, state.WithFlags(flags)
	}
	if class.IsInfinity() || class.IsZero() {
		return a, state
	}

	sign, v, _ := unpackExact(a, fmt)
	sig, exponent := packExact(v.sig, v.lsbExp+n, fmt)
	return RoundPack(sign, exponent, sig, fmt, state, tininess)
}

// logBSentinel is returned by LogB for a zero input, which has no finite
// base-2 exponent; it stands in for the conventional -Inf. A NaN input
// also has none, but spec.md §4.5 leaves that case implementation-defined,
// and LogB returns 0 for it instead of this sentinel.
const logBSentinel = -(1 << 62)

// LogB returns the unbiased base-2 exponent of a's leading bit (spec.md
// §4.5): the same quantity ScaleB's n parameter consumes, so
// ScaleB(a, -LogB(a)) always lands in the canonical [1,2) range for a
// finite, non-zero a.
func LogB(a *big.Int, fmt *FloatProperties) (int64, StatusFlags) {
	class := Classify(a, fmt)
	if class.IsNaN() {
		return 0, StatusFlags(0).With(InvalidOperation)
	}
	if class.IsInfinity() {
		return 1<<62 - 1, StatusFlags(0)
	}
	if class.IsZero() {
		return logBSentinel, StatusFlags(0).With(DivisionByZero)
	}
	_, v, _ := unpackExact(a, fmt)
	return v.lsbExp + int64(v.sig.BitLen()) - 1, StatusFlags(0)
}

// FloatToInt converts a to a signed or unsigned bitWidth-bit integer,
// rounding under state.Rounding (spec.md §4.5). NaN, infinity, or an
// out-of-range finite value always raises INVALID_OPERATION and is
// handled per fmt.Platform.IntegerConversionPolicy: Saturate clamps to
// the nearest representable integer, None returns the distinguished
// "no result" sentinel (the target width's minimum representable value)
// instead.
func FloatToInt(a *big.Int, fmt *FloatProperties, bitWidth uint, signed bool, state FPState) (*big.Int, StatusFlags) {
	if bitWidth < 1 || bitWidth > maxIntegerConversionBits {
		panic(&KernelError{Op: "FloatToInt", Value: bitWidth, Msg: "integer width out of supported range", Code: ErrCodeUnsupportedWidth})
	}
	minVal, maxVal := integerRange(bitWidth, signed)
	saturate := fmt.Platform.IntegerConversionPolicy == IntegerConversionSaturate

	class := Classify(a, fmt)
	if class.IsNaN() {
		if saturate {
			return new(big.Int).Set(maxVal), StatusFlags(0).With(InvalidOperation)
		}
		return new(big.Int).Set(minVal), StatusFlags(0).With(InvalidOperation)
	}
	if class.IsZero() {
		return big.NewInt(0), StatusFlags(0)
	}

	sign := class.IsNegative()
	var intVal *big.Int
	var inexact bool
	if class.IsInfinity() {
		flags := StatusFlags(0).With(InvalidOperation)
		if !saturate || sign {
			return new(big.Int).Set(minVal), flags
		}
		return new(big.Int).Set(maxVal), flags
	}

	_, v, _ := unpackExact(a, fmt)
	if v.lsbExp >= 0 {
		intVal = new(big.Int).Lsh(v.sig, uint(v.lsbExp))
	} else {
		extended := new(big.Int).Lsh(v.sig, 2)
		shifted := shiftRightRoundSticky(extended, uint(-v.lsbExp))
		roundBit, stickyBit := shifted.Bit(1), shifted.Bit(0)
		intVal = new(big.Int).Rsh(shifted, 2)
		roundUp := false
		switch state.Rounding {
		case TiesToEven:
			roundUp = roundBit == 1 && (stickyBit == 1 || intVal.Bit(0) == 1)
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
			intVal.Add(intVal, bigOne)
		}
		inexact = roundBit == 1 || stickyBit == 1
	}
	if sign {
		intVal.Neg(intVal)
	}

	var flags StatusFlags
	if inexact {
		flags = flags.With(Inexact)
	}
	if intVal.Cmp(minVal) < 0 || intVal.Cmp(maxVal) > 0 {
		flags = flags.With(InvalidOperation)
		if !saturate {
			return new(big.Int).Set(minVal), flags
		}
		if intVal.Cmp(minVal) < 0 {
			return new(big.Int).Set(minVal), flags
		}
		return new(big.Int).Set(maxVal), flags
	}
	return intVal, flags
}

// IntToFloat converts an arbitrary-magnitude signed integer to fmt,
// rounding under state.Rounding (spec.md §4.5).
func IntToFloat(val *big.Int, fmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	if val.Sign() == 0 {
		return Pack(false, 0, big.NewInt(0), fmt), state
	}
	sign := val.Sign() < 0
	mag := new(big.Int).Abs(val)
	sig, exponent := packExact(mag, 0, fmt)
	return RoundPack(sign, exponent, sig, fmt, state, tininess)
}

// FromReal converts an exact rational value to fmt, correctly rounded
// (spec.md §4.5's "from-real-algebraic-number" entry point, restricted to
// rational inputs per spec.md §9: sqrt/rsqrt compute their own exact
// integer intermediates in algebraic.go rather than routing through here).
// r is never mutated.
func FromReal(r *big.Rat, fmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	if r.Sign() == 0 {
		return Pack(false, 0, big.NewInt(0), fmt), state
	}
	sign := r.Sign() < 0
	mag := new(big.Rat).Abs(r)
	sig, exponent := ratSignificand(mag, int(fmt.precision()))
	return RoundPack(sign, exponent, sig, fmt, state, tininess)
}

// ratSignificand computes the correctly-roundable significand of the
// positive rational r as an integer occupying P+2 bits (kept field plus
// round and sticky), mirroring divSignificand's shift-and-compare
// structure over r's numerator and denominator directly rather than over
// two already-unpacked operands.
func ratSignificand(r *big.Rat, P int) (*big.Int, int64) {
	num, den := r.Num(), r.Denom()
	k := (P + 2) - (num.BitLen() - den.BitLen())
	if k < 0 {
		k = 0
	}
	numShifted := new(big.Int).Lsh(num, uint(k))
	q, rem := new(big.Int), new(big.Int)
	q.QuoRem(numShifted, den, rem)
	sticky := rem.Sign() != 0

	if diff := q.BitLen() - (P + 2); diff > 0 {
		shifted, lost := stickyRightShift(q, uint(diff))
		q = shifted
		sticky = sticky || lost
		k -= diff
	} else if diff < 0 {
		q = new(big.Int).Lsh(q, uint(-diff))
		k += -diff
	}
	if sticky {
		q.SetBit(q, 0, 1)
	}
	return q, -int64(k) + int64(P) + 1
}

// maxIntegerConversionBits is the widest integer width FloatToInt/
// integerRange will construct. math/big has no inherent limit, but an
// unbounded bitWidth is almost always a caller mistake (e.g. passing a
// byte count instead of a bit count), so the kernel rejects it as a
// caller-contract violation (spec.md §7) rather than silently allocating
// an enormous big.Int.
const maxIntegerConversionBits = 1 << 16

func integerRange(bitWidth uint, signed bool) (*big.Int, *big.Int) {
	if !signed {
		return big.NewInt(0), new(big.Int).Sub(new(big.Int).Lsh(bigOne, bitWidth), bigOne)
	}
	maxVal := new(big.Int).Sub(new(big.Int).Lsh(bigOne, bitWidth-1), bigOne)
	minVal := new(big.Int).Neg(new(big.Int).Lsh(bigOne, bitWidth-1))
	return minVal, maxVal
}
