package softfloat

import "math/big"

// Add returns a+b, correctly rounded under state.Rounding, using tininess
// to resolve any resulting underflow (spec.md §4.4).
func Add(a, b *big.Int, fmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	return addSub(a, b, false, fmt, state, tininess)
}

// Sub returns a-b, correctly rounded under state.Rounding (spec.md §4.4).
func Sub(a, b *big.Int, fmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	return addSub(a, b, true, fmt, state, tininess)
}

// addSub implements both Add and Sub: subtracting b is adding b with its
// sign flipped (§4.4's "Sub(a,b) = Add(a, negate(b))" rule), except that
// flipping the sign of a NaN operand must not happen (NaN propagation
// ignores sign), so the flip is applied only to the finite/infinite path.
func addSub(a, b *big.Int, negateB bool, fmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	classA := Classify(a, fmt)
	classB := Classify(b, fmt)

	if classA.IsNaN() || classB.IsNaN() {
		result, invalid := propagateNaN([]*big.Int{a, b}, []FloatClass{classA, classB}, fmt)
		var flags StatusFlags
		if invalid {
			flags = flags.With(InvalidOperation)
		}
		return result, state.WithFlags(flags)
	}

	signA := classA.IsNegative()
	signB := classB.IsNegative()
	if negateB {
		signB = !signB
	}

	if classA.IsInfinity() || classB.IsInfinity() {
		if classA.IsInfinity() && classB.IsInfinity() {
			if signA != signB {
				return CanonicalNaN(fmt), state.WithFlags(StatusFlags(0).With(InvalidOperation))
			}
			return Pack(signA, fmt.MaxBiasedExponent(), big.NewInt(0), fmt), state
		}
		if classA.IsInfinity() {
			return Pack(signA, fmt.MaxBiasedExponent(), big.NewInt(0), fmt), state
		}
		return Pack(signB, fmt.MaxBiasedExponent(), big.NewInt(0), fmt), state
	}

	if classA.IsZero() && classB.IsZero() {
		var sign bool
		if signA == signB {
			sign = signA
		} else {
			sign = exactCancellationSign(state.Rounding)
		}
		return Pack(sign, 0, big.NewInt(0), fmt), state
	}
	if classA.IsZero() {
		if negateB {
			return Negate(b, fmt), state
		}
		return b, state
	}
	if classB.IsZero() {
		return a, state
	}

	_, va, _ := unpackExact(a, fmt)
	_, vb, _ := unpackExact(b, fmt)
	aVal, bVal, lsbExp := alignToCommonLsb(va, vb)

	var resultSign bool
	var mag *big.Int
	if signA == signB {
		resultSign = signA
		mag = new(big.Int).Add(aVal, bVal)
	} else {
		switch aVal.Cmp(bVal) {
		case 0:
			return Pack(exactCancellationSign(state.Rounding), 0, big.NewInt(0), fmt), state
		case 1:
			resultSign = signA
			mag = new(big.Int).Sub(aVal, bVal)
		default:
			resultSign = signB
			mag = new(big.Int).Sub(bVal, aVal)
		}
	}

	sig, exponent := packExact(mag, lsbExp, fmt)
	return RoundPack(resultSign, exponent, sig, fmt, state, tininess)
}

// Mul returns a*b, correctly rounded (spec.md §4.4).
func Mul(a, b *big.Int, fmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	classA := Classify(a, fmt)
	classB := Classify(b, fmt)

	if classA.IsNaN() || classB.IsNaN() {
		result, invalid := propagateNaN([]*big.Int{a, b}, []FloatClass{classA, classB}, fmt)
		var flags StatusFlags
		if invalid {
			flags = flags.With(InvalidOperation)
		}
		return result, state.WithFlags(flags)
	}

	signA := classA.IsNegative()
	signB := classB.IsNegative()
	resultSign := signA != signB

	infA, infB := classA.IsInfinity(), classB.IsInfinity()
	zeroA, zeroB := classA.IsZero(), classB.IsZero()

	if (infA && zeroB) || (infB && zeroA) {
		return CanonicalNaN(fmt), state.WithFlags(StatusFlags(0).With(InvalidOperation))
	}
	if infA || infB {
		return Pack(resultSign, fmt.MaxBiasedExponent(), big.NewInt(0), fmt), state
	}
	if zeroA || zeroB {
		return Pack(resultSign, 0, big.NewInt(0), fmt), state
	}

	_, va, _ := unpackExact(a, fmt)
	_, vb, _ := unpackExact(b, fmt)
	mag := new(big.Int).Mul(va.sig, vb.sig)
	sig, exponent := packExact(mag, va.lsbExp+vb.lsbExp, fmt)
	return RoundPack(resultSign, exponent, sig, fmt, state, tininess)
}

// Div returns a/b, correctly rounded (spec.md §4.4).
func Div(a, b *big.Int, fmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	classA := Classify(a, fmt)
	classB := Classify(b, fmt)

	if classA.IsNaN() || classB.IsNaN() {
		result, invalid := propagateNaN([]*big.Int{a, b}, []FloatClass{classA, classB}, fmt)
		var flags StatusFlags
		if invalid {
			flags = flags.With(InvalidOperation)
		}
		return result, state.WithFlags(flags)
	}

	signA := classA.IsNegative()
	signB := classB.IsNegative()
	resultSign := signA != signB

	infA, infB := classA.IsInfinity(), classB.IsInfinity()
	zeroA, zeroB := classA.IsZero(), classB.IsZero()

	if infA && infB {
		return CanonicalNaN(fmt), state.WithFlags(StatusFlags(0).With(InvalidOperation))
	}
	if zeroA && zeroB {
		return CanonicalNaN(fmt), state.WithFlags(StatusFlags(0).With(InvalidOperation))
	}
	if infA {
		return Pack(resultSign, fmt.MaxBiasedExponent(), big.NewInt(0), fmt), state
	}
	if zeroB {
		return Pack(resultSign, fmt.MaxBiasedExponent(), big.NewInt(0), fmt), state.WithFlags(StatusFlags(0).With(DivisionByZero))
	}
	if infB {
		return Pack(resultSign, 0, big.NewInt(0), fmt), state
	}
	if zeroA {
		return Pack(resultSign, 0, big.NewInt(0), fmt), state
	}

	_, va, _ := unpackExact(a, fmt)
	_, vb, _ := unpackExact(b, fmt)
	sig, exponent := divSignificand(va.sig, va.lsbExp, vb.sig, vb.lsbExp, fmt)
	return RoundPack(resultSign, exponent, sig, fmt, state, tininess)
}

// divSignificand computes the correctly-roundable significand of
// (sigA*2^lsbA)/(sigB*2^lsbB): an integer quotient with exactly
// fmt.precision()+2 bits, its low bit folded with the division's
// remainder so it still serves as RoundPack's sticky bit (spec.md §4.4 —
// "compute the exact quotient via shift-and-compare, exactly as a
// restoring division algorithm would, and record whether any remainder
// was discarded").
func divSignificand(sigA *big.Int, lsbA int64, sigB *big.Int, lsbB int64, fmt *FloatProperties) (*big.Int, int64) {
	P := int(fmt.precision())
	k := (P + 2) - (sigA.BitLen() - sigB.BitLen())
	if k < 0 {
		k = 0
	}
	numShifted := new(big.Int).Lsh(sigA, uint(k))
	q, rem := new(big.Int), new(big.Int)
	q.QuoRem(numShifted, sigB, rem)
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
	return q, lsbA - lsbB - int64(k) + int64(P) + 1
}

// FMA returns a*b+c with a single rounding (spec.md §4.4): the product
// a*b is formed exactly and added to c's exact value before RoundPack is
// ever consulted, so no double-rounding can occur.
func FMA(a, b, c *big.Int, fmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	classA := Classify(a, fmt)
	classB := Classify(b, fmt)
	classC := Classify(c, fmt)

	if classA.IsNaN() || classB.IsNaN() || classC.IsNaN() {
		result, invalid := propagateNaN([]*big.Int{a, b, c}, []FloatClass{classA, classB, classC}, fmt)
		// A 0×∞ product with a NaN c is invalid under either
		// FMAInfZeroPolicy; FMAInfZeroAlwaysInvalid also returns the
		// canonical NaN instead of the propagated one.
		if (classA.IsInfinity() && classB.IsZero()) || (classA.IsZero() && classB.IsInfinity()) {
			invalid = true
			if fmt.Platform.FMAInfZeroPolicy == FMAInfZeroAlwaysInvalid {
				result = CanonicalNaN(fmt)
			}
		}
		var flags StatusFlags
		if invalid {
			flags = flags.With(InvalidOperation)
		}
		return result, state.WithFlags(flags)
	}

	signA, signB := classA.IsNegative(), classB.IsNegative()
	prodSign := signA != signB
	infA, infB := classA.IsInfinity(), classB.IsInfinity()
	zeroA, zeroB := classA.IsZero(), classB.IsZero()

	prodIsInf := (infA && !zeroB) || (infB && !zeroA)
	prodIsInvalid := (infA && zeroB) || (infB && zeroA)
	if prodIsInvalid {
		if fmt.Platform.FMAInfZeroPolicy == FMAInfZeroInvalidIfCIsNaN {
			if !classC.IsNaN() {
				prodIsInvalid = false
			}
		}
	}
	if prodIsInvalid {
		return CanonicalNaN(fmt), state.WithFlags(StatusFlags(0).With(InvalidOperation))
	}

	if classC.IsInfinity() {
		if prodIsInf && prodSign != classC.IsNegative() {
			return CanonicalNaN(fmt), state.WithFlags(StatusFlags(0).With(InvalidOperation))
		}
		return Pack(classC.IsNegative(), fmt.MaxBiasedExponent(), big.NewInt(0), fmt), state
	}
	if prodIsInf {
		return Pack(prodSign, fmt.MaxBiasedExponent(), big.NewInt(0), fmt), state
	}

	if (zeroA || zeroB) && classC.IsZero() {
		signC := classC.IsNegative()
		var sign bool
		if prodSign == signC {
			sign = prodSign
		} else {
			sign = exactCancellationSign(state.Rounding)
		}
		return Pack(sign, 0, big.NewInt(0), fmt), state
	}
	if zeroA || zeroB {
		return c, state
	}

	_, va, _ := unpackExact(a, fmt)
	_, vb, _ := unpackExact(b, fmt)
	prodMag := new(big.Int).Mul(va.sig, vb.sig)
	prodLsb := va.lsbExp + vb.lsbExp

	_, vc, cIsZero := unpackExact(c, fmt)
	if cIsZero {
		sig, exponent := packExact(prodMag, prodLsb, fmt)
		return RoundPack(prodSign, exponent, sig, fmt, state, tininess)
	}
	signC := classC.IsNegative()

	prodVal := exactValue{sig: prodMag, lsbExp: prodLsb}
	aVal, bVal, lsbExp := alignToCommonLsb(prodVal, vc)

	var resultSign bool
	var mag *big.Int
	if prodSign == signC {
		resultSign = prodSign
		mag = new(big.Int).Add(aVal, bVal)
	} else {
		switch aVal.Cmp(bVal) {
		case 0:
			return Pack(exactCancellationSign(state.Rounding), 0, big.NewInt(0), fmt), state
		case 1:
			resultSign = prodSign
			mag = new(big.Int).Sub(aVal, bVal)
		default:
			resultSign = signC
			mag = new(big.Int).Sub(bVal, aVal)
		}
	}

	sig, exponent := packExact(mag, lsbExp, fmt)
	return RoundPack(resultSign, exponent, sig, fmt, state, tininess)
}
