package softfloat

import "math/big"

// shiftRightRoundSticky shifts sig right by n bits, preserving the
// round/sticky convention RoundPack expects: bit 1 of the result is the
// single bit immediately below the kept field, and bit 0 is the sticky OR
// of every bit below that (including whatever sig's own bit 0 already
// aggregated). n may be zero.
func shiftRightRoundSticky(sig *big.Int, n uint) *big.Int {
	if n == 0 {
		return new(big.Int).Set(sig)
	}
	shifted, discarded := stickyRightShift(sig, n)
	sticky := discarded || shifted.Bit(0) == 1
	if sticky {
		shifted.SetBit(shifted, 0, 1)
	} else {
		shifted.SetBit(shifted, 0, 0)
	}
	return shifted
}

// RoundPack is the rounding engine (spec.md §4.2): given a sign, an
// unbounded exponent, and a pre-rounded significand, it produces the
// correctly rounded bounded result encoding plus updated status flags.
//
// sig encodes the pre-rounded magnitude as a fixed-point value: its low 2
// bits are a round bit (bit 1) and an already-OR-reduced sticky bit
// (bit 0); every bit above that is the kept significand, whose leading bit
// carries the binary weight 2^exponent once RoundPack has normalised it.
// A zero sig represents an exact zero result with the given sign — callers
// that must apply the exact-cancellation sign rule (spec.md §9) do so
// before calling RoundPack, by choosing sign accordingly.
//
// The engine never raises INVALID_OPERATION or DIVISION_BY_ZERO: those are
// raised by the caller before RoundPack is reached (spec.md §4.2).
func RoundPack(sign bool, exponent int64, sig *big.Int, fmt *FloatProperties, state FPState, tininess TininessDetectionMode) (*big.Int, FPState) {
	fmt.validate()
	P := fmt.precision()

	if sig.Sign() == 0 {
		return Pack(sign, 0, big.NewInt(0), fmt), state
	}

	// Step 1: normalise so the kept field occupies exactly P bits above
	// the round/sticky pair.
	keptBits := sig.BitLen() - 2
	switch {
	case keptBits > int(P):
		extra := uint(keptBits - int(P))
		sig = shiftRightRoundSticky(sig, extra)
		exponent += int64(extra)
	case keptBits < int(P):
		shortfall := uint(int(P) - keptBits)
		sig = new(big.Int).Lsh(sig, shortfall)
		exponent -= int64(shortfall)
	}

	bias := fmt.Bias()
	maxBiasedExp := fmt.MaxBiasedExponent()
	biasedExp := exponent + bias

	// Step 2: tininess before rounding is exactly "the pre-rounded
	// magnitude doesn't reach the minimum normal", i.e. biasedExp < 1.
	tinyBefore := biasedExp < 1

	// Step 3: shift into subnormal range if the biased exponent underflows.
	if biasedExp < 1 {
		shift := uint(1 - biasedExp)
		if shift > uint(P)+2 {
			shift = uint(P) + 2
		}
		sig = shiftRightRoundSticky(sig, shift)
		biasedExp = 0
	}

	roundBit := sig.Bit(1)
	stickyBit := sig.Bit(0)
	kept := new(big.Int).Rsh(sig, 2)

	// Step 4: apply the rounding rule.
	roundUp := false
	switch state.Rounding {
	case TiesToEven:
		roundUp = roundBit == 1 && (stickyBit == 1 || kept.Bit(0) == 1)
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
		kept.Add(kept, bigOne)
	}

	// Step 5: handle carry-out of the significand.
	if kept.Cmp(powerOfTwo(P)) >= 0 {
		kept.Rsh(kept, 1)
		biasedExp++
	}
	// A subnormal that rounds up to 2^(P-1) has become the smallest normal.
	if biasedExp == 0 && kept.Bit(int(P)-1) == 1 {
		biasedExp = 1
	}

	inexact := roundBit == 1 || stickyBit == 1

	// Step 6: overflow.
	if biasedExp >= maxBiasedExp {
		flags := StatusFlags(0).With(Overflow).With(Inexact)
		return overflowResult(sign, state.Rounding, fmt), state.WithFlags(flags)
	}

	// Step 7: underflow.
	var tiny bool
	if tininess == BeforeRounding {
		tiny = tinyBefore
	} else {
		tiny = biasedExp == 0
	}
	var flags StatusFlags
	if inexact {
		flags = flags.With(Inexact)
	}
	if tiny {
		if inexact {
			flags = flags.With(Underflow)
		} else if state.ExceptionHandling == SignalExactUnderflow {
			flags = flags.With(Underflow)
		}
	}

	mantField := kept
	if fmt.HasImplicitLeadingBit {
		mantField = new(big.Int).And(kept, fmt.MantissaMask())
	}

	return Pack(sign, biasedExp, mantField, fmt), state.WithFlags(flags)
}

var bigOne = big.NewInt(1)

// overflowResult produces the rounding-mode-and-sign-dependent result of
// an overflow: signed infinity, or the format's largest finite magnitude
// when the rounding direction rounds away from infinity (spec.md §4.2
// step 6).
func overflowResult(sign bool, rnd RoundingMode, fmt *FloatProperties) *big.Int {
	roundsToFinite := false
	switch rnd {
	case TowardZero:
		roundsToFinite = true
	case TowardPositive:
		roundsToFinite = sign
	case TowardNegative:
		roundsToFinite = !sign
	}
	if roundsToFinite {
		return Pack(sign, fmt.MaxBiasedExponent()-1, fmt.MantissaMask(), fmt)
	}
	if sign {
		return Pack(true, fmt.MaxBiasedExponent(), big.NewInt(0), fmt)
	}
	return Pack(false, fmt.MaxBiasedExponent(), big.NewInt(0), fmt)
}

// exactCancellationSign returns the sign IEEE 754 §6.3 assigns to a result
// that is exactly zero because of cancellation (e.g. a + (-a)): +0 under
// every rounding mode except TowardNegative, which yields -0 (spec.md §9 —
// this rule is encoded once here, and every op that can produce an exact
// cancellation zero calls it rather than re-deriving the rule).
func exactCancellationSign(rnd RoundingMode) bool {
	return rnd == TowardNegative
}
