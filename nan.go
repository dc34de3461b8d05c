package softfloat

import "math/big"

// canonicalMantissa returns the mantissa field of the format's canonical
// quiet NaN: the quiet bit set per the platform's convention, all other
// mantissa bits clear (except where clearing it all would stop being a
// NaN, in which case a single low bit is set instead).
func canonicalMantissa(fmt *FloatProperties) *big.Int {
	if fmt.Platform.QuietNaNConvention == QuietNaNMSBSet {
		return powerOfTwo(fmt.MantissaWidth - 1)
	}
	return big.NewInt(1)
}

// CanonicalNaN returns the format's canonical quiet NaN bit pattern,
// positive-signed. Any NaN this kernel manufactures (rather than
// propagates from an operand) is exactly this value (spec.md §4.3).
func CanonicalNaN(fmt *FloatProperties) *big.Int {
	return Pack(false, fmt.MaxBiasedExponent(), canonicalMantissa(fmt), fmt)
}

// quietNaN returns bits with its quiet bit forced set per fmt's
// convention, preserving sign and the remaining payload. Used when
// propagating a signaling NaN operand: it must be quieted before being
// returned (spec.md §4.3).
func quietNaN(bits *big.Int, fmt *FloatProperties) *big.Int {
	sign, exp, mant := Unpack(bits, fmt)
	mant = new(big.Int).Set(mant)
	bitPos := int(fmt.MantissaWidth) - 1
	if fmt.Platform.QuietNaNConvention == QuietNaNMSBSet {
		mant.SetBit(mant, bitPos, 1)
	} else {
		mant.SetBit(mant, bitPos, 0)
		if mant.Sign() == 0 {
			mant.SetBit(mant, 0, 1)
		}
	}
	return Pack(sign, exp, mant, fmt)
}

// propagateNaN implements the NaN-operand propagation policy of spec.md
// §4.3/§9 for a 1-, 2- or 3-operand operation. operands holds the packed
// bits of each operand in argument order; classes holds their
// pre-computed classification. It must be called only when at least one
// operand is a NaN.
//
// It returns the propagated (already-quieted) NaN bits and whether
// INVALID_OPERATION must be raised: true whenever any operand is a
// signaling NaN, regardless of which NaN ends up propagated.
func propagateNaN(operands []*big.Int, classes []FloatClass, fmt *FloatProperties) (*big.Int, bool) {
	anySNaN := false
	for _, c := range classes {
		if c == ClassSignalingNaN {
			anySNaN = true
			break
		}
	}

	mode := fmt.Platform.NaNPropagation
	if mode == NaNAlwaysCanonical {
		return CanonicalNaN(fmt), anySNaN
	}

	order := mode.order()
	pick := func(wantSignaling bool) (int, bool) {
		for _, idx := range order {
			i := idx - 1
			if i < 0 || i >= len(classes) {
				continue
			}
			isNaN := classes[i].IsNaN()
			if !isNaN {
				continue
			}
			if wantSignaling && classes[i] != ClassSignalingNaN {
				continue
			}
			return i, true
		}
		return 0, false
	}

	var chosen int
	var found bool
	if mode.preferSNaN() {
		chosen, found = pick(true)
	}
	if !found {
		chosen, found = pick(false)
	}
	if !found {
		return CanonicalNaN(fmt), anySNaN
	}

	result := operands[chosen]
	if classes[chosen] == ClassSignalingNaN {
		result = quietNaN(result, fmt)
	}
	return result, anySNaN
}

// propagateNaN1 is propagateNaN specialised for a single operand: used by
// operations like float-to-float conversion that only ever see one NaN
// source.
func propagateNaN1(bits *big.Int, fmt *FloatProperties) (*big.Int, bool) {
	return propagateNaN([]*big.Int{bits}, []FloatClass{Classify(bits, fmt)}, fmt)
}
