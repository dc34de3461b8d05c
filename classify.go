package softfloat

import "math/big"

// Unpack splits a packed bit pattern into its sign, biased exponent, and
// mantissa field, per the fmt descriptor (spec.md §4.1). bits is not
// mutated and is assumed already masked to fmt.TotalWidth() bits; unpack
// masks defensively regardless.
func Unpack(bits *big.Int, fmt *FloatProperties) (sign bool, biasedExponent int64, mantissa *big.Int) {
	fmt.validate()
	mant := new(big.Int).And(bits, fmt.MantissaMask())
	exp := new(big.Int).And(new(big.Int).Rsh(bits, fmt.MantissaWidth), lowMask(fmt.ExponentWidth))
	sign = fmt.HasSignBit && bits.Bit(int(fmt.ExponentWidth+fmt.MantissaWidth)) == 1
	return sign, exp.Int64(), mant
}

// Pack assembles a bit pattern from its sign, biased exponent and mantissa
// field. Each field is masked to its width; Pack and Unpack are mutual
// inverses for in-range fields (spec.md §4.1).
func Pack(sign bool, biasedExponent int64, mantissa *big.Int, fmt *FloatProperties) *big.Int {
	fmt.validate()
	result := new(big.Int).And(mantissa, fmt.MantissaMask())
	expField := new(big.Int).And(big.NewInt(biasedExponent), lowMask(fmt.ExponentWidth))
	result.Or(result, new(big.Int).Lsh(expField, fmt.MantissaWidth))
	if sign && fmt.HasSignBit {
		result.SetBit(result, int(fmt.ExponentWidth+fmt.MantissaWidth), 1)
	}
	return result
}

// Classify returns the IEEE 754 classification of bits under fmt. This is
// a total function of bits and format (spec.md §8).
func Classify(bits *big.Int, fmt *FloatProperties) FloatClass {
	sign, exp, mant := Unpack(bits, fmt)
	isQuiet := isQuietMantissa(mant, fmt)

	switch {
	case exp == fmt.MaxBiasedExponent() && mant.Sign() == 0:
		if sign {
			return ClassNegativeInfinity
		}
		return ClassPositiveInfinity
	case exp == fmt.MaxBiasedExponent():
		if isQuiet {
			return ClassQuietNaN
		}
		return ClassSignalingNaN
	case exp == 0 && mant.Sign() == 0:
		if sign {
			return ClassNegativeZero
		}
		return ClassPositiveZero
	case exp == 0:
		if sign {
			return ClassNegativeSubnormal
		}
		return ClassPositiveSubnormal
	default:
		if sign {
			return ClassNegativeNormal
		}
		return ClassPositiveNormal
	}
}

// isQuietMantissa reports whether a NaN-range mantissa field encodes a
// quiet NaN under fmt.Platform's convention.
func isQuietMantissa(mant *big.Int, fmt *FloatProperties) bool {
	msbSet := mant.Bit(int(fmt.MantissaWidth)-1) == 1
	if fmt.Platform.QuietNaNConvention == QuietNaNMSBSet {
		return msbSet
	}
	return !msbSet
}

// IsNaN reports whether bits is a NaN (quiet or signaling) under fmt.
func IsNaN(bits *big.Int, fmt *FloatProperties) bool {
	c := Classify(bits, fmt)
	return c.IsNaN()
}

// IsSignalingNaN reports whether bits is specifically a signaling NaN.
func IsSignalingNaN(bits *big.Int, fmt *FloatProperties) bool {
	return Classify(bits, fmt) == ClassSignalingNaN
}

// IsZero reports whether bits represents +0 or -0.
func IsZero(bits *big.Int, fmt *FloatProperties) bool {
	return Classify(bits, fmt).IsZero()
}

// IsInf reports whether bits represents +∞ or -∞.
func IsInf(bits *big.Int, fmt *FloatProperties) bool {
	return Classify(bits, fmt).IsInfinity()
}

// IsSubnormal reports whether bits is a subnormal (denormal) value.
func IsSubnormal(bits *big.Int, fmt *FloatProperties) bool {
	c := Classify(bits, fmt)
	return c == ClassPositiveSubnormal || c == ClassNegativeSubnormal
}

// IsNormal reports whether bits is a normal (non-zero, non-subnormal,
// finite) value.
func IsNormal(bits *big.Int, fmt *FloatProperties) bool {
	c := Classify(bits, fmt)
	return c == ClassPositiveNormal || c == ClassNegativeNormal
}

// Signbit reports the sign bit of bits, independent of class (so it also
// distinguishes -0 from +0 and a negative NaN from a positive one).
func Signbit(bits *big.Int, fmt *FloatProperties) bool {
	sign, _, _ := Unpack(bits, fmt)
	return sign
}
