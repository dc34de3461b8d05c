package softfloat

// Predefined format descriptors for the binary interchange formats IEEE
// 754-2008 names. These are conveniences for callers and for this
// package's own tests; the bit-width-parameterised wrapper *types* (a
// "Half"/"Single" Go type with operator-like methods) are out of scope —
// spec.md §1 treats them as an external consumer of this kernel.
var (
	// Half is IEEE 754 binary16.
	Half = &FloatProperties{
		ExponentWidth:         5,
		MantissaWidth:         10,
		HasImplicitLeadingBit: true,
		HasSignBit:            true,
		Platform:              DefaultPlatformProperties(),
	}

	// Single is IEEE 754 binary32.
	Single = &FloatProperties{
		ExponentWidth:         8,
		MantissaWidth:         23,
		HasImplicitLeadingBit: true,
		HasSignBit:            true,
		Platform:              DefaultPlatformProperties(),
	}

	// Double is IEEE 754 binary64.
	Double = &FloatProperties{
		ExponentWidth:         11,
		MantissaWidth:         52,
		HasImplicitLeadingBit: true,
		HasSignBit:            true,
		Platform:              DefaultPlatformProperties(),
	}

	// Quad is IEEE 754 binary128.
	Quad = &FloatProperties{
		ExponentWidth:         15,
		MantissaWidth:         112,
		HasImplicitLeadingBit: true,
		HasSignBit:            true,
		Platform:              DefaultPlatformProperties(),
	}

	// BFloat16 is the truncated-mantissa format used by several ML
	// accelerators: Single's exponent range with Half's total width.
	BFloat16 = &FloatProperties{
		ExponentWidth:         8,
		MantissaWidth:         7,
		HasImplicitLeadingBit: true,
		HasSignBit:            true,
		Platform:              DefaultPlatformProperties(),
	}
)
