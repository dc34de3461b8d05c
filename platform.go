package softfloat

// QuietNaNConvention selects which mantissa-MSB convention a platform uses
// to distinguish quiet from signaling NaNs.
type QuietNaNConvention int

const (
	// QuietNaNMSBSet is the convention used by x86, ARM and most modern
	// hardware: mantissa MSB set means quiet.
	QuietNaNMSBSet QuietNaNConvention = iota
	// QuietNaNMSBClear is the legacy MIPS/PA-RISC convention: mantissa MSB
	// set means signaling.
	QuietNaNMSBClear
)

// FMAInfZeroPolicy selects how fma(0, ∞, c) / fma(∞, 0, c) is handled.
type FMAInfZeroPolicy int

const (
	// FMAInfZeroAlwaysInvalid always raises INVALID_OPERATION and returns
	// canonical NaN for a 0×∞ product term, regardless of c.
	FMAInfZeroAlwaysInvalid FMAInfZeroPolicy = iota
	// FMAInfZeroInvalidIfCIsNaN only raises INVALID_OPERATION for the 0×∞
	// product term if c is itself a NaN, and then returns the NaN chosen by
	// the usual propagation order. With a non-NaN c the product term is
	// treated as a zero product, so the result is c.
	FMAInfZeroInvalidIfCIsNaN
)

// IntegerConversionPolicy selects what an invalid float-to-integer
// conversion returns.
type IntegerConversionPolicy int

const (
	// IntegerConversionSaturate returns the saturated endpoint closest to
	// the (out-of-range or non-finite) source value.
	IntegerConversionSaturate IntegerConversionPolicy = iota
	// IntegerConversionNone returns a distinguished "no result" sentinel
	// (the minimum representable value of the target width) rather than a
	// saturated endpoint.
	IntegerConversionNone
)

// NaNPropagationMode selects which NaN operand a 2- or 3-operand operation
// propagates when more than one operand is NaN. Every ordering IEEE
// hardware is known to implement is enumerated as a closed set (spec.md
// §4.3, §9) so propagation stays a total function of inputs.
type NaNPropagationMode int

const (
	// NaNAlwaysCanonical ignores operand NaN payloads entirely and always
	// manufactures the format's canonical quiet NaN.
	NaNAlwaysCanonical NaNPropagationMode = iota

	// Two-operand orderings.
	NaNFirstSecond
	NaNSecondFirst
	NaNFirstSecondPreferringSNaN
	NaNSecondFirstPreferringSNaN

	// Three-operand orderings: all six total orderings of (first, second,
	// third), each with a PreferringSNaN variant.
	NaNFirstSecondThird
	NaNFirstThirdSecond
	NaNSecondFirstThird
	NaNSecondThirdFirst
	NaNThirdFirstSecond
	NaNThirdSecondFirst
	NaNFirstSecondThirdPreferringSNaN
	NaNFirstThirdSecondPreferringSNaN
	NaNSecondFirstThirdPreferringSNaN
	NaNSecondThirdFirstPreferringSNaN
	NaNThirdFirstSecondPreferringSNaN
	NaNThirdSecondFirstPreferringSNaN
)

// preferSNaN reports whether mode first scans for a signaling NaN before
// falling back to "any NaN".
func (m NaNPropagationMode) preferSNaN() bool {
	switch m {
	case NaNFirstSecondPreferringSNaN, NaNSecondFirstPreferringSNaN,
		NaNFirstSecondThirdPreferringSNaN, NaNFirstThirdSecondPreferringSNaN,
		NaNSecondFirstThirdPreferringSNaN, NaNSecondThirdFirstPreferringSNaN,
		NaNThirdFirstSecondPreferringSNaN, NaNThirdSecondFirstPreferringSNaN:
		return true
	}
	return false
}

// order returns the operand priority order (1-based operand indices) mode
// specifies. Only as many entries as the operation has operands are
// consulted.
func (m NaNPropagationMode) order() []int {
	switch m {
	case NaNFirstSecond, NaNFirstSecondPreferringSNaN:
		return []int{1, 2}
	case NaNSecondFirst, NaNSecondFirstPreferringSNaN:
		return []int{2, 1}
	case NaNFirstSecondThird, NaNFirstSecondThirdPreferringSNaN:
		return []int{1, 2, 3}
	case NaNFirstThirdSecond, NaNFirstThirdSecondPreferringSNaN:
		return []int{1, 3, 2}
	case NaNSecondFirstThird, NaNSecondFirstThirdPreferringSNaN:
		return []int{2, 1, 3}
	case NaNSecondThirdFirst, NaNSecondThirdFirstPreferringSNaN:
		return []int{2, 3, 1}
	case NaNThirdFirstSecond, NaNThirdFirstSecondPreferringSNaN:
		return []int{3, 1, 2}
	case NaNThirdSecondFirst, NaNThirdSecondFirstPreferringSNaN:
		return []int{3, 2, 1}
	}
	return nil
}

// PlatformProperties enumerates the policy choices IEEE 754 leaves
// implementation-defined. It is a closed record, not an open-ended hook
// set, so behaviour remains a total function of inputs (spec.md §9).
type PlatformProperties struct {
	QuietNaNConvention      QuietNaNConvention
	NaNPropagation          NaNPropagationMode
	DefaultTininessMode     TininessDetectionMode
	FMAInfZeroPolicy        FMAInfZeroPolicy
	IntegerConversionPolicy IntegerConversionPolicy
	// SqrtNegativeZeroIsNegative selects sqrt(-0)'s sign: true yields -0
	// (the common hardware behaviour), false yields +0.
	SqrtNegativeZeroIsNegative bool
}

// DefaultPlatformProperties returns the conventional IEEE 754 / x86-like
// platform: MSB-set quiet NaNs, FirstSecond(Third) NaN propagation
// preferring signaling NaNs, tininess detected after rounding, fma(0,∞,c)
// always invalid, saturating integer conversions, and sqrt(-0) = -0.
func DefaultPlatformProperties() *PlatformProperties {
	return &PlatformProperties{
		QuietNaNConvention:         QuietNaNMSBSet,
		NaNPropagation:             NaNFirstSecondThirdPreferringSNaN,
		DefaultTininessMode:        AfterRounding,
		FMAInfZeroPolicy:           FMAInfZeroAlwaysInvalid,
		IntegerConversionPolicy:    IntegerConversionSaturate,
		SqrtNegativeZeroIsNegative: true,
	}
}
