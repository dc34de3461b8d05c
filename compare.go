package softfloat

import "math/big"

// ComparisonResult is the outcome of comparing two floating-point values
// (spec.md §4.6). Unordered covers every comparison involving a NaN.
type ComparisonResult int

const (
	Less ComparisonResult = iota
	Equal
	Greater
	Unordered
)

func (r ComparisonResult) String() string {
	switch r {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Unordered:
		return "unordered"
	default:
		return "invalid"
	}
}

// compare is the total ordering of non-NaN values: same-signed values
// compare by their (biasedExponent, mantissa) pair, which for
// non-negative encodings is already monotonic in value, and both
// signed zeros compare equal.
func compare(a, b *big.Int, fmt *FloatProperties) ComparisonResult {
	classA := Classify(a, fmt)
	classB := Classify(b, fmt)
	if classA.IsZero() && classB.IsZero() {
		return Equal
	}
	signA := classA.IsNegative()
	signB := classB.IsNegative()
	if signA != signB {
		if signA {
			return Less
		}
		return Greater
	}

	_, expA, mantA := Unpack(a, fmt)
	_, expB, mantB := Unpack(b, fmt)
	var m int
	if expA != expB {
		if expA < expB {
			m = -1
		} else {
			m = 1
		}
	} else {
		m = mantA.Cmp(mantB)
	}
	if signA {
		m = -m
	}
	switch {
	case m < 0:
		return Less
	case m > 0:
		return Greater
	default:
		return Equal
	}
}

// CompareQuiet compares a and b without raising InvalidOperation for a
// quiet NaN operand, only for a signaling one (spec.md §4.6).
func CompareQuiet(a, b *big.Int, fmt *FloatProperties) (ComparisonResult, StatusFlags) {
	classA := Classify(a, fmt)
	classB := Classify(b, fmt)
	if classA.IsNaN() || classB.IsNaN() {
		var flags StatusFlags
		if classA == ClassSignalingNaN || classB == ClassSignalingNaN {
			flags = flags.With(InvalidOperation)
		}
		return Unordered, flags
	}
	return compare(a, b, fmt), StatusFlags(0)
}

// CompareSignaling compares a and b, raising InvalidOperation for any
// NaN operand, quiet or signaling (spec.md §4.6).
func CompareSignaling(a, b *big.Int, fmt *FloatProperties) (ComparisonResult, StatusFlags) {
	classA := Classify(a, fmt)
	classB := Classify(b, fmt)
	if classA.IsNaN() || classB.IsNaN() {
		return Unordered, StatusFlags(0).With(InvalidOperation)
	}
	return compare(a, b, fmt), StatusFlags(0)
}
