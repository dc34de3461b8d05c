package softfloat

import "math/big"

// Value is a dynamic-format floating-point value: a bit pattern paired
// with the format that gives it meaning. It exists so callers that don't
// know their format at compile time (test-vector runners, format-
// agnostic tooling) can still call one set of methods instead of
// threading a *FloatProperties through every call (spec.md §4.7). The
// parameterised Unpack/Pack/Add/... functions remain the primitive API;
// Value is a convenience wrapper over them.
type Value struct {
	bits   *big.Int
	Format *FloatProperties
}

// NewValue wraps bits, masked to Format's width, as a Value.
func NewValue(bits *big.Int, format *FloatProperties) Value {
	format.validate()
	return Value{bits: new(big.Int).And(bits, lowMask(format.TotalWidth())), Format: format}
}

// Bits returns a copy of v's underlying bit pattern.
func (v Value) Bits() *big.Int {
	return new(big.Int).Set(v.bits)
}

func sameFormat(a, b *FloatProperties) bool {
	return a.ExponentWidth == b.ExponentWidth &&
		a.MantissaWidth == b.MantissaWidth &&
		a.HasImplicitLeadingBit == b.HasImplicitLeadingBit &&
		a.HasSignBit == b.HasSignBit
}

// requireSameFormat panics with a *KernelError when two operands of a
// binary or ternary Value operation don't share a format: mixed-format
// arithmetic is a caller-contract violation, not a runtime condition
// status flags can describe (spec.md §4.7).
func requireSameFormat(op string, a, b *FloatProperties) {
	if !sameFormat(a, b) {
		panic(&KernelError{Op: op, Msg: "operand formats do not match", Code: ErrCodeFormatMismatch})
	}
}

func (v Value) Classify() FloatClass { return Classify(v.bits, v.Format) }
func (v Value) IsNaN() bool          { return IsNaN(v.bits, v.Format) }
func (v Value) IsZero() bool         { return IsZero(v.bits, v.Format) }
func (v Value) IsInf() bool          { return IsInf(v.bits, v.Format) }
func (v Value) Signbit() bool        { return Signbit(v.bits, v.Format) }

func (v Value) Add(other Value) (Value, StatusFlags) {
	requireSameFormat("Add", v.Format, other.Format)
	cfg := GetConfig()
	bits, state := Add(v.bits, other.bits, v.Format, cfg.fpState(), cfg.Tininess)
	return Value{bits: bits, Format: v.Format}, state.Flags
}

func (v Value) Sub(other Value) (Value, StatusFlags) {
	requireSameFormat("Sub", v.Format, other.Format)
	cfg := GetConfig()
	bits, state := Sub(v.bits, other.bits, v.Format, cfg.fpState(), cfg.Tininess)
	return Value{bits: bits, Format: v.Format}, state.Flags
}

func (v Value) Mul(other Value) (Value, StatusFlags) {
	requireSameFormat("Mul", v.Format, other.Format)
	cfg := GetConfig()
	bits, state := Mul(v.bits, other.bits, v.Format, cfg.fpState(), cfg.Tininess)
	return Value{bits: bits, Format: v.Format}, state.Flags
}

func (v Value) Div(other Value) (Value, StatusFlags) {
	requireSameFormat("Div", v.Format, other.Format)
	cfg := GetConfig()
	bits, state := Div(v.bits, other.bits, v.Format, cfg.fpState(), cfg.Tininess)
	return Value{bits: bits, Format: v.Format}, state.Flags
}

func (v Value) FMA(b, c Value) (Value, StatusFlags) {
	requireSameFormat("FMA", v.Format, b.Format)
	requireSameFormat("FMA", v.Format, c.Format)
	cfg := GetConfig()
	bits, state := FMA(v.bits, b.bits, c.bits, v.Format, cfg.fpState(), cfg.Tininess)
	return Value{bits: bits, Format: v.Format}, state.Flags
}

func (v Value) Sqrt() (Value, StatusFlags) {
	cfg := GetConfig()
	bits, state := Sqrt(v.bits, v.Format, cfg.fpState(), cfg.Tininess)
	return Value{bits: bits, Format: v.Format}, state.Flags
}

func (v Value) RSqrt() (Value, StatusFlags) {
	cfg := GetConfig()
	bits, state := RSqrt(v.bits, v.Format, cfg.fpState(), cfg.Tininess)
	return Value{bits: bits, Format: v.Format}, state.Flags
}

func (v Value) Reciprocal() (Value, StatusFlags) {
	cfg := GetConfig()
	bits, state := Reciprocal(v.bits, v.Format, cfg.fpState(), cfg.Tininess)
	return Value{bits: bits, Format: v.Format}, state.Flags
}

func (v Value) Compare(other Value) (ComparisonResult, StatusFlags) {
	requireSameFormat("Compare", v.Format, other.Format)
	return CompareQuiet(v.bits, other.bits, v.Format)
}

func (v Value) Negate() Value {
	return Value{bits: Negate(v.bits, v.Format), Format: v.Format}
}

func (v Value) Abs() Value {
	return Value{bits: AbsBits(v.bits, v.Format), Format: v.Format}
}

// ConvertTo converts v to a Value in a different format (spec.md §4.7).
func (v Value) ConvertTo(dst *FloatProperties) (Value, StatusFlags) {
	cfg := GetConfig()
	bits, state := FloatToFloat(v.bits, v.Format, dst, cfg.fpState(), cfg.Tininess)
	return Value{bits: bits, Format: dst}, state.Flags
}

// ToInt converts v to a signed or unsigned bitWidth-bit integer under the
// package-wide default rounding mode (spec.md §4.7).
func (v Value) ToInt(bitWidth uint, signed bool) (*big.Int, StatusFlags) {
	cfg := GetConfig()
	return FloatToInt(v.bits, v.Format, bitWidth, signed, cfg.fpState())
}

// FromInt builds a Value in format from an arbitrary-magnitude integer,
// rounding under the package-wide default configuration (spec.md §4.7).
func FromInt(val *big.Int, format *FloatProperties) (Value, StatusFlags) {
	cfg := GetConfig()
	bits, state := IntToFloat(val, format, cfg.fpState(), cfg.Tininess)
	return Value{bits: bits, Format: format}, state.Flags
}

// FromRat builds a Value in format from an exact rational, rounding under
// the package-wide default configuration (spec.md §4.5/§4.7).
func FromRat(r *big.Rat, format *FloatProperties) (Value, StatusFlags) {
	cfg := GetConfig()
	bits, state := FromReal(r, format, cfg.fpState(), cfg.Tininess)
	return Value{bits: bits, Format: format}, state.Flags
}

// ScaleB returns v*2^n (spec.md §4.5/§4.7).
func (v Value) ScaleB(n int64) (Value, StatusFlags) {
	cfg := GetConfig()
	bits, state := ScaleB(v.bits, v.Format, n, cfg.fpState(), cfg.Tininess)
	return Value{bits: bits, Format: v.Format}, state.Flags
}

// LogB returns v's unbiased base-2 exponent (spec.md §4.5/§4.7).
func (v Value) LogB() (int64, StatusFlags) {
	return LogB(v.bits, v.Format)
}

// NextUp returns the least representable value strictly greater than v
// (spec.md §4.6/§4.7).
func (v Value) NextUp() (Value, StatusFlags) {
	bits, flags := NextUp(v.bits, v.Format)
	return Value{bits: bits, Format: v.Format}, flags
}

// NextDown returns the greatest representable value strictly less than v
// (spec.md §4.6/§4.7).
func (v Value) NextDown() (Value, StatusFlags) {
	bits, flags := NextDown(v.bits, v.Format)
	return Value{bits: bits, Format: v.Format}, flags
}

// CopySign returns v's magnitude with other's sign (spec.md §4.6/§4.7).
func (v Value) CopySign(other Value) Value {
	requireSameFormat("CopySign", v.Format, other.Format)
	return Value{bits: CopySign(v.bits, other.bits, v.Format), Format: v.Format}
}

// RoundToIntegral rounds v to the nearest integral value representable in
// its format (spec.md §4.6/§4.7).
func (v Value) RoundToIntegral(rnd RoundingMode, exact bool) (Value, StatusFlags) {
	bits, flags := RoundToIntegral(v.bits, v.Format, rnd, exact)
	return Value{bits: bits, Format: v.Format}, flags
}

// Min, Max, MinNum, MaxNum implement the IEEE 754-2008 minimum/maximum
// family over a pair of same-format Values (spec.md §4.6/§4.7).
func (v Value) Min(other Value) (Value, StatusFlags) {
	requireSameFormat("Min", v.Format, other.Format)
	bits, flags := Min(v.bits, other.bits, v.Format)
	return Value{bits: bits, Format: v.Format}, flags
}

func (v Value) Max(other Value) (Value, StatusFlags) {
	requireSameFormat("Max", v.Format, other.Format)
	bits, flags := Max(v.bits, other.bits, v.Format)
	return Value{bits: bits, Format: v.Format}, flags
}

func (v Value) MinNum(other Value) (Value, StatusFlags) {
	requireSameFormat("MinNum", v.Format, other.Format)
	bits, flags := MinNum(v.bits, other.bits, v.Format)
	return Value{bits: bits, Format: v.Format}, flags
}

func (v Value) MaxNum(other Value) (Value, StatusFlags) {
	requireSameFormat("MaxNum", v.Format, other.Format)
	bits, flags := MaxNum(v.bits, other.bits, v.Format)
	return Value{bits: bits, Format: v.Format}, flags
}
