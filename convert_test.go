package softfloat

import (
	"math/big"
	"testing"
)

func TestFloatToFloatWidening(t *testing.T) {
	// Round-trip conversion widening: to_A(to_B(x)) = x for strictly wider B
	// (spec.md §8).
	state := NewFPState(TiesToEven)
	for _, bits := range []int64{0x3C00, 0xBC00, 0x4200, 0x0400, 0x7BFF} {
		wide, s1 := FloatToFloat(hx(bits), Half, Double, state, AfterRounding)
		if s1.Flags != 0 {
			t.Fatalf("widening 0x%x raised flags %v", bits, s1.Flags)
		}
		back, s2 := FloatToFloat(wide, Double, Half, state, AfterRounding)
		if s2.Flags != 0 {
			t.Fatalf("narrowing back raised flags %v", s2.Flags)
		}
		if back.Cmp(hx(bits)) != 0 {
			t.Fatalf("round trip of 0x%x gave 0x%x", bits, back)
		}
	}
}

func TestFloatToFloatNaNIsCanonicalInDest(t *testing.T) {
	got, out := FloatToFloat(hx(0x7D00), Half, Single, NewFPState(TiesToEven), AfterRounding)
	if got.Cmp(CanonicalNaN(Single)) != 0 {
		t.Fatalf("got 0x%x, want canonical NaN 0x%x", got, CanonicalNaN(Single))
	}
	wantFlags(t, out.Flags, InvalidOperation)
}

func TestScaleBIdentity(t *testing.T) {
	// scaleB(x, 0) = x with no flags for finite, non-subnormal x (spec.md §8).
	got, out := ScaleB(hx(0x3C00), Half, 0, NewFPState(TiesToEven), AfterRounding)
	wantBits(t, got, 0x3C00)
	wantFlags(t, out.Flags, 0)
}

func TestLogBOfZeroIsDivisionByZero(t *testing.T) {
	exp, flags := LogB(hx(0x0000), Half)
	if exp != logBSentinel {
		t.Fatalf("got exponent %d, want sentinel", exp)
	}
	wantFlags(t, flags, DivisionByZero)
}

func TestLogBOfNormal(t *testing.T) {
	exp, flags := LogB(hx(0x4000), Half) // 2.0
	if exp != 1 {
		t.Fatalf("logB(2.0) = %d, want 1", exp)
	}
	wantFlags(t, flags, 0)
}

func TestFloatToIntSaturatesOnOverflow(t *testing.T) {
	// +Inf to int8 saturates to 127 and raises INVALID_OPERATION.
	got, flags := FloatToInt(hx(0x7C00), Half, 8, true, NewFPState(TiesToEven))
	if got.Cmp(big.NewInt(127)) != 0 {
		t.Fatalf("got %d, want 127", got)
	}
	wantFlags(t, flags, InvalidOperation)
}

func TestFloatToIntNonePolicyReturnsMinValueSentinel(t *testing.T) {
	nonePlatform := *DefaultPlatformProperties()
	nonePlatform.IntegerConversionPolicy = IntegerConversionNone
	fmt := *Half
	fmt.Platform = &nonePlatform

	minVal, _ := integerRange(8, true)
	for _, bits := range []int64{0x7C00, 0x7E00, 0x7D00, 0x7BFF} { // +Inf, qNaN, sNaN, max finite (>127)
		got, flags := FloatToInt(hx(bits), &fmt, 8, true, NewFPState(TiesToEven))
		if got.Cmp(minVal) != 0 {
			t.Errorf("FloatToInt(0x%x) under None policy = %d, want sentinel %d", bits, got, minVal)
		}
		wantFlags(t, flags, InvalidOperation)
	}
}

func TestIntToFloatThenBackIsExactForSmallInts(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -1000} {
		bits, state := IntToFloat(big.NewInt(v), Single, NewFPState(TiesToEven), AfterRounding)
		if state.Flags != 0 {
			t.Fatalf("IntToFloat(%d) raised flags %v", v, state.Flags)
		}
		back, flags := FloatToInt(bits, Single, 32, true, NewFPState(TiesToEven))
		if flags != 0 {
			t.Fatalf("FloatToInt round trip of %d raised flags %v", v, flags)
		}
		if back.Cmp(big.NewInt(v)) != 0 {
			t.Fatalf("round trip of %d gave %d", v, back)
		}
	}
}

func TestFromRealMatchesIntToFloat(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 100, -12345} {
		r := new(big.Rat).SetInt64(v)
		fromReal, s1 := FromReal(r, Single, NewFPState(TiesToEven), AfterRounding)
		fromInt, s2 := IntToFloat(big.NewInt(v), Single, NewFPState(TiesToEven), AfterRounding)
		if fromReal.Cmp(fromInt) != 0 || s1.Flags != s2.Flags {
			t.Fatalf("FromReal(%d)=0x%x/%v, IntToFloat(%d)=0x%x/%v", v, fromReal, s1.Flags, v, fromInt, s2.Flags)
		}
	}
}

func TestFromRealOfOneHalf(t *testing.T) {
	half := big.NewRat(1, 2)
	got, state := FromReal(half, Single, NewFPState(TiesToEven), AfterRounding)
	want := Pack(false, Single.Bias()-1, big.NewInt(0), Single)
	if got.Cmp(want) != 0 {
		t.Fatalf("FromReal(1/2) = 0x%x, want 0x%x", got, want)
	}
	if state.Flags != 0 {
		t.Fatalf("FromReal(1/2) raised flags %v", state.Flags)
	}
}

func TestFromRealOfOneThirdIsInexact(t *testing.T) {
	third := big.NewRat(1, 3)
	_, state := FromReal(third, Single, NewFPState(TiesToEven), AfterRounding)
	if !state.Flags.Has(Inexact) {
		t.Fatalf("FromReal(1/3) flags %v, want INEXACT", state.Flags)
	}
}

func TestWidthZeroPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for bitWidth 0")
		}
	}()
	FloatToInt(hx(0x3C00), Half, 0, true, NewFPState(TiesToEven))
}
