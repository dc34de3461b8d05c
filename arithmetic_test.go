package softfloat

import (
	"math/big"
	"testing"
)

// hx builds a half-precision bit pattern from its hex encoding.
func hx(v int64) *big.Int { return big.NewInt(v) }

func TestHalfPrecisionScenarios(t *testing.T) {
	state := NewFPState(TiesToEven)

	t.Run("1.0 + 1.0 = 2.0", func(t *testing.T) {
		got, out := Add(hx(0x3C00), hx(0x3C00), Half, state, AfterRounding)
		wantBits(t, got, 0x4000)
		wantFlags(t, out.Flags, 0)
	})

	t.Run("max_finite + 1 overflows", func(t *testing.T) {
		got, out := Add(hx(0x7BFF), hx(0x3C00), Half, state, AfterRounding)
		wantBits(t, got, 0x7C00)
		wantFlags(t, out.Flags, Overflow, Inexact)
	})

	t.Run("min_subnormal + -min_subnormal = 0", func(t *testing.T) {
		got, out := Add(hx(0x0001), hx(0x8001), Half, state, AfterRounding)
		wantBits(t, got, 0x0000)
		wantFlags(t, out.Flags, 0)
	})

	t.Run("inf - inf is invalid", func(t *testing.T) {
		got, out := Sub(hx(0x7C00), hx(0x7C00), Half, state, AfterRounding)
		wantBits(t, got, 0x7E00)
		wantFlags(t, out.Flags, InvalidOperation)
	})

	t.Run("sqrt(-2.0) is invalid", func(t *testing.T) {
		got, out := Sqrt(hx(0xC000), Half, state, AfterRounding)
		wantBits(t, got, 0x7E00)
		wantFlags(t, out.Flags, InvalidOperation)
	})
}

func TestU64ToF32RoundsUpToPowerOfTwo(t *testing.T) {
	maxU64 := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 64), bigOne)
	got, out := IntToFloat(maxU64, Single, NewFPState(TiesToEven), AfterRounding)
	wantBits(t, got, 0x5F800000)
	wantFlags(t, out.Flags, Inexact)
}

func TestCompareQuietVsSignaling(t *testing.T) {
	r, flags := CompareQuiet(hx(0x7E00), hx(0x0000), Half)
	if r != Unordered {
		t.Fatalf("got %v, want Unordered", r)
	}
	wantFlags(t, flags, 0)

	r, flags = CompareSignaling(hx(0x7D00), hx(0x0000), Half)
	if r != Unordered {
		t.Fatalf("got %v, want Unordered", r)
	}
	wantFlags(t, flags, InvalidOperation)
}

func TestAddCommutative(t *testing.T) {
	state := NewFPState(TiesToEven)
	vals := []int64{0x3C00, 0x4200, 0xBC00, 0x1234, 0x7BFF, 0x0001}
	for _, a := range vals {
		for _, b := range vals {
			r1, s1 := Add(hx(a), hx(b), Half, state, AfterRounding)
			r2, s2 := Add(hx(b), hx(a), Half, state, AfterRounding)
			if r1.Cmp(r2) != 0 || s1.Flags != s2.Flags {
				t.Errorf("Add(%#x,%#x)=%#x/%v but Add(%#x,%#x)=%#x/%v", a, b, r1, s1.Flags, b, a, r2, s2.Flags)
			}
		}
	}
}

func TestMulCommutative(t *testing.T) {
	state := NewFPState(TiesToEven)
	vals := []int64{0x3C00, 0x4200, 0xBC00, 0x1234, 0x7BFF, 0x0001, 0x0000}
	for _, a := range vals {
		for _, b := range vals {
			r1, s1 := Mul(hx(a), hx(b), Half, state, AfterRounding)
			r2, s2 := Mul(hx(b), hx(a), Half, state, AfterRounding)
			if r1.Cmp(r2) != 0 || s1.Flags != s2.Flags {
				t.Errorf("Mul(%#x,%#x)=%#x/%v but Mul(%#x,%#x)=%#x/%v", a, b, r1, s1.Flags, b, a, r2, s2.Flags)
			}
		}
	}
}

func TestZeroTimesInfinityIsInvalid(t *testing.T) {
	got, out := Mul(hx(0x0000), hx(0x7C00), Half, NewFPState(TiesToEven), AfterRounding)
	wantBits(t, got, 0x7E00)
	wantFlags(t, out.Flags, InvalidOperation)
}

func TestDivByZeroRaisesDivisionByZero(t *testing.T) {
	got, out := Div(hx(0x3C00), hx(0x0000), Half, NewFPState(TiesToEven), AfterRounding)
	wantBits(t, got, 0x7C00)
	wantFlags(t, out.Flags, DivisionByZero)
}

func TestFMASingleRounding(t *testing.T) {
	// 1.0 * 1.0 + 1.0 = 2.0, exact, no flags.
	got, out := FMA(hx(0x3C00), hx(0x3C00), hx(0x3C00), Half, NewFPState(TiesToEven), AfterRounding)
	wantBits(t, got, 0x4000)
	wantFlags(t, out.Flags, 0)
}

func TestFMAProductInvalid(t *testing.T) {
	got, out := FMA(hx(0x0000), hx(0x7C00), hx(0x3C00), Half, NewFPState(TiesToEven), AfterRounding)
	wantBits(t, got, 0x7E00)
	wantFlags(t, out.Flags, InvalidOperation)
}

func wantBits(t *testing.T, got *big.Int, want int64) {
	t.Helper()
	if got.Cmp(hx(want)) != 0 {
		t.Fatalf("got 0x%x, want 0x%x", got, want)
	}
}

func wantFlags(t *testing.T, got StatusFlags, want ...StatusFlag) {
	t.Helper()
	var expect StatusFlags
	for _, f := range want {
		expect = expect.With(f)
	}
	if got != expect {
		t.Fatalf("got flags %v, want %v", got, expect)
	}
}
