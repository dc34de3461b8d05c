package softfloat

import "testing"

func TestDivAgainstKnownValues(t *testing.T) {
	state := NewFPState(TiesToEven)
	one := Pack(false, Single.Bias(), bi(0), Single)
	two := Pack(false, Single.Bias()+1, bi(0), Single)
	half := Pack(false, Single.Bias()-1, bi(0), Single)
	got, out := Div(one, two, Single, state, AfterRounding)
	if got.Cmp(half) != 0 {
		t.Fatalf("1.0/2.0 = 0x%x, want 0x%x (0.5)", got, half)
	}
	if out.Flags != 0 {
		t.Fatalf("1.0/2.0 raised flags %v, want none (exact)", out.Flags)
	}
}

func TestSqrtAgainstKnownValues(t *testing.T) {
	state := NewFPState(TiesToEven)
	four := Pack(false, Single.Bias()+2, bi(0), Single)
	two := Pack(false, Single.Bias()+1, bi(0), Single)
	got, out := Sqrt(four, Single, state, AfterRounding)
	if got.Cmp(two) != 0 {
		t.Fatalf("sqrt(4.0) = 0x%x, want 0x%x (2.0)", got, two)
	}
	if out.Flags != 0 {
		t.Fatalf("sqrt(4.0) raised flags %v, want none (exact)", out.Flags)
	}
}

func TestSqrtOfNegativeZero(t *testing.T) {
	negZero := Pack(true, 0, bi(0), Half)
	got, out := Sqrt(negZero, Half, NewFPState(TiesToEven), AfterRounding)
	if !Signbit(got, Half) {
		t.Fatalf("sqrt(-0) = 0x%x, want negative zero under default platform policy", got)
	}
	if out.Flags != 0 {
		t.Fatalf("sqrt(-0) raised flags %v, want none", out.Flags)
	}
}

func TestSqrtPositiveInfinity(t *testing.T) {
	posInf := Pack(false, Half.MaxBiasedExponent(), bi(0), Half)
	got, out := Sqrt(posInf, Half, NewFPState(TiesToEven), AfterRounding)
	if got.Cmp(posInf) != 0 {
		t.Fatalf("sqrt(+inf) = 0x%x, want +inf 0x%x", got, posInf)
	}
	if out.Flags != 0 {
		t.Fatalf("sqrt(+inf) raised flags %v", out.Flags)
	}
}

func TestReciprocalMatchesDiv(t *testing.T) {
	state := NewFPState(TiesToEven)
	four := Pack(false, Single.Bias()+2, bi(0), Single)
	one := Pack(false, Single.Bias(), bi(0), Single)
	recip, s1 := Reciprocal(four, Single, state, AfterRounding)
	direct, s2 := Div(one, four, Single, state, AfterRounding)
	if recip.Cmp(direct) != 0 || s1.Flags != s2.Flags {
		t.Fatalf("Reciprocal(4.0)=0x%x/%v, Div(1,4)=0x%x/%v", recip, s1.Flags, direct, s2.Flags)
	}
}

func TestRSqrtOfFour(t *testing.T) {
	state := NewFPState(TiesToEven)
	four := Pack(false, Single.Bias()+2, bi(0), Single)
	half := Pack(false, Single.Bias()-1, bi(0), Single)
	got, out := RSqrt(four, Single, state, AfterRounding)
	if got.Cmp(half) != 0 {
		t.Fatalf("rsqrt(4.0) = 0x%x, want 0x%x (0.5)", got, half)
	}
	if out.Flags != 0 {
		t.Fatalf("rsqrt(4.0) raised flags %v, want none (exact)", out.Flags)
	}
}

func TestRSqrtOfNegativeIsInvalid(t *testing.T) {
	negFour := Pack(true, Single.Bias()+2, bi(0), Single)
	got, out := RSqrt(negFour, Single, NewFPState(TiesToEven), AfterRounding)
	if got.Cmp(CanonicalNaN(Single)) != 0 {
		t.Fatalf("rsqrt(-4.0) = 0x%x, want canonical NaN", got)
	}
	if !out.Flags.Has(InvalidOperation) {
		t.Fatalf("rsqrt(-4.0) flags %v, want INVALID_OPERATION", out.Flags)
	}
}
