package softfloat

import (
	"math"
	"math/big"
	"testing"

	x448float16 "github.com/x448/float16"
)

// TestHalfAgainstX448Float16 differentially tests this kernel's Half format
// against x448/float16, an independent half-precision codec (the teacher's
// one declared dependency). For a spread of float32 values it checks that
// encoding through the dynamic facade's FromRat agrees bit-for-bit with
// x448's Fromfloat32, and that decoding through FloatToFloat(Half→Single)
// agrees with x448's Float32, the way a verification harness would
// cross-check two implementations of the same format.
func TestHalfAgainstX448Float16(t *testing.T) {
	values := []float32{
		0, 1, -1, 0.5, -0.5, 2, 100, -100, 3.14159, 65504, -65504,
		1e-5, 6.0e-8, float32(math.Inf(1)), float32(math.Inf(-1)),
		0.1, 123.456, -0.001, 1024, -2048,
	}
	for _, f32 := range values {
		want := x448float16.Fromfloat32(f32)

		r := new(big.Rat)
		if !math.IsInf(float64(f32), 0) {
			r.SetFloat64(float64(f32))
		}

		var bits *big.Int
		if math.IsInf(float64(f32), 1) {
			bits = Pack(false, Half.MaxBiasedExponent(), big.NewInt(0), Half)
		} else if math.IsInf(float64(f32), -1) {
			bits = Pack(true, Half.MaxBiasedExponent(), big.NewInt(0), Half)
		} else {
			v, flags := FromRat(r, Half)
			if flags.Has(InvalidOperation) {
				t.Fatalf("FromRat(%v) raised INVALID_OPERATION unexpectedly", f32)
			}
			bits = v.Bits()
		}

		got := uint16(bits.Uint64())
		if got != uint16(want) {
			t.Errorf("half(%v): kernel=0x%04x, x448/float16=0x%04x", f32, got, uint16(want))
		}

		// Round-trip back through x448 and compare against this kernel's
		// own FloatToFloat(Half -> Single) to confirm both codecs agree on
		// what the bits decode to, not just how they encode.
		if !math.IsInf(float64(f32), 0) {
			wantBack := want.Float32()
			single, _ := FloatToFloat(bits, Half, Single, NewFPState(TiesToEven), AfterRounding)
			gotBack := math.Float32frombits(uint32(single.Uint64()))
			if gotBack != wantBack && !(math.IsNaN(float64(gotBack)) && math.IsNaN(float64(wantBack))) {
				t.Errorf("half(%v) decode: kernel=%v, x448/float16=%v", f32, gotBack, wantBack)
			}
		}
	}
}
