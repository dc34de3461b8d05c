package softfloat

import (
	"math/big"
	"testing"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	fmt := Half
	total := fmt.TotalWidth()
	limit := new(big.Int).Lsh(big.NewInt(1), total)
	step := big.NewInt(997) // odd stride, covers a representative spread without iterating all 65536 values redundantly
	for bits := big.NewInt(0); bits.Cmp(limit) < 0; bits.Add(bits, step) {
		sign, exp, mant := Unpack(bits, fmt)
		got := Pack(sign, exp, mant, fmt)
		if got.Cmp(bits) != 0 {
			t.Fatalf("pack(unpack(0x%x)) = 0x%x, want 0x%x", bits, got, bits)
		}
	}
}

func TestClassifyTotality(t *testing.T) {
	fmt := Half
	seen := map[FloatClass]bool{}
	for _, bits := range []int64{
		0x0000, 0x8000, // +0, -0
		0x0001, 0x8001, 0x03FF, // subnormals
		0x3C00, 0xBC00, // normals
		0x7C00, 0xFC00, // infinities
		0x7E00, 0x7D00, 0xFE00, 0xFD00, // qNaN, sNaN (both signs)
	} {
		c := Classify(hx(bits), fmt)
		if c < ClassSignalingNaN || c > ClassPositiveInfinity {
			t.Fatalf("Classify(0x%x) returned out-of-range class %v", bits, c)
		}
		seen[c] = true
	}
	want := []FloatClass{
		ClassPositiveZero, ClassNegativeZero,
		ClassPositiveSubnormal, ClassNegativeSubnormal,
		ClassPositiveNormal, ClassNegativeNormal,
		ClassPositiveInfinity, ClassNegativeInfinity,
		ClassQuietNaN, ClassSignalingNaN,
	}
	for _, c := range want {
		if !seen[c] {
			t.Errorf("class %v never produced by test vectors", c)
		}
	}
}

func TestSignbitDistinguishesZeros(t *testing.T) {
	if Signbit(hx(0x0000), Half) {
		t.Error("+0 should have clear sign bit")
	}
	if !Signbit(hx(0x8000), Half) {
		t.Error("-0 should have set sign bit")
	}
}
