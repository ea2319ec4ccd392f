package decode

import "testing"

func TestFtoU8Saturating(t *testing.T) {
	cases := []struct {
		in   float32
		want byte
	}{
		{-1.0, 0},
		{2.0, 255},
		{0.5, 127},
		{0.0, 0},
		{1.0, 255},
	}
	for _, c := range cases {
		if got := FtoU8(c.in); got != c.want {
			t.Errorf("FtoU8(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFMul8(t *testing.T) {
	if got := FMul8(255, 255); got != 255 {
		t.Errorf("FMul8(255,255) = %d, want 255", got)
	}
	if got := FMul8(128, 128); got != 64 {
		t.Errorf("FMul8(128,128) = %d, want 64 (integer division)", got)
	}
	if got := FMul8(0, 200); got != 0 {
		t.Errorf("FMul8(0,200) = %d, want 0", got)
	}
}

func TestPackedColorRoundTrip(t *testing.T) {
	words := []uint32{0x11223344, 0xFFFFFFFF, 0x00000000, 0xAABBCCDD}
	for _, w := range words {
		c := ParsePackedColor(w)
		if got := SerializePackedColor(c); got != w {
			t.Errorf("round trip 0x%08X -> %+v -> 0x%08X", w, c, got)
		}
	}
}

func TestParsePackedColorOrder(t *testing.T) {
	packed := uint32(0x11)<<24 | uint32(0x22)<<16 | uint32(0x33)<<8 | uint32(0x44)
	c := ParsePackedColor(packed)
	if c != (RGBA8{0x22, 0x33, 0x44, 0x11}) {
		t.Errorf("got %+v", c)
	}
}

func TestModulateIntensity(t *testing.T) {
	face := RGBA8{200, 100, 50, 255}
	out := ModulateIntensity(face, 1.0)
	if out != (RGBA8{200, 100, 50, 255}) {
		t.Errorf("intensity 1.0 should be no-op, got %+v", out)
	}
	out = ModulateIntensity(face, 0.0)
	if out != (RGBA8{0, 0, 0, 255}) {
		t.Errorf("intensity 0.0 should zero rgb, got %+v", out)
	}
}
