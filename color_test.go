package vtengine

import "testing"

func TestColorEquality(t *testing.T) {
	if IndexedColor(5) != IndexedColor(5) {
		t.Fatalf("identical indexed colors should compare equal")
	}
	if RGBColor(1, 2, 3) != RGBColor(1, 2, 3) {
		t.Fatalf("identical RGB colors should compare equal")
	}
	if IndexedColor(5) == RGBColor(0, 0, 5) {
		t.Fatalf("different color kinds must not compare equal")
	}
	if DefaultColor() != DefaultColor() {
		t.Fatalf("DefaultColor should compare equal to itself")
	}
}

func TestColorAccessors(t *testing.T) {
	if !DefaultColor().IsDefault() {
		t.Fatalf("DefaultColor().IsDefault() = false")
	}

	idx, ok := IndexedColor(200).IsIndexed()
	if !ok || idx != 200 {
		t.Fatalf("IsIndexed() = (%d, %v), want (200, true)", idx, ok)
	}

	r, g, b, ok := RGBColor(10, 20, 30).IsRGB()
	if !ok || r != 10 || g != 20 || b != 30 {
		t.Fatalf("IsRGB() = (%d,%d,%d,%v), want (10,20,30,true)", r, g, b, ok)
	}

	if _, ok := RGBColor(1, 2, 3).IsIndexed(); ok {
		t.Fatalf("RGB color should not report IsIndexed")
	}
}

func TestDefaultPaletteLayout(t *testing.T) {
	if len(DefaultPalette) != 256 {
		t.Fatalf("DefaultPalette length = %d, want 256", len(DefaultPalette))
	}
	// Color cube entry 16 is pure black (level 0,0,0).
	if DefaultPalette[16] != (rgb{0, 0, 0}) {
		t.Fatalf("DefaultPalette[16] = %+v, want black", DefaultPalette[16])
	}
	// Grayscale ramp starts at index 232.
	if DefaultPalette[232] != (rgb{8, 8, 8}) {
		t.Fatalf("DefaultPalette[232] = %+v, want {8,8,8}", DefaultPalette[232])
	}
}
