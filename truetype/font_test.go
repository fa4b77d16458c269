package truetype

import "testing"

func TestParseBasics(t *testing.T) {
	f, err := Parse(buildFont(false))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := f.NumGlyphs(), 2; got != want {
		t.Errorf("NumGlyphs() = %d, want %d", got, want)
	}
	if got, want := f.UnitsPerEm(), int32(1000); got != want {
		t.Errorf("UnitsPerEm() = %d, want %d", got, want)
	}
	if f.HasHinting() {
		t.Errorf("HasHinting() = true for a font with no cvt/fpgm/prep")
	}
	wantBounds := Bounds{XMin: 100, YMin: 0, XMax: 500, YMax: 700}
	if got := f.Bounds(); got != wantBounds {
		t.Errorf("Bounds() = %+v, want %+v", got, wantBounds)
	}
}

func TestParseTooShort(t *testing.T) {
	if _, err := Parse([]byte{1, 2, 3}); err == nil {
		t.Fatalf("Parse(short buffer): got nil error, want FormatError")
	}
}

func TestParseHintedFont(t *testing.T) {
	f, err := Parse(buildFont(true))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !f.HasHinting() {
		t.Errorf("HasHinting() = false, want true with cvt/fpgm/prep present")
	}
	if f.functions == nil {
		t.Errorf("functions table not initialized for a hinted font")
	}
}

func TestIndexMapsCmap(t *testing.T) {
	f, err := Parse(buildFont(false))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := f.Index('A'), Index(1); got != want {
		t.Errorf("Index('A') = %d, want %d", got, want)
	}
	// P1: an unmapped code point resolves to notdef (glyph 0).
	if got, want := f.Index('Z'), Index(0); got != want {
		t.Errorf("Index('Z') = %d, want %d", got, want)
	}
	if got, want := f.Index(0x10000), Index(0); got != want {
		t.Errorf("Index(non-BMP) = %d, want %d", got, want)
	}
}

func TestHMetric(t *testing.T) {
	f, err := Parse(buildFont(false))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	hm := f.HMetric(1)
	if hm.AdvanceWidth != 600 || hm.LeftSideBearing != 100 {
		t.Errorf("HMetric(1) = %+v, want {600 100}", hm)
	}
	// Out-of-range glyph index returns the zero value rather than panicking.
	if got := f.HMetric(999); got != (HMetric{}) {
		t.Errorf("HMetric(out of range) = %+v, want zero value", got)
	}
}
