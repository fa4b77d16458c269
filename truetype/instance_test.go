package truetype

import "testing"

func TestNewInstanceRejectsNonPositivePPEM(t *testing.T) {
	f, err := Parse(buildFont(false))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := NewInstance(f, 0); err == nil {
		t.Errorf("NewInstance(ppem=0): got nil error")
	}
}

func TestNewInstanceScalesCVT(t *testing.T) {
	f, err := Parse(buildFont(true))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	inst, err := NewInstance(f, int(f.UnitsPerEm()))
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	if inst.PPEM() != int(f.UnitsPerEm()) {
		t.Errorf("PPEM() = %d, want %d", inst.PPEM(), f.UnitsPerEm())
	}
	// buildFont's cvt holds [0, 96]; at identity scale these pass through
	// as whole-pixel 26.6 values.
	if len(inst.cvt) != 2 || inst.cvt[0] != 0 || inst.cvt[1] != 96<<6 {
		t.Errorf("cvt = %v, want [0 %d]", inst.cvt, 96<<6)
	}
}

func TestNewInstanceUnhintedFontSkipsCVProgram(t *testing.T) {
	f, err := Parse(buildFont(false))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	inst, err := NewInstance(f, 16)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	if len(inst.cvt) != 0 {
		t.Errorf("cvt = %v, want empty for a font with no cvt table", inst.cvt)
	}
}
