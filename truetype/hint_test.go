package truetype

import "testing"

// newTestHinter returns a hinter with an allocated stack, bypassing the
// font/CV/glyph program entry points so individual opcodes can be exercised
// directly.
func newTestHinter(t *testing.T) *hinter {
	t.Helper()
	f, err := Parse(buildFont(false))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	h := &hinter{font: f, gs: defaultGraphicsState()}
	h.stack = make([]int32, h.stackSize())
	return h
}

func (h *hinter) runTest(t *testing.T, program []byte) {
	t.Helper()
	if err := h.run(program); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestPushAndAdd(t *testing.T) {
	h := newTestHinter(t)
	// PUSHB, 2 bytes: 3, 4; ADD.
	h.runTest(t, []byte{opPUSHB000 + 1, 3, 4, opADD})
	if h.top != 1 {
		t.Fatalf("top = %d, want 1", h.top)
	}
	if h.stack[0] != 7 {
		t.Errorf("stack[0] = %d, want 7", h.stack[0])
	}
}

func TestStackOps(t *testing.T) {
	h := newTestHinter(t)
	// Push 1, 2, 3; SWAP leaves 1, 3, 2; DUP leaves 1, 3, 2, 2.
	h.runTest(t, []byte{opPUSHB000 + 2, 1, 2, 3, opSWAP, opDUP})
	want := []int32{1, 3, 2, 2}
	if h.top != len(want) {
		t.Fatalf("top = %d, want %d", h.top, len(want))
	}
	for i, w := range want {
		if h.stack[i] != w {
			t.Errorf("stack[%d] = %d, want %d", i, h.stack[i], w)
		}
	}
}

func TestDepthAndClear(t *testing.T) {
	h := newTestHinter(t)
	h.runTest(t, []byte{opPUSHB000 + 2, 5, 6, 7, opDEPTH})
	if h.top != 4 || h.stack[3] != 3 {
		t.Fatalf("after DEPTH: top=%d stack=%v, want top=4 with DEPTH pushing 3", h.top, h.stack[:h.top])
	}
	h.runTest(t, []byte{opCLEAR})
	if h.top != 0 {
		t.Errorf("top after CLEAR = %d, want 0", h.top)
	}
}

func TestIfElse(t *testing.T) {
	h := newTestHinter(t)
	// Push 0 (false); IF pushes 1, ELSE pushes 2, EIF.
	program := []byte{
		opPUSHB000, 0,
		opIF,
		opPUSHB000, 1,
		opELSE,
		opPUSHB000, 2,
		opEIF,
	}
	h.runTest(t, program)
	if h.top != 1 || h.stack[0] != 2 {
		t.Fatalf("top=%d stack=%v, want [2] (false branch taken)", h.top, h.stack[:h.top])
	}
}

func TestDivideByZero(t *testing.T) {
	h := newTestHinter(t)
	err := h.run([]byte{opPUSHB000 + 1, 5, 0, opDIV})
	if err == nil {
		t.Fatalf("DIV by zero: got nil error")
	}
	if _, ok := err.(HintingError); !ok {
		t.Errorf("DIV by zero error type = %T, want HintingError", err)
	}
}

func TestGETINFOReportsScalarVersionAndGrayscaleFlag(t *testing.T) {
	h := newTestHinter(t)
	// Selector 0x01 (version) | 0x20 (grayscale smoothing).
	h.runTest(t, []byte{opPUSHB000, 0x21, opGETINFO})
	if h.top != 1 {
		t.Fatalf("top = %d, want 1", h.top)
	}
	const wantGrayscaleBit = 0x1000
	if got := h.stack[0]; got != scalarVersion|wantGrayscaleBit {
		t.Errorf("GETINFO result = 0x%x, want 0x%x (version %d | grayscale bit)", got, scalarVersion|wantGrayscaleBit, scalarVersion)
	}
}

func TestGETINFOVersionOnly(t *testing.T) {
	h := newTestHinter(t)
	h.runTest(t, []byte{opPUSHB000, 0x01, opGETINFO})
	if got := h.stack[0]; got != scalarVersion {
		t.Errorf("GETINFO result = %d, want %d", got, scalarVersion)
	}
}

// TestMDRPUsesOriginalFUnitCoordinates pins down that MDRP's distance
// calculation reads the zone's unscaled FUnit coordinates, not its
// scaled-but-unhinted ones, when neither operand is in the twilight zone
// (§4.7 "Point movement math"). unhinted[1] is deliberately set to a value
// that would move the point to the wrong place if it were consulted.
func TestMDRPUsesOriginalFUnitCoordinates(t *testing.T) {
	h := newTestHinter(t)
	h.inst = &Instance{scale: 1 << 22} // identity scale
	h.zones[1] = zoneData{
		cur:        []Point{{X: 0, Y: 0}, {X: 0, Y: 0}},
		unhinted:   []Point{{X: 0, Y: 0}, {X: 999, Y: 0}},
		origFUnits: []Point{{X: 0, Y: 0}, {X: 640, Y: 0}},
	}
	h.gs.rp[0] = 0
	// Push point index 1, then MDRP with all modifier bits clear.
	h.runTest(t, []byte{opPUSHB000, 1, opMDRP00000})
	if got := h.zones[1].cur[1].X; got != 640 {
		t.Fatalf("MDRP moved point 1 to X=%d, want 640 (origFUnits-derived distance)", got)
	}
}

// TestIUPInterpolatesFromOriginalFUnitCoordinates pins down that IUP's
// interpolation ratio is computed from origFUnits, not from unhinted, for
// the zone it runs against (always zone 1, never the twilight zone).
// unhinted[1] is set far outside the touched endpoints' range, which would
// push the untouched point's interpolated value outside [ca, cb] if it
// were consulted instead of origFUnits.
func TestIUPInterpolatesFromOriginalFUnitCoordinates(t *testing.T) {
	h := newTestHinter(t)
	h.inst = &Instance{scale: 1 << 22}
	h.zones[1] = zoneData{
		cur: []Point{
			{Y: 100, Flags: flagTouchedY},
			{Y: 0},
			{Y: 700, Flags: flagTouchedY},
		},
		unhinted: []Point{
			{Y: 0},
			{Y: 999},
			{Y: 640},
		},
		origFUnits: []Point{
			{Y: 0},
			{Y: 320},
			{Y: 640},
		},
		end: []int{2},
	}
	h.runTest(t, []byte{opIUP0})
	if got := h.zones[1].cur[1].Y; got != 400 {
		t.Fatalf("IUP interpolated point 1 to Y=%d, want 400 (origFUnits-derived ratio)", got)
	}
}

func TestFDEFAndCall(t *testing.T) {
	h := newTestHinter(t)
	h.font.functions = make(map[int32][]byte)
	// Define function 0 to push 42, then call it.
	program := []byte{
		opPUSHB000, 0,
		opFDEF,
		opPUSHB000, 42,
		opENDF,
		opPUSHB000, 0,
		opCALL,
	}
	h.runTest(t, program)
	if h.top != 1 || h.stack[0] != 42 {
		t.Fatalf("top=%d stack=%v, want [42]", h.top, h.stack[:h.top])
	}
}
