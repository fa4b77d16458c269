// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// graphicsState holds the TrueType interpreter's persistent state (§3
// "Graphics State"). It is reset to its compile-time defaults at the start
// of every program (font/CV/glyph), except where NewInstance explicitly
// carries a subset of it forward from the CV program into glyph programs.
type graphicsState struct {
	projVector, freeVector, dualVector [2]f2dot14
	rp                                 [3]int
	zp                                 [3]int
	loop                               int32
	minDistance                        f26dot6
	roundOff                           bool
	roundPeriod, roundPhase, roundThreshold f26dot6
	autoFlip                           bool
	controlValueCutIn                  f26dot6
	singleWidthCutIn                   f26dot6
	singleWidthValue                   f26dot6
	deltaBase                          int32
	deltaShift                         int32
	instructControl                    uint8
	scanControl                        bool
}

func defaultGraphicsState() graphicsState {
	return graphicsState{
		projVector:        [2]f2dot14{1 << 14, 0},
		freeVector:        [2]f2dot14{1 << 14, 0},
		dualVector:        [2]f2dot14{1 << 14, 0},
		zp:                [3]int{1, 1, 1},
		loop:              1,
		minDistance:       1 << 6,
		roundPeriod:       1 << 6,
		roundThreshold:    1 << 5,
		autoFlip:          true,
		controlValueCutIn: 17 << 6 / 16,
		deltaBase:         9,
		deltaShift:        3,
	}
}

// zoneData is one of the two point zones a graphics-state zone pointer
// (zp0/zp1/zp2) can select: 0 is the twilight zone (scratch points with no
// outline), 1 is the glyph currently being hinted.
type zoneData struct {
	cur, unhinted, origFUnits []Point
	end                       []int
}

type callEntry struct {
	program []byte
	pc      int
	fn      int32 // function currently looping, for LOOPCALL re-entry
	loop    int32 // remaining iterations, 1 for a plain CALL
}

const maxCallStackDepth = 32
const maxInstructions = 1_000_000

// hinter executes the TrueType bytecode interpreter. One hinter is created
// per program run (font program, CV program, or glyph program); the
// function table it populates during the font program is the only state
// that outlives a single hinter (it is written straight into font.functions
// so it persists for the Font's lifetime, per §"Data model").
type hinter struct {
	font *Font
	inst *Instance

	gs graphicsState

	stack []int32
	top   int

	zones [2]zoneData

	program   []byte
	pc        int
	callStack []callEntry

	steps int
}

func (h *hinter) stackSize() int {
	n := int(h.font.maxStackElements)
	if n < 64 {
		n = 64
	}
	return n + 16
}

func (h *hinter) push(v int32) error {
	if h.top >= len(h.stack) {
		return HintingError("stack overflow")
	}
	h.stack[h.top] = v
	h.top++
	return nil
}

func (h *hinter) pop() (int32, error) {
	if h.top <= 0 {
		return 0, HintingError("stack underflow")
	}
	h.top--
	return h.stack[h.top], nil
}

func (h *hinter) popf() (f26dot6, error) {
	v, err := h.pop()
	return f26dot6(v), err
}

func (h *hinter) zone(n int) *zoneData { return &h.zones[h.gs.zp[n]] }

// runFontProgram executes f.fpgm, populating f.functions. Only FDEF/IDEF
// (and the PUSH family to feed them) are expected at the top level (§4.8).
func (h *hinter) runFontProgram() error {
	h.gs = defaultGraphicsState()
	h.stack = make([]int32, h.stackSize())
	return h.run(h.font.table(h.font.fpgm))
}

// runCVProgram executes inst.font.prep, initializing inst's CVT-derived
// graphics state. h.inst must already be set.
func (h *hinter) runCVProgram() error {
	h.stack = make([]int32, h.stackSize())
	h.zones[0] = zoneData{cur: h.inst.twilightPoint, unhinted: h.inst.twilightUnhinted, origFUnits: h.inst.twilightInFontUnits}
	return h.run(h.font.table(h.font.prep))
}

// runGlyphProgram executes the per-glyph instructions found in g's source
// bytes, with zone 1 bound to g's own point arrays and zone 0 bound to
// inst's twilight zone.
func (h *hinter) runGlyphProgram(program []byte, g *GlyphBuf) error {
	h.gs = h.inst.gs
	h.stack = make([]int32, h.stackSize())
	h.zones[0] = zoneData{cur: h.inst.twilightPoint, unhinted: h.inst.twilightUnhinted, origFUnits: h.inst.twilightInFontUnits}
	h.zones[1] = zoneData{cur: g.Point, unhinted: g.Unhinted, origFUnits: g.InFontUnits, end: g.End}
	return h.run(program)
}

func (h *hinter) run(program []byte) error {
	h.program, h.pc = program, 0
	for h.pc < len(h.program) {
		h.steps++
		if h.steps > maxInstructions {
			return HintingAborted
		}
		op := h.program[h.pc]
		h.pc++
		if err := h.step(op); err != nil {
			return err
		}
	}
	return nil
}

// pushBytes/pushWords consume n raw operand bytes (for PUSHB/PUSHW/NPUSHB/
// NPUSHW) and push them, sign-extending words.
func (h *hinter) pushBytes(n int) error {
	if h.pc+n > len(h.program) {
		return FormatError("PUSHB operand truncated")
	}
	for i := 0; i < n; i++ {
		if err := h.push(int32(h.program[h.pc])); err != nil {
			return err
		}
		h.pc++
	}
	return nil
}

func (h *hinter) pushWords(n int) error {
	if h.pc+2*n > len(h.program) {
		return FormatError("PUSHW operand truncated")
	}
	for i := 0; i < n; i++ {
		v := int32(int16(u16(h.program, h.pc)))
		if err := h.push(v); err != nil {
			return err
		}
		h.pc += 2
	}
	return nil
}

// skipToElseOrEIF advances pc past a matching ELSE or EIF, honoring nested
// IF/EIF pairs and stopping at (consuming) the terminator found. If
// wantElse, an ELSE found at the current nesting level also stops the scan
// (used by IF's false branch); EIF always stops it.
func (h *hinter) skipToElseOrEIF(wantElse bool) error {
	depth := 0
	for h.pc < len(h.program) {
		op := h.program[h.pc]
		switch {
		case op == opIF:
			depth++
			h.pc++
		case op == opELSE && depth == 0 && wantElse:
			h.pc++
			return nil
		case op == opELSE:
			h.pc++
		case op == opEIF && depth == 0:
			h.pc++
			return nil
		case op == opEIF:
			depth--
			h.pc++
		default:
			n, err := h.operandBytes(op)
			if err != nil {
				return err
			}
			h.pc += 1 + n
		}
	}
	return FormatError("unterminated IF")
}

// operandBytes returns how many bytes of inline operand data follow op's
// opcode byte (for PUSH family) so skipToElseOrEIF can step over instruction
// boundaries without executing them.
func (h *hinter) operandBytes(op byte) (int, error) {
	switch {
	case op == opNPUSHB:
		if h.pc+1 >= len(h.program) {
			return 0, FormatError("NPUSHB truncated")
		}
		return 1 + int(h.program[h.pc+1]), nil
	case op == opNPUSHW:
		if h.pc+1 >= len(h.program) {
			return 0, FormatError("NPUSHW truncated")
		}
		return 1 + 2*int(h.program[h.pc+1]), nil
	case op >= opPUSHB000 && op <= opPUSHB111:
		return int(op-opPUSHB000) + 1, nil
	case op >= opPUSHW000 && op <= opPUSHW111:
		return 2 * (int(op-opPUSHW000) + 1), nil
	}
	return 0, nil
}
