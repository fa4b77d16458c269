// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// Instance binds a Font to one pixels-per-em size. It owns everything the
// hinting VM mutates while rendering at that size: the scaled control value
// table, the storage area, Zone 0 (the twilight zone) and the graphics
// state left behind by the control value program.
//
// An Instance is not safe for concurrent use; create one per goroutine that
// renders at a given ppem, per the package's concurrency model.
type Instance struct {
	font *Font
	ppem int
	scale f10dot22

	cvt     []f26dot6
	storage []int32

	// Zone 0 arrays, sized maxTwilightPoints+4 (the +4 covers the phantom
	// point slots some fonts address in the twilight zone during cvt/glyph
	// programs, mirroring zone 1's layout).
	twilightPoint       []Point
	twilightUnhinted    []Point
	twilightInFontUnits []Point

	gs graphicsState
}

// NewInstance creates an Instance for f at the given ppem, scaling the
// control value table and running the control value program once (§3
// "Instance lifecycle").
func NewInstance(f *Font, ppem int) (*Instance, error) {
	if ppem <= 0 {
		return nil, FormatError("ppem must be positive")
	}
	inst := &Instance{
		font:  f,
		ppem:  ppem,
		scale: scaleForPPEM(ppem, f.unitsPerEm),
	}
	inst.storage = make([]int32, int(f.maxStorage))

	cvtRaw := f.table(f.cvt)
	inst.cvt = make([]f26dot6, len(cvtRaw)/2)
	for i := range inst.cvt {
		inst.cvt[i] = funitsToPixels(int32(int16(u16(cvtRaw, 2*i))), inst.scale)
	}

	n := int(f.maxTwilightPoints) + 4
	inst.twilightPoint = make([]Point, n)
	inst.twilightUnhinted = make([]Point, n)
	inst.twilightInFontUnits = make([]Point, n)

	inst.gs = defaultGraphicsState()

	if f.hinting {
		h := &hinter{font: f, inst: inst, gs: defaultGraphicsState()}
		if err := h.runCVProgram(); err != nil {
			return nil, err
		}
		inst.gs = h.gs
		// Per the reference rasterizer, a handful of graphics state fields
		// are not allowed to persist from the control value program into
		// glyph programs: vectors and zone/reference-point selection reset
		// to their compile-time defaults regardless of what prep left them
		// as.
		d := defaultGraphicsState()
		inst.gs.projVector, inst.gs.freeVector, inst.gs.dualVector = d.projVector, d.freeVector, d.dualVector
		inst.gs.zp = d.zp
		inst.gs.rp = d.rp
	}
	return inst, nil
}

// PPEM returns the pixels-per-em this instance was created for.
func (inst *Instance) PPEM() int { return inst.ppem }
