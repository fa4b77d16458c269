// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// This file is the opcode dispatch table for the interpreter defined in
// hint.go: one case per TrueType instruction, named after opcodes.go.

// scalarVersion is the rasterizer version GETINFO reports in its low byte.
const scalarVersion = 35

// GETINFO selector bits, the only ones defined for scalarVersion 35.
const (
	getInfoVersion                = 0x01
	getInfoGlyphRotated           = 0x02
	getInfoGlyphStretched         = 0x04
	getInfoFontSmoothingGrayscale = 0x20
)

func sign(x f26dot6) f26dot6 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

func absF(x f26dot6) f26dot6 {
	if x < 0 {
		return -x
	}
	return x
}

func (h *hinter) curProj(p Point) f26dot6 { return dotProduct(p.X, p.Y, h.gs.projVector) }

// origDist returns the distance, projected along the dual projection
// vector, between point i0 of zone zi0 and point i1 of zone zi1 in their
// original (pre-hint) positions. When neither zone is the twilight zone
// it dots the unscaled FUnit coordinates and scales the result, rather
// than dotting the already-scaled-and-rounded positions, for more
// precision; the twilight zone has no unscaled coordinates, so operands
// touching it fall back to its scaled-original positions.
func (h *hinter) origDist(zi0, i0, zi1, i1 int) f26dot6 {
	if zi0 == 0 || zi1 == 0 {
		a, b := h.zones[zi0].unhinted[i0], h.zones[zi1].unhinted[i1]
		return dotProduct(b.X-a.X, b.Y-a.Y, h.gs.dualVector)
	}
	a, b := h.zones[zi0].origFUnits[i0], h.zones[zi1].origFUnits[i1]
	d := dotProduct(b.X-a.X, b.Y-a.Y, h.gs.dualVector)
	return f26dot6(fixMul(int64(d), int64(h.inst.scale), 22))
}

func (h *hinter) curDist(a, b Point) f26dot6 {
	return dotProduct(b.X-a.X, b.Y-a.Y, h.gs.projVector)
}

// movePointBy repositions zones[zoneIdx].cur[i] by moving it along the
// freedom vector such that its freedom-vector component changes by
// distance/dot(fv,pv) — i.e. such that its *projection* onto pv changes by
// exactly distance, the usual TrueType point-movement contract (§"Point
// movement").
func (h *hinter) movePointBy(zoneIdx, i int, distance f26dot6, touch bool) {
	fv := h.gs.freeVector
	pv := h.gs.projVector
	dot := int64(fixMul(int64(fv[0]), int64(pv[0]), 14) + fixMul(int64(fv[1]), int64(pv[1]), 14))
	if dot == 0 {
		dot = 1 << 14
	}
	dx := f26dot6(roundedDiv64(int64(distance)*int64(fv[0]), dot))
	dy := f26dot6(roundedDiv64(int64(distance)*int64(fv[1]), dot))
	z := &h.zones[zoneIdx]
	z.cur[i].X += dx
	z.cur[i].Y += dy
	if touch {
		if fv[0] != 0 {
			z.cur[i].Flags |= flagTouchedX
		}
		if fv[1] != 0 {
			z.cur[i].Flags |= flagTouchedY
		}
	}
}

func (h *hinter) moveTo(zoneIdx, i int, newProj f26dot6, touch bool) {
	cur := h.curProj(h.zones[zoneIdx].cur[i])
	h.movePointBy(zoneIdx, i, newProj-cur, touch)
}

func (h *hinter) applyRound(x f26dot6) f26dot6 {
	if h.gs.roundOff || h.gs.roundPeriod == 0 {
		return x
	}
	neg := x < 0
	v := x
	if neg {
		v = -v
	}
	v -= h.gs.roundPhase
	if v >= 0 {
		v = ((v + h.gs.roundThreshold) / h.gs.roundPeriod) * h.gs.roundPeriod
	} else {
		v = 0
	}
	v += h.gs.roundPhase
	if neg {
		v = -v
	}
	return v
}

func (h *hinter) setRound(period, phase, threshold f26dot6) {
	h.gs.roundOff = false
	h.gs.roundPeriod, h.gs.roundPhase, h.gs.roundThreshold = period, phase, threshold
}

// decodeSuperRound unpacks the operand of SROUND/S45ROUND (§5 "Round to
// super grid / super grid 45").
func decodeSuperRound(n uint32, unit f26dot6) (period, phase, threshold f26dot6) {
	switch (n >> 6) & 0x3 {
	case 0:
		period = unit / 2
	case 1:
		period = unit
	case 2:
		period = unit * 2
	default:
		period = unit
	}
	phase = f26dot6((n >> 4) & 0x3)
	switch phase {
	case 0:
		phase = 0
	case 1:
		phase = period / 4
	case 2:
		phase = period / 2
	case 3:
		phase = period * 3 / 4
	}
	th := n & 0xf
	if th == 0 {
		threshold = period / 2
	} else {
		threshold = (f26dot6(th) - 4) * period / 8
	}
	return
}

func (h *hinter) cvtValue(n int32) f26dot6 {
	if h.inst == nil || n < 0 || int(n) >= len(h.inst.cvt) {
		return 0
	}
	return h.inst.cvt[n]
}

func (h *hinter) storageValue(n int32) int32 {
	if h.inst == nil || n < 0 || int(n) >= len(h.inst.storage) {
		return 0
	}
	return h.inst.storage[n]
}

func (h *hinter) setStorage(n, v int32) {
	if h.inst == nil || n < 0 || int(n) >= len(h.inst.storage) {
		return
	}
	h.inst.storage[n] = v
}

func (h *hinter) mppem() int32 {
	if h.inst == nil {
		return 0
	}
	return int32(h.inst.ppem)
}

func (h *hinter) step(op byte) error {
	switch {
	case op >= opPUSHB000 && op <= opPUSHB111:
		return h.pushBytes(int(op-opPUSHB000) + 1)
	case op >= opPUSHW000 && op <= opPUSHW111:
		return h.pushWords(int(op-opPUSHW000) + 1)
	case op >= opMDRP00000 && op <= opMDRP11111:
		return h.opMDRP(op)
	case op >= opMIRP00000 && op <= opMIRP11111:
		return h.opMIRP(op)
	}

	switch op {
	case opSVTCA0, opSVTCA1, opSPVTCA0, opSPVTCA1, opSFVTCA0, opSFVTCA1:
		axis := [2]f2dot14{1 << 14, 0}
		if op&1 != 0 {
			axis = [2]f2dot14{0, 1 << 14}
		}
		if op <= opSVTCA1 {
			h.gs.projVector, h.gs.freeVector = axis, axis
		} else if op <= opSPVTCA1 {
			h.gs.projVector = axis
		} else {
			h.gs.freeVector = axis
		}
		h.gs.dualVector = h.gs.projVector

	case opSPVTL0, opSPVTL1, opSFVTL0, opSFVTL1, opSDPVTL0, opSDPVTL1:
		p2, err := h.pop()
		if err != nil {
			return err
		}
		p1, err := h.pop()
		if err != nil {
			return err
		}
		z := h.zone(1)
		if int(p1) >= len(z.cur) || int(p2) >= len(z.cur) {
			return HintingError("point index out of range")
		}
		a, b := z.cur[p1], z.cur[p2]
		dx, dy := b.X-a.X, b.Y-a.Y
		if op&1 != 0 {
			dx, dy = -dy, dx
		}
		v := unitVector(dx, dy)
		switch op {
		case opSPVTL0, opSPVTL1:
			h.gs.projVector, h.gs.dualVector = v, v
		case opSFVTL0, opSFVTL1:
			h.gs.freeVector = v
		case opSDPVTL0, opSDPVTL1:
			oa, ob := h.zone(1).unhinted[p1], h.zone(1).unhinted[p2]
			odx, ody := ob.X-oa.X, ob.Y-oa.Y
			if op&1 != 0 {
				odx, ody = -ody, odx
			}
			h.gs.dualVector = unitVector(odx, ody)
			h.gs.projVector = v
		}

	case opSPVFS:
		y, err := h.pop()
		if err != nil {
			return err
		}
		x, err := h.pop()
		if err != nil {
			return err
		}
		h.gs.projVector = unitVector(f26dot6(x), f26dot6(y))
		h.gs.dualVector = h.gs.projVector
	case opSFVFS:
		y, err := h.pop()
		if err != nil {
			return err
		}
		x, err := h.pop()
		if err != nil {
			return err
		}
		h.gs.freeVector = unitVector(f26dot6(x), f26dot6(y))
	case opGPV:
		if err := h.push(int32(h.gs.projVector[0])); err != nil {
			return err
		}
		return h.push(int32(h.gs.projVector[1]))
	case opGFV:
		if err := h.push(int32(h.gs.freeVector[0])); err != nil {
			return err
		}
		return h.push(int32(h.gs.freeVector[1]))
	case opSFVTPV:
		h.gs.freeVector = h.gs.projVector

	case opISECT:
		return h.opISECT()

	case opSRP0, opSRP1, opSRP2:
		v, err := h.pop()
		if err != nil {
			return err
		}
		h.gs.rp[op-opSRP0] = int(v)
	case opSZP0, opSZP1, opSZP2:
		v, err := h.pop()
		if err != nil {
			return err
		}
		if v != 0 && v != 1 {
			return FormatError("bad zone number")
		}
		h.gs.zp[op-opSZP0] = int(v)
	case opSZPS:
		v, err := h.pop()
		if err != nil {
			return err
		}
		if v != 0 && v != 1 {
			return FormatError("bad zone number")
		}
		h.gs.zp = [3]int{int(v), int(v), int(v)}
	case opSLOOP:
		v, err := h.pop()
		if err != nil {
			return err
		}
		if v < 0 {
			return FormatError("negative loop count")
		}
		h.gs.loop = v
	case opRTG:
		h.setRound(1<<6, 0, 1<<5)
	case opRTHG:
		h.setRound(1<<6, 1<<5, 1<<5)
	case opRTDG:
		h.setRound(1<<5, 0, 1<<4)
	case opRUTG:
		h.setRound(1<<6, 1<<6-1, 1<<6-1)
	case opRDTG:
		h.setRound(1<<6, 0, 0)
	case opROFF:
		h.gs.roundOff = true
	case opSROUND:
		n, err := h.pop()
		if err != nil {
			return err
		}
		p, ph, t := decodeSuperRound(uint32(n), 1<<6)
		h.setRound(p, ph, t)
	case opS45ROUND:
		n, err := h.pop()
		if err != nil {
			return err
		}
		p, ph, t := decodeSuperRound(uint32(n), 46) // 64/sqrt(2) ~= 45.25
		h.setRound(p, ph, t)
	case opSMD:
		v, err := h.popf()
		if err != nil {
			return err
		}
		h.gs.minDistance = v
	case opELSE:
		return h.skipToElseOrEIF(false)
	case opJMPR:
		v, err := h.pop()
		if err != nil {
			return err
		}
		h.pc += int(v) - 1
	case opSCVTCI:
		v, err := h.popf()
		if err != nil {
			return err
		}
		h.gs.controlValueCutIn = v
	case opSSWCI:
		v, err := h.popf()
		if err != nil {
			return err
		}
		h.gs.singleWidthCutIn = v
	case opSSW:
		v, err := h.popf()
		if err != nil {
			return err
		}
		h.gs.singleWidthValue = v

	case opDUP:
		v, err := h.pop()
		if err != nil {
			return err
		}
		if err := h.push(v); err != nil {
			return err
		}
		return h.push(v)
	case opPOP:
		_, err := h.pop()
		return err
	case opCLEAR:
		h.top = 0
	case opSWAP:
		a, err := h.pop()
		if err != nil {
			return err
		}
		b, err := h.pop()
		if err != nil {
			return err
		}
		if err := h.push(a); err != nil {
			return err
		}
		return h.push(b)
	case opDEPTH:
		return h.push(int32(h.top))
	case opCINDEX, opMINDEX:
		v, err := h.pop()
		if err != nil {
			return err
		}
		idx := h.top - int(v)
		if idx < 0 || idx >= h.top {
			return HintingError("CINDEX/MINDEX out of range")
		}
		val := h.stack[idx]
		if op == opMINDEX {
			copy(h.stack[idx:h.top-1], h.stack[idx+1:h.top])
			h.stack[h.top-1] = val
			return nil
		}
		return h.push(val)
	case opROLL:
		if h.top < 3 {
			return HintingError("ROLL needs 3 elements")
		}
		a, b, c := h.stack[h.top-3], h.stack[h.top-2], h.stack[h.top-1]
		h.stack[h.top-3], h.stack[h.top-2], h.stack[h.top-1] = b, c, a
	case opALIGNPTS:
		return h.opALIGNPTS()
	case opUTP:
		v, err := h.pop()
		if err != nil {
			return err
		}
		z := h.zone(1)
		if int(v) >= len(z.cur) {
			return HintingError("UTP point out of range")
		}
		z.cur[v].Flags &^= flagTouchedX | flagTouchedY
	case opLOOPCALL:
		return h.opLOOPCALL()
	case opCALL:
		return h.opCall(1)
	case opFDEF:
		return h.opFDEF()
	case opENDF:
		return h.opENDF()
	case opIDEF:
		return h.opIDEF()
	case opMDAP0, opMDAP1:
		return h.opMDAP(op == opMDAP1)
	case opIUP0, opIUP1:
		return h.opIUP(op == opIUP0)
	case opSHP0, opSHP1:
		return h.opSHP(op == opSHP1)
	case opSHC0, opSHC1:
		return h.opSHC(op == opSHC1)
	case opSHZ0, opSHZ1:
		return h.opSHZ(op == opSHZ1)
	case opSHPIX:
		return h.opSHPIX()
	case opIP:
		return h.opIP()
	case opMSIRP0, opMSIRP1:
		return h.opMSIRP(op == opMSIRP1)
	case opALIGNRP:
		return h.opALIGNRP()
	case opMIAP0, opMIAP1:
		return h.opMIAP(op == opMIAP1)

	case opNPUSHB:
		if h.pc >= len(h.program) {
			return FormatError("NPUSHB truncated")
		}
		n := int(h.program[h.pc])
		h.pc++
		return h.pushBytes(n)
	case opNPUSHW:
		if h.pc >= len(h.program) {
			return FormatError("NPUSHW truncated")
		}
		n := int(h.program[h.pc])
		h.pc++
		return h.pushWords(n)
	case opWS:
		v, err := h.pop()
		if err != nil {
			return err
		}
		n, err := h.pop()
		if err != nil {
			return err
		}
		h.setStorage(n, v)
	case opRS:
		n, err := h.pop()
		if err != nil {
			return err
		}
		return h.push(h.storageValue(n))
	case opWCVTP:
		v, err := h.popf()
		if err != nil {
			return err
		}
		n, err := h.pop()
		if err != nil {
			return err
		}
		if h.inst != nil && n >= 0 && int(n) < len(h.inst.cvt) {
			h.inst.cvt[n] = v
		}
	case opWCVTF:
		v, err := h.pop()
		if err != nil {
			return err
		}
		n, err := h.pop()
		if err != nil {
			return err
		}
		if h.inst != nil && n >= 0 && int(n) < len(h.inst.cvt) {
			h.inst.cvt[n] = funitsToPixels(v, h.inst.scale)
		}
	case opRCVT:
		n, err := h.pop()
		if err != nil {
			return err
		}
		return h.push(int32(h.cvtValue(n)))
	case opGC0, opGC1:
		p, err := h.pop()
		if err != nil {
			return err
		}
		z := h.zone(2)
		if int(p) >= len(z.cur) {
			return HintingError("GC point out of range")
		}
		if op == opGC0 {
			return h.push(int32(h.curProj(z.cur[p])))
		}
		return h.push(int32(dotProduct(z.unhinted[p].X, z.unhinted[p].Y, h.gs.dualVector)))
	case opSCFS:
		v, err := h.popf()
		if err != nil {
			return err
		}
		p, err := h.pop()
		if err != nil {
			return err
		}
		z := h.zone(2)
		if int(p) >= len(z.cur) {
			return HintingError("SCFS point out of range")
		}
		h.moveTo(h.gs.zp[2], int(p), v, true)
	case opMD0, opMD1:
		p2, err := h.pop()
		if err != nil {
			return err
		}
		p1, err := h.pop()
		if err != nil {
			return err
		}
		zi0, zi1 := h.gs.zp[0], h.gs.zp[1]
		z0, z1 := &h.zones[zi0], &h.zones[zi1]
		if int(p1) >= len(z0.cur) || int(p2) >= len(z1.cur) {
			return HintingError("MD point out of range")
		}
		if op == opMD0 {
			return h.push(int32(h.origDist(zi0, int(p1), zi1, int(p2))))
		}
		return h.push(int32(h.curDist(z0.cur[p1], z1.cur[p2])))
	case opMPPEM:
		return h.push(h.mppem())
	case opMPS:
		return h.push(h.mppem())
	case opFLIPON:
		h.gs.autoFlip = true
	case opFLIPOFF:
		h.gs.autoFlip = false
	case opDEBUG:
		_, err := h.pop()
		return err

	case opLT, opLTEQ, opGT, opGTEQ, opEQ, opNEQ:
		b, err := h.pop()
		if err != nil {
			return err
		}
		a, err := h.pop()
		if err != nil {
			return err
		}
		var r bool
		switch op {
		case opLT:
			r = a < b
		case opLTEQ:
			r = a <= b
		case opGT:
			r = a > b
		case opGTEQ:
			r = a >= b
		case opEQ:
			r = a == b
		case opNEQ:
			r = a != b
		}
		return h.pushBool(r)
	case opODD, opEVEN:
		v, err := h.popf()
		if err != nil {
			return err
		}
		r := h.applyRound(v)
		odd := (int64(r)>>6)%2 != 0
		return h.pushBool(odd == (op == opODD))
	case opIF:
		v, err := h.pop()
		if err != nil {
			return err
		}
		if v == 0 {
			return h.skipToElseOrEIF(true)
		}
	case opEIF:
		// no-op: reached by falling through a true IF branch
	case opAND, opOR:
		b, err := h.pop()
		if err != nil {
			return err
		}
		a, err := h.pop()
		if err != nil {
			return err
		}
		if op == opAND {
			return h.pushBool(a != 0 && b != 0)
		}
		return h.pushBool(a != 0 || b != 0)
	case opNOT:
		a, err := h.pop()
		if err != nil {
			return err
		}
		return h.pushBool(a == 0)
	case opDELTAP1, opDELTAP2, opDELTAP3:
		return h.opDeltaP(op)
	case opSDB:
		v, err := h.pop()
		if err != nil {
			return err
		}
		h.gs.deltaBase = v
	case opSDS:
		v, err := h.pop()
		if err != nil {
			return err
		}
		h.gs.deltaShift = v

	case opADD:
		b, err := h.popf()
		if err != nil {
			return err
		}
		a, err := h.popf()
		if err != nil {
			return err
		}
		return h.push(int32(a + b))
	case opSUB:
		b, err := h.popf()
		if err != nil {
			return err
		}
		a, err := h.popf()
		if err != nil {
			return err
		}
		return h.push(int32(a - b))
	case opDIV:
		b, err := h.popf()
		if err != nil {
			return err
		}
		a, err := h.popf()
		if err != nil {
			return err
		}
		if b == 0 {
			return DivideByZero
		}
		return h.push(int32(f26dot6Div(a, b)))
	case opMUL:
		b, err := h.popf()
		if err != nil {
			return err
		}
		a, err := h.popf()
		if err != nil {
			return err
		}
		return h.push(int32(f26dot6Mul(a, b)))
	case opABS:
		a, err := h.popf()
		if err != nil {
			return err
		}
		return h.push(int32(absF(a)))
	case opNEG:
		a, err := h.popf()
		if err != nil {
			return err
		}
		return h.push(int32(-a))
	case opFLOOR:
		a, err := h.popf()
		if err != nil {
			return err
		}
		return h.push(int32((a >> 6) << 6))
	case opCEILING:
		a, err := h.popf()
		if err != nil {
			return err
		}
		return h.push(int32(((a + 63) >> 6) << 6))
	case opROUND00, opROUND01, opROUND10, opROUND11,
		opNROUND00, opNROUND01, opNROUND10, opNROUND11:
		a, err := h.popf()
		if err != nil {
			return err
		}
		if op >= opROUND00 && op <= opROUND11 {
			a = h.applyRound(a)
		}
		return h.push(int32(a))
	case opJROT, opJROF:
		v, err := h.pop()
		if err != nil {
			return err
		}
		e, err := h.pop()
		if err != nil {
			return err
		}
		want := op == opJROT
		if (e != 0) == want {
			h.pc += int(v) - 1
		}
	case opMAX, opMIN:
		b, err := h.pop()
		if err != nil {
			return err
		}
		a, err := h.pop()
		if err != nil {
			return err
		}
		if op == opMAX {
			if a > b {
				return h.push(a)
			}
			return h.push(b)
		}
		if a < b {
			return h.push(a)
		}
		return h.push(b)

	case opDELTAC1, opDELTAC2, opDELTAC3:
		return h.opDeltaC(op)
	case opSCANCTRL:
		v, err := h.pop()
		if err != nil {
			return err
		}
		h.gs.scanControl = v != 0
	case opSCANTYPE:
		_, err := h.pop()
		return err
	case opINSTCTRL:
		v, err := h.pop()
		if err != nil {
			return err
		}
		sel, err := h.pop()
		if err != nil {
			return err
		}
		if sel == 1 || sel == 2 {
			mask := uint8(1) << (sel - 1)
			if v != 0 {
				h.gs.instructControl |= mask
			} else {
				h.gs.instructControl &^= mask
			}
		}
	case opGETINFO:
		sel, err := h.pop()
		if err != nil {
			return err
		}
		var r int32
		if sel&getInfoVersion != 0 {
			r |= scalarVersion
		}
		// This package never applies a whole-instance rotation or stretch
		// transform, so those selector bits always report false.
		if sel&getInfoFontSmoothingGrayscale != 0 {
			// This rasterizer always antialiases, so the bit is
			// unconditionally true whenever it's asked for.
			r |= 0x1000
		}
		return h.push(r)
	case opFLIPPT:
		return h.opFlipPt()
	case opFLIPRGON, opFLIPRGOFF:
		return h.opFlipRange(op == opFLIPRGON)
	case opSANGW, opAA:
		_, err := h.pop()
		return err

	default:
		return UnsupportedError("opcode not implemented")
	}
	return nil
}

func (h *hinter) pushBool(b bool) error {
	if b {
		return h.push(1)
	}
	return h.push(0)
}

func unitVector(dx, dy f26dot6) [2]f2dot14 {
	if dx == 0 && dy == 0 {
		return [2]f2dot14{1 << 14, 0}
	}
	len2 := int64(dx)*int64(dx) + int64(dy)*int64(dy)
	l := isqrt(len2)
	if l == 0 {
		return [2]f2dot14{1 << 14, 0}
	}
	return [2]f2dot14{
		f2dot14(roundedDiv64(int64(dx)<<14, l)),
		f2dot14(roundedDiv64(int64(dy)<<14, l)),
	}
}

func isqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
