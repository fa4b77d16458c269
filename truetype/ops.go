// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// This file implements the point-movement, function-call and delta-
// exception opcode families referenced from interp.go's dispatch table.

func (h *hinter) opFDEF() error {
	n, err := h.pop()
	if err != nil {
		return err
	}
	start := h.pc
	depth := 0
	for h.pc < len(h.program) {
		op := h.program[h.pc]
		if op == opFDEF {
			depth++
		} else if op == opENDF {
			if depth == 0 {
				// The stored body includes its terminating ENDF byte, so
				// that executing a called function naturally runs opENDF
				// and returns control to the caller via returnFromCall.
				body := h.program[start : h.pc+1]
				h.pc++
				h.font.functions[n] = body
				return nil
			}
			depth--
		}
		nb, err := h.operandBytes(op)
		if err != nil {
			return err
		}
		h.pc += 1 + nb
	}
	return FormatError("unterminated FDEF")
}

// opIDEF defines a replacement for an otherwise-unimplemented opcode. This
// package does not execute IDEF bodies (no font in the wild is known to
// rely on one for the opcode set implemented here); IDEF is parsed so its
// body bytes don't desynchronize the surrounding instruction stream.
func (h *hinter) opIDEF() error {
	if _, err := h.pop(); err != nil {
		return err
	}
	depth := 0
	for h.pc < len(h.program) {
		op := h.program[h.pc]
		if op == opFDEF || op == opIDEF {
			depth++
		} else if op == opENDF {
			if depth == 0 {
				h.pc++
				return nil
			}
			depth--
		}
		nb, err := h.operandBytes(op)
		if err != nil {
			return err
		}
		h.pc += 1 + nb
	}
	return FormatError("unterminated IDEF")
}

func (h *hinter) opENDF() error {
	if len(h.callStack) == 0 {
		return FormatError("ENDF outside function call")
	}
	return h.returnFromCall()
}

func (h *hinter) opCall(loop int32) error {
	n, err := h.pop()
	if err != nil {
		return err
	}
	return h.enterFunction(n, loop)
}

func (h *hinter) enterFunction(n, loop int32) error {
	body, ok := h.font.functions[n]
	if !ok {
		return FormatError("call to undefined function")
	}
	if len(h.callStack) >= maxCallStackDepth {
		return HintingAborted
	}
	h.callStack = append(h.callStack, callEntry{program: h.program, pc: h.pc, fn: n, loop: loop})
	h.program, h.pc = body, 0
	return nil
}

func (h *hinter) opLOOPCALL() error {
	n, err := h.pop()
	if err != nil {
		return err
	}
	count, err := h.pop()
	if err != nil {
		return err
	}
	if count <= 0 {
		return nil
	}
	return h.enterFunction(n, count)
}

// returnFromCall pops the call stack; a LOOPCALL frame with remaining
// iterations re-enters the same function body instead of returning to the
// caller.
func (h *hinter) returnFromCall() error {
	top := len(h.callStack) - 1
	frame := h.callStack[top]
	frame.loop--
	if frame.loop > 0 {
		h.callStack[top] = frame
		h.program, h.pc = h.font.functions[frame.fn], 0
		return nil
	}
	h.callStack = h.callStack[:top]
	h.program, h.pc = frame.program, frame.pc
	return nil
}

func (h *hinter) opMDAP(round bool) error {
	p, err := h.pop()
	if err != nil {
		return err
	}
	z := h.zone(1)
	if int(p) >= len(z.cur) {
		return HintingError("MDAP point out of range")
	}
	cur := h.curProj(z.cur[p])
	dist := cur
	if round {
		dist = h.applyRound(cur)
	}
	h.moveTo(h.gs.zp[1], int(p), dist, true)
	h.gs.rp[0], h.gs.rp[1] = int(p), int(p)
	return nil
}

func (h *hinter) opMIAP(useCutIn bool) error {
	n, err := h.pop()
	if err != nil {
		return err
	}
	p, err := h.pop()
	if err != nil {
		return err
	}
	z := h.zone(1)
	if int(p) >= len(z.cur) {
		return HintingError("MIAP point out of range")
	}
	target := h.cvtValue(n)
	if h.gs.zp[1] == 0 {
		pt := Point{
			X: f26dot6(fixMul(int64(target), int64(h.gs.freeVector[0]), 14)),
			Y: f26dot6(fixMul(int64(target), int64(h.gs.freeVector[1]), 14)),
		}
		z.cur[p], z.unhinted[p] = pt, pt
	}
	orig := h.curProj(z.cur[p])
	dist := target
	if useCutIn && absF(dist-orig) > h.gs.controlValueCutIn {
		dist = orig
	}
	dist = h.applyRound(dist)
	h.moveTo(h.gs.zp[1], int(p), dist, true)
	h.gs.rp[0], h.gs.rp[1] = int(p), int(p)
	return nil
}

func (h *hinter) opMDRP(op byte) error {
	p, err := h.pop()
	if err != nil {
		return err
	}
	bits := op - opMDRP00000
	round := bits&0x04 != 0
	minDist := bits&0x08 != 0
	setRP0 := bits&0x10 != 0

	zp0, zp1 := h.gs.zp[0], h.gs.zp[1]
	if h.gs.rp[0] >= len(h.zones[zp0].cur) || int(p) >= len(h.zones[zp1].cur) {
		return HintingError("MDRP point out of range")
	}
	rp0pt := h.zones[zp0].cur[h.gs.rp[0]]
	dist := h.origDist(zp0, h.gs.rp[0], zp1, int(p))

	if h.gs.singleWidthCutIn > 0 && absF(absF(dist)-h.gs.singleWidthValue) < h.gs.singleWidthCutIn {
		dist = sign(dist) * h.gs.singleWidthValue
	}
	if round {
		dist = sign(dist) * h.applyRound(absF(dist))
	}
	if minDist && absF(dist) < h.gs.minDistance {
		dist = sign(dist) * h.gs.minDistance
	}

	newProj := h.curProj(rp0pt) + dist
	h.moveTo(zp1, int(p), newProj, true)

	h.gs.rp[1] = h.gs.rp[0]
	h.gs.rp[2] = int(p)
	if setRP0 {
		h.gs.rp[0] = int(p)
	}
	return nil
}

func (h *hinter) opMIRP(op byte) error {
	n, err := h.pop()
	if err != nil {
		return err
	}
	p, err := h.pop()
	if err != nil {
		return err
	}
	bits := op - opMIRP00000
	round := bits&0x04 != 0
	minDist := bits&0x08 != 0
	setRP0 := bits&0x10 != 0

	zp0, zp1 := h.gs.zp[0], h.gs.zp[1]
	if h.gs.rp[0] >= len(h.zones[zp0].cur) || int(p) >= len(h.zones[zp1].cur) {
		return HintingError("MIRP point out of range")
	}
	rp0pt := h.zones[zp0].cur[h.gs.rp[0]]
	origDist := h.origDist(zp0, h.gs.rp[0], zp1, int(p))

	cvtDist := h.cvtValue(n)
	if h.gs.autoFlip && sign(cvtDist) != sign(origDist) && origDist != 0 {
		cvtDist = -cvtDist
	}
	if h.gs.singleWidthCutIn > 0 && absF(cvtDist-origDist) < h.gs.singleWidthCutIn {
		cvtDist = sign(origDist) * h.gs.singleWidthValue
	}
	dist := cvtDist
	if minDist && absF(dist) < h.gs.minDistance {
		dist = sign(dist) * h.gs.minDistance
	}
	if round {
		dist = sign(dist) * h.applyRound(absF(dist))
	}

	newProj := h.curProj(rp0pt) + dist
	h.moveTo(zp1, int(p), newProj, true)

	h.gs.rp[1] = h.gs.rp[0]
	h.gs.rp[2] = int(p)
	if setRP0 {
		h.gs.rp[0] = int(p)
	}
	return nil
}

func (h *hinter) opMSIRP(setRP0 bool) error {
	d, err := h.popf()
	if err != nil {
		return err
	}
	p, err := h.pop()
	if err != nil {
		return err
	}
	zp0, zp1 := h.gs.zp[0], h.gs.zp[1]
	if h.gs.rp[0] >= len(h.zones[zp0].cur) || int(p) >= len(h.zones[zp1].cur) {
		return HintingError("MSIRP point out of range")
	}
	newProj := h.curProj(h.zones[zp0].cur[h.gs.rp[0]]) + d
	h.moveTo(zp1, int(p), newProj, true)
	h.gs.rp[1] = h.gs.rp[0]
	h.gs.rp[2] = int(p)
	if setRP0 {
		h.gs.rp[0] = int(p)
	}
	return nil
}

func (h *hinter) opALIGNRP() error {
	zp0, zp1 := h.gs.zp[0], h.gs.zp[1]
	if h.gs.rp[0] >= len(h.zones[zp0].cur) {
		return HintingError("ALIGNRP reference point out of range")
	}
	ref := h.zones[zp0].cur[h.gs.rp[0]]
	for i := int32(0); i < h.gs.loop; i++ {
		p, err := h.pop()
		if err != nil {
			return err
		}
		if int(p) >= len(h.zones[zp1].cur) {
			return HintingError("ALIGNRP point out of range")
		}
		h.moveTo(zp1, int(p), h.curProj(ref), true)
	}
	h.gs.loop = 1
	return nil
}

func (h *hinter) opALIGNPTS() error {
	p2, err := h.pop()
	if err != nil {
		return err
	}
	p1, err := h.pop()
	if err != nil {
		return err
	}
	zp0, zp1 := h.gs.zp[0], h.gs.zp[1]
	if int(p1) >= len(h.zones[zp0].cur) || int(p2) >= len(h.zones[zp1].cur) {
		return HintingError("ALIGNPTS point out of range")
	}
	mid := (h.curProj(h.zones[zp0].cur[p1]) + h.curProj(h.zones[zp1].cur[p2])) / 2
	h.moveTo(zp0, int(p1), mid, true)
	h.moveTo(zp1, int(p2), mid, true)
	return nil
}

func (h *hinter) opISECT() error {
	b1, err := h.pop()
	if err != nil {
		return err
	}
	b0, err := h.pop()
	if err != nil {
		return err
	}
	a1, err := h.pop()
	if err != nil {
		return err
	}
	a0, err := h.pop()
	if err != nil {
		return err
	}
	p, err := h.pop()
	if err != nil {
		return err
	}
	z2, z1 := h.zone(0), h.zone(1)
	if int(a0) >= len(z1.cur) || int(a1) >= len(z1.cur) || int(b0) >= len(z2.cur) || int(b1) >= len(z2.cur) {
		return HintingError("ISECT point out of range")
	}
	pa0, pa1 := z1.cur[a0], z1.cur[a1]
	pb0, pb1 := z2.cur[b0], z2.cur[b1]
	x, y, ok := lineIntersect(pa0, pa1, pb0, pb1)
	if !ok {
		x, y = (pa0.X+pa1.X)/2, (pa0.Y+pa1.Y)/2
	}
	z0 := h.zone(1)
	if int(p) >= len(z0.cur) {
		return HintingError("ISECT target point out of range")
	}
	z0.cur[p] = Point{X: x, Y: y, Flags: z0.cur[p].Flags | flagTouchedX | flagTouchedY}
	return nil
}

func lineIntersect(a0, a1, b0, b1 Point) (x, y f26dot6, ok bool) {
	dax, day := int64(a1.X-a0.X), int64(a1.Y-a0.Y)
	dbx, dby := int64(b1.X-b0.X), int64(b1.Y-b0.Y)
	denom := dax*dby - day*dbx
	if denom == 0 {
		return 0, 0, false
	}
	dx, dy := int64(b0.X-a0.X), int64(b0.Y-a0.Y)
	t := (dx*dby - dy*dbx) << 6 / denom
	return a0.X + f26dot6(t*dax>>6), a0.Y + f26dot6(t*day>>6), true
}

// moveAlongFreedomOnly moves a point without changing its projected
// component, used by SHP/SHC/SHZ/SHPIX which displace points by an amount
// measured along the freedom vector directly rather than recomputing a
// target projection.
func (h *hinter) moveAlongFreedomOnly(zoneIdx, i int, distance f26dot6, touch bool) {
	h.movePointBy(zoneIdx, i, distance, touch)
}

func (h *hinter) opSHP(useRP2 bool) error {
	zp0, zp1 := h.gs.zp[0], h.gs.zp[1]
	rp := h.gs.rp[0]
	if useRP2 {
		rp = h.gs.rp[2]
	}
	if rp >= len(h.zones[zp0].cur) {
		return HintingError("SHP reference point out of range")
	}
	ref := h.zones[zp0].cur[rp]
	for i := int32(0); i < h.gs.loop; i++ {
		p, err := h.pop()
		if err != nil {
			return err
		}
		if int(p) >= len(h.zones[zp1].cur) {
			return HintingError("SHP point out of range")
		}
		shift := h.origDist(zp0, rp, zp1, int(p))
		h.moveAlongFreedomOnly(zp1, int(p), h.curProj(ref)+shift-h.curProj(h.zones[zp1].cur[p]), true)
	}
	h.gs.loop = 1
	return nil
}

func (h *hinter) opSHC(useRP2 bool) error {
	c, err := h.pop()
	if err != nil {
		return err
	}
	zp0, zp1 := h.gs.zp[0], h.gs.zp[1]
	rp := h.gs.rp[0]
	if useRP2 {
		rp = h.gs.rp[2]
	}
	if rp >= len(h.zones[zp0].cur) {
		return HintingError("SHC reference point out of range")
	}
	ref := h.zones[zp0].cur[rp]
	z := h.zone(1)
	start := 0
	if int(c) >= len(z.end) {
		return HintingError("SHC contour out of range")
	}
	if c > 0 {
		start = z.end[c-1] + 1
	}
	end := z.end[c]
	for i := start; i <= end && i < len(z.cur); i++ {
		shift := h.origDist(zp0, rp, zp1, i)
		h.moveAlongFreedomOnly(zp1, i, h.curProj(ref)+shift-h.curProj(z.cur[i]), true)
	}
	return nil
}

func (h *hinter) opSHZ(useRP2 bool) error {
	e, err := h.pop()
	if err != nil {
		return err
	}
	zp0 := h.gs.zp[0]
	rp := h.gs.rp[0]
	if useRP2 {
		rp = h.gs.rp[2]
	}
	if rp >= len(h.zones[zp0].cur) || (e != 0 && e != 1) {
		return HintingError("SHZ arguments out of range")
	}
	ref := h.zones[zp0].cur[rp]
	z := &h.zones[e]
	for i := range z.cur {
		shift := h.origDist(zp0, rp, int(e), i)
		h.moveAlongFreedomOnly(int(e), i, h.curProj(ref)+shift-h.curProj(z.cur[i]), true)
	}
	return nil
}

func (h *hinter) opSHPIX() error {
	d, err := h.popf()
	if err != nil {
		return err
	}
	zp1 := h.gs.zp[1]
	z := h.zone(1)
	for i := int32(0); i < h.gs.loop; i++ {
		p, err := h.pop()
		if err != nil {
			return err
		}
		if int(p) >= len(z.cur) {
			return HintingError("SHPIX point out of range")
		}
		h.moveAlongFreedomOnly(zp1, int(p), d, true)
	}
	h.gs.loop = 1
	return nil
}

func (h *hinter) opIP() error {
	zp0, zp1, zp2 := h.gs.zp[0], h.gs.zp[1], h.gs.zp[2]
	rp1, rp2 := h.gs.rp[1], h.gs.rp[2]
	if rp1 >= len(h.zones[zp0].cur) || rp2 >= len(h.zones[zp1].cur) {
		return HintingError("IP reference points out of range")
	}
	curA, curB := h.zones[zp0].cur[rp1], h.zones[zp1].cur[rp2]
	origTotal := h.origDist(zp0, rp1, zp1, rp2)
	curTotal := h.curDist(curA, curB)
	for i := int32(0); i < h.gs.loop; i++ {
		p, err := h.pop()
		if err != nil {
			return err
		}
		z := h.zone(2)
		if int(p) >= len(z.cur) {
			return HintingError("IP point out of range")
		}
		origP := h.origDist(zp0, rp1, zp2, int(p))
		var ratio f26dot6
		if origTotal != 0 {
			ratio = f26dot6Div(origP, origTotal)
		}
		newDist := f26dot6Mul(ratio, curTotal)
		h.moveTo(zp2, int(p), h.curProj(curA)+newDist, true)
	}
	h.gs.loop = 1
	return nil
}

// opIUP interpolates untouched points between touched neighbors along one
// axis, the final pass of TrueType hinting that lets unhinted curve points
// follow their touched contour endpoints.
func (h *hinter) opIUP(yAxis bool) error {
	z := h.zone(1)
	touchedFlag := uint32(flagTouchedX)
	if yAxis {
		touchedFlag = flagTouchedY
	}
	start := 0
	for _, end := range z.end {
		h.iupContour(z, start, end, touchedFlag, yAxis)
		start = end + 1
	}
	return nil
}

func (h *hinter) iupContour(z *zoneData, start, end int, touchedFlag uint32, yAxis bool) {
	n := end - start + 1
	if n <= 0 {
		return
	}
	firstTouched := -1
	for i := start; i <= end; i++ {
		if z.cur[i].Flags&touchedFlag != 0 {
			firstTouched = i
			break
		}
	}
	if firstTouched < 0 {
		return // nothing touched in this contour; leave it as-is
	}
	prevTouched := firstTouched
	i := firstTouched + 1
	for count := 0; count < n; count, i = count+1, i+1 {
		idx := start + (i-start+n)%n
		if z.cur[idx].Flags&touchedFlag == 0 {
			continue
		}
		h.iupInterpolateRange(z, prevTouched, idx, start, end, touchedFlag, yAxis)
		prevTouched = idx
	}
	h.iupInterpolateRange(z, prevTouched, firstTouched, start, end, touchedFlag, yAxis)
}

// iupInterpolateRange fills in the untouched points strictly between a and
// b (wrapping around the contour) by interpolating/shifting proportionally
// to their position in the original unscaled (font unit) outline.
func (h *hinter) iupInterpolateRange(z *zoneData, a, b, start, end int, touchedFlag uint32, yAxis bool) {
	n := end - start + 1
	if n <= 0 || a == b {
		return
	}
	// IUP never runs against the twilight zone (zone 0), so origFUnits is
	// always populated here; using unscaled FUnit coordinates rather than
	// the scaled-but-unhinted ones avoids compounding rounding already
	// baked into the latter.
	origAt := func(i int) f26dot6 {
		if yAxis {
			return z.origFUnits[i].Y
		}
		return z.origFUnits[i].X
	}
	curAt := func(i int) f26dot6 {
		if yAxis {
			return z.cur[i].Y
		}
		return z.cur[i].X
	}
	setAt := func(i int, v f26dot6) {
		if yAxis {
			z.cur[i].Y = v
		} else {
			z.cur[i].X = v
		}
	}
	oa, ob := origAt(a), origAt(b)
	ca, cb := curAt(a), curAt(b)
	loOrig, hiOrig := oa, ob
	if oa > ob {
		loOrig, hiOrig = ob, oa
		ca, cb = cb, ca
	}
	ra := a - start
	for k := (ra + 1) % n; ; k = (k + 1) % n {
		idx := start + k
		if idx == a || idx == b {
			break
		}
		op := origAt(idx)
		switch {
		case op <= loOrig:
			setAt(idx, ca+f26dot6(fixMul(int64(op-loOrig), int64(h.inst.scale), 22)))
		case op >= hiOrig:
			setAt(idx, cb+f26dot6(fixMul(int64(op-hiOrig), int64(h.inst.scale), 22)))
		default:
			ratio := f26dot6Div(op-loOrig, hiOrig-loOrig)
			setAt(idx, ca+f26dot6Mul(ratio, cb-ca))
		}
	}
}

// deltaMagnitude converts a DELTA exception's low nibble to a signed 1/8
// pixel offset in 26.6 units, per the original implementation's delta
// table (ppem-keyed nibble lookup).
func deltaMagnitude(nibble int32, shift int32) f26dot6 {
	v := nibble - 8
	if v >= 0 {
		v++
	}
	// shift encodes a power-of-two scale: 0 => whole-pixel steps ... matches
	// deltaShift's documented range of 0-7 (1 down to 1/128 px).
	num := f26dot6(v) << 6
	return num >> shift
}

func (h *hinter) opDeltaP(op byte) error {
	n, err := h.pop()
	if err != nil {
		return err
	}
	group := int32(op-opDELTAP1) * 16
	z := h.zone(1)
	for i := int32(0); i < n; i++ {
		arg, err := h.pop()
		if err != nil {
			return err
		}
		p, err := h.pop()
		if err != nil {
			return err
		}
		pointNibble := (arg >> 4) & 0xf
		sizeNibble := arg & 0xf
		targetPPEM := h.gs.deltaBase + group + pointNibble
		if h.mppem() == targetPPEM {
			if int(p) >= len(z.cur) {
				continue
			}
			h.moveAlongFreedomOnly(h.gs.zp[1], int(p), deltaMagnitude(sizeNibble, h.gs.deltaShift), true)
		}
	}
	return nil
}

func (h *hinter) opDeltaC(op byte) error {
	n, err := h.pop()
	if err != nil {
		return err
	}
	group := int32(op-opDELTAC1) * 16
	for i := int32(0); i < n; i++ {
		arg, err := h.pop()
		if err != nil {
			return err
		}
		c, err := h.pop()
		if err != nil {
			return err
		}
		cNibble := (arg >> 4) & 0xf
		sizeNibble := arg & 0xf
		targetPPEM := h.gs.deltaBase + group + cNibble
		if h.mppem() == targetPPEM && h.inst != nil && c >= 0 && int(c) < len(h.inst.cvt) {
			h.inst.cvt[c] += deltaMagnitude(sizeNibble, h.gs.deltaShift)
		}
	}
	return nil
}

func (h *hinter) opFlipPt() error {
	z := h.zone(1)
	for i := int32(0); i < h.gs.loop; i++ {
		p, err := h.pop()
		if err != nil {
			return err
		}
		if int(p) >= len(z.cur) {
			return HintingError("FLIPPT point out of range")
		}
		z.cur[p].Flags ^= flagOnCurve
	}
	h.gs.loop = 1
	return nil
}

func (h *hinter) opFlipRange(on bool) error {
	hi, err := h.pop()
	if err != nil {
		return err
	}
	lo, err := h.pop()
	if err != nil {
		return err
	}
	z := h.zone(1)
	for i := lo; i <= hi; i++ {
		if int(i) >= len(z.cur) {
			return HintingError("FLIPRG point out of range")
		}
		if on {
			z.cur[i].Flags |= flagOnCurve
		} else {
			z.cur[i].Flags &^= flagOnCurve
		}
	}
	return nil
}
