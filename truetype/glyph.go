// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// Point flags, as stored in the glyf table's per-point flag byte (§4.5) plus
// two bits this package reuses post-decode to record which axis the hinting
// VM has already touched for a given point (§4.7 "touch flags"). The decode
// bits are spent by the time hinting runs, so there is no collision.
const (
	flagOnCurve      = 1 << 0
	flagXShortVector = 1 << 1
	flagYShortVector = 1 << 2
	flagRepeat       = 1 << 3
	flagPositiveX    = 1 << 4 // same-as-previous when not short vector
	flagPositiveY    = 1 << 5 // same-as-previous when not short vector

	flagTouchedX = 1 << 6
	flagTouchedY = 1 << 7
)

// Composite glyph component flags (§4.5 supplement).
const (
	cArgsAreWords    = 1 << 0
	cArgsAreXY       = 1 << 1
	cRoundXYToGrid   = 1 << 2
	cHaveScale       = 1 << 3
	cMoreComponents  = 1 << 5
	cHaveXYScale     = 1 << 6
	cHaveTwoByTwo    = 1 << 7
	cHaveInstructions = 1 << 8
	cUseMyMetrics    = 1 << 9
)

// Point is a single point of a glyph outline, in one of three parallel
// co-ordinate spaces (§4.7 "Zone"): unscaled FUnits, scaled-but-unhinted
// 26.6 pixels, and the current (possibly hinted) 26.6 pixel position.
type Point struct {
	X, Y  f26dot6
	Flags uint32
}

// GlyphBuf holds the decoded outline of one glyph, scaled for one Instance,
// ready for hinting and/or curve flattening. Reusing a GlyphBuf across Load
// calls avoids reallocating its backing arrays; it is not safe for
// concurrent use (§"Concurrency model": scoped to one render call).
type GlyphBuf struct {
	font *Font
	inst *Instance

	// AdvanceWidth and LeftSideBearing are in 26.6 pixels, scaled for inst.
	AdvanceWidth    f26dot6
	LeftSideBearing f26dot6

	// Point holds the (possibly hinted) current positions, Unhinted the
	// scaled-but-unhinted positions and InFontUnits the original unscaled
	// FUnit positions of the same points, index-for-index. End[i] is the
	// index of the last point (inclusive) of contour i.
	Point       []Point
	Unhinted    []Point
	InFontUnits []Point
	End         []int

	phantom [4]Point

	compositeDepth int
}

const maxCompositeDepth = 8

// Load decodes glyph i of f, scaling it for inst (inst may be nil, for an
// unhinted load at a fixed scale of 1 FUnit = 1 FUnit, used by callers that
// only want the outline in font units). Load does not run the glyph's own
// hinting instructions: they are skipped, and Point holds the same scaled
// positions as Unhinted.
func (g *GlyphBuf) Load(f *Font, inst *Instance, i Index) error {
	g.font = f
	g.inst = inst
	g.Point = g.Point[:0]
	g.Unhinted = g.Unhinted[:0]
	g.InFontUnits = g.InFontUnits[:0]
	g.End = g.End[:0]
	g.compositeDepth = 0
	return g.load(i, true)
}

func (g *GlyphBuf) scale(funits int32) f26dot6 {
	if g.inst == nil {
		return f26dot6(funits << 6)
	}
	return funitsToPixels(funits, g.inst.scale)
}

func (g *GlyphBuf) load(i Index, useMyMetrics bool) error {
	if int(i) >= g.font.numGlyphs {
		return FormatError("glyph index out of range")
	}
	loca := g.font.table(g.font.loca)
	glyf := g.font.table(g.font.glyf)

	var offset, next uint32
	if g.font.locaLong {
		if 4*int(i)+8 > len(loca) {
			return FormatError("loca table truncated")
		}
		offset = u32(loca, 4*int(i))
		next = u32(loca, 4*int(i)+4)
	} else {
		if 2*int(i)+4 > len(loca) {
			return FormatError("loca table truncated")
		}
		offset = 2 * uint32(u16(loca, 2*int(i)))
		next = 2 * uint32(u16(loca, 2*int(i)+2))
	}
	if next < offset || uint64(next) > uint64(len(glyf)) {
		return FormatError("glyf table truncated")
	}

	hmtx := g.font.HMetric(i)
	lsb := g.scale(hmtx.LeftSideBearing)
	aw := g.scale(hmtx.AdvanceWidth)

	if offset == next {
		// Empty glyph (e.g. the space character): no outline, but phantom
		// points and advance width are still well-defined (§4.4).
		if useMyMetrics {
			g.LeftSideBearing, g.AdvanceWidth = lsb, aw
		}
		return g.finish(Bounds{}, hmtx, useMyMetrics)
	}

	b := glyf[offset:next]
	if len(b) < 10 {
		return FormatError("glyph header truncated")
	}
	d := data(b[0:10])
	numberOfContours := int(d.i16())
	bounds := Bounds{
		XMin: int32(d.i16()), YMin: int32(d.i16()),
		XMax: int32(d.i16()), YMax: int32(d.i16()),
	}

	if useMyMetrics {
		g.LeftSideBearing, g.AdvanceWidth = lsb, aw
	}

	if numberOfContours >= 0 {
		if err := g.loadSimple(b[10:], numberOfContours); err != nil {
			return err
		}
	} else if numberOfContours == -1 {
		if err := g.loadCompound(b[10:]); err != nil {
			return err
		}
	} else {
		return UnsupportedError("glyph with fewer than -1 contours")
	}

	return g.finish(bounds, hmtx, useMyMetrics)
}

// finish appends the four phantom points (§4.8) scaled for this glyph's own
// metrics, recording them as the last four entries of every parallel array.
// Only called once per top-level Load, by the outermost load frame, via the
// useMyMetrics bookkeeping threaded through loadCompound.
func (g *GlyphBuf) finish(bounds Bounds, hmtx HMetric, top bool) error {
	if !top {
		return nil
	}
	vm := g.font.unscaledVMetric(bounds.YMax)
	funits := [4]Point{
		{X: f26dot6((hmtx.LeftSideBearing - bounds.XMin) << 6), Y: 0},
		{X: f26dot6((hmtx.LeftSideBearing - bounds.XMin + hmtx.AdvanceWidth) << 6), Y: 0},
		{X: 0, Y: f26dot6((bounds.YMax + vm.TopSideBearing) << 6)},
		{X: 0, Y: f26dot6((bounds.YMax + vm.TopSideBearing - vm.AdvanceHeight) << 6)},
	}
	for j, p := range funits {
		g.InFontUnits = append(g.InFontUnits, Point{X: p.X, Y: p.Y})
		sp := Point{X: g.scaleFUFixed(p.X), Y: g.scaleFUFixed(p.Y)}
		g.Unhinted = append(g.Unhinted, sp)
		g.Point = append(g.Point, sp)
		g.phantom[j] = sp
	}
	return nil
}

// scaleFUFixed scales a value that is already shifted 6 bits (i.e. an
// f26dot6 holding a FUnit integer, as produced inline above) by the
// instance's FUnit-to-pixel scale.
func (g *GlyphBuf) scaleFUFixed(x f26dot6) f26dot6 {
	if g.inst == nil {
		return x
	}
	return f26dot6(fixMul(int64(x), int64(g.inst.scale), 22))
}

func (g *GlyphBuf) loadSimple(b []byte, numberOfContours int) error {
	d := data(b)
	if len(b) < 2*numberOfContours+2 {
		return FormatError("contour end points truncated")
	}
	base := len(g.Point)
	endPts := make([]int, numberOfContours)
	for i := range endPts {
		endPts[i] = int(d.u16())
	}
	numPoints := 0
	if numberOfContours > 0 {
		numPoints = endPts[numberOfContours-1] + 1
	}
	insLen := int(d.u16())
	if len(d) < insLen {
		return FormatError("instructions truncated")
	}
	d.skip(insLen) // the glyph's hinting instructions are skipped, not run

	flags := make([]byte, 0, numPoints)
	for len(flags) < numPoints {
		if len(d) < 1 {
			return FormatError("flags truncated")
		}
		f := d.u8()
		flags = append(flags, f)
		if f&flagRepeat != 0 {
			if len(d) < 1 {
				return FormatError("flag repeat count truncated")
			}
			n := d.u8()
			for j := byte(0); j < n && len(flags) < numPoints; j++ {
				flags = append(flags, f)
			}
		}
	}

	var x int32
	xs := make([]int32, numPoints)
	for i := 0; i < numPoints; i++ {
		switch {
		case flags[i]&flagXShortVector != 0:
			if len(d) < 1 {
				return FormatError("x coordinate truncated")
			}
			dx := int32(d.u8())
			if flags[i]&flagPositiveX == 0 {
				dx = -dx
			}
			x += dx
		case flags[i]&flagPositiveX == 0:
			if len(d) < 2 {
				return FormatError("x coordinate truncated")
			}
			x += int32(d.i16())
		}
		xs[i] = x
	}
	var y int32
	ys := make([]int32, numPoints)
	for i := 0; i < numPoints; i++ {
		switch {
		case flags[i]&flagYShortVector != 0:
			if len(d) < 1 {
				return FormatError("y coordinate truncated")
			}
			dy := int32(d.u8())
			if flags[i]&flagPositiveY == 0 {
				dy = -dy
			}
			y += dy
		case flags[i]&flagPositiveY == 0:
			if len(d) < 2 {
				return FormatError("y coordinate truncated")
			}
			y += int32(d.i16())
		}
		ys[i] = y
	}

	for i := 0; i < numPoints; i++ {
		fl := uint32(flags[i] & flagOnCurve)
		g.InFontUnits = append(g.InFontUnits, Point{X: f26dot6(xs[i] << 6), Y: f26dot6(ys[i] << 6), Flags: fl})
		sp := Point{X: g.scale(xs[i]), Y: g.scale(ys[i]), Flags: fl}
		g.Unhinted = append(g.Unhinted, sp)
		g.Point = append(g.Point, sp)
	}
	for _, e := range endPts {
		g.End = append(g.End, base+e)
	}
	return nil
}

// loadCompound decodes a composite glyph (§4.5 supplement, documented in
// SPEC_FULL.md as a deliberate addition beyond the distilled decoder scope:
// encountering one need not be a hard UnsupportedFont error, since decoding
// it is no more than translating and re-emitting a component's own points).
func (g *GlyphBuf) loadCompound(b []byte) error {
	g.compositeDepth++
	if g.compositeDepth > maxCompositeDepth {
		return UnsupportedError("composite glyph nesting too deep")
	}
	defer func() { g.compositeDepth-- }()

	d := data(b)
	for {
		if len(d) < 4 {
			return FormatError("composite component header truncated")
		}
		flags := d.u16()
		componentGlyphIndex := Index(d.u16())

		var dx, dy f26dot6
		if flags&cArgsAreWords != 0 {
			if len(d) < 4 {
				return FormatError("composite args truncated")
			}
			a, b := d.i16(), d.i16()
			if flags&cArgsAreXY != 0 {
				dx, dy = g.scale(int32(a)), g.scale(int32(b))
			}
		} else {
			if len(d) < 2 {
				return FormatError("composite args truncated")
			}
			a, b := int8(d.u8()), int8(d.u8())
			if flags&cArgsAreXY != 0 {
				dx, dy = g.scale(int32(a)), g.scale(int32(b))
			}
		}

		var xx, yy f2dot14 = 1 << 14, 1 << 14
		var xy, yx f2dot14
		switch {
		case flags&cHaveTwoByTwo != 0:
			if len(d) < 8 {
				return FormatError("composite 2x2 truncated")
			}
			xx, xy, yx, yy = f2dot14(d.i16()), f2dot14(d.i16()), f2dot14(d.i16()), f2dot14(d.i16())
		case flags&cHaveXYScale != 0:
			if len(d) < 4 {
				return FormatError("composite xy scale truncated")
			}
			xx, yy = f2dot14(d.i16()), f2dot14(d.i16())
		case flags&cHaveScale != 0:
			if len(d) < 2 {
				return FormatError("composite scale truncated")
			}
			xx = f2dot14(d.i16())
			yy = xx
		}

		base := len(g.Point)
		child := &GlyphBuf{font: g.font, inst: g.inst, compositeDepth: g.compositeDepth}
		if err := child.load(componentGlyphIndex, false); err != nil {
			return err
		}
		for i, p := range child.Point {
			tx := fixMul(int64(p.X), int64(xx), 14) + fixMul(int64(p.Y), int64(yx), 14)
			ty := fixMul(int64(p.X), int64(xy), 14) + fixMul(int64(p.Y), int64(yy), 14)
			np := Point{X: f26dot6(tx) + dx, Y: f26dot6(ty) + dy, Flags: p.Flags}
			g.Point = append(g.Point, np)
			g.Unhinted = append(g.Unhinted, np)
			g.InFontUnits = append(g.InFontUnits, child.InFontUnits[i])
		}
		for _, e := range child.End {
			g.End = append(g.End, base+e)
		}

		// cHaveInstructions signals a trailing composite-level hinting
		// program after the last component, and cUseMyMetrics lets a
		// component donate its own advance/bearings to the parent glyph;
		// neither is modeled here, since this package always synthesizes
		// phantom points from the composite's own hmtx entry in finish.

		if flags&cMoreComponents == 0 {
			break
		}
	}
	return nil
}
