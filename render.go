// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package ttfraster renders TrueType glyphs into 8-bit grayscale coverage
// bitmaps. It ties together two lower-level packages: ttfraster/truetype
// parses the sfnt container and runs the font-level hinting bytecode (the
// font program and the control value program), and ttfraster/raster turns
// a scaled glyph outline into a bitmap via an active-edge scanline sweep.
package ttfraster

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/inkwell-fonts/ttfraster/raster"
	"github.com/inkwell-fonts/ttfraster/truetype"
)

// Font and Index are re-exported so callers of this package don't also
// need to import ttfraster/truetype for the common case.
type Font = truetype.Font
type Index = truetype.Index

// LoadFont parses sfnt/TrueType bytes into a Font. The Font keeps a
// reference to b; callers must not mutate it afterwards.
func LoadFont(b []byte) (*Font, error) {
	return truetype.Parse(b)
}

// Instance binds a Font to one pixels-per-em size, owning the hinting VM's
// mutable state for that size (§"Instance lifecycle"). Create one per
// goroutine that renders at a given ppem.
type Instance struct {
	font *Font
	inst *truetype.Instance
	ppem int
}

// NewInstance creates an Instance for f at the given ppem, running the
// control value program once.
func NewInstance(f *Font, ppem int) (*Instance, error) {
	inst, err := truetype.NewInstance(f, ppem)
	if err != nil {
		return nil, err
	}
	return &Instance{font: f, inst: inst, ppem: ppem}, nil
}

// PPEM returns the pixels-per-em this instance renders at.
func (inst *Instance) PPEM() int { return inst.ppem }

// Metrics describes the placement of one rendered glyph relative to the
// pen position at which it is drawn: Advance is how far the pen should
// move afterwards, Offset is the integer-pixel vector from the pen
// position to the bitmap's top-left corner (device space, Y increasing
// downward), and Size is the bitmap's dimensions.
type Metrics struct {
	Advance fixed.Int26_6
	Offset  image.Point
	Size    image.Point
}

// RenderGlyph renders glyph index i of inst's font at inst's ppem,
// returning its 8-bit coverage bitmap and placement metrics. It does not
// run the glyph's own hinting instructions; it flattens the outline as
// scaled for inst and rasterizes it (§4.9-4.10).
func RenderGlyph(inst *Instance, i Index) (*image.Alpha, Metrics, error) {
	var gb truetype.GlyphBuf
	if err := gb.Load(inst.font, inst.inst, i); err != nil {
		return nil, Metrics{}, err
	}

	numContourPoints := 0
	if n := len(gb.End); n > 0 {
		numContourPoints = gb.End[n-1] + 1
	}
	metrics := Metrics{Advance: gb.AdvanceWidth}
	if numContourPoints == 0 {
		return image.NewAlpha(image.Rect(0, 0, 0, 0)), metrics, nil
	}

	xmin, xmax := gb.Point[0].X, gb.Point[0].X
	ymin, ymax := gb.Point[0].Y, gb.Point[0].Y
	for _, p := range gb.Point[:numContourPoints] {
		if p.X < xmin {
			xmin = p.X
		}
		if p.X > xmax {
			xmax = p.X
		}
		if p.Y < ymin {
			ymin = p.Y
		}
		if p.Y > ymax {
			ymax = p.Y
		}
	}
	px0, px1 := floorPixel(xmin), ceilPixel(xmax)
	py0, py1 := floorPixel(ymin), ceilPixel(ymax)
	width, height := px1-px0, py1-py0
	if width <= 0 || height <= 0 {
		return nil, Metrics{}, fmt.Errorf("ttfraster: degenerate glyph bounds (%d x %d)", width, height)
	}

	outline := make([]raster.OutlinePoint, numContourPoints)
	for j, p := range gb.Point[:numContourPoints] {
		outline[j] = raster.OutlinePoint{
			X:       p.X - fixed.Int26_6(px0*64),
			Y:       fixed.Int26_6(py1*64) - p.Y,
			OnCurve: p.Flags&1 != 0,
		}
	}
	curves := raster.BuildCurves(outline, gb.End)
	edges := raster.Flatten(curves)
	img := raster.Render(edges, width, height)

	metrics.Offset = image.Point{X: px0, Y: -py1}
	metrics.Size = image.Point{X: width, Y: height}
	return img, metrics, nil
}

func floorPixel(x fixed.Int26_6) int {
	if x >= 0 {
		return int(x) >> 6
	}
	return -((-int(x) + 63) >> 6)
}

func ceilPixel(x fixed.Int26_6) int {
	if x >= 0 {
		return (int(x) + 63) >> 6
	}
	return -((-int(x)) >> 6)
}
