// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package ttfraster

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// face adapts an Instance to golang.org/x/image/font.Face, so that
// text-layout engines, UI toolkits and terminal renderers already written
// against that standard interface can use ttfraster without a bespoke
// integration.
type face struct {
	inst *Instance
}

// NewFace returns a golang.org/x/image/font.Face backed by inst.
func NewFace(inst *Instance) font.Face {
	return &face{inst: inst}
}

func (f *face) Close() error { return nil }

func (f *face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	idx := f.inst.font.Index(r)
	if idx == 0 {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	img, m, err := RenderGlyph(f.inst, idx)
	if err != nil {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x0 := int(dot.X>>6) + m.Offset.X
	y0 := int(dot.Y>>6) + m.Offset.Y
	dr = image.Rect(x0, y0, x0+m.Size.X, y0+m.Size.Y)
	return dr, img, image.Point{}, m.Advance, true
}

func (f *face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	idx := f.inst.font.Index(r)
	if idx == 0 {
		return fixed.Rectangle26_6{}, 0, false
	}
	_, m, err := RenderGlyph(f.inst, idx)
	if err != nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds = fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fixed.Int26_6(m.Offset.X << 6), Y: fixed.Int26_6(m.Offset.Y << 6)},
		Max: fixed.Point26_6{X: fixed.Int26_6((m.Offset.X + m.Size.X) << 6), Y: fixed.Int26_6((m.Offset.Y + m.Size.Y) << 6)},
	}
	return bounds, m.Advance, true
}

func (f *face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	idx := f.inst.font.Index(r)
	if idx == 0 {
		return 0, false
	}
	hm := f.inst.font.HMetric(idx)
	return funitsToFixed(hm.AdvanceWidth, f.inst.PPEM(), f.inst.font.UnitsPerEm()), true
}

// Kern is always zero: this package does not decode the kern/GPOS tables
// (spec Non-goal: no text shaping beyond single-glyph metrics).
func (f *face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (f *face) Metrics() font.Metrics {
	b := f.inst.font.Bounds()
	upe := f.inst.font.UnitsPerEm()
	ppem := f.inst.PPEM()
	return font.Metrics{
		Height:     funitsToFixed(upe, ppem, upe),
		Ascent:     funitsToFixed(b.YMax, ppem, upe),
		Descent:    funitsToFixed(-b.YMin, ppem, upe),
		CapHeight:  funitsToFixed(b.YMax, ppem, upe),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

func funitsToFixed(funits int32, ppem int, upe int32) fixed.Int26_6 {
	if upe == 0 {
		return 0
	}
	return fixed.Int26_6((int64(funits) * int64(ppem) * 64) / int64(upe))
}
