// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package truetype parses the sfnt/TrueType container format and runs a
// font's embedded hinting bytecode. It is documented at
// http://developer.apple.com/fonts/TTRefMan/ and
// http://www.microsoft.com/typography/otspec/.
//
// All numbers (bounds, point co-ordinates, font metrics) are measured in
// FUnits unless noted otherwise. To convert FUnits to pixels, scale by
// ppem / unitsPerEm.
package truetype

import "fmt"

// An Index is a Font's index of a glyph.
type Index uint16

// A Bounds holds a co-ordinate range, inclusive of both endpoints, in
// FUnits.
type Bounds struct {
	XMin, YMin, XMax, YMax int32
}

// An HMetric holds the horizontal metrics of a single glyph, in FUnits.
type HMetric struct {
	AdvanceWidth    int32
	LeftSideBearing int32
}

// A VMetric synthesizes the vertical placement of a glyph's phantom points.
// This package does not parse vmtx (spec Non-goal); TopSideBearing and
// AdvanceHeight are derived from head/hhea so that hinting programs that
// touch the Y-axis phantom points still have plausible reference values.
type VMetric struct {
	TopSideBearing int32
	AdvanceHeight  int32
}

const sfntVersionTrueType = 0x00010000

// A Table records where one sfnt table lives in the font blob.
type Table struct {
	Present bool
	Offset  uint32
	Length  uint32
}

// Font represents a parsed TrueType font. A Font is immutable once Parse
// returns: its backing byte slice and its function table (populated by
// running fpgm once) are read-only for the rest of the Font's lifetime.
// Multiple Instances (one per ppem) can share one Font; Font itself holds
// no per-instance state.
type Font struct {
	data []byte

	cmap, cvt, fpgm, glyf, head, hhea, hmtx, loca, maxp, os2, prep, vmtx Table

	cm          []cmSegment
	cmapIndexes []byte

	locaLong bool

	unitsPerEm int32
	bounds     Bounds

	numGlyphs  int
	numHMetric int

	ascender, descender int32

	maxTwilightPoints   uint16
	maxStorage          uint16
	maxFunctionDefs     uint16
	maxInstructionDefs  uint16
	maxStackElements    uint16
	maxSizeOfInstructions uint16

	hinting   bool
	functions map[int32][]byte
}

// table returns the bytes for a recognized, present table, or nil.
func (f *Font) table(t Table) []byte {
	if !t.Present {
		return nil
	}
	return f.data[t.Offset : t.Offset+t.Length]
}

// Bounds returns the union of a Font's glyphs' bounding boxes, in FUnits.
func (f *Font) Bounds() Bounds { return f.bounds }

// UnitsPerEm returns the number of FUnits in the font's em square.
func (f *Font) UnitsPerEm() int32 { return f.unitsPerEm }

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int { return f.numGlyphs }

// HasHinting reports whether cvt, fpgm and prep are all present, per §4.2.
func (f *Font) HasHinting() bool { return f.hinting }

// Parse returns a new Font for the given sfnt bytes. The Font keeps a
// reference to ttf; callers must not mutate it afterwards.
func Parse(ttf []byte) (*Font, error) {
	if len(ttf) < 12 {
		return nil, FormatError("file too short")
	}
	d := data(ttf)
	if v := d.u32(); v != sfntVersionTrueType {
		return nil, UnsupportedError(fmt.Sprintf("sfnt version 0x%08x", v))
	}
	numTables := int(d.u16())
	d.skip(6) // searchRange, entrySelector, rangeShift
	if len(ttf) < 16*numTables+12 {
		return nil, FormatError("table directory truncated")
	}

	f := &Font{data: ttf}
	seen := map[tag]bool{}
	for i := 0; i < numTables; i++ {
		rec := ttf[12+16*i : 12+16*i+16]
		tg := tagFor(rec[0:4])
		if seen[tg] {
			continue // keep the first occurrence of a duplicate tag
		}
		seen[tg] = true

		if _, err := readTable(ttf, rec[8:16]); err != nil {
			return nil, err
		}
		t := Table{Present: true, Offset: u32(rec, 8), Length: u32(rec, 12)}
		switch tg.String() {
		case "cmap":
			f.cmap = t
		case "cvt ":
			f.cvt = t
		case "fpgm":
			f.fpgm = t
		case "glyf":
			f.glyf = t
		case "head":
			f.head = t
		case "hhea":
			f.hhea = t
		case "hmtx":
			f.hmtx = t
		case "loca":
			f.loca = t
		case "maxp":
			f.maxp = t
		case "OS/2":
			f.os2 = t
		case "prep":
			f.prep = t
		case "vmtx":
			f.vmtx = t
		}
	}

	for name, t := range map[string]Table{
		"cmap": f.cmap, "glyf": f.glyf, "head": f.head,
		"hhea": f.hhea, "hmtx": f.hmtx, "loca": f.loca, "maxp": f.maxp,
	} {
		if !t.Present {
			return nil, FormatError("missing required table: " + name)
		}
	}

	if err := f.parseHead(); err != nil {
		return nil, err
	}
	if err := f.parseMaxp(); err != nil {
		return nil, err
	}
	if err := f.parseHhea(); err != nil {
		return nil, err
	}
	if err := f.parseCmap(); err != nil {
		return nil, err
	}

	f.hinting = f.cvt.Present && f.fpgm.Present && f.prep.Present
	if f.hinting {
		f.functions = make(map[int32][]byte)
		h := &hinter{font: f}
		if err := h.runFontProgram(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Font) parseHead() error {
	b := f.table(f.head)
	if len(b) != 54 {
		return FormatError(fmt.Sprintf("bad head length: %d", len(b)))
	}
	d := data(b[18:])
	f.unitsPerEm = int32(d.u16())
	if f.unitsPerEm == 0 {
		return FormatError("zero unitsPerEm")
	}
	d.skip(16) // created, modified (2x int64)
	f.bounds.XMin = int32(d.i16())
	f.bounds.YMin = int32(d.i16())
	f.bounds.XMax = int32(d.i16())
	f.bounds.YMax = int32(d.i16())
	d.skip(6) // macStyle, lowestRecPPEM, fontDirectionHint
	switch d.i16() {
	case 0:
		f.locaLong = false
	case 1:
		f.locaLong = true
	default:
		return FormatError("bad indexToLocFormat")
	}
	return nil
}

func (f *Font) parseMaxp() error {
	b := f.table(f.maxp)
	if len(b) != 32 {
		return FormatError(fmt.Sprintf("bad maxp length: %d", len(b)))
	}
	d := data(b[4:])
	f.numGlyphs = int(d.u16())
	d.skip(2) // maxPoints
	d.skip(2) // maxContours
	d.skip(2) // maxComponentPoints
	d.skip(2) // maxComponentContours
	d.skip(2) // maxZones
	f.maxTwilightPoints = d.u16()
	f.maxStorage = d.u16()
	f.maxFunctionDefs = d.u16()
	f.maxInstructionDefs = d.u16()
	f.maxStackElements = d.u16()
	f.maxSizeOfInstructions = d.u16()
	return nil
}

func (f *Font) parseHhea() error {
	b := f.table(f.hhea)
	if len(b) != 36 {
		return FormatError(fmt.Sprintf("bad hhea length: %d", len(b)))
	}
	d := data(b[4:])
	f.ascender = int32(d.i16())
	f.descender = int32(d.i16())
	d = data(b[34:])
	f.numHMetric = int(d.u16())
	want := 4*f.numHMetric + 2*(f.numGlyphs-f.numHMetric)
	hmtx := f.table(f.hmtx)
	if f.numHMetric <= 0 || f.numHMetric > f.numGlyphs || want != len(hmtx) {
		return FormatError(fmt.Sprintf("bad hmtx length: %d", len(hmtx)))
	}
	return nil
}

// HMetric returns the horizontal metrics for glyph i, in FUnits.
func (f *Font) HMetric(i Index) HMetric {
	hmtx := f.table(f.hmtx)
	j := int(i)
	if j >= f.numGlyphs {
		return HMetric{}
	}
	if j >= f.numHMetric {
		d := data(hmtx[4*(f.numHMetric-1):])
		aw := int32(d.u16())
		lsb := int32(int16(u16(hmtx, 4*f.numHMetric+2*(j-f.numHMetric))))
		return HMetric{aw, lsb}
	}
	d := data(hmtx[4*j:])
	return HMetric{int32(d.u16()), int32(d.i16())}
}

// unscaledVMetric synthesizes a vertical metric for phantom point 3/4
// placement. See VMetric's doc comment: vmtx itself is out of scope.
func (f *Font) unscaledVMetric(yMax int32) VMetric {
	ascender, descender := f.ascender, f.descender
	if ascender == 0 && descender == 0 {
		ascender, descender = f.bounds.YMax, f.bounds.YMin
	}
	return VMetric{
		TopSideBearing: ascender - yMax,
		AdvanceHeight:  ascender - descender,
	}
}
