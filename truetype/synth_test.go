package truetype

// This file builds minimal, valid sfnt/TrueType byte streams in memory so
// the rest of the package's tests don't depend on a font file living on
// disk. The font has two glyphs: an empty .notdef and a single-contour
// triangle mapped from 'A', with plausible head/hhea/maxp/hmtx/cmap tables.

func putU16(b []byte, v uint16) []byte { return append(b, byte(v>>8), byte(v)) }
func putI16(b []byte, v int16) []byte  { return putU16(b, uint16(v)) }
func putU32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// triangleGlyphBytes returns a simple one-contour glyph: an upward triangle
// with vertices (100,0), (500,0), (300,700), all on-curve.
func triangleGlyphBytes() []byte {
	var b []byte
	b = putI16(b, 1)  // numberOfContours
	b = putI16(b, 100) // xMin
	b = putI16(b, 0)   // yMin
	b = putI16(b, 500) // xMax
	b = putI16(b, 700) // yMax
	b = putU16(b, 2)   // endPtsOfContours[0]
	b = putU16(b, 0)   // instructionLength
	b = append(b, 0x01, 0x01, 0x01) // flags: all on-curve, full-width deltas
	b = putI16(b, 100) // dx0
	b = putI16(b, 400) // dx1
	b = putI16(b, -200) // dx2
	b = putI16(b, 0)   // dy0
	b = putI16(b, 0)   // dy1
	b = putI16(b, 700) // dy2
	return b
}

type sfntTable struct {
	tag  string
	data []byte
}

func buildSfnt(tables []sfntTable) []byte {
	var head []byte
	head = putU32(head, 0x00010000)
	head = putU16(head, uint16(len(tables)))
	head = putU16(head, 0) // searchRange
	head = putU16(head, 0) // entrySelector
	head = putU16(head, 0) // rangeShift

	dirLen := 12 + 16*len(tables)
	offset := uint32(dirLen)
	var dir, body []byte
	for _, t := range tables {
		dir = append(dir, t.tag...)
		dir = putU32(dir, 0) // checksum, unchecked by this package's parser
		dir = putU32(dir, offset)
		dir = putU32(dir, uint32(len(t.data)))
		body = append(body, t.data...)
		offset += uint32(len(t.data))
	}
	out := append(append([]byte{}, head...), dir...)
	return append(out, body...)
}

// buildFont assembles a complete two-glyph sfnt font. If hinting is true it
// also includes cvt/fpgm/prep so Font.HasHinting reports true.
func buildFont(hinting bool) []byte {
	glyf := triangleGlyphBytes()

	// loca, long format: glyph 0 is empty ([0,0)); glyph 1 is the triangle.
	var loca []byte
	loca = putU32(loca, 0)
	loca = putU32(loca, 0)
	loca = putU32(loca, uint32(len(glyf)))

	var head []byte
	head = putU32(head, 0x00010000) // version
	head = putU32(head, 0)          // fontRevision
	head = putU32(head, 0)          // checkSumAdjustment
	head = putU32(head, 0x5F0F3CF5) // magicNumber
	head = putU16(head, 0)          // flags
	head = putU16(head, 1000)       // unitsPerEm
	head = append(head, make([]byte, 16)...) // created, modified
	head = putI16(head, 100) // xMin
	head = putI16(head, 0)   // yMin
	head = putI16(head, 500) // xMax
	head = putI16(head, 700) // yMax
	head = putU16(head, 0)   // macStyle
	head = putU16(head, 8)   // lowestRecPPEM
	head = putI16(head, 1)   // fontDirectionHint
	head = putI16(head, 1)   // indexToLocFormat: long
	head = putI16(head, 0)   // glyphDataFormat

	var maxp []byte
	maxp = putU32(maxp, 0x00010000)
	maxp = putU16(maxp, 2)  // numGlyphs
	maxp = putU16(maxp, 3)  // maxPoints
	maxp = putU16(maxp, 1)  // maxContours
	maxp = putU16(maxp, 0)  // maxCompositePoints
	maxp = putU16(maxp, 0)  // maxCompositeContours
	maxp = putU16(maxp, 2)  // maxZones
	maxp = putU16(maxp, 16) // maxTwilightPoints
	maxp = putU16(maxp, 8)  // maxStorage
	maxp = putU16(maxp, 4)  // maxFunctionDefs
	maxp = putU16(maxp, 0)  // maxInstructionDefs
	maxp = putU16(maxp, 64) // maxStackElements
	maxp = putU16(maxp, 32) // maxSizeOfInstructions
	maxp = putU16(maxp, 0)  // maxComponentElements
	maxp = putU16(maxp, 0)  // maxComponentDepth

	var hhea []byte
	hhea = putU32(hhea, 0x00010000)
	hhea = putI16(hhea, 800)  // ascender
	hhea = putI16(hhea, -200) // descender
	hhea = putI16(hhea, 0)    // lineGap
	hhea = putU16(hhea, 600)  // advanceWidthMax
	hhea = putI16(hhea, 0)    // minLeftSideBearing
	hhea = putI16(hhea, 0)    // minRightSideBearing
	hhea = putI16(hhea, 500)  // xMaxExtent
	hhea = putI16(hhea, 1)    // caretSlopeRise
	hhea = putI16(hhea, 0)    // caretSlopeRun
	hhea = putI16(hhea, 0)    // caretOffset
	hhea = append(hhea, make([]byte, 8)...) // reserved
	hhea = putI16(hhea, 0) // metricDataFormat
	hhea = putU16(hhea, 2) // numberOfHMetrics

	var hmtx []byte
	hmtx = putU16(hmtx, 600)
	hmtx = putI16(hmtx, 0)
	hmtx = putU16(hmtx, 600)
	hmtx = putI16(hmtx, 100)

	// cmap: format 4, one segment mapping 'A' (0x41) to glyph 1, plus the
	// mandatory terminating 0xFFFF segment.
	var sub []byte
	sub = putU16(sub, 4) // format
	sub = putU16(sub, 0) // length placeholder, filled below
	sub = putU16(sub, 0) // language
	sub = putU16(sub, 4) // segCountX2
	sub = putU16(sub, 0) // searchRange
	sub = putU16(sub, 0) // entrySelector
	sub = putU16(sub, 0) // rangeShift
	sub = putU16(sub, 0x41)   // endCode[0]
	sub = putU16(sub, 0xFFFF) // endCode[1]
	sub = putU16(sub, 0)      // reservedPad
	sub = putU16(sub, 0x41)   // startCode[0]
	sub = putU16(sub, 0xFFFF) // startCode[1]
	sub = putU16(sub, uint16(1-0x41)) // idDelta[0]
	sub = putU16(sub, 1)              // idDelta[1]
	sub = putU16(sub, 0) // idRangeOffset[0]
	sub = putU16(sub, 0) // idRangeOffset[1]
	sub[2] = byte(len(sub) >> 8)
	sub[3] = byte(len(sub))

	var cmap []byte
	cmap = putU16(cmap, 0) // version
	cmap = putU16(cmap, 1) // numTables
	cmap = append(cmap, 0, 3, 0, 1) // platformID=3, encodingID=1
	cmap = putU32(cmap, uint32(4+8))
	cmap = append(cmap, sub...)

	tables := []sfntTable{
		{"cmap", cmap},
		{"glyf", glyf},
		{"head", head},
		{"hhea", hhea},
		{"hmtx", hmtx},
		{"loca", loca},
		{"maxp", maxp},
	}
	if hinting {
		var cvt []byte
		cvt = putI16(cvt, 0)
		cvt = putI16(cvt, 96)
		tables = append(tables,
			sfntTable{"cvt ", cvt},
			sfntTable{"fpgm", nil},
			sfntTable{"prep", nil},
		)
	}
	return buildSfnt(tables)
}
