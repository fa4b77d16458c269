package ttfraster

// Minimal in-memory sfnt builder for this package's own tests, mirroring
// the one in truetype/synth_test.go (kept separate since that one is
// unexported to its own package).

func putU16(b []byte, v uint16) []byte { return append(b, byte(v>>8), byte(v)) }
func putI16(b []byte, v int16) []byte  { return putU16(b, uint16(v)) }
func putU32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func triangleGlyphBytes() []byte {
	var b []byte
	b = putI16(b, 1)
	b = putI16(b, 100)
	b = putI16(b, 0)
	b = putI16(b, 500)
	b = putI16(b, 700)
	b = putU16(b, 2)
	b = putU16(b, 0)
	b = append(b, 0x01, 0x01, 0x01)
	b = putI16(b, 100)
	b = putI16(b, 400)
	b = putI16(b, -200)
	b = putI16(b, 0)
	b = putI16(b, 0)
	b = putI16(b, 700)
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
	head = putU16(head, 0)
	head = putU16(head, 0)
	head = putU16(head, 0)

	dirLen := 12 + 16*len(tables)
	offset := uint32(dirLen)
	var dir, body []byte
	for _, t := range tables {
		dir = append(dir, t.tag...)
		dir = putU32(dir, 0)
		dir = putU32(dir, offset)
		dir = putU32(dir, uint32(len(t.data)))
		body = append(body, t.data...)
		offset += uint32(len(t.data))
	}
	out := append(append([]byte{}, head...), dir...)
	return append(out, body...)
}

func buildTestFont() []byte {
	glyf := triangleGlyphBytes()

	var loca []byte
	loca = putU32(loca, 0)
	loca = putU32(loca, 0)
	loca = putU32(loca, uint32(len(glyf)))

	var head []byte
	head = putU32(head, 0x00010000)
	head = putU32(head, 0)
	head = putU32(head, 0)
	head = putU32(head, 0x5F0F3CF5)
	head = putU16(head, 0)
	head = putU16(head, 1000)
	head = append(head, make([]byte, 16)...)
	head = putI16(head, 100)
	head = putI16(head, 0)
	head = putI16(head, 500)
	head = putI16(head, 700)
	head = putU16(head, 0)
	head = putU16(head, 8)
	head = putI16(head, 1)
	head = putI16(head, 1) // indexToLocFormat: long, matching the loca table built above
	head = putI16(head, 0)

	var maxp []byte
	maxp = putU32(maxp, 0x00010000)
	maxp = putU16(maxp, 2)
	maxp = putU16(maxp, 3)
	maxp = putU16(maxp, 1)
	maxp = putU16(maxp, 0)
	maxp = putU16(maxp, 0)
	maxp = putU16(maxp, 2)
	maxp = putU16(maxp, 16)
	maxp = putU16(maxp, 8)
	maxp = putU16(maxp, 4)
	maxp = putU16(maxp, 0)
	maxp = putU16(maxp, 64)
	maxp = putU16(maxp, 32)
	maxp = putU16(maxp, 0)
	maxp = putU16(maxp, 0)

	var hhea []byte
	hhea = putU32(hhea, 0x00010000)
	hhea = putI16(hhea, 800)
	hhea = putI16(hhea, -200)
	hhea = putI16(hhea, 0)
	hhea = putU16(hhea, 600)
	hhea = putI16(hhea, 0)
	hhea = putI16(hhea, 0)
	hhea = putI16(hhea, 500)
	hhea = putI16(hhea, 1)
	hhea = putI16(hhea, 0)
	hhea = putI16(hhea, 0)
	hhea = append(hhea, make([]byte, 8)...)
	hhea = putI16(hhea, 0)
	hhea = putU16(hhea, 2)

	var hmtx []byte
	hmtx = putU16(hmtx, 600)
	hmtx = putI16(hmtx, 0)
	hmtx = putU16(hmtx, 600)
	hmtx = putI16(hmtx, 100)

	var sub []byte
	sub = putU16(sub, 4)
	sub = putU16(sub, 0)
	sub = putU16(sub, 0)
	sub = putU16(sub, 4)
	sub = putU16(sub, 0)
	sub = putU16(sub, 0)
	sub = putU16(sub, 0)
	sub = putU16(sub, 0x41)
	sub = putU16(sub, 0xFFFF)
	sub = putU16(sub, 0)
	sub = putU16(sub, 0x41)
	sub = putU16(sub, 0xFFFF)
	sub = putU16(sub, uint16(1-0x41))
	sub = putU16(sub, 1)
	sub = putU16(sub, 0)
	sub = putU16(sub, 0)
	sub[2] = byte(len(sub) >> 8)
	sub[3] = byte(len(sub))

	var cmap []byte
	cmap = putU16(cmap, 0)
	cmap = putU16(cmap, 1)
	cmap = append(cmap, 0, 3, 0, 1)
	cmap = putU32(cmap, uint32(4+8))
	cmap = append(cmap, sub...)

	return buildSfnt([]sfntTable{
		{"cmap", cmap},
		{"glyf", glyf},
		{"head", head},
		{"hhea", hhea},
		{"hmtx", hmtx},
		{"loca", loca},
		{"maxp", maxp},
	})
}
