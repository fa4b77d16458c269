// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// data interprets a byte slice as a stream of big-endian integer values.
// All sfnt tables are big-endian; this cursor is shared by every table
// parser in this package rather than each re-deriving offsets by hand.
type data []byte

func (d *data) u8() uint8 {
	x := (*d)[0]
	*d = (*d)[1:]
	return x
}

func (d *data) u16() uint16 {
	x := uint16((*d)[0])<<8 | uint16((*d)[1])
	*d = (*d)[2:]
	return x
}

func (d *data) i16() int16 {
	return int16(d.u16())
}

func (d *data) u32() uint32 {
	x := uint32((*d)[0])<<24 | uint32((*d)[1])<<16 | uint32((*d)[2])<<8 | uint32((*d)[3])
	*d = (*d)[4:]
	return x
}

func (d *data) skip(n int) {
	*d = (*d)[n:]
}

// u16 and u32 read without advancing a cursor, used when glyf/loca offsets
// are computed once but accessed piecemeal.
func u16(b []byte, i int) uint16 {
	return uint16(b[i])<<8 | uint16(b[i+1])
}

func u32(b []byte, i int) uint32 {
	return uint32(b[i])<<24 | uint32(b[i+1])<<16 | uint32(b[i+2])<<8 | uint32(b[i+3])
}

// tag is a 4-byte table identifier, compared as raw bytes.
type tag [4]byte

func tagFor(b []byte) tag {
	return tag{b[0], b[1], b[2], b[3]}
}

func (t tag) String() string { return string(t[:]) }

// readTable slices ttf according to a table directory entry's offset and
// length fields, overflow-checking the arithmetic before indexing.
func readTable(ttf []byte, entry []byte) ([]byte, error) {
	d := data(entry)
	offset := d.u32()
	length := d.u32()
	end := uint64(offset) + uint64(length)
	if end > uint64(len(ttf)) {
		return nil, FormatError("table offset/length out of range")
	}
	return ttf[offset : offset+length], nil
}
