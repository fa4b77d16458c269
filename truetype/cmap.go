// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "fmt"

// cmSegment is one parsed Format 4 segment.
type cmSegment struct {
	start, end, delta, idRangeOffset uint16
	idRangeBase                      int // byte offset of this segment's idRangeOffset field within cmapIndexes
}

// encoding priority, per §3 "Encoding selection": Unicode platform (0)
// encodings 3-6 first, then Windows platform (3) encodings 1 or 10.
func encodingPriority(platformID, encodingID uint16) int {
	switch {
	case platformID == 0 && encodingID >= 3 && encodingID <= 6:
		return 100 - int(encodingID)
	case platformID == 3 && (encodingID == 1 || encodingID == 10):
		return 10 - int(encodingID)
	default:
		return -1
	}
}

func (f *Font) parseCmap() error {
	b := f.table(f.cmap)
	if len(b) < 4 {
		return FormatError("cmap too short")
	}
	d := data(b[2:])
	numSubtables := int(d.u16())
	if len(b) < 4+8*numSubtables {
		return FormatError("cmap subtable directory truncated")
	}

	bestOffset, bestPriority := -1, -1
	for i := 0; i < numSubtables; i++ {
		platformID := d.u16()
		encodingID := d.u16()
		offset := int(d.u32())
		if p := encodingPriority(platformID, encodingID); p > bestPriority {
			if offset <= 0 || offset >= len(b) {
				continue
			}
			if u16(b, offset) != 4 {
				// Formats other than 4 are acknowledged by §3 but not
				// implemented; skip to the next candidate subtable.
				continue
			}
			bestOffset, bestPriority = offset, p
		}
	}
	if bestOffset < 0 {
		return UnsupportedError("no supported cmap subtable")
	}

	sd := data(b[bestOffset:])
	format := sd.u16()
	if format != 4 {
		return UnsupportedError(fmt.Sprintf("cmap format %d", format))
	}
	sd.skip(2) // length
	sd.skip(2) // language
	segCountX2 := int(sd.u16())
	if segCountX2%2 != 0 {
		return FormatError("bad segCountX2")
	}
	segCount := segCountX2 / 2
	sd.skip(6) // searchRange, entrySelector, rangeShift

	f.cm = make([]cmSegment, segCount)
	for i := 0; i < segCount; i++ {
		f.cm[i].end = sd.u16()
	}
	sd.skip(2) // reservedPad
	for i := 0; i < segCount; i++ {
		f.cm[i].start = sd.u16()
	}
	for i := 0; i < segCount; i++ {
		f.cm[i].delta = sd.u16()
	}
	idRangeOffsetsStart := bestOffset + (len(b) - bestOffset - len(sd))
	for i := 0; i < segCount; i++ {
		f.cm[i].idRangeBase = idRangeOffsetsStart + 2*i
		f.cm[i].idRangeOffset = sd.u16()
	}
	f.cmapIndexes = b
	return nil
}

// Index maps a code point to a glyph index by binary search over the
// Format 4 segment end-codes (§4.3). Returns 0 (notdef) on a miss, per P1.
func (f *Font) Index(cp rune) Index {
	c := uint16(cp)
	if cp < 0 || cp > 0xFFFF {
		return 0
	}
	segs := f.cm
	lo, hi := 0, len(segs)
	for lo < hi {
		mid := (lo + hi) / 2
		if segs[mid].end < c {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(segs) || segs[lo].start > c {
		return 0
	}
	seg := segs[lo]
	if seg.idRangeOffset == 0 {
		return Index(c + seg.delta)
	}
	// The spec's pointer-arithmetic quirk: the stored idRangeOffset is a
	// byte offset from the idRangeOffset field itself, not from the start
	// of the array, to a uint16 glyph index.
	off := seg.idRangeBase + int(seg.idRangeOffset) + 2*int(c-seg.start)
	if off < 0 || off+2 > len(f.cmapIndexes) {
		return 0
	}
	gi := u16(f.cmapIndexes, off)
	if gi == 0 {
		return 0
	}
	return Index(uint16(gi) + seg.delta)
}
