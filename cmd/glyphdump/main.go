// Copyright 2010-2017 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Command glyphdump prints a TrueType font's table-level summary and the
// glyph index a code point maps to, for spot-checking a font during
// development.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/inkwell-fonts/ttfraster"
)

var (
	fontfile = flag.String("font", "", "filename of font to dump")
	rune_    = flag.Int("rune", 'A', "code point to look up in the font's cmap")
)

func main() {
	flag.Parse()

	fontData, err := os.ReadFile(*fontfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "glyphdump: failed to read %s: %v\n", *fontfile, err)
		os.Exit(1)
	}

	f, err := ttfraster.LoadFont(fontData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "glyphdump: failed to parse %s: %v\n", *fontfile, err)
		os.Exit(1)
	}

	b := f.Bounds()
	fmt.Printf("numGlyphs:   %d\n", f.NumGlyphs())
	fmt.Printf("unitsPerEm:  %d\n", f.UnitsPerEm())
	fmt.Printf("bounds:      [%d %d %d %d]\n", b.XMin, b.YMin, b.XMax, b.YMax)
	fmt.Printf("hasHinting:  %t\n", f.HasHinting())

	r := rune(*rune_)
	idx := f.Index(r)
	fmt.Printf("index(%q):    %d\n", r, idx)
	hm := f.HMetric(idx)
	fmt.Printf("advanceWidth: %d\n", hm.AdvanceWidth)
	fmt.Printf("lsb:          %d\n", hm.LeftSideBearing)
}
