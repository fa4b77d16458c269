// Command rendertext rasterizes a line of text with a TrueType font and
// writes the result as a grayscale PNG, for spot-checking rendering output
// during development.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/inkwell-fonts/ttfraster"
)

var (
	textFlag = flag.String("text", "Hamburger", "the text to render")
	fontFlag = flag.String("font", "", "file name of the TrueType font to use")
	ppemFlag = flag.Int("ppem", 32, "pixels per em")
	outFlag  = flag.String("out", "out.png", "output PNG file name")
)

func main() {
	flag.Parse()

	fontData, err := os.ReadFile(*fontFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rendertext: reading font: %v\n", err)
		os.Exit(1)
	}
	f, err := ttfraster.LoadFont(fontData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rendertext: parsing font: %v\n", err)
		os.Exit(1)
	}
	inst, err := ttfraster.NewInstance(f, *ppemFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rendertext: creating instance: %v\n", err)
		os.Exit(1)
	}

	canvas := image.NewGray(image.Rect(0, 0, len(*textFlag)*(*ppemFlag), 2*(*ppemFlag)))
	penX := 0
	penY := (*ppemFlag * 3) / 2

	for _, r := range *textFlag {
		idx := f.Index(r)
		mask, m, err := ttfraster.RenderGlyph(inst, idx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rendertext: rendering %q: %v\n", r, err)
			os.Exit(1)
		}
		dr := image.Rect(0, 0, m.Size.X, m.Size.Y).Add(image.Point{X: penX + m.Offset.X, Y: penY + m.Offset.Y})
		draw.DrawMask(canvas, dr, image.White, image.Point{}, mask, image.Point{}, draw.Over)
		penX += int(m.Advance) >> 6
	}

	out, err := os.Create(*outFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rendertext: creating output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := png.Encode(out, canvas); err != nil {
		fmt.Fprintf(os.Stderr, "rendertext: encoding PNG: %v\n", err)
		os.Exit(1)
	}
}
