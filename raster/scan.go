package raster

import (
	"image"
	"sort"

	"golang.org/x/image/math/fixed"
)

// subScanlineStep (TTY_PIXELS_PER_SCANLINE in the original rasterizer) is
// the vertical distance between samples within a pixel row; 0x10 in 26.6
// units (a quarter-pixel step) means 4 samples per row (§4.10).
const subScanlineStep = fixed.Int26_6(0x10)
const subScanlinesPerRow = 64 / int(subScanlineStep)

// fullSubScanlineWeight is the coverage contributed by one fully-covered
// sub-scanline sample to one pixel: 0x3FC0 * subScanlineStep / 64. Summed
// across subScanlinesPerRow samples, a fully covered pixel accumulates
// 0x3FC0 (16320), which is 255<<6 — so the final coverage>>6 saturates at
// exactly 255.
const fullSubScanlineWeight = int32(0x3FC0) * int32(subScanlineStep) / 64

type xIntersection struct {
	x   fixed.Int26_6
	dir int8
}

// Render sweeps edges (already in 26.6 bitmap co-ordinates, Y increasing
// downward) into a width x height 8-bit coverage bitmap using a non-zero
// winding active-edge scanline algorithm (§4.10). All of Render's working
// state — the active-edge list, the per-row coverage accumulator — is
// local to this call, per the package's resource policy.
func Render(edges []Edge, width, height int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	sorted := append([]Edge(nil), edges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].YMin < sorted[j].YMin })

	coverage := make([]int32, width)
	var active []Edge
	nextIdx := 0

	for y := 0; y < height; y++ {
		for i := range coverage {
			coverage[i] = 0
		}
		rowBase := fixed.Int26_6(y * 64)
		for s := 0; s < subScanlinesPerRow; s++ {
			sampleY := rowBase + fixed.Int26_6(s)*subScanlineStep + subScanlineStep/2

			// 1. Drop edges that no longer intersect this sample.
			kept := active[:0]
			for _, e := range active {
				if e.YMax > sampleY {
					kept = append(kept, e)
				}
			}
			active = kept

			// 2. Add newly active edges.
			for nextIdx < len(sorted) && sorted[nextIdx].YMin <= sampleY {
				e := sorted[nextIdx]
				nextIdx++
				if e.YMax > sampleY {
					active = append(active, e)
				}
			}

			// 3. Re-compute x-intersections and re-sort (bubble sort: the
			// list is nearly sorted between consecutive scanlines).
			xs := make([]xIntersection, len(active))
			for i, e := range active {
				dy := int64(sampleY - e.YMin)
				x := int64(e.XMin) + (dy*int64(e.InvSlope))>>16
				xs[i] = xIntersection{x: fixed.Int26_6(x), dir: e.Dir}
			}
			bubbleSortByX(xs)

			accumulate(coverage, xs, width)
		}

		row := img.Pix[y*img.Stride : y*img.Stride+width]
		for x := 0; x < width; x++ {
			c := coverage[x] >> 6
			if c > 255 {
				c = 255
			} else if c < 0 {
				c = 0
			}
			row[x] = uint8(c)
		}
	}
	return img
}

func bubbleSortByX(xs []xIntersection) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j].x < xs[j-1].x; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

// accumulate applies the non-zero winding rule across one sub-scanline's
// sorted x-intersections, adding fullSubScanlineWeight-scaled coverage to
// coverage[], proportionally splitting the boundary pixels of each
// winding-nonzero span.
func accumulate(coverage []int32, xs []xIntersection, width int) {
	winding := 0
	for i := 0; i+1 < len(xs); i++ {
		winding += int(xs[i].dir)
		if winding != 0 {
			addSpan(coverage, xs[i].x, xs[i+1].x, width)
		}
	}
}

func addSpan(coverage []int32, xStart, xEnd fixed.Int26_6, width int) {
	if xEnd <= xStart {
		return
	}
	if xStart < 0 {
		xStart = 0
	}
	maxX := fixed.Int26_6(width * 64)
	if xEnd > maxX {
		xEnd = maxX
	}
	if xEnd <= xStart {
		return
	}

	pxStart := int(xStart >> 6)
	pxEnd := int(xEnd >> 6)

	if pxStart == pxEnd {
		if pxStart >= 0 && pxStart < width {
			frac := xEnd - xStart
			coverage[pxStart] += int32(frac) * fullSubScanlineWeight / 64
		}
		return
	}
	if pxStart >= 0 && pxStart < width {
		fracStart := fixed.Int26_6(64) - (xStart - fixed.Int26_6(pxStart*64))
		coverage[pxStart] += int32(fracStart) * fullSubScanlineWeight / 64
	}
	for px := pxStart + 1; px < pxEnd; px++ {
		if px >= 0 && px < width {
			coverage[px] += fullSubScanlineWeight
		}
	}
	if pxEnd >= 0 && pxEnd < width {
		fracEnd := xEnd - fixed.Int26_6(pxEnd*64)
		coverage[pxEnd] += int32(fracEnd) * fullSubScanlineWeight / 64
	}
}
