// Package raster turns a hinted glyph outline into an 8-bit coverage
// bitmap: build a curve list from contour points, flatten each curve to
// line edges, then sweep an active-edge list scanline by scanline.
//
// Grounded on the original C rasterizer's tty_render_glyph_internal (no
// equivalent file shipped in the retrieved Go reference set), expressed
// here the way golang.org/x/image/math/fixed-based Go code is usually
// written: small value types, no shared mutable state outside one Render
// call (see Render's doc comment).
package raster

import "golang.org/x/image/math/fixed"

// Point is a 26.6 fixed-point bitmap coordinate.
type Point = fixed.Point26_6

// OutlinePoint is one point of a hinted glyph contour, in 26.6 bitmap
// co-ordinates, as produced by a truetype.GlyphBuf after hinting.
type OutlinePoint struct {
	X, Y    fixed.Int26_6
	OnCurve bool
}

// Curve is a quadratic Bézier segment in 26.6 bitmap co-ordinates.
// P1 == P2 encodes a straight line (no real control point).
type Curve struct {
	P0, P1, P2 Point
}

// BuildCurves walks contour point ranges (points[start..ends[i]] inclusive)
// and produces the ordered curve list described in the rasterizer's curve
// construction rule: a curve's P0 is the previous on-curve point (or an
// implied on-curve point midway between two consecutive off-curve points),
// P1 is the next point, and P2 is the next on-curve point (or another
// implied midpoint). A final curve closes the contour.
func BuildCurves(points []OutlinePoint, ends []int) []Curve {
	var curves []Curve
	start := 0
	for _, end := range ends {
		if end < start || end >= len(points) {
			start = end + 1
			continue
		}
		curves = append(curves, buildContourCurves(points[start:end+1])...)
		start = end + 1
	}
	return curves
}

func mid(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func buildContourCurves(pts []OutlinePoint) []Curve {
	n := len(pts)
	if n == 0 {
		return nil
	}
	if n == 1 {
		p := Point{X: pts[0].X, Y: pts[0].Y}
		return []Curve{{P0: p, P1: p, P2: p}}
	}

	// Find a starting on-curve point, synthesizing one if the contour
	// begins and ends entirely off-curve.
	startIdx := -1
	for i, p := range pts {
		if p.OnCurve {
			startIdx = i
			break
		}
	}
	var start Point
	var rotated []OutlinePoint
	if startIdx == -1 {
		start = mid(pt(pts[0]), pt(pts[n-1]))
		rotated = pts
	} else {
		start = pt(pts[startIdx])
		rotated = append(append([]OutlinePoint{}, pts[startIdx:]...), pts[:startIdx]...)
	}

	var curves []Curve
	cur := start
	i := 0
	if startIdx != -1 {
		i = 1 // rotated[0] is the on-curve start point itself
	}
	for i < len(rotated) {
		p := rotated[i]
		if p.OnCurve {
			next := pt(p)
			curves = append(curves, Curve{P0: cur, P1: next, P2: next})
			cur = next
			i++
			continue
		}
		ctrl := pt(p)
		var end Point
		if i+1 < len(rotated) && !rotated[i+1].OnCurve {
			end = mid(ctrl, pt(rotated[i+1]))
			curves = append(curves, Curve{P0: cur, P1: ctrl, P2: end})
			cur = end
			i++
		} else if i+1 < len(rotated) {
			end = pt(rotated[i+1])
			curves = append(curves, Curve{P0: cur, P1: ctrl, P2: end})
			cur = end
			i += 2
		} else {
			curves = append(curves, Curve{P0: cur, P1: ctrl, P2: start})
			cur = start
			i++
		}
	}
	if cur != start {
		curves = append(curves, Curve{P0: cur, P1: start, P2: start})
	}
	return curves
}

func pt(p OutlinePoint) Point { return Point{X: p.X, Y: p.Y} }
