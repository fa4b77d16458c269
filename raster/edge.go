package raster

import "golang.org/x/image/math/fixed"

// f16dot16 is a 16.16 fixed-point number, used for an edge's inverse slope
// (dx/dy), per the rasterizer's edge representation.
type f16dot16 int32

// Edge is one line segment of a flattened contour, oriented so that
// P0.Y <= P1.Y. Dir is +1 if the original (unflattened) direction ran from
// higher Y to lower Y in bitmap space (rising from bottom to top of the
// contour), -1 otherwise; it feeds the non-zero winding accumulation in
// scan.go.
type Edge struct {
	P0, P1   Point
	YMin     fixed.Int26_6
	YMax     fixed.Int26_6
	XMin     fixed.Int26_6
	InvSlope f16dot16
	Dir      int8
}

const flatnessThresholdSq = 1 // (1/64 px)^2, expressed in squared 26.6 units

// Flatten converts a curve list into edges, recursively subdividing each
// quadratic Bézier (de Casteljau, bisection at t=0.5) until the midpoint
// of the subdivided curve deviates from the midpoint of its chord by less
// than the flatness threshold (§4.9), or a depth cap is hit as a safety
// net against degenerate curves.
func Flatten(curves []Curve) []Edge {
	var edges []Edge
	for _, c := range curves {
		flattenCurve(c, 0, &edges)
	}
	return edges
}

func flattenCurve(c Curve, depth int, out *[]Edge) {
	if c.P1 == c.P2 {
		addEdge(out, c.P0, c.P2)
		return
	}
	m01 := mid(c.P0, c.P1)
	m12 := mid(c.P1, c.P2)
	m2 := mid(m01, m12)
	if depth >= 16 || isFlatEnough(c.P0, c.P2, m2) {
		addEdge(out, c.P0, c.P2)
		return
	}
	flattenCurve(Curve{P0: c.P0, P1: m01, P2: m2}, depth+1, out)
	flattenCurve(Curve{P0: m2, P1: m12, P2: c.P2}, depth+1, out)
}

// isFlatEnough compares the midpoint of the chord p0-p2 against m2, the
// curve's own de Casteljau midpoint at t=0.5: e = (p0+p2)/2 - m2. A curve
// is flat when that deviation's squared magnitude is within threshold.
func isFlatEnough(p0, p2, m2 Point) bool {
	ex := (p0.X+p2.X)/2 - m2.X
	ey := (p0.Y+p2.Y)/2 - m2.Y
	e := int64(ex)*int64(ex) + int64(ey)*int64(ey)
	return e <= flatnessThresholdSq
}

func addEdge(out *[]Edge, p0, p1 Point) {
	if p0.Y == p1.Y {
		return // horizontal segments never cross a scanline
	}
	dir := int8(-1)
	a, b := p0, p1
	if p1.Y < p0.Y {
		dir = 1
		a, b = p1, p0
	}
	dy := int64(b.Y - a.Y)
	dx := int64(b.X - a.X)
	inv := f16dot16((dx << 16) / dy)
	*out = append(*out, Edge{P0: a, P1: b, YMin: a.Y, YMax: b.Y, XMin: a.X, InvSlope: inv, Dir: dir})
}
