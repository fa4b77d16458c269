package raster

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestFlattenLineProducesOneEdge(t *testing.T) {
	c := Curve{
		P0: Point{X: fixed.I(0), Y: fixed.I(0)},
		P1: Point{X: fixed.I(4), Y: fixed.I(8)},
		P2: Point{X: fixed.I(4), Y: fixed.I(8)},
	}
	edges := Flatten([]Curve{c})
	if len(edges) != 1 {
		t.Fatalf("len(edges) = %d, want 1", len(edges))
	}
	e := edges[0]
	if e.YMin != fixed.I(0) || e.YMax != fixed.I(8) {
		t.Errorf("YMin/YMax = %v/%v, want %v/%v", e.YMin, e.YMax, fixed.I(0), fixed.I(8))
	}
	if e.Dir != -1 {
		t.Errorf("Dir = %d, want -1 (descending P0.Y < P1.Y)", e.Dir)
	}
}

func TestFlattenSkipsHorizontalSegments(t *testing.T) {
	c := Curve{
		P0: Point{X: fixed.I(0), Y: fixed.I(5)},
		P1: Point{X: fixed.I(4), Y: fixed.I(5)},
		P2: Point{X: fixed.I(4), Y: fixed.I(5)},
	}
	if edges := Flatten([]Curve{c}); len(edges) != 0 {
		t.Errorf("Flatten(horizontal line) = %v, want no edges", edges)
	}
}

func TestFlattenSubdividesCurvedSegment(t *testing.T) {
	// A control point far from the chord forces at least one bisection.
	c := Curve{
		P0: Point{X: fixed.I(0), Y: fixed.I(0)},
		P1: Point{X: fixed.I(50), Y: fixed.I(5)},
		P2: Point{X: fixed.I(0), Y: fixed.I(10)},
	}
	edges := Flatten([]Curve{c})
	if len(edges) < 2 {
		t.Errorf("len(edges) = %d, want at least 2 for a highly curved segment", len(edges))
	}
}

func TestFlattenUsesMidpointDeviationNotChordDistance(t *testing.T) {
	// A control point squarely above the chord's midpoint, offset by 2 raw
	// 26.6 units perpendicular to a 10px chord. The perpendicular
	// chord-distance metric (cross^2/(dx^2+dy^2)) reports a squared
	// distance of 4, above the flatness threshold of 1 -- it would keep
	// subdividing. The de Casteljau midpoint deviation this package
	// actually uses (e = chord-midpoint - curve-midpoint) is exactly half
	// that offset, squaring to 1: right at the threshold, so the curve is
	// flat enough and must not be subdivided.
	c := Curve{
		P0: Point{X: 0, Y: 0},
		P1: Point{X: 2, Y: fixed.I(5)},
		P2: Point{X: 0, Y: fixed.I(10)},
	}
	edges := Flatten([]Curve{c})
	if len(edges) != 1 {
		t.Fatalf("len(edges) = %d, want 1 (curve is flat under the midpoint-deviation test)", len(edges))
	}
}

func TestFlattenSubdividesColinearOvershoot(t *testing.T) {
	// The control point lies exactly on the line through p0 and p2, so the
	// chord-distance metric sees zero perpendicular deviation and would
	// call this flat. But the control point overshoots far past p2 along
	// that line, so the curve's own midpoint lands far from the chord's
	// midpoint -- the midpoint-deviation metric correctly flags this as
	// needing subdivision.
	c := Curve{
		P0: Point{X: 0, Y: 0},
		P1: Point{X: 0, Y: fixed.I(10000)},
		P2: Point{X: 0, Y: fixed.I(10)},
	}
	edges := Flatten([]Curve{c})
	if len(edges) < 2 {
		t.Errorf("len(edges) = %d, want at least 2 (colinear overshoot must subdivide)", len(edges))
	}
}
