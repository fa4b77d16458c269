package raster

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestBuildCurvesAllOnCurveTriangle(t *testing.T) {
	pts := []OutlinePoint{
		{X: fixed.I(0), Y: fixed.I(0), OnCurve: true},
		{X: fixed.I(10), Y: fixed.I(0), OnCurve: true},
		{X: fixed.I(0), Y: fixed.I(10), OnCurve: true},
	}
	curves := BuildCurves(pts, []int{2})
	if len(curves) != 3 {
		t.Fatalf("len(curves) = %d, want 3", len(curves))
	}
	for i, c := range curves {
		if c.P1 != c.P2 {
			t.Errorf("curve %d is not a line: P1=%v P2=%v", i, c.P1, c.P2)
		}
	}
	if curves[2].P2 != curves[0].P0 {
		t.Errorf("contour does not close: last P2=%v, first P0=%v", curves[2].P2, curves[0].P0)
	}
}

func TestBuildCurvesImpliedMidpoint(t *testing.T) {
	// Two consecutive off-curve points imply an on-curve midpoint between
	// them (a common TrueType outline encoding for smooth curves).
	pts := []OutlinePoint{
		{X: fixed.I(0), Y: fixed.I(0), OnCurve: true},
		{X: fixed.I(5), Y: fixed.I(5), OnCurve: false},
		{X: fixed.I(10), Y: fixed.I(5), OnCurve: false},
		{X: fixed.I(15), Y: fixed.I(0), OnCurve: true},
	}
	curves := BuildCurves(pts, []int{3})
	if len(curves) != 3 {
		t.Fatalf("len(curves) = %d, want 3 (on-off, implied midpoint, off-on/close)", len(curves))
	}
	wantMid := Point{X: fixed.I(7) + fixed.I(1)/2, Y: fixed.I(5)}
	if curves[0].P2 != wantMid {
		t.Errorf("implied midpoint = %v, want %v", curves[0].P2, wantMid)
	}
}

func TestBuildCurvesIgnoresOutOfRangeContour(t *testing.T) {
	pts := []OutlinePoint{{X: fixed.I(0), Y: fixed.I(0), OnCurve: true}}
	if got := BuildCurves(pts, []int{5}); got != nil {
		t.Errorf("BuildCurves with out-of-range end = %v, want nil", got)
	}
}
