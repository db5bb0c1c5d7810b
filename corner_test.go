package squircle

import (
	"math"
	"testing"
)

func TestDrawCornerTopLeft(t *testing.T) {
	g := NewCurveGeometry(20, 0.6)
	var p Path
	DrawCorner(&p, 20, g, Pt(0, 100), TopLeft)

	want := Path{
		MoveTo(Pt(0, 68)),
		CubicTo(Pt(0, 88.826719), Pt(0, 99.240079), Pt(0.108993, 100.546010)),
		ArcTo(Vec(20, 20), 0, false, false, Pt(0.546010, 100.108993)),
		CubicTo(Pt(0.759921, 100), Pt(11.173281, 100), Pt(32, 100)),
	}
	diff(t, want, p, approx(1e-6))
}

func TestDrawCornerConnectsWithLine(t *testing.T) {
	g := NewCurveGeometry(10, 0.5)
	for i := TopRight; i <= BottomLeft; i++ {
		var p Path
		DrawCorner(&p, 10, g, Pt(0, 0), i)
		if len(p) != 4 {
			t.Fatalf("corner %d: got %d elements, want 4", i, len(p))
		}
		if p[0].Kind != LineToKind {
			t.Errorf("corner %d: first element is %v, want LineTo", i, p[0].Kind)
		}
	}
}

func TestDrawCornerEdges(t *testing.T) {
	// Each corner enters along the edge before it in clockwise order and leaves
	// along the edge after it.
	g := NewCurveGeometry(10, 1)
	tests := []struct {
		index      int
		corner     Point
		start, end Point
	}{
		{TopLeft, Pt(0, 100), Pt(0, 80), Pt(20, 100)},
		{TopRight, Pt(100, 100), Pt(80, 100), Pt(100, 80)},
		{BottomRight, Pt(100, 0), Pt(100, 20), Pt(80, 0)},
		{BottomLeft, Pt(0, 0), Pt(20, 0), Pt(0, 20)},
	}
	for _, tt := range tests {
		var p Path
		DrawCorner(&p, 10, g, tt.corner, tt.index)
		diff(t, tt.start, p[0].P0, approx(1e-12))
		diff(t, tt.end, p.End(), approx(1e-12))
	}
}

func TestDrawCornerRotationMatchesAffine(t *testing.T) {
	g := NewCurveGeometry(15, 0.7)
	var base Path
	DrawCorner(&base, 15, g, Pt(0, 0), TopLeft)
	for i := TopRight; i <= BottomLeft; i++ {
		var p Path
		DrawCorner(&p, 15, g, Pt(0, 0), i)
		rotated := base.Transform(Rotate(-float64(i) * math.Pi / 2))
		for j := range p {
			diff(t, p[j].P0, rotated[j].P0, approx(1e-9))
			diff(t, p[j].P1, rotated[j].P1, approx(1e-9))
			diff(t, p[j].P2, rotated[j].P2, approx(1e-9))
		}
	}
}

func TestDrawCornerPanics(t *testing.T) {
	g := NewCurveGeometry(10, 0.5)
	for _, i := range []int{-1, 4, 100} {
		var p Path
		mustPanic(t, func() { DrawCorner(&p, 10, g, Pt(0, 0), i) })
		if len(p) != 0 {
			t.Errorf("index %d: got %d elements, expected none", i, len(p))
		}
	}
}
