package squircle

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezExtrema(t *testing.T) {
	// y = x^2
	q := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	extrema, n := q.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema, expected 1", n)
	}
	if want := 0.5; math.Abs(extrema[0]-want) > 1e-6 {
		t.Errorf("got extrema %v, want %v", extrema[0], want)
	}

	q = CubicBez{Pt(0.4, 0.5), Pt(0.0, 1.0), Pt(1.0, 0.0), Pt(0.5, 0.4)}
	extrema, n = q.Extrema()
	if n != 4 {
		t.Fatalf("got %d extrema, expected 4", n)
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	c := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	diff(t, Rect{0, 0, 1, 0.75}, c.BoundingBox(), cmpopts.EquateApprox(0, 1e-12))
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(0.0, 0.0), Pt(1.0, 3.0), Pt(2.0, -1.0), Pt(4.0, 1.0)}
	c0, c1 := c.Subdivide()
	const epsilon = 1e-12
	for i := range 11 {
		ts := float64(i) / 10
		assertNear(t, c0.Eval(ts), c.Eval(ts/2), epsilon)
		assertNear(t, c1.Eval(ts), c.Eval(0.5+ts/2), epsilon)
	}
}

func TestCubicBezArclen(t *testing.T) {
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	trueArclen := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for i := range 8 {
		accuracy := math.Pow(0.1, float64(i))
		diff(t, trueArclen, c.Arclen(accuracy), cmpopts.EquateApprox(0, accuracy))
	}
}

func TestCubicBezSignedAreaLinear(t *testing.T) {
	// y = 1 - x
	c := CubicBez{
		Pt(1.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0/3.0, 2.0/3.0),
		Pt(0.0, 1.0),
	}
	const epsilon = 1e-12

	diff(t, 0.5, c.SignedArea(), cmpopts.EquateApprox(0, epsilon))
	diff(t, 0.5, c.Transform(Rotate(0.5)).SignedArea(), cmpopts.EquateApprox(0, epsilon))
	diff(t, 1.0, c.Transform(Translate(Vec(0.0, 1.0))).SignedArea(), cmpopts.EquateApprox(0, epsilon))
	diff(t, 1.0, c.Transform(Translate(Vec(1.0, 0.0))).SignedArea(), cmpopts.EquateApprox(0, epsilon))
}

func TestCubicBezSignedArea(t *testing.T) {
	// y = 1 - x^3
	c := CubicBez{
		Pt(1.0, 0.0),
		Pt(2.0/3.0, 1.0),
		Pt(1.0/3.0, 1.0),
		Pt(0.0, 1.0),
	}
	const epsilon = 1e-12
	diff(t, 0.75, c.SignedArea(), cmpopts.EquateApprox(0, epsilon))
	diff(t, 0.75, c.Transform(Rotate(0.5)).SignedArea(), cmpopts.EquateApprox(0, epsilon))
	diff(t, 1.25, c.Transform(Translate(Vec(0.0, 1.0))).SignedArea(), cmpopts.EquateApprox(0, epsilon))
	diff(t, 1.25, c.Transform(Translate(Vec(1.0, 0.0))).SignedArea(), cmpopts.EquateApprox(0, epsilon))
}
