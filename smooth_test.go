package squircle

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestSmoothRoundRectCommandCounts(t *testing.T) {
	f := func(x, y, w, h, s, tl, tr, br, bl float64) {
		t.Helper()
		p := DrawSmoothRoundRect(x, y, w, h, s, tl, tr, br, bl)
		got := map[PathElementKind]int{}
		for _, el := range p {
			got[el.Kind]++
		}
		want := map[PathElementKind]int{
			MoveToKind:    1,
			LineToKind:    3,
			CubicToKind:   8,
			ArcToKind:     4,
			ClosePathKind: 1,
		}
		diff(t, want, got)
		if p[0].Kind != MoveToKind {
			t.Errorf("path starts with %v, want MoveTo", p[0].Kind)
		}
		if !p.Closed() {
			t.Error("path isn't closed")
		}
	}
	f(0, 0, 100, 100, 0.6, 20, 20, 20, 20)
	f(-50, 10, 300, 40, 1, 5, 10, 15, 2)
	f(0, 0, 200, 200, 0.5, 10, 40, 40, 40)
	f(0, 0, 10, 10, 0.01, 100, 100, 100, 100) // overlapping corners
}

func TestSmoothRoundRectClosed(t *testing.T) {
	p := DrawSmoothRoundRect(3, 4, 120, 80, 0.8, 12, 7, 30, 9)
	if start, end := p.Start(), p.End(); start != end {
		t.Errorf("path ends at %v, want %v", end, start)
	}
	// The last drawn point lies on the left edge, which ClosePath completes.
	last, _ := p[len(p)-2].End()
	if last.X != p.Start().X {
		t.Errorf("last corner ends at %v, not on the left edge through %v", last, p.Start())
	}
}

func TestSmoothRoundRectSquareBounds(t *testing.T) {
	p := DrawSmoothRoundRect(0, 0, 100, 100, 0.6, 20, 20, 20, 20)
	bbox := p.BoundingBox()
	// The joins between easing curves and arcs overshoot the rectangle by the
	// unscaled arc connecting vector, which is less than a unit.
	if r := (Rect{0, 0, 100, 100}); !r.ContainsRect(bbox, 1) {
		t.Errorf("bounding box %v exceeds %v", bbox, r)
	}
	if bbox.Width() < 100 || bbox.Height() < 100 {
		t.Errorf("bounding box %v doesn't cover the rectangle", bbox)
	}
	diff(t, Pt(50, 50), bbox.Center(), approx(1e-9))
}

func TestSmoothRoundRectRotationalSymmetry(t *testing.T) {
	p := DrawSmoothRoundRect(0, 0, 100, 100, 0.6, 20, 20, 20, 20)
	// A clockwise quarter turn about the center maps each corner onto the next
	// one. Corner k occupies elements 4k to 4k+3.
	rotated := p.Transform(RotateAbout(-math.Pi/2, Pt(50, 50)))
	for k := range 4 {
		next := (k + 1) % 4
		for j := range 4 {
			got, want := rotated[4*k+j], p[4*next+j]
			diff(t, want.P0, got.P0, approx(1e-9))
			diff(t, want.P1, got.P1, approx(1e-9))
			diff(t, want.P2, got.P2, approx(1e-9))
			if got.Kind == ArcToKind {
				diff(t, want.Radii, got.Radii, approx(1e-9))
				if got.Sweep != want.Sweep {
					t.Errorf("corner %d: rotation changed the arc's sweep", k)
				}
			}
		}
	}
	diff(t, p.BoundingBox(), rotated.BoundingBox(), approx(1e-9))
}

func TestSmoothRoundRectMixedRadii(t *testing.T) {
	p := DrawSmoothRoundRect(0, 0, 200, 200, 0.5, 10, 40, 40, 40)
	// Each corner reaches (1 + smoothness) × radius along its edges.
	edges := []struct {
		index      int
		start, end Point
	}{
		{TopLeft, Pt(0, 185), Pt(15, 200)},
		{TopRight, Pt(140, 200), Pt(200, 140)},
		{BottomRight, Pt(200, 60), Pt(140, 0)},
		{BottomLeft, Pt(60, 0), Pt(0, 60)},
	}
	for _, e := range edges {
		diff(t, e.start, p[4*e.index].P0, approx(1e-9))
		diff(t, e.end, p[4*e.index+3].P2, approx(1e-9))
	}

	// Each corner's geometry only depends on its own radius: drawing a corner
	// on its own gives the same elements.
	radii := [4]float64{10, 40, 40, 40}
	corners := [4]Point{Pt(0, 200), Pt(200, 200), Pt(200, 0), Pt(0, 0)}
	for i := range 4 {
		var want Path
		DrawCorner(&want, radii[i], NewCurveGeometry(radii[i], 0.5), corners[i], i)
		diff(t, want, p[4*i:4*i+4])
	}
	if p[2].Radii != Vec(10, 10) || p[6].Radii != Vec(40, 40) {
		t.Errorf("got arc radii %v and %v, want 10 and 40", p[2].Radii, p[6].Radii)
	}
}

func TestSmoothRoundRectOffsetOrigin(t *testing.T) {
	p := DrawSmoothRoundRect(0, 0, 60, 30, 0.3, 5, 6, 7, 8)
	moved := DrawSmoothRoundRect(10, -20, 60, 30, 0.3, 5, 6, 7, 8)
	diff(t, p.Transform(Translate(Vec(10, -20))), moved, approx(1e-9))
}

func TestSmoothRoundRectPanics(t *testing.T) {
	f := func(target error, x, y, w, h, s, tl, tr, br, bl float64) {
		t.Helper()
		v := mustPanic(t, func() { DrawSmoothRoundRect(x, y, w, h, s, tl, tr, br, bl) })
		if err, ok := v.(error); !ok || !errors.Is(err, target) {
			t.Errorf("got panic %v, want %v", v, target)
		}
	}
	f(ErrNonPositiveSize, 0, 0, 0, 100, 0.5, 10, 10, 10, 10)
	f(ErrNonPositiveSize, 0, 0, 100, -1, 0.5, 10, 10, 10, 10)
	f(ErrNonPositiveSize, 0, 0, math.NaN(), 100, 0.5, 10, 10, 10, 10)
	f(ErrSmoothnessRange, 0, 0, 100, 100, 0, 10, 10, 10, 10)
	f(ErrSmoothnessRange, 0, 0, 100, 100, 1.5, 10, 10, 10, 10)
	f(ErrNonPositiveRadius, 0, 0, 100, 100, 0.5, 10, 0, 10, 10)
	f(ErrNonPositiveRadius, 0, 0, 100, 100, 0.5, 10, 10, 10, -3)
}

func TestSmoothRoundRectValidate(t *testing.T) {
	r := NewSmoothRoundRect(0, 0, 100, 100, 1, UniformRadii(10))
	if err := r.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	r = NewSmoothRoundRect(0, 0, 0, 100, 2, CornerRadii{TopLeft: 1, TopRight: 1, BottomRight: 0, BottomLeft: 1})
	err := r.Validate()
	for _, target := range []error{ErrNonPositiveSize, ErrSmoothnessRange, ErrNonPositiveRadius} {
		if !errors.Is(err, target) {
			t.Errorf("got error %q, expected it to match %q", err, target)
		}
	}
	if !strings.Contains(err.Error(), "bottom-right radius is 0") {
		t.Errorf("error %q doesn't name the offending corner", err)
	}
}

func TestSmoothRoundRectOverlaps(t *testing.T) {
	f := func(w, h, s float64, radii CornerRadii, want bool) {
		t.Helper()
		r := NewSmoothRoundRect(0, 0, w, h, s, radii)
		if got := r.Overlaps(); got != want {
			t.Errorf("Overlaps() for %v = %t, want %t", r, got, want)
		}
	}
	f(100, 100, 0.6, UniformRadii(20), false)
	f(100, 100, 0.5, UniformRadii(40), true)
	f(200, 200, 0.5, CornerRadii{10, 40, 40, 40}, false)
	// Exactly touching corners don't overlap.
	f(100, 100, 1, UniformRadii(25), false)
	// Only the left edge is too short.
	f(300, 50, 0.5, CornerRadii{TopLeft: 20, TopRight: 1, BottomRight: 1, BottomLeft: 20}, true)
}

func TestSmoothRoundRectOverlapWarning(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	DrawSmoothRoundRect(0, 0, 100, 100, 0.6, 20, 20, 20, 20)
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}

	p := DrawSmoothRoundRect(0, 0, 100, 100, 1, 40, 40, 40, 40)
	if !strings.Contains(buf.String(), "corners overlap") {
		t.Errorf("expected a warning about overlapping corners, got %q", buf.String())
	}
	// Overlapping corners are drawn as they are.
	if n := len(p); n != 17 {
		t.Errorf("got %d elements, want 17", n)
	}
	diff(t, Pt(0, 20), p[0].P0, approx(1e-12))
}

func TestSmoothRoundRectArea(t *testing.T) {
	r := NewSmoothRoundRect(0, 0, 100, 100, 0.6, UniformRadii(20))
	area := r.Area()
	// Smooth corners hug the rectangle's corners more closely than circular
	// ones of the same radius.
	if circular := NewRoundedRect(0, 0, 100, 100, 20).Area(); area <= circular {
		t.Errorf("got area %v, expected more than %v", area, circular)
	}
	if area > 100*100+1 {
		t.Errorf("got area %v, expected at most about %v", area, 100*100)
	}
	// The corners run out to the rectangle's corners and back, so the outline
	// is slightly longer than the rectangle's.
	if p := r.Perimeter(DefaultAccuracy); p < 400 || p > 405 {
		t.Errorf("got perimeter %v, expected about 402.5", p)
	}
}
