package squircle

import (
	"errors"
	"testing"
)

func TestSVGSingle(t *testing.T) {
	path := CubicBez{
		Pt(10.0, 10.0),
		Pt(20.0, 20.0),
		Pt(30.0, 30.0),
		Pt(40.0, 40.0),
	}.Path(DefaultTolerance)
	want := "M10,10 C20,20 30,30 40,40"
	got := SVG(path.Elements(), SVGOptions{})
	diff(t, got, want)
}

func TestSVGTwoMove(t *testing.T) {
	path := Path{
		MoveTo(Pt(10, 10)),
		LineTo(Pt(40, 40)),
		MoveTo(Pt(50, 50)),
		CubicTo(Pt(30, 30), Pt(20, 20), Pt(10, 10)),
		ClosePath(),
	}
	want := "M10,10 L40,40 M50,50 C30,30 20,20 10,10 Z"
	got := SVG(path.Elements(), SVGOptions{})
	diff(t, got, want)
}

func TestSVGArc(t *testing.T) {
	path := Path{
		MoveTo(Pt(0, 0)),
		ArcTo(Vec(5, 2.5), 0.5, true, false, Pt(10, 0)),
	}
	want := "M0,0 A5,2.5 28.648 1,0 10,0"
	got := SVG(path.Elements(), SVGOptions{MaxPrecision: 3})
	diff(t, got, want)
}

func TestSVGPrecision(t *testing.T) {
	path := Path{
		MoveTo(Pt(1.23456, -0.0001)),
		LineTo(Pt(2, 100)),
	}
	diff(t, "M1.23,0 L2,100", SVG(path.Elements(), SVGOptions{MaxPrecision: 2}))
	diff(t, "M1.23456,-0.0001 L2,100", SVG(path.Elements(), SVGOptions{}))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestWriteSVGError(t *testing.T) {
	p := NewRoundedRect(0, 0, 10, 10, 2).Path(DefaultTolerance)
	if err := WriteSVG(failingWriter{}, p.Elements(), SVGOptions{}); err == nil {
		t.Error("expected an error")
	}
}
