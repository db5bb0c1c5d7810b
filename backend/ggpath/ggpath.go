// Package ggpath draws squircle paths with the gg 2D graphics library.
//
// gg paths have no elliptical arcs, so arcs are converted to cubic Béziers
// while replaying. gg uses a y-down coordinate system; transform paths with
// [squircle.FlipY] and a translation before drawing them, or use
// [DeviceTransform].
package ggpath

import (
	"log/slog"

	"github.com/gogpu/gg"
	"honnef.co/go/squircle"
)

// pather is the drawing surface shared by *gg.Path and *gg.Context.
type pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
}

// Builder implements [squircle.Builder] on top of a gg path or context.
type Builder struct {
	dst       pather
	close     func()
	tolerance float64

	cur, start squircle.Point
}

var _ squircle.Builder = (*Builder)(nil)

// NewPathBuilder returns a builder that appends to p. Arcs are approximated
// to within tolerance.
func NewPathBuilder(p *gg.Path, tolerance float64) *Builder {
	return &Builder{dst: p, close: p.Close, tolerance: tolerance}
}

// NewContextBuilder returns a builder that adds to the current path of dc.
// Arcs are approximated to within tolerance.
func NewContextBuilder(dc *gg.Context, tolerance float64) *Builder {
	return &Builder{dst: dc, close: dc.ClosePath, tolerance: tolerance}
}

func (b *Builder) MoveTo(pt squircle.Point) {
	b.dst.MoveTo(pt.X, pt.Y)
	b.cur, b.start = pt, pt
}

func (b *Builder) LineTo(pt squircle.Point) {
	b.dst.LineTo(pt.X, pt.Y)
	b.cur = pt
}

func (b *Builder) CubicTo(p1, p2, p3 squircle.Point) {
	b.dst.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	b.cur = p3
}

func (b *Builder) ArcTo(radii squircle.Vec2, xRotation float64, largeArc, sweep bool, end squircle.Point) {
	a := squircle.SVGArc{
		From:      b.cur,
		To:        end,
		Radii:     radii,
		XRotation: xRotation,
		LargeArc:  largeArc,
		Sweep:     sweep,
	}
	for el := range a.PathElements(b.tolerance) {
		switch el.Kind {
		case squircle.LineToKind:
			b.LineTo(el.P0)
		case squircle.CubicToKind:
			b.CubicTo(el.P0, el.P1, el.P2)
		}
	}
	b.cur = end
}

func (b *Builder) ClosePath() {
	b.close()
	b.cur = b.start
}

// AppendPath replays p into dst.
func AppendPath(dst *gg.Path, p squircle.Path, tolerance float64) {
	p.Replay(NewPathBuilder(dst, tolerance))
}

// NewPath converts p to a gg path.
func NewPath(p squircle.Path, tolerance float64) *gg.Path {
	out := gg.NewPath()
	AppendPath(out, p, tolerance)
	return out
}

// Draw adds p to the current path of dc, to be filled or stroked by the
// caller.
func Draw(dc *gg.Context, p squircle.Path, tolerance float64) {
	p.Replay(NewContextBuilder(dc, tolerance))
	squircle.Logger().Debug("ggpath: drew path",
		slog.Int("elements", len(p)),
		slog.Float64("tolerance", tolerance))
}

// DeviceTransform maps this package's y-up frame onto the y-down pixel grid of
// a canvas of the given height: the point (0, height) becomes the top-left
// pixel.
func DeviceTransform(height float64) squircle.Affine {
	return squircle.FlipY.ThenTranslate(squircle.Vec(0, height))
}

// Fill fills the outline of s in the current color of dc, using
// [DeviceTransform] to map it onto the canvas.
func Fill(dc *gg.Context, s squircle.Shape, tolerance float64) error {
	p := s.Path(tolerance).Transform(DeviceTransform(float64(dc.Height())))
	Draw(dc, p, tolerance)
	return dc.Fill()
}
