// Package corepath converts squircle paths into Cogent Core's ppath paths,
// which the Cogent Core renderers and SVG writer consume.
//
// ppath stores coordinates as float32. Elliptical arcs are passed through as
// ArcTo commands; ppath itself decides whether to keep them or to convert them
// to cubic Béziers, see [ppath.ArcToCubeImmediate].
package corepath

import (
	"cogentcore.org/core/paint/ppath"
	"honnef.co/go/squircle"
)

// Builder implements [squircle.Builder] by appending to a ppath path.
type Builder struct {
	Path *ppath.Path
}

var _ squircle.Builder = Builder{}

func (b Builder) MoveTo(pt squircle.Point) {
	b.Path.MoveTo(float32(pt.X), float32(pt.Y))
}

func (b Builder) LineTo(pt squircle.Point) {
	b.Path.LineTo(float32(pt.X), float32(pt.Y))
}

func (b Builder) CubicTo(p1, p2, p3 squircle.Point) {
	b.Path.CubeTo(
		float32(p1.X), float32(p1.Y),
		float32(p2.X), float32(p2.Y),
		float32(p3.X), float32(p3.Y))
}

func (b Builder) ArcTo(radii squircle.Vec2, xRotation float64, largeArc, sweep bool, end squircle.Point) {
	b.Path.ArcTo(
		float32(radii.X), float32(radii.Y), float32(xRotation),
		largeArc, sweep,
		float32(end.X), float32(end.Y))
}

func (b Builder) ClosePath() {
	b.Path.Close()
}

// Append replays p into dst.
//
// ppath drops degenerate segments, such as zero-length lines, and merges
// collinear lines, so dst may end up with fewer commands than p has elements.
func Append(dst *ppath.Path, p squircle.Path) {
	p.Replay(Builder{dst})
}

// New converts p to a ppath path.
func New(p squircle.Path) ppath.Path {
	out := ppath.New()
	Append(out, p)
	return *out
}

// SmoothRoundRect appends the outline of a smooth rounded rectangle to dst,
// in the manner of ppath's own shape constructors such as
// [ppath.Path.RoundedRectangle]. It panics under the same conditions as
// [squircle.DrawSmoothRoundRect].
func SmoothRoundRect(dst *ppath.Path, x, y, w, h, smoothness float32, radii squircle.CornerRadii) *ppath.Path {
	r := squircle.NewSmoothRoundRect(float64(x), float64(y), float64(w), float64(h), float64(smoothness), radii)
	r.Draw(Builder{dst})
	return dst
}
