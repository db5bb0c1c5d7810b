package squircle

import (
	"iter"
	"math"
	"slices"
)

// Rect is an axis-aligned rectangle spanning (X0, Y0) to (X1, Y1).
//
// Like the rest of this package, rectangles live in a y-up frame: (X0, Y0) is
// the bottom-left corner and (X1, Y1) the top-right corner of a rectangle
// with non-negative width and height.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

var _ ClosedShape = Rect{}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns a rectangle with the given width and height, extending
// to the right and up (for positive sizes) from the origin. Width and height are
// ensured to be non-negative.
func NewRectFromOrigin(origin Point, width, height float64) Rect {
	return NewRectFromPoints(origin, origin.Translate(Vec(width, height)))
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Origin returns the point (X0, Y0).
func (r Rect) Origin() Point {
	return Point{
		X: r.X0,
		Y: r.Y0,
	}
}

// Width returns the width of the rectangle. The result is negative if X1 < X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the height of the rectangle. The result is negative if Y1 < Y0.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
//
// The logic simply applies the amount in each direction. If rectangle
// area or added dimensions are negative, this could give odd results.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// ContainsRect reports whether o lies entirely within r, with o allowed to exceed r
// by at most epsilon in any direction.
func (r Rect) ContainsRect(o Rect, epsilon float64) bool {
	return o.X0 >= r.X0-epsilon &&
		o.Y0 >= r.Y0-epsilon &&
		o.X1 <= r.X1+epsilon &&
		o.Y1 <= r.Y1+epsilon
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y1)
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

func (r Rect) BoundingBox() Rect {
	return r.Abs()
}

func (r Rect) Perimeter(accuracy float64) float64 {
	return 2 * (math.Abs(r.Width()) + math.Abs(r.Height()))
}

func (r Rect) Path(tolerance float64) Path { return slices.Collect(r.PathElements(tolerance)) }

// PathElements implements [Shape]. The outline starts at the top-left corner and
// runs clockwise, like that of [SmoothRoundRect].
func (r Rect) PathElements(tolerance float64) iter.Seq[PathElement] {
	r = r.Abs()
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y1))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X0, r.Y0))) &&
			yield(ClosePath())
	}
}

// CornerRadii holds one radius per corner of a rectangle.
type CornerRadii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformRadii returns radii that use r for every corner.
func UniformRadii(r float64) CornerRadii {
	return CornerRadii{r, r, r, r}
}

// Min returns the smallest of the four radii.
func (r CornerRadii) Min() float64 {
	return min(r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft)
}

// Max returns the largest of the four radii.
func (r CornerRadii) Max() float64 {
	return max(r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft)
}

// Clockwise returns the radii in drawing order: top-left, top-right,
// bottom-right, bottom-left. The index of a radius is its corner's number of
// quarter rotations.
func (r CornerRadii) Clockwise() [4]float64 {
	return [4]float64{r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft}
}

func (r CornerRadii) IsInf() bool {
	return math.IsInf(r.TopLeft, 0) ||
		math.IsInf(r.TopRight, 0) ||
		math.IsInf(r.BottomRight, 0) ||
		math.IsInf(r.BottomLeft, 0)
}

func (r CornerRadii) IsNaN() bool {
	return math.IsNaN(r.TopLeft) ||
		math.IsNaN(r.TopRight) ||
		math.IsNaN(r.BottomRight) ||
		math.IsNaN(r.BottomLeft)
}

// RoundedRect is a rectangle whose corners are rounded with plain circular arcs.
//
// It is the degenerate case of [SmoothRoundRect] with a smoothness of zero, which
// the smooth construction doesn't support.
type RoundedRect struct {
	Rect
	Radii CornerRadii
}

var _ ClosedShape = RoundedRect{}

func NewRoundedRect(x0, y0, x1, y1, radius float64) RoundedRect {
	return RoundedRect{
		Rect{x0, y0, x1, y1}.Abs(),
		UniformRadii(radius),
	}
}

func (r RoundedRect) Area() float64 {
	// For each corner, subtract the square that bounds the quarter circle and
	// add back in the area of the quarter circle.
	corner := func(radius float64) float64 {
		return (math.Pi/4 - 1) * radius * radius
	}
	return r.Rect.Area() +
		corner(r.Radii.TopLeft) +
		corner(r.Radii.TopRight) +
		corner(r.Radii.BottomRight) +
		corner(r.Radii.BottomLeft)
}

func (r RoundedRect) Perimeter(accuracy float64) float64 {
	corner := func(radius float64) float64 {
		return (-2.0 + math.Pi/2) * radius
	}
	return r.Rect.Perimeter(accuracy) +
		corner(r.Radii.TopLeft) +
		corner(r.Radii.TopRight) +
		corner(r.Radii.BottomRight) +
		corner(r.Radii.BottomLeft)
}

func (r RoundedRect) BoundingBox() Rect {
	return r.Rect.Abs()
}

func (r RoundedRect) Path(tolerance float64) Path {
	var p Path
	r.Draw(&p)
	return p
}

func (r RoundedRect) PathElements(tolerance float64) iter.Seq[PathElement] {
	return slices.Values(r.Path(tolerance))
}

// Draw emits the outline into b, starting on the left edge below the top-left
// corner and running clockwise.
func (r RoundedRect) Draw(b Builder) {
	rect := r.Rect.Abs()
	rad := r.Radii
	arc := func(radius float64, end Point) {
		b.ArcTo(Vec(radius, radius), 0, false, false, end)
	}

	b.MoveTo(Pt(rect.X0, rect.Y1-rad.TopLeft))
	arc(rad.TopLeft, Pt(rect.X0+rad.TopLeft, rect.Y1))
	b.LineTo(Pt(rect.X1-rad.TopRight, rect.Y1))
	arc(rad.TopRight, Pt(rect.X1, rect.Y1-rad.TopRight))
	b.LineTo(Pt(rect.X1, rect.Y0+rad.BottomRight))
	arc(rad.BottomRight, Pt(rect.X1-rad.BottomRight, rect.Y0))
	b.LineTo(Pt(rect.X0+rad.BottomLeft, rect.Y0))
	arc(rad.BottomLeft, Pt(rect.X0, rect.Y0+rad.BottomLeft))
	b.ClosePath()
}
