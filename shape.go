package squircle

import (
	"iter"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 4 to support cubic Béziers.
const MaxExtrema = 4

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultAccuracy = 1e-6

// DefaultTolerance is a default value for methods that approximate arcs with
// cubic Béziers. It is suitable for drawing UI elements.
const DefaultTolerance = 0.1

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the extrema of the curve.
	//
	// Only extrema within the interior of the curve count.
	// At most four extrema can be reported, which is sufficient for
	// cubic Béziers.
	//
	// The extrema should be reported in increasing parameter order.
	Extrema() ([MaxExtrema]float64, int)
}

// BoundingBox returns the smallest (axis-aligned) rectangle that encloses the
// curve in the range [0, 1].
func BoundingBox(c interface {
	Extremer
	ParametricCurve
}) Rect {
	bbox := NewRectFromPoints(c.Eval(0), c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// ClosedShape describes shapes with a closed outline.
type ClosedShape interface {
	Shape
	// Area returns the area enclosed by the shape.
	Area() float64
}

type Shape interface {
	// Perimeter returns the length of a shape's perimeter.
	Perimeter(accuracy float64) float64

	// BoundingBox returns the smallest rectangle that encloses the shape.
	BoundingBox() Rect

	// PathElements returns an iterator over path elements that express the
	// shape as a series of "move to", "line to", "cubic Bézier to", "arc to",
	// and "close path" commands.
	//
	// The tolerance parameter controls the accuracy of conversion of geometric
	// primitives to Bézier curves, for shapes that need such a conversion. For
	// drawing as in UI elements, a value of 0.1 is appropriate, as it is
	// unlikely to be visible to the eye.
	PathElements(tolerance float64) iter.Seq[PathElement]

	Path(tolerance float64) Path
}

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
	Start() Point
	End() Point
}
