package squircle

import "fmt"

// Rotation indices of the four corners, in drawing order.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// DrawCorner emits the outline of one smooth corner into b.
//
// corner is the corner of the rectangle, and quarterRotations identifies which
// corner it is: [TopLeft], [TopRight], [BottomRight], or [BottomLeft]. The
// geometry computed for the top-left corner is rotated clockwise by that many
// quarter turns.
//
// The outline enters along the edge preceding the corner in clockwise order,
// eases into a circular arc with a cubic Bézier, follows the arc, and eases
// back out onto the next edge. The top-left corner starts the path with a
// MoveTo; the others connect to the previous corner with a LineTo.
//
// DrawCorner panics if quarterRotations isn't in [0, 3].
func DrawCorner(b Builder, radius float64, curve CurveGeometry, corner Point, quarterRotations int) {
	if quarterRotations < 0 || quarterRotations > 3 {
		panic(fmt.Sprintf("squircle: corner rotation index must be in [0, 3], got %d", quarterRotations))
	}
	i := quarterRotations
	at := func(v Vec2, n int) Point {
		return corner.Translate(QuarterRotate(v, n))
	}

	edgeStart := at(curve.EdgeConnectingVector(), i+1)
	if i == 0 {
		b.MoveTo(edgeStart)
	} else {
		b.LineTo(edgeStart)
	}
	b.CubicTo(
		at(curve.EdgeCurveVector(), i+1),
		at(curve.ArcCurveVector(), i+1),
		at(curve.ArcConnectingVectorTransposed(), i),
	)
	b.ArcTo(Vec(radius, radius), 0, false, false, at(curve.ArcConnectingVector, i))
	b.CubicTo(
		at(curve.ArcCurveVector(), i),
		at(curve.EdgeCurveVector(), i),
		at(curve.EdgeConnectingVector(), i),
	)
}
