package squircle

import (
	"fmt"
	"math"
)

// CurveGeometry describes one smooth corner in a canonical frame: the corner
// sits at the origin and the offsets run along the edge that the corner's
// outline leaves through. [DrawCorner] rotates the values into place.
//
// For radii of at least 1, the offsets satisfy 0 ≤ ArcCurveOffset ≤
// EdgeCurveOffset ≤ EdgeConnectingOffset. Smaller radii can break the ordering,
// because ArcCurveOffset and ArcConnectingVector don't scale with the radius.
type CurveGeometry struct {
	// EdgeConnectingOffset is the distance from the corner at which the straight
	// edge ends and the easing curve begins.
	EdgeConnectingOffset float64
	// EdgeCurveOffset is the distance from the corner of the easing curve's
	// control point on the edge side.
	EdgeCurveOffset float64
	// ArcCurveOffset is the distance from the corner of the easing curve's
	// control point on the arc side.
	ArcCurveOffset float64
	// ArcConnectingVector is the offset from the corner of the point where the
	// easing curve meets the circular arc.
	//
	// Unlike the other offsets, it is not scaled by the radius.
	ArcConnectingVector Vec2
}

// NewCurveGeometry computes the geometry of a corner with the given radius and
// smoothness.
//
// It panics if radius isn't positive or smoothness isn't in (0, 1]. The
// returned error values can be matched with [ErrNonPositiveRadius] and
// [ErrSmoothnessRange].
func NewCurveGeometry(radius, smoothness float64) CurveGeometry {
	if !(radius > 0) {
		panic(fmt.Errorf("squircle: %w, got %g", ErrNonPositiveRadius, radius))
	}
	if !(smoothness > 0 && smoothness <= 1) {
		panic(fmt.Errorf("squircle: %w, got %g", ErrSmoothnessRange, smoothness))
	}

	edgeConnecting := (1 + smoothness) * radius
	arcAngle := math.Pi / 4 * smoothness
	sin, cos := math.Sincos(arcAngle)
	arcCurve := 1 - math.Tan(arcAngle/2)
	return CurveGeometry{
		EdgeConnectingOffset: edgeConnecting,
		EdgeCurveOffset:      edgeConnecting - (edgeConnecting-arcCurve)*(2.0/3.0),
		ArcCurveOffset:       arcCurve,
		ArcConnectingVector:  Vec2{1 - sin, 1 - cos},
	}
}

// EdgeConnectingVector returns EdgeConnectingOffset as a vector along the
// positive x-axis.
func (g CurveGeometry) EdgeConnectingVector() Vec2 { return Vec2{g.EdgeConnectingOffset, 0} }

// EdgeCurveVector returns EdgeCurveOffset as a vector along the positive
// x-axis.
func (g CurveGeometry) EdgeCurveVector() Vec2 { return Vec2{g.EdgeCurveOffset, 0} }

// ArcCurveVector returns ArcCurveOffset as a vector along the positive x-axis.
func (g CurveGeometry) ArcCurveVector() Vec2 { return Vec2{g.ArcCurveOffset, 0} }

// ArcConnectingVectorTransposed returns ArcConnectingVector with its
// components swapped, which mirrors it across the corner's diagonal.
func (g CurveGeometry) ArcConnectingVectorTransposed() Vec2 {
	return g.ArcConnectingVector.Transpose()
}

// Extent returns how far the corner reaches along each of its two edges.
func (g CurveGeometry) Extent() float64 {
	return g.EdgeConnectingOffset
}
