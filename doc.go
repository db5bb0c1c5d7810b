// Package squircle computes the outlines of smooth rounded rectangles:
// rectangles whose corners blend into the edges with continuous curvature,
// instead of switching abruptly from a straight line to a circular arc.
//
// The outline is produced as a [Path], a plain sequence of drawing commands
// (move, line, cubic Bézier, elliptical arc, close) that any 2D graphics
// backend can consume. The subpackages of backend replay paths into concrete
// graphics libraries.
//
// # Corners
//
// Every corner is built from the same four pieces: the straight edge ends, a
// cubic Bézier eases into a circular arc of the corner's radius, the arc
// turns the corner, and a second Bézier eases back out onto the next edge.
//
// The geometry of a corner only depends on its radius and the rectangle's
// smoothness. It is computed once, by [NewCurveGeometry], in the frame of the
// top-left corner, and [QuarterRotate] maps it onto the other three corners.
// [DrawCorner] emits a single corner, and [DrawSmoothRoundRect] assembles all
// four into a closed path.
//
// # Coordinate system
//
// This package uses a y-up coordinate system, the usual convention for math.
// A rectangle with origin (x, y) extends to the right and up; its top-left
// corner is (x, y+height). Outlines run clockwise, starting at the top-left
// corner.
//
// Most graphics libraries and file formats use a y-down coordinate system.
// Transforming a path with [FlipY] followed by a translation maps it into such
// a space; [Path.Transform] takes care of reversing the direction of arcs.
//
// # Shapes
//
// [Shape] describes geometric shapes that have a perimeter and a bounding box,
// and that can be converted to a series of path elements. This package
// includes the following shapes:
//   - [Arc]
//   - [CubicBez]
//   - [Line]
//   - [Path]
//   - [Rect]
//   - [RoundedRect]
//   - [SmoothRoundRect]
//   - [SVGArc]
//
// # Errors
//
// Invalid dimensions, radii, and smoothness values are programming errors.
// [DrawSmoothRoundRect] and [NewCurveGeometry] panic when given them. Use
// [SmoothRoundRect.Validate] to check values that come from elsewhere.
//
// Radii that are too large for the rectangle are not an error, even though
// they make adjacent corners overlap. Such outlines are drawn as they are, and
// a warning is logged; see [SetLogger].
package squircle
