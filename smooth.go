package squircle

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// SmoothRoundRect is a rectangle whose corners are rounded with a continuous
// curvature profile: each corner eases from its edges into a circular arc
// through cubic Béziers, instead of meeting the arc abruptly. The result looks
// like a squircle rather than a plain rounded rectangle.
//
// Smoothness controls how much of each corner is easing, from barely any just
// above 0 to the most at 1. A smoothness of 0 is not supported; use
// [RoundedRect] for plain circular corners.
//
// Each corner takes up (1 + Smoothness) × radius of both of its edges. Radii
// that are too large for the rectangle make adjacent corners overlap, which is
// neither prevented nor corrected. See [SmoothRoundRect.Overlaps].
type SmoothRoundRect struct {
	Rect
	Radii      CornerRadii
	Smoothness float64
}

var _ ClosedShape = SmoothRoundRect{}

// NewSmoothRoundRect returns a smooth rounded rectangle with origin (x, y),
// the bottom-left corner in this package's y-up frame.
func NewSmoothRoundRect(x, y, width, height, smoothness float64, radii CornerRadii) SmoothRoundRect {
	return SmoothRoundRect{
		Rect:       Rect{x, y, x + width, y + height},
		Radii:      radii,
		Smoothness: smoothness,
	}
}

// Validate reports every way in which r violates the preconditions of
// [SmoothRoundRect.Draw]. The returned error wraps [ErrNonPositiveSize],
// [ErrSmoothnessRange], and [ErrNonPositiveRadius] as appropriate.
func (r SmoothRoundRect) Validate() error {
	var errs []error
	if w := r.Width(); !(w > 0) {
		errs = append(errs, fmt.Errorf("%w: width is %g", ErrNonPositiveSize, w))
	}
	if h := r.Height(); !(h > 0) {
		errs = append(errs, fmt.Errorf("%w: height is %g", ErrNonPositiveSize, h))
	}
	if s := r.Smoothness; !(s > 0 && s <= 1) {
		errs = append(errs, fmt.Errorf("%w: smoothness is %g", ErrSmoothnessRange, s))
	}
	names := [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}
	for i, radius := range r.Radii.Clockwise() {
		if !(radius > 0) {
			errs = append(errs, fmt.Errorf("%w: %s radius is %g", ErrNonPositiveRadius, names[i], radius))
		}
	}
	return errors.Join(errs...)
}

// extents returns how far each corner reaches along its edges, in drawing
// order.
func (r SmoothRoundRect) extents() [4]float64 {
	var out [4]float64
	for i, radius := range r.Radii.Clockwise() {
		out[i] = (1 + r.Smoothness) * radius
	}
	return out
}

// Overlaps reports whether two adjacent corners together take up more than the
// length of the edge between them.
func (r SmoothRoundRect) Overlaps() bool {
	ext := r.extents()
	w, h := r.Width(), r.Height()
	return ext[TopLeft]+ext[TopRight] > w ||
		ext[TopRight]+ext[BottomRight] > h ||
		ext[BottomRight]+ext[BottomLeft] > w ||
		ext[BottomLeft]+ext[TopLeft] > h
}

// corners returns the rectangle's corners in drawing order, which is also the
// order of their rotation indices.
func (r SmoothRoundRect) corners() [4]Point {
	return [4]Point{
		TopLeft:     Pt(r.X0, r.Y1),
		TopRight:    Pt(r.X1, r.Y1),
		BottomRight: Pt(r.X1, r.Y0),
		BottomLeft:  Pt(r.X0, r.Y0),
	}
}

// Draw emits the outline into b. It runs clockwise, starting on the left edge
// below the top-left corner, and consists of one MoveTo, three LineTo, eight
// CubicTo, four ArcTo, and a ClosePath.
//
// Draw panics if [SmoothRoundRect.Validate] returns an error. The panic value
// is that error.
func (r SmoothRoundRect) Draw(b Builder) {
	if err := r.Validate(); err != nil {
		panic(err)
	}

	log := Logger()
	if r.Overlaps() && log.Enabled(context.Background(), slog.LevelWarn) {
		log.Warn("squircle: corners overlap",
			slog.Any("rect", r.Rect),
			slog.Float64("smoothness", r.Smoothness),
			slog.Any("radii", r.Radii.Clockwise()))
	}

	radii := r.Radii.Clockwise()
	for i, corner := range r.corners() {
		DrawCorner(b, radii[i], NewCurveGeometry(radii[i], r.Smoothness), corner, i)
	}
	b.ClosePath()
}

// Path returns the outline of r. Arcs are kept as arcs, so tolerance is
// unused; see [Path.Cubics].
func (r SmoothRoundRect) Path(tolerance float64) Path {
	p := make(Path, 0, 17)
	r.Draw(&p)
	Logger().Debug("squircle: built path", slog.Int("elements", len(p)))
	return p
}

func (r SmoothRoundRect) PathElements(tolerance float64) iter.Seq[PathElement] {
	return slices.Values(r.Path(tolerance))
}

// BoundingBox returns the bounding box of the outline. Because the points
// joining easing curves and arcs are offset from their corner by a fixed,
// unscaled amount, the box can extend slightly beyond r.Rect.
func (r SmoothRoundRect) BoundingBox() Rect {
	return r.Path(DefaultTolerance).BoundingBox()
}

// Area returns the area enclosed by the outline.
func (r SmoothRoundRect) Area() float64 {
	// The outline runs clockwise in a y-up frame, which has negative signed
	// area.
	return -r.Path(DefaultTolerance).SignedArea()
}

func (r SmoothRoundRect) Perimeter(accuracy float64) float64 {
	return r.Path(DefaultTolerance).Perimeter(accuracy)
}

// DrawSmoothRoundRect returns the outline of a smooth rounded rectangle with
// origin (x, y), the given size and smoothness, and one radius per corner.
//
// It is shorthand for building a [SmoothRoundRect] and calling
// [SmoothRoundRect.Path], and panics under the same conditions: when width or
// height isn't positive, smoothness isn't in (0, 1], or a radius isn't
// positive.
func DrawSmoothRoundRect(x, y, width, height, smoothness, topLeft, topRight, bottomRight, bottomLeft float64) Path {
	radii := CornerRadii{
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomRight: bottomRight,
		BottomLeft:  bottomLeft,
	}
	return NewSmoothRoundRect(x, y, width, height, smoothness, radii).Path(DefaultTolerance)
}
