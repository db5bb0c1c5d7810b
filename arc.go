package squircle

import (
	"iter"
	"math"
	"slices"
)

// Arc is an elliptical arc in center parameterization.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

var _ Shape = Arc{}

func (a Arc) Path(tolerance float64) Path { return slices.Collect(a.PathElements(tolerance)) }

// PathElements approximates the arc with cubic Béziers, after an initial MoveTo
// to the arc's start point.
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		p0 := sampleEllipse(a.Radii, a.XRotation, a.StartAngle)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}
		a.appendCubics(tolerance, yield)
	}
}

// appendCubics yields the cubic Béziers approximating the arc, without the
// initial MoveTo. It returns false if yield asked to stop.
func (a Arc) appendCubics(tolerance float64, yield func(PathElement) bool) bool {
	scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
	// Number of subdivisions per ellipse based on error tolerance.
	// Note: this may slightly underestimate the error for quadrants.
	nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
	n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
	angleStep := a.SweepAngle / n
	armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
	angle0 := a.StartAngle
	p0 := sampleEllipse(a.Radii, a.XRotation, angle0)

	for range int(n) {
		angle1 := angle0 + angleStep
		p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
		p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
		p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

		angle0 = angle1
		p0 = p3

		if !yield(CubicTo(
			a.Center.Translate(p1),
			a.Center.Translate(p2),
			a.Center.Translate(p3),
		)) {
			return false
		}
	}
	return true
}

// sampleEllipse takes the ellipse radii, how the radii are rotated, and the
// sweep angle, and returns a point on the ellipse relative to its center.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// rotatePt rotates pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// Start returns the arc's start point.
func (a Arc) Start() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle))
}

// End returns the arc's end point.
func (a Arc) End() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle+a.SweepAngle))
}

// BoundingBox returns the exact bounding box of the arc: its end points plus any
// horizontal or vertical extreme of the ellipse that lies within the sweep.
func (a Arc) BoundingBox() Rect {
	bbox := NewRectFromPoints(a.Start(), a.End())
	sinPhi, cosPhi := math.Sincos(a.XRotation)
	thX := math.Atan2(-a.Radii.Y*sinPhi, a.Radii.X*cosPhi)
	thY := math.Atan2(a.Radii.Y*cosPhi, a.Radii.X*sinPhi)
	for _, th := range [...]float64{thX, thX + math.Pi, thY, thY + math.Pi} {
		if angleWithin(th, a.StartAngle, a.SweepAngle) {
			bbox = bbox.UnionPoint(a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, th)))
		}
	}
	return bbox
}

// angleWithin reports whether th lies on the sweep that starts at start.
func angleWithin(th, start, sweep float64) bool {
	var d float64
	if sweep >= 0 {
		d = math.Mod(th-start, 2*math.Pi)
	} else {
		d = math.Mod(start-th, 2*math.Pi)
	}
	if d < 0 {
		d += 2 * math.Pi
	}
	return d <= math.Abs(sweep)
}

// Perimeter returns the length of the arc, measured on its cubic approximation.
func (a Arc) Perimeter(accuracy float64) float64 {
	var length float64
	cur := a.Start()
	a.appendCubics(accuracy, func(el PathElement) bool {
		length += CubicBez{cur, el.P0, el.P1, el.P2}.Arclen(accuracy)
		cur = el.P2
		return true
	})
	return length
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// SVGArc is an elliptical arc in endpoint parameterization, as used by SVG paths
// and by [PathElement] of kind [ArcToKind].
type SVGArc struct {
	From Point
	To   Point
	// Radii are the radii of the ellipse. If they are too small to span From and
	// To, they are scaled up, as SVG does.
	Radii Vec2
	// XRotation is the rotation of the ellipse's x-axis, in radians.
	XRotation float64
	// LargeArc selects the larger of the two possible arcs.
	LargeArc bool
	// Sweep selects the arc that runs in the direction of positive angles, from
	// the positive x-axis towards the positive y-axis. In this package's y-up
	// frame, a sweep of false is a clockwise arc.
	Sweep bool
}

// IsStraightLine reports whether the arc degenerates to a straight line, which
// is the case when a radius is zero or the end points coincide.
func (a SVGArc) IsStraightLine() bool {
	const epsilon = 1e-5
	return math.Abs(a.Radii.X) <= epsilon ||
		math.Abs(a.Radii.Y) <= epsilon ||
		a.From == a.To
}

// Arc converts the arc to center parameterization. The second return value is
// false if the arc is a straight line, see [SVGArc.IsStraightLine].
//
// See https://www.w3.org/TR/SVG11/implnote.html#ArcConversionEndpointToCenter
func (a SVGArc) Arc() (Arc, bool) {
	if a.IsStraightLine() {
		return Arc{}, false
	}

	rx := math.Abs(a.Radii.X)
	ry := math.Abs(a.Radii.Y)
	sinPhi, cosPhi := math.Sincos(a.XRotation)
	hd := a.From.Sub(a.To).Mul(0.5)
	hs := Vec2(a.From.Midpoint(a.To))

	// F.6.5.1
	p := Vec2{
		X: cosPhi*hd.X + sinPhi*hd.Y,
		Y: -sinPhi*hd.X + cosPhi*hd.Y,
	}

	// F.6.6: scale up radii that can't span the end points.
	if rf := p.X*p.X/(rx*rx) + p.Y*p.Y/(ry*ry); rf > 1.0 {
		s := math.Sqrt(rf)
		rx *= s
		ry *= s
	}

	rxry := rx * ry
	rxpy := rx * p.Y
	rypx := ry * p.X
	sumOfSq := rxpy*rxpy + rypx*rypx

	// F.6.5.2
	coe := math.Sqrt(max(0, (rxry*rxry-sumOfSq)/sumOfSq))
	if a.LargeArc == a.Sweep {
		coe = -coe
	}
	cx := coe * rxpy / ry
	cy := -coe * rypx / rx

	// F.6.5.3
	center := Point{
		X: cosPhi*cx - sinPhi*cy + hs.X,
		Y: sinPhi*cx + cosPhi*cy + hs.Y,
	}

	// F.6.5.5 and F.6.5.6
	startV := Vec2{(p.X - cx) / rx, (p.Y - cy) / ry}
	endV := Vec2{(-p.X - cx) / rx, (-p.Y - cy) / ry}
	startAngle := startV.Angle()
	sweepAngle := math.Mod(endV.Angle()-startAngle, 2*math.Pi)
	if a.Sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	} else if !a.Sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radii:      Vec2{rx, ry},
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		XRotation:  a.XRotation,
	}, true
}

func (a SVGArc) BoundingBox() Rect {
	arc, ok := a.Arc()
	if !ok {
		return NewRectFromPoints(a.From, a.To)
	}
	// The center parameterization recomputes the end points; make sure the
	// exact ones are included.
	return arc.BoundingBox().UnionPoint(a.From).UnionPoint(a.To)
}

func (a SVGArc) Perimeter(accuracy float64) float64 {
	arc, ok := a.Arc()
	if !ok {
		return a.To.Distance(a.From)
	}
	return arc.Perimeter(accuracy)
}

func (a SVGArc) Path(tolerance float64) Path { return slices.Collect(a.PathElements(tolerance)) }

// PathElements implements [Shape]. The arc is approximated with cubic Béziers
// whose final end point is exactly To.
func (a SVGArc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(a.From)) {
			return
		}
		a.appendCubics(tolerance, yield)
	}
}

// appendCubics yields the cubic Béziers approximating the arc, or a line if the
// arc is straight, without the initial MoveTo. It returns false if yield asked
// to stop.
func (a SVGArc) appendCubics(tolerance float64, yield func(PathElement) bool) bool {
	arc, ok := a.Arc()
	if !ok {
		return yield(LineTo(a.To))
	}
	var last PathElement
	var pending bool
	if !arc.appendCubics(tolerance, func(el PathElement) bool {
		if pending && !yield(last) {
			return false
		}
		last, pending = el, true
		return true
	}) {
		return false
	}
	if pending {
		last.P2 = a.To
		return yield(last)
	}
	return true
}

var _ Shape = SVGArc{}
