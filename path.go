package squircle

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Draw an elliptical arc from the current location to the point.
	ArcToKind
	// Close off the path.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case CubicToKind:
		return "CubicTo"
	case ArcToKind:
		return "ArcTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is a single drawing command of a [Path].
//
// A valid path has MoveTo at the beginning of each subpath. For MoveTo, LineTo,
// and ArcTo, P0 is the end point. For CubicTo, P0 and P1 are the control points
// and P2 is the end point. Radii, XRotation, LargeArc, and Sweep are only used
// by ArcTo and have the meaning documented on [SVGArc].
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point

	Radii     Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

func (el PathElement) String() string {
	switch el.Kind {
	case ArcToKind:
		return fmt.Sprintf("ArcTo(%s, %s, %g, %t, %t)", el.P0, el.Radii, el.XRotation, el.LargeArc, el.Sweep)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
	}
}

// End returns the point the element moves the pen to. It returns false for
// ClosePath, whose end point depends on the start of the subpath.
func (el PathElement) End() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind, ArcToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

// Transform applies an affine transformation to the element.
//
// Arcs stay arcs: the ellipse is mapped through aff and re-decomposed into radii
// and rotation, and the sweep direction is reversed if aff contains a
// reflection.
func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ArcToKind:
		ellipse := Rotate(el.XRotation).Mul(Scale(el.Radii.X, el.Radii.Y))
		radii, th := aff.Mul(ellipse).svd()
		sweep := el.Sweep
		if aff.Determinant() < 0 {
			sweep = !sweep
		}
		return ArcTo(radii, th, el.LargeArc, sweep, el.P0.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf() ||
		el.Radii.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN() ||
		el.Radii.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, end Point) PathElement {
	return PathElement{
		Kind:      ArcToKind,
		P0:        end,
		Radii:     radii,
		XRotation: xRotation,
		LargeArc:  largeArc,
		Sweep:     sweep,
	}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Builder is the narrow interface through which shapes emit their outlines.
//
// [*Path] implements it by recording the commands; the backend packages
// implement it on top of graphics libraries.
type Builder interface {
	MoveTo(pt Point)
	LineTo(pt Point)
	CubicTo(p1, p2, p3 Point)
	// ArcTo draws an elliptical arc from the current point to end. See
	// [SVGArc] for the meaning of the arguments.
	ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, end Point)
	ClosePath()
}

// Path is a sequence of path elements, as produced by [DrawSmoothRoundRect].
//
// Conceptually, a Path contains zero or more subpaths. Each subpath always
// begins with a MoveTo, then has zero or more LineTo, CubicTo, and ArcTo
// elements, and optionally ends with a ClosePath.
type Path []PathElement

var _ Shape = Path{}
var _ Builder = (*Path)(nil)

func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

func (p *Path) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

func (p *Path) ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, end Point) {
	p.Push(ArcTo(radii, xRotation, largeArc, sweep, end))
}

func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Push adds an element to the path.
func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

// Pop removes and returns the last element in the path. If the path contains no more
// elements, false is returned.
func (p *Path) Pop() (PathElement, bool) {
	if len(*p) == 0 {
		return PathElement{}, false
	}
	el := (*p)[len(*p)-1]
	*p = (*p)[:len(*p)-1]
	return el, true
}

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] {
	return slices.Values([]PathElement(p))
}

// PathElements implements [Shape]. The path's arcs are returned as arcs; use
// [Path.Cubics] for a path made only of lines and cubic Béziers.
func (p Path) PathElements(tolerance float64) iter.Seq[PathElement] {
	return p.Elements()
}

// Path implements [Shape].
func (p Path) Path(tolerance float64) Path {
	return p
}

// Replay emits the path's elements into b, in order.
func (p Path) Replay(b Builder) {
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			b.MoveTo(el.P0)
		case LineToKind:
			b.LineTo(el.P0)
		case CubicToKind:
			b.CubicTo(el.P0, el.P1, el.P2)
		case ArcToKind:
			b.ArcTo(el.Radii, el.XRotation, el.LargeArc, el.Sweep, el.P0)
		case ClosePathKind:
			b.ClosePath()
		default:
			panic(fmt.Sprintf("invalid PathElement kind %v", el.Kind))
		}
	}
}

// Count returns the number of elements of the given kind.
func (p Path) Count(kind PathElementKind) int {
	var n int
	for _, el := range p {
		if el.Kind == kind {
			n++
		}
	}
	return n
}

// Closed reports whether the path ends with a ClosePath.
func (p Path) Closed() bool {
	return len(p) > 0 && p[len(p)-1].Kind == ClosePathKind
}

// Start returns the point of the path's first MoveTo.
func (p Path) Start() Point {
	for _, el := range p {
		if el.Kind == MoveToKind {
			return el.P0
		}
	}
	return Point{}
}

// End returns the current point after drawing the whole path. After a
// ClosePath, that is the start of the closed subpath.
func (p Path) End() Point {
	var cur Point
	p.walk(func(from Point, el PathElement, to Point) bool {
		cur = to
		return true
	})
	return cur
}

// walk calls fn for every element with the pen position before and after the
// element. A ClosePath moves the pen back to the start of the subpath.
func (p Path) walk(fn func(from Point, el PathElement, to Point) bool) {
	var cur, start Point
	for _, el := range p {
		var to Point
		switch el.Kind {
		case MoveToKind:
			to = el.P0
			start = to
		case ClosePathKind:
			to = start
		default:
			to, _ = el.End()
		}
		if !fn(cur, el, to) {
			return
		}
		cur = to
	}
}

// Transform returns a new path with an affine transformation applied to the
// path. See [PathElement.Transform] for how arcs are handled.
func (p Path) Transform(aff Affine) Path {
	out := make(Path, len(p))
	for i := range p {
		out[i] = p[i].Transform(aff)
	}
	return out
}

// Cubics returns a copy of the path in which every arc has been replaced by cubic
// Béziers approximating it to within tolerance. This is useful for backends
// that don't support arcs.
func (p Path) Cubics(tolerance float64) Path {
	out := make(Path, 0, len(p))
	p.walk(func(from Point, el PathElement, to Point) bool {
		if el.Kind != ArcToKind {
			out = append(out, el)
			return true
		}
		a := SVGArc{
			From:      from,
			To:        el.P0,
			Radii:     el.Radii,
			XRotation: el.XRotation,
			LargeArc:  el.LargeArc,
			Sweep:     el.Sweep,
		}
		a.appendCubics(tolerance, func(el PathElement) bool {
			out = append(out, el)
			return true
		})
		return true
	})
	return out
}

// segmentShape returns the shape that the element draws, if any.
func segmentShape(from Point, el PathElement, to Point) (Shape, bool) {
	switch el.Kind {
	case LineToKind:
		return Line{from, to}, true
	case ClosePathKind:
		if from == to {
			return nil, false
		}
		return Line{from, to}, true
	case CubicToKind:
		return CubicBez{from, el.P0, el.P1, el.P2}, true
	case ArcToKind:
		return SVGArc{
			From:      from,
			To:        to,
			Radii:     el.Radii,
			XRotation: el.XRotation,
			LargeArc:  el.LargeArc,
			Sweep:     el.Sweep,
		}, true
	default:
		return nil, false
	}
}

// BoundingBox returns the smallest rectangle enclosing the path. Lines and
// cubic Béziers are bounded exactly, as are arcs, and a lone MoveTo contributes
// its point.
func (p Path) BoundingBox() Rect {
	var bbox Rect
	first := true
	add := func(r Rect) {
		if first {
			bbox = r
			first = false
		} else {
			bbox = bbox.Union(r)
		}
	}
	p.walk(func(from Point, el PathElement, to Point) bool {
		if el.Kind == MoveToKind {
			add(Rect{to.X, to.Y, to.X, to.Y})
			return true
		}
		if s, ok := segmentShape(from, el, to); ok {
			add(s.BoundingBox())
		}
		return true
	})
	return bbox
}

// Perimeter returns the length of the path.
func (p Path) Perimeter(accuracy float64) float64 {
	var length float64
	p.walk(func(from Point, el PathElement, to Point) bool {
		if s, ok := segmentShape(from, el, to); ok {
			length += s.Perimeter(accuracy)
		}
		return true
	})
	return length
}

// SignedArea returns the signed area enclosed by the path, treating every
// subpath as closed.
//
// The area is positive for outlines that run anti-clockwise in this package's
// y-up frame, and negative for clockwise ones such as those of
// [SmoothRoundRect]. Arcs are measured on their cubic approximation at
// [DefaultAccuracy].
func (p Path) SignedArea() float64 {
	var area float64
	var start, cur Point
	closeSubpath := func() {
		area += Line{cur, start}.SignedArea()
	}
	for _, el := range p.Cubics(DefaultAccuracy) {
		switch el.Kind {
		case MoveToKind:
			closeSubpath()
			start, cur = el.P0, el.P0
		case LineToKind:
			area += Line{cur, el.P0}.SignedArea()
			cur = el.P0
		case CubicToKind:
			area += CubicBez{cur, el.P0, el.P1, el.P2}.SignedArea()
			cur = el.P2
		case ClosePathKind:
			closeSubpath()
			cur = start
		}
	}
	closeSubpath()
	return area
}

func (p Path) IsInf() bool {
	return slices.ContainsFunc(p, PathElement.IsInf)
}

func (p Path) IsNaN() bool {
	return slices.ContainsFunc(p, PathElement.IsNaN)
}
