package squircle

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// Arcs are written as SVG arc commands, with the x-axis rotation converted to
// degrees. Coordinates are written as they are; SVG documents use a y-down
// frame, so callers usually transform the path with [FlipY] first.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		if s == "-0" {
			s = "0"
		}
		return s
	}
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y),
			)
		case ArcToKind:
			writef("A%s,%s %s %s,%s %s,%s",
				format(el.Radii.X), format(el.Radii.Y),
				format(el.XRotation*180/math.Pi),
				flag(el.LargeArc), flag(el.Sweep),
				format(el.P0.X), format(el.P0.Y),
			)
		case ClosePathKind:
			writef("Z")
		default:
			panic(fmt.Sprintf("invalid PathElement kind %v", el.Kind))
		}
	}
	return err
}
