package main

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"honnef.co/go/squircle"
	"honnef.co/go/squircle/backend/ggpath"
)

func render(w io.Writer, cfg Config, shapes []squircle.SmoothRoundRect) error {
	switch cfg.Format {
	case "path":
		return writePathData(w, cfg, shapes)
	case "svg":
		return writeSVGDocument(w, cfg, shapes)
	case "png":
		return writePNG(w, cfg, shapes)
	default:
		return fmt.Errorf("%w %q", errUnknownFormat, cfg.Format)
	}
}

// writePathData writes one line of SVG path data per shape, in the y-up
// frame the shapes are defined in.
func writePathData(w io.Writer, cfg Config, shapes []squircle.SmoothRoundRect) error {
	opts := squircle.SVGOptions{MaxPrecision: cfg.Precision}
	for _, s := range shapes {
		if err := squircle.WriteSVG(w, s.PathElements(cfg.Tolerance), opts); err != nil {
			return fmt.Errorf("couldn't write path data: %w", err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("couldn't write path data: %w", err)
		}
	}
	return nil
}

// canvas maps shapes from their y-up frame onto a y-down canvas that contains
// all of them plus a margin.
type canvas struct {
	width, height float64
	aff           squircle.Affine
}

func newCanvas(shapes []squircle.SmoothRoundRect, margin float64) canvas {
	bbox := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		bbox = bbox.Union(s.BoundingBox())
	}
	bbox = bbox.Inflate(margin, margin)
	return canvas{
		width:  bbox.Width(),
		height: bbox.Height(),
		aff:    squircle.FlipY.ThenTranslate(squircle.Vec(-bbox.X0, bbox.Y1)),
	}
}

func (c canvas) path(s squircle.SmoothRoundRect) squircle.Path {
	return s.Path(squircle.DefaultTolerance).Transform(c.aff)
}

func writeSVGDocument(w io.Writer, cfg Config, shapes []squircle.SmoothRoundRect) error {
	c := newCanvas(shapes, cfg.Margin)
	opts := squircle.SVGOptions{MaxPrecision: cfg.Precision}
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	width, height := math.Ceil(c.width), math.Ceil(c.height)
	printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	for _, s := range shapes {
		printf(`  <path fill="%s" d="%s"/>`+"\n", cfg.Fill, squircle.SVG(c.path(s).PathElements(0), opts))
	}
	printf("</svg>\n")
	if err != nil {
		return fmt.Errorf("couldn't write SVG: %w", err)
	}
	return nil
}

func writePNG(w io.Writer, cfg Config, shapes []squircle.SmoothRoundRect) error {
	c := newCanvas(shapes, cfg.Margin)
	dc := gg.NewContext(int(math.Ceil(c.width)), int(math.Ceil(c.height)))
	dc.ClearWithColor(gg.White)
	dc.SetColor(gg.Hex(cfg.Fill).Color())
	for i, s := range shapes {
		ggpath.Draw(dc, c.path(s), cfg.Tolerance)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("couldn't fill rect %d: %w", i, err)
		}
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("couldn't encode PNG: %w", err)
	}
	return nil
}
