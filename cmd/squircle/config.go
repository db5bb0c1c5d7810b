package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"honnef.co/go/squircle"
)

// Config controls a single run. Defaults and environment variables are applied
// first, command-line flags override them. Environment variables are named
// after the fields, such as SQUIRCLE_WIDTH and SQUIRCLE_TOP_LEFT.
type Config struct {
	X          float64 `default:"0"`
	Y          float64 `default:"0"`
	Width      float64 `default:"100"`
	Height     float64 `default:"100"`
	Smoothness float64 `default:"0.6"`
	Radius     float64 `default:"20"`

	// Per-corner radii. Zero means Radius.
	TopLeft     float64 `split_words:"true"`
	TopRight    float64 `split_words:"true"`
	BottomRight float64 `split_words:"true"`
	BottomLeft  float64 `split_words:"true"`

	// Batch is the path of a TOML file describing several rectangles. It
	// replaces the single rectangle described by the fields above.
	Batch string

	// Format is one of "path", "svg", and "png".
	Format    string  `default:"path"`
	Output    string  `default:"-"`
	Precision int     `default:"3"`
	Tolerance float64 `default:"0.1"`
	Margin    float64 `default:"10"`
	Fill      string  `default:"#1f77b4"`
	LogLevel  string  `split_words:"true" default:"warn"`
}

var errUnknownFormat = errors.New("unknown output format")

func loadConfig(args []string, stderr io.Writer) (Config, error) {
	var cfg Config
	if err := envconfig.Process("SQUIRCLE", &cfg); err != nil {
		return Config{}, fmt.Errorf("couldn't read environment: %w", err)
	}

	fs := flag.NewFlagSet("squircle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.X, "x", cfg.X, "x coordinate of the bottom-left corner")
	fs.Float64Var(&cfg.Y, "y", cfg.Y, "y coordinate of the bottom-left corner")
	fs.Float64Var(&cfg.Width, "width", cfg.Width, "rectangle width")
	fs.Float64Var(&cfg.Height, "height", cfg.Height, "rectangle height")
	fs.Float64Var(&cfg.Smoothness, "smoothness", cfg.Smoothness, "corner smoothness in (0, 1]")
	fs.Float64Var(&cfg.Radius, "radius", cfg.Radius, "corner radius")
	fs.Float64Var(&cfg.TopLeft, "tl", cfg.TopLeft, "top-left radius, 0 to use -radius")
	fs.Float64Var(&cfg.TopRight, "tr", cfg.TopRight, "top-right radius, 0 to use -radius")
	fs.Float64Var(&cfg.BottomRight, "br", cfg.BottomRight, "bottom-right radius, 0 to use -radius")
	fs.Float64Var(&cfg.BottomLeft, "bl", cfg.BottomLeft, "bottom-left radius, 0 to use -radius")
	fs.StringVar(&cfg.Batch, "batch", cfg.Batch, "TOML file describing several rectangles")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: path, svg, or png")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output file, - for stdout")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "maximum number of decimals in SVG output")
	fs.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "accuracy of arc approximation in PNG output")
	fs.Float64Var(&cfg.Margin, "margin", cfg.Margin, "space around the drawing in SVG and PNG output")
	fs.StringVar(&cfg.Fill, "fill", cfg.Fill, "fill color in SVG and PNG output")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	switch cfg.Format {
	case "path", "svg", "png":
	default:
		return Config{}, fmt.Errorf("%w %q", errUnknownFormat, cfg.Format)
	}
	return cfg, nil
}

// radii returns the corner radii, with unset corners falling back to radius.
func radii(radius, tl, tr, br, bl float64) squircle.CornerRadii {
	or := func(v float64) float64 {
		if v == 0 {
			return radius
		}
		return v
	}
	return squircle.CornerRadii{
		TopLeft:     or(tl),
		TopRight:    or(tr),
		BottomRight: or(br),
		BottomLeft:  or(bl),
	}
}

// shapes returns the rectangles to draw, either the one described by cfg or
// the contents of the batch file. All of them are validated.
func (cfg Config) shapes() ([]squircle.SmoothRoundRect, error) {
	if cfg.Batch == "" {
		r := squircle.NewSmoothRoundRect(cfg.X, cfg.Y, cfg.Width, cfg.Height, cfg.Smoothness,
			radii(cfg.Radius, cfg.TopLeft, cfg.TopRight, cfg.BottomRight, cfg.BottomLeft))
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid rectangle: %w", err)
		}
		return []squircle.SmoothRoundRect{r}, nil
	}

	f, err := os.Open(cfg.Batch)
	if err != nil {
		return nil, fmt.Errorf("couldn't open batch file: %w", err)
	}
	defer f.Close()
	b, err := decodeBatch(f)
	if err != nil {
		return nil, fmt.Errorf("couldn't read %s: %w", cfg.Batch, err)
	}
	return b.shapes(cfg.Smoothness)
}

// Batch is the contents of a batch file.
type Batch struct {
	// Smoothness applies to every rectangle that doesn't set its own.
	Smoothness float64     `toml:"smoothness"`
	Rects      []BatchRect `toml:"rect"`
}

type BatchRect struct {
	X          float64 `toml:"x"`
	Y          float64 `toml:"y"`
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Smoothness float64 `toml:"smoothness"`
	Radius     float64 `toml:"radius"`

	TopLeft     float64 `toml:"top_left"`
	TopRight    float64 `toml:"top_right"`
	BottomRight float64 `toml:"bottom_right"`
	BottomLeft  float64 `toml:"bottom_left"`
}

var errEmptyBatch = errors.New("batch file contains no rectangles")

func decodeBatch(r io.Reader) (Batch, error) {
	var b Batch
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&b); err != nil {
		return Batch{}, err
	}
	if len(b.Rects) == 0 {
		return Batch{}, errEmptyBatch
	}
	return b, nil
}

// shapes converts the batch to rectangles. Smoothness falls back to the
// batch's, then to smoothness.
func (b Batch) shapes(smoothness float64) ([]squircle.SmoothRoundRect, error) {
	if b.Smoothness != 0 {
		smoothness = b.Smoothness
	}
	out := make([]squircle.SmoothRoundRect, 0, len(b.Rects))
	var errs []error
	for i, br := range b.Rects {
		s := smoothness
		if br.Smoothness != 0 {
			s = br.Smoothness
		}
		r := squircle.NewSmoothRoundRect(br.X, br.Y, br.Width, br.Height, s,
			radii(br.Radius, br.TopLeft, br.TopRight, br.BottomRight, br.BottomLeft))
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("rect %d: %w", i, err))
			continue
		}
		out = append(out, r)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}
