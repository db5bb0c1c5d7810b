// Command squircle draws smooth rounded rectangles.
//
// It writes the outline as SVG path data, as a standalone SVG document, or as
// a PNG image rendered with gg. A single rectangle is described with flags or
// SQUIRCLE_* environment variables; several at once with a TOML batch file:
//
//	smoothness = 0.6
//
//	[[rect]]
//	width = 100.0
//	height = 100.0
//	radius = 20.0
//
//	[[rect]]
//	x = 120.0
//	width = 200.0
//	height = 100.0
//	radius = 10.0
//	top_left = 40.0
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"honnef.co/go/squircle"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("squircle: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	squircle.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer squircle.SetLogger(nil)

	shapes, err := cfg.shapes()
	if err != nil {
		return err
	}
	squircle.Logger().Info("squircle: drawing",
		slog.Int("rects", len(shapes)),
		slog.String("format", cfg.Format))

	if cfg.Output == "" || cfg.Output == "-" {
		w := bufio.NewWriter(stdout)
		if err := render(w, cfg, shapes); err != nil {
			return err
		}
		return w.Flush()
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("couldn't create output: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := render(w, cfg, shapes); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("couldn't write %s: %w", cfg.Output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("couldn't write %s: %w", cfg.Output, err)
	}
	return nil
}
