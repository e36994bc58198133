package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tdewolff/circles"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/plot/vg"
)

func newLogger(verbose bool) *zap.Logger {
	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05.000"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

func readCircles(filename string) ([]circles.Circle, error) {
	if filename == "-" {
		return circles.ParseCircles(os.Stdin)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return circles.ParseCirclesYAML(f)
	case ".geojson", ".json":
		b, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		return circles.ParseCirclesGeoJSON(b)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cs, err := circles.ParseCircles(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cs, nil
}

type reportOptions struct {
	Format string
	Plot   string
	Check  bool
}

func report(w io.Writer, cs []circles.Circle, opts *circles.Options, ropts reportOptions) error {
	var write func(io.Writer, []circles.Circle, []circles.Point) error
	switch ropts.Format {
	case "table":
		write = writeTable
	case "text":
		write = writeText
	case "geojson":
		write = writeGeoJSON
	default:
		return fmt.Errorf("unknown output format: %s", ropts.Format)
	}

	start := time.Now()
	zs := circles.Intersect(cs, opts)
	if opts.Logger != nil {
		opts.Logger.Info("intersect", zap.Int("circles", len(cs)), zap.Int("intersections", len(zs)), zap.Duration("duration", time.Since(start)))
	}

	if ropts.Check {
		if err := check(zs, circles.Pairwise(cs, opts)); err != nil {
			return err
		}
	}

	if err := write(w, cs, zs); err != nil {
		return err
	}

	if ropts.Plot != "" {
		p, err := circles.Plot(cs, zs)
		if err != nil {
			return err
		}
		if err := p.Save(12*vg.Centimeter, 12*vg.Centimeter, ropts.Plot); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
	}
	return nil
}

// check compares the sweep result against the pairwise result, both are in the same order.
func check(zs, pairwise []circles.Point) error {
	for i := 0; i < len(zs) && i < len(pairwise); i++ {
		if !zs[i].Equals(pairwise[i]) {
			return fmt.Errorf("check: intersection %d is %v but testing all pairs gives %v", i, zs[i], pairwise[i])
		}
	}
	if len(zs) != len(pairwise) {
		return fmt.Errorf("check: found %d intersections but testing all pairs gives %d", len(zs), len(pairwise))
	}
	return nil
}

func writeTable(w io.Writer, cs []circles.Circle, zs []circles.Point) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "x", "y"})
	for i, z := range zs {
		tbl.AppendRow(table.Row{i + 1, z.X, z.Y})
	}
	tbl.AppendFooter(table.Row{"", "circles", humanize.Comma(int64(len(cs)))})
	tbl.AppendFooter(table.Row{"", "intersections", humanize.Comma(int64(len(zs)))})
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

func writeText(w io.Writer, _ []circles.Circle, zs []circles.Point) error {
	for _, z := range zs {
		if _, err := fmt.Fprintf(w, "%g %g\n", z.X, z.Y); err != nil {
			return err
		}
	}
	return nil
}

func writeGeoJSON(w io.Writer, _ []circles.Circle, zs []circles.Point) error {
	b, err := circles.IntersectionsGeoJSON(zs).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
