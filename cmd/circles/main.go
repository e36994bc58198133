package main

import (
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/circles"
)

type Find struct {
	Format    string  `short:"f" default:"table" desc:"Output format: table, text, or geojson"`
	Plot      string  `short:"p" desc:"Plot circles and intersections to a PNG, SVG, or PDF file"`
	Lookahead float64 `default:"1e-7" desc:"Distance past the sweep point at which arcs are ordered"`
	Tolerance float64 `default:"1e-6" desc:"Maximum height difference for a point to lie on an arc"`
	Snap      float64 `default:"1e-10" desc:"Grid spacing for intersection points, negative disables snapping"`
	Check     bool    `desc:"Compare against testing all pairs of circles"`
	Verbose   bool    `short:"v" desc:"Log every sweep event"`
	Input     string  `index:"0" desc:"Input file (.txt, .yaml, .geojson), or - for text on standard input"`
}

type Demo struct {
	Format  string `short:"f" default:"table" desc:"Output format: table, text, or geojson"`
	Plot    string `short:"p" desc:"Plot circles and intersections to a PNG, SVG, or PDF file"`
	Verbose bool   `short:"v" desc:"Log every sweep event"`
}

func main() {
	root := argp.NewCmd(&Find{}, "Find all intersections between circles using a plane sweep")
	root.AddCmd(&Demo{}, "demo", "Intersect four unit circles centered at (0,0), (1,1), (1,-1), and (2,0)")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Find) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	log := newLogger(cmd.Verbose)
	defer log.Sync()

	cs, err := readCircles(cmd.Input)
	if err != nil {
		return err
	}

	opts := &circles.Options{
		Tolerance: circles.Tolerance{
			Lookahead: cmd.Lookahead,
			Height:    cmd.Tolerance,
			Snap:      cmd.Snap,
		},
		Logger: log,
	}
	return report(os.Stdout, cs, opts, reportOptions{
		Format: cmd.Format,
		Plot:   cmd.Plot,
		Check:  cmd.Check,
	})
}

func (cmd *Demo) Run() error {
	log := newLogger(cmd.Verbose)
	defer log.Sync()

	cs := []circles.Circle{
		{Center: circles.Point{X: 0, Y: 0}, Radius: 1},
		{Center: circles.Point{X: 1, Y: 1}, Radius: 1},
		{Center: circles.Point{X: 1, Y: -1}, Radius: 1},
		{Center: circles.Point{X: 2, Y: 0}, Radius: 1},
	}
	opts := circles.DefaultOptions
	opts.Logger = log
	return report(os.Stdout, cs, &opts, reportOptions{
		Format: cmd.Format,
		Plot:   cmd.Plot,
		Check:  true,
	})
}
