package circles

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotSegments is the number of line segments used to draw a circle.
var PlotSegments = 64

var (
	circleColor       = color.RGBA{0x1F, 0x77, 0xB4, 0xFF}
	intersectionColor = color.RGBA{0xD6, 0x27, 0x28, 0xFF}
)

// Plot returns a plot of the circles with their intersection points marked by crosses. The axes have the same scale so that circles look round.
func Plot(circles []Circle, zs []Point) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Circle intersections"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for _, c := range circles {
		xys := make(plotter.XYs, PlotSegments+1)
		for i := range xys {
			theta := 2.0 * math.Pi * float64(i) / float64(PlotSegments)
			xys[i].X = c.Center.X + c.Radius*math.Cos(theta)
			xys[i].Y = c.Center.Y + c.Radius*math.Sin(theta)
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = circleColor
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
	}

	if 0 < len(zs) {
		xys := make(plotter.XYs, len(zs))
		for i, z := range zs {
			xys[i].X, xys[i].Y = z.X, z.Y
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		s.GlyphStyle.Color = intersectionColor
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
	}

	if 0 < len(circles) {
		b := bounds(circles)
		cx, cy := b.Center().X(), b.Center().Y()
		half := 0.55 * math.Max(b.Right()-b.Left(), b.Top()-b.Bottom())
		if half == 0.0 {
			half = 1.0
		}
		p.X.Min, p.X.Max = cx-half, cx+half
		p.Y.Min, p.Y.Max = cy-half, cy+half
	}
	return p, nil
}
