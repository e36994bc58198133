package circles

import (
	"fmt"
	"math"
)

// Arc is the upper or lower half of a circle, which is a function of x over the circle's x-span.
type Arc struct {
	Circle
	Upper bool

	tol  Tolerance
	end  Point       // snapped rightmost point, where the arc leaves the sweep
	node *StatusNode // used for accessing the status node in O(1), nil when not in the status
}

// NewArc returns the upper or lower half of a circle using DefaultTolerance.
func NewArc(c Circle, upper bool) *Arc {
	return newArc(c, upper, DefaultTolerance)
}

func newArc(c Circle, upper bool, tol Tolerance) *Arc {
	return &Arc{
		Circle: c,
		Upper:  upper,
		tol:    tol,
		end:    c.Rightmost().Snap(tol.Snap),
	}
}

// At returns the y-coordinate of the arc at x. If x is outside the x-span of the circle, it returns the y-coordinate of the center.
func (a *Arc) At(x float64) float64 {
	dx := x - a.Center.X
	if a.Radius < math.Abs(dx) {
		return a.Center.Y
	}
	dy := math.Sqrt(a.Radius*a.Radius - dx*dx)
	if a.Upper {
		return a.Center.Y + dy
	}
	return a.Center.Y - dy
}

// Contains returns true if p lies on the arc, within the height tolerance. The snapped rightmost point always lies on the arc.
func (a *Arc) Contains(p Point) bool {
	return p == a.end || math.Abs(a.At(p.X)-p.Y) < a.tol.Height
}

// Above returns true if the arc is above the other arc right after p, ie. at p.X plus the lookahead distance. The lookahead never passes halfway to the right end of either arc. Arcs of equal height compare as above. If other is nil, it returns true if the arc is above p or passes through it.
func (a *Arc) Above(p Point, other *Arc) bool {
	if other == nil {
		return p.Y <= a.At(p.X)
	}
	dx := a.tol.Lookahead
	for _, end := range []float64{a.end.X, other.end.X} {
		if half := (end - p.X) / 2.0; 0.0 < half && half < dx {
			dx = half
		}
	}
	x := p.X + dx
	return other.At(x) <= a.At(x)
}

// Intersect returns the intersection points of both arcs. These are the intersections of both circles where both arcs have the same height. Both halves of the same circle never intersect.
func (a *Arc) Intersect(b *Arc) []Point {
	zs := a.Circle.Intersect(b.Circle)
	for i := 0; i < len(zs); i++ {
		if a.tol.Height < math.Abs(a.At(zs[i].X)-b.At(zs[i].X)) {
			zs = append(zs[:i], zs[i+1:]...)
			i--
		}
	}
	return zs
}

func (a *Arc) String() string {
	half := "lower"
	if a.Upper {
		half = "upper"
	}
	return fmt.Sprintf("%v %s", a.Circle, half)
}
