package circles

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Epsilon is the tolerance used for comparing floating point values that should be equal.
const Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// finite returns true if f is neither NaN nor infinite.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// snap rounds f to a grid with the given spacing. The spacing must be the reciprocal of an integer, so that decimal input values with fewer digits than the grid are returned unchanged.
func snap(f, spacing float64) float64 {
	if spacing <= 0.0 {
		return f
	}
	n := math.Round(1.0 / spacing)
	f = math.Round(f*n) / n
	if f == 0.0 {
		return 0.0 // no negative zero
	}
	return f
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Less returns true if P comes before Q when sorting lexicographically, ie. from left to right and then from bottom to top. Comparison is exact.
func (p Point) Less(q Point) bool {
	return p.X < q.X || p.X == q.X && p.Y < q.Y
}

// Compare returns -1, 0, or 1 when P comes before, is equal to, or comes after Q in lexicographic order.
func (p Point) Compare(q Point) int {
	if p.Less(q) {
		return -1
	} else if q.Less(p) {
		return 1
	}
	return 0
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Rot90CCW rotates the line OP by 90 degrees CCW.
func (p Point) Rot90CCW() Point {
	return Point{-p.Y, p.X}
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between P and Q.
func (p Point) Distance(q Point) float64 {
	return q.Sub(p).Length()
}

// Snap snaps P to a grid with the given spacing.
func (p Point) Snap(spacing float64) Point {
	return Point{snap(p.X, spacing), snap(p.Y, spacing)}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g,%g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Circle is a circle with a center and a non-negative radius.
type Circle struct {
	Center Point
	Radius float64
}

// Leftmost returns the point of the circle with the smallest x-coordinate, where the sweep line enters the circle.
func (c Circle) Leftmost() Point {
	return c.Center.Sub(Point{c.Radius, 0.0})
}

// Rightmost returns the point of the circle with the largest x-coordinate, where the sweep line leaves the circle.
func (c Circle) Rightmost() Point {
	return c.Center.Add(Point{c.Radius, 0.0})
}

// Valid returns true if the center and radius are finite and the radius is not negative.
func (c Circle) Valid() bool {
	return finite(c.Center.X) && finite(c.Center.Y) && finite(c.Radius) && 0.0 <= c.Radius
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() orb.Bound {
	return orb.Bound{
		Min: orb.Point{c.Center.X - c.Radius, c.Center.Y - c.Radius},
		Max: orb.Point{c.Center.X + c.Radius, c.Center.Y + c.Radius},
	}
}

// Intersect returns all intersection points with another circle. Coinciding circles, or circles that share their center, have no intersections.
func (c Circle) Intersect(o Circle) []Point {
	return intersectionCircleCircle(c.Center, c.Radius, o.Center, o.Radius)
}

func (c Circle) String() string {
	return fmt.Sprintf("%v %g", c.Center, c.Radius)
}
