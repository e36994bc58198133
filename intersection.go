package circles

import "math"

// intersectionCircleCircle returns the intersections of two circles using the radical axis. The point on the radical axis between the centers is offset perpendicularly in both directions, the tangent case returns only one point. Circles with the same center never intersect.
// See http://paulbourke.net/geometry/circlesphere/
func intersectionCircleCircle(c0 Point, r0 float64, c1 Point, r1 float64) []Point {
	// tolerance on the squared half chord, relative to the circle size
	tol := Epsilon * math.Max(1.0, math.Max(r0*r0, r1*r1))

	d := c0.Distance(c1)
	if d == 0.0 || r0+r1+Epsilon < d || d < math.Abs(r0-r1)-Epsilon {
		return nil
	}

	// distance from c0 to the radical axis
	a := (r0*r0 - r1*r1 + d*d) / (2.0 * d)
	diff := c1.Sub(c0)
	p := c0.Add(diff.Mul(a / d))

	h2 := r0*r0 - a*a
	if math.Abs(h2) < tol {
		// tangent, rounding may put the half chord on either side of zero
		return []Point{p}
	} else if h2 < 0.0 {
		return nil
	}
	n := diff.Rot90CCW().Mul(math.Sqrt(h2) / d)
	return []Point{p.Add(n), p.Sub(n)}
}
