package circles

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestArcAt(t *testing.T) {
	upper := NewArc(Circle{Point{1, 1}, 2}, true)
	lower := NewArc(Circle{Point{1, 1}, 2}, false)

	var tts = []struct {
		x            float64
		upper, lower float64
	}{
		{1, 3, -1},
		{-1, 1, 1},
		{3, 1, 1},
		{2, 1 + 1.7320508075688772, 1 - 1.7320508075688772},
		{-5, 1, 1}, // outside, clamp to center
		{3.5, 1, 1},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.Float(t, upper.At(tt.x), tt.upper)
			test.Float(t, lower.At(tt.x), tt.lower)
		})
	}
}

func TestArcContains(t *testing.T) {
	c := Circle{Point{0, 0}, 2}
	upper := NewArc(c, true)
	lower := NewArc(c, false)

	test.That(t, upper.Contains(Point{0, 2}))
	test.That(t, upper.Contains(Point{2, 0}))
	test.That(t, lower.Contains(Point{2, 0}))
	test.That(t, !lower.Contains(Point{0, 2}))
	test.That(t, upper.Contains(Point{0, 2 + 1e-7}), "within tolerance")
	test.That(t, !upper.Contains(Point{0, 2 + 1e-5}), "outside tolerance")

	// the rightmost point is on the arc even when it falls just inside the x-span after snapping
	tilted := NewArc(Circle{Point{0.1, 0.2}, 0.123456789012345}, true)
	test.That(t, tilted.Contains(tilted.end))
}

func TestArcIntersect(t *testing.T) {
	c1 := Circle{Point{0, 0}, 1}
	c5 := Circle{Point{0, 2}, 1}
	c1u, c1l := NewArc(c1, true), NewArc(c1, false)
	c5u, c5l := NewArc(c5, true), NewArc(c5, false)

	// both halves of a circle do not intersect
	testPoints(t, c1u.Intersect(c1l), nil)
	testPoints(t, c1l.Intersect(c1u), nil)

	// tangent arcs
	zs := c1u.Intersect(c5l)
	testPoints(t, zs, []Point{{0, 1}})
	test.That(t, c1u.Contains(zs[0]) && c5l.Contains(zs[0]))
	testPoints(t, c1l.Intersect(c5l), nil)
	testPoints(t, c1u.Intersect(c5u), nil)

	// circle intersections are divided over the arcs
	c2 := Circle{Point{1, 1}, 1}
	c2u, c2l := NewArc(c2, true), NewArc(c2, false)
	testPoints(t, c1u.Intersect(c2l), []Point{{0, 1}, {1, 0}})
	testPoints(t, c1u.Intersect(c2u), []Point{{0, 1}}) // leftmost of c2 is on both halves
	testPoints(t, c1l.Intersect(c2l), []Point{{1, 0}})

	// both intersections on the same pair of arcs
	c6 := Circle{Point{0, 1.5}, 1}
	testPoints(t, c1u.Intersect(NewArc(c6, false)), []Point{{0.6614378277661477, 0.75}, {-0.6614378277661477, 0.75}})
}

func TestArcAbove(t *testing.T) {
	c1 := Circle{Point{1, -1}, 1}
	c2 := Circle{Point{1, 1}, 1}
	c1u, c1l := NewArc(c1, true), NewArc(c1, false)
	c2u, c2l := NewArc(c2, true), NewArc(c2, false)

	// upper arc is above the lower arc of the same circle
	test.That(t, c1u.Above(c1.Leftmost(), c1l))
	test.That(t, !c1l.Above(c1.Leftmost(), c1u))
	test.That(t, c1u.Above(c1.Rightmost(), c1l))

	// tangent arcs are ordered just after the tangent point
	test.That(t, c2l.Above(Point{1, 0}, c1u))
	test.That(t, !c1u.Above(Point{1, 0}, c2l))
	test.That(t, c2u.Above(Point{1, 0}, c2l))

	// points
	test.That(t, c2u.Above(Point{1, 1}, nil))
	test.That(t, c2u.Above(Point{1, 2}, nil), "passes through")
	test.That(t, !c2l.Above(Point{1, 0.5}, nil))
	test.That(t, !c1u.Above(Point{1, 0.5}, nil))
}

func TestArcString(t *testing.T) {
	c := Circle{Point{1, -1}, 2}
	test.String(t, NewArc(c, true).String(), "[1,-1] 2 upper")
	test.String(t, NewArc(c, false).String(), "[1,-1] 2 lower")
}
