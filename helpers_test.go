package circles

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/tdewolff/test"
)

func RandomCircles(r *rand.Rand, n int, size, minRadius, maxRadius float64) []Circle {
	cs := make([]Circle, n)
	for i := range cs {
		cs[i] = Circle{
			Center: Point{size * r.Float64(), size * r.Float64()},
			Radius: minRadius + (maxRadius-minRadius)*r.Float64(),
		}
	}
	return cs
}

// testPoints compares two point sets regardless of their order.
func testPoints(t *testing.T, got, wanted []Point) {
	t.Helper()
	got = slices.Clone(got)
	wanted = slices.Clone(wanted)
	slices.SortFunc(got, Point.Compare)
	slices.SortFunc(wanted, Point.Compare)
	test.T(t, len(got), len(wanted), "number of points", got)
	for i := 0; i < len(got) && i < len(wanted); i++ {
		test.T(t, got[i], wanted[i])
	}
}

// verifyStatus checks the red-black properties, the parent links, and the arc back-references of the status.
func verifyStatus(t *testing.T, s *SweepStatus) {
	t.Helper()
	test.T(t, s.nil.color, black, "sentinel is black")
	test.T(t, s.root.color, black, "root is black")
	if s.root != s.nil {
		test.That(t, s.root.parent == s.nil, "root parent is sentinel")
	}

	size := 0
	var blackHeight func(n *StatusNode) int
	blackHeight = func(n *StatusNode) int {
		if n == s.nil {
			return 1
		}
		size++
		test.That(t, n.Arc != nil && n.Arc.node == n, "arc references its node")
		if n.color == red {
			test.That(t, n.left.color == black && n.right.color == black, "red node has black children")
		}
		if n.left != s.nil {
			test.That(t, n.left.parent == n, "parent link")
		}
		if n.right != s.nil {
			test.That(t, n.right.parent == n, "parent link")
		}
		left, right := blackHeight(n.left), blackHeight(n.right)
		test.T(t, left, right, "black height")
		if n.color == black {
			return left + 1
		}
		return left
	}
	blackHeight(s.root)
	test.T(t, size, s.Len(), "size")
}
