package circles

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var fourCircles = []Circle{
	{Point{0, 0}, 1},
	{Point{1, 1}, 1},
	{Point{1, -1}, 1},
	{Point{2, 0}, 1},
}

func TestIntersect(t *testing.T) {
	var tts = []struct {
		name    string
		circles []Circle
		zs      []Point
	}{
		{"empty", nil, nil},
		{"single", []Circle{{Point{0, 0}, 1}}, nil},
		{"tangent", []Circle{{Point{0, 0}, 1}, {Point{2, 0}, 1}}, []Point{{1, 0}}},
		{"disjoint", []Circle{{Point{0, 0}, 1}, {Point{3, 1}, 1}}, nil},
		{"secant", []Circle{{Point{2, 0}, 1}, {Point{3, 1}, 1}}, []Point{{2, 1}, {3, 0}}},
		{"coincident", []Circle{{Point{0, 0}, 1}, {Point{0, 0}, 1}}, nil},
		{"four", fourCircles, []Point{{0, -1}, {0, 1}, {1, 0}, {2, -1}, {2, 1}}},
		{"three through one point", []Circle{
			{Point{0, 0}, 1},
			{Point{2, 0}, 1},
			{Point{1, 1}, 1},
		}, []Point{{0, 1}, {1, 0}, {2, 1}}},
		{"three disjoint", []Circle{
			{Point{0, 0}, 1},
			{Point{5, 0}, 1},
			{Point{10, 0}, 1},
		}, nil},
		{"nested", []Circle{
			{Point{0, 0}, 5},
			{Point{1, 0}, 1},
			{Point{-1, 0}, 1},
		}, []Point{{0, 0}}},
		{"internally tangent", []Circle{
			{Point{0, 0}, 2},
			{Point{1, 0}, 1},
			{Point{10, 0}, 1},
		}, []Point{{2, 0}}},
		{"same leftmost", []Circle{
			{Point{0, 0}, 1},
			{Point{1, 0}, 2},
			{Point{10, 0}, 1},
		}, []Point{{-1, 0}}},
		{"crossing twice on same arcs", []Circle{
			{Point{0, 0}, 1},
			{Point{0, 1.5}, 1},
			{Point{10, 0}, 1},
		}, []Point{{-0.6614378277661477, 0.75}, {0.6614378277661477, 0.75}}},
		{"chain", []Circle{
			{Point{0, 0}, 1},
			{Point{1, 0}, 1},
			{Point{2, 0}, 1},
		}, []Point{
			{0.5, -0.8660254037844386}, {0.5, 0.8660254037844386},
			{1, 0},
			{1.5, -0.8660254037844386}, {1.5, 0.8660254037844386},
		}},
		{"point circle", []Circle{
			{Point{0, 0}, 1},
			{Point{0, 1}, 0},
			{Point{5, 5}, 0},
		}, []Point{{0, 1}}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			zs := Intersect(tt.circles, nil)
			testPoints(t, zs, tt.zs)
			for i := 1; i < len(zs); i++ {
				test.That(t, zs[i-1].Less(zs[i]), "sweep order", zs)
			}
		})
	}
}

func TestIntersectTangentRotated(t *testing.T) {
	far := Circle{Point{50, 50}, 1}
	for i := 0; i < 100; i++ {
		theta := 0.1 + 0.05*float64(i)
		dir := Point{math.Cos(theta), math.Sin(theta)}
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			// externally tangent at dir
			c0 := Circle{Point{0, 0}, 1}
			c1 := Circle{dir.Mul(2), 1}
			zs := Intersect([]Circle{c0, c1, far}, nil)
			test.T(t, len(zs), 1, "one tangent point", zs)
			if len(zs) == 1 {
				test.That(t, zs[0].Distance(dir) < 1e-6, zs[0], dir)
			}
			test.T(t, len(Pairwise([]Circle{c0, c1}, nil)), 1)

			// internally tangent at 2*dir
			c2 := Circle{Point{0, 0}, 2}
			c3 := Circle{dir, 1}
			zs = Intersect([]Circle{c2, c3, far}, nil)
			test.T(t, len(zs), 1, "one tangent point", zs)
			if len(zs) == 1 {
				test.That(t, zs[0].Distance(dir.Mul(2)) < 1e-6, zs[0], dir.Mul(2))
			}
		})
	}
}

func TestIntersectPermutations(t *testing.T) {
	// every permutation of the four circles gives the same result
	var permute func([]Circle, int)
	permute = func(cs []Circle, k int) {
		if k == len(cs) {
			t.Run(fmt.Sprint(cs), func(t *testing.T) {
				testPoints(t, Intersect(cs, nil), []Point{{0, -1}, {0, 1}, {1, 0}, {2, -1}, {2, 1}})
			})
			return
		}
		for i := k; i < len(cs); i++ {
			cs[k], cs[i] = cs[i], cs[k]
			permute(cs, k+1)
			cs[k], cs[i] = cs[i], cs[k]
		}
	}
	permute(append([]Circle{}, fourCircles...), 0)
}

func TestIntersectCompareWithPairwise(t *testing.T) {
	for seed := uint64(0); seed < 5; seed++ {
		t.Run(fmt.Sprint(seed), func(t *testing.T) {
			r := rand.New(rand.NewPCG(seed, 42))
			circles := RandomCircles(r, 12, 10.0, 0.5, 3.0)
			testPoints(t, Intersect(circles, nil), Pairwise(circles, nil))
		})
	}
}

func TestIntersectOrderIndependence(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	circles := RandomCircles(r, 10, 8.0, 0.5, 2.5)
	zs := Intersect(circles, nil)
	test.That(t, 0 < len(zs))
	for i := 0; i < 5; i++ {
		r.Shuffle(len(circles), func(i, j int) {
			circles[i], circles[j] = circles[j], circles[i]
		})
		testPoints(t, Intersect(circles, nil), zs)
	}
}

func TestIntersectZeroOptions(t *testing.T) {
	zs := Intersect(fourCircles, &Options{})
	testPoints(t, zs, []Point{{0, -1}, {0, 1}, {1, 0}, {2, -1}, {2, 1}})
	testPoints(t, Pairwise(fourCircles, &Options{}), zs)

	tol := Tolerance{Lookahead: 1e-4}.withDefaults()
	test.T(t, tol, Tolerance{Lookahead: 1e-4, Height: DefaultTolerance.Height, Snap: DefaultTolerance.Snap})
}

func TestIntersectInvalid(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	opts := &Options{
		Tolerance: DefaultTolerance,
		Logger:    zap.New(core),
	}

	circles := []Circle{
		{Point{0, 0}, 1},
		{Point{1, 0}, -1},
		{Point{math.NaN(), 0}, 1},
		{Point{2, 0}, 1},
	}
	testPoints(t, Intersect(circles, opts), []Point{{1, 0}})
	test.T(t, logs.FilterMessage("skip invalid circle").Len(), 2)
	testPoints(t, Pairwise(circles, nil), []Point{{1, 0}})
}

func TestIntersectLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	opts := &Options{
		Tolerance: DefaultTolerance,
		Logger:    zap.New(core),
	}

	Intersect(fourCircles, opts)
	test.T(t, logs.FilterMessage("event").Len(), 7) // leftmost and rightmost points, [1,0] is shared and intersections coincide with them
	test.T(t, logs.FilterMessage("sweep done").Len(), 1)
}

func TestPairwise(t *testing.T) {
	testPoints(t, Pairwise(fourCircles, nil), []Point{{0, -1}, {0, 1}, {1, 0}, {2, -1}, {2, 1}})
	testPoints(t, Pairwise(nil, nil), nil)
}

func BenchmarkIntersect(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 1))
	circles := RandomCircles(r, 1000, 100.0, 0.5, 3.0)
	b.ResetTimer()
	for b.Loop() {
		Intersect(circles, nil)
	}
}

func BenchmarkPairwise(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 1))
	circles := RandomCircles(r, 1000, 100.0, 0.5, 3.0)
	b.ResetTimer()
	for b.Loop() {
		Pairwise(circles, nil)
	}
}
