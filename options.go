package circles

import "go.uber.org/zap"

// Tolerance holds the numerical tolerances of the sweep.
type Tolerance struct {
	// Lookahead is the distance past the sweep point at which two arcs are compared. Arcs that touch at the sweep point are thus ordered by where they go next.
	Lookahead float64

	// Height is the maximum difference in height for a point to lie on an arc.
	Height float64

	// Snap is the grid spacing intersection points and circle extremes are snapped to, so that the same point found through different pairs of circles is a single event. It must be the reciprocal of an integer, a negative value disables snapping.
	Snap float64
}

// DefaultTolerance are the default tolerances.
var DefaultTolerance = Tolerance{
	Lookahead: 1e-7,
	Height:    1e-6,
	Snap:      1e-10,
}

// withDefaults replaces zero fields by those of DefaultTolerance.
func (t Tolerance) withDefaults() Tolerance {
	if t.Lookahead == 0.0 {
		t.Lookahead = DefaultTolerance.Lookahead
	}
	if t.Height == 0.0 {
		t.Height = DefaultTolerance.Height
	}
	if t.Snap == 0.0 {
		t.Snap = DefaultTolerance.Snap
	}
	return t
}

// Options are the options for Intersect. Zero tolerances take the value of DefaultTolerance.
type Options struct {
	Tolerance
	Logger *zap.Logger
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	Tolerance: DefaultTolerance,
}

func (o *Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
