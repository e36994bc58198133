package circles

import (
	"slices"

	"go.uber.org/zap"
)

// Intersect returns all intersection points between the circles, in order from left to right and then from bottom to top. Each point is returned once, even if more than two circles pass through it. Circles with the same center do not intersect, and circles that are not valid are skipped. If opts is nil, DefaultOptions is used.
//
// It uses a plane sweep, which takes O((n+k) log n) time for n circles and k intersections. Each circle is split into an upper and lower arc, which are x-monotone. The arcs that cross the sweep line are kept in a status ordered from bottom to top, and only arcs that are neighbours in the status are tested for intersections.
func Intersect(circles []Circle, opts *Options) []Point {
	if opts == nil {
		opts = &DefaultOptions
	}
	log := opts.logger()

	valid := make([]Circle, 0, len(circles))
	for i, c := range circles {
		if !c.Valid() {
			log.Warn("skip invalid circle", zap.Int("index", i), zap.Stringer("circle", c))
			continue
		}
		valid = append(valid, c)
	}

	switch len(valid) {
	case 0, 1:
		return nil
	case 2:
		return Pairwise(valid, opts)
	}

	s := newSweep(valid, opts.Tolerance.withDefaults(), log)
	s.run()
	log.Debug("sweep done", zap.Int("circles", len(valid)), zap.Int("events", s.events), zap.Int("intersections", len(s.zs)))
	return s.zs
}

// Pairwise returns all intersection points between the circles by testing every pair of circles, which takes O(n^2) time. Points are deduplicated after snapping and are returned in the same order as Intersect. If opts is nil, DefaultOptions is used.
func Pairwise(circles []Circle, opts *Options) []Point {
	if opts == nil {
		opts = &DefaultOptions
	}

	tol := opts.Tolerance.withDefaults()

	var zs []Point
	seen := map[Point]bool{}
	for i := range circles {
		if !circles[i].Valid() {
			continue
		}
		for j := i + 1; j < len(circles); j++ {
			if !circles[j].Valid() {
				continue
			}
			for _, z := range circles[i].Intersect(circles[j]) {
				z = z.Snap(tol.Snap)
				if !seen[z] {
					seen[z] = true
					zs = append(zs, z)
				}
			}
		}
	}
	slices.SortFunc(zs, Point.Compare)
	return zs
}

type sweep struct {
	tol    Tolerance
	log    *zap.Logger
	queue  *SweepEvents
	status *SweepStatus

	zs     []Point
	events int
}

func newSweep(circles []Circle, tol Tolerance, log *zap.Logger) *sweep {
	s := &sweep{
		tol:    tol,
		log:    log,
		queue:  NewSweepEvents(),
		status: NewSweepStatus(),
	}

	// each circle starts with both arcs at its leftmost point and ends at its rightmost point
	for _, c := range circles {
		upper, lower := newArc(c, true, tol), newArc(c, false, tol)
		start, _ := s.queue.add(c.Leftmost().Snap(tol.Snap))
		start.born = append(start.born, upper, lower)
		end, _ := s.queue.add(upper.end)
		end.dying = append(end.dying, upper, lower)
	}
	return s
}

func (s *sweep) run() {
	for 0 < s.queue.Len() {
		s.handle(s.queue.pop())
		s.events++
	}
}

func (s *sweep) handle(e *sweepEvent) {
	p := e.Point
	through := s.status.Contains(p)
	if ce := s.log.Check(zap.DebugLevel, "event"); ce != nil {
		ce.Write(zap.Stringer("point", p), zap.Int("born", len(e.born)), zap.Int("through", len(through)), zap.Int("active", s.status.Len()))
	}

	if e.crossing || touches(e.born, through) {
		s.zs = append(s.zs, p)
	}

	for _, arc := range through {
		s.status.Remove(arc.node)
	}
	for _, arc := range e.dying {
		if arc.node != nil {
			// missed by Contains due to rounding
			s.log.Debug("remove dangling arc", zap.Stringer("arc", arc))
			s.status.Remove(arc.node)
		}
	}

	// reinsert arcs that continue past p, their order has changed
	active := make([]*Arc, 0, len(through)+len(e.born))
	for _, arcs := range [][]*Arc{through, e.born} {
		for _, arc := range arcs {
			if p.Less(arc.end) {
				s.status.Insert(arc, p)
				active = append(active, arc)
			}
		}
	}

	if len(active) == 0 {
		// arcs below and above p are now neighbours
		lower, upper := s.status.LowerBound(p, nil), s.status.UpperBound(p, nil)
		if lower != nil && upper != nil {
			s.schedule(p, lower.Arc, upper.Arc)
		}
		return
	}

	lowest, highest := active[0], active[0]
	for _, arc := range active[1:] {
		if lowest.Above(p, arc) {
			lowest = arc
		}
		if arc.Above(p, highest) {
			highest = arc
		}
	}
	if prev := s.status.Prev(lowest.node); prev != nil {
		s.schedule(p, prev.Arc, lowest)
	}
	if next := s.status.Next(highest.node); next != nil {
		s.schedule(p, highest, next.Arc)
	}

	// arcs through p may have new neighbours amongst themselves that intersect again
	n := lowest.node
	for i := 1; i < len(active) && n != highest.node; i++ {
		next := s.status.Next(n)
		if next == nil {
			break
		}
		s.schedule(p, n.Arc, next.Arc)
		n = next
	}
}

// schedule adds the intersections of a and b that come after p to the queue.
func (s *sweep) schedule(p Point, a, b *Arc) {
	for _, z := range a.Intersect(b) {
		z = z.Snap(s.tol.Snap)
		if !p.Less(z) {
			continue
		}
		e, added := s.queue.add(z)
		e.crossing = true
		if added {
			if ce := s.log.Check(zap.DebugLevel, "schedule"); ce != nil {
				ce.Write(zap.Stringer("point", z), zap.Stringer("a", a), zap.Stringer("b", b))
			}
		}
	}
}

// touches returns true if the arcs starting at and passing through a point belong to different circles. Both arcs of the same circle touch at its leftmost and rightmost points, which is not an intersection.
func touches(born, through []*Arc) bool {
	if 2 < len(born) || 2 < len(through) {
		return true
	} else if 0 < len(born) {
		for _, arc := range through {
			if arc.Circle != born[0].Circle {
				return true
			}
		}
	}
	return false
}
