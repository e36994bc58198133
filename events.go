package circles

import (
	"fmt"
	"io"
	"strings"
)

// sweepEvent is a point where the set of arcs crossing the sweep line changes, or where arcs intersect.
type sweepEvent struct {
	Point
	born     []*Arc // arcs that start here
	dying    []*Arc // arcs that end here
	crossing bool   // found as the intersection of two arcs
}

func (e *sweepEvent) String() string {
	s := e.Point.String()
	if 0 < len(e.born) {
		s += fmt.Sprintf(" born=%d", len(e.born))
	}
	if 0 < len(e.dying) {
		s += fmt.Sprintf(" dying=%d", len(e.dying))
	}
	if e.crossing {
		s += " crossing"
	}
	return s
}

// SweepEvents is a heap priority queue of sweep events ordered from left to right and then from bottom to top. Each point is in the queue at most once.
type SweepEvents struct {
	heap  []*sweepEvent
	index map[Point]*sweepEvent
}

// NewSweepEvents returns an empty event queue.
func NewSweepEvents() *SweepEvents {
	return &SweepEvents{
		index: map[Point]*sweepEvent{},
	}
}

// Len returns the number of events in the queue.
func (q *SweepEvents) Len() int {
	return len(q.heap)
}

// Has returns true if p is in the queue.
func (q *SweepEvents) Has(p Point) bool {
	_, ok := q.index[p]
	return ok
}

func (q *SweepEvents) get(p Point) *sweepEvent {
	return q.index[p]
}

// add returns the event at p, adding it if it doesn't exist yet. The boolean is true if the event was added.
func (q *SweepEvents) add(p Point) (*sweepEvent, bool) {
	if e, ok := q.index[p]; ok {
		return e, false
	}
	e := &sweepEvent{Point: p}
	q.index[p] = e
	q.heap = append(q.heap, e)
	q.up(len(q.heap) - 1)
	return e, true
}

// pop removes and returns the left-most event.
func (q *SweepEvents) pop() *sweepEvent {
	n := len(q.heap) - 1
	q.swap(0, n)
	q.down(0, n)

	e := q.heap[n]
	q.heap[n] = nil // help the GC
	q.heap = q.heap[:n]
	delete(q.index, e.Point)
	return e
}

func (q *SweepEvents) less(i, j int) bool {
	return q.heap[i].Point.Less(q.heap[j].Point)
}

func (q *SweepEvents) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
}

// from container/heap
func (q *SweepEvents) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.less(j, i) {
			break
		}
		q.swap(i, j)
		j = i
	}
}

func (q *SweepEvents) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		i = j
	}
}

// Print writes the events in order, without modifying the queue.
func (q *SweepEvents) Print(w io.Writer) {
	q2 := &SweepEvents{heap: make([]*sweepEvent, len(q.heap))}
	copy(q2.heap, q.heap)
	for k := 0; 0 < len(q2.heap); k++ {
		n := len(q2.heap) - 1
		q2.swap(0, n)
		q2.down(0, n)
		fmt.Fprintln(w, k, q2.heap[n])
		q2.heap = q2.heap[:n]
	}
}

func (q *SweepEvents) String() string {
	sb := strings.Builder{}
	q.Print(&sb)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
