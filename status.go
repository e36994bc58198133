package circles

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

type nodeColor bool

const (
	red   nodeColor = false
	black nodeColor = true
)

func (c nodeColor) String() string {
	if c == black {
		return "B"
	}
	return "R"
}

// StatusNode is a node of the sweep status holding an active arc.
type StatusNode struct {
	parent, left, right *StatusNode
	color               nodeColor

	*Arc
}

func (n *StatusNode) String() string {
	if n.Arc == nil {
		return fmt.Sprintf("(%v)", n.color)
	}
	return fmt.Sprintf("(%v %v)", n.Arc, n.color)
}

// SweepStatus is a red-black tree of the arcs that cross the sweep line, ordered from bottom to top. Arcs have no fixed order as they may swap when crossing, instead each operation compares arcs just after the current sweep point. This is valid as long as no two arcs cross between consecutive sweep points, since crossings are events themselves.
type SweepStatus struct {
	root *StatusNode
	nil  *StatusNode // shared black sentinel for all leaves and the root's parent
	size int
	pool *sync.Pool
}

// NewSweepStatus returns an empty sweep status.
func NewSweepStatus() *SweepStatus {
	sentinel := &StatusNode{color: black}
	sentinel.parent, sentinel.left, sentinel.right = sentinel, sentinel, sentinel
	return &SweepStatus{
		root: sentinel,
		nil:  sentinel,
		pool: &sync.Pool{New: func() any { return &StatusNode{} }},
	}
}

func (s *SweepStatus) newNode(arc *Arc, parent *StatusNode) *StatusNode {
	n := s.pool.Get().(*StatusNode)
	n.parent = parent
	n.left = s.nil
	n.right = s.nil
	n.color = red
	n.Arc = arc
	n.Arc.node = n
	return n
}

func (s *SweepStatus) returnNode(n *StatusNode) {
	n.Arc.node = nil
	n.Arc = nil // help the GC
	n.parent, n.left, n.right = nil, nil, nil
	s.pool.Put(n)
}

// Len returns the number of arcs in the status.
func (s *SweepStatus) Len() int {
	return s.size
}

// First returns the lowest node, or nil if empty.
func (s *SweepStatus) First() *StatusNode {
	if s.root == s.nil {
		return nil
	}
	return s.min(s.root)
}

// Last returns the highest node, or nil if empty.
func (s *SweepStatus) Last() *StatusNode {
	if s.root == s.nil {
		return nil
	}
	return s.max(s.root)
}

func (s *SweepStatus) min(n *StatusNode) *StatusNode {
	for n.left != s.nil {
		n = n.left
	}
	return n
}

func (s *SweepStatus) max(n *StatusNode) *StatusNode {
	for n.right != s.nil {
		n = n.right
	}
	return n
}

// Prev returns the node directly below n, or nil if n is the lowest.
func (s *SweepStatus) Prev(n *StatusNode) *StatusNode {
	if n == nil || n == s.nil {
		return nil
	} else if n.left != s.nil {
		return s.max(n.left)
	}
	for n.parent != s.nil && n.parent.left == n {
		n = n.parent // find first parent for which we're right
	}
	if n.parent == s.nil {
		return nil
	}
	return n.parent
}

// Next returns the node directly above n, or nil if n is the highest.
func (s *SweepStatus) Next(n *StatusNode) *StatusNode {
	if n == nil || n == s.nil {
		return nil
	} else if n.right != s.nil {
		return s.min(n.right)
	}
	for n.parent != s.nil && n.parent.right == n {
		n = n.parent // find first parent for which we're left
	}
	if n.parent == s.nil {
		return nil
	}
	return n.parent
}

// position returns the node under which arc would be inserted at sweep point p, and whether it goes to its left (below). If arc is nil, the position of point p is returned. It returns nil for an empty status.
func (s *SweepStatus) position(p Point, arc *Arc) (*StatusNode, bool) {
	var parent *StatusNode
	left := false
	for n := s.root; n != s.nil; {
		parent = n
		if left = n.Above(p, arc); left {
			n = n.left
		} else {
			n = n.right
		}
	}
	return parent, left
}

// LowerBound returns the node directly below the position arc would be inserted at sweep point p, or nil if there is none. If arc is nil, the node below point p is returned.
func (s *SweepStatus) LowerBound(p Point, arc *Arc) *StatusNode {
	n, left := s.position(p, arc)
	if n == nil || !left {
		return n
	}
	return s.Prev(n)
}

// UpperBound returns the node directly above the position arc would be inserted at sweep point p, or nil if there is none. If arc is nil, the node above point p is returned.
func (s *SweepStatus) UpperBound(p Point, arc *Arc) *StatusNode {
	n, left := s.position(p, arc)
	if n == nil || left {
		return n
	}
	return s.Next(n)
}

// Contains returns the arcs that pass through p from bottom to top. These arcs are consecutive in the status and are adjacent to the position of p.
func (s *SweepStatus) Contains(p Point) []*Arc {
	n, _ := s.position(p, nil)
	if n == nil {
		return nil
	}
	for prev := s.Prev(n); prev != nil && prev.Contains(p); prev = s.Prev(prev) {
		n = prev
	}
	if !n.Contains(p) {
		n = s.Next(n)
	}

	var arcs []*Arc
	for ; n != nil && n.Contains(p); n = s.Next(n) {
		arcs = append(arcs, n.Arc)
	}
	return arcs
}

// Arcs returns all arcs from bottom to top.
func (s *SweepStatus) Arcs() []*Arc {
	arcs := make([]*Arc, 0, s.size)
	for n := s.First(); n != nil; n = s.Next(n) {
		arcs = append(arcs, n.Arc)
	}
	return arcs
}

// Insert adds arc to the status at sweep point p and returns its node.
func (s *SweepStatus) Insert(arc *Arc, p Point) *StatusNode {
	if arc.node != nil {
		panic("arc already in sweep status")
	}

	parent, left := s.position(p, arc)
	if parent == nil {
		parent = s.nil
	}
	n := s.newNode(arc, parent)
	if parent == s.nil {
		s.root = n
	} else if left {
		parent.left = n
	} else {
		parent.right = n
	}
	s.size++
	s.insertFixup(n)
	return n
}

func (s *SweepStatus) insertFixup(z *StatusNode) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			uncle := z.parent.parent.right
			if uncle.color == red {
				uncle.color = black
				z.parent.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					// turn into a left child
					z = z.parent
					s.rotateLeft(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				s.rotateRight(z.parent.parent)
			}
		} else {
			uncle := z.parent.parent.left
			if uncle.color == red {
				uncle.color = black
				z.parent.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					// turn into a right child
					z = z.parent
					s.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				s.rotateLeft(z.parent.parent)
			}
		}
	}
	s.root.color = black
}

// Remove removes node n from the status. The arc's node reference is cleared.
func (s *SweepStatus) Remove(n *StatusNode) {
	if n == nil || n == s.nil || n.Arc == nil || n.Arc.node != n {
		panic("node not in sweep status")
	}

	var x *StatusNode
	y, yColor := n, n.color
	if n.left == s.nil {
		x = n.right
		s.transplant(n, n.right)
	} else if n.right == s.nil {
		x = n.left
		s.transplant(n, n.left)
	} else {
		// replace by in-order successor
		y = s.min(n.right)
		yColor = y.color
		x = y.right
		if y.parent == n {
			x.parent = y // x may be the sentinel
		} else {
			s.transplant(y, y.right)
			y.right = n.right
			y.right.parent = y
		}
		s.transplant(n, y)
		y.left = n.left
		y.left.parent = y
		y.color = n.color
	}
	s.size--
	s.returnNode(n)
	if yColor == black {
		s.removeFixup(x)
	}
	s.nil.parent = s.nil
}

func (s *SweepStatus) transplant(n, child *StatusNode) {
	child.parent = n.parent
	if n.parent == s.nil {
		s.root = child
	} else if n == n.parent.left {
		n.parent.left = child
	} else {
		n.parent.right = child
	}
}

func (s *SweepStatus) removeFixup(x *StatusNode) {
	for x != s.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				s.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					s.rotateRight(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				s.rotateLeft(x.parent)
				x = s.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				s.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					s.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				s.rotateRight(x.parent)
				x = s.root
			}
		}
	}
	x.color = black
}

func (s *SweepStatus) rotateLeft(a *StatusNode) {
	b := a.right
	if b == s.nil {
		panic("rotate left onto sentinel")
	}
	if a.right = b.left; a.right != s.nil {
		a.right.parent = a
	}
	b.parent = a.parent
	if a.parent == s.nil {
		s.root = b
	} else if a == a.parent.left {
		a.parent.left = b
	} else {
		a.parent.right = b
	}
	b.left = a
	a.parent = b
}

func (s *SweepStatus) rotateRight(a *StatusNode) {
	b := a.left
	if b == s.nil {
		panic("rotate right onto sentinel")
	}
	if a.left = b.right; a.left != s.nil {
		a.left.parent = a
	}
	b.parent = a.parent
	if a.parent == s.nil {
		s.root = b
	} else if a == a.parent.right {
		a.parent.right = b
	} else {
		a.parent.left = b
	}
	b.right = a
	a.parent = b
}

// Print writes the tree level by level, the sentinel leaves included.
func (s *SweepStatus) Print(w io.Writer) {
	nodes := []*StatusNode{s.root}
	for 0 < len(nodes) {
		n := nodes[0]
		nodes = nodes[1:]
		fmt.Fprintf(w, "%v,\n", n)
		if n != s.nil {
			nodes = append(nodes, n.left, n.right)
		}
	}
}

func (s *SweepStatus) String() string {
	sb := strings.Builder{}
	s.Print(&sb)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
