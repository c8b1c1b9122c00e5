// Package grid builds the sparse routing lattice of spec.md §4.4: a
// row×col array of Nodes at the intersections of the significant x- and
// y-coordinates collected from the endpoints and obstacle AABBs.
package grid

import (
	"sort"

	"github.com/vuggy17/elbow/geometry"
)

// Node is one cell of the routing grid. G, H, F, Closed, Visited and
// Parent are mutated in place by the A* search that owns this grid;
// Index is the node's position in astar's binary heap, kept here so
// rescoring after a G-cost decrease is an O(log n) sift-up rather than a
// linear scan (spec.md §9's design note).
type Node struct {
	Pos     geometry.Point
	Col     int
	Row     int
	G, H, F float64
	Closed  bool
	Visited bool
	Parent  *Node
	Index   int
}

// Grid is the row×col lattice, addressed row-major per spec.md §3:
// data[row*col+c] is the node at (c, row).
type Grid struct {
	Row, Col int
	Data     []Node
}

// At returns the node at column c, row r. Panics on an out-of-range
// address, since every caller derives addresses from Grid.Col/Row.
func (g *Grid) At(c, r int) *Node {
	return &g.Data[r*g.Col+c]
}

// NodeAt finds the node whose position equals p exactly. Grid coordinates
// are bit-exact copies of the values inserted into the coordinate sets
// (spec.md §9 open question 3), so this is a plain equality scan rather
// than a nearest-match search; grids are small enough (≤6×6 in the
// typical two-obstacle case, spec.md §5) that a linear scan is fine.
func (g *Grid) NodeAt(p geometry.Point) (*Node, bool) {
	for i := range g.Data {
		if g.Data[i].Pos == p {
			return &g.Data[i], true
		}
	}
	return nil, false
}

// Neighbor returns the node adjacent to n in direction h, or false if n
// is on that edge of the grid.
func (g *Grid) Neighbor(n *Node, h geometry.Heading) (*Node, bool) {
	c, r := n.Col, n.Row
	switch h {
	case geometry.Up:
		r--
	case geometry.Down:
		r++
	case geometry.Left:
		c--
	case geometry.Right:
		c++
	}
	if c < 0 || c >= g.Col || r < 0 || r >= g.Row {
		return nil, false
	}
	return g.At(c, r), true
}

// XCoords returns the grid's column x-coordinates, left to right.
func (g *Grid) XCoords() []float64 {
	xs := make([]float64, g.Col)
	for c := 0; c < g.Col; c++ {
		xs[c] = g.At(c, 0).Pos.X
	}
	return xs
}

// YCoords returns the grid's row y-coordinates, top to bottom.
func (g *Grid) YCoords() []float64 {
	ys := make([]float64, g.Row)
	for r := 0; r < g.Row; r++ {
		ys[r] = g.At(0, r).Pos.Y
	}
	return ys
}

// CloseInside marks every node strictly inside bounds as closed, except
// keep, so the search cannot cut through the interior of a bound shape
// (spec.md §4.5, "node banning") while still allowing the endpoint's own
// search node — which sits on the shape's boundary or its dynamic AABB,
// not its interior — to be used as a source or target.
func (g *Grid) CloseInside(bounds geometry.Bounds, keep *Node) {
	for i := range g.Data {
		n := &g.Data[i]
		if n == keep {
			continue
		}
		if bounds.ContainsStrict(n.Pos) {
			n.Closed = true
		}
	}
}

// CalculateGrid collects the significant x- and y-coordinates — both
// endpoints, and every edge of every obstacle AABB plus the common AABB
// — sorts each axis, and materializes the resulting lattice (spec.md
// §4.4).
func CalculateGrid(aabbs []geometry.Bounds, start geometry.Point, startHeading geometry.Heading, end geometry.Point, endHeading geometry.Heading, common geometry.Bounds) *Grid {
	xs := map[float64]struct{}{}
	ys := map[float64]struct{}{}

	if startHeading.IsHorizontal() {
		ys[start.Y] = struct{}{}
	} else {
		xs[start.X] = struct{}{}
	}
	if endHeading.IsHorizontal() {
		ys[end.Y] = struct{}{}
	} else {
		xs[end.X] = struct{}{}
	}

	addBounds := func(b geometry.Bounds) {
		xs[b.XMin] = struct{}{}
		xs[b.XMax] = struct{}{}
		ys[b.YMin] = struct{}{}
		ys[b.YMax] = struct{}{}
	}
	for _, b := range aabbs {
		addBounds(b)
	}
	addBounds(common)

	sortedX := sortedKeys(xs)
	sortedY := sortedKeys(ys)

	data := make([]Node, len(sortedY)*len(sortedX))
	for r, y := range sortedY {
		for c, x := range sortedX {
			data[r*len(sortedX)+c] = Node{Pos: geometry.Point{X: x, Y: y}, Col: c, Row: r}
		}
	}
	return &Grid{Row: len(sortedY), Col: len(sortedX), Data: data}
}

func sortedKeys(m map[float64]struct{}) []float64 {
	out := make([]float64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Float64s(out)
	return out
}
