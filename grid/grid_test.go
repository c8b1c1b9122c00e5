package grid

import (
	"testing"

	"github.com/vuggy17/elbow/geometry"
)

func TestCalculateGrid_CollectsSignificantCoordinates(t *testing.T) {
	obstacle := geometry.NewBounds(20, 20, 40, 60)
	common := geometry.NewBounds(0, 0, 100, 100)

	g := CalculateGrid(
		[]geometry.Bounds{obstacle},
		geometry.Point{X: 0, Y: 0}, geometry.Right,
		geometry.Point{X: 100, Y: 100}, geometry.Left,
		common,
	)

	// Endpoints and every obstacle corner must land on the lattice.
	for _, p := range []geometry.Point{
		{X: 0, Y: 0}, {X: 100, Y: 100},
		{X: 20, Y: 20}, {X: 40, Y: 60},
		{X: 0, Y: 100}, {X: 100, Y: 0},
	} {
		if _, ok := g.NodeAt(p); !ok {
			t.Errorf("expected node at %v", p)
		}
	}
}

func TestNodeAt_ExactFloatMatch(t *testing.T) {
	g := CalculateGrid(nil, geometry.Point{X: 0, Y: 0}, geometry.Right, geometry.Point{X: 33.3333, Y: 0}, geometry.Left, geometry.NewBounds(0, 0, 33.3333, 0))

	n, ok := g.NodeAt(geometry.Point{X: 33.3333, Y: 0})
	if !ok {
		t.Fatal("expected exact-match node lookup to succeed")
	}
	if n.Pos.X != 33.3333 {
		t.Errorf("node coordinate was recomputed instead of copied: got %v", n.Pos.X)
	}
}

func TestNeighbor_BoundaryReturnsFalse(t *testing.T) {
	g := CalculateGrid(nil, geometry.Point{X: 0, Y: 0}, geometry.Right, geometry.Point{X: 10, Y: 10}, geometry.Left, geometry.NewBounds(0, 0, 10, 10))

	corner := g.At(0, 0)
	if _, ok := g.Neighbor(corner, geometry.Up); ok {
		t.Error("expected no neighbor above the top-left corner")
	}
	if _, ok := g.Neighbor(corner, geometry.Left); ok {
		t.Error("expected no neighbor left of the top-left corner")
	}
	if _, ok := g.Neighbor(corner, geometry.Right); !ok {
		t.Error("expected a neighbor to the right of the top-left corner")
	}
}

func TestCloseInside_BansOnlyStrictInterior(t *testing.T) {
	g := CalculateGrid(nil, geometry.Point{X: 0, Y: 0}, geometry.Right, geometry.Point{X: 100, Y: 100}, geometry.Left, geometry.NewBounds(0, 0, 100, 100))
	bounds := geometry.NewBounds(0, 0, 100, 100)

	keep, ok := g.NodeAt(geometry.Point{X: 0, Y: 0})
	if !ok {
		t.Fatal("expected a node at the origin")
	}

	g.CloseInside(bounds, keep)

	if keep.Closed {
		t.Error("kept node must not be closed by CloseInside")
	}
	boundary, ok := g.NodeAt(geometry.Point{X: 100, Y: 0})
	if !ok {
		t.Fatal("expected a node at (100,0)")
	}
	if boundary.Closed {
		t.Error("a node exactly on the boundary must not be closed")
	}
}
