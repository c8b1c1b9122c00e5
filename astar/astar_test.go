package astar

import (
	"testing"

	"github.com/vuggy17/elbow/geometry"
	"github.com/vuggy17/elbow/grid"
)

func newTestGrid(t *testing.T, start, end geometry.Point, startHeading, endHeading geometry.Heading) *grid.Grid {
	t.Helper()
	common := geometry.Union(geometry.FromPoint(start, 0), geometry.FromPoint(end, 0))
	return grid.CalculateGrid(nil, start, startHeading, end, endHeading, common)
}

func TestFindPath_StraightLine(t *testing.T) {
	start := geometry.Point{X: 0, Y: 0}
	end := geometry.Point{X: 100, Y: 0}
	g := newTestGrid(t, start, end, geometry.Right, geometry.Left)

	startNode, _ := g.NodeAt(start)
	endNode, _ := g.NodeAt(end)

	nodes, found := FindPath(g, startNode, endNode, geometry.Right, geometry.Left, nil)
	if !found {
		t.Fatal("expected a path")
	}
	if len(nodes) != 2 {
		t.Fatalf("expected a direct 2-node path, got %d nodes", len(nodes))
	}
	if nodes[0].Pos != start || nodes[1].Pos != end {
		t.Errorf("unexpected path %v", nodes)
	}
}

func TestFindPath_SameNode(t *testing.T) {
	p := geometry.Point{X: 5, Y: 5}
	g := newTestGrid(t, p, p, geometry.Right, geometry.Left)
	node, _ := g.NodeAt(p)

	nodes, found := FindPath(g, node, node, geometry.Right, geometry.Left, nil)
	if !found || len(nodes) != 1 {
		t.Fatalf("expected a single-node path, got %v, found=%v", nodes, found)
	}
}

func TestFindPath_ObstacleForcesDetour(t *testing.T) {
	start := geometry.Point{X: 0, Y: 50}
	end := geometry.Point{X: 100, Y: 50}
	obstacle := geometry.NewBounds(40, 0, 60, 100)

	common := geometry.Union(geometry.FromPoint(start, 0), geometry.FromPoint(end, 0), obstacle)
	g := grid.CalculateGrid([]geometry.Bounds{obstacle}, start, geometry.Right, end, geometry.Left, common)

	startNode, ok := g.NodeAt(start)
	if !ok {
		t.Fatal("start missing from grid")
	}
	endNode, ok := g.NodeAt(end)
	if !ok {
		t.Fatal("end missing from grid")
	}

	nodes, found := FindPath(g, startNode, endNode, geometry.Right, geometry.Left, []geometry.Bounds{obstacle})
	if !found {
		t.Fatal("expected a path around the obstacle")
	}
	for i := 0; i+1 < len(nodes); i++ {
		mid := geometry.Point{X: (nodes[i].Pos.X + nodes[i+1].Pos.X) / 2, Y: (nodes[i].Pos.Y + nodes[i+1].Pos.Y) / 2}
		if obstacle.ContainsStrict(mid) {
			t.Errorf("path segment %d->%d cuts through the obstacle", i, i+1)
		}
	}
}

func TestFindPath_NoRouteWhenFullyEnclosed(t *testing.T) {
	// A 3x3 grid with start and end at opposite corners; every node other
	// than start and end is pre-closed, so no path can possibly form.
	g := &grid.Grid{Row: 3, Col: 3, Data: make([]grid.Node, 9)}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.Data[r*3+c] = grid.Node{Pos: geometry.Point{X: float64(c * 10), Y: float64(r * 10)}, Col: c, Row: r, Closed: true}
		}
	}
	startNode := g.At(0, 0)
	endNode := g.At(2, 2)
	startNode.Closed = false
	endNode.Closed = false

	_, found := FindPath(g, startNode, endNode, geometry.Right, geometry.Left, nil)
	if found {
		t.Fatal("expected no route when every intermediate node is banned")
	}
}
