// Package astar implements the Manhattan A* search of spec.md §4.5: a
// binary-heap-driven search over a grid.Grid with a bend-cubed cost
// function, a no-reversal movement rule, and obstacle avoidance tested at
// each candidate edge's midpoint.
package astar

import (
	"container/heap"

	"github.com/vuggy17/elbow/geometry"
	"github.com/vuggy17/elbow/grid"
)

// neighborOrder is the fixed 4-connected exploration order spec.md §4.5
// specifies: 0=up, 1=right, 2=down, 3=left. Determinism here is what
// makes scenario S3's "loop around" bend direction (UP first) predictable.
var neighborOrder = [4]geometry.Heading{geometry.Up, geometry.Right, geometry.Down, geometry.Left}

// FindPath searches g from start to end, never leaving start against
// startHeading and never entering end by a step along endHeading, treating obstacles as impassable at every
// candidate edge's midpoint. It returns the path as a slice of grid nodes
// from start to end (inclusive) and true, or (nil, false) if the open set
// empties before reaching end (spec.md §7's "no route" case).
//
// start and end must be nodes of g. The grid, and every node's mutable
// search state, is used for exactly one FindPath call: grid.CalculateGrid
// builds a fresh Grid per routing call, so nodes never carry state across
// searches.
func FindPath(g *grid.Grid, start, end *grid.Node, startHeading, endHeading geometry.Heading, obstacles []geometry.Bounds) ([]*grid.Node, bool) {
	if start == end {
		return []*grid.Node{start}, true
	}

	bendMultiplier := geometry.ManhattanDistance(start.Pos, end.Pos)
	bendCube := bendMultiplier * bendMultiplier * bendMultiplier
	bendSquare := bendMultiplier * bendMultiplier

	open := &nodeQueue{}
	heap.Init(open)

	start.G = 0
	start.H = geometry.ManhattanDistance(start.Pos, end.Pos) + float64(estimatedBends(startHeading, endHeading, start.Pos, end.Pos))*bendSquare
	start.F = start.G + start.H
	start.Visited = true
	heap.Push(open, start)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*grid.Node)
		if cur.Closed {
			continue
		}
		if cur == end {
			return reconstruct(cur), true
		}
		cur.Closed = true

		prevDir := startHeading
		if cur.Parent != nil {
			prevDir = geometry.HeadingBetween(cur.Parent.Pos, cur.Pos)
		}

		for _, dir := range neighborOrder {
			n, ok := g.Neighbor(cur, dir)
			if !ok || n.Closed {
				continue
			}

			mid := geometry.Point{X: (cur.Pos.X + n.Pos.X) / 2, Y: (cur.Pos.Y + n.Pos.Y) / 2}
			if inAnyObstacle(mid, obstacles) {
				continue
			}

			if dir == prevDir.Reverse() {
				continue
			}
			if cur == start && dir == startHeading.Reverse() {
				continue
			}
			if n == start && dir == startHeading {
				continue
			}
			if n == end && dir == endHeading {
				continue
			}

			directionChange := dir != prevDir
			stepCost := geometry.ManhattanDistance(cur.Pos, n.Pos)
			if directionChange {
				stepCost += bendCube
			}
			gNew := cur.G + stepCost

			if !n.Visited || gNew < n.G {
				n.G = gNew
				n.H = geometry.ManhattanDistance(n.Pos, end.Pos) + float64(estimatedBends(dir, endHeading, n.Pos, end.Pos))*bendSquare
				n.F = n.G + n.H
				n.Parent = cur
				if !n.Visited {
					n.Visited = true
					heap.Push(open, n)
				} else {
					heap.Fix(open, n.Index)
				}
			}
		}
	}

	return nil, false
}

func inAnyObstacle(p geometry.Point, obstacles []geometry.Bounds) bool {
	for _, b := range obstacles {
		if b.ContainsStrict(p) {
			return true
		}
	}
	return false
}

func reconstruct(end *grid.Node) []*grid.Node {
	var path []*grid.Node
	for n := end; n != nil; n = n.Parent {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
