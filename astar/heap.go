package astar

import (
	"github.com/vuggy17/elbow/geometry"
	"github.com/vuggy17/elbow/grid"
)

// nodeQueue is a binary min-heap over grid.Node.F, implementing
// heap.Interface exactly the way the teacher's pathfinding.NodeQueue
// does: each node's own Index field tracks its heap slot so that
// rescoring after a G-cost decrease (in FindPath) is heap.Fix's O(log n)
// sift, not a linear scan (spec.md §4.7, §9).
type nodeQueue []*grid.Node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].F != q[j].F {
		return q[i].F < q[j].F
	}
	if q[i].H != q[j].H {
		return q[i].H < q[j].H
	}
	// Deterministic tie-break, adapted from the teacher's symmetricOrder:
	// promotes visually symmetric paths on ties the first two keys leave
	// unresolved.
	return symmetricOrder(q[i].Pos, q[j].Pos)
}

func symmetricOrder(a, b geometry.Point) bool {
	sa, sb := a.X+a.Y, b.X+b.Y
	if sa != sb {
		return sa < sb
	}
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].Index = i
	q[j].Index = j
}

func (q *nodeQueue) Push(x any) {
	n := x.(*grid.Node)
	n.Index = len(*q)
	*q = append(*q, n)
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*q = old[:n-1]
	return node
}
