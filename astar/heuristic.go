package astar

import "github.com/vuggy17/elbow/geometry"

// estimatedBends is the closed-form lookup of spec.md §4.5 step 5: the
// minimum number of 90° turns any legal orthogonal path between two
// half-lines must make, given the direction the path is currently
// travelling (candidateDir), the direction the end shape faces
// (endHeading), and the relative position of n versus end.
//
// The formula scores both headings as directions of travel: candidateDir
// as the direction leaving n, endHeading as if it were the direction of the
// final step into end (FindPath itself never takes a final step along
// endHeading; the estimate is only a search-order hint). Two directions on the same axis either
// match (same direction) or oppose (reverse); directions on different
// axes always combine into an L- or Z-shaped detour.
func estimatedBends(candidateDir, endHeading geometry.Heading, n, end geometry.Point) int {
	dx := end.X - n.X
	dy := end.Y - n.Y

	if candidateDir.IsHorizontal() == endHeading.IsHorizontal() {
		if candidateDir == endHeading {
			forward := axisSign(candidateDir)*alongCoord(candidateDir, dx, dy) > 0
			aligned := perpCoord(candidateDir, dx, dy) == 0
			switch {
			case forward && aligned:
				return 0
			case forward:
				return 2
			default:
				return 4
			}
		}
		// Same axis, opposite direction: a straight reversal, only
		// possible via a U-shaped detour if there's perpendicular room.
		if perpCoord(candidateDir, dx, dy) == 0 {
			return 4
		}
		return 2
	}

	// Perpendicular axes: an L-shape needs one turn if both directions
	// already point the right way; a Z needs two if only one does; three
	// if neither does.
	forward1 := axisSign(candidateDir)*alongCoord(candidateDir, dx, dy) > 0
	forward2 := axisSign(endHeading)*alongCoord(endHeading, dx, dy) > 0
	switch {
	case forward1 && forward2:
		return 1
	case forward1 != forward2:
		return 2
	default:
		return 3
	}
}

// axisSign is +1 for the headings that increase their axis's coordinate
// (Right increases x, Down increases y), -1 for the ones that decrease it.
func axisSign(h geometry.Heading) float64 {
	switch h {
	case geometry.Right, geometry.Down:
		return 1
	default:
		return -1
	}
}

// alongCoord returns the delta component along h's own axis.
func alongCoord(h geometry.Heading, dx, dy float64) float64 {
	if h.IsHorizontal() {
		return dx
	}
	return dy
}

// perpCoord returns the delta component perpendicular to h's axis.
func perpCoord(h geometry.Heading, dx, dy float64) float64 {
	if h.IsHorizontal() {
		return dy
	}
	return dx
}
