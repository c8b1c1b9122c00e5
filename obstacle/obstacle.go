// Package obstacle builds the two dynamic obstacle AABBs the router routes
// around (spec.md §4.3): rectangles shaped by each endpoint's heading and
// by whether the two endpoint regions overlap.
package obstacle

import (
	"github.com/vuggy17/elbow/geometry"
	"github.com/vuggy17/elbow/sceneio"
)

// Config holds the tunables spec.md leaves as named constants rather than
// deriving from geometry.
type Config struct {
	// FixedBindingDistance is the base unit the raw endpoint AABB is
	// expanded by (4x, outward on the heading side) when the endpoint is
	// bound to a shape.
	FixedBindingDistance float64
	// FreePointSize is the side length of the tiny square used as a free
	// point's raw AABB.
	FreePointSize float64
	// OverlapExpand is the amount each outer, non-shared side of the two
	// raw AABBs is pushed out when they overlap (spec.md §4.3, "expanded
	// by 40").
	OverlapExpand float64
}

// DefaultConfig mirrors the constants named in spec.md's prose.
func DefaultConfig() Config {
	return Config{FixedBindingDistance: 5, FreePointSize: 4, OverlapExpand: 40}
}

// RawAABB is the un-split obstacle region for one endpoint: the shape's
// bounds expanded by 4xFixedBindingDistance on the side the heading points
// out of, or a FreePointSize square centered on point when there is no
// shape.
func RawAABB(shape *sceneio.Shape, h geometry.Heading, point geometry.Point, cfg Config) geometry.Bounds {
	if shape == nil {
		return geometry.FromPoint(point, cfg.FreePointSize)
	}
	b := shape.Bounds()
	offset := 4 * cfg.FixedBindingDistance
	switch h {
	case geometry.Up:
		b.YMin -= offset
	case geometry.Down:
		b.YMax += offset
	case geometry.Left:
		b.XMin -= offset
	case geometry.Right:
		b.XMax += offset
	}
	return b
}

// Dynamic computes the two obstacle AABBs for the start and end endpoints,
// implementing spec.md §4.3: overlap expansion when the raw boxes
// intersect, otherwise a corridor split (on whichever axis separates them,
// or a diagonal quadrant fix-up when they're corner-adjacent on both
// axes).
//
// startOffset/endOffset are each endpoint's own heading-offset (the amount
// its box must keep extending past its own shape/point, spec.md's
// "heading-offset" clamp); DefaultConfig's FixedBindingDistance*4 is the
// natural choice for both.
func Dynamic(a, b geometry.Bounds, startOffset, endOffset float64) (geometry.Bounds, geometry.Bounds) {
	common := geometry.Union(a, b)

	if a.Overlaps(b) {
		return a.ExpandOutward(common, defaultOverlapExpand), b.ExpandOutward(common, defaultOverlapExpand)
	}

	sepX := a.XMax <= b.XMin || b.XMax <= a.XMin
	sepY := a.YMax <= b.YMin || b.YMax <= a.YMin

	var ca, cb geometry.Bounds
	switch {
	case sepX && !sepY:
		ca, cb = splitOnX(a, b, common, startOffset, endOffset)
	case sepY && !sepX:
		ca, cb = splitOnY(a, b, common, startOffset, endOffset)
	case sepX && sepY:
		ca, cb = splitOnX(a, b, common, startOffset, endOffset)
		if ca.Overlaps(cb) {
			ca, cb = quadrantFixUp(a, b, common)
		}
	default:
		// Not overlapping and not separated on either axis is
		// unreachable (Overlaps already covers every other
		// configuration), but fall back to the raw boxes rather than
		// panic.
		ca, cb = a, b
	}

	if ca.Overlaps(cb) {
		ca, cb = quadrantFixUp(a, b, common)
	}
	return ca, cb
}

// defaultOverlapExpand matches DefaultConfig().OverlapExpand; Dynamic
// doesn't take a Config because the split geometry only ever needs this
// one tunable, keeping the call site (router.Route) simple.
const defaultOverlapExpand = 40

func splitOnX(a, b, common geometry.Bounds, offA, offB float64) (geometry.Bounds, geometry.Bounds) {
	left, right := a, b
	leftOff, rightOff := offA, offB
	swapped := false
	if b.XMax <= a.XMin {
		left, right = b, a
		leftOff, rightOff = offB, offA
		swapped = true
	}

	mid := (left.XMax + right.XMin) / 2
	mid = geometry.Clamp(mid, left.XMax-leftOff, right.XMin+rightOff)

	ca := left
	ca.XMax = mid
	ca.YMin, ca.YMax = common.YMin, common.YMax

	cb := right
	cb.XMin = mid
	cb.YMin, cb.YMax = common.YMin, common.YMax

	if swapped {
		return cb, ca
	}
	return ca, cb
}

func splitOnY(a, b, common geometry.Bounds, offA, offB float64) (geometry.Bounds, geometry.Bounds) {
	top, bottom := a, b
	topOff, bottomOff := offA, offB
	swapped := false
	if b.YMax <= a.YMin {
		top, bottom = b, a
		topOff, bottomOff = offB, offA
		swapped = true
	}

	mid := (top.YMax + bottom.YMin) / 2
	mid = geometry.Clamp(mid, top.YMax-topOff, bottom.YMin+bottomOff)

	ca := top
	ca.YMax = mid
	ca.XMin, ca.XMax = common.XMin, common.XMax

	cb := bottom
	cb.YMin = mid
	cb.XMin, cb.XMax = common.XMin, common.XMax

	if swapped {
		return cb, ca
	}
	return ca, cb
}

// quadrantFixUp resolves the corner-touching configuration spec.md §4.3
// calls out: split using the sign of the cross product of a's diagonal
// against the vector from a's center to b's center, choosing to cut at
// the common X center or the common Y center so the two results are
// disjoint rectangles covering the routing corridor.
func quadrantFixUp(a, b, common geometry.Bounds) (geometry.Bounds, geometry.Bounds) {
	diag := geometry.Vector{X: a.XMax - a.XMin, Y: a.YMax - a.YMin}
	toB := b.Center().Sub(a.Center())
	cross := diag.X*toB.Y - diag.Y*toB.X

	cX := common.Center().X
	cY := common.Center().Y

	if cross >= 0 {
		ca := a
		ca.YMax = cY
		ca.XMin, ca.XMax = common.XMin, common.XMax
		cb := b
		cb.YMin = cY
		cb.XMin, cb.XMax = common.XMin, common.XMax
		return ca, cb
	}

	ca := a
	ca.XMax = cX
	ca.YMin, ca.YMax = common.YMin, common.YMax
	cb := b
	cb.XMin = cX
	cb.YMin, cb.YMax = common.YMin, common.YMax
	return ca, cb
}
