package sceneio

import "github.com/vuggy17/elbow/geometry"

// Collaborators bundles the hit-testing and snap-to-outline utilities the
// router consumes but does not implement — spec.md §6: "Bit-exact outputs
// of those are outside this spec." A real editor wires its own
// implementation; tests use a stub (see sceneio/stub.go).
type Collaborators interface {
	// SnapToOutline returns the closest point on shape's outline to p.
	SnapToOutline(p geometry.Point, shape Shape) geometry.Point

	// DistanceToShape returns the distance from p to shape's outline (0 if
	// p is inside shape).
	DistanceToShape(p geometry.Point, shape Shape) float64

	// AvoidCorner nudges p away from the nearest corner of shape, along its
	// outline, so that subsequent snapping doesn't land exactly on a
	// corner.
	AvoidCorner(p geometry.Point, shape Shape) geometry.Point

	// SnapToMid pulls p to the midpoint of whichever edge of shape it is
	// closest to.
	SnapToMid(p geometry.Point, shape Shape) geometry.Point

	// HoveredShapeAt returns the topmost shape (excluding fullyInside
	// checks left to the implementation) under p, if any.
	HoveredShapeAt(p geometry.Point, scene Scene, fullyInside bool) (Shape, bool)

	// IsBindable reports whether shape can be an arrow endpoint's target.
	IsBindable(shape Shape) bool
}
