// Package heading implements the outward-heading classifier of spec.md
// §4.1: given a shape and a point on (or near) it, decide which of the
// four cardinal directions the point faces outward from the shape's
// center.
package heading

import (
	"github.com/vuggy17/elbow/geometry"
	"github.com/vuggy17/elbow/sceneio"
)

// ForPoint computes the outward heading from shape's center through
// point, using aabb (the shape's already outward-scaled bounding box) for
// the non-diamond triangle test.
func ForPoint(shape sceneio.Shape, aabb geometry.Bounds, point geometry.Point) geometry.Heading {
	if shape.IsDiamond() {
		return forDiamond(shape, point)
	}
	return forRectanguloid(aabb, point)
}

// forRectanguloid splits aabb into four center-anchored triangles (top,
// right, bottom, left) and returns the heading of whichever triangle
// contains point. Ties on a triangle boundary resolve in the order
// up -> right -> down -> left, matching the enumeration below.
func forRectanguloid(aabb geometry.Bounds, point geometry.Point) geometry.Heading {
	c := aabb.Center()
	corners := aabb.Corners() // TL, TR, BR, BL

	top := [3]geometry.Point{corners[0], corners[1], c}
	right := [3]geometry.Point{corners[1], corners[2], c}
	bottom := [3]geometry.Point{corners[2], corners[3], c}
	left := [3]geometry.Point{corners[3], corners[0], c}

	triangles := []struct {
		pts [3]geometry.Point
		h   geometry.Heading
	}{
		{top, geometry.Up},
		{right, geometry.Right},
		{bottom, geometry.Down},
		{left, geometry.Left},
	}

	for _, tri := range triangles {
		if geometry.TriangleContains(point, tri.pts[0], tri.pts[1], tri.pts[2]) {
			return tri.h
		}
	}
	// Point outside aabb, so no triangle contains it: fall back to up,
	// first in the deterministic resolution order.
	return geometry.Up
}

// forDiamond implements the diamond special case: if point falls strictly
// outside the shape's un-rotated extent on exactly one side, that side's
// heading is returned directly; otherwise the four tip-midpoints are
// rotated by shape.Angle and, for a point in one of the four triangles, the
// angle of the vector from the center to point is classified via
// geometry.HeadingFromAngle.
func forDiamond(shape sceneio.Shape, point geometry.Point) geometry.Heading {
	b := shape.Bounds()

	outsideLeft := point.X < b.XMin
	outsideRight := point.X > b.XMax
	outsideTop := point.Y < b.YMin
	outsideBottom := point.Y > b.YMax

	sides := 0
	var only geometry.Heading
	if outsideLeft {
		sides++
		only = geometry.Left
	}
	if outsideRight {
		sides++
		only = geometry.Right
	}
	if outsideTop {
		sides++
		only = geometry.Up
	}
	if outsideBottom {
		sides++
		only = geometry.Down
	}
	if sides == 1 {
		return only
	}

	c := shape.Center()
	halfW, halfH := shape.Width/2, shape.Height/2

	// Un-rotated tip-midpoints: top, right, bottom, left.
	tips := [4]geometry.Point{
		{X: c.X, Y: c.Y - halfH},
		{X: c.X + halfW, Y: c.Y},
		{X: c.X, Y: c.Y + halfH},
		{X: c.X - halfW, Y: c.Y},
	}
	for i, t := range tips {
		tips[i] = geometry.RotateAbout(t, c, shape.Angle)
	}

	// Four triangles between consecutive rotated tips: top-right,
	// right-bottom, bottom-left, left-top.
	quads := [4][2]geometry.Point{
		{tips[0], tips[1]},
		{tips[1], tips[2]},
		{tips[2], tips[3]},
		{tips[3], tips[0]},
	}

	for _, q := range quads {
		if geometry.TriangleContains(point, q[0], q[1], c) {
			edgeAngle := geometry.AngleDegrees(point.Sub(c))
			return geometry.HeadingFromAngle(edgeAngle)
		}
	}

	// Point lies outside the diamond's outline (in a corner of its extent,
	// or beyond two sides); classify by the same angle.
	return geometry.HeadingFromAngle(geometry.AngleDegrees(point.Sub(c)))
}

// GetBindPointHeading derives the heading an arrow endpoint should face.
// If hoveredShape is present, delegate to ForPoint; otherwise classify the
// vector from point to otherPoint into its dominant axis.
func GetBindPointHeading(point, otherPoint geometry.Point, hoveredShape *sceneio.Shape, aabb geometry.Bounds) geometry.Heading {
	if hoveredShape != nil {
		return ForPoint(*hoveredShape, aabb, point)
	}
	return geometry.HeadingFromVector(otherPoint.Sub(point))
}
