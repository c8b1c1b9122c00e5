// Package postproc implements the router's final pass (spec.md §4.6):
// collinear-point simplification and conversion from world coordinates to
// the arrow-local coordinates the mutation sink writes back.
package postproc

import "github.com/vuggy17/elbow/geometry"

// Simplify removes any middle point whose incoming and outgoing headings
// are equal, merging runs of collinear points into a single segment.
// Idempotent: Simplify(Simplify(p)) == Simplify(p).
func Simplify(points []geometry.Point) []geometry.Point {
	if len(points) < 3 {
		out := make([]geometry.Point, len(points))
		copy(out, points)
		return out
	}

	result := make([]geometry.Point, 2, len(points))
	result[0], result[1] = points[0], points[1]

	for _, p := range points[2:] {
		n := len(result)
		prevHeading := geometry.HeadingBetween(result[n-2], result[n-1])
		nextHeading := geometry.HeadingBetween(result[n-1], p)
		if prevHeading == nextHeading {
			result[n-1] = p
		} else {
			result = append(result, p)
		}
	}
	return result
}

// Normalized is the arrow update spec.md §4.6 emits: local points plus
// the global position and extent they were derived from.
type Normalized struct {
	Points    []geometry.Point
	X, Y      float64
	Width     float64
	Height    float64
	Angle     float64
	Roundness *string
}

// Normalize translates points so the first sits at (0,0), and reports the
// global origin and bounding extent of the translated points. Translating
// Normalize(points).Points back by (X, Y) reproduces the original global
// points exactly.
func Normalize(points []geometry.Point) Normalized {
	origin := points[0]
	local := make([]geometry.Point, len(points))

	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0
	for i, p := range points {
		lp := geometry.Point{X: p.X - origin.X, Y: p.Y - origin.Y}
		local[i] = lp
		if i == 0 || lp.X < minX {
			minX = lp.X
		}
		if i == 0 || lp.X > maxX {
			maxX = lp.X
		}
		if i == 0 || lp.Y < minY {
			minY = lp.Y
		}
		if i == 0 || lp.Y > maxY {
			maxY = lp.Y
		}
	}

	return Normalized{
		Points: local,
		X:      origin.X,
		Y:      origin.Y,
		Width:  maxX - minX,
		Height: maxY - minY,
		Angle:  0,
	}
}
