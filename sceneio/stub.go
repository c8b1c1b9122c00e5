package sceneio

import "github.com/vuggy17/elbow/geometry"

// StubCollaborators is a minimal, geometrically correct implementation of
// Collaborators for rectanguloid and diamond shapes, used by fixtures and
// router tests in place of the real editor's hit-testing library (whose
// bit-exact outputs are outside this spec, per spec.md §6).
type StubCollaborators struct{}

// SnapToOutline implements Collaborators.
func (StubCollaborators) SnapToOutline(p geometry.Point, shape Shape) geometry.Point {
	b := shape.Bounds()
	if shape.IsDiamond() {
		return snapToDiamondOutline(p, shape)
	}
	x := geometry.Clamp(p.X, b.XMin, b.XMax)
	y := geometry.Clamp(p.Y, b.YMin, b.YMax)
	if b.Contains(p) {
		// Push to the nearest edge rather than leaving the point interior.
		distLeft := p.X - b.XMin
		distRight := b.XMax - p.X
		distTop := p.Y - b.YMin
		distBottom := b.YMax - p.Y
		min := geometry.Min(geometry.Min(distLeft, distRight), geometry.Min(distTop, distBottom))
		switch min {
		case distLeft:
			return geometry.Point{X: b.XMin, Y: p.Y}
		case distRight:
			return geometry.Point{X: b.XMax, Y: p.Y}
		case distTop:
			return geometry.Point{X: p.X, Y: b.YMin}
		default:
			return geometry.Point{X: p.X, Y: b.YMax}
		}
	}
	return geometry.Point{X: x, Y: y}
}

func snapToDiamondOutline(p geometry.Point, shape Shape) geometry.Point {
	c := shape.Center()
	v := p.Sub(c)
	half := geometry.Vector{X: shape.Width / 2, Y: shape.Height / 2}
	denom := geometry.Abs(v.X)/half.X + geometry.Abs(v.Y)/half.Y
	if denom == 0 {
		return c
	}
	scale := 1 / denom
	return c.Add(v.Scale(scale))
}

// DistanceToShape implements Collaborators.
func (StubCollaborators) DistanceToShape(p geometry.Point, shape Shape) float64 {
	if shape.Bounds().Contains(p) {
		return 0
	}
	snapped := StubCollaborators{}.SnapToOutline(p, shape)
	return geometry.ManhattanDistance(p, snapped)
}

// AvoidCorner implements Collaborators, nudging p a small distance along
// the outline away from the nearest corner.
func (StubCollaborators) AvoidCorner(p geometry.Point, shape Shape) geometry.Point {
	b := shape.Bounds()
	const margin = 2.0
	for _, corner := range b.Corners() {
		if geometry.ManhattanDistance(p, corner) < margin {
			if p.X == corner.X {
				if corner.Y == b.YMin {
					return geometry.Point{X: p.X, Y: b.YMin + margin}
				}
				return geometry.Point{X: p.X, Y: b.YMax - margin}
			}
			if corner.X == b.XMin {
				return geometry.Point{X: b.XMin + margin, Y: p.Y}
			}
			return geometry.Point{X: b.XMax - margin, Y: p.Y}
		}
	}
	return p
}

// SnapToMid implements Collaborators, pulling p to the midpoint of the
// nearest edge.
func (StubCollaborators) SnapToMid(p geometry.Point, shape Shape) geometry.Point {
	b := shape.Bounds()
	if p.X == b.XMin || p.X == b.XMax {
		return geometry.Point{X: p.X, Y: (b.YMin + b.YMax) / 2}
	}
	return geometry.Point{X: (b.XMin + b.XMax) / 2, Y: p.Y}
}

// HoveredShapeAt implements Collaborators.
func (StubCollaborators) HoveredShapeAt(p geometry.Point, scene Scene, fullyInside bool) (Shape, bool) {
	for _, s := range scene.Elements() {
		b := s.Bounds()
		if fullyInside {
			if b.Contains(p) {
				return s, true
			}
			continue
		}
		if b.Contains(p) {
			return s, true
		}
	}
	return Shape{}, false
}

// IsBindable implements Collaborators; every shape in this stub is
// bindable.
func (StubCollaborators) IsBindable(shape Shape) bool { return true }
