package geometry

// Bounds is an axis-aligned bounding box, always normalized so that
// XMin <= XMax and YMin <= YMax.
type Bounds struct {
	XMin, YMin, XMax, YMax float64
}

// NewBounds normalizes the four corners into a valid Bounds.
func NewBounds(xMin, yMin, xMax, yMax float64) Bounds {
	if xMin > xMax {
		xMin, xMax = xMax, xMin
	}
	if yMin > yMax {
		yMin, yMax = yMax, yMin
	}
	return Bounds{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
}

// FromPoint returns a zero-area box, or a size×size square centered on p
// when size > 0 — used for free-point endpoints that have no shape.
func FromPoint(p Point, size float64) Bounds {
	half := size / 2
	return Bounds{XMin: p.X - half, YMin: p.Y - half, XMax: p.X + half, YMax: p.Y + half}
}

// Width returns XMax-XMin.
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax-YMin.
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Center returns the box's geometric center.
func (b Bounds) Center() Point {
	return Point{X: (b.XMin + b.XMax) / 2, Y: (b.YMin + b.YMax) / 2}
}

// Contains reports whether p lies within b, inclusive of the boundary.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// ContainsStrict reports whether p lies strictly inside b, excluding the
// boundary. The obstacle test in the router (spec.md §4.5 step 2) uses
// this rather than Contains so that paths may hug an obstacle's edge
// without being rejected for merely touching it.
func (b Bounds) ContainsStrict(p Point) bool {
	return p.X > b.XMin && p.X < b.XMax && p.Y > b.YMin && p.Y < b.YMax
}

// ContainsCorner reports whether any corner of other lies strictly inside
// b — the "overlap" test the dynamic AABB generator uses (spec.md §4.3,
// "any corner of one inside the other"). Strict containment means two
// boxes that merely share a boundary (as the two halves of a corridor
// split do) are not reported as overlapping.
func (b Bounds) ContainsCorner(other Bounds) bool {
	corners := [4]Point{
		{X: other.XMin, Y: other.YMin},
		{X: other.XMax, Y: other.YMin},
		{X: other.XMin, Y: other.YMax},
		{X: other.XMax, Y: other.YMax},
	}
	for _, c := range corners {
		if b.ContainsStrict(c) {
			return true
		}
	}
	return false
}

// Overlaps reports whether a and b share any interior area, either by
// corner containment or by classic interval overlap on both axes.
func (b Bounds) Overlaps(other Bounds) bool {
	if b.ContainsCorner(other) || other.ContainsCorner(b) {
		return true
	}
	return b.XMin < other.XMax && b.XMax > other.XMin &&
		b.YMin < other.YMax && b.YMax > other.YMin
}

// Union returns the smallest Bounds enclosing both a and b — the "common
// AABB" of spec.md's GLOSSARY.
func Union(boxes ...Bounds) Bounds {
	if len(boxes) == 0 {
		return Bounds{}
	}
	u := boxes[0]
	for _, b := range boxes[1:] {
		u.XMin = Min(u.XMin, b.XMin)
		u.YMin = Min(u.YMin, b.YMin)
		u.XMax = Max(u.XMax, b.XMax)
		u.YMax = Max(u.YMax, b.YMax)
	}
	return u
}

// ExpandOutward pushes each side of b outward by amount, but only on sides
// that coincide with common's matching side — used when two dynamic AABBs
// overlap and need routing slack without encroaching on each other
// (spec.md §4.3, "expanded by 40 only on sides that coincide with c").
func (b Bounds) ExpandOutward(common Bounds, amount float64) Bounds {
	out := b
	if b.XMin == common.XMin {
		out.XMin -= amount
	}
	if b.XMax == common.XMax {
		out.XMax += amount
	}
	if b.YMin == common.YMin {
		out.YMin -= amount
	}
	if b.YMax == common.YMax {
		out.YMax += amount
	}
	return out
}

// ExpandBy grows every side of b by amount in every direction.
func (b Bounds) ExpandBy(amount float64) Bounds {
	return Bounds{XMin: b.XMin - amount, YMin: b.YMin - amount, XMax: b.XMax + amount, YMax: b.YMax + amount}
}

// Corners returns the four corners of b in a fixed order: TL, TR, BR, BL.
func (b Bounds) Corners() [4]Point {
	return [4]Point{
		{X: b.XMin, Y: b.YMin},
		{X: b.XMax, Y: b.YMin},
		{X: b.XMax, Y: b.YMax},
		{X: b.XMin, Y: b.YMax},
	}
}
