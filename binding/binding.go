// Package binding implements the endpoint resolver of spec.md §4.2: given
// a raw point and optional binding/hover context, produce the point an
// arrow endpoint should actually sit at.
package binding

import (
	"github.com/vuggy17/elbow/geometry"
	"github.com/vuggy17/elbow/sceneio"
)

// ResolveEndpoint implements spec.md §4.2's three-way branch:
//
//  1. dragging with a hovered shape: snap to its outline, and if the shape
//     is rectanguloid, further avoid-corner then snap-to-mid so the point
//     lands in an edge-midpoint corridor rather than on a corner;
//  2. else, a bound arrow: snap to the bound shape's outline;
//  3. else: the raw point, unchanged.
func ResolveEndpoint(
	rawPoint geometry.Point,
	currentBinding *sceneio.Binding,
	hoveredShape *sceneio.Shape,
	isDragging bool,
	collab sceneio.Collaborators,
	scene sceneio.Scene,
) geometry.Point {
	if isDragging && hoveredShape != nil {
		p := collab.SnapToOutline(rawPoint, *hoveredShape)
		if hoveredShape.IsRectanguloid() {
			p = collab.AvoidCorner(p, *hoveredShape)
			p = collab.SnapToMid(p, *hoveredShape)
		}
		return p
	}

	if currentBinding != nil {
		shape, ok := scene.Element(currentBinding.ElementID)
		if ok {
			return collab.SnapToOutline(rawPoint, shape)
		}
		// Missing bound shape: treated as no binding (spec.md §7).
	}

	return rawPoint
}
