package binding

import (
	"testing"

	"github.com/vuggy17/elbow/geometry"
	"github.com/vuggy17/elbow/sceneio"
)

func TestResolveEndpoint_FreePoint(t *testing.T) {
	raw := geometry.Point{X: 10, Y: 10}
	got := ResolveEndpoint(raw, nil, nil, false, sceneio.StubCollaborators{}, sceneio.MapScene{})
	if got != raw {
		t.Errorf("ResolveEndpoint(free point) = %v, want %v", got, raw)
	}
}

func TestResolveEndpoint_Bound(t *testing.T) {
	shape := sceneio.Shape{ID: "s1", X: 0, Y: 0, Width: 100, Height: 100}
	scene := sceneio.MapScene{"s1": shape}
	b := &sceneio.Binding{ElementID: "s1", FixedX: 1, FixedY: 0.5}

	// A raw point outside the shape should snap onto its outline.
	raw := geometry.Point{X: 150, Y: 50}
	got := ResolveEndpoint(raw, b, nil, false, sceneio.StubCollaborators{}, scene)

	want := geometry.Point{X: 100, Y: 50}
	if got != want {
		t.Errorf("ResolveEndpoint(bound) = %v, want %v", got, want)
	}
}

func TestResolveEndpoint_MissingBoundShape(t *testing.T) {
	b := &sceneio.Binding{ElementID: "does-not-exist"}
	raw := geometry.Point{X: 5, Y: 5}

	got := ResolveEndpoint(raw, b, nil, false, sceneio.StubCollaborators{}, sceneio.MapScene{})
	if got != raw {
		t.Errorf("ResolveEndpoint(missing shape) = %v, want raw point %v unchanged", got, raw)
	}
}

func TestResolveEndpoint_DraggingRectanguloid(t *testing.T) {
	shape := sceneio.Shape{ID: "s1", X: 0, Y: 0, Width: 100, Height: 100}
	scene := sceneio.MapScene{"s1": shape}

	raw := geometry.Point{X: 100, Y: 3} // near the top-right corner
	got := ResolveEndpoint(raw, nil, &shape, true, sceneio.StubCollaborators{}, scene)

	// After outline snap + avoid-corner + snap-to-mid, the point should end
	// up on an edge, not at the top-right corner (100,0).
	b := shape.Bounds()
	onVerticalEdge := got.X == b.XMin || got.X == b.XMax
	onHorizontalEdge := got.Y == b.YMin || got.Y == b.YMax
	if !onVerticalEdge && !onHorizontalEdge {
		t.Errorf("expected dragging snap to land on an edge, got %v", got)
	}
}
