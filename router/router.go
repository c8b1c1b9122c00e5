// Package router implements route(), the elbow-arrow entry point of
// spec.md §6: it orchestrates binding resolution, dynamic obstacle
// construction, grid building, A* search and post-processing into a
// single mutation applied to the arrow.
package router

import (
	"context"
	"log/slog"

	"github.com/vuggy17/elbow/astar"
	"github.com/vuggy17/elbow/binding"
	"github.com/vuggy17/elbow/debugdraw"
	"github.com/vuggy17/elbow/geometry"
	"github.com/vuggy17/elbow/grid"
	"github.com/vuggy17/elbow/heading"
	"github.com/vuggy17/elbow/obstacle"
	"github.com/vuggy17/elbow/postproc"
	"github.com/vuggy17/elbow/sceneio"
)

// Update is the mutation applied to the arrow entity, matching spec.md
// §6's `{points, x, y, width, height, angle}` shape.
type Update struct {
	Points       []geometry.Point
	X, Y         float64
	Width        float64
	Height       float64
	Angle        float64
	Roundness    *string
	StartBinding *sceneio.Binding
	EndBinding   *sceneio.Binding
}

// MutationSink applies a routed Update to arrow. informMutation mirrors
// spec.md §6's flag for whether the sink should emit a change event.
type MutationSink interface {
	ApplyMutation(arrow sceneio.Arrow, update Update, informMutation bool)
}

// OtherUpdates carries binding changes to merge into the emitted update,
// per spec.md §6.
type OtherUpdates struct {
	StartBinding *sceneio.Binding
	EndBinding   *sceneio.Binding
}

// Options mirrors spec.md §6's `options` parameter.
type Options struct {
	ChangedElements map[string]sceneio.Shape
	IsDragging      bool
	DisableBinding  bool
	InformMutation  bool

	// DebugHook, if set, receives a debugdraw.Snapshot of the dynamic
	// obstacles, grid lines and final polyline computed for this call, once
	// a route is found. Nil by default, so production callers pay nothing.
	DebugHook debugdraw.Hook
}

var obstacleConfig = obstacle.DefaultConfig()

// Route implements spec.md §6's route(arrow, scene, nextPoints, offset,
// otherUpdates, options) entry point. Only nextPoints[0] and
// nextPoints[len-1] are consulted; offset, if non-nil, is added to both
// before routing. On success it calls sink.ApplyMutation exactly once; on
// failure (spec.md §7's "no route") it logs a warning and returns without
// mutating anything.
func Route(
	ctx context.Context,
	logger *slog.Logger,
	arrow sceneio.Arrow,
	scene sceneio.Scene,
	collab sceneio.Collaborators,
	sink MutationSink,
	nextPoints []geometry.Point,
	offset *geometry.Vector,
	otherUpdates *OtherUpdates,
	opts Options,
) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(nextPoints) == 0 {
		return
	}

	rawStart := toGlobal(nextPoints[0], offset)
	rawEnd := toGlobal(nextPoints[len(nextPoints)-1], offset)

	var sceneView sceneio.Scene = scene
	if opts.ChangedElements != nil {
		sceneView = sceneio.Overlay{Base: scene, Changed: opts.ChangedElements}
	}

	startShape, startHovered := resolveShape(sceneView, collab, rawStart, arrow.StartBinding, opts)
	endShape, endHovered := resolveShape(sceneView, collab, rawEnd, arrow.EndBinding, opts)

	if startShape != nil && endShape != nil && startShape.ID == endShape.ID {
		logger.DebugContext(ctx, "elbow: self-loop, both endpoints bind the same shape", slog.String("shape", startShape.ID))
		path := routeSelfLoop(*startShape)
		emit(ctx, logger, sink, arrow, path, otherUpdates, opts.InformMutation)
		return
	}

	startPoint := binding.ResolveEndpoint(rawStart, arrow.StartBinding, startHoveredIfDragging(startHovered, opts), opts.IsDragging, collab, sceneView)
	endPoint := binding.ResolveEndpoint(rawEnd, arrow.EndBinding, startHoveredIfDragging(endHovered, opts), opts.IsDragging, collab, sceneView)

	startAABBRaw, startHeading := endpointGeometry(startShape, startPoint, endPoint)
	endAABBRaw, endHeading := endpointGeometry(endShape, endPoint, startPoint)

	startAABB, endAABB := obstacle.Dynamic(startAABBRaw, endAABBRaw, 4*obstacleConfig.FixedBindingDistance, 4*obstacleConfig.FixedBindingDistance)

	startDongle := dongle(startPoint, startHeading, startAABB)
	endDongle := dongle(endPoint, endHeading, endAABB)

	obstacles := []geometry.Bounds{startAABB, endAABB}
	if endAABB.ContainsStrict(startDongle) && startAABB.ContainsStrict(endDongle) {
		logger.DebugContext(ctx, "elbow: obstacle list emptied, dongles cross")
		obstacles = nil
	}

	common := geometry.Union(startAABB, endAABB)
	g := grid.CalculateGrid(obstacles, startDongle, startHeading, endDongle, endHeading, common)

	startNode, ok := g.NodeAt(startDongle)
	if !ok {
		logger.WarnContext(ctx, "Elbow arrow cannot find a route", slog.String("reason", "start dongle missing from grid"))
		return
	}
	endNode, ok := g.NodeAt(endDongle)
	if !ok {
		logger.WarnContext(ctx, "Elbow arrow cannot find a route", slog.String("reason", "end dongle missing from grid"))
		return
	}

	// Start banning requires a persisted binding; end banning bans whatever
	// shape is currently hovered, bound or not, so a path can't cut through
	// a shape the end is being dragged over but hasn't bound to yet.
	if startShape != nil && arrow.StartBinding != nil {
		g.CloseInside(startShape.Bounds(), startNode)
	}
	if endShape != nil {
		g.CloseInside(endShape.Bounds(), endNode)
	}

	nodes, found := astar.FindPath(g, startNode, endNode, startHeading, endHeading, obstacles)
	if !found {
		logger.WarnContext(ctx, "Elbow arrow cannot find a route")
		return
	}

	points := make([]geometry.Point, 0, len(nodes)+2)
	if startDongle != startPoint {
		points = append(points, startPoint)
	}
	for _, n := range nodes {
		points = append(points, n.Pos)
	}
	if endDongle != endPoint {
		points = append(points, endPoint)
	}

	simplified := postproc.Simplify(points)
	logger.DebugContext(ctx, "elbow: routed", slog.Int("points", len(simplified)))

	if opts.DebugHook != nil {
		opts.DebugHook(debugdraw.Snapshot{
			Obstacles: []geometry.Bounds{startAABB, endAABB},
			GridX:     g.XCoords(),
			GridY:     g.YCoords(),
			Path:      simplified,
		})
	}

	emit(ctx, logger, sink, arrow, simplified, otherUpdates, opts.InformMutation)
}

// routeSelfLoop produces the degenerate two-point path spec.md §7 assigns
// identical start/end endpoints, adapted from the teacher's
// HandleSelfLoops: a small loop clear of the shape rather than a
// zero-length arrow.
func routeSelfLoop(shape sceneio.Shape) []geometry.Point {
	loopSize := geometry.Min(shape.Width, shape.Height) / 3
	if loopSize < 8 {
		loopSize = 8
	}
	start := geometry.Point{X: shape.X + shape.Width, Y: shape.Y + shape.Height/2}
	return []geometry.Point{
		start,
		{X: start.X + loopSize, Y: start.Y - loopSize},
		{X: start.X + loopSize, Y: start.Y + loopSize},
		start,
	}
}

func emit(ctx context.Context, logger *slog.Logger, sink MutationSink, arrow sceneio.Arrow, path []geometry.Point, otherUpdates *OtherUpdates, informMutation bool) {
	if len(path) == 0 {
		return
	}
	norm := postproc.Normalize(path)
	update := Update{
		Points:    norm.Points,
		X:         norm.X,
		Y:         norm.Y,
		Width:     norm.Width,
		Height:    norm.Height,
		Angle:     0,
		Roundness: nil,
	}
	if otherUpdates != nil {
		update.StartBinding = otherUpdates.StartBinding
		update.EndBinding = otherUpdates.EndBinding
	}
	sink.ApplyMutation(arrow, update, informMutation)
}

func toGlobal(p geometry.Point, offset *geometry.Vector) geometry.Point {
	if offset == nil {
		return p
	}
	return p.Add(*offset)
}

// resolveShape looks up the shape a raw endpoint should consider: the
// hovered shape while dragging, else the bound shape (a binding to a
// missing/deleted shape is treated as no binding, spec.md §7).
func resolveShape(scene sceneio.Scene, collab sceneio.Collaborators, raw geometry.Point, b *sceneio.Binding, opts Options) (*sceneio.Shape, *sceneio.Shape) {
	var hovered *sceneio.Shape
	if opts.IsDragging && !opts.DisableBinding {
		if s, ok := collab.HoveredShapeAt(raw, scene, false); ok && collab.IsBindable(s) {
			hovered = &s
		}
	}
	if hovered != nil {
		return hovered, hovered
	}
	if b != nil {
		if s, ok := scene.Element(b.ElementID); ok {
			return &s, hovered
		}
	}
	return nil, hovered
}

func startHoveredIfDragging(hovered *sceneio.Shape, opts Options) *sceneio.Shape {
	if !opts.IsDragging {
		return nil
	}
	return hovered
}

// endpointGeometry computes the raw obstacle AABB and outward heading for
// one endpoint, given the (possibly nil) shape it resolved to and the
// opposite endpoint's point (used to classify a free point's heading).
func endpointGeometry(shape *sceneio.Shape, point, otherPoint geometry.Point) (geometry.Bounds, geometry.Heading) {
	if shape == nil {
		return geometry.FromPoint(point, obstacleConfig.FreePointSize), geometry.HeadingFromVector(otherPoint.Sub(point))
	}
	aabb := shape.Bounds()
	h := heading.ForPoint(*shape, aabb, point)
	return obstacle.RawAABB(shape, h, point, obstacleConfig), h
}

// dongle projects p onto aabb's edge in direction h, per spec.md's
// GLOSSARY: the actual A* source/target used so the path enters or exits
// the obstacle orthogonally.
func dongle(p geometry.Point, h geometry.Heading, aabb geometry.Bounds) geometry.Point {
	switch h {
	case geometry.Up:
		return geometry.Point{X: p.X, Y: aabb.YMin}
	case geometry.Down:
		return geometry.Point{X: p.X, Y: aabb.YMax}
	case geometry.Left:
		return geometry.Point{X: aabb.XMin, Y: p.Y}
	case geometry.Right:
		return geometry.Point{X: aabb.XMax, Y: p.Y}
	default:
		return p
	}
}
