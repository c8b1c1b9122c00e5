// Package debugdraw implements the optional visual diagnostics spec.md §9
// asks for: "implement as a compile-time or runtime-toggle callback taking
// (Bounds, color) or (Point) so the router remains a pure function in
// production builds." A nil Hook (the default) costs nothing; a non-nil
// one rasterizes the routing grid, the two dynamic AABBs and the final
// polyline to a PNG via github.com/gogpu/gg.
package debugdraw

import (
	"github.com/gogpu/gg"

	"github.com/vuggy17/elbow/geometry"
)

// Hook receives the pieces of a routing call worth visualizing. All
// coordinates are world-space. A nil Hook disables drawing: router.Route
// checks for nil and skips the call, so production callers leave it unset.
type Hook func(Snapshot)

// Snapshot is everything a single Route call can hand to a Hook: the
// dynamic obstacles, the grid lines they induced, and the final routed
// polyline.
type Snapshot struct {
	Obstacles []geometry.Bounds
	GridX     []float64
	GridY     []float64
	Path      []geometry.Point
}

// Colors used for the rendered layers, exported so callers building a
// custom Hook (e.g. one that writes multiple frames) can match them.
var (
	ColorObstacle = gg.RGBA{R: 0.9, G: 0.3, B: 0.3, A: 0.35}
	ColorGrid     = gg.RGBA{R: 0.6, G: 0.6, B: 0.6, A: 0.5}
	ColorPath     = gg.RGBA{R: 0.1, G: 0.4, B: 0.9, A: 1}
)

// RenderPNG returns a Hook that rasterizes each Snapshot to a PNG at
// path, sized to fit the snapshot's content plus margin. Errors from the
// underlying draw calls are swallowed — this is a debugging aid, not
// part of the routing contract, and must never cause a routing call to
// fail.
func RenderPNG(path string, margin float64) Hook {
	return func(snap Snapshot) {
		bounds := snapshotBounds(snap, margin)
		width := int(bounds.Width())
		height := int(bounds.Height())
		if width <= 0 || height <= 0 {
			return
		}

		dc := gg.NewContext(width, height)

		dc.SetRGBA(1, 1, 1, 1)
		dc.Clear()

		toLocal := func(p geometry.Point) (float64, float64) {
			return p.X - bounds.XMin, p.Y - bounds.YMin
		}

		dc.SetColor(ColorGrid.Color())
		dc.SetLineWidth(1)
		for _, x := range snap.GridX {
			lx, _ := toLocal(geometry.Point{X: x, Y: bounds.YMin})
			dc.MoveTo(lx, 0)
			dc.LineTo(lx, float64(height))
			dc.Stroke()
		}
		for _, y := range snap.GridY {
			_, ly := toLocal(geometry.Point{X: bounds.XMin, Y: y})
			dc.MoveTo(0, ly)
			dc.LineTo(float64(width), ly)
			dc.Stroke()
		}

		dc.SetColor(ColorObstacle.Color())
		for _, ob := range snap.Obstacles {
			x, y := toLocal(geometry.Point{X: ob.XMin, Y: ob.YMin})
			dc.DrawRectangle(x, y, ob.Width(), ob.Height())
			dc.Fill()
		}

		if len(snap.Path) > 0 {
			dc.SetColor(ColorPath.Color())
			dc.SetLineWidth(2)
			x0, y0 := toLocal(snap.Path[0])
			dc.MoveTo(x0, y0)
			for _, p := range snap.Path[1:] {
				x, y := toLocal(p)
				dc.LineTo(x, y)
			}
			dc.Stroke()
		}

		_ = dc.SavePNG(path)
	}
}

func snapshotBounds(snap Snapshot, margin float64) geometry.Bounds {
	pts := append([]geometry.Point{}, snap.Path...)
	for _, ob := range snap.Obstacles {
		pts = append(pts, geometry.Point{X: ob.XMin, Y: ob.YMin}, geometry.Point{X: ob.XMax, Y: ob.YMax})
	}
	for _, x := range snap.GridX {
		pts = append(pts, geometry.Point{X: x, Y: 0})
	}
	for _, y := range snap.GridY {
		pts = append(pts, geometry.Point{X: 0, Y: y})
	}
	if len(pts) == 0 {
		return geometry.Bounds{XMin: 0, YMin: 0, XMax: 1, YMax: 1}
	}
	b := geometry.Bounds{XMin: pts[0].X, YMin: pts[0].Y, XMax: pts[0].X, YMax: pts[0].Y}
	for _, p := range pts[1:] {
		b = geometry.Union(b, geometry.Bounds{XMin: p.X, YMin: p.Y, XMax: p.X, YMax: p.Y})
	}
	return b.ExpandBy(margin)
}
