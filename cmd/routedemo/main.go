// Command routedemo runs a routing scenario fixture through the router and
// prints the resulting polyline, optionally rendering a debug PNG of the
// grid, obstacles and path.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/vuggy17/elbow/debugdraw"
	"github.com/vuggy17/elbow/fixtures"
	"github.com/vuggy17/elbow/geometry"
	"github.com/vuggy17/elbow/router"
	"github.com/vuggy17/elbow/sceneio"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "routedemo",
		Short: "Run elbow-arrow routing scenarios from YAML fixtures",
	}
	root.AddCommand(newRunCommand())
	root.AddCommand(newListCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var (
		fixtureDir    string
		pngOut        string
		overridesJSON string
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "run <scenario-name>",
		Short: "Route a single scenario fixture and print the resulting points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			scenarios, err := fixtures.LoadDir(fixtureDir)
			if err != nil {
				return fmt.Errorf("routedemo: %w", err)
			}

			var scenario *fixtures.Scenario
			for i := range scenarios {
				if scenarios[i].Name == name {
					scenario = &scenarios[i]
					break
				}
			}
			if scenario == nil {
				return fmt.Errorf("routedemo: no fixture named %q in %s", name, fixtureDir)
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			result := runScenario(cmd.Context(), logger, *scenario, overridesJSON, pngOut)
			for _, p := range result {
				fmt.Printf("(%g, %g)\n", p.X, p.Y)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fixtureDir, "fixtures", "fixtures/testdata", "directory of *.yaml scenario fixtures")
	cmd.Flags().StringVar(&pngOut, "png", "", "write a debug render of the grid/obstacles/path to this PNG path")
	cmd.Flags().StringVar(&overridesJSON, "override", "", "JSON object of nextPoints overrides, e.g. '{\"1.x\":150}' shifts the end point's x")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug-level routing decisions")
	return cmd
}

func newListCommand() *cobra.Command {
	var fixtureDir string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available scenario fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := fixtures.LoadDir(fixtureDir)
			if err != nil {
				return fmt.Errorf("routedemo: %w", err)
			}
			for _, s := range scenarios {
				fmt.Printf("%-40s %s\n", s.Name, s.Description)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fixtureDir, "fixtures", "fixtures/testdata", "directory of *.yaml scenario fixtures")
	return cmd
}

// recordingSink implements router.MutationSink by capturing the last update
// it was handed — routedemo runs one scenario per invocation, so there is
// never more than one mutation to record.
type recordingSink struct {
	points []geometry.Point
}

func (s *recordingSink) ApplyMutation(arrow sceneio.Arrow, update router.Update, informMutation bool) {
	s.points = make([]geometry.Point, len(update.Points))
	for i, p := range update.Points {
		s.points[i] = geometry.Point{X: p.X + update.X, Y: p.Y + update.Y}
	}
}

// runScenario feeds one fixture through router.Route and returns the
// resulting global-space polyline. overridesJSON, when non-empty, is
// applied via gjson path lookups against the raw nextPoints before routing
// — a quick way to nudge a fixture's coordinates from the command line
// without editing the YAML. When pngOut is non-empty, the router's dynamic
// obstacles, grid lines and final polyline are rendered there.
func runScenario(ctx context.Context, logger *slog.Logger, scenario fixtures.Scenario, overridesJSON, pngOut string) []geometry.Point {
	scene := scenario.Scene()
	arrow := scenario.ArrowEntity()
	nextPoints := scenario.NextPoints()
	applyOverrides(logger, ctx, nextPoints, overridesJSON)

	sink := &recordingSink{}
	collab := sceneio.StubCollaborators{}

	var hook debugdraw.Hook
	if pngOut != "" {
		hook = debugdraw.RenderPNG(pngOut, 20)
	}

	router.Route(ctx, logger, arrow, scene, collab, sink, nextPoints, nil, nil, router.Options{
		IsDragging:     scenario.IsDragging,
		InformMutation: true,
		DebugHook:      hook,
	})

	return sink.points
}

// applyOverrides mutates points in place from a flat JSON object like
// {"1.x": 150, "0.y": -10}, indexing into points by the numeric key prefix
// and setting the named coordinate. Unrecognized paths are logged and
// skipped rather than treated as errors, since this is a debugging
// convenience, not a scripting interface.
func applyOverrides(logger *slog.Logger, ctx context.Context, points []geometry.Point, overridesJSON string) {
	if overridesJSON == "" {
		return
	}
	parsed := gjson.Parse(overridesJSON)
	if !parsed.IsObject() {
		logger.WarnContext(ctx, "routedemo: --override is not a JSON object, ignoring")
		return
	}
	parsed.ForEach(func(key, value gjson.Result) bool {
		indexPart, axis, ok := strings.Cut(key.String(), ".")
		idx, err := strconv.Atoi(indexPart)
		if !ok || err != nil {
			logger.WarnContext(ctx, "routedemo: override ignored, unrecognized path", slog.String("path", key.String()))
			return true
		}
		if idx < 0 || idx >= len(points) {
			logger.WarnContext(ctx, "routedemo: override index out of range", slog.String("path", key.String()))
			return true
		}
		switch axis {
		case "x":
			points[idx].X = value.Float()
		case "y":
			points[idx].Y = value.Float()
		default:
			logger.WarnContext(ctx, "routedemo: override ignored, unrecognized axis", slog.String("path", key.String()))
		}
		return true
	})
}
