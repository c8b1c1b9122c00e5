// Package fixtures loads the scenario fixtures spec.md §8 describes (S1-S6:
// two free points on one line, offset free points, reverse-facing free
// points, two bound rectangles, overlapping obstacle boxes, a diamond
// endpoint; plus S7, a drag over a not-yet-bound shape) from YAML,
// validating each against a JSON schema before handing back
// the sceneio types the router consumes.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/vuggy17/elbow/geometry"
	"github.com/vuggy17/elbow/sceneio"
)

// Scenario is one fixture: a scene of shapes, the arrow being routed, and
// the drag/next-point state that would be fed to router.Route.
type Scenario struct {
	Name          string          `yaml:"name" json:"name"`
	Description   string          `yaml:"description" json:"description"`
	Shapes        []shapeFixture  `yaml:"shapes" json:"shapes"`
	Arrow         arrowFixture    `yaml:"arrow" json:"arrow"`
	NextPointsRaw []pointFixture  `yaml:"nextPoints" json:"nextPoints"`
	IsDragging    bool            `yaml:"isDragging" json:"isDragging"`
	ExpectPoints  *[]pointFixture `yaml:"expectPoints,omitempty" json:"expectPoints,omitempty"`
}

type shapeFixture struct {
	ID     string  `yaml:"id" json:"id"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Angle  float64 `yaml:"angle" json:"angle"`
	Type   string  `yaml:"type" json:"type"`
}

type bindingFixture struct {
	ElementID string  `yaml:"elementId" json:"elementId"`
	FixedX    float64 `yaml:"fixedX" json:"fixedX"`
	FixedY    float64 `yaml:"fixedY" json:"fixedY"`
}

type arrowFixture struct {
	ID           string          `yaml:"id" json:"id"`
	StartBinding *bindingFixture `yaml:"startBinding,omitempty" json:"startBinding,omitempty"`
	EndBinding   *bindingFixture `yaml:"endBinding,omitempty" json:"endBinding,omitempty"`
}

type pointFixture struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

func (p pointFixture) toPoint() geometry.Point { return geometry.Point{X: p.X, Y: p.Y} }

// Schema is the JSON schema every fixture is validated against before
// decoding. Kept minimal: it enforces shape, not exhaustive value ranges.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "shapes", "arrow", "nextPoints"],
  "properties": {
    "name": {"type": "string"},
    "description": {"type": "string"},
    "shapes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "x", "y", "width", "height"],
        "properties": {
          "id": {"type": "string"},
          "x": {"type": "number"},
          "y": {"type": "number"},
          "width": {"type": "number"},
          "height": {"type": "number"},
          "angle": {"type": "number"},
          "type": {"type": "string"}
        }
      }
    },
    "arrow": {
      "type": "object",
      "required": ["id"],
      "properties": {
        "id": {"type": "string"},
        "startBinding": {"$ref": "#/definitions/binding"},
        "endBinding": {"$ref": "#/definitions/binding"}
      }
    },
    "nextPoints": {
      "type": "array",
      "minItems": 2,
      "items": {"$ref": "#/definitions/point"}
    },
    "isDragging": {"type": "boolean"},
    "expectPoints": {
      "type": "array",
      "items": {"$ref": "#/definitions/point"}
    }
  },
  "definitions": {
    "point": {
      "type": "object",
      "required": ["x", "y"],
      "properties": {"x": {"type": "number"}, "y": {"type": "number"}}
    },
    "binding": {
      "type": "object",
      "required": ["elementId", "fixedX", "fixedY"],
      "properties": {
        "elementId": {"type": "string"},
        "fixedX": {"type": "number"},
        "fixedY": {"type": "number"}
      }
    }
  }
}`

// LoadFile loads and validates a single scenario fixture from a YAML file.
func LoadFile(path string) (Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("fixtures: read %s: %w", path, err)
	}
	return Load(b)
}

// LoadDir loads every *.yaml fixture in dir, sorted by filename, so callers
// (tests, the demo CLI) get a stable, reproducible scenario ordering.
func LoadDir(dir string) ([]Scenario, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("fixtures: glob %s: %w", dir, err)
	}
	sort.Strings(matches)

	scenarios := make([]Scenario, 0, len(matches))
	for _, path := range matches {
		s, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// Load parses and validates a single scenario fixture from YAML bytes.
func Load(yamlBytes []byte) (Scenario, error) {
	var raw any
	if err := yaml.Unmarshal(yamlBytes, &raw); err != nil {
		return Scenario{}, fmt.Errorf("fixtures: parse yaml: %w", err)
	}

	normalized, err := jsonRoundTrip(raw)
	if err != nil {
		return Scenario{}, fmt.Errorf("fixtures: normalize yaml: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(Schema)
	docLoader := gojsonschema.NewGoLoader(normalized)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return Scenario{}, fmt.Errorf("fixtures: validate: %w", err)
	}
	if !result.Valid() {
		msg := ""
		for i, e := range result.Errors() {
			if i > 0 {
				msg += "; "
			}
			msg += e.String()
		}
		return Scenario{}, fmt.Errorf("fixtures: schema violation: %s", msg)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(yamlBytes, &scenario); err != nil {
		return Scenario{}, fmt.Errorf("fixtures: decode yaml: %w", err)
	}
	return scenario, nil
}

// jsonRoundTrip converts a yaml.v3-decoded value (which may contain
// map[string]interface{} with non-string-safe nesting) into the
// map[string]interface{}/[]interface{} shape gojsonschema expects, by
// marshaling through encoding/json's YAML-compatible subset.
func jsonRoundTrip(v any) (any, error) {
	b, err := json.Marshal(convertMaps(v))
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func convertMaps(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = convertMaps(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = convertMaps(val)
		}
		return out
	default:
		return t
	}
}

// Scene builds a sceneio.MapScene from the fixture's shapes. A shape fixture
// whose id is empty gets a fresh one minted; Schema requires the id key, so
// a fixture loaded through Load that omits it is rejected before this point.
func (s Scenario) Scene() sceneio.MapScene {
	scene := make(sceneio.MapScene, len(s.Shapes))
	for _, sf := range s.Shapes {
		id := sf.ID
		if id == "" {
			id = uuid.NewString()
		}
		scene[id] = sceneio.Shape{
			ID:     id,
			X:      sf.X,
			Y:      sf.Y,
			Width:  sf.Width,
			Height: sf.Height,
			Angle:  sf.Angle,
			Type:   sceneio.ShapeType(sf.Type),
		}
	}
	return scene
}

// ArrowEntity builds the sceneio.Arrow the router mutates, minting an id if
// the fixture's arrow id is empty (Schema requires the key itself).
func (s Scenario) ArrowEntity() sceneio.Arrow {
	id := s.Arrow.ID
	if id == "" {
		id = uuid.NewString()
	}
	return sceneio.Arrow{
		ID:           id,
		StartBinding: s.Arrow.StartBinding.toBinding(),
		EndBinding:   s.Arrow.EndBinding.toBinding(),
	}
}

func (b *bindingFixture) toBinding() *sceneio.Binding {
	if b == nil {
		return nil
	}
	return &sceneio.Binding{ElementID: b.ElementID, FixedX: b.FixedX, FixedY: b.FixedY}
}

// NextPoints converts the fixture's raw next-point list to geometry.Points.
func (s Scenario) NextPoints() []geometry.Point {
	out := make([]geometry.Point, len(s.NextPointsRaw))
	for i, p := range s.NextPointsRaw {
		out[i] = p.toPoint()
	}
	return out
}

// Expected returns the fixture's expected output points, if it declares any.
func (s Scenario) Expected() ([]geometry.Point, bool) {
	if s.ExpectPoints == nil {
		return nil, false
	}
	out := make([]geometry.Point, len(*s.ExpectPoints))
	for i, p := range *s.ExpectPoints {
		out[i] = p.toPoint()
	}
	return out, true
}
