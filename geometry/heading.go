package geometry

// Heading is one of the four cardinal directions an arrow endpoint can
// face. Represented as a small discriminant rather than a raw vector so
// equality and switch dispatch stay exact instead of comparing floats.
type Heading int

const (
	Up Heading = iota
	Right
	Down
	Left
)

// String implements fmt.Stringer.
func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return h
	}
}

// ToVector returns the unit vector for h.
func (h Heading) ToVector() Vector {
	switch h {
	case Up:
		return Vector{X: 0, Y: -1}
	case Right:
		return Vector{X: 1, Y: 0}
	case Down:
		return Vector{X: 0, Y: 1}
	case Left:
		return Vector{X: -1, Y: 0}
	default:
		return Vector{}
	}
}

// IsHorizontal reports whether h runs along the x axis.
func (h Heading) IsHorizontal() bool {
	return h == Left || h == Right
}

// HeadingFromVector classifies v into its dominant-axis heading: the axis
// with the larger magnitude wins, horizontal ties go to the vector's sign.
func HeadingFromVector(v Vector) Heading {
	if Abs(v.X) >= Abs(v.Y) {
		if v.X >= 0 {
			return Right
		}
		return Left
	}
	if v.Y >= 0 {
		return Down
	}
	return Up
}

// HeadingBetween classifies the axis-aligned step from a to b into the
// heading it moves along. Used by the router and post-processor, which
// only ever deal in axis-aligned segments, so exactly one of the two
// coordinates differs.
func HeadingBetween(a, b Point) Heading {
	if b.X > a.X {
		return Right
	}
	if b.X < a.X {
		return Left
	}
	if b.Y > a.Y {
		return Down
	}
	return Up
}

// HeadingFromAngle maps an edge-angle in degrees (as produced by
// AngleDegrees) to a heading using the diamond classifier's bucketing:
// [315,360)∪[0,45) = Up, [45,135) = Right, [135,225) = Down, else Left.
func HeadingFromAngle(deg float64) Heading {
	switch {
	case deg >= 315 || deg < 45:
		return Up
	case deg < 135:
		return Right
	case deg < 225:
		return Down
	default:
		return Left
	}
}
