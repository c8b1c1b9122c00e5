package postproc

import (
	"testing"

	"github.com/vuggy17/elbow/geometry"
)

func TestSimplify_MergesCollinearRuns(t *testing.T) {
	points := []geometry.Point{
		{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50},
	}
	got := Simplify(points)
	want := []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}}
	if !equalPoints(got, want) {
		t.Errorf("Simplify() = %v, want %v", got, want)
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	cases := [][]geometry.Point{
		{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}, {X: 100, Y: 100}},
		{{X: 0, Y: 0}, {X: 100, Y: 0}},
		{{X: 0, Y: 0}},
		{},
	}
	for _, points := range cases {
		once := Simplify(points)
		twice := Simplify(once)
		if !equalPoints(once, twice) {
			t.Errorf("Simplify not idempotent: once=%v twice=%v", once, twice)
		}
	}
}

func TestSimplify_ShortInputsUnchanged(t *testing.T) {
	single := []geometry.Point{{X: 1, Y: 2}}
	if got := Simplify(single); !equalPoints(got, single) {
		t.Errorf("Simplify(single) = %v, want %v", got, single)
	}
}

func TestNormalize_OriginAndRoundTrip(t *testing.T) {
	points := []geometry.Point{
		{X: 10, Y: 20}, {X: 60, Y: 20}, {X: 60, Y: -30},
	}
	norm := Normalize(points)

	if norm.Points[0] != (geometry.Point{X: 0, Y: 0}) {
		t.Errorf("Normalize did not zero the first point: got %v", norm.Points[0])
	}
	if norm.X != 10 || norm.Y != 20 {
		t.Errorf("Normalize origin = (%v,%v), want (10,20)", norm.X, norm.Y)
	}
	if norm.Width != 50 || norm.Height != 50 {
		t.Errorf("Normalize extent = (%v,%v), want (50,50)", norm.Width, norm.Height)
	}

	for i, lp := range norm.Points {
		global := geometry.Point{X: lp.X + norm.X, Y: lp.Y + norm.Y}
		if global != points[i] {
			t.Errorf("round-trip mismatch at %d: got %v, want %v", i, global, points[i])
		}
	}
}

func equalPoints(a, b []geometry.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
