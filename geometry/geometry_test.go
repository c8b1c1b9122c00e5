package geometry

import "testing"

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{5, 0}, 5},
		{"diagonal", Point{0, 0}, Point{3, 4}, 7},
		{"negative", Point{-2, -2}, Point{2, 2}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ManhattanDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("ManhattanDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestHeadingReverse(t *testing.T) {
	pairs := map[Heading]Heading{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	for h, want := range pairs {
		if got := h.Reverse(); got != want {
			t.Errorf("%v.Reverse() = %v, want %v", h, got, want)
		}
	}
}

func TestHeadingFromVector(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want Heading
	}{
		{"dominant right", Vector{X: 10, Y: 1}, Right},
		{"dominant left", Vector{X: -10, Y: 1}, Left},
		{"dominant down", Vector{X: 1, Y: 10}, Down},
		{"dominant up", Vector{X: 1, Y: -10}, Up},
		{"tie goes horizontal", Vector{X: 5, Y: 5}, Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeadingFromVector(tt.v); got != tt.want {
				t.Errorf("HeadingFromVector(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestBoundsOverlaps(t *testing.T) {
	a := NewBounds(0, 0, 100, 100)
	b := NewBounds(50, 50, 150, 150)
	c := NewBounds(200, 200, 250, 250)

	if !a.Overlaps(b) {
		t.Error("expected a and b to overlap")
	}
	if a.Overlaps(c) {
		t.Error("expected a and c to not overlap")
	}
}

func TestBoundsUnion(t *testing.T) {
	a := NewBounds(0, 0, 50, 50)
	b := NewBounds(200, 200, 250, 250)
	u := Union(a, b)

	want := Bounds{XMin: 0, YMin: 0, XMax: 250, YMax: 250}
	if u != want {
		t.Errorf("Union(a, b) = %v, want %v", u, want)
	}
}

func TestBoundsExpandOutward(t *testing.T) {
	common := NewBounds(0, 0, 300, 300)
	box := NewBounds(0, 0, 100, 100)

	expanded := box.ExpandOutward(common, 40)

	// XMin and YMin coincide with common's, so they push out; XMax/YMax
	// don't coincide with common's far edge, so they stay put.
	want := Bounds{XMin: -40, YMin: -40, XMax: 100, YMax: 100}
	if expanded != want {
		t.Errorf("ExpandOutward = %v, want %v", expanded, want)
	}
}

func TestTriangleContains(t *testing.T) {
	a := Point{X: 0, Y: -10}
	b := Point{X: 10, Y: 0}
	c := Point{X: 0, Y: 0}

	if !TriangleContains(Point{X: 2, Y: -2}, a, b, c) {
		t.Error("expected point inside triangle")
	}
	if TriangleContains(Point{X: -5, Y: -5}, a, b, c) {
		t.Error("expected point outside triangle")
	}
}
