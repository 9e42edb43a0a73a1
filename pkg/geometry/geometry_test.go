package geometry

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{
			name:     "horizontal segment",
			p1:       Point{0, 0},
			p2:       Point{3, 0},
			expected: 3,
		},
		{
			name:     "pythagorean triple",
			p1:       Point{0, 0},
			p2:       Point{3, 4},
			expected: 5,
		},
		{
			name:     "negative coordinates",
			p1:       Point{-1, -1},
			p2:       Point{2, 3},
			expected: 5,
		},
		{
			name:     "same point",
			p1:       Point{7.5, -2.25},
			p2:       Point{7.5, -2.25},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Distance(tt.p1, tt.p2)
			if !almostEqual(result, tt.expected) {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.p1, tt.p2, result, tt.expected)
			}
			// Distance must be symmetric.
			if reversed := Distance(tt.p2, tt.p1); !almostEqual(result, reversed) {
				t.Errorf("Distance not symmetric: %v vs %v", result, reversed)
			}
		})
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"east", Point{0, 0}, Point{1, 0}, 0},
		{"north", Point{0, 0}, Point{0, 1}, math.Pi / 2},
		{"west", Point{0, 0}, Point{-1, 0}, math.Pi},
		{"south", Point{0, 0}, Point{0, -1}, -math.Pi / 2},
		{"diagonal", Point{1, 1}, Point{2, 2}, math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Angle(tt.p1, tt.p2)
			if !almostEqual(result, tt.expected) {
				t.Errorf("Angle(%v, %v) = %v, want %v", tt.p1, tt.p2, result, tt.expected)
			}
		})
	}
}

func TestMidpointAndCentroid(t *testing.T) {
	mid := Midpoint(Point{0, 0}, Point{10, 4})
	if !almostEqual(mid.X, 5) || !almostEqual(mid.Y, 2) {
		t.Errorf("Midpoint = %v, want {5 2}", mid)
	}

	c := Centroid(Point{0, 0}, Point{6, 0}, Point{0, 6})
	if !almostEqual(c.X, 2) || !almostEqual(c.Y, 2) {
		t.Errorf("Centroid = %v, want {2 2}", c)
	}

	empty := Centroid()
	if empty.X != 0 || empty.Y != 0 {
		t.Errorf("Centroid of no points = %v, want origin", empty)
	}
}

func TestRotatePoint(t *testing.T) {
	center := Point{100, 100}
	p := Point{160, 100}

	tests := []struct {
		name     string
		degrees  float64
		expected Point
	}{
		{"zero rotation is identity", 0, Point{160, 100}},
		{"quarter turn", 90, Point{100, 160}},
		{"half turn", 180, Point{40, 100}},
		{"full turn is identity", 360, Point{160, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RotatePoint(p, center, tt.degrees)
			if math.Abs(result.X-tt.expected.X) > 1e-9 || math.Abs(result.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("RotatePoint(%v, %v, %v) = %v, want %v", p, center, tt.degrees, result, tt.expected)
			}
		})
	}
}

func TestTriangleArea(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Point
		expected   float64
	}{
		{"right triangle", Point{0, 0}, Point{4, 0}, Point{0, 3}, 6},
		{"collinear points", Point{0, 0}, Point{1, 1}, Point{2, 2}, 0},
		{"winding order does not flip sign", Point{0, 3}, Point{4, 0}, Point{0, 0}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TriangleArea(tt.p1, tt.p2, tt.p3)
			if !almostEqual(result, tt.expected) {
				t.Errorf("TriangleArea = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestLineIntersection(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 Point
		expected       *Point
	}{
		{
			name: "crossing segments",
			a1:   Point{0, 0}, a2: Point{10, 10},
			b1: Point{0, 10}, b2: Point{10, 0},
			expected: &Point{5, 5},
		},
		{
			name: "parallel segments",
			a1:   Point{0, 0}, a2: Point{10, 0},
			b1: Point{0, 1}, b2: Point{10, 1},
			expected: nil,
		},
		{
			name: "lines cross outside the segments",
			a1:   Point{0, 0}, a2: Point{1, 1},
			b1: Point{0, 10}, b2: Point{10, 0},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LineIntersection(tt.a1, tt.a2, tt.b1, tt.b2)
			if tt.expected == nil {
				if result != nil {
					t.Errorf("LineIntersection = %v, want nil", result)
				}
				return
			}
			if result == nil {
				t.Fatalf("LineIntersection = nil, want %v", tt.expected)
			}
			if !almostEqual(result.X, tt.expected.X) || !almostEqual(result.Y, tt.expected.Y) {
				t.Errorf("LineIntersection = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestProjectionOntoSegment(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}

	tests := []struct {
		name     string
		p        Point
		expected Point
	}{
		{"projects onto middle", Point{5, 3}, Point{5, 0}},
		{"clamps before start", Point{-4, 2}, Point{0, 0}},
		{"clamps past end", Point{15, 2}, Point{10, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ProjectionOntoSegment(tt.p, a, b)
			if !almostEqual(result.X, tt.expected.X) || !almostEqual(result.Y, tt.expected.Y) {
				t.Errorf("ProjectionOntoSegment(%v) = %v, want %v", tt.p, result, tt.expected)
			}
		})
	}

	// Degenerate segment collapses to its endpoint.
	result := ProjectionOntoSegment(Point{5, 5}, a, a)
	if result != a {
		t.Errorf("projection onto degenerate segment = %v, want %v", result, a)
	}
}

func TestPointToLineDistance(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}

	if d := PointToLineDistance(Point{5, 4}, a, b); !almostEqual(d, 4) {
		t.Errorf("PointToLineDistance above segment = %v, want 4", d)
	}
	// Beyond the segment end the distance is to the endpoint, not the
	// infinite line.
	if d := PointToLineDistance(Point{13, 4}, a, b); !almostEqual(d, 5) {
		t.Errorf("PointToLineDistance past end = %v, want 5", d)
	}
}

func TestAngleBetweenPoints(t *testing.T) {
	tests := []struct {
		name           string
		p1, vertex, p2 Point
		expected       float64
	}{
		{"right angle", Point{1, 0}, Point{0, 0}, Point{0, 1}, 90},
		{"straight line", Point{-1, 0}, Point{0, 0}, Point{1, 0}, 180},
		{"zero angle", Point{1, 0}, Point{0, 0}, Point{2, 0}, 0},
		{"equilateral corner", Point{1, 0}, Point{0, 0}, Point{0.5, math.Sqrt(3) / 2}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AngleBetweenPoints(tt.p1, tt.vertex, tt.p2)
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("AngleBetweenPoints = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAngleBetweenPointsRange(t *testing.T) {
	// The result must stay within [0, 180] for arbitrary finite inputs,
	// including near-collinear rays where the cosine can overshoot 1.
	points := []Point{
		{1e9, 1e9 + 1}, {-1e9, 1e9}, {0.1, 0.1000000001},
		{3, 7}, {-2, -5}, {1e-9, 1e-9},
	}
	vertex := Point{0, 0}

	for _, p1 := range points {
		for _, p2 := range points {
			got := AngleBetweenPoints(p1, vertex, p2)
			if got < 0 || got > 180 || math.IsNaN(got) {
				t.Errorf("AngleBetweenPoints(%v, %v, %v) = %v, outside [0,180]", p1, vertex, p2, got)
			}
		}
	}
}
