// Package geometry provides the stateless 2D primitives shared by the
// measurement engine and the quality analyzer. All functions operate on
// pixel-space coordinates and allocate no shared state.
package geometry

import "math"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Angle returns the signed angle of the vector p1->p2 in radians,
// in the range (-pi, pi].
func Angle(p1, p2 Point) float64 {
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
}

// Midpoint returns the arithmetic mean of p1 and p2.
func Midpoint(p1, p2 Point) Point {
	return Point{
		X: (p1.X + p2.X) / 2,
		Y: (p1.Y + p2.Y) / 2,
	}
}

// Centroid returns the arithmetic mean of the given points.
// The centroid of an empty slice is the origin.
func Centroid(points ...Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}

	n := float64(len(points))
	return Point{X: sumX / n, Y: sumY / n}
}

// RotatePoint rotates point around center by angleDegrees counterclockwise.
func RotatePoint(point, center Point, angleDegrees float64) Point {
	rad := angleDegrees * math.Pi / 180

	sin, cos := math.Sincos(rad)
	dx := point.X - center.X
	dy := point.Y - center.Y

	return Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// TriangleArea returns the area of the triangle p1-p2-p3 via the shoelace
// formula. Always non-negative; zero when the points are collinear.
func TriangleArea(p1, p2, p3 Point) float64 {
	return math.Abs(p1.X*(p2.Y-p3.Y)+p2.X*(p3.Y-p1.Y)+p3.X*(p1.Y-p2.Y)) / 2
}

// LineIntersection returns the intersection point of the finite segments
// a1-a2 and b1-b2, or nil when the segments are parallel or the intersection
// falls outside either segment.
func LineIntersection(a1, a2, b1, b2 Point) *Point {
	d1x := a2.X - a1.X
	d1y := a2.Y - a1.Y
	d2x := b2.X - b1.X
	d2y := b2.Y - b1.Y

	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < 1e-10 {
		return nil
	}

	t := ((b1.X-a1.X)*d2y - (b1.Y-a1.Y)*d2x) / denom
	u := ((b1.X-a1.X)*d1y - (b1.Y-a1.Y)*d1x) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return nil
	}

	return &Point{
		X: a1.X + t*d1x,
		Y: a1.Y + t*d1y,
	}
}

// ProjectionOntoSegment projects p onto the segment a-b. The projection
// parameter is clamped to [0,1] so the result always lies on the segment.
func ProjectionOntoSegment(p, a, b Point) Point {
	abx := b.X - a.X
	aby := b.Y - a.Y

	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return a
	}

	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	t = math.Max(0, math.Min(1, t))

	return Point{
		X: a.X + t*abx,
		Y: a.Y + t*aby,
	}
}

// PointToLineDistance returns the distance from p to the segment a-b.
func PointToLineDistance(p, a, b Point) float64 {
	return Distance(p, ProjectionOntoSegment(p, a, b))
}

// AngleBetweenPoints returns the angle at vertex between the rays
// vertex->p1 and vertex->p2, in degrees, in the range [0, 180].
// The cosine is clamped to [-1, 1] before the arccosine so floating-point
// overshoot never produces a domain error.
func AngleBetweenPoints(p1, vertex, p2 Point) float64 {
	v1x := p1.X - vertex.X
	v1y := p1.Y - vertex.Y
	v2x := p2.X - vertex.X
	v2y := p2.Y - vertex.Y

	len1 := math.Sqrt(v1x*v1x + v1y*v1y)
	len2 := math.Sqrt(v2x*v2x + v2y*v2y)
	if len1 == 0 || len2 == 0 {
		return 0
	}

	cos := (v1x*v2x + v1y*v2y) / (len1 * len2)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi
}
