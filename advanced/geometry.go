package advanced

import "math"

// Below this magnitude, the circumcircle denominator is treated as zero and
// the triangle as collinear.
const DefaultEpsilon = 1e-9

type Circle struct {
	Center        Point
	RadiusSquared float64
	// Set when the three points are collinear within epsilon. A degenerate
	// circle is centered on the origin with infinite radius, so it contains
	// every finite point.
	Degenerate bool
}

// Compute the circumcircle of three points. The points may be given in any
// order.
func Circumcircle(a, b, c Point, epsilon float64) Circle {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < epsilon {
		return Circle{RadiusSquared: math.Inf(1), Degenerate: true}
	}

	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y
	ux := (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d
	uy := (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d

	dx := ux - a.X
	dy := uy - a.Y
	return Circle{
		Center:        Point{ux, uy},
		RadiusSquared: dx*dx + dy*dy,
	}
}

// Strict containment. Points exactly on the circle are not contained.
func (c Circle) Contains(p Point) bool {
	return c.Center.DistanceSquared(p) < c.RadiusSquared
}

func (p Point) DistanceSquared(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Positive when a, b, c wind counterclockwise.
func SignedArea(a, b, c Point) float64 {
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}
