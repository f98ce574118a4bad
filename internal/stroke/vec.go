package stroke

import "github.com/chewxy/math32"

func (s Sample) point() Point { return Point{s.X, s.Y} }

func add(a, b Point) Point         { return Point{a.X + b.X, a.Y + b.Y} }
func sub(a, b Point) Point         { return Point{a.X - b.X, a.Y - b.Y} }
func mul(a Point, k float32) Point { return Point{a.X * k, a.Y * k} }
func dot(a, b Point) float32       { return a.X*b.X + a.Y*b.Y }

// perp rotates a quarter turn, mapping a segment direction onto its
// left-hand offset direction in screen coordinates.
func perp(a Point) Point { return Point{a.Y, -a.X} }

func dist(a, b Point) float32 { return math32.Hypot(b.X-a.X, b.Y-a.Y) }

func norm(a Point) Point {
	l := math32.Hypot(a.X, a.Y)
	if l == 0 {
		return Point{}
	}
	return Point{a.X / l, a.Y / l}
}

func lerp(a, b Point, t float32) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// rotate turns p around c by angle radians.
func rotate(p, c Point, angle float32) Point {
	sin, cos := math32.Sin(angle), math32.Cos(angle)
	dx, dy := p.X-c.X, p.Y-c.Y
	return Point{c.X + dx*cos - dy*sin, c.Y + dx*sin + dy*cos}
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
