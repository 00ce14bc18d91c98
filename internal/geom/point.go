package geom

import "math"

// Point is a position or offset in surface pixels.
type Point struct {
	X, Y float64
}

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Len returns the Euclidean length of p.
func (p Point) Len() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

// Dir returns the unit vector of p's angle. The zero vector yields (1, 0)
// because atan2(0, 0) is 0.
func (p Point) Dir() Point {
	a := math.Atan2(p.Y, p.X)
	return Point{X: math.Cos(a), Y: math.Sin(a)}
}
