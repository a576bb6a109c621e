package voronoi

import (
	"fmt"
	"math"
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(float64(p.DistanceSquared(q)))
}

// DistanceSquared returns the squared Euclidean distance between p and q.
// It orders points exactly like Distance without float rounding.
func (p Point) DistanceSquared(q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// In reports whether p lies inside [0,size.X) x [0,size.Y).
func (p Point) In(size Point) bool {
	return p.X >= 0 && p.X < size.X && p.Y >= 0 && p.Y < size.Y
}

// Neighbor returns p offset by (dx*step, dy*step).
// The second result is false when the neighbor falls outside size.
func (p Point) Neighbor(dx, dy, step int, size Point) (Point, bool) {
	q := Point{X: p.X + dx*step, Y: p.Y + dy*step}
	if !q.In(size) {
		return Point{}, false
	}
	return q, true
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Directions lists the eight unit offsets around a cell, row by row.
var Directions = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
