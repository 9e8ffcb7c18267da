package internal

import (
	"fmt"
	"math"
)

// Weights within this distance outside of [0, 1] still count as inside the
// hull, so that targets sitting exactly on an edge or vertex resolve to a
// combination instead of falling through the cracks of rounding error.
const Tolerance = 1e-9

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// 2D determinant of the matrix with rows p and q. Positive when q is
// counterclockwise from p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Exact comparison. Inputs are assumed exact; tolerance is applied to weights,
// never to coordinates.
func (p Point) Equals(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Turn direction of q relative to p, both taken as vectors from the origin.
func Orientation(p, q Point) float64 {
	return p.Cross(q)
}

// Three way comparison for sorting pivot-relative points counterclockwise
// around the origin. Negative means a sorts first. Points on the same ray are
// ordered by ascending coordinate sum, which decides which collinear points
// survive the fan scan. Along rays steeper than -45° the sum falls outward, so
// there the farther point sorts first.
func CompareCounterclockwise(a, b Point) float64 {
	det := Orientation(b, a)
	if det == 0 {
		return (a.X + a.Y) - (b.X + b.Y)
	}
	return det
}

// True iff a -> b -> c bends clockwise. Collinear triples are not right turns.
func IsRightTurn(a, b, c Point) bool {
	return b.Sub(a).Cross(c.Sub(a)) < 0
}

func (s *FanStack) Push(p FanPoint) {
	*s = append(*s, p)
}

// The two topmost points, second from top first. The stack must hold at least
// two points.
func (s *FanStack) TopPair() (FanPoint, FanPoint) {
	n := len(*s)
	if n < 2 {
		fatalf("fan stack has %d points, need 2", n)
	}
	return (*s)[n-2], (*s)[n-1]
}

// Remove the middle of the top three points for as long as they make a right
// turn. Returns the removed points, deepest last.
func (s *FanStack) Prune() []FanPoint {
	var removed []FanPoint
	for len(*s) >= 3 {
		n := len(*s)
		a, b, c := (*s)[n-3], (*s)[n-2], (*s)[n-1]
		if !IsRightTurn(a.Point, b.Point, c.Point) {
			break
		}
		removed = append(removed, b)
		(*s)[n-2] = c
		*s = (*s)[:n-1]
	}
	return removed
}
