package internal

import (
	"fmt"
	"strings"
)

func (c Combination) Sum() float64 {
	var sum float64
	for _, term := range c {
		sum += term.Weight
	}
	return sum
}

// The weighted sum of the points. For a result of Mix this is the target,
// within rounding.
func (c Combination) Reconstruct() Point {
	var p Point
	for _, term := range c {
		p = p.Add(term.Point.Scale(term.Weight))
	}
	return p
}

func (c Combination) Points() []Point {
	points := make([]Point, len(c))
	for i, term := range c {
		points[i] = term.Point
	}
	return points
}

func (c Combination) String() string {
	parts := make([]string, len(c))
	for i, term := range c {
		parts[i] = fmt.Sprintf("%.4g×%v", term.Weight, term.Point)
	}
	return strings.Join(parts, " + ")
}
