package internal

type Point struct {
	X float64
	Y float64
}

// A point of the working set after the pivot has been subtracted. Index is the
// position of the original point in the caller's slice. We report results with
// the caller's own values rather than adding the pivot back, since that would
// not round trip exactly in floating point.
type FanPoint struct {
	Point
	Index int
}

// One weighted ingredient of a blend.
type Term struct {
	Weight float64
	Point  Point
	Index  int
}

// A convex combination. Weights are non-negative and sum to one.
type Combination []Term

type FanStack []FanPoint
