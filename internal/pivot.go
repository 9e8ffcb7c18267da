package internal

// The pivot is the point with the smallest X, breaking ties by smallest Y. It
// is always a hull vertex, so it is safe to use as the apex of the fan, and
// every other point lies in the half plane x > 0 (or on the positive Y axis)
// once translated. That keeps the angular sort free of wraparound.
func PopPivot(points []Point) (pivot FanPoint, rest []FanPoint) {
	if len(points) == 0 {
		invalidf("no points to select a pivot from")
	}

	pivotIndex := 0
	for i, p := range points {
		best := points[pivotIndex]
		if p.X < best.X || (p.X == best.X && p.Y < best.Y) {
			pivotIndex = i
		}
	}
	origin := points[pivotIndex]

	rest = make([]FanPoint, 0, len(points)-1)
	for i, p := range points {
		if i == pivotIndex {
			continue
		}
		rest = append(rest, FanPoint{Point: p.Sub(origin), Index: i})
	}
	return FanPoint{Index: pivotIndex}, rest
}

// Check the preconditions of the mixing operation: at least one point, every
// coordinate finite, no duplicates.
func validatePoints(points []Point) {
	if len(points) == 0 {
		invalidf("no oils to mix")
	}
	seen := make(map[Point]int, len(points))
	for i, p := range points {
		if !p.IsFinite() {
			invalidf("point %d has non-finite coordinates %v", i, p)
		}
		if j, ok := seen[p]; ok {
			invalidf("points %d and %d are both %v", j, i, p)
		}
		seen[p] = i
	}
}
