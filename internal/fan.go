package internal

import "sort"

// Facilities for building the convex fan around the pivot. This is a Graham
// scan: pivot-relative points are sorted counterclockwise, then pushed onto a
// stack, discarding any point that would make the boundary turn right. Every
// point is pushed once and popped at most once, so the scan is linear after the
// sort.
//
// Consecutive stack entries form triangles with the pivot (the origin), and
// those triangles cover the hull. Points lying on a hull edge (collinear with
// their neighbors) are kept, since a right turn test is strict.

func SortCounterclockwise(points []FanPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return CompareCounterclockwise(points[i].Point, points[j].Point) < 0
	})
}

// Callback for ScanFan. It receives each adjacent pair at the top of the stack
// before the next point is pushed. Returning true stops the scan.
type FanVisitor func(a, b FanPoint) bool

// Run the scan over points already sorted by SortCounterclockwise. There must
// be at least two. If visit is non-nil it is consulted before each push, and
// the scan stops early when it returns true, leaving the visited pair on top
// of the stack.
func ScanFan(sorted []FanPoint, visit FanVisitor) (stack FanStack, stopped bool) {
	if len(sorted) < 2 {
		fatalf("cannot build a fan from %d points", len(sorted))
	}

	stack = make(FanStack, 0, len(sorted))
	stack.Push(sorted[0])
	stack.Push(sorted[1])

	for _, p := range sorted[2:] {
		if visit != nil {
			a, b := stack.TopPair()
			if visit(a, b) {
				return stack, true
			}
		}

		stack.Push(p)
		for _, removed := range stack.Prune() {
			logPrune(removed, p)
		}
	}
	return stack, false
}

// The fan vertices of points: the pivot followed by the rest of the boundary in
// counterclockwise order, in the caller's coordinates.
func Hull(points []Point) []Point {
	validatePoints(points)
	pivot, rest := PopPivot(points)
	hull := []Point{points[pivot.Index]}
	if len(rest) == 0 {
		return hull
	}

	SortCounterclockwise(rest)
	if len(rest) == 1 {
		return append(hull, points[rest[0].Index])
	}

	stack, _ := ScanFan(rest, nil)
	for _, p := range stack {
		hull = append(hull, points[p.Index])
	}
	return hull
}
