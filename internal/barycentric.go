package internal

import "math"

// Express target as a combination of apex (the origin), p1 and p2, all in
// pivot-relative coordinates. The weights are not range checked; use Valid for
// that. Returns nil when the triangle is degenerate and target is off its line.
func Barycentric(apex, p1, p2 FanPoint, target Point) Combination {
	det := p1.Cross(p2.Point)
	if det == 0 {
		return collinearBarycentric(apex, p1, p2, target)
	}

	// Cramer's rule on [p1 | p2] * (c1, c2) = target
	c1 := target.Cross(p2.Point) / det
	c2 := p1.Cross(target) / det
	return Combination{
		{Weight: 1 - c1 - c2, Point: apex.Point, Index: apex.Index},
		{Weight: c1, Point: p1.Point, Index: p1.Index},
		{Weight: c2, Point: p2.Point, Index: p2.Index},
	}
}

// Singular case: apex, p1 and p2 lie on one line. The target is parametrized
// along whichever of p1 and p2 reaches further from the apex. The projection is
// signed, so a target behind the apex gets a negative weight rather than being
// mistaken for one in front of it.
func collinearBarycentric(apex, p1, p2 FanPoint, target Point) Combination {
	longer := p1
	if p2.Dot(p2.Point) > p1.Dot(p1.Point) {
		longer = p2
	}
	lengthSquared := longer.Dot(longer.Point)
	if lengthSquared == 0 {
		return nil
	}

	// Distance from the target to the line through the apex and longer, relative
	// to the length of longer, so the check holds at any coordinate scale
	if math.Abs(longer.Cross(target)) > Tolerance*lengthSquared {
		return nil
	}

	coord := longer.Dot(target) / lengthSquared
	return Combination{
		{Weight: coord, Point: longer.Point, Index: longer.Index},
		{Weight: 1 - coord, Point: apex.Point, Index: apex.Index},
	}
}

// A combination describes containment iff every weight is in [0, 1], give or
// take Tolerance.
func (c Combination) Valid() bool {
	if len(c) == 0 {
		return false
	}
	for _, term := range c {
		if math.IsNaN(term.Weight) || term.Weight < -Tolerance || term.Weight > 1+Tolerance {
			return false
		}
	}
	return true
}
