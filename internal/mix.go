package internal

import "go.uber.org/zap"

var debugLog = zap.NewNop()

// Route debug output from the solver to l. A nil logger silences it.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	debugLog = l
}

func logPrune(removed, pushed FanPoint) {
	debugLog.Debug("pruned non-convex fan vertex",
		zap.Int("removed", removed.Index),
		zap.Int("pushed", pushed.Index),
	)
}

// Find a convex combination of at most three points which equals target. The
// triangle used is the first one in counterclockwise order around the pivot
// which contains the target, not necessarily the smallest. Returns nil if the
// target is outside the hull.
func Mix(points []Point, target Point) Combination {
	validatePoints(points)
	if !target.IsFinite() {
		invalidf("target has non-finite coordinates %v", target)
	}

	for i, p := range points {
		if p.Equals(target) {
			debugLog.Debug("target is an input point", zap.Int("index", i))
			return Combination{{Weight: 1, Point: p, Index: i}}
		}
	}

	apex, rest := PopPivot(points)
	pivot := points[apex.Index]
	relativeTarget := target.Sub(pivot)
	debugLog.Debug("selected pivot",
		zap.Int("index", apex.Index),
		zap.Stringer("pivot", pivot),
		zap.Int("candidates", len(rest)),
	)

	var combination Combination
	switch len(rest) {
	case 0:
		// A lone point, and the target isn't it
		return nil
	case 1:
		combination = Barycentric(apex, rest[0], rest[0], relativeTarget)
	default:
		SortCounterclockwise(rest)
		stack, found := ScanFan(rest, func(a, b FanPoint) bool {
			combination = Barycentric(apex, a, b, relativeTarget)
			debugLog.Debug("testing fan triangle",
				zap.Int("a", a.Index),
				zap.Int("b", b.Index),
				zap.Bool("contains", combination.Valid()),
			)
			return combination.Valid()
		})
		if !found {
			a, b := stack.TopPair()
			combination = Barycentric(apex, a, b, relativeTarget)
		}
	}

	if !combination.Valid() {
		debugLog.Debug("target is outside the hull", zap.Stringer("target", target))
		return nil
	}
	return combination.resolve(points)
}

// Snap weights that are within tolerance of the unit interval onto it, drop
// zero weights, and swap in the caller's points.
func (c Combination) resolve(points []Point) Combination {
	result := make(Combination, 0, len(c))
	for _, term := range c {
		weight := term.Weight
		if weight < 0 {
			weight = 0
		} else if weight > 1 {
			weight = 1
		}
		if weight == 0 {
			continue
		}
		result = append(result, Term{Weight: weight, Point: points[term.Index], Index: term.Index})
	}
	return result
}
