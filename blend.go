// Convex blends of points in the plane.
//
// Given a set of pure ingredients, each a point in some two dimensional
// property space, and a desired blend, this package decides whether the blend
// is reachable (it lies inside the convex hull of the ingredients) and if so,
// gives a recipe: non-negative weights on at most three ingredients that sum
// to one and reproduce the blend.
package blend

import (
	"github.com/osuushi/blend/internal"
	"go.uber.org/zap"
)

type Point = internal.Point
type Term = internal.Term
type Combination = internal.Combination

// Returned, wrapped, for an empty point set, duplicate points, or coordinates
// that are NaN or infinite.
var ErrInvalidInput = internal.ErrInvalidInput

// Express target as a convex combination of points.
//
// A nil result with a nil error means the target is outside the hull. That is
// an ordinary outcome, not a failure. Otherwise every term has a weight in
// (0, 1], terms point at the caller's own values (Term.Index is their position
// in points), and the weights sum to one.
func Mix(points []Point, target Point) (result Combination, err error) {
	defer func() {
		recoveredErr := internal.HandleMixPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Mix(points, target), nil
}

// The vertices of the fan Mix searches: the pivot (lowest X, then lowest Y)
// followed by the rest of the convex boundary, counterclockwise. Points lying
// on a boundary edge are included.
func Hull(points []Point) (result []Point, err error) {
	defer func() {
		recoveredErr := internal.HandleMixPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Hull(points), nil
}

// Send the solver's debug events to l. Pass nil to silence them again.
func SetLogger(l *zap.Logger) {
	internal.SetLogger(l)
}
