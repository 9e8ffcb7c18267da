package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// Smoke test. The internals are already tested.
func TestMix(t *testing.T) {
	SetLogger(zaptest.NewLogger(t))
	defer SetLogger(nil)

	points := []Point{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
	}

	result, err := Mix(points, Point{X: 1, Y: 3})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.InDelta(t, 1, result.Sum(), 1e-9)
	assert.InDelta(t, 1, result.Reconstruct().X, 1e-9)
	assert.InDelta(t, 3, result.Reconstruct().Y, 1e-9)

	result, err = Mix(points, Point{X: 5, Y: 5})
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestMix_InvalidInput(t *testing.T) {
	_, err := Mix(nil, Point{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Mix([]Point{{X: 1, Y: 1}, {X: 1, Y: 1}}, Point{X: 1, Y: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHull(t *testing.T) {
	hull, err := Hull([]Point{{X: 2, Y: 2}, {X: 0, Y: 0}, {X: 4, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 4}})
	require.NoError(t, err)
	// (2, 2) sits on the edge from (4, 0) to (0, 4), so it stays
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 4}}, hull)

	_, err = Hull(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
