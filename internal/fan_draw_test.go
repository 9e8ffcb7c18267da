package internal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawFan(t *testing.T) {
	points := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {1, 2}}
	target := Point{3, 1}
	result := Mix(points, target)
	require.NotNil(t, result)

	c := DrawFan(points, target, result, 10)
	assert.Equal(t, 40+drawPadding*2, c.Width())
	assert.Equal(t, 40+drawPadding*2, c.Height())

	// The interior of the chosen triangle is tinted, the far corner of the
	// canvas is background.
	r, g, b, _ := c.Image().At(drawPadding+30, drawPadding+35).RGBA()
	assert.NotZero(t, r+g+b)
	r, g, b, _ = c.Image().At(1, 1).RGBA()
	assert.Zero(t, r+g+b)

	path := filepath.Join(t.TempDir(), "fan.png")
	assert.NoError(t, c.SavePNG(path))
}

func TestDrawFan_Degenerate(t *testing.T) {
	c := DrawFan([]Point{{2, 2}}, Point{5, 5}, nil, 10)
	assert.Equal(t, 30+drawPadding*2, c.Width())

	c = DrawFan([]Point{{0, 0}, {3, 0}}, Point{1, 0}, nil, 10)
	assert.Equal(t, drawPadding*2, c.Height())
}
