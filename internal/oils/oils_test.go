package oils

import (
	"strings"
	"testing"

	"github.com/osuushi/blend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	catalog, err := Load("testdata/essentials.yaml")
	require.NoError(t, err)
	require.Len(t, catalog.Oils, 4)
	assert.Equal(t, Oil{Name: "Heavy crude", X: 4, Y: 4}, catalog.Oils[2])
	assert.Equal(t, []blend.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, catalog.Points())
}

func TestLoad_Text(t *testing.T) {
	catalog, err := Load("testdata/essentials.txt")
	require.NoError(t, err)
	require.Len(t, catalog.Oils, 4)
	assert.Equal(t, "Paraffinic base", catalog.Oils[0].Name)
	assert.False(t, catalog.Oils[0].Generated)
	assert.NotEmpty(t, catalog.Oils[2].Name)
	assert.True(t, catalog.Oils[2].Generated)
	assert.Equal(t, 4.0, catalog.Oils[2].Y)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestParseYAML_Errors(t *testing.T) {
	_, err := ParseYAML(strings.NewReader("oils:\n  - name: a\n    z: 3\n"))
	assert.Error(t, err, "unknown fields are rejected")

	catalog, err := ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, catalog.Oils)
}

func TestParseText_Errors(t *testing.T) {
	cases := map[string]string{
		"single field": "1\n",
		"bad x":        "a 1\n",
		"bad y":        "1 b name\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("1.5, -2")
	require.NoError(t, err)
	assert.Equal(t, blend.Point{X: 1.5, Y: -2}, p)

	for _, bad := range []string{"1", "1,2,3", "x,1", "1,y"} {
		_, err := ParsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestCatalogMix(t *testing.T) {
	catalog, err := Load("testdata/essentials.yaml")
	require.NoError(t, err)

	recipe, err := catalog.Mix(blend.Point{X: 1, Y: 3})
	require.NoError(t, err)
	require.Len(t, recipe, 3)
	names := make([]string, len(recipe))
	var total float64
	for i, ingredient := range recipe {
		names[i] = ingredient.Oil.Name
		total += ingredient.Weight
	}
	assert.Equal(t, []string{"Paraffinic base", "Heavy crude", "Light crude"}, names)
	assert.InDelta(t, 0.25, recipe[0].Weight, 1e-9)
	assert.InDelta(t, 0.25, recipe[1].Weight, 1e-9)
	assert.InDelta(t, 0.5, recipe[2].Weight, 1e-9)
	assert.InDelta(t, 1, total, 1e-9)

	recipe, err = catalog.Mix(blend.Point{X: 9, Y: 9})
	require.NoError(t, err)
	assert.Nil(t, recipe)

	_, err = (&Catalog{}).Mix(blend.Point{})
	assert.ErrorIs(t, err, blend.ErrInvalidInput)
}
