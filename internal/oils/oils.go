// Package oils reads catalogs of named pure oils and turns blends into
// recipes.
package oils

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/blend"
	"github.com/osuushi/blend/internal/dbg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Oil struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	// Set when the catalog didn't name the oil and a readable name was made up.
	Generated bool `yaml:"-"`
}

type Catalog struct {
	Oils []Oil `yaml:"oils"`
}

// One line of a recipe.
type Ingredient struct {
	Oil    Oil
	Weight float64
}

// Load a catalog. Files ending in .yaml or .yml are YAML, anything else is
// read as text.
func Load(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening oil catalog")
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(file)
	default:
		return ParseText(file)
	}
}

func ParseYAML(r io.Reader) (*Catalog, error) {
	catalog := &Catalog{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(catalog); err != nil {
		if err == io.EOF {
			return catalog, nil
		}
		return nil, errors.Wrap(err, "parsing oil catalog")
	}
	catalog.nameAnonymous()
	return catalog, nil
}

// Newline separated oils in the form "x y [name]". Blank lines and lines
// starting with # are skipped. The name is the rest of the line.
func ParseText(r io.Reader) (*Catalog, error) {
	catalog := &Catalog{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, errors.Errorf("line %d: expected \"x y [name]\", got %q", lineNumber, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid x", lineNumber)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid y", lineNumber)
		}
		catalog.Oils = append(catalog.Oils, Oil{
			Name: strings.Join(fields[2:], " "),
			X:    x,
			Y:    y,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading oil catalog")
	}
	catalog.nameAnonymous()
	return catalog, nil
}

// Parse a point written as "x,y".
func ParsePoint(s string) (blend.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return blend.Point{}, errors.Errorf("expected \"x,y\", got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return blend.Point{}, errors.Wrap(err, "invalid x")
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return blend.Point{}, errors.Wrap(err, "invalid y")
	}
	return blend.Point{X: x, Y: y}, nil
}

func (c *Catalog) nameAnonymous() {
	for i := range c.Oils {
		if c.Oils[i].Name == "" {
			c.Oils[i].Name = dbg.Name(&c.Oils[i])
			c.Oils[i].Generated = true
		}
	}
}

// Coordinates of every oil, in catalog order.
func (c *Catalog) Points() []blend.Point {
	points := make([]blend.Point, len(c.Oils))
	for i, oil := range c.Oils {
		points[i] = blend.Point{X: oil.X, Y: oil.Y}
	}
	return points
}

// Mix the catalog's oils to reach target. A nil recipe means it can't be done.
func (c *Catalog) Mix(target blend.Point) ([]Ingredient, error) {
	combination, err := blend.Mix(c.Points(), target)
	if err != nil {
		return nil, err
	}
	return c.Recipe(combination), nil
}

// Attach oils to a combination computed from Points().
func (c *Catalog) Recipe(combination blend.Combination) []Ingredient {
	if combination == nil {
		return nil
	}
	recipe := make([]Ingredient, len(combination))
	for i, term := range combination {
		recipe[i] = Ingredient{Oil: c.Oils[term.Index], Weight: term.Weight}
	}
	return recipe
}
