package internal

import (
	"math"

	"github.com/fogleman/gg"
)

// Padding around the shape so points on the boundary aren't clipped
const drawPadding = 40

// Render the hull fan of points, the triangle chosen for a blend (if any) and
// the target. Scale is pixels per unit. The caller saves or displays the
// context.
func DrawFan(points []Point, target Point, combination Combination, scale float64) *gg.Context {
	minX, minY := target.X, target.Y
	maxX, maxY := target.X, target.Y
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	hull := Hull(points)
	apex := hull[0]
	for i := 1; i+1 < len(hull); i++ {
		c.MoveTo(apex.X, apex.Y)
		c.LineTo(hull[i].X, hull[i].Y)
		c.LineTo(hull[i+1].X, hull[i+1].Y)
		c.ClosePath()
	}
	c.SetRGBA(0.3, 0.2, 1, 0.5)
	c.FillPreserve()
	c.SetRGB(0, 1, 0)
	c.Stroke()

	if chosen := combination.Points(); len(chosen) > 1 {
		c.MoveTo(chosen[0].X, chosen[0].Y)
		for _, p := range chosen[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(1, 1, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(1, 1, 0)
		c.Stroke()
	}

	radius := 4 / scale
	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, radius)
		c.Fill()
	}
	c.SetRGB(1, 0, 0)
	c.DrawCircle(target.X, target.Y, radius)
	c.Fill()

	return c
}
