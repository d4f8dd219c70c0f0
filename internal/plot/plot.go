// Package plot renders point sets, their hulls, and benchmark timings to
// images.
package plot

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/hull/internal"
	"github.com/osuushi/hull/internal/dbg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Padding around the drawing, in pixels
const padding = 40

type Options struct {
	// Length of the longer side of the drawing area, in pixels.
	Size int
	// Label each hull vertex with a readable name.
	Labels bool
}

func DefaultOptions() Options {
	return Options{Size: 800}
}

// DrawHull draws the points as dots and the hull as a filled outline.
func DrawHull(points []internal.Point, hull internal.Hull, opts Options) image.Image {
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	minX, minY, maxX, maxY := internal.Bounds(points)
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	extent := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if extent > 0 {
		scale = float64(opts.Size) / extent
	}

	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(padding, padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	if len(hull) > 0 {
		c.MoveTo(hull[0].X, hull[0].Y)
		for _, p := range hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()
	}

	// Dots are drawn in device space so they keep their size at any scale
	c.SetRGB(1, 1, 1)
	for _, p := range points {
		x, y := c.TransformPoint(p.X, p.Y)
		c.Push()
		c.Identity()
		c.DrawCircle(x, y, 2)
		c.Fill()
		c.Pop()
	}

	c.SetRGB(1, 0.4, 0.2)
	for _, p := range hull {
		x, y := c.TransformPoint(p.X, p.Y)
		c.Push()
		c.Identity()
		c.DrawCircle(x, y, 4)
		c.Fill()
		if opts.Labels {
			c.SetFontFace(basicfont.Face7x13)
			c.DrawStringAnchored(dbg.Name(p), x+6, y-6, 0, 0)
		}
		c.Pop()
	}

	return c.Image()
}

func SavePNG(path string, img image.Image) error {
	return errors.Wrapf(gg.SavePNG(path, img), "saving %s", path)
}
