package plot

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/fogleman/gg"
	"github.com/osuushi/hull/internal/bench"
	"golang.org/x/image/font/basicfont"
)

var seriesColors = map[string][3]float64{
	bench.DivideAndConquer.Name: {0, 1, 1},
	bench.Naive.Name:            {1, 0.4, 0.2},
}

// DrawTimings charts mean time against point count, one line per algorithm.
func DrawTimings(report *bench.Report, width, height int) image.Image {
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.Clear()
	c.SetFontFace(basicfont.Face7x13)

	var maxN int
	var maxTime time.Duration
	for _, row := range report.Rows {
		if row.N > maxN {
			maxN = row.N
		}
		if row.Mean > maxTime {
			maxTime = row.Mean
		}
	}
	if maxN == 0 {
		maxN = 1
	}
	maxTime = niceCeil(maxTime)

	left, bottom := float64(padding*2), float64(height-padding)
	right, top := float64(width-padding), float64(padding)
	toX := func(n int) float64 {
		return left + (right-left)*float64(n)/float64(maxN)
	}
	toY := func(d time.Duration) float64 {
		return bottom - (bottom-top)*float64(d)/float64(maxTime)
	}

	// Axes
	c.SetRGB(0.7, 0.7, 0.7)
	c.SetLineWidth(1)
	c.DrawLine(left, bottom, right, bottom)
	c.DrawLine(left, bottom, left, top)
	c.Stroke()
	c.DrawStringAnchored("n", right, bottom+16, 1, 0.5)
	c.DrawStringAnchored(fmt.Sprint(maxN), right, bottom+4, 1, 1)
	c.DrawStringAnchored(maxTime.Round(time.Microsecond).String(), left-4, top, 1, 0.5)

	legendY := top
	for _, name := range []string{bench.DivideAndConquer.Name, bench.Naive.Name} {
		series := report.Series(name)
		if len(series) == 0 {
			continue
		}
		rgb := seriesColors[name]
		c.SetRGB(rgb[0], rgb[1], rgb[2])
		c.SetLineWidth(2)
		for i, row := range series {
			if i == 0 {
				c.MoveTo(toX(row.N), toY(row.Mean))
			} else {
				c.LineTo(toX(row.N), toY(row.Mean))
			}
		}
		c.Stroke()
		for _, row := range series {
			c.DrawCircle(toX(row.N), toY(row.Mean), 3)
			c.Fill()
		}
		c.DrawStringAnchored(name, left+10, legendY, 0, 0.5)
		legendY += 16
	}

	return c.Image()
}

// Round a duration axis maximum up to a readable value.
func niceCeil(d time.Duration) time.Duration {
	if d <= 0 {
		return 1
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(float64(d))))
	for _, step := range []float64{1, 2, 5, 10} {
		if float64(d) <= step*magnitude {
			return time.Duration(step * magnitude)
		}
	}
	return d
}
