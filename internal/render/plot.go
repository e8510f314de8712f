package render

import (
	"math"

	"github.com/InfoInnovator/fourier-transform-visualization/internal/signal"
)

// LinePlot renders a sample series as a braille polyline, width x height
// characters. The y range autoscales to the series with a little
// headroom; a flat series sits on the vertical center. A dotted zero
// axis is drawn when zero falls inside the scaled range.
func LinePlot(series []signal.Sample, width, height int) string {
	c := newCanvas(width, height)
	if len(series) == 0 {
		return c.String()
	}

	lo, hi := yRange(series)
	dotW := c.dotWidth()
	dotH := c.dotHeight()

	// y → dot row, top row is hi
	toRow := func(y float64) int {
		frac := (hi - y) / (hi - lo)
		row := int(math.Round(frac * float64(dotH-1)))
		if row < 0 {
			row = 0
		}
		if row >= dotH {
			row = dotH - 1
		}
		return row
	}

	if lo <= 0 && hi >= 0 {
		axis := toRow(0)
		for x := 0; x < dotW; x += 4 {
			c.set(x, axis)
		}
	}

	finite := func(y float64) bool {
		return !math.IsNaN(y) && !math.IsInf(y, 0)
	}

	if len(series) == 1 {
		if finite(series[0].Y) {
			c.set(0, toRow(series[0].Y))
		}
		return c.String()
	}

	// Non-finite points are hidden; the line breaks around them.
	den := len(series) - 1
	prevX := -1
	prevY := 0
	for i, s := range series {
		if !finite(s.Y) {
			prevX = -1
			continue
		}
		x := i * (dotW - 1) / den
		y := toRow(s.Y)
		if prevX >= 0 {
			c.line(prevX, prevY, x, y)
		} else {
			c.set(x, y)
		}
		prevX, prevY = x, y
	}
	return c.String()
}

// yRange picks the plot bounds: the series extent padded by 5%, widened
// symmetrically when the series is flat so the line has somewhere to sit.
func yRange(series []signal.Sample) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, s := range series {
		if math.IsNaN(s.Y) || math.IsInf(s.Y, 0) {
			continue
		}
		if s.Y < lo {
			lo = s.Y
		}
		if s.Y > hi {
			hi = s.Y
		}
	}
	if lo > hi {
		// nothing finite to plot
		return -1, 1
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}
