package svgplot

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/homology2/complex"
)

// Point is a 2D coordinate in the original point-cloud space.
type Point struct {
	X, Y float64
}

const margin = 24

// RenderSkeleton draws points and every 1-simplex of c whose logical
// index is strictly below threshold, scaled to fit a width x height
// canvas. Edges whose logical index appears in highlight are drawn in
// red; every other edge is drawn in gray.
func RenderSkeleton(w io.Writer, points []Point, c *complex.Filtered, threshold uint64, highlight map[uint64]bool, width, height int) {
	minX, minY, maxX, maxY := bounds(points)

	scaleX := func(x float64) int {
		return scale(x, minX, maxX, margin, width-margin)
	}
	scaleY := func(y float64) int {
		return scale(y, minY, maxY, margin, height-margin)
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	for idx := c.Start(); idx < threshold && idx < c.End(); idx++ {
		s, ok := c.Get(idx)
		if !ok || s.Dimension() != 1 {
			continue
		}

		v := s.Vertices()
		a, b := points[v[0]], points[v[1]]

		style := "stroke:gray;stroke-width:1"
		if highlight[idx] {
			style = "stroke:red;stroke-width:2"
		}
		canvas.Line(scaleX(a.X), scaleY(a.Y), scaleX(b.X), scaleY(b.Y), style)
	}

	for _, p := range points {
		canvas.Circle(scaleX(p.X), scaleY(p.Y), 3, "fill:black")
	}
}

func bounds(points []Point) (minX, minY, maxX, maxY float64) {
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	return minX, minY, maxX, maxY
}

// scale linearly maps v from [lo, hi] into [outLo, outHi], collapsing to
// the canvas midpoint when the input range is degenerate.
func scale(v, lo, hi float64, outLo, outHi int) int {
	if hi == lo {
		return (outLo + outHi) / 2
	}

	frac := (v - lo) / (hi - lo)

	return outLo + int(frac*float64(outHi-outLo))
}
