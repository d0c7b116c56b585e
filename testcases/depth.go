package testcases

import (
	"math"

	"seehuhn.de/go/streamlines"
	"seehuhn.de/go/streamlines/field"
)

var depthCases = []TestCase{
	{
		// Two overlapping layers: the depth jumps along the vertical
		// centre line, so streamlines stop there.
		Name: "step",
		Field: field.WithDepth(field.Uniform(1, 0.2), func(p streamlines.Point) float64 {
			if p.X < 100 {
				return 0
			}
			return 50
		}),
		Density: field.Constant(0.3),
		Width:   200,
		Height:  120,
		Seed:    pt(50, 60),
	},
	{
		Name: "slope",
		Field: field.WithDepth(field.Vortex(80, 80), func(p streamlines.Point) float64 {
			return math.Hypot(p.X-80, p.Y-80) * 0.1
		}),
		Density: field.Constant(0.5),
		Width:   160,
		Height:  160,
	},
}
