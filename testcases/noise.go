package testcases

import (
	"seehuhn.de/go/streamlines"
	"seehuhn.de/go/streamlines/field"
)

var noiseCases = []TestCase{
	{
		Name:    "angle",
		Field:   field.NoiseAngle(field.NewPerlin(1), 300, 200, 2.2, 6),
		Density: field.Radial(300, 200),
		Width:   300,
		Height:  200,
	},
	{
		Name:    "angle_calm",
		Field:   field.NoiseAngle(field.NewPerlin(2), 300, 200, 1.5, 1),
		Density: field.Constant(0.4),
		Width:   300,
		Height:  200,
	},
	{
		Name:         "vector",
		Field:        field.NoiseVector(field.NewPerlin(3), 240, 240, 3),
		Density:      horizontalRamp(240),
		Width:        240,
		Height:       240,
		MinStartDist: 4,
		MaxStartDist: 20,
		EndRatio:     0.5,
	},
}

// horizontalRamp returns a density which grows linearly from 0 at the
// left edge to 1 at x = width.
func horizontalRamp(width float64) streamlines.Density {
	return func(p streamlines.Point) float64 {
		return p.X / width
	}
}
