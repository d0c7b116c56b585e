package testcases

import (
	"seehuhn.de/go/streamlines/field"
)

var curvedCases = []TestCase{
	{
		Name:    "vortex",
		Field:   field.Vortex(100, 100),
		Density: field.Constant(0.3),
		Width:   200,
		Height:  200,
		Seed:    pt(150, 100),
	},
	{
		Name:    "vortex_offcentre",
		Field:   field.Vortex(40, 150),
		Density: field.Radial(240, 180),
		Width:   240,
		Height:  180,
	},
	{
		Name:             "saddle",
		Field:            field.Saddle(100, 75),
		Density:          field.Constant(0.1),
		Width:            200,
		Height:           150,
		Seed:             pt(100, 20),
		MinPointsPerLine: 3,
	},
}
