package testcases

import (
	"seehuhn.de/go/streamlines/field"
)

var uniformCases = []TestCase{
	{
		Name:         "horizontal",
		Field:        field.Uniform(1, 0),
		Density:      field.Constant(0.5),
		Width:        100,
		Height:       100,
		Seed:         pt(50, 50),
		MinStartDist: 8,
		MaxStartDist: 36,
	},
	{
		Name:    "diagonal",
		Field:   field.Uniform(1, 1),
		Density: field.Constant(0.2),
		Width:   160,
		Height:  120,
		Seed:    pt(80, 60),
	},
	{
		Name:    "gradient_density",
		Field:   field.Uniform(0, 1),
		Density: horizontalRamp(200),
		Width:   200,
		Height:  120,
	},
}
