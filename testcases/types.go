// seehuhn.de/go/streamlines - evenly-spaced streamlines for 2D vector fields
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases contains a catalogue of named streamline scenarios.
// The scenarios are used by the tests and can be rendered with the
// streamlines command.
package testcases

import (
	"seehuhn.de/go/streamlines"
)

// TestCase defines a single streamline scenario.
type TestCase struct {
	Name    string              // lowercase a-z and _ only
	Width   int                 // domain width in pixels
	Height  int                 // domain height in pixels
	Field   streamlines.Field   // the vector field
	Density streamlines.Density // nil for constant zero density
	Seed    *streamlines.Point  // first seed, or nil for a random one

	// Spacing overrides. Zero values keep the defaults.
	MinStartDist, MaxStartDist float64
	EndRatio                   float64
	MinPointsPerLine           int
}

// Config returns a generator configuration for the test case.
// The configuration uses a deterministic random source with the given seed.
func (tc TestCase) Config(seed uint64) streamlines.Config {
	cfg := streamlines.DefaultConfig()
	cfg.Field = tc.Field
	cfg.Density = tc.Density
	cfg.Width = tc.Width
	cfg.Height = tc.Height
	cfg.Seed = tc.Seed
	cfg.Rand = streamlines.NewSource(seed)
	if tc.MinStartDist != 0 {
		cfg.MinStartDist = tc.MinStartDist
	}
	if tc.MaxStartDist != 0 {
		cfg.MaxStartDist = tc.MaxStartDist
	}
	if tc.EndRatio != 0 {
		cfg.EndRatio = tc.EndRatio
	}
	if tc.MinPointsPerLine != 0 {
		cfg.MinPointsPerLine = tc.MinPointsPerLine
	}
	return cfg
}

// pt is a helper to create a seed point from x, y coordinates.
func pt(x, y float64) *streamlines.Point {
	p := streamlines.Pt(x, y)
	return &p
}
