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

package streamlines

import (
	"errors"
	"fmt"
	"math"
	"time"

	"seehuhn.de/go/streamlines/mask"
)

// Config holds the parameters of a streamline generator.
// Start from [DefaultConfig] and set at least Field, Width and Height.
type Config struct {
	// Field is the vector field. Required.
	Field Field

	// Density controls the local spacing. Nil means density 0 everywhere,
	// i.e. MinStartDist throughout the domain.
	Density Density

	// Width and Height give the domain [0,Width)×[0,Height) in pixels.
	Width, Height int

	// Seed, if non-nil, is the start of the first streamline.
	// Otherwise a uniformly random point is used.
	Seed *Point

	// Rand is used for the random first seed and for reseeding once all
	// streamlines have been exhausted. Nil means a randomly seeded source.
	Rand Source

	// MinStartDist and MaxStartDist give the separation for new streamlines
	// at density 0 and density 1. Both must be in [2, 254].
	MinStartDist, MaxStartDist float64

	// EndRatio scales the separation at which a growing streamline stops,
	// relative to the start separation. Must be in [0.1, 1).
	EndRatio float64

	// MinPointsPerLine is the minimal number of points for a streamline to
	// be kept. Streamlines with a single point are never kept.
	MinPointsPerLine int

	// StepLength is the integration step size in pixels.
	StepLength float64

	// StepsPerIteration and MaxTimePerIteration bound the work done in one
	// burst, before a cancellation check and a yield.
	StepsPerIteration   int
	MaxTimePerIteration time.Duration

	// OnStreamlineAdded, if set, is called once for every streamline which
	// is kept. The slice must not be modified.
	OnStreamlineAdded func(points []Point)

	// OnMaskUpdate, if set, is called after every streamline has reserved
	// its space in the start and stop masks. The masks must not be modified.
	OnMaskUpdate func(start, stop *mask.Mask)
}

// DefaultConfig returns a configuration with the default spacing and
// scheduling parameters. Field, Width and Height still need to be set.
func DefaultConfig() Config {
	return Config{
		MinStartDist:        defaultMinStartDist,
		MaxStartDist:        defaultMaxStartDist,
		EndRatio:            defaultEndRatio,
		MinPointsPerLine:    defaultMinPointsPerLine,
		StepLength:          defaultStepLength,
		StepsPerIteration:   defaultStepsPerIteration,
		MaxTimePerIteration: defaultMaxTimePerIteration,
	}
}

// Default values for the generator parameters.
const (
	defaultMinStartDist        = 8
	defaultMaxStartDist        = 36
	defaultEndRatio            = 0.4
	defaultMinPointsPerLine    = 5
	defaultStepLength          = 2
	defaultStepsPerIteration   = 8
	defaultMaxTimePerIteration = 500 * time.Millisecond
)

// Limits for the separation distances. Distances are stored per pixel, and
// 255 is reserved to mark blocked pixels.
const (
	minSeparation = 2
	maxSeparation = 254
)

// ErrInvalidConfig is wrapped by all errors returned from [Config.Validate].
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks that all parameters are in range.
func (c *Config) Validate() error {
	if c.Field == nil {
		return invalid("Field must be set")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return invalid("Width and Height must be positive, got %dx%d", c.Width, c.Height)
	}
	if !(c.MinStartDist >= minSeparation && c.MinStartDist <= maxSeparation) {
		return invalid("2 <= MinStartDist <= 254 expected, got %g", c.MinStartDist)
	}
	if !(c.MaxStartDist >= minSeparation && c.MaxStartDist <= maxSeparation) {
		return invalid("2 <= MaxStartDist <= 254 expected, got %g", c.MaxStartDist)
	}
	if !(c.EndRatio >= 0.1 && c.EndRatio < 1) {
		return invalid("0.1 <= EndRatio < 1 expected, got %g", c.EndRatio)
	}
	if c.MinPointsPerLine < 0 {
		return invalid("MinPointsPerLine must be non-negative, got %d", c.MinPointsPerLine)
	}
	if !(c.StepLength > 0) || math.IsInf(c.StepLength, 1) {
		return invalid("StepLength must be positive and finite, got %g", c.StepLength)
	}
	if c.StepsPerIteration <= 0 {
		return invalid("StepsPerIteration must be positive, got %d", c.StepsPerIteration)
	}
	if c.MaxTimePerIteration <= 0 {
		return invalid("MaxTimePerIteration must be positive, got %s", c.MaxTimePerIteration)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// startDist returns the separation required for new streamlines at p.
func (c *Config) startDist(p Point) float64 {
	return c.MinStartDist + c.density(p)*(c.MaxStartDist-c.MinStartDist)
}

// density evaluates the density function at p, clamped to [0,1].
func (c *Config) density(p Point) float64 {
	if c.Density == nil {
		return 0
	}
	d := c.Density(p)
	if !(d > 0) {
		return 0
	}
	return min(d, 1)
}
