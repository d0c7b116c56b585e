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

// Package field provides vector fields and density functions for use with
// the streamlines package.
//
// All fields in this package return unit vectors, or report the field as
// undefined where no direction exists.
package field

import (
	"math"

	"seehuhn.de/go/streamlines"
)

// Uniform returns a field which points in direction (dx, dy) everywhere.
func Uniform(dx, dy float64) streamlines.Field {
	l := math.Hypot(dx, dy)
	return func(streamlines.Point) (streamlines.Point, bool) {
		if l == 0 {
			return streamlines.Point{}, false
		}
		return streamlines.Pt(dx/l, dy/l), true
	}
}

// Vortex returns a field circling counter-clockwise around (cx, cy).
// The field is undefined at the centre.
func Vortex(cx, cy float64) streamlines.Field {
	return func(p streamlines.Point) (streamlines.Point, bool) {
		return unit(-(p.Y - cy), p.X-cx)
	}
}

// Saddle returns a field with a saddle point at (cx, cy), with streamlines
// approaching along the y axis and leaving along the x axis.
func Saddle(cx, cy float64) streamlines.Field {
	return func(p streamlines.Point) (streamlines.Point, bool) {
		return unit(p.X-cx, -(p.Y - cy))
	}
}

// NoiseAngle returns a field whose direction angle is taken from Perlin
// noise. Coordinates are first normalized to the domain, then multiplied
// by scale/2. The noise value is turned into an angle by multiplying with
// turns·2π.
func NoiseAngle(n *Perlin, width, height, scale, turns float64) streamlines.Field {
	return func(p streamlines.Point) (streamlines.Point, bool) {
		x := p.X / width * scale / 2
		y := p.Y / height * scale / 2
		angle := turns * 2 * math.Pi * n.Unit(x, y, 0)
		return streamlines.Pt(math.Cos(angle), math.Sin(angle)), true
	}
}

// NoiseVector returns a field whose components are taken from two slices of
// Perlin noise.
func NoiseVector(n *Perlin, width, height, scale float64) streamlines.Field {
	return func(p streamlines.Point) (streamlines.Point, bool) {
		x := p.X / width * scale / 2
		y := p.Y / height * scale / 2
		return unit(1-2*n.Unit(x, y, 0), 1-2*n.Unit(x, y, 0.5))
	}
}

// WithDepth decorates f with a depth value. Streamlines stop at points where
// the depth jumps.
func WithDepth(f streamlines.Field, depth func(p streamlines.Point) float64) streamlines.Field {
	return func(p streamlines.Point) (streamlines.Point, bool) {
		dir, ok := f(p)
		if !ok {
			return dir, false
		}
		dir.Depth = depth(p)
		return dir, true
	}
}

func unit(x, y float64) (streamlines.Point, bool) {
	l := math.Hypot(x, y)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return streamlines.Point{}, false
	}
	return streamlines.Pt(x/l, y/l), true
}
