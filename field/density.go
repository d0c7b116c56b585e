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

package field

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/streamlines"
)

// Constant returns a density function with value v everywhere.
func Constant(v float64) streamlines.Density {
	return func(streamlines.Point) float64 { return v }
}

// Radial returns a density which oscillates with the distance from the
// centre of a width×height domain: dense rings alternate with sparse ones.
func Radial(width, height float64) streamlines.Density {
	return func(p streamlines.Point) float64 {
		x := p.X/width - 0.5
		y := p.Y/height - 0.5
		r := math.Hypot(x, y)
		v := 0.5 * (1 - math.Sin(r*2*math.Pi))
		return math.Pow(v, 0.8)
	}
}

// Image returns a density taken from the brightness of img, raised to the
// given power. Bright regions get wide spacing, dark regions narrow spacing.
// The image is converted to grayscale once; points outside the image use
// the nearest edge pixel.
func Image(img image.Image, power float64) streamlines.Density {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return Constant(0)
	}

	lum := make([]float64, w*h)
	for y := range h {
		for x := range w {
			g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			lum[y*w+x] = math.Pow(float64(g.Y)/0xffff, power)
		}
	}

	return func(p streamlines.Point) float64 {
		x := min(max(int(math.Floor(p.X)), 0), w-1)
		y := min(max(int(math.Floor(p.Y)), 0), h-1)
		return lum[y*w+x]
	}
}
