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

// Package mask implements the exclusion raster used during streamline
// placement.
//
// A Mask stores one byte per pixel. Values 0–254 encode the separation
// distance required at that pixel, interpolated between the mask's minimum
// and maximum distance. The value 255 marks a blocked pixel. Pixels are only
// ever changed from free to blocked, never back.
package mask

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Blocked is the cell value for pixels where nothing new may be placed.
const Blocked = 255

// maxLevel is the largest quantized separation value.
const maxLevel = 254

// Mask is an exclusion raster over the domain [0,width)×[0,height).
//
// A Mask is not safe for concurrent use.
type Mask struct {
	width, height int

	minDist   float64
	distRange float64 // maxDist - minDist

	data []byte // row-major, one byte per pixel
}

// New allocates a mask and samples density once at every integer pixel
// position. Density values are clamped to [0,1] before quantization.
func New(width, height int, density func(p vec.Vec2) float64, minDist, maxDist float64) *Mask {
	m := &Mask{
		width:     width,
		height:    height,
		minDist:   minDist,
		distRange: maxDist - minDist,
		data:      make([]byte, width*height),
	}
	for y := range height {
		row := m.data[y*width : (y+1)*width]
		for x := range row {
			d := 0.0
			if density != nil {
				d = density(vec.Vec2{X: float64(x), Y: float64(y)})
			}
			row[x] = quantize(d)
		}
	}
	return m
}

// quantize maps a density sample to a separation level in [0,254].
// NaN is treated as zero.
func quantize(d float64) byte {
	if !(d > 0) {
		return 0
	}
	if d > 1 {
		d = 1
	}
	return byte(math.Round(d * maxLevel))
}

// Width returns the width of the mask in pixels.
func (m *Mask) Width() int {
	return m.width
}

// Height returns the height of the mask in pixels.
func (m *Mask) Height() int {
	return m.height
}

// IsUsable reports whether (x, y) lies inside the mask and the pixel
// containing it is not blocked.
func (m *Mask) IsUsable(x, y float64) bool {
	// The negated comparisons also reject NaN.
	if !(x >= 0 && x < float64(m.width) && y >= 0 && y < float64(m.height)) {
		return false
	}
	ix := int(y)*m.width + int(x)
	return m.data[ix] != Blocked
}

// Required returns the separation distance stored for pixel (x, y).
// The second return value is false if the pixel is blocked or outside the
// mask.
func (m *Mask) Required(x, y int) (float64, bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0, false
	}
	v := m.data[y*m.width+x]
	if v == Blocked {
		return 0, false
	}
	return m.limit(v), true
}

// limit converts a stored level to a distance.
func (m *Mask) limit(v byte) float64 {
	return m.minDist + float64(v)/maxLevel*m.distRange
}

// StampCircle blocks pixels around center. The radius is rounded to an
// integer and the circle is traced with the midpoint algorithm, filling
// horizontal spans. A pixel on a span is only blocked if its distance to
// center does not exceed the separation distance stored for the pixel
// itself, so the blocked region shrinks where the density asks for tight
// spacing.
func (m *Mask) StampCircle(center vec.Vec2, radius float64) {
	cx := int(math.Floor(center.X))
	cy := int(math.Floor(center.Y))
	r := int(math.Round(radius))

	x := r - 1
	y := 0
	dx := 1
	dy := 1
	err := dx - 2*r

	for x >= y {
		m.span(cx-x, cx+x, cy+y, cx, cy)
		m.span(cx-x, cx+x, cy-y, cx, cy)
		m.span(cx-y, cx+y, cy+x, cx, cy)
		m.span(cx-y, cx+y, cy-x, cx, cy)
		if err <= 0 {
			y++
			err += dy
			dy += 2
		}
		if err > 0 {
			x--
			dx += 2
			err += dx - 2*r
		}
	}
}

// span processes the pixels x1..x2 (inclusive) on row y.
func (m *Mask) span(x1, x2, y, cx, cy int) {
	if y < 0 || y >= m.height {
		return
	}
	x1 = max(x1, 0)
	x2 = min(x2, m.width-1)
	row := m.data[y*m.width : (y+1)*m.width]
	ddy := float64(y - cy)
	for x := x1; x <= x2; x++ {
		v := row[x]
		if v == Blocked {
			continue
		}
		ddx := float64(x - cx)
		if m.limit(v) < math.Sqrt(ddx*ddx+ddy*ddy) {
			continue
		}
		row[x] = Blocked
	}
}

// FreeCells returns the coordinates of all pixels which are not blocked,
// in row-major order.
func (m *Mask) FreeCells() []image.Point {
	var res []image.Point
	for i, v := range m.data {
		if v != Blocked {
			res = append(res, image.Point{X: i % m.width, Y: i / m.width})
		}
	}
	return res
}

// FreeCount returns the number of pixels which are not blocked.
func (m *Mask) FreeCount() int {
	n := 0
	for _, v := range m.data {
		if v != Blocked {
			n++
		}
	}
	return n
}

// Pix returns the underlying raster in row-major order.
// The slice aliases the mask and must not be modified.
func (m *Mask) Pix() []byte {
	return m.data
}

// Image returns a copy of the raster as a grayscale image.
// Blocked pixels are white, free pixels show their separation level.
func (m *Mask) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.width, m.height))
	for y := range m.height {
		copy(img.Pix[y*img.Stride:], m.data[y*m.width:(y+1)*m.width])
	}
	return img
}
