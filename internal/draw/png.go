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

package draw

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/streamlines"
	"seehuhn.de/go/streamlines/mask"
)

// Image rasterizes the streamlines onto a new grayscale image with white
// background. One pixel of the image covers one unit of the domain; the
// image size is rounded up to whole pixels.
func Image(domain rect.Rect, lines [][]streamlines.Point, style Style) *image.Gray {
	width, height := pixelSize(domain)
	img := image.NewGray(image.Rect(0, 0, width, height))
	stddraw.Draw(img, img.Bounds(), image.White, image.Point{}, stddraw.Src)
	if width <= 0 || height <= 0 {
		return img
	}

	outline := strokeOutline(Polylines(lines), style.LineWidth)
	if len(outline.Cmds) == 0 {
		return img
	}

	r := vector.NewRasterizer(width, height)
	fillPath(r, outline, vec.Vec2{X: domain.LLx, Y: domain.LLy})

	g := uint8(math.Round(min(max(style.Gray, 0), 1) * 255))
	src := image.NewUniform(color.Gray{Y: g})
	r.Draw(img, img.Bounds(), src, image.Point{})
	return img
}

// PNG writes the streamlines as a PNG image.
func PNG(w io.Writer, domain rect.Rect, lines [][]streamlines.Point, style Style) error {
	return png.Encode(w, Image(domain, lines, style))
}

// pixelSize returns the number of whole pixels needed to cover the domain.
func pixelSize(domain rect.Rect) (width, height int) {
	width = int(math.Ceil(domain.URx - domain.LLx))
	height = int(math.Ceil(domain.URy - domain.LLy))
	return max(width, 0), max(height, 0)
}

// MaskPNG writes an exclusion mask as a grayscale PNG image.
// Blocked pixels are white, free pixels show their quantized density.
func MaskPNG(w io.Writer, m *mask.Mask) error {
	return png.Encode(w, m.Image())
}

// fillPath feeds a path into the rasterizer. The point origin is mapped
// to the top-left corner of the raster.
func fillPath(r *vector.Rasterizer, p *path.Data, origin vec.Vec2) {
	pt := func(i int) (float32, float32) {
		q := p.Coords[i].Sub(origin)
		return float32(q.X), float32(q.Y)
	}
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(pt(coordIdx))
			coordIdx++
		case path.CmdLineTo:
			r.LineTo(pt(coordIdx))
			coordIdx++
		case path.CmdQuadTo:
			bx, by := pt(coordIdx)
			cx, cy := pt(coordIdx + 1)
			r.QuadTo(bx, by, cx, cy)
			coordIdx += 2
		case path.CmdCubeTo:
			bx, by := pt(coordIdx)
			cx, cy := pt(coordIdx + 1)
			dx, dy := pt(coordIdx + 2)
			r.CubeTo(bx, by, cx, cy, dx, dy)
			coordIdx += 3
		case path.CmdClose:
			r.ClosePath()
		}
	}
}
