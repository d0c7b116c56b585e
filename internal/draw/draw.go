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

// Package draw renders streamlines and exclusion masks to image files.
package draw

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/streamlines"
)

// Style describes how streamlines are drawn.
type Style struct {
	// LineWidth is the stroke width in pixels.
	LineWidth float64

	// Gray is the stroke colour, from 0 (black) to 1 (white).
	// The background is always white.
	Gray float64
}

// DefaultStyle returns the style used by the command line tool.
func DefaultStyle() Style {
	return Style{LineWidth: 1, Gray: 0}
}

// Polylines converts a set of streamlines into a path with one open
// subpath per streamline. Streamlines with fewer than two points are
// skipped.
func Polylines(lines [][]streamlines.Point) *path.Data {
	p := &path.Data{}
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		p.MoveTo(line[0].Vec2)
		for _, q := range line[1:] {
			p.LineTo(q.Vec2)
		}
	}
	return p
}

// circleK is the control point distance, relative to the radius, of a
// cubic Bézier approximation of a quarter circle.
const circleK = 0.5522847498

// strokeOutline converts a polyline path into closed subpaths covering
// the stroke of the given width. Each segment becomes a quadrilateral and
// each vertex a circle made of four cubic arcs, all with the same
// orientation, so that the union can be filled with the non-zero rule.
func strokeOutline(p *path.Data, width float64) *path.Data {
	out := &path.Data{}
	d := width / 2
	if !(d > 0) {
		return out
	}

	disk := func(c vec.Vec2) {
		k := circleK * d
		out.MoveTo(vec.Vec2{X: c.X, Y: c.Y - d}).
			CubeTo(vec.Vec2{X: c.X - k, Y: c.Y - d}, vec.Vec2{X: c.X - d, Y: c.Y - k}, vec.Vec2{X: c.X - d, Y: c.Y}).
			CubeTo(vec.Vec2{X: c.X - d, Y: c.Y + k}, vec.Vec2{X: c.X - k, Y: c.Y + d}, vec.Vec2{X: c.X, Y: c.Y + d}).
			CubeTo(vec.Vec2{X: c.X + k, Y: c.Y + d}, vec.Vec2{X: c.X + d, Y: c.Y + k}, vec.Vec2{X: c.X + d, Y: c.Y}).
			CubeTo(vec.Vec2{X: c.X + d, Y: c.Y - k}, vec.Vec2{X: c.X + k, Y: c.Y - d}, vec.Vec2{X: c.X, Y: c.Y - d}).
			Close()
	}

	var current vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			coordIdx++
			disk(current)

		case path.CmdLineTo:
			next := p.Coords[coordIdx]
			coordIdx++
			delta := next.Sub(current)
			if l := delta.Length(); l > 0 {
				n := vec.Vec2{X: -delta.Y, Y: delta.X}.Mul(d / l)
				out.MoveTo(current.Add(n)).
					LineTo(next.Add(n)).
					LineTo(next.Sub(n)).
					LineTo(current.Sub(n)).
					Close()
			}
			disk(next)
			current = next

		case path.CmdQuadTo:
			coordIdx += 2
		case path.CmdCubeTo:
			coordIdx += 3
		}
	}
	return out
}
