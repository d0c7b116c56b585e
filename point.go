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

import "seehuhn.de/go/geom/vec"

// Point is a position or direction in the plane.
//
// Depth is an optional tag which fields can use to mark occlusion
// boundaries. It does not take part in arithmetic or comparisons; the
// results of Add and Mul have zero depth.
type Point struct {
	vec.Vec2
	Depth float64
}

// Pt returns the point (x, y) with zero depth.
func Pt(x, y float64) Point {
	return Point{Vec2: vec.Vec2{X: x, Y: y}}
}

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point {
	return Point{Vec2: p.Vec2.Add(q.Vec2)}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{Vec2: p.Vec2.Mul(s)}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return p.Vec2.Sub(q.Vec2).Length()
}

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Field describes a vector field. It returns the direction of the field at p,
// optionally with a depth value, and false where the field is undefined.
// A Field must be safe to call repeatedly with arbitrary points and must not
// keep state between calls.
type Field func(p Point) (dir Point, ok bool)

// Density controls the local streamline spacing. Values are clamped to
// [0,1]; 0 asks for the minimum separation, 1 for the maximum.
// The same purity rules as for [Field] apply.
type Density func(p Point) float64
