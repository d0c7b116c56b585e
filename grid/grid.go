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

// Package grid implements a sparse spatial hash for proximity queries.
package grid

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Grid buckets points into square cells covering a bounding square of side
// max(width, height). Proximity queries only look at the 3×3 block of cells
// around the query point, so they are exact for any limit up to the cell
// size given to New.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	boxSize float64
	cells   int

	buckets map[uint64][]vec.Vec2
	n       int
}

// New returns an empty grid for the domain [0,width)×[0,height) with cells
// of size at least sep.
func New(width, height, sep float64) *Grid {
	boxSize := max(width, height)
	return &Grid{
		boxSize: boxSize,
		cells:   max(int(math.Floor(boxSize/sep)), 1),
		buckets: make(map[uint64][]vec.Vec2),
	}
}

// cellIndex maps a coordinate to a cell index along one axis.
func (g *Grid) cellIndex(c float64) int {
	return int(math.Floor(float64(g.cells) * c / g.boxSize))
}

// key packs a cell position into a map key.
func key(cx, cy int) uint64 {
	return uint64(uint32(cx))<<32 | uint64(uint32(cy))
}

// Insert adds p to the grid.
func (g *Grid) Insert(p vec.Vec2) {
	k := key(g.cellIndex(p.X), g.cellIndex(p.Y))
	g.buckets[k] = append(g.buckets[k], p)
	g.n++
}

// Len returns the number of points in the grid.
func (g *Grid) Len() int {
	return g.n
}

// HasCloserThan reports whether any point in the 3×3 cell neighbourhood of
// p lies at a distance strictly less than limit.
func (g *Grid) HasCloserThan(p vec.Vec2, limit float64) bool {
	found := false
	g.neighbours(p, func(q vec.Vec2) bool {
		if q.Sub(p).Length() < limit {
			found = true
			return false
		}
		return true
	})
	return found
}

// NearestDistance returns the distance from p to the closest point in the
// 3×3 cell neighbourhood of p, or +Inf if there is none.
func (g *Grid) NearestDistance(p vec.Vec2) float64 {
	best := math.Inf(1)
	g.neighbours(p, func(q vec.Vec2) bool {
		best = min(best, q.Sub(p).Length())
		return true
	})
	return best
}

// neighbours calls yield for every point stored in the 3×3 block of cells
// around p, until yield returns false. Cells outside the bounding square are
// skipped.
func (g *Grid) neighbours(p vec.Vec2, yield func(vec.Vec2) bool) {
	cx := g.cellIndex(p.X)
	cy := g.cellIndex(p.Y)
	for i := cx - 1; i <= cx+1; i++ {
		if i < 0 || i >= g.cells {
			continue
		}
		for j := cy - 1; j <= cy+1; j++ {
			if j < 0 || j >= g.cells {
				continue
			}
			for _, q := range g.buckets[key(i, j)] {
				if !yield(q) {
					return
				}
			}
		}
	}
}
