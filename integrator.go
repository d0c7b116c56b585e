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
	"math"
	"slices"

	"seehuhn.de/go/streamlines/grid"
	"seehuhn.de/go/streamlines/mask"
)

// integratorState is the growth phase of a single streamline.
type integratorState int

const (
	growForward integratorState = iota
	growBackward
	integratorDone
)

// Parameters of the step validation.
const (
	// selfDistanceFactor times the step length is the closest a streamline
	// may come to its own points.
	selfDistanceFactor = 0.9

	// depthJumpFactor and depthJumpMin define a depth discontinuity: the
	// depth change of a new step must exceed both depthJumpFactor times
	// the previous change and depthJumpMin.
	depthJumpFactor = 3
	depthJumpMin    = 1
)

// integrator grows one streamline from a seed point, first forward along
// the field and then backward. Once done, it reserves space around the
// streamline in both masks and can propose seeds for neighbouring
// streamlines.
type integrator struct {
	cfg         *Config
	start, stop *mask.Mask

	seed  Point
	cur   Point
	state integratorState

	fwd []Point // seed first, then forward points in order
	bwd []Point // backward points, closest to the seed first
	own *grid.Grid

	points      []Point // full streamline, valid once done
	lastChecked int     // index of the last point scanned for seeds
}

func newIntegrator(seed Point, start, stop *mask.Mask, cfg *Config) *integrator {
	it := &integrator{
		cfg:         cfg,
		start:       start,
		stop:        stop,
		lastChecked: -1,
	}
	seed.Depth = 0
	if dir, ok := it.readField(seed); ok {
		seed.Depth = dir.Depth
	}
	it.seed = seed
	it.cur = seed
	it.fwd = []Point{seed}

	it.own = grid.New(float64(cfg.Width), float64(cfg.Height), cfg.StepLength*selfDistanceFactor)
	it.own.Insert(seed.Vec2)
	return it
}

// step advances the integrator by one point or one phase change and
// reports whether the streamline is complete.
func (it *integrator) step() bool {
	switch it.state {
	case growForward:
		if p, ok := it.nextPoint(true); ok {
			it.fwd = append(it.fwd, p)
			it.own.Insert(p.Vec2)
			it.cur = p
		} else {
			it.cur = it.seed
			it.state = growBackward
		}
	case growBackward:
		if p, ok := it.nextPoint(false); ok {
			it.bwd = append(it.bwd, p)
			it.own.Insert(p.Vec2)
			it.cur = p
		} else {
			it.finish()
		}
	}
	return it.state == integratorDone
}

// finish assembles the streamline and stamps it into both masks.
func (it *integrator) finish() {
	pts := make([]Point, 0, len(it.bwd)+len(it.fwd))
	for _, p := range slices.Backward(it.bwd) {
		pts = append(pts, p)
	}
	pts = append(pts, it.fwd...)
	it.points = pts
	it.fwd, it.bwd, it.own = nil, nil, nil

	for _, p := range pts {
		d := it.cfg.startDist(p)
		it.start.StampCircle(p.Vec2, d-1)
		it.stop.StampCircle(p.Vec2, d*it.cfg.EndRatio)
	}
	it.state = integratorDone
}

// len returns the number of points grown so far.
func (it *integrator) len() int {
	return len(it.bwd) + len(it.fwd)
}

// at returns the i-th point of the streamline grown so far, counting from
// the backward end.
func (it *integrator) at(i int) Point {
	nb := len(it.bwd)
	if i < nb {
		return it.bwd[nb-1-i]
	}
	return it.fwd[i-nb]
}

// nextPoint computes and validates the next point in the given direction,
// starting from the current point.
func (it *integrator) nextPoint(forward bool) (Point, bool) {
	d, ok := it.rk4(it.cur)
	if !ok {
		return Point{}, false
	}
	if !forward {
		d = d.Mul(-1)
	}
	p := it.cur.Add(d)

	// too close to another streamline
	if !it.stop.IsUsable(p.X, p.Y) {
		return Point{}, false
	}
	// curls back onto itself
	if it.own.HasCloserThan(p.Vec2, it.cfg.StepLength*selfDistanceFactor) {
		return Point{}, false
	}

	if dir, ok := it.readField(p); ok {
		p.Depth = dir.Depth
	}
	if n := it.len(); n >= 2 {
		var last, prev Point
		if forward {
			last, prev = it.at(n-1), it.at(n-2)
		} else {
			last, prev = it.at(0), it.at(1)
		}
		prevDelta := math.Abs(last.Depth - prev.Depth)
		newDelta := math.Abs(p.Depth - last.Depth)
		if newDelta > depthJumpFactor*prevDelta && newDelta > depthJumpMin {
			return Point{}, false
		}
	}

	return p, true
}

// readField samples the field at p. It reports false where the field is
// undefined, not finite or zero. The returned direction is the field
// vector divided by its squared length; the depth is passed through.
func (it *integrator) readField(p Point) (Point, bool) {
	dir, ok := it.cfg.Field(p)
	if !ok {
		return Point{}, false
	}
	if !isFinite(dir.X) || !isFinite(dir.Y) {
		return Point{}, false
	}
	l := dir.X*dir.X + dir.Y*dir.Y
	if l == 0 {
		return Point{}, false
	}
	res := dir.Mul(1 / l)
	res.Depth = dir.Depth
	return res, true
}

// rk4 returns the displacement of one fourth-order Runge-Kutta step of the
// configured length, starting at p.
func (it *integrator) rk4(p Point) (Point, bool) {
	h := it.cfg.StepLength
	k1, ok := it.readField(p)
	if !ok {
		return Point{}, false
	}
	k2, ok := it.readField(p.Add(k1.Mul(h / 2)))
	if !ok {
		return Point{}, false
	}
	k3, ok := it.readField(p.Add(k2.Mul(h / 2)))
	if !ok {
		return Point{}, false
	}
	k4, ok := it.readField(p.Add(k3.Mul(h)))
	if !ok {
		return Point{}, false
	}
	d := k1.Mul(h / 6).
		Add(k2.Mul(h / 3)).
		Add(k3.Mul(h / 3)).
		Add(k4.Mul(h / 6))
	return d, true
}

// nextSeedCandidate scans the finished streamline for a point at the
// start separation, orthogonal to the field, which is still free in the
// start mask. The scan resumes where the previous call stopped. When the
// left-hand side of a point is usable, the same point is scanned again on
// the next call so that its right-hand side gets a chance once the first
// seed has been used.
func (it *integrator) nextSeedCandidate() (Point, bool) {
	for it.lastChecked < len(it.points)-1 {
		it.lastChecked++

		p := it.points[it.lastChecked]
		dir, ok := it.readField(p)
		if !ok {
			continue
		}
		dist := it.cfg.startDist(p)

		c := Pt(p.X-dir.Y*dist, p.Y+dir.X*dist)
		if it.start.IsUsable(c.X, c.Y) {
			it.lastChecked--
			return c, true
		}

		c = Pt(p.X+dir.Y*dist, p.Y-dir.X*dist)
		if it.start.IsUsable(c.X, c.Y) {
			return c, true
		}
	}
	return Point{}, false
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
