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
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/streamlines/mask"
)

// newTestIntegrator returns an integrator on fresh masks for cfg.
func newTestIntegrator(t *testing.T, cfg *Config, seed Point) *integrator {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	density := func(p vec.Vec2) float64 { return cfg.density(Point{Vec2: p}) }
	start := mask.New(cfg.Width, cfg.Height, density, cfg.MinStartDist, cfg.MaxStartDist)
	stop := mask.New(cfg.Width, cfg.Height, density,
		cfg.MinStartDist*cfg.EndRatio, cfg.MaxStartDist*cfg.EndRatio)
	return newIntegrator(seed, start, stop, cfg)
}

// complete steps the integrator until it is done.
func complete(t *testing.T, it *integrator) []Point {
	t.Helper()
	for range 1_000_000 {
		if it.step() {
			return it.points
		}
	}
	t.Fatal("integrator did not finish")
	return nil
}

// vortex is a unit-length field circling around (cx, cy).
func vortex(cx, cy float64) Field {
	return func(p Point) (Point, bool) {
		dx, dy := p.X-cx, p.Y-cy
		r := math.Hypot(dx, dy)
		if r == 0 {
			return Point{}, false
		}
		return Pt(-dy/r, dx/r), true
	}
}

func TestRK4ConstantField(t *testing.T) {
	cfg := validConfig()
	cfg.StepLength = 2
	it := newTestIntegrator(t, &cfg, Pt(50, 50))

	d, ok := it.rk4(Pt(0, 0))
	if !ok {
		t.Fatal("rk4 failed on a constant field")
	}
	if math.Abs(d.X-2) > 1e-12 || math.Abs(d.Y) > 1e-12 {
		t.Errorf("rk4 displacement = (%g, %g), want (2, 0)", d.X, d.Y)
	}
}

func TestReadField(t *testing.T) {
	cases := []struct {
		name  string
		dir   Point
		ok    bool
		wantX float64
		wantY float64
	}{
		{"unit", Pt(0, 1), true, 0, 1},
		{"scaled_by_squared_length", Pt(2, 0), true, 0.5, 0},
		{"zero", Pt(0, 0), false, 0, 0},
		{"nan", Pt(math.NaN(), 1), false, 0, 0},
		{"inf", Pt(1, math.Inf(-1)), false, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Field = func(Point) (Point, bool) { return c.dir, true }
			it := &integrator{cfg: &cfg}

			got, ok := it.readField(Pt(1, 1))
			if ok != c.ok {
				t.Fatalf("ok = %t, want %t", ok, c.ok)
			}
			if ok && (got.X != c.wantX || got.Y != c.wantY) {
				t.Errorf("got (%g, %g), want (%g, %g)", got.X, got.Y, c.wantX, c.wantY)
			}
		})
	}

	cfg := validConfig()
	cfg.Field = func(Point) (Point, bool) { return Point{}, false }
	it := &integrator{cfg: &cfg}
	if _, ok := it.readField(Pt(1, 1)); ok {
		t.Error("undefined field reported as defined")
	}

	cfg.Field = func(Point) (Point, bool) { return Point{Vec2: vec.Vec2{X: 1}, Depth: 3.5}, true }
	if got, _ := it.readField(Pt(1, 1)); got.Depth != 3.5 {
		t.Errorf("depth = %g, want 3.5", got.Depth)
	}
}

func TestStraightStreamline(t *testing.T) {
	cfg := validConfig()
	cfg.Density = constantDensity(0.5)
	cfg.MinStartDist, cfg.MaxStartDist = 8, 36
	cfg.StepLength = 2
	it := newTestIntegrator(t, &cfg, Pt(50, 50))

	pts := complete(t, it)
	if n := len(pts); n < 49 || n > 51 {
		t.Errorf("got %d points, want about 50", n)
	}
	if pts[0].X > 2 || pts[len(pts)-1].X < 97 {
		t.Errorf("streamline spans x = %g..%g, want about 0..100",
			pts[0].X, pts[len(pts)-1].X)
	}
	for i, p := range pts {
		if p.Y != 50 {
			t.Errorf("point %d has y = %g, want 50", i, p.Y)
		}
		if i > 0 && !(p.X > pts[i-1].X) {
			t.Errorf("x not increasing at %d: %g after %g", i, p.X, pts[i-1].X)
		}
	}

	// the masks are stamped once the streamline is done
	if it.start.IsUsable(50, 60) {
		t.Error("start mask is free next to the streamline")
	}
	if it.stop.IsUsable(50, 55) {
		t.Error("stop mask is free next to the streamline")
	}
	if !it.stop.IsUsable(50, 65) {
		t.Error("stop mask is blocked far from the streamline")
	}
}

func TestUndefinedFieldStops(t *testing.T) {
	cfg := validConfig()
	cfg.Field = func(p Point) (Point, bool) {
		if p.X > 60 || p.X < 30 {
			return Point{}, false
		}
		return Pt(1, 0), true
	}
	it := newTestIntegrator(t, &cfg, Pt(50, 50))

	pts := complete(t, it)
	first, last := pts[0].X, pts[len(pts)-1].X
	// Backward steps sample the field ahead of the current point in
	// forward direction, so the tail may end one step outside the region.
	if first < 28 || last > 60 {
		t.Errorf("streamline spans %g..%g, outside the defined region", first, last)
	}
	if first > 34 || last < 56 {
		t.Errorf("streamline spans %g..%g, stopped too early", first, last)
	}
}

func TestDepthDiscontinuity(t *testing.T) {
	cfg := validConfig()
	cfg.Field = func(p Point) (Point, bool) {
		dir := Pt(1, 0)
		if p.X >= 70 {
			dir.Depth = 10
		}
		return dir, true
	}
	it := newTestIntegrator(t, &cfg, Pt(50, 50))

	pts := complete(t, it)
	last := pts[len(pts)-1]
	if last.X >= 70 {
		t.Errorf("streamline crossed the depth jump, ends at x = %g", last.X)
	}
	if last.X < 66 {
		t.Errorf("streamline stopped early at x = %g", last.X)
	}
	if pts[0].X > 2 {
		t.Errorf("backward growth stopped early at x = %g", pts[0].X)
	}
}

func TestSelfAvoidance(t *testing.T) {
	cfg := validConfig()
	cfg.Field = vortex(50, 50)
	it := newTestIntegrator(t, &cfg, Pt(50, 30))

	pts := complete(t, it)
	if len(pts) < 40 {
		t.Fatalf("only %d points on a closed orbit", len(pts))
	}
	limit := 0.9 * cfg.StepLength
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := pts[i].DistanceTo(pts[j]); d < limit {
				t.Fatalf("points %d and %d are %g apart, want at least %g", i, j, d, limit)
			}
		}
	}
}

func TestSeedCandidates(t *testing.T) {
	cfg := validConfig()
	cfg.Density = constantDensity(0.5) // start distance 22
	cfg.MinStartDist, cfg.MaxStartDist = 8, 36
	it := newTestIntegrator(t, &cfg, Pt(50, 50))
	pts := complete(t, it)
	if pts[0].X != 0 {
		t.Fatalf("streamline starts at x = %g, want 0", pts[0].X)
	}

	c, ok := it.nextSeedCandidate()
	if !ok || !c.Equal(Pt(0, 72)) {
		t.Fatalf("first candidate = %v, %t, want (0,72)", c, ok)
	}
	// until the candidate is used, the same point is proposed again
	if c2, _ := it.nextSeedCandidate(); !c2.Equal(c) {
		t.Errorf("repeated candidate = %v, want %v", c2, c)
	}

	// use the candidate, then the other side is proposed
	it.start.StampCircle(c.Vec2, 21)
	c, ok = it.nextSeedCandidate()
	if !ok || !c.Equal(Pt(0, 28)) {
		t.Fatalf("second candidate = %v, %t, want (0,28)", c, ok)
	}
	c, ok = it.nextSeedCandidate()
	if !ok || !c.Equal(Pt(2, 28)) {
		t.Fatalf("third candidate = %v, %t, want (2,28)", c, ok)
	}
}

func TestSeedCandidatesExhausted(t *testing.T) {
	cfg := validConfig()
	cfg.Width, cfg.Height = 40, 12
	cfg.Density = constantDensity(1) // start distance 36
	it := newTestIntegrator(t, &cfg, Pt(20, 6))
	complete(t, it)

	if c, ok := it.nextSeedCandidate(); ok {
		t.Errorf("got candidate %v in a domain narrower than the separation", c)
	}
	if _, ok := it.nextSeedCandidate(); ok {
		t.Error("exhausted scan produced a candidate")
	}
}
