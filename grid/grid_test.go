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

package grid

import (
	"math"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestEmpty(t *testing.T) {
	g := New(100, 50, 2)
	p := vec.Vec2{X: 10, Y: 10}
	if g.HasCloserThan(p, 1e6) {
		t.Error("empty grid reports a close point")
	}
	if d := g.NearestDistance(p); !math.IsInf(d, 1) {
		t.Errorf("NearestDistance on empty grid = %g, want +Inf", d)
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
}

func TestHasCloserThan(t *testing.T) {
	g := New(100, 100, 1.8)
	g.Insert(vec.Vec2{X: 20, Y: 20})
	g.Insert(vec.Vec2{X: 22, Y: 20})

	cases := []struct {
		p    vec.Vec2
		want bool
	}{
		{vec.Vec2{X: 20, Y: 21.7}, true},
		{vec.Vec2{X: 20, Y: 21.8}, false}, // strict comparison
		{vec.Vec2{X: 24, Y: 20}, false},
		{vec.Vec2{X: 23.5, Y: 20}, true},
		{vec.Vec2{X: 60, Y: 60}, false},
	}
	for _, c := range cases {
		if got := g.HasCloserThan(c.p, 1.8); got != c.want {
			t.Errorf("HasCloserThan(%v) = %t, want %t", c.p, got, c.want)
		}
	}
}

func TestNearestDistance(t *testing.T) {
	g := New(10, 10, 3)
	g.Insert(vec.Vec2{X: 1, Y: 1})
	g.Insert(vec.Vec2{X: 2, Y: 1})

	got := g.NearestDistance(vec.Vec2{X: 2, Y: 3})
	if math.Abs(got-2) > 1e-12 {
		t.Errorf("NearestDistance = %g, want 2", got)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestOutsidePointsIgnored(t *testing.T) {
	g := New(10, 10, 2)
	g.Insert(vec.Vec2{X: -0.5, Y: 5})
	if g.HasCloserThan(vec.Vec2{X: 0.1, Y: 5}, 2) {
		t.Error("point outside the bounding square was found")
	}
}

// TestAgainstBruteForce checks that the neighbourhood search finds every
// point closer than the cell size.
func TestAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const (
		width  = 97.0
		height = 61.0
		sep    = 1.8
	)
	g := New(width, height, sep)
	var pts []vec.Vec2
	for range 2000 {
		p := vec.Vec2{X: rng.Float64() * width, Y: rng.Float64() * height}
		g.Insert(p)
		pts = append(pts, p)
	}

	for range 2000 {
		q := vec.Vec2{X: rng.Float64() * width, Y: rng.Float64() * height}
		want := false
		for _, p := range pts {
			if p.Sub(q).Length() < sep {
				want = true
				break
			}
		}
		if got := g.HasCloserThan(q, sep); got != want {
			t.Fatalf("HasCloserThan(%v) = %t, brute force says %t", q, got, want)
		}
	}
}
