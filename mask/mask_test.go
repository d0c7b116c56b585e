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

package mask

import (
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
)

func constant(v float64) func(vec.Vec2) float64 {
	return func(vec.Vec2) float64 { return v }
}

func TestQuantize(t *testing.T) {
	cases := []struct {
		in   float64
		want byte
	}{
		{-1, 0},
		{0, 0},
		{0.5, 127},
		{1, 254},
		{7, 254},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		if got := quantize(c.in); got != c.want {
			t.Errorf("quantize(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNewSamplesDensity(t *testing.T) {
	// density increases from left to right
	m := New(3, 2, func(p vec.Vec2) float64 { return p.X / 2 }, 4, 10)

	want := []byte{0, 127, 254, 0, 127, 254}
	if d := cmp.Diff(want, m.Pix()); d != "" {
		t.Errorf("raster mismatch (-want +got):\n%s", d)
	}

	for x, wantDist := range []float64{4, 7, 10} {
		got, ok := m.Required(x, 1)
		if !ok {
			t.Fatalf("pixel (%d,1) unexpectedly blocked", x)
		}
		if math.Abs(got-wantDist) > 1e-9 {
			t.Errorf("Required(%d,1) = %g, want %g", x, got, wantDist)
		}
	}
}

func TestIsUsableBounds(t *testing.T) {
	m := New(10, 5, constant(0), 2, 2)

	cases := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{9.99, 4.99, true},
		{-0.01, 0, false},
		{0, -0.01, false},
		{10, 0, false},
		{0, 5, false},
		{math.NaN(), 1, false},
		{math.Inf(1), 1, false},
	}
	for _, c := range cases {
		if got := m.IsUsable(c.x, c.y); got != c.want {
			t.Errorf("IsUsable(%g, %g) = %t, want %t", c.x, c.y, got, c.want)
		}
	}
}

func TestStampCircle(t *testing.T) {
	// constant density 0.5 with distances 8..36 gives a required
	// separation of 22 everywhere, so the circle radius is the limit.
	// The traced circle of radius 10 covers every pixel closer than 10
	// to the floored centre.
	m := New(100, 100, constant(0.5), 8, 36)
	center := vec.Vec2{X: 50.3, Y: 50.7}
	m.StampCircle(center, 10)

	for y := range 100 {
		for x := range 100 {
			dist := math.Hypot(float64(x-50), float64(y-50))
			usable := m.IsUsable(float64(x), float64(y))
			switch {
			case dist < 10 && usable:
				t.Errorf("pixel (%d,%d) at distance %.2f is free", x, y, dist)
			case dist > 10 && !usable:
				t.Errorf("pixel (%d,%d) at distance %.2f is blocked", x, y, dist)
			}
		}
	}
}

func TestStampCircleRespectsDensity(t *testing.T) {
	// Left half needs little separation, right half a lot.
	density := func(p vec.Vec2) float64 {
		if p.X < 50 {
			return 0
		}
		return 1
	}
	m := New(100, 100, density, 2, 40)
	m.StampCircle(vec.Vec2{X: 50, Y: 50}, 20)

	if m.IsUsable(45, 50) != true {
		t.Error("pixel at distance 5 in sparse-separation half was blocked")
	}
	if m.IsUsable(49, 50) != false {
		t.Error("pixel at distance 1 was not blocked")
	}
	if m.IsUsable(60, 50) != false {
		t.Error("pixel at distance 10 in wide-separation half was not blocked")
	}
}

func TestStampCircleClipsToRaster(t *testing.T) {
	m := New(20, 20, constant(1), 30, 30)
	m.StampCircle(vec.Vec2{X: 0, Y: 0}, 6)

	// no wrap-around onto the previous or next row
	if !m.IsUsable(19, 1) || !m.IsUsable(19, 0) {
		t.Error("stamp near the left edge wrapped to the right edge")
	}
	if m.IsUsable(0, 0) || m.IsUsable(3, 3) {
		t.Error("pixels near the corner were not blocked")
	}
}

func TestStampIsMonotonic(t *testing.T) {
	m := New(30, 30, constant(0.2), 3, 9)
	before := m.FreeCount()
	m.StampCircle(vec.Vec2{X: 15, Y: 15}, 8)
	mid := m.FreeCount()
	m.StampCircle(vec.Vec2{X: 15, Y: 15}, 8)
	after := m.FreeCount()

	if !(mid < before) {
		t.Errorf("stamping did not block anything: %d -> %d", before, mid)
	}
	if after != mid {
		t.Errorf("repeated stamp changed free count: %d -> %d", mid, after)
	}
	if _, ok := m.Required(15, 15); ok {
		t.Error("centre pixel still reports a separation value")
	}
}

func TestFreeCells(t *testing.T) {
	m := New(4, 3, constant(0), 2, 2)
	m.StampCircle(vec.Vec2{X: 1, Y: 1}, 2)

	var want []image.Point
	for y := range 3 {
		for x := range 4 {
			if m.IsUsable(float64(x), float64(y)) {
				want = append(want, image.Point{X: x, Y: y})
			}
		}
	}
	got := m.FreeCells()
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("FreeCells mismatch (-want +got):\n%s", d)
	}
	if len(got) != m.FreeCount() {
		t.Errorf("FreeCount() = %d, want %d", m.FreeCount(), len(got))
	}
	if len(got) == 12 {
		t.Error("stamp did not block any pixels")
	}
}

func TestImage(t *testing.T) {
	m := New(5, 4, constant(0.5), 2, 10)
	m.StampCircle(vec.Vec2{X: 2, Y: 2}, 1)

	img := m.Image()
	if img.Bounds() != image.Rect(0, 0, 5, 4) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if got := img.GrayAt(2, 2).Y; got != Blocked {
		t.Errorf("centre pixel = %d, want %d", got, Blocked)
	}
	if got := img.GrayAt(0, 0).Y; got != 127 {
		t.Errorf("corner pixel = %d, want 127", got)
	}
}
