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

import "math/rand/v2"

// Source supplies uniformly distributed random numbers in [0,1).
// A *rand.Rand from math/rand/v2 satisfies this interface.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic random source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newDefaultSource returns a randomly seeded source.
func newDefaultSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// shuffle permutes s in place using the Fisher–Yates algorithm.
func shuffle[T any](s []T, src Source) {
	for i := len(s); i > 0; {
		j := int(src.Float64() * float64(i))
		i--
		s[i], s[j] = s[j], s[i]
	}
}
