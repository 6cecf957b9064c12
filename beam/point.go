// seehuhn.de/go/xray - exact ray projections through pixel grids
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

package beam

import (
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"
)

// Dist2 returns the squared distance between p and q.
func Dist2(p, q vec.Vec2) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

// IsClose reports whether p and q are less than eps apart.
func IsClose(p, q vec.Vec2, eps float64) bool {
	return Dist2(p, q) < eps*eps
}

// RandomPoint returns a point drawn uniformly from [0, k) × [0, k).
func RandomPoint(rng *rand.Rand, k float64) vec.Vec2 {
	return vec.Vec2{
		X: k * rng.Float64(),
		Y: k * rng.Float64(),
	}
}
