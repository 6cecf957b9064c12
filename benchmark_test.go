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

package xray

import (
	"fmt"
	"math"
	"testing"
)

// BenchmarkProjector measures a reused Projector on a fan of rays through
// the centre of square grids of increasing size.
func BenchmarkProjector(b *testing.B) {
	sizes := []int{16, 256, 2048}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			g := mustUniform(b, size, size, 1)
			var p Projector

			const nRays = 64
			c := float64(size) / 2
			r := float64(size)
			var rays [nRays][4]float64
			for k := range rays {
				phi := math.Pi * float64(k) / nRays
				dx, dy := r*math.Cos(phi), r*math.Sin(phi)
				rays[k] = [4]float64{c - dx, c - dy, c + dx, c + dy}
			}

			b.ReportAllocs()
			for b.Loop() {
				for _, ray := range rays {
					p.Project(ray[0], ray[1], ray[2], ray[3], g)
				}
			}
		})
	}
}
