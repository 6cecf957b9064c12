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

package testcases

import "math"

// largeCases contains rays crossing many grid lines.
var largeCases = []TestCase{
	{
		Name: "diagonal_256",
		X0:   0, Y0: 0, X1: 256, Y1: 256,
		Grid: uniform(256, 256, 1),
		Want: 256 * math.Sqrt2,
	},
	{
		Name: "horizontal_512",
		X0:   -10, Y0: 100.5, X1: 600, Y1: 100.5,
		Grid: uniform(512, 512, 0.5),
		Want: 256,
	},
	{
		Name: "shallow_1024",
		X0:   0, Y0: 0, X1: 1024, Y1: 64,
		Grid: uniform(1024, 64, 1),
		Want: math.Hypot(1024, 64),
	},
	{
		// rows alternate between 1 and -1, the ray spends half its length
		// in each
		Name: "alternating_rows",
		X0:   0, Y0: 0.25, X1: 200, Y1: 7.75,
		Grid: alternatingRows(200, 8),
		Want: 0,
	},
}

func alternatingRows(rows, cols int) [][]float64 {
	g := uniform(rows, cols, 1)
	for i := 1; i < rows; i += 2 {
		for j := range g[i] {
			g[i][j] = -1
		}
	}
	return g
}
