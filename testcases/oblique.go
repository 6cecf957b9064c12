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

var obliqueCases = []TestCase{
	{
		Name: "steep",
		X0:   0.5, Y0: -1, X1: 1.5, Y1: 5,
		Grid: uniform(2, 4, 1),
		Want: math.Hypot(1, 6) * 4 / 6,
	},
	{
		// cells (0, 0), (1, 0), (2, 1) and (3, 1)
		Name: "shallow",
		X0:   0, Y0: 0.5, X1: 4, Y1: 1.5,
		Grid: columns(4, 1, 10),
		Want: 22 * math.Hypot(1, 0.25),
	},
	{
		Name: "anti_diagonal",
		X0:   3, Y0: 0, X1: 0, Y1: 3,
		Grid: [][]float64{{0, 0, 4}, {0, 5, 0}, {6, 0, 0}},
		Want: 15 * math.Sqrt2,
	},
	{
		Name: "mixed_crossings",
		X0:   0, Y0: 0, X1: 2, Y1: 1,
		Grid: [][]float64{{3}, {4}},
		Want: 7 * math.Hypot(1, 0.5),
	},
	{
		Name: "negative_values",
		X0:   -1, Y0: 0.5, X1: 3, Y1: 0.5,
		Grid: [][]float64{{-1}, {2}},
		Want: 1,
	},
}
