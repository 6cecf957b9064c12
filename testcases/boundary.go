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

// boundaryCases contains rays which run along grid lines or touch the
// grid in a single point. A ray on grid line k belongs to the cells with
// index k; a ray on the far edge of the grid misses it.
var boundaryCases = []TestCase{
	{
		Name: "lower_edge",
		X0:   -1, Y0: 0, X1: 4, Y1: 0,
		Grid: uniform(3, 3, 1),
		Want: 3,
	},
	{
		Name: "upper_edge",
		X0:   -1, Y0: 3, X1: 4, Y1: 3,
		Grid: uniform(3, 3, 1),
		Want: 0,
	},
	{
		Name: "left_edge",
		X0:   0, Y0: -1, X1: 0, Y1: 4,
		Grid: uniform(3, 3, 1),
		Want: 3,
	},
	{
		Name: "right_edge",
		X0:   3, Y0: -1, X1: 3, Y1: 4,
		Grid: uniform(3, 3, 1),
		Want: 0,
	},
	{
		Name: "interior_line",
		X0:   2, Y0: -1, X1: 2, Y1: 4,
		Grid: rowsOf(3, 1, 2, 3),
		Want: 9,
	},
	{
		Name: "touches_corner",
		X0:   2, Y0: 0, X1: 4, Y1: -2,
		Grid: uniform(2, 2, 1),
		Want: 0,
	},
	{
		Name: "through_corner",
		X0:   0, Y0: 0, X1: 2, Y1: 2,
		Grid: [][]float64{{1, 7}, {7, 2}},
		Want: 3 * math.Sqrt2,
	},
}
