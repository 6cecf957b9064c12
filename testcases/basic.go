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

var basicCases = []TestCase{
	{
		Name: "diagonal",
		X0:   0, Y0: 0, X1: 3, Y1: 3,
		Grid: uniform(3, 3, 1),
		Want: 3 * math.Sqrt2,
	},
	{
		Name: "single_cell",
		X0:   0, Y0: 0, X1: 1, Y1: 1,
		Grid: [][]float64{{5, 0}, {0, 0}},
		Want: 5 * math.Sqrt2,
	},
	{
		Name: "exceeds_grid",
		X0:   -1, Y0: -1, X1: 5, Y1: 5,
		Grid: uniform(4, 4, 1),
		Want: 4 * math.Sqrt2,
	},
	{
		Name: "outside",
		X0:   10, Y0: 10, X1: 11, Y1: 11,
		Grid: uniform(3, 3, 1),
		Want: 0,
	},

	// Both readings of a horizontal ray through a band of 2s.
	{
		Name: "axis_y_fixed",
		X0:   0, Y0: 1, X1: 3, Y1: 1,
		Grid: columns(3, 0, 2, 0),
		Want: 6,
	},
	{
		Name: "axis_x_fixed",
		X0:   1, Y0: 0, X1: 1, Y1: 3,
		Grid: rowsOf(3, 0, 2, 0),
		Want: 6,
	},
}
