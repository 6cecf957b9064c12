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

// partialCases contains rays with at least one endpoint inside the grid.
var partialCases = []TestCase{
	{
		Name: "starts_inside",
		X0:   0.5, Y0: 0.5, X1: 2.5, Y1: 0.5,
		Grid: uniform(3, 3, 1),
		Want: 2,
	},
	{
		Name: "reversed",
		X0:   2.5, Y0: 0.5, X1: 0.5, Y1: 0.5,
		Grid: uniform(3, 3, 1),
		Want: 2,
	},
	{
		Name: "ends_inside",
		X0:   -3, Y0: 1.5, X1: 1.25, Y1: 1.5,
		Grid: uniform(3, 3, 1),
		Want: 1.25,
	},
	{
		Name: "inside_one_cell",
		X0:   1.25, Y0: 1.25, X1: 1.75, Y1: 1.5,
		Grid: uniform(3, 3, 2),
		Want: 2 * math.Hypot(0.5, 0.25),
	},
	{
		Name: "point",
		X0:   1.5, Y0: 1.5, X1: 1.5, Y1: 1.5,
		Grid: uniform(3, 3, 1),
		Want: 0,
	},
}
