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

// precisionCases contains rays close to grid lines and rays whose
// endpoints are far from the grid.
var precisionCases = []TestCase{
	{
		Name: "just_below_line",
		X0:   -1, Y0: 1 - 1e-9, X1: 4, Y1: 1 - 1e-9,
		Grid: columns(3, 1, 2, 3),
		Want: 3,
	},
	{
		Name: "just_above_line",
		X0:   -1, Y0: 1 + 1e-9, X1: 4, Y1: 1 + 1e-9,
		Grid: columns(3, 1, 2, 3),
		Want: 6,
	},
	{
		Name: "tiny_segment",
		X0:   1.2, Y0: 1.2, X1: 1.2 + 1e-13, Y1: 1.2,
		Grid: uniform(3, 3, 1),
		Want: 0,
	},
	{
		Name: "distant_endpoints",
		X0:   -1e4, Y0: 0.5, X1: 1e4, Y1: 2.5,
		Grid: uniform(3, 3, 1),
		Want: 3 * math.Hypot(1, 1e-4),
	},
}
