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

// Package testcases lists rays through small grids together with their
// exact projections.
package testcases

// TestCase defines a single projection test.
type TestCase struct {
	Name           string      // lowercase a-z, 0-9 and _ only
	X0, Y0, X1, Y1 float64     // the ray, from (X0, Y0) to (X1, Y1)
	Grid           [][]float64 // Grid[i][j] is the value of cell (i, j)
	Want           float64     // the exact line integral
}

// uniform returns a rows×cols grid with every cell set to v.
func uniform(rows, cols int, v float64) [][]float64 {
	g := make([][]float64, rows)
	for i := range g {
		g[i] = make([]float64, cols)
		for j := range g[i] {
			g[i][j] = v
		}
	}
	return g
}

// columns returns a grid with rows copies of the given row, so that all
// cells of column j have the value vals[j].
func columns(rows int, vals ...float64) [][]float64 {
	g := make([][]float64, rows)
	for i := range g {
		g[i] = append([]float64(nil), vals...)
	}
	return g
}

// rowsOf returns a grid where all cells of row i have the value vals[i].
func rowsOf(cols int, vals ...float64) [][]float64 {
	g := make([][]float64, len(vals))
	for i, v := range vals {
		g[i] = make([]float64, cols)
		for j := range g[i] {
			g[i][j] = v
		}
	}
	return g
}
