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

// Command export writes the projection test cases to JSON, so that other
// implementations can be checked against them.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/xray"
	"seehuhn.de/go/xray/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name string    `json:"name"`
	Ray  []float64 `json:"ray"` // x0, y0, x1, y1
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []float64 `json:"data"` // row-major
	Want float64   `json:"want"`

	// Got is the value computed by this package, which may differ from
	// Want by rounding errors.
	Got float64 `json:"got"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	g, err := xray.GridFromRows(tc.Grid)
	if err != nil {
		return jsonTestCase{}, err
	}
	got, err := xray.Project(tc.X0, tc.Y0, tc.X1, tc.Y1, g)
	if err != nil {
		return jsonTestCase{}, err
	}
	return jsonTestCase{
		Name: category + "_" + tc.Name,
		Ray:  []float64{tc.X0, tc.Y0, tc.X1, tc.Y1},
		Rows: g.Rows,
		Cols: g.Cols,
		Data: g.Data,
		Want: tc.Want,
		Got:  got,
	}, nil
}
