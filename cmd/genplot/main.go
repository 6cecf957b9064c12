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

// Command genplot draws every projection test case, as a PDF and as a
// PNG file, showing the grid values and the ray.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/xray"
	"seehuhn.de/go/xray/beam"
	"seehuhn.de/go/xray/plot"
	"seehuhn.de/go/xray/testcases"
)

const plotDir = "testdata/plots"

// maxSize is the largest width or height of a plot, in pixels.
const maxSize = 800

func main() {
	if err := os.MkdirAll(plotDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, name string) error {
	g, err := xray.GridFromRows(tc.Grid)
	if err != nil {
		return err
	}
	b := beam.New(tc.X0, tc.Y0, tc.X1, tc.Y1)

	// show the grid and both endpoints of the ray
	box := beam.GridBox(g)
	box.LLx = min(box.LLx, b.Src.X, b.Dst.X) - 0.5
	box.LLy = min(box.LLy, b.Src.Y, b.Dst.Y) - 0.5
	box.URx = max(box.URx, b.Src.X, b.Dst.X) + 0.5
	box.URy = max(box.URy, b.Src.Y, b.Dst.Y) + 0.5

	fig := newFigure(box)
	fig.Background = g
	fig.AddLines(b)
	fig.AddPoints(b.Src, b.Dst)

	if err := fig.WritePDF(filepath.Join(plotDir, name+".pdf")); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(plotDir, name+".png"))
	if err != nil {
		return err
	}
	defer f.Close()
	return fig.WritePNG(f)
}

// newFigure returns a figure for box with square grid cells, scaled so
// that the larger side has at most maxSize pixels.
func newFigure(box rect.Rect) *plot.Figure {
	w := box.URx - box.LLx
	h := box.URy - box.LLy
	scale := min(40, maxSize/max(w, h))

	fig := plot.NewFigure(box)
	fig.Width = int(math.Ceil(w * scale))
	fig.Height = int(math.Ceil(h * scale))
	return fig
}
