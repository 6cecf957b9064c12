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
	"errors"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/xray/testcases"
)

func mustUniform(t testing.TB, rows, cols int, v float64) *Grid {
	t.Helper()
	g, err := Uniform(rows, cols, v)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustRows(t testing.TB, rows [][]float64) *Grid {
	t.Helper()
	g, err := GridFromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// TestCatalogue checks Project against the exact line integrals of the
// rays in package testcases.
func TestCatalogue(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				g := mustRows(t, tc.Grid)
				got, err := Project(tc.X0, tc.Y0, tc.X1, tc.Y1, g)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(got-tc.Want) > 1e-9*max(1, math.Abs(tc.Want)) {
					t.Errorf("Project(%g, %g, %g, %g) = %.12f, want %.12f",
						tc.X0, tc.Y0, tc.X1, tc.Y1, got, tc.Want)
				}
			})
		}
	}
}

type step struct {
	Row, Col int
	Length   float64
}

func TestTrace(t *testing.T) {
	cases := []struct {
		name           string
		x0, y0, x1, y1 float64
		rows, cols     int
		want           []step
	}{
		{
			name: "horizontal",
			x0:   0.5, y0: 0.5, x1: 2.5, y1: 0.5,
			rows: 3, cols: 3,
			want: []step{{0, 0, 0.5}, {1, 0, 1}, {2, 0, 0.5}},
		},
		{
			name: "reversed",
			x0:   2.5, y0: 0.5, x1: 0.5, y1: 0.5,
			rows: 3, cols: 3,
			want: []step{{2, 0, 0.5}, {1, 0, 1}, {0, 0, 0.5}},
		},
		{
			name: "through_corner",
			x0:   0, y0: 0, x1: 2, y1: 2,
			rows: 2, cols: 2,
			want: []step{{0, 0, math.Sqrt2}, {1, 1, math.Sqrt2}},
		},
		{
			name: "shallow",
			x0:   0, y0: 0.5, x1: 4, y1: 1.5,
			rows: 4, cols: 2,
			want: []step{
				{0, 0, math.Hypot(1, 0.25)},
				{1, 0, math.Hypot(1, 0.25)},
				{2, 1, math.Hypot(1, 0.25)},
				{3, 1, math.Hypot(1, 0.25)},
			},
		},
		{
			name: "mixed_crossings",
			x0:   0, y0: 0, x1: 2, y1: 1,
			rows: 2, cols: 1,
			want: []step{
				{0, 0, math.Hypot(1, 0.5)},
				{1, 0, math.Hypot(1, 0.5)},
			},
		},
		{
			name: "outside",
			x0:   -2, y0: -2, x1: -1, y1: 5,
			rows: 3, cols: 3,
			want: nil,
		},
	}

	var p Projector
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got []step
			err := p.Trace(tc.x0, tc.y0, tc.x1, tc.y1, tc.rows, tc.cols,
				func(row, col int, length float64) {
					got = append(got, step{row, col, length})
				})
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-12), cmpopts.EquateEmpty()); d != "" {
				t.Errorf("Trace mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestProjectErrors(t *testing.T) {
	ok := mustUniform(t, 2, 2, 1)

	cases := []struct {
		name           string
		x0, y0, x1, y1 float64
		grid           *Grid
		want           error
	}{
		{"nil_grid", 0, 0, 1, 1, nil, ErrInvalidGrid},
		{"zero_rows", 0, 0, 1, 1, &Grid{Rows: 0, Cols: 2}, ErrInvalidGrid},
		{"negative_cols", 0, 0, 1, 1, &Grid{Rows: 2, Cols: -1}, ErrInvalidGrid},
		{"short_data", 0, 0, 1, 1, &Grid{Rows: 2, Cols: 2, Data: make([]float64, 3)}, ErrInvalidGrid},
		{"nan", math.NaN(), 0, 1, 1, ok, ErrNonFinite},
		{"inf", 0, 0, math.Inf(1), 1, ok, ErrNonFinite},
		{"extent_overflow", -1e308, 0.5, 1e308, 0.5, ok, ErrNonFinite},
		{"huge_grid", 0, 0, 1, 1, &Grid{Rows: math.MaxInt/2 + 1, Cols: 3}, ErrInvalidGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Project(tc.x0, tc.y0, tc.x1, tc.y1, tc.grid)
			if !errors.Is(err, tc.want) {
				t.Errorf("got error %v, want %v", err, tc.want)
			}
			if got != 0 {
				t.Errorf("got %g alongside an error", got)
			}
		})
	}
}

func TestCellOf(t *testing.T) {
	const rows, cols = 3, 2
	const eps = 1e-12

	cases := []struct {
		x, y     float64
		row, col int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{2.5, 1.5, 2, 1, true},
		{rows - eps, cols - eps, 2, 1, true},
		{rows, 0.5, 0, 0, false},
		{-eps, 0.5, 0, 0, false},
		{0.5, cols + eps, 0, 0, false},
		{0.5, -eps, 0, 0, false},
		{math.NaN(), 0.5, 0, 0, false},
	}
	for _, c := range cases {
		row, col, ok := cellOf(c.x, c.y, rows, cols)
		if ok != c.ok {
			t.Errorf("cellOf(%g, %g): ok = %t, want %t", c.x, c.y, ok, c.ok)
			continue
		}
		if ok && (row != c.row || col != c.col) {
			t.Errorf("cellOf(%g, %g) = (%d, %d), want (%d, %d)",
				c.x, c.y, row, col, c.row, c.col)
		}
	}
}

func TestTraceOverflowingGrid(t *testing.T) {
	var p Projector
	err := p.Trace(0, 0, 1, 1, math.MaxInt/2+1, 3, func(int, int, float64) {
		t.Error("unexpected segment")
	})
	if !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("got error %v, want %v", err, ErrInvalidGrid)
	}
}

func TestGridAlphas(t *testing.T) {
	got, inside := gridAlphas(nil, 1, 2, 3)
	if !inside {
		t.Fatal("tilted ray reported as outside")
	}
	want := []float64{-0.5, 0, 0.5, 1}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("ascending (-want +got):\n%s", d)
	}

	got, _ = gridAlphas(got[:0], 3, -3, 3)
	want = []float64{1, 2.0 / 3, 1.0 / 3, 0}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-15)); d != "" {
		t.Errorf("descending (-want +got):\n%s", d)
	}

	for _, tc := range []struct {
		start float64
		want  bool
	}{
		{-0.5, false},
		{0, true},
		{2.999, true},
		{3, false},
	} {
		got, inside := gridAlphas(nil, tc.start, 0, 3)
		if inside != tc.want || len(got) != 0 {
			t.Errorf("parallel at %g: inside=%t with %d alphas, want inside=%t",
				tc.start, inside, len(got), tc.want)
		}
	}
}

func TestValidRange(t *testing.T) {
	cases := []struct {
		name   string
		ax, ay []float64
		a0, a1 float64
	}{
		{"both", []float64{-0.5, 0, 0.5, 1}, []float64{2, 1, 0.25}, 0.25, 1},
		{"parallel_x", nil, []float64{0.1, 0.4}, 0.1, 0.4},
		{"parallel_both", nil, nil, 0, 1},
		{"disjoint", []float64{0, 0.2}, []float64{0.5, 0.9}, 0.5, 0.2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a0, a1 := validRange(tc.ax, tc.ay)
			if a0 != tc.a0 || a1 != tc.a1 {
				t.Errorf("got [%g, %g], want [%g, %g]", a0, a1, tc.a0, tc.a1)
			}
		})
	}
}

func TestMergeBreakpoints(t *testing.T) {
	ax := clipAlphas([]float64{1, 0.75, 0.5, 0.25, 0}, 0.1, 0.8)
	if d := cmp.Diff([]float64{0.25, 0.5, 0.75}, ax); d != "" {
		t.Fatalf("clipAlphas (-want +got):\n%s", d)
	}
	ay := clipAlphas([]float64{0, 0.5, 1}, 0.1, 0.8)

	got := mergeBreakpoints(nil, ax, ay, 0.1, 0.8)
	want := []float64{0.1, 0.25, 0.5, 0.5, 0.75, 0.8}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("mergeBreakpoints (-want +got):\n%s", d)
	}
}

// TestProjectorReuse checks that buffers left over from a long ray do not
// leak into later, shorter rays.
func TestProjectorReuse(t *testing.T) {
	big := mustUniform(t, 50, 50, 1)
	small := mustUniform(t, 2, 2, 3)

	var p Projector
	if _, err := p.Project(-1, -1, 51, 30, big); err != nil {
		t.Fatal(err)
	}
	got, err := p.Project(0, 1, 2, 1, small)
	if err != nil {
		t.Fatal(err)
	}
	if got != 6 {
		t.Errorf("got %g, want 6", got)
	}
}

func TestProjectAllocs(t *testing.T) {
	g := mustUniform(t, 64, 64, 1)
	var p Projector
	p.Project(-1, 3, 70, 40, g) // grow buffers

	allocs := testing.AllocsPerRun(100, func() {
		p.Project(-1, 3, 70, 40, g)
	})
	if allocs > 1 {
		t.Errorf("%g allocations per call in steady state", allocs)
	}
}
