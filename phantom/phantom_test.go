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

package phantom

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/xray"
)

func TestDisk(t *testing.T) {
	const radius, value = 6, 2
	g, err := Rasterise(20, 20, []Ellipse{{
		Center: vec.Vec2{X: 10.3, Y: 9.6},
		A:      radius,
		B:      radius,
		Value:  value,
	}})
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range g.Data {
		if v < 0 || v > value {
			t.Fatalf("cell %d has value %g", i, v)
		}
	}
	if v := g.At(10, 9); math.Abs(v-value) > 1e-9 {
		t.Errorf("centre cell has value %g, want %g", v, value)
	}
	want := value * math.Pi * radius * radius
	if sum := g.Sum(); math.Abs(sum-want) > 0.005*want {
		t.Errorf("total %g, want %g", sum, want)
	}
}

// TestOrientation checks that the rows of the grid follow the x axis.
func TestOrientation(t *testing.T) {
	g, err := Rasterise(8, 4, []Ellipse{{
		Center: vec.Vec2{X: 6, Y: 1},
		A:      0.5,
		B:      0.5,
		Value:  1,
	}})
	if err != nil {
		t.Fatal(err)
	}
	for i := range g.Rows {
		for j := range g.Cols {
			v := g.At(i, j)
			inside := (i == 5 || i == 6) && (j == 0 || j == 1)
			if inside != (v > 0) {
				t.Errorf("cell (%d, %d) has value %g", i, j, v)
			}
		}
	}
}

func TestSheppLoganCentre(t *testing.T) {
	g, err := SheppLogan(64)
	if err != nil {
		t.Fatal(err)
	}
	if v := g.At(32, 32); math.Abs(v-0.2) > 1e-9 {
		t.Errorf("centre value %g, want 0.2", v)
	}
	if v := g.At(0, 0); v != 0 {
		t.Errorf("corner value %g, want 0", v)
	}
}

// TestSheppLoganProjection compares projections of the rasterised phantom
// along the centre lines of grid bands with the exact line integrals of
// the continuous phantom.
func TestSheppLoganProjection(t *testing.T) {
	const n = 256
	shapes := SheppLoganShapes(n)
	g, err := Rasterise(n, n, shapes)
	if err != nil {
		t.Fatal(err)
	}

	for _, band := range []int{60, 100, 128, 160, 200} {
		c := float64(band) + 0.5
		for _, dir := range []string{"x", "y"} {
			t.Run(fmt.Sprintf("%s%d", dir, band), func(t *testing.T) {
				var p, d vec.Vec2
				var x0, y0, x1, y1 float64
				if dir == "x" {
					p, d = vec.Vec2{X: 0, Y: c}, vec.Vec2{X: 1}
					x0, y0, x1, y1 = -1, c, n+1, c
				} else {
					p, d = vec.Vec2{X: c, Y: 0}, vec.Vec2{Y: 1}
					x0, y0, x1, y1 = c, -1, c, n+1
				}

				var want, scale float64
				for _, e := range shapes {
					chord := e.Chord(p, d)
					want += e.Value * chord
					scale += math.Abs(e.Value) * chord
				}

				got, err := xray.Project(x0, y0, x1, y1, g)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(got-want) > 0.01*scale {
					t.Errorf("got %g, want %g", got, want)
				}
			})
		}
	}
}

func TestChord(t *testing.T) {
	e := Ellipse{Center: vec.Vec2{X: 1, Y: 2}, A: 3, B: 2, Angle: math.Pi / 2}

	// after rotating by 90°, the long axis is vertical
	if l := e.Chord(vec.Vec2{X: 1, Y: -10}, vec.Vec2{Y: 5}); math.Abs(l-6) > 1e-12 {
		t.Errorf("vertical chord %g, want 6", l)
	}
	if l := e.Chord(vec.Vec2{X: 7, Y: 2}, vec.Vec2{X: -1}); math.Abs(l-4) > 1e-12 {
		t.Errorf("horizontal chord %g, want 4", l)
	}
	if l := e.Chord(vec.Vec2{X: 4, Y: 0}, vec.Vec2{Y: 1}); l != 0 {
		t.Errorf("chord of a missing line %g, want 0", l)
	}
}

func TestRasteriseInvalid(t *testing.T) {
	_, err := Rasterise(4, 4, []Ellipse{{A: 1, B: 0}})
	if !errors.Is(err, ErrShape) {
		t.Errorf("flat ellipse: got %v", err)
	}
	_, err = Rasterise(0, 4, nil)
	if !errors.Is(err, xray.ErrInvalidGrid) {
		t.Errorf("empty grid: got %v", err)
	}
}
