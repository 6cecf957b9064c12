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

// Package phantom builds test objects for projection experiments.
//
// Objects are sums of ellipses. Each cell of the resulting grid holds the
// average of the object over the cell, so that cells on the boundary of
// an ellipse receive the covered fraction of its value.
package phantom

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/xray"
	"seehuhn.de/go/xray/internal/raster"
)

// ErrShape is returned for ellipses with non-positive semi-axes.
var ErrShape = errors.New("invalid shape")

// Ellipse is an elliptical region of constant value, in grid coordinates.
type Ellipse struct {
	Center vec.Vec2
	A, B   float64 // semi-axes along the rotated x and y directions
	Angle  float64 // counter-clockwise rotation in radians
	Value  float64 // added to every point inside the ellipse
}

// Rasterise returns a rows×cols grid holding the sum of the given
// ellipses.
func Rasterise(rows, cols int, shapes []Ellipse) (*xray.Grid, error) {
	g, err := xray.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	r := raster.NewRasteriser(rect.Rect{URx: float64(rows), URy: float64(cols)})
	for i, e := range shapes {
		if !(e.A > 0 && e.B > 0) {
			return nil, fmt.Errorf("%w: ellipse %d has semi-axes %g, %g",
				ErrShape, i, e.A, e.B)
		}

		// device x is the row index, device y the column index
		r.Fill(raster.Ellipse(e.Center, e.A, e.B, e.Angle), func(y, xMin int, coverage []float64) {
			for k, c := range coverage {
				g.Data[(xMin+k)*cols+y] += e.Value * c
			}
		})
	}
	return g, nil
}

// SheppLogan returns the modified Shepp–Logan head phantom (with the
// improved contrast values of Toft), scaled to fill an n×n grid.
func SheppLogan(n int) (*xray.Grid, error) {
	return Rasterise(n, n, SheppLoganShapes(n))
}

// SheppLoganShapes returns the ellipses of [SheppLogan] for an n×n grid.
func SheppLoganShapes(n int) []Ellipse {
	scale := float64(n) / 2
	shapes := make([]Ellipse, len(sheppLogan))
	for i, s := range sheppLogan {
		shapes[i] = Ellipse{
			Center: vec.Vec2{X: (s.x + 1) * scale, Y: (s.y + 1) * scale},
			A:      s.a * scale,
			B:      s.b * scale,
			Angle:  s.phi * math.Pi / 180,
			Value:  s.value,
		}
	}
	return shapes
}

// sheppLogan lists the ellipses of the phantom on [-1, 1]², with the
// rotation given in degrees.
var sheppLogan = []struct {
	value, a, b, x, y, phi float64
}{
	{1.0, 0.6900, 0.9200, 0, 0, 0},
	{-0.8, 0.6624, 0.8740, 0, -0.0184, 0},
	{-0.2, 0.1100, 0.3100, 0.22, 0, -18},
	{-0.2, 0.1600, 0.4100, -0.22, 0, 18},
	{0.1, 0.2100, 0.2500, 0, 0.35, 0},
	{0.1, 0.0460, 0.0460, 0, 0.1, 0},
	{0.1, 0.0460, 0.0460, 0, -0.1, 0},
	{0.1, 0.0460, 0.0230, -0.08, -0.605, 0},
	{0.1, 0.0230, 0.0230, 0, -0.606, 0},
	{0.1, 0.0230, 0.0460, 0.06, -0.605, 0},
}

// Chord returns the length of the intersection of the ellipse with the
// infinite line through p in direction d. d must be non-zero.
func (e Ellipse) Chord(p, d vec.Vec2) float64 {
	cos, sin := math.Cos(e.Angle), math.Sin(e.Angle)

	// express the line in the frame of the ellipse, scaled to the unit circle
	q := p.Sub(e.Center)
	qx := (cos*q.X + sin*q.Y) / e.A
	qy := (-sin*q.X + cos*q.Y) / e.B
	dx := (cos*d.X + sin*d.Y) / e.A
	dy := (-sin*d.X + cos*d.Y) / e.B

	a := dx*dx + dy*dy
	b := 2 * (qx*dx + qy*dy)
	c := qx*qx + qy*qy - 1
	disc := b*b - 4*a*c
	if disc <= 0 {
		return 0
	}
	return math.Sqrt(disc) / a * d.Length()
}
