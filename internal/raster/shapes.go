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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// bezierCircle is the control point distance for approximating a quarter
// circle of radius 1 by a cubic Bézier curve.
const bezierCircle = 0.5522847498

// Polygon returns the closed polygon through the given vertices.
func Polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Segment returns the outline of the line from a to b, drawn with the
// given width and butt caps. A segment of length zero has no outline.
func Segment(a, b vec.Vec2, width float64) path.Path {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return Polygon()
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(width / (2 * l))
	return Polygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// Ellipse returns an ellipse with semi-axes a and b, rotated
// counter-clockwise by angle (in radians) about its center.
func Ellipse(center vec.Vec2, a, b, angle float64) path.Path {
	cos, sin := math.Cos(angle), math.Sin(angle)
	tr := func(x, y float64) vec.Vec2 {
		return vec.Vec2{
			X: center.X + cos*x - sin*y,
			Y: center.Y + sin*x + cos*y,
		}
	}
	ka := bezierCircle * a
	kb := bezierCircle * b
	arcs := [4][3][2]float64{
		{{a, kb}, {ka, b}, {0, b}},
		{{-ka, b}, {-a, kb}, {-a, 0}},
		{{-a, -kb}, {-ka, -b}, {0, -b}},
		{{ka, -b}, {a, -kb}, {a, 0}},
	}

	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2 // reused for each yield
		buf[0] = tr(a, 0)
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		for _, arc := range arcs {
			for i, c := range arc {
				buf[i] = tr(c[0], c[1])
			}
			if !yield(path.CmdCubeTo, buf[:3]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Circle returns a circle with the given center and radius.
func Circle(center vec.Vec2, radius float64) path.Path {
	return Ellipse(center, radius, radius, 0)
}
