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

// Package beam describes x-ray beams as straight line segments in grid
// coordinates.
package beam

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/xray"
)

// Beam is the directed line segment from Src to Dst.
type Beam struct {
	Src, Dst vec.Vec2
}

// New returns the beam from (x0, y0) to (x1, y1).
func New(x0, y0, x1, y1 float64) Beam {
	return Beam{
		Src: vec.Vec2{X: x0, Y: y0},
		Dst: vec.Vec2{X: x1, Y: y1},
	}
}

func (b Beam) String() string {
	if b.Vertical() {
		return fmt.Sprintf("x = %g", b.Src.X)
	}
	m, c, _ := b.Slope()
	return fmt.Sprintf("y = %gx + %g", m, c)
}

// Project returns the line integral of g along the beam.
func (b Beam) Project(g *xray.Grid) (float64, error) {
	return xray.Project(b.Src.X, b.Src.Y, b.Dst.X, b.Dst.Y, g)
}

// Delta returns Dst - Src.
func (b Beam) Delta() vec.Vec2 {
	return b.Dst.Sub(b.Src)
}

// At returns the point Src + alpha·(Dst - Src).
func (b Beam) At(alpha float64) vec.Vec2 {
	return b.Src.Add(b.Delta().Mul(alpha))
}

// Length returns the distance between Src and Dst.
func (b Beam) Length() float64 {
	return b.Delta().Length()
}

// Midpoint returns the point halfway between Src and Dst.
func (b Beam) Midpoint() vec.Vec2 {
	return b.Src.Add(b.Dst).Mul(0.5)
}

// Reverse returns the beam from Dst to Src.
func (b Beam) Reverse() Beam {
	return Beam{Src: b.Dst, Dst: b.Src}
}

// Vertical reports whether the beam is parallel to the y axis.
func (b Beam) Vertical() bool {
	return b.Src.X == b.Dst.X
}

// Slope returns m and c such that the beam lies on the line y = m·x + c.
// ok is false for vertical beams.
func (b Beam) Slope() (m, c float64, ok bool) {
	if b.Vertical() {
		return 0, 0, false
	}
	d := b.Delta()
	m = d.Y / d.X
	c = b.Src.Y - m*b.Src.X
	return m, c, true
}

// AtX returns the point of the supporting line with the given x
// coordinate. ok is false for vertical beams.
func (b Beam) AtX(x float64) (p vec.Vec2, ok bool) {
	m, c, ok := b.Slope()
	if !ok {
		return vec.Vec2{}, false
	}
	return vec.Vec2{X: x, Y: m*x + c}, true
}

// AtY returns the point of the supporting line with the given y
// coordinate. ok is false for horizontal beams.
func (b Beam) AtY(y float64) (p vec.Vec2, ok bool) {
	d := b.Delta()
	if d.Y == 0 {
		return vec.Vec2{}, false
	}
	return vec.Vec2{X: b.Src.X + (y-b.Src.Y)*d.X/d.Y, Y: y}, true
}

// Dist2 returns the squared distance of p from the supporting line.
// For a beam of length zero, this is the squared distance from Src.
func (b Beam) Dist2(p vec.Vec2) float64 {
	d := b.Delta()
	den := d.Dot(d)
	if den == 0 {
		return Dist2(b.Src, p)
	}
	num := d.X*(b.Src.Y-p.Y) - (b.Src.X-p.X)*d.Y
	return num * num / den
}

// Dist returns the distance of p from the supporting line.
func (b Beam) Dist(p vec.Vec2) float64 {
	return math.Sqrt(b.Dist2(p))
}

// Intersection returns the point where the supporting lines of b and o
// meet. ok is false if the lines are parallel.
func (b Beam) Intersection(o Beam) (p vec.Vec2, ok bool) {
	d1 := b.Delta()
	d2 := o.Delta()
	den := cross(d1, d2)
	if den == 0 {
		return vec.Vec2{}, false
	}
	t := cross(o.Src.Sub(b.Src), d2) / den
	return b.At(t), true
}

// SameLine reports whether b and o lie on the same infinite line.
// Slopes and intercepts are compared exactly.
func (b Beam) SameLine(o Beam) bool {
	if b.Vertical() != o.Vertical() {
		return false
	}
	if b.Vertical() {
		return b.Src.X == o.Src.X
	}
	m1, c1, _ := b.Slope()
	m2, c2, _ := o.Slope()
	return m1 == m2 && c1 == c2
}

// Clip returns the part of the beam which lies inside box.
// ok is false if the beam misses the box or only touches it in a single
// point.
func (b Beam) Clip(box rect.Rect) (clipped Beam, ok bool) {
	d := b.Delta()
	t0, t1 := 0.0, 1.0
	for _, slab := range [2][4]float64{
		{b.Src.X, d.X, box.LLx, box.URx},
		{b.Src.Y, d.Y, box.LLy, box.URy},
	} {
		start, delta, lo, hi := slab[0], slab[1], slab[2], slab[3]
		if delta == 0 {
			if start < lo || start > hi {
				return Beam{}, false
			}
			continue
		}
		ta, tb := (lo-start)/delta, (hi-start)/delta
		if ta > tb {
			ta, tb = tb, ta
		}
		t0 = max(t0, ta)
		t1 = min(t1, tb)
	}
	if t0 >= t1 {
		return Beam{}, false
	}
	return Beam{Src: b.At(t0), Dst: b.At(t1)}, true
}

// GridBox returns the bounding box [0, Rows] × [0, Cols] of g in grid
// coordinates.
func GridBox(g *xray.Grid) rect.Rect {
	return rect.Rect{
		URx: float64(g.Rows),
		URy: float64(g.Cols),
	}
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
