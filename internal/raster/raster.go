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

// Package raster computes the exact area of each pixel covered by a
// filled path.
//
// Pixels are unit squares: pixel (x, y) is [x, x+1) × [y, y+1) in device
// coordinates. On a grid of cells, this is the same convention as
// [xray.Grid] with x as the row index and y as the column index.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser fills paths using the nonzero winding rule and reports, for
// every pixel, the fraction of its area inside the path.
// The caller creates one instance and reuses it for multiple paths.
// Internal buffers grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps path coordinates to device coordinates.
	// Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	// Must be positive.
	Flatness float64

	// smallPathThreshold is the largest bounding box area (in pixels) for
	// which a 2-D accumulation buffer is used. Larger paths are processed
	// one scanline at a time with an active edge list.
	smallPathThreshold int

	cover     []float64 // signed vertical extent of edges per pixel; reused as output
	area      []float64 // signed area right of the edges, per pixel
	edges     []edge
	activeIdx []int
	rowUsed   []bool
}

// NewRasteriser returns a Rasteriser with the given clip rectangle and an
// identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:                matrix.Identity,
		Clip:               clip,
		Flatness:           defaultFlatness,
		smallPathThreshold: smallPathThreshold,
	}
}

// Reset restores the defaults of [NewRasteriser] for the given clip
// rectangle, keeping the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
}

// Fill fills the path using the nonzero winding rule. Open subpaths are
// closed implicitly. The emit callback receives the covered fraction of
// each pixel, one row at a time, for the range of pixels xMin, xMin+1, ...
// which have non-zero coverage. The coverage slice is only valid during
// the call.
func (r *Rasteriser) Fill(p path.Path, emit func(y, xMin int, coverage []float64)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, emit)
	}
}

// collectEdges flattens the path into r.edges and returns the pixel range
// touched by the edges, clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(p path.Path) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.addEdge(current, start)
			current, start = pts[0], pts[0]
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1])
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2])
			current = pts[2]
		case path.CmdClose:
			r.addEdge(current, start)
			current = start
		}
	}
	r.addEdge(current, start)

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	bx0, bx1 := math.Inf(+1), math.Inf(-1)
	by0, by1 := math.Inf(+1), math.Inf(-1)
	for i := range r.edges {
		e := &r.edges[i]
		bx0 = min(bx0, e.x0, e.x1)
		bx1 = max(bx1, e.x0, e.x1)
		by0 = min(by0, e.y0, e.y1)
		by1 = max(by1, e.y0, e.y1)
	}

	xMin = max(int(math.Floor(bx0)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(bx1))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(by0)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(by1))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms the segment from p0 to p1 into device space and
// appends it to the edge list. Horizontal edges do not contribute to the
// coverage and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})
}

// deviceLength returns the length of v after applying the linear part of
// the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// flattenQuadratic approximates a quadratic Bézier curve by line
// segments, so that the error in device space is at most r.Flatness.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if dev > 0 {
		n = max(n, int(math.Ceil(math.Sqrt(3*dev/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// Coverage accumulation:
//
// A part of an edge with vertical extent dy inside pixel column x adds
// cover = ±dy to that pixel, and area = cover·(1-xFrac), where xFrac is
// the horizontal position of the part within the pixel. Summing cover
// from left to right gives the winding contribution carried into each
// pixel, and adding area gives the signed area covered inside the pixel.

// accumulate adds the contribution of e within the scanline [y, y+1) to
// cover and area, which are indexed by x - xMin.
func accumulate(e *edge, y int, cover, area []float64, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := 1.0
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.xAt(yTop)
	xBot := e.xAt(yBot)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	// edge entirely to the left of the clip: its cover is carried into
	// every pixel of the row
	if pixRight < xMin {
		c := sign * (yBot - yTop)
		cover[0] += c
		area[0] += c
		return
	}
	// edge entirely to the right of the clip
	if pixLeft >= xMax {
		return
	}

	if pixLeft == pixRight {
		deposit(cover, area, xMin, xMax, pixLeft, sign*(yBot-yTop), (xTop+xBot)/2)
		return
	}

	// Split the edge at the pixel column boundaries. All parts left of
	// the clip are merged into one piece ending at xMin, and parts right
	// of the clip are dropped.
	first := max(pixLeft, xMin-1)
	last := min(pixRight, xMax-1)
	dydx := 1 / e.dxdy
	for pix := first; pix <= last; pix++ {
		xa := float64(pix)
		if pix == first {
			xa = float64(pixLeft)
		}
		ya := e.y0 + dydx*(xa-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		deposit(cover, area, xMin, xMax, pix, sign*(hi-lo), e.xAt((lo+hi)/2))
	}
}

// deposit adds the cover c of an edge part at horizontal position xMid
// inside pixel column pix. Parts left of xMin cover the whole of the
// first pixel; parts right of xMax have no effect.
func deposit(cover, area []float64, xMin, xMax, pix int, c, xMid float64) {
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		i := pix - xMin
		cover[i] += c
		area[i] += c * (1 - (xMid - float64(pix)))
	}
}

// integrate turns one row of cover/area values into coverage, using the
// nonzero winding rule. The result is stored in cover.
func integrate(cover, area []float64) {
	var carry float64
	for i := range cover {
		raw := math.Abs(carry + area[i])
		carry += cover[i]
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, and the offset of that part.
func trimZeros(coverage []float64) (trimmed []float64, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// fillSmall accumulates all edges into 2-D buffers covering the
// bounding box, then integrates row by row.
func (r *Rasteriser) fillSmall(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float64)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowUsed = slices.Grow(r.rowUsed[:0], height)[:height]
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := (y - yMin) * width
			accumulate(e, y, r.cover[row:row+width], r.area[row:row+width], xMin, xMax)
			r.rowUsed[y-yMin] = true
		}
	}

	for k := range height {
		if !r.rowUsed[k] {
			continue
		}
		row := k * width
		coverage := r.cover[row : row+width]
		integrate(coverage, r.area[row:row+width])
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+k, xMin+offset, trimmed)
		}
	}
}

// fillLarge processes one scanline at a time, keeping a list of the
// edges which intersect the current scanline.
func (r *Rasteriser) fillLarge(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float64)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < bot {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		used := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= top {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			used = true
			i++
		}
		if !used {
			continue
		}

		integrate(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.05

	// horizontalEdgeThreshold is the smallest vertical extent for an edge
	// to be kept.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default bounding box area (in pixels)
	// below which fillSmall is used.
	smallPathThreshold = 65536
)
