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

// Package xray computes exact line integrals of a scalar field sampled on
// a regular pixel grid, along straight rays.
//
// The ray from (x0, y0) to (x1, y1) is parametrised as
//
//	(x, y) = (x0 + α·(x1-x0), y0 + α·(y1-y0)),  0 ≤ α ≤ 1.
//
// Every grid line the ray crosses gives one breakpoint α. Between two
// consecutive breakpoints the ray lies inside a single cell, and the
// projection is the sum over these segments of length × cell value.
package xray

import (
	"fmt"
	"math"
	"slices"
)

// Project returns the line integral of g along the ray from (x0, y0) to
// (x1, y1).
//
// Project is safe for concurrent use, provided g is not modified while
// calls are in flight.
func Project(x0, y0, x1, y1 float64, g *Grid) (float64, error) {
	var p Projector
	return p.Project(x0, y0, x1, y1, g)
}

// Projector computes ray projections through grids.
// Internal buffers grow as needed but never shrink, so that a Projector
// which is reused for many rays does not allocate in steady state.
//
// A Projector is not safe for concurrent use.
type Projector struct {
	alphaX []float64 // crossings with the grid lines x = 0, ..., Rows
	alphaY []float64 // crossings with the grid lines y = 0, ..., Cols
	alpha  []float64 // merged breakpoints, ascending
}

// Project returns the line integral of g along the ray from (x0, y0) to
// (x1, y1). Rays which miss the grid give 0.
func (p *Projector) Project(x0, y0, x1, y1 float64, g *Grid) (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}

	var sum float64
	err := p.Trace(x0, y0, x1, y1, g.Rows, g.Cols, func(row, col int, length float64) {
		sum += length * g.Data[row*g.Cols+col]
	})
	if err != nil {
		return 0, err
	}
	return sum, nil
}

// Trace walks the ray from (x0, y0) to (x1, y1) through a grid with the
// given extents. The emit callback is called once for every cell the ray
// passes through, in ray order, with the length of the ray inside that
// cell. Cells which the ray only touches in a single point are not
// reported.
func (p *Projector) Trace(x0, y0, x1, y1 float64, rows, cols int, emit func(row, col int, length float64)) error {
	if err := checkExtents(rows, cols); err != nil {
		return err
	}
	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		return fmt.Errorf("%w: (%g, %g) → (%g, %g)", ErrNonFinite, x0, y0, x1, y1)
	}

	dx := x1 - x0
	dy := y1 - y0
	if !isFinite(dx) || !isFinite(dy) {
		return fmt.Errorf("%w: extent of (%g, %g) → (%g, %g) overflows",
			ErrNonFinite, x0, y0, x1, y1)
	}

	var inside bool
	p.alphaX, inside = gridAlphas(p.alphaX[:0], x0, dx, rows)
	if !inside {
		return nil
	}
	p.alphaY, inside = gridAlphas(p.alphaY[:0], y0, dy, cols)
	if !inside {
		return nil
	}

	a0, a1 := validRange(p.alphaX, p.alphaY)
	if a0 >= a1 {
		return nil
	}

	ax := clipAlphas(p.alphaX, a0, a1)
	ay := clipAlphas(p.alphaY, a0, a1)
	p.alpha = mergeBreakpoints(p.alpha[:0], ax, ay, a0, a1)

	xa, ya := x0+p.alpha[0]*dx, y0+p.alpha[0]*dy
	for k := 1; k < len(p.alpha); k++ {
		xb, yb := x0+p.alpha[k]*dx, y0+p.alpha[k]*dy
		length := math.Hypot(xb-xa, yb-ya)
		xa, ya = xb, yb
		if length <= zeroLengthThreshold {
			continue
		}

		mid := (p.alpha[k-1] + p.alpha[k]) / 2
		row, col, ok := cellOf(x0+mid*dx, y0+mid*dy, rows, cols)
		if !ok {
			Logger().Debug("segment outside grid",
				"row", row, "col", col, "length", length)
			continue
		}
		emit(row, col, length)
	}
	return nil
}

// gridAlphas appends to buf the ray parameters at which the coordinate
// start + α·d crosses the grid lines 0, 1, ..., n. The result is
// ascending if d > 0 and descending if d < 0.
//
// If d is zero, the ray runs parallel to the grid lines and crosses none
// of them. In this case no values are appended, and inside reports
// whether the ray lies within the half-open band [0, n). A ray on the
// line k is assigned to the cells with index k.
func gridAlphas(buf []float64, start, d float64, n int) (alphas []float64, inside bool) {
	if d == 0 {
		return buf, start >= 0 && start < float64(n)
	}
	for line := 0; line <= n; line++ {
		buf = append(buf, (float64(line)-start)/d)
	}
	return buf, true
}

// validRange returns the interval [a0, a1] of ray parameters for which the
// ray is inside the bounding box of the grid. An empty alpha sequence
// places no restriction on the range. The range is empty if a0 >= a1.
func validRange(alphaX, alphaY []float64) (a0, a1 float64) {
	a0, a1 = 0, 1
	for _, alphas := range [2][]float64{alphaX, alphaY} {
		if len(alphas) == 0 {
			continue
		}
		first, last := alphas[0], alphas[len(alphas)-1]
		a0 = max(a0, min(first, last))
		a1 = min(a1, max(first, last))
	}
	return a0, a1
}

// clipAlphas returns the values of the monotonic sequence alphas which
// lie in [a0, a1], in ascending order. A descending sequence is reversed
// in place.
func clipAlphas(alphas []float64, a0, a1 float64) []float64 {
	if len(alphas) > 1 && alphas[0] > alphas[len(alphas)-1] {
		slices.Reverse(alphas)
	}
	lo, _ := slices.BinarySearch(alphas, a0)
	hi := lo
	for hi < len(alphas) && alphas[hi] <= a1 {
		hi++
	}
	return alphas[lo:hi]
}

// mergeBreakpoints appends the breakpoint sequence a0, merge(ax, ay), a1
// to buf. Both ax and ay must be ascending and lie in [a0, a1].
// Equal values are kept; where ax and ay tie, the value from ax comes
// first.
func mergeBreakpoints(buf, ax, ay []float64, a0, a1 float64) []float64 {
	buf = append(buf, a0)
	i, j := 0, 0
	for i < len(ax) && j < len(ay) {
		if ay[j] < ax[i] {
			buf = append(buf, ay[j])
			j++
		} else {
			buf = append(buf, ax[i])
			i++
		}
	}
	buf = append(buf, ax[i:]...)
	buf = append(buf, ay[j:]...)
	return append(buf, a1)
}

// cellOf returns the indices of the cell containing the point (x, y).
// ok is false if the point lies outside the rows×cols grid; this only
// happens through rounding, for segments touching the grid boundary.
func cellOf(x, y float64, rows, cols int) (row, col int, ok bool) {
	fx, fy := math.Floor(x), math.Floor(y)
	ok = fx >= 0 && fx < float64(rows) && fy >= 0 && fy < float64(cols)
	return int(fx), int(fy), ok
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Numerical tolerances for the projector.
const (
	// zeroLengthThreshold is the largest segment length which is treated
	// as zero. Such segments arise where the ray passes through a grid
	// corner, or touches the grid in a single point, and are skipped.
	zeroLengthThreshold = 1e-12
)
