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
	"fmt"
	"math"
)

var (
	// ErrInvalidGrid is returned when a grid has non-positive extents or
	// its data does not match the extents.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrNonFinite is returned when a ray endpoint is NaN or infinite.
	ErrNonFinite = errors.New("non-finite ray coordinate")
)

// Grid is a regular field of scalar cell values.
//
// Cell (i, j) occupies the unit square [i, i+1) × [j, j+1) in grid
// coordinates, so that the row index i runs along the x axis and the
// column index j along the y axis. Values are stored in row-major order.
type Grid struct {
	Rows, Cols int
	Data       []float64 // Data[i*Cols+j] is the value of cell (i, j)
}

// NewGrid allocates a zero-valued grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if err := checkExtents(rows, cols); err != nil {
		return nil, err
	}
	return &Grid{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}, nil
}

// Uniform returns a grid where every cell has the value v.
func Uniform(rows, cols int, v float64) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.Data {
		g.Data[i] = v
	}
	return g, nil
}

// GridFromRows copies a two-dimensional array into a new grid.
// rows[i][j] becomes the value of cell (i, j). All rows must have the
// same, non-zero length.
func GridFromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	cols := len(rows[0])
	g, err := NewGrid(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrInvalidGrid, i, len(row), cols)
		}
		copy(g.Data[i*cols:], row)
	}
	return g, nil
}

// Validate checks that the grid is usable for projection.
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidGrid)
	}
	if err := checkExtents(g.Rows, g.Cols); err != nil {
		return err
	}
	if len(g.Data) != g.Rows*g.Cols {
		return fmt.Errorf("%w: %d values for %d×%d cells",
			ErrInvalidGrid, len(g.Data), g.Rows, g.Cols)
	}
	return nil
}

// checkExtents verifies that a rows×cols grid is non-empty and that its
// number of cells fits into an int.
func checkExtents(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: extents %d×%d", ErrInvalidGrid, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return fmt.Errorf("%w: %d×%d cells overflow", ErrInvalidGrid, rows, cols)
	}
	return nil
}

// At returns the value of cell (i, j).
func (g *Grid) At(i, j int) float64 {
	return g.Data[i*g.Cols+j]
}

// Set changes the value of cell (i, j).
func (g *Grid) Set(i, j int, v float64) {
	g.Data[i*g.Cols+j] = v
}

// Sum returns the sum of all cell values.
func (g *Grid) Sum() float64 {
	var s float64
	for _, v := range g.Data {
		s += v
	}
	return s
}

// Max returns the largest cell value.
func (g *Grid) Max() float64 {
	m := math.Inf(-1)
	for _, v := range g.Data {
		m = max(m, v)
	}
	return m
}
