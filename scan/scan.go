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

// Package scan simulates parallel-beam acquisitions of a grid.
package scan

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/xray"
	"seehuhn.de/go/xray/beam"
)

// ErrGeometry is returned for scan geometries without angles or detectors.
var ErrGeometry = errors.New("invalid scan geometry")

// Parallel describes a parallel-beam scan.
//
// The detector is centred on the grid and spans the diameter of the
// circle circumscribing it, so that every beam which meets the grid is
// recorded at every angle. Angle k is πk/Angles, measured
// counter-clockwise from the x axis.
type Parallel struct {
	Rows, Cols int // extents of the scanned grid
	Angles     int // number of projection angles in [0, π)
	Detectors  int // number of detector bins per angle
}

// Spacing returns the distance between neighbouring detector bins.
func (s Parallel) Spacing() float64 {
	return math.Hypot(float64(s.Rows), float64(s.Cols)) / float64(s.Detectors)
}

// Angle returns the direction of the beams for angle index k.
func (s Parallel) Angle(k int) float64 {
	return math.Pi * float64(k) / float64(s.Angles)
}

// Beams returns the beams of the scan, ordered by angle and then by
// detector bin.
func (s Parallel) Beams() ([]beam.Beam, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	center := vec.Vec2{X: float64(s.Rows) / 2, Y: float64(s.Cols) / 2}
	spacing := s.Spacing()
	reach := math.Hypot(float64(s.Rows), float64(s.Cols))/2 + 1

	beams := make([]beam.Beam, 0, s.Angles*s.Detectors)
	for k := range s.Angles {
		phi := s.Angle(k)
		u := vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}
		n := vec.Vec2{X: -u.Y, Y: u.X}
		for d := range s.Detectors {
			offset := (float64(d) + 0.5 - float64(s.Detectors)/2) * spacing
			mid := center.Add(n.Mul(offset))
			beams = append(beams, beam.Beam{
				Src: mid.Sub(u.Mul(reach)),
				Dst: mid.Add(u.Mul(reach)),
			})
		}
	}
	return beams, nil
}

// Sinogram projects g along all beams of the scan. Row k of the result
// holds the projections for angle k, column d those for detector bin d.
func (s Parallel) Sinogram(g *xray.Grid) (*xray.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Rows != s.Rows || g.Cols != s.Cols {
		return nil, fmt.Errorf("%w: scan of a %d×%d grid applied to a %d×%d grid",
			ErrGeometry, s.Rows, s.Cols, g.Rows, g.Cols)
	}
	beams, err := s.Beams()
	if err != nil {
		return nil, err
	}

	sino, err := xray.NewGrid(s.Angles, s.Detectors)
	if err != nil {
		return nil, err
	}
	var p xray.Projector
	for i, b := range beams {
		v, err := p.Project(b.Src.X, b.Src.Y, b.Dst.X, b.Dst.Y, g)
		if err != nil {
			return nil, err
		}
		sino.Data[i] = v
	}

	xray.Logger().Debug("sinogram computed",
		"angles", s.Angles, "detectors", s.Detectors, "beams", len(beams))
	return sino, nil
}

func (s Parallel) validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: grid extents %d×%d", ErrGeometry, s.Rows, s.Cols)
	}
	if s.Angles <= 0 || s.Detectors <= 0 {
		return fmt.Errorf("%w: %d angles, %d detectors", ErrGeometry, s.Angles, s.Detectors)
	}
	return nil
}
