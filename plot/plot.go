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

// Package plot draws grids, beams and points.
//
// A [Figure] shows a rectangular region of the plane in grid coordinates,
// with x increasing to the right and y increasing upwards. Grid cells are
// shaded from white (zero) to black (the largest value in the grid).
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/xray"
	"seehuhn.de/go/xray/beam"
	"seehuhn.de/go/xray/internal/raster"
)

// ErrFigure is returned when a figure cannot be drawn.
var ErrFigure = errors.New("invalid figure")

// Figure collects the elements of a plot.
type Figure struct {
	// Box is the region shown, in grid coordinates.
	Box rect.Rect

	// Width and Height give the size of the output in pixels (PNG) or
	// points (PDF).
	Width, Height int

	// LineWidth is the width of beams, in pixels.
	LineWidth float64

	// MarkerSize is the radius of point markers, in pixels.
	MarkerSize float64

	// Background, if set, is drawn underneath the beams and points.
	Background *xray.Grid

	points []vec.Vec2
	lines  []beam.Beam
}

// NewFigure returns an empty 512×512 figure showing box.
func NewFigure(box rect.Rect) *Figure {
	return &Figure{
		Box:        box,
		Width:      512,
		Height:     512,
		LineWidth:  1.5,
		MarkerSize: 3,
	}
}

// ForGrid returns a figure showing g with a margin of half a cell.
// The size of the output is chosen so that each cell covers scale×scale
// pixels.
func ForGrid(g *xray.Grid, scale float64) *Figure {
	box := beam.GridBox(g)
	box.LLx -= 0.5
	box.LLy -= 0.5
	box.URx += 0.5
	box.URy += 0.5

	f := NewFigure(box)
	f.Background = g
	f.Width = int(math.Ceil((box.URx - box.LLx) * scale))
	f.Height = int(math.Ceil((box.URy - box.LLy) * scale))
	return f
}

// AddPoints adds point markers to the figure.
func (f *Figure) AddPoints(pts ...vec.Vec2) {
	f.points = append(f.points, pts...)
}

// AddLines adds beams to the figure.
func (f *Figure) AddLines(lines ...beam.Beam) {
	f.lines = append(f.lines, lines...)
}

// Render draws the figure into a grayscale image.
func (f *Figure) Render() (*image.Gray, error) {
	if err := f.check(); err != nil {
		return nil, err
	}

	w, h := f.Width, f.Height
	acc := make([]float64, w*h)
	for i := range acc {
		acc[i] = 1
	}

	toDevice := f.deviceMatrix()
	r := raster.NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})

	// The cells partition the plane, so their coverage adds up.
	if g := f.Background; g != nil {
		r.CTM = toDevice
		f.eachCell(func(cell path.Path, shade float64) {
			r.Fill(cell, func(y, xMin int, coverage []float64) {
				row := acc[y*w+xMin:]
				for k, c := range coverage {
					row[k] -= shade * c
				}
			})
		})
		r.CTM = matrix.Identity
	}

	paint := func(y, xMin int, coverage []float64) {
		row := acc[y*w+xMin:]
		for k, c := range coverage {
			row[k] *= 1 - c
		}
	}
	for _, l := range f.lines {
		a := apply(toDevice, l.Src)
		b := apply(toDevice, l.Dst)
		r.Fill(raster.Segment(a, b, f.LineWidth), paint)
	}
	for _, p := range f.points {
		r.Fill(raster.Circle(apply(toDevice, p), f.MarkerSize), paint)
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		row := img.Pix[y*img.Stride:]
		for x, v := range acc[y*w : (y+1)*w] {
			row[x] = uint8(math.Round(min(max(v, 0), 1) * 255))
		}
	}
	return img, nil
}

// WritePNG renders the figure and writes it to w in PNG format.
func (f *Figure) WritePNG(w io.Writer) error {
	img, err := f.Render()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WritePDF writes the figure to a single-page PDF file. One pixel of the
// PNG output corresponds to one PDF point.
func (f *Figure) WritePDF(filename string) error {
	if err := f.check(); err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(f.Width),
		URy: float64(f.Height),
	}
	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	toPage := f.pageMatrix()
	draw := func(p path.Path) {
		for cmd, pts := range p {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, float64(f.Width), float64(f.Height))
	page.Fill()

	if f.Background != nil {
		f.eachCell(func(cell path.Path, shade float64) {
			page.SetFillColor(color.DeviceGray(1 - shade))
			draw(transformPath(toPage, cell))
			page.Fill()
		})
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(f.LineWidth)
	page.SetLineCap(graphics.LineCapButt)
	for _, l := range f.lines {
		a := apply(toPage, l.Src)
		b := apply(toPage, l.Dst)
		page.MoveTo(a.X, a.Y)
		page.LineTo(b.X, b.Y)
		page.Stroke()
	}

	page.SetFillColor(color.DeviceGray(0))
	for _, p := range f.points {
		draw(raster.Circle(apply(toPage, p), f.MarkerSize))
		page.Fill()
	}

	return page.Close()
}

// eachCell calls fn for every background cell with a positive value,
// passing the outline of the cell in grid coordinates and its shade in
// [0, 1].
func (f *Figure) eachCell(fn func(cell path.Path, shade float64)) {
	g := f.Background
	top := g.Max()
	if !(top > 0) {
		return
	}
	for i := range g.Rows {
		x := float64(i)
		for j := range g.Cols {
			v := g.At(i, j)
			if !(v > 0) {
				continue
			}
			y := float64(j)
			cell := raster.Polygon(
				vec.Vec2{X: x, Y: y}, vec.Vec2{X: x + 1, Y: y},
				vec.Vec2{X: x + 1, Y: y + 1}, vec.Vec2{X: x, Y: y + 1},
			)
			fn(cell, min(v/top, 1))
		}
	}
}

func (f *Figure) check() error {
	b := f.Box
	if !(b.URx > b.LLx && b.URy > b.LLy) {
		return fmt.Errorf("%w: empty box %v", ErrFigure, b)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: size %d×%d", ErrFigure, f.Width, f.Height)
	}
	if f.Background != nil {
		if err := f.Background.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// deviceMatrix maps grid coordinates to image pixels, where the y axis
// points down.
func (f *Figure) deviceMatrix() matrix.Matrix {
	sx := float64(f.Width) / (f.Box.URx - f.Box.LLx)
	sy := float64(f.Height) / (f.Box.URy - f.Box.LLy)
	return matrix.Matrix{sx, 0, 0, -sy, -sx * f.Box.LLx, float64(f.Height) + sy*f.Box.LLy}
}

// pageMatrix maps grid coordinates to PDF page coordinates, where the y
// axis points up.
func (f *Figure) pageMatrix() matrix.Matrix {
	sx := float64(f.Width) / (f.Box.URx - f.Box.LLx)
	sy := float64(f.Height) / (f.Box.URy - f.Box.LLy)
	return matrix.Matrix{sx, 0, 0, sy, -sx * f.Box.LLx, -sy * f.Box.LLy}
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func transformPath(m matrix.Matrix, p path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		for cmd, pts := range p {
			out := buf[:len(pts)]
			for i, q := range pts {
				out[i] = apply(m, q)
			}
			if !yield(cmd, out) {
				return
			}
		}
	}
}
