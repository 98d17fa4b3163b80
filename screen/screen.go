// seehuhn.de/go/halftone - halftone preview images
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

// Package screen renders halftone dot screens.
//
// A screen turns an intensity grid (0 = no ink, 255 = full ink) into a
// mask of round dots.  Dot centres lie on a triangular lattice: every
// second row is shifted by half the dot pitch and rows are packed
// sqrt(3)/2 times the pitch apart, so that neighbouring dots form
// equilateral triangles.  The lattice can be rotated by an arbitrary screen
// angle.  The diameter of each dot is proportional to the ink intensity
// around the dot centre.
//
// Dots are drawn with hard edges on a supersampled canvas, which is then
// reduced to the target resolution; this gives smooth dot outlines.
package screen

import (
	"image"
	"iter"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/halftone/raster"
)

// Screen describes a halftone screen.
type Screen struct {
	// Angle is the screen angle in degrees, counterclockwise.
	Angle float64

	// Pitch is the distance between neighbouring dot centres, in pixels.
	Pitch int

	// Supersample is the oversampling factor used when drawing the dots.
	Supersample int
}

// Default is the screen used for the black plate of preview images.
var Default = Screen{Angle: 0, Pitch: 4, Supersample: 10}

func (s Screen) check(op string) error {
	if s.Pitch <= 0 {
		return raster.InvalidGeometry(op, "dot pitch %d", s.Pitch)
	}
	if s.Supersample <= 0 {
		return raster.InvalidGeometry(op, "supersampling factor %d", s.Supersample)
	}
	return nil
}

// triangleHeight is the height of an equilateral triangle with unit sides.
var triangleHeight = math.Sqrt(3) / 2

// Dot is a single halftone dot.  Coordinates are given in the padded
// lattice frame, see [Lattice].
type Dot struct {
	Center   vec.Vec2
	Diameter float64
}

// Lattice holds the dot positions and sizes for one intensity grid.
//
// The lattice frame is the grid rotated by -Angle, with the canvas enlarged
// so that no pixel is clipped, and then padded by Pitch pixels on every
// side.
type Lattice struct {
	Screen

	// A and B are the lookup grids, with one sample per lattice cell.  Even
	// rows take their dot sizes from A, odd rows from B.  B is sampled half a
	// pitch to the right of A.
	A, B *image.Gray

	// Width and Height give the size of the lattice frame.
	Width, Height int

	srcW, srcH int // size of the intensity grid
	rotW, rotH int // size of the rotated grid, before padding
}

// NewLattice prepares the dot lattice for the intensity grid band.
func NewLattice(band image.Image, s Screen) (*Lattice, error) {
	const op = "screen"
	if err := s.check(op); err != nil {
		return nil, err
	}
	g, err := raster.AsGray(op, band)
	if err != nil {
		return nil, err
	}

	l := &Lattice{
		Screen: s,
		srcW:   g.Rect.Dx(),
		srcH:   g.Rect.Dy(),
	}

	rotated := raster.Rotate(g, -s.Angle)
	l.rotW, l.rotH = rotated.Rect.Dx(), rotated.Rect.Dy()

	padded := raster.Pad(rotated, s.Pitch)
	l.Width, l.Height = padded.Rect.Dx(), padded.Rect.Dy()

	p := float64(s.Pitch)
	cols := max(1, int(math.Round(float64(l.Width)/p)))
	rows := max(1, int(math.Round(float64(l.Height)/p/triangleHeight)))
	l.A = raster.Scale(padded, cols, rows)
	l.B = raster.Scale(raster.Shift(padded, -p/2), cols, rows)

	return l, nil
}

// Cols returns the number of lattice cells per row.
func (l *Lattice) Cols() int {
	return l.A.Rect.Dx()
}

// Rows returns the number of lattice rows.
func (l *Lattice) Rows() int {
	return l.A.Rect.Dy()
}

// Dots iterates over all dots with non-zero diameter, row by row.
func (l *Lattice) Dots() iter.Seq[Dot] {
	return func(yield func(Dot) bool) {
		p := float64(l.Pitch)
		cellH := p * triangleHeight
		cols, rows := l.Cols(), l.Rows()
		for y := range rows {
			grid, xOffs := l.A, 0.0
			if y%2 == 1 {
				grid, xOffs = l.B, p/2
			}
			row := grid.Pix[y*grid.Stride : y*grid.Stride+cols]
			for x, v := range row {
				if v == 0 {
					continue
				}
				dot := Dot{
					Center: vec.Vec2{
						X: (float64(x)+0.5)*p + xOffs,
						Y: (float64(y) + 0.5) * cellH,
					},
					Diameter: p * float64(v) / 255,
				}
				if !yield(dot) {
					return
				}
			}
		}
	}
}

// ToBand returns the transformation from the lattice frame back to the
// coordinates of the original intensity grid.
func (l *Lattice) ToBand() matrix.Matrix {
	return raster.RotateAbout(l.Angle,
		float64(l.Pitch)+float64(l.rotW)/2, float64(l.Pitch)+float64(l.rotH)/2,
		float64(l.srcW)/2, float64(l.srcH)/2)
}

// Render draws the halftone screen for the intensity grid band.  The
// result has the same size as band.  Inside a dot the mask is 255, away from
// all dots it is 0; dot edges are smoothed by supersampling.
func Render(band image.Image, s Screen) (*image.Gray, error) {
	l, err := NewLattice(band, s)
	if err != nil {
		return nil, err
	}
	return l.Render(nil)
}

// Render draws the dots of the lattice.  If r is non-nil, it is used to
// draw the dots; this allows to reuse the rasteriser buffers between calls.
func (l *Lattice) Render(r *Rasteriser) (*image.Gray, error) {
	ss := l.Supersample
	canvas := image.NewGray(image.Rect(0, 0, l.Width*ss, l.Height*ss))
	clip := rect.Rect{URx: float64(canvas.Rect.Dx()), URy: float64(canvas.Rect.Dy())}
	if r == nil {
		r = NewRasteriser(clip)
	} else {
		r.Reset(clip)
	}
	r.CTM = matrix.Scale(float64(ss), float64(ss))
	drawDots(r, canvas, l.Dots())

	small, err := raster.Shrink(canvas, ss)
	if err != nil {
		return nil, err
	}
	back := raster.Rotate(small, l.Angle)
	return raster.CropCenter(back, l.srcW, l.srcH)
}

// drawDots fills the dots on canvas, without anti-aliasing: a pixel is set
// to 255 if at least half of it is covered by a dot.
func drawDots(r *Rasteriser, canvas *image.Gray, dots iter.Seq[Dot]) {
	emit := func(y, xMin int, coverage []float32) {
		row := canvas.Pix[y*canvas.Stride+xMin:]
		for i, c := range coverage {
			if c >= 0.5 {
				row[i] = 255
			}
		}
	}

	circle := &path.Data{}
	for dot := range dots {
		circle.Cmds = circle.Cmds[:0]
		circle.Coords = circle.Coords[:0]
		addCircle(circle, dot.Center, dot.Diameter/2)
		r.FillNonZero(circle, emit)
	}
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// addCircle appends a closed circle to p, using four cubic Bézier curves.
func addCircle(p *path.Data, c vec.Vec2, radius float64) {
	k := radius * kappa
	x, y, r := c.X, c.Y, radius
	p.MoveTo(vec.Vec2{X: x + r, Y: y}).
		CubeTo(vec.Vec2{X: x + r, Y: y - k}, vec.Vec2{X: x + k, Y: y - r}, vec.Vec2{X: x, Y: y - r}).
		CubeTo(vec.Vec2{X: x - k, Y: y - r}, vec.Vec2{X: x - r, Y: y - k}, vec.Vec2{X: x - r, Y: y}).
		CubeTo(vec.Vec2{X: x - r, Y: y + k}, vec.Vec2{X: x - k, Y: y + r}, vec.Vec2{X: x, Y: y + r}).
		CubeTo(vec.Vec2{X: x + k, Y: y + r}, vec.Vec2{X: x + r, Y: y + k}, vec.Vec2{X: x + r, Y: y}).
		Close()
}
