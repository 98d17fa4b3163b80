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

package screen

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pdf/graphics/halftone"

	"seehuhn.de/go/halftone/raster"
)

func uniform(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// meanCoverage returns the average mask value in the central part of img,
// as a fraction of full ink.
func meanCoverage(img *image.Gray, margin int) float64 {
	b := img.Rect
	var sum, n float64
	for y := b.Min.Y + margin; y < b.Max.Y-margin; y++ {
		for x := b.Min.X + margin; x < b.Max.X-margin; x++ {
			sum += float64(img.GrayAt(x, y).Y)
			n++
		}
	}
	return sum / n / 255
}

func TestRenderSize(t *testing.T) {
	for _, s := range []Screen{
		Default,
		{Angle: 15, Pitch: 4, Supersample: 4},
		{Angle: 45, Pitch: 6, Supersample: 2},
		{Angle: 75, Pitch: 3, Supersample: 3},
		{Angle: 90, Pitch: 5, Supersample: 1},
		{Angle: -30, Pitch: 1, Supersample: 5},
	} {
		for _, size := range []image.Point{{1, 1}, {7, 3}, {40, 25}, {13, 60}} {
			band := uniform(size.X, size.Y, 200)
			mask, err := Render(band, s)
			if err != nil {
				t.Errorf("%v %v: %v", s, size, err)
				continue
			}
			if got := mask.Rect.Size(); got != size {
				t.Errorf("%v: mask size %v, want %v", s, got, size)
			}
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	for _, angle := range []float64{0, 45} {
		s := Default
		s.Angle = angle
		mask, err := Render(uniform(50, 30, 0), s)
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range mask.Pix {
			if v != 0 {
				t.Fatalf("angle %g: pixel %d has value %d", angle, i, v)
			}
		}
	}
}

// TestRenderCoverage compares the ink coverage away from the borders with
// the area of the dots.  On the triangular lattice, a dot of diameter d
// covers the fraction pi/(2*sqrt(3)) * (d/pitch)^2 of its cell.
func TestRenderCoverage(t *testing.T) {
	prev := -1.0
	for _, v := range []uint8{32, 64, 128, 192, 255} {
		mask, err := Render(uniform(200, 200, v), Default)
		if err != nil {
			t.Fatal(err)
		}
		got := meanCoverage(mask, 40)
		r := float64(v) / 255
		want := math.Pi / (2 * math.Sqrt(3)) * r * r
		if math.Abs(got-want) > 0.04 {
			t.Errorf("intensity %d: coverage %.4f, want %.4f", v, got, want)
		}
		if got <= prev {
			t.Errorf("intensity %d: coverage %.4f not above %.4f", v, got, prev)
		}
		prev = got
	}
}

func TestRenderRotatedCoverage(t *testing.T) {
	s := Default
	s.Angle = 30
	mask, err := Render(uniform(160, 160, 255), s)
	if err != nil {
		t.Fatal(err)
	}
	got := meanCoverage(mask, 30)
	want := math.Pi / (2 * math.Sqrt(3))
	if math.Abs(got-want) > 0.05 {
		t.Errorf("coverage %.4f, want %.4f", got, want)
	}
}

func TestRenderErrors(t *testing.T) {
	band := uniform(10, 10, 128)
	for _, s := range []Screen{
		{Pitch: 0, Supersample: 10},
		{Pitch: -1, Supersample: 10},
		{Pitch: 4, Supersample: 0},
	} {
		if _, err := Render(band, s); !errors.Is(err, raster.ErrGeometry) {
			t.Errorf("%v: got %v, want ErrGeometry", s, err)
		}
	}

	rgb := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	if _, err := Render(rgb, Default); !errors.Is(err, raster.ErrChannels) {
		t.Errorf("colour input: got %v, want ErrChannels", err)
	}
	if _, err := Render(image.NewGray(image.Rectangle{}), Default); !errors.Is(err, raster.ErrGeometry) {
		t.Errorf("empty input: got %v, want ErrGeometry", err)
	}
}

// TestLatticeStagger checks that dot centres lie on the triangular lattice.
func TestLatticeStagger(t *testing.T) {
	s := Screen{Pitch: 6, Supersample: 1}
	l, err := NewLattice(uniform(60, 40, 255), s)
	if err != nil {
		t.Fatal(err)
	}

	p := float64(s.Pitch)
	cellH := p * math.Sqrt(3) / 2
	const eps = 1e-9
	var count int
	seen := map[int]bool{}
	for dot := range l.Dots() {
		count++
		row := dot.Center.Y/cellH - 0.5
		j := math.Round(row)
		if math.Abs(row-j) > eps {
			t.Fatalf("dot %v is between rows", dot.Center)
		}
		offs := 0.0
		if int(j)%2 == 1 {
			offs = p / 2
		}
		col := (dot.Center.X-offs)/p - 0.5
		if math.Abs(col-math.Round(col)) > eps {
			t.Fatalf("dot %v in row %d is off the grid", dot.Center, int(j))
		}
		if dot.Diameter <= 0 || dot.Diameter > p+eps {
			t.Errorf("dot %v has diameter %g", dot.Center, dot.Diameter)
		}
		seen[int(j)%2] = true
	}
	if count == 0 || !seen[0] || !seen[1] {
		t.Errorf("got %d dots, rows seen %v", count, seen)
	}
	if l.Cols() != 12 || l.Rows() != 10 {
		t.Errorf("lattice has %d×%d cells, want 12×10", l.Cols(), l.Rows())
	}
}

func TestLatticeToBand(t *testing.T) {
	for _, angle := range []float64{0, 20, 90, 135} {
		l, err := NewLattice(uniform(50, 20, 100), Screen{Angle: angle, Pitch: 4, Supersample: 1})
		if err != nil {
			t.Fatal(err)
		}
		m := l.ToBand()
		cx := float64(l.Width) / 2
		cy := float64(l.Height) / 2
		x := m[0]*cx + m[2]*cy + m[4]
		y := m[1]*cx + m[3]*cy + m[5]
		if math.Abs(x-25) > 1e-9 || math.Abs(y-10) > 1e-9 {
			t.Errorf("angle %g: centre maps to (%g, %g)", angle, x, y)
		}
	}
}

func TestFromType1(t *testing.T) {
	type testCase struct {
		h   *halftone.Type1
		dpi float64
		out Screen
		err error
	}
	cases := []testCase{
		{
			h:   &halftone.Type1{Frequency: 60, Angle: 45, SpotFunction: halftone.Round},
			dpi: 240,
			out: Screen{Angle: 45, Pitch: 4, Supersample: Default.Supersample},
		},
		{
			h:   &halftone.Type1{Frequency: 100, Angle: 15},
			dpi: 300,
			out: Screen{Angle: 15, Pitch: 3, Supersample: Default.Supersample},
		},
		{
			h:   &halftone.Type1{Frequency: 50, SpotFunction: halftone.SimpleDot},
			dpi: 72,
			out: Screen{Angle: 0, Pitch: 1, Supersample: Default.Supersample},
		},
		{
			h:   &halftone.Type1{Frequency: 60, SpotFunction: halftone.Line},
			dpi: 240,
			err: ErrSpotFunction,
		},
		{
			h:   &halftone.Type1{Frequency: 0},
			dpi: 240,
			err: raster.ErrGeometry,
		},
		{
			h:   &halftone.Type1{Frequency: 600},
			dpi: 240,
			err: raster.ErrGeometry,
		},
		{
			h:   &halftone.Type1{Frequency: 60},
			dpi: 0,
			err: raster.ErrGeometry,
		},
	}
	for i, c := range cases {
		out, err := FromType1(c.h, c.dpi)
		if c.err != nil {
			if !errors.Is(err, c.err) {
				t.Errorf("%d: got error %v, want %v", i, err, c.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if d := cmp.Diff(c.out, out); d != "" {
			t.Errorf("%d: unexpected screen (-want +got):\n%s", i, d)
		}
	}
}

func TestWritePDF(t *testing.T) {
	band := image.NewGray(image.Rect(0, 0, 40, 30))
	for y := range 30 {
		for x := range 40 {
			band.SetGray(x, y, color.Gray{Y: uint8(6 * x)})
		}
	}

	for _, v := range []*image.Gray{band, uniform(10, 10, 0)} {
		buf := &bytes.Buffer{}
		err := WritePDF(buf, v, Screen{Angle: 45, Pitch: 4, Supersample: 1})
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Errorf("output does not start with a PDF header")
		}
	}

	err := WritePDF(&bytes.Buffer{}, band, Screen{Pitch: 0, Supersample: 1})
	if !errors.Is(err, raster.ErrGeometry) {
		t.Errorf("got %v, want ErrGeometry", err)
	}
}

func TestDither(t *testing.T) {
	for _, cell := range []int{1, 2, 3} {
		mask, err := Dither(uniform(40, 30, 128), cell)
		if err != nil {
			t.Fatal(err)
		}
		if got := mask.Rect.Size(); got != (image.Point{40, 30}) {
			t.Errorf("cell %d: mask size %v", cell, got)
		}
		// Error diffusion keeps the mean: 127/255 of the area gets ink.
		if got := meanCoverage(mask, 0); math.Abs(got-127.0/255) > 0.05 {
			t.Errorf("cell %d: coverage %.3f", cell, got)
		}
	}

	white, err := Dither(uniform(20, 20, 255), 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := meanCoverage(white, 0); got != 0 {
		t.Errorf("white: coverage %.3f, want 0", got)
	}
	black, err := Dither(uniform(20, 20, 0), 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := meanCoverage(black, 0); got < 0.99 {
		t.Errorf("black: coverage %.3f, want 1", got)
	}
}

func TestDitherErrors(t *testing.T) {
	if _, err := Dither(uniform(10, 10, 0), 0); !errors.Is(err, raster.ErrGeometry) {
		t.Errorf("cell 0: got %v, want ErrGeometry", err)
	}
	if _, err := Dither(image.NewGray(image.Rectangle{}), 2); !errors.Is(err, raster.ErrGeometry) {
		t.Errorf("empty image: got %v, want ErrGeometry", err)
	}
}
