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

// Package testcases provides synthetic source pictures for testing the
// halftone pipeline.
package testcases

import (
	"image"
	"image/color"
)

// TestCase is a synthetic source picture.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // picture width in pixels
	Height int    // picture height in pixels

	// Paint returns the colour of the pixel at (x, y).
	Paint func(x, y int) color.NRGBA
}

// Image renders the test case.
func (tc TestCase) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, tc.Width, tc.Height))
	for y := range tc.Height {
		for x := range tc.Width {
			img.SetNRGBA(x, y, tc.Paint(x, y))
		}
	}
	return img
}

// solid returns a painter for a uniform opaque colour.
func solid(r, g, b uint8) func(x, y int) color.NRGBA {
	return func(int, int) color.NRGBA {
		return color.NRGBA{R: r, G: g, B: b, A: 255}
	}
}

// gray returns a painter for a uniform opaque gray.
func gray(v uint8) func(x, y int) color.NRGBA {
	return solid(v, v, v)
}
