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
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/halftone"

	"seehuhn.de/go/halftone/raster"
)

// ErrSpotFunction is returned by [FromType1] for halftones whose spot
// function does not produce round dots.
var ErrSpotFunction = errors.New("unsupported spot function")

// FromType1 converts a PDF type 1 halftone dictionary into a screen for a
// raster with the given resolution in pixels per inch.
//
// Only round-dot spot functions are supported.  A missing spot function is
// treated as SimpleDot.  The supersampling factor is taken from [Default].
func FromType1(h *halftone.Type1, dpi float64) (Screen, error) {
	const op = "type 1 halftone"
	if h.Frequency <= 0 || math.IsInf(h.Frequency, 0) {
		return Screen{}, raster.InvalidGeometry(op, "frequency %g", h.Frequency)
	}
	if dpi <= 0 {
		return Screen{}, raster.InvalidGeometry(op, "resolution %g", dpi)
	}
	switch h.SpotFunction {
	case nil, halftone.SimpleDot, halftone.Round:
		// pass
	default:
		return Screen{}, fmt.Errorf("%s: %w", op, ErrSpotFunction)
	}

	pitch := int(math.Round(dpi / h.Frequency))
	if pitch < 1 {
		return Screen{}, raster.InvalidGeometry(op,
			"%g cells per inch at %g dpi", h.Frequency, dpi)
	}
	return Screen{
		Angle:       h.Angle,
		Pitch:       pitch,
		Supersample: Default.Supersample,
	}, nil
}

// WritePDF writes the screen for band as vector graphics to a single-page
// PDF file.  One pixel of band corresponds to one PDF point, and the dots
// are filled with black DeviceCMYK ink.
func WritePDF(w io.Writer, band image.Image, s Screen) error {
	l, err := NewLattice(band, s)
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(l.srcW),
		URy: float64(l.srcH),
	}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has the origin in the bottom-left corner, rasters in the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(l.srcH)})
	page.Transform(l.ToBand())

	page.SetFillColor(pdfcolor.DeviceCMYK(0, 0, 0, 1))
	n := 0
	for dot := range l.Dots() {
		x, y, r := dot.Center.X, dot.Center.Y, dot.Diameter/2
		k := r * kappa
		page.MoveTo(x+r, y)
		page.CurveTo(x+r, y-k, x+k, y-r, x, y-r)
		page.CurveTo(x-k, y-r, x-r, y-k, x-r, y)
		page.CurveTo(x-r, y+k, x-k, y+r, x, y+r)
		page.CurveTo(x+k, y+r, x+r, y+k, x+r, y)
		page.ClosePath()
		n++
	}
	if n > 0 {
		page.Fill()
	}

	return page.Close()
}
