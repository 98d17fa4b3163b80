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
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/halftone/raster"
)

// ditherPalette holds the two levels of a dithered mask.  Index 0 is ink.
var ditherPalette = color.Palette{color.Gray{Y: 0}, color.Gray{Y: 255}}

// Dither returns an ink mask for img, made by Floyd-Steinberg error
// diffusion of the image brightness on a grid which is coarser than img
// by the factor cell.  The mask is scaled back to the size of img, so that
// the dithered dots have smooth edges.  Dark areas of img get ink (255),
// bright areas none.
func Dither(img image.Image, cell int) (*image.Gray, error) {
	const op = "dither"
	b := img.Bounds()
	if b.Empty() {
		return nil, raster.InvalidGeometry(op, "empty image %v", b)
	}
	if cell <= 0 {
		return nil, raster.InvalidGeometry(op, "cell size %d", cell)
	}
	w, h := b.Dx(), b.Dy()

	lum := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(lum, lum.Rect, img, b.Min, draw.Src)

	cw := max(1, int(math.Round(float64(w)/float64(cell))))
	ch := max(1, int(math.Round(float64(h)/float64(cell))))
	small := lum
	if cw != w || ch != h {
		small = raster.Scale(lum, cw, ch)
	}

	pal := image.NewPaletted(small.Rect, ditherPalette)
	draw.FloydSteinberg.Draw(pal, pal.Rect, small, image.Point{})

	mask := image.NewGray(pal.Rect)
	for i, idx := range pal.Pix {
		if idx == 0 {
			mask.Pix[i] = 255
		}
	}
	if cw == w && ch == h {
		return mask, nil
	}
	return raster.Scale(mask, w, h), nil
}
