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

// Package separation splits RGB images into cyan, magenta, yellow and black
// ink separations, and combines separations back into RGB images.
//
// The conversion is the naive device conversion without colour management:
// black takes the common part of the three inks, and the remaining inks are
// scaled to the range left over by black.
package separation

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/halftone/raster"
)

// ErrIntensity is returned for ink strengths outside (0, 1].
var ErrIntensity = errors.New("ink intensity out of range")

// RGBToCMYK converts one RGB pixel to ink values.
// Pure black maps to full coverage of all four inks.
func RGBToCMYK(r, g, b uint8) (c, m, y, k uint8) {
	w := max(r, g, b)
	if w == 0 {
		return 255, 255, 255, 255
	}

	// With r, g, b normalised to [0, 1] and kk = 1 - max(r, g, b), the
	// cyan value is (1 - r - kk) / (1 - kk) = (w - r) / w.
	fw := float64(w)
	c = round8(255 * float64(w-r) / fw)
	m = round8(255 * float64(w-g) / fw)
	y = round8(255 * float64(w-b) / fw)
	k = 255 - w
	return c, m, y, k
}

// CMYKToRGB converts ink values to an RGB pixel.
func CMYKToRGB(c, m, y, k uint8) (r, g, b uint8) {
	kk := 1 - float64(k)/255
	r = round8(255 * (1 - float64(c)/255) * kk)
	g = round8(255 * (1 - float64(m)/255) * kk)
	b = round8(255 * (1 - float64(y)/255) * kk)
	return r, g, b
}

func round8(v float64) uint8 {
	return uint8(min(max(v+0.5, 0), 255))
}

// Separation holds the four ink channels of an image.
// All channels have the same size and origin (0, 0).
type Separation struct {
	C, M, Y, K *image.Gray
}

// Separate splits img into its four ink channels.  The alpha channel of img
// is ignored.
func Separate(img image.Image) (*Separation, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, raster.InvalidGeometry("separate", "empty image %v", b)
	}
	r := image.Rect(0, 0, b.Dx(), b.Dy())
	sep := &Separation{
		C: image.NewGray(r),
		M: image.NewGray(r),
		Y: image.NewGray(r),
		K: image.NewGray(r),
	}

	src, _ := img.(*image.NRGBA)
	for y := range b.Dy() {
		for x := range b.Dx() {
			var cr, cg, cb uint8
			if src != nil {
				i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
				cr, cg, cb = src.Pix[i], src.Pix[i+1], src.Pix[i+2]
			} else {
				col := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				cr, cg, cb = col.R, col.G, col.B
			}
			i := y*sep.C.Stride + x
			sep.C.Pix[i], sep.M.Pix[i], sep.Y.Pix[i], sep.K.Pix[i] = RGBToCMYK(cr, cg, cb)
		}
	}
	return sep, nil
}

// Merge combines ink channels into an opaque RGB image.  A nil channel is
// treated as containing no ink; this allows to reconstruct the colour of an
// image without its black plate.
func Merge(c, m, y, k image.Image) (*image.NRGBA, error) {
	const op = "merge"

	var chans [4]*image.Gray
	var present []image.Image
	for i, ch := range []image.Image{c, m, y, k} {
		if ch == nil {
			continue
		}
		g, err := raster.AsGray(op, ch)
		if err != nil {
			return nil, err
		}
		chans[i] = g
		present = append(present, g)
	}
	if len(present) == 0 {
		return nil, raster.InvalidGeometry(op, "no channels")
	}
	if err := raster.SameSize(op, present...); err != nil {
		return nil, err
	}

	bounds := present[0].Bounds()
	res := image.NewNRGBA(bounds)
	sample := func(g *image.Gray, x, y int) uint8 {
		if g == nil {
			return 0
		}
		return g.Pix[y*g.Stride+x]
	}
	for y := range bounds.Dy() {
		for x := range bounds.Dx() {
			r, g, b := CMYKToRGB(
				sample(chans[0], x, y), sample(chans[1], x, y),
				sample(chans[2], x, y), sample(chans[3], x, y))
			j := res.PixOffset(x, y)
			res.Pix[j+0] = r
			res.Pix[j+1] = g
			res.Pix[j+2] = b
			res.Pix[j+3] = 255
		}
	}
	return res, nil
}

// Flat reconstructs the colour of s from the cyan, magenta and yellow
// channels printed as solid, undithered inks of reduced strength.  A
// channel gets ink where its value divided by intensity reaches half of
// full coverage; the ink is then applied at intensity times full coverage.
// The black channel is not used.
//
// Intensity must be in the range (0, 1].
func (s *Separation) Flat(intensity float64) (*image.NRGBA, error) {
	if !(intensity > 0 && intensity <= 1) {
		return nil, fmt.Errorf("flat colour: intensity %g: %w", intensity, ErrIntensity)
	}

	ink := round8(255 * intensity)
	plates := make([]image.Image, 3)
	for i, ch := range []*image.Gray{s.C, s.M, s.Y} {
		plate := image.NewGray(ch.Rect)
		for y := range ch.Rect.Dy() {
			src := ch.Pix[y*ch.Stride : y*ch.Stride+ch.Rect.Dx()]
			dst := plate.Pix[y*plate.Stride:]
			for x, v := range src {
				if float64(v)/intensity >= 128 {
					dst[x] = ink
				}
			}
		}
		plates[i] = plate
	}
	return Merge(plates[0], plates[1], plates[2], nil)
}
