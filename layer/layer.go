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

// Package layer turns halftone masks into ink layers and composites
// layers onto images.
package layer

import (
	"image"
	"image/color"

	"seehuhn.de/go/halftone/raster"
)

// ToLayer returns an image of uniform colour ink, whose opacity is given by
// mask.  Where the mask is 0 the layer is fully transparent; where it is 255
// the layer has the opacity of ink.
func ToLayer(mask image.Image, ink color.NRGBA) (*image.NRGBA, error) {
	g, err := raster.AsGray("layer", mask)
	if err != nil {
		return nil, err
	}

	res := image.NewNRGBA(g.Rect)
	for y := range g.Rect.Dy() {
		src := g.Pix[y*g.Stride : y*g.Stride+g.Rect.Dx()]
		dst := res.Pix[y*res.Stride:]
		for x, v := range src {
			a := uint8((uint32(v)*uint32(ink.A) + 127) / 255)
			if a == 0 {
				continue
			}
			dst[4*x+0] = ink.R
			dst[4*x+1] = ink.G
			dst[4*x+2] = ink.B
			dst[4*x+3] = a
		}
	}
	return res, nil
}

// Composite places top over base, using straight alpha blending:
//
//	out.a   = top.a + base.a*(1-top.a)
//	out.rgb = (top.rgb*top.a + base.rgb*base.a*(1-top.a)) / out.a
//
// For an opaque base this reduces to out.rgb = top.rgb*top.a +
// base.rgb*(1-top.a).  Pixels where top is fully transparent are copied
// from base unchanged.
func Composite(base, top *image.NRGBA) (*image.NRGBA, error) {
	const op = "composite"
	if base.Rect.Empty() {
		return nil, raster.InvalidGeometry(op, "empty base %v", base.Rect)
	}
	if err := raster.SameSize(op, base, top); err != nil {
		return nil, err
	}

	w, h := base.Rect.Dx(), base.Rect.Dy()
	res := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		b := base.Pix[y*base.Stride : y*base.Stride+4*w]
		t := top.Pix[y*top.Stride : y*top.Stride+4*w]
		out := res.Pix[y*res.Stride : y*res.Stride+4*w]
		for i := 0; i < 4*w; i += 4 {
			switch t[i+3] {
			case 0:
				copy(out[i:i+4], b[i:i+4])
			case 255:
				copy(out[i:i+4], t[i:i+4])
			default:
				over(out[i:i+4], b[i:i+4], t[i:i+4])
			}
		}
	}
	return res, nil
}

func over(out, base, top []uint8) {
	ta := float64(top[3]) / 255
	ba := float64(base[3]) / 255 * (1 - ta)
	oa := ta + ba
	for c := range 3 {
		v := (float64(top[c])*ta + float64(base[c])*ba) / oa
		out[c] = uint8(min(v+0.5, 255))
	}
	out[3] = uint8(min(oa*255+0.5, 255))
}
