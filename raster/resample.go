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

package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"seehuhn.de/go/geom/matrix"
)

// ResizeToWidth scales img to the given width.  The height is chosen to
// preserve the aspect ratio, rounded to the nearest pixel.
//
// Scaling uses the Catmull-Rom kernel on premultiplied colours, so that
// transparent pixels do not bleed dark fringes into their neighbours.
func ResizeToWidth(img image.Image, width int) (*image.NRGBA, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, InvalidGeometry("resize", "empty source %v", b)
	}
	if width <= 0 {
		return nil, InvalidGeometry("resize", "target width %d", width)
	}
	height := HeightForWidth(b.Dx(), b.Dy(), width)

	tmp := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(tmp, tmp.Bounds(), img, b, draw.Src, nil)
	return unpremultiply(tmp), nil
}

// HeightForWidth returns the height of a w×h image scaled to the given
// width.  The result is at least 1.
func HeightForWidth(w, h, width int) int {
	return max(1, int(math.Round(float64(h)*float64(width)/float64(w))))
}

func unpremultiply(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	res := image.NewNRGBA(b)
	for i := 0; i+3 < len(src.Pix); i += 4 {
		a := src.Pix[i+3]
		switch a {
		case 0:
			// fully transparent, leave as zero
		case 255:
			copy(res.Pix[i:i+4], src.Pix[i:i+4])
		default:
			fa := float64(a)
			res.Pix[i] = clamp8(float64(src.Pix[i]) * 255 / fa)
			res.Pix[i+1] = clamp8(float64(src.Pix[i+1]) * 255 / fa)
			res.Pix[i+2] = clamp8(float64(src.Pix[i+2]) * 255 / fa)
			res.Pix[i+3] = a
		}
	}
	return res
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Scale resamples src to w×h pixels using the Catmull-Rom kernel.
func Scale(src *image.Gray, w, h int) *image.Gray {
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(tmp, tmp.Bounds(), src, src.Bounds(), draw.Src, nil)
	return redChannel(tmp)
}

// Transform maps src into a new w×h raster.  The matrix m maps source
// coordinates to destination coordinates, using the convention
//
//	x' = m[0]*x + m[2]*y + m[4]
//	y' = m[1]*x + m[3]*y + m[5]
//
// Destination pixels which do not correspond to a source pixel are zero.
func Transform(src *image.Gray, w, h int, m matrix.Matrix, interp draw.Interpolator) *image.Gray {
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	s2d := f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
	interp.Transform(tmp, s2d, src, src.Bounds(), draw.Src, nil)
	return redChannel(tmp)
}

// redChannel extracts the first channel of an image which was drawn from a
// gray source.  Pixels outside the drawn area have alpha 0 and thus a red
// value of 0.
func redChannel(src *image.RGBA) *image.Gray {
	res := image.NewGray(src.Bounds())
	for i := range res.Pix {
		res.Pix[i] = src.Pix[4*i]
	}
	return res
}

// Rotation returns the matrix which turns the raster counterclockwise by
// deg degrees, as seen on screen with the y-axis pointing down.
func Rotation(deg float64) matrix.Matrix {
	s, c := math.Sincos(deg * math.Pi / 180)
	return matrix.Matrix{c, -s, s, c, 0, 0}
}

// RotateAbout returns the rotation by deg degrees which maps the point
// (sx, sy) to (dx, dy).
func RotateAbout(deg, sx, sy, dx, dy float64) matrix.Matrix {
	m := Rotation(deg)
	m[4] = dx - (m[0]*sx + m[2]*sy)
	m[5] = dy - (m[1]*sx + m[3]*sy)
	return m
}

// RotatedSize returns the size of the smallest canvas which holds a w×h
// raster after rotation by deg degrees.
func RotatedSize(w, h int, deg float64) (int, int) {
	if isQuarterTurn(deg, 0) {
		return w, h
	}
	if isQuarterTurn(deg, 90) {
		return h, w
	}
	s, c := math.Sincos(deg * math.Pi / 180)
	s, c = math.Abs(s), math.Abs(c)
	fw, fh := float64(w), float64(h)
	rw := int(math.Ceil(fw*c + fh*s - 1e-9))
	rh := int(math.Ceil(fw*s + fh*c - 1e-9))
	return max(rw, 1), max(rh, 1)
}

// isQuarterTurn reports whether deg equals base modulo 180.
func isQuarterTurn(deg, base float64) bool {
	return math.Mod(math.Abs(deg-base), 180) == 0
}

// Rotate turns src counterclockwise by deg degrees around its centre.
// The canvas grows so that no source pixel is clipped.
func Rotate(src *image.Gray, deg float64) *image.Gray {
	b := src.Bounds()
	if math.Mod(deg, 360) == 0 {
		return Clone(src)
	}
	w, h := RotatedSize(b.Dx(), b.Dy(), deg)
	m := RotateAbout(deg,
		float64(b.Min.X)+float64(b.Dx())/2, float64(b.Min.Y)+float64(b.Dy())/2,
		float64(w)/2, float64(h)/2)
	return Transform(src, w, h, m, draw.CatmullRom)
}

// Shift moves the contents of src horizontally by dx pixels.
// The size of the raster is unchanged; uncovered pixels are zero.
func Shift(src *image.Gray, dx float64) *image.Gray {
	b := src.Bounds()
	if dx == 0 {
		return Clone(src)
	}
	m := matrix.Translate(dx-float64(b.Min.X), -float64(b.Min.Y))
	return Transform(src, b.Dx(), b.Dy(), m, draw.BiLinear)
}

// Pad surrounds src with a zero border which is n pixels wide.
func Pad(src *image.Gray, n int) *image.Gray {
	b := src.Bounds()
	res := image.NewGray(image.Rect(0, 0, b.Dx()+2*n, b.Dy()+2*n))
	draw.Draw(res, b.Sub(b.Min).Add(image.Pt(n, n)), src, b.Min, draw.Src)
	return res
}

// CropCenter cuts a w×h raster from the middle of src.  When the size
// difference is odd, the extra pixel is removed on the right or at the
// bottom.
func CropCenter(src *image.Gray, w, h int) (*image.Gray, error) {
	b := src.Bounds()
	if w <= 0 || h <= 0 || w > b.Dx() || h > b.Dy() {
		return nil, InvalidGeometry("crop", "%dx%d from %dx%d", w, h, b.Dx(), b.Dy())
	}
	x0 := b.Min.X + (b.Dx()-w)/2
	y0 := b.Min.Y + (b.Dy()-h)/2
	res := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(res, res.Bounds(), src, image.Pt(x0, y0), draw.Src)
	return res, nil
}

// Shrink reduces src by an integer factor, averaging each f×f block of
// pixels.  Incomplete blocks at the right and bottom edge are dropped.
func Shrink(src *image.Gray, f int) (*image.Gray, error) {
	b := src.Bounds()
	if f <= 0 {
		return nil, InvalidGeometry("shrink", "factor %d", f)
	}
	w, h := b.Dx()/f, b.Dy()/f
	if w == 0 || h == 0 {
		return nil, InvalidGeometry("shrink", "%dx%d by %d", b.Dx(), b.Dy(), f)
	}
	if f == 1 {
		return Clone(src), nil
	}

	res := image.NewGray(image.Rect(0, 0, w, h))
	sums := make([]int, w)
	half := f * f / 2
	for y := range h {
		clear(sums)
		for dy := range f {
			row := src.Pix[(y*f+dy)*src.Stride:]
			for x := range w {
				block := row[x*f : x*f+f]
				s := 0
				for _, v := range block {
					s += int(v)
				}
				sums[x] += s
			}
		}
		out := res.Pix[y*res.Stride:]
		for x, s := range sums {
			out[x] = uint8((s + half) / (f * f))
		}
	}
	return res, nil
}

// Clone returns a copy of src with origin (0, 0).
func Clone(src *image.Gray) *image.Gray {
	b := src.Bounds()
	res := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(res, res.Bounds(), src, b.Min, draw.Src)
	return res
}
