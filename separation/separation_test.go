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

package separation

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/halftone/raster"
)

type cmyk struct{ C, M, Y, K uint8 }

func TestRGBToCMYK(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b uint8
		want    cmyk
	}{
		{"white", 255, 255, 255, cmyk{0, 0, 0, 0}},
		{"black", 0, 0, 0, cmyk{255, 255, 255, 255}},
		{"red", 255, 0, 0, cmyk{0, 255, 255, 0}},
		{"cyan", 0, 255, 255, cmyk{255, 0, 0, 0}},
		{"mid_gray", 128, 128, 128, cmyk{0, 0, 0, 127}},
		{"dark_red", 128, 0, 0, cmyk{0, 255, 255, 127}},
		{"orange", 255, 128, 0, cmyk{0, 127, 255, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got cmyk
			got.C, got.M, got.Y, got.K = RGBToCMYK(tc.r, tc.g, tc.b)
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("RGBToCMYK(%d, %d, %d) (-want +got):\n%s", tc.r, tc.g, tc.b, d)
			}
		})
	}
}

func TestCMYKToRGB(t *testing.T) {
	cases := []struct {
		in      cmyk
		r, g, b uint8
	}{
		{cmyk{0, 0, 0, 0}, 255, 255, 255},
		{cmyk{0, 0, 0, 255}, 0, 0, 0},
		{cmyk{255, 255, 255, 0}, 0, 0, 0},
		{cmyk{255, 0, 0, 0}, 0, 255, 255},
		{cmyk{0, 0, 0, 127}, 128, 128, 128},
	}
	for _, tc := range cases {
		r, g, b := CMYKToRGB(tc.in.C, tc.in.M, tc.in.Y, tc.in.K)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("CMYKToRGB(%v) = %d, %d, %d, want %d, %d, %d",
				tc.in, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				if r == 0 && g == 0 && b == 0 {
					continue
				}
				c, m, y, k := RGBToCMYK(uint8(r), uint8(g), uint8(b))
				r2, g2, b2 := CMYKToRGB(c, m, y, k)
				if absDiff(r, r2) > 1 || absDiff(g, g2) > 1 || absDiff(b, b2) > 1 {
					t.Fatalf("(%d, %d, %d) -> (%d, %d, %d, %d) -> (%d, %d, %d)",
						r, g, b, c, m, y, k, r2, g2, b2)
				}
			}
		}
	}
}

func absDiff(a int, b uint8) int {
	d := a - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestSeparate(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 21))
	img.SetNRGBA(10, 20, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(11, 20, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(12, 20, color.NRGBA{R: 128, G: 128, B: 128, A: 0})

	sep, err := Separate(img)
	if err != nil {
		t.Fatal(err)
	}
	for _, ch := range []*image.Gray{sep.C, sep.M, sep.Y, sep.K} {
		if ch.Rect != image.Rect(0, 0, 3, 1) {
			t.Fatalf("channel bounds %v", ch.Rect)
		}
	}
	got := [][]uint8{sep.C.Pix, sep.M.Pix, sep.Y.Pix, sep.K.Pix}
	want := [][]uint8{
		{0, 0, 0},
		{0, 255, 0},
		{0, 255, 0},
		{0, 0, 127},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected separation (-want +got):\n%s", d)
	}
}

func TestSeparateGeneric(t *testing.T) {
	// A gray image goes through the generic colour model path.
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.Pix[3] = 255
	sep, err := Separate(img)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]uint8{255, 255, 255, 0}, sep.K.Pix); d != "" {
		t.Errorf("unexpected black plate (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]uint8{255, 255, 255, 0}, sep.C.Pix); d != "" {
		t.Errorf("unexpected cyan plate (-want +got):\n%s", d)
	}
}

func TestMergeWithoutBlack(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 30, G: 30, B: 30, A: 255})
	sep, err := Separate(img)
	if err != nil {
		t.Fatal(err)
	}

	base, err := Merge(sep.C, sep.M, sep.Y, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Without black, the brightest channel becomes 255 and the others keep
	// their ratio to it.
	want := []uint8{
		255, 127, 64, 255,
		255, 255, 255, 255,
	}
	if d := cmp.Diff(want, base.Pix); d != "" {
		t.Errorf("unexpected base (-want +got):\n%s", d)
	}

	full, err := Merge(sep.C, sep.M, sep.Y, sep.K)
	if err != nil {
		t.Fatal(err)
	}
	for i := range 2 {
		for c := range 3 {
			if absDiff(int(img.Pix[4*i+c]), full.Pix[4*i+c]) > 1 {
				t.Errorf("pixel %d channel %d: %d != %d", i, c, full.Pix[4*i+c], img.Pix[4*i+c])
			}
		}
	}
}

func TestMergeErrors(t *testing.T) {
	a := image.NewGray(image.Rect(0, 0, 4, 4))
	b := image.NewGray(image.Rect(0, 0, 4, 5))
	if _, err := Merge(a, b, a, nil); !errors.Is(err, raster.ErrGeometry) {
		t.Errorf("size mismatch: got %v, want ErrGeometry", err)
	}
	rgba := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if _, err := Merge(a, a, rgba, nil); !errors.Is(err, raster.ErrChannels) {
		t.Errorf("colour channel: got %v, want ErrChannels", err)
	}
	if _, err := Merge(nil, nil, nil, nil); !errors.Is(err, raster.ErrGeometry) {
		t.Errorf("no channels: got %v, want ErrGeometry", err)
	}
	if _, err := Separate(image.NewNRGBA(image.Rectangle{})); !errors.Is(err, raster.ErrGeometry) {
		t.Errorf("empty image: got %v, want ErrGeometry", err)
	}
}

func TestFlat(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 200, B: 240, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{R: 230, G: 230, B: 240, A: 255})

	sep, err := Separate(img)
	if err != nil {
		t.Fatal(err)
	}
	out, err := sep.Flat(0.3)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{
		255, 178, 178, 255, // magenta and yellow above the threshold
		178, 178, 255, 255, // cyan and magenta at 43 reach 43/0.3 >= 128
		255, 255, 255, 255, // 11/0.3 stays below the threshold
	}
	if d := cmp.Diff(want, out.Pix); d != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", d)
	}

	for _, intensity := range []float64{0, -0.5, 1.5} {
		if _, err := sep.Flat(intensity); !errors.Is(err, ErrIntensity) {
			t.Errorf("intensity %g: got %v, want ErrIntensity", intensity, err)
		}
	}
}
