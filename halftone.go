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

// Package halftone builds the images for a web page from a source picture:
// for every configured width a resized copy, and a "preview" which imitates
// a printed version of the picture.
//
// The preview is made from the cyan, magenta and yellow separations of the
// resized image, recombined into a continuous-tone base image, with the
// black separation drawn on top as a halftone dot screen.
package halftone

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"seehuhn.de/go/halftone/layer"
	"seehuhn.de/go/halftone/raster"
	"seehuhn.de/go/halftone/screen"
	"seehuhn.de/go/halftone/separation"
)

// Size is one output width, with a short label used in file names.
type Size struct {
	Width int
	Label string
}

// DefaultSizes lists the widths used when no sizes are given.
var DefaultSizes = []Size{
	{Width: 920, Label: "lg"},
	{Width: 460, Label: "md"},
}

// Process selects how the preview is printed.
type Process int

const (
	// ProcessKey screens only the black plate.  The other inks are
	// reproduced in continuous tone.
	ProcessKey Process = iota

	// ProcessCMYK screens all four plates, each at its own angle.
	ProcessCMYK

	// ProcessDither prints cyan, magenta and yellow as flat inks of
	// reduced strength, and adds a gray ink layer made by error diffusion
	// of the image brightness on a coarse grid.
	ProcessDither
)

func (p Process) String() string {
	switch p {
	case ProcessKey:
		return "key"
	case ProcessCMYK:
		return "cmyk"
	case ProcessDither:
		return "dither"
	default:
		return fmt.Sprintf("Process(%d)", int(p))
	}
}

// Options controls how preview images are made.
// The zero value is not useful; start from [DefaultOptions].
type Options struct {
	// Screen is the halftone screen for the black plate.  In
	// [ProcessCMYK] mode the angle is replaced by the conventional angle
	// for each plate.
	Screen screen.Screen

	// Ink is the colour of the black plate.
	Ink color.NRGBA

	// Process selects which plates are screened.
	Process Process

	// Intensity is the strength of the flat colour inks in
	// [ProcessDither] mode, in the range (0, 1].
	Intensity float64

	// DitherCell is the size, in pixels, of one cell of the error
	// diffusion grid in [ProcessDither] mode.
	DitherCell int

	// DitherInk is the colour of the dithered layer.
	DitherInk color.NRGBA

	// Compression is the PNG compression level for the outputs of [Build].
	Compression png.CompressionLevel
}

// DefaultOptions returns the options used when a nil *Options is passed:
// the default screen, opaque black ink and only the black plate screened.
func DefaultOptions() Options {
	return Options{
		Screen:      screen.Default,
		Ink:         color.NRGBA{A: 255},
		Process:     ProcessKey,
		Intensity:   0.3,
		DitherCell:  2,
		DitherInk:   color.NRGBA{R: 50, G: 50, B: 50, A: 255},
		Compression: png.DefaultCompression,
	}
}

// processScreens gives the screen angles for the colour plates in
// [ProcessCMYK] mode; the black plate uses 45°.
var processScreens = [3]float64{15, 75, 0}

const processKeyAngle = 45

// Resize scales src to the given width, preserving the aspect ratio.
func Resize(src image.Image, width int) (*image.NRGBA, error) {
	return raster.ResizeToWidth(src, width)
}

// Preview turns img into a halftone preview of the same size.
// If opt is nil, the default options are used.
func Preview(img image.Image, opt *Options) (*image.NRGBA, error) {
	if opt == nil {
		d := DefaultOptions()
		opt = &d
	}

	sep, err := separation.Separate(img)
	if err != nil {
		return nil, err
	}
	if opt.Process == ProcessDither {
		return ditherPreview(img, sep, opt)
	}

	keyScreen := opt.Screen
	var base *image.NRGBA
	switch opt.Process {
	case ProcessCMYK:
		var plates [3]*image.Gray
		for i, band := range []*image.Gray{sep.C, sep.M, sep.Y} {
			s := opt.Screen
			s.Angle = processScreens[i]
			plates[i], err = screen.Render(band, s)
			if err != nil {
				return nil, err
			}
		}
		base, err = separation.Merge(plates[0], plates[1], plates[2], nil)
		keyScreen.Angle = processKeyAngle
	case ProcessKey:
		base, err = separation.Merge(sep.C, sep.M, sep.Y, nil)
	default:
		err = fmt.Errorf("preview: unknown process %s", opt.Process)
	}
	if err != nil {
		return nil, err
	}

	mask, err := screen.Render(sep.K, keyScreen)
	if err != nil {
		return nil, err
	}
	key, err := layer.ToLayer(mask, opt.Ink)
	if err != nil {
		return nil, err
	}
	return layer.Composite(base, key)
}

func ditherPreview(img image.Image, sep *separation.Separation, opt *Options) (*image.NRGBA, error) {
	base, err := sep.Flat(opt.Intensity)
	if err != nil {
		return nil, err
	}
	mask, err := screen.Dither(img, opt.DitherCell)
	if err != nil {
		return nil, err
	}
	gray, err := layer.ToLayer(mask, opt.DitherInk)
	if err != nil {
		return nil, err
	}
	return layer.Composite(base, gray)
}

// Output holds the encoded images for one output size.
type Output struct {
	Size

	// Image is the resized picture, PNG encoded.
	Image []byte

	// Preview is the halftone preview, PNG encoded.
	Preview []byte
}

// FileNames returns the file names for the two images, given the base
// name of the source picture.
func (o *Output) FileNames(base string) (img, preview string) {
	img = base + "-" + o.Label + ".png"
	preview = base + "-" + o.Label + "-preview.png"
	return img, preview
}

// Build makes the resized image and the preview for every size, in the
// order of sizes.  Callers who have no sizes of their own can pass
// [DefaultSizes].  If opt is nil, the default options are used.
//
// The sizes are processed concurrently.  If any of them fails, Build
// returns the first error (in the order of sizes) and no outputs.
func Build(src image.Image, sizes []Size, opt *Options) ([]Output, error) {
	if len(sizes) == 0 {
		return nil, nil
	}
	if opt == nil {
		d := DefaultOptions()
		opt = &d
	}

	res := make([]Output, len(sizes))
	errs := make([]error, len(sizes))
	var wg sync.WaitGroup
	for i, size := range sizes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res[i], errs[i] = buildOne(src, size, opt)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s (%d px): %w", sizes[i].Label, sizes[i].Width, err)
		}
	}
	return res, nil
}

func buildOne(src image.Image, size Size, opt *Options) (Output, error) {
	out := Output{Size: size}

	resized, err := Resize(src, size.Width)
	if err != nil {
		return out, err
	}
	out.Image, err = encode(resized, opt.Compression)
	if err != nil {
		return out, err
	}

	preview, err := Preview(resized, opt)
	if err != nil {
		return out, err
	}
	out.Preview, err = encode(preview, opt.Compression)
	return out, err
}

func encode(img image.Image, level png.CompressionLevel) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := &png.Encoder{CompressionLevel: level}
	if err := enc.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
