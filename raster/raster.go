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

// Package raster holds the resampling helpers and error values shared by
// the stages of the halftone pipeline.
//
// Single-channel rasters are represented as [*image.Gray], colour rasters as
// [*image.NRGBA].  All rasters returned by this package have their origin at
// (0, 0).
package raster

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

var (
	// ErrGeometry is returned when a width, height, dot pitch or
	// supersampling factor is not positive, or when two rasters which must
	// have the same size do not.
	ErrGeometry = errors.New("invalid geometry")

	// ErrChannels is returned when a raster has a channel layout the
	// operation cannot use, for example a colour image where a
	// single-channel intensity grid is required.
	ErrChannels = errors.New("unsupported channel layout")
)

// InvalidGeometry returns an error which wraps [ErrGeometry].
func InvalidGeometry(op, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrGeometry)
}

// UnsupportedLayout returns an error which wraps [ErrChannels].
func UnsupportedLayout(op string, img image.Image) error {
	return fmt.Errorf("%s: %T: %w", op, img, ErrChannels)
}

// AsGray checks that img is a non-empty single-channel raster.
// If the image does not start at (0, 0), a copy with origin (0, 0) is
// returned.
func AsGray(op string, img image.Image) (*image.Gray, error) {
	g, ok := img.(*image.Gray)
	if !ok {
		return nil, UnsupportedLayout(op, img)
	}
	b := g.Bounds()
	if b.Empty() {
		return nil, InvalidGeometry(op, "empty raster %v", b)
	}
	if b.Min == (image.Point{}) {
		return g, nil
	}
	res := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(res, res.Bounds(), g, b.Min, draw.Src)
	return res, nil
}

// SameSize checks that all images have the same width and height.
func SameSize(op string, imgs ...image.Image) error {
	if len(imgs) == 0 {
		return nil
	}
	w, h := imgs[0].Bounds().Dx(), imgs[0].Bounds().Dy()
	for _, img := range imgs[1:] {
		b := img.Bounds()
		if b.Dx() != w || b.Dy() != h {
			return InvalidGeometry(op, "size %dx%d does not match %dx%d",
				b.Dx(), b.Dy(), w, h)
		}
	}
	return nil
}
