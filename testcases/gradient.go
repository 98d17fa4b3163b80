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

package testcases

import "image/color"

var gradientCases = []TestCase{
	{
		Name:   "gray_ramp",
		Width:  256,
		Height: 64,
		Paint: func(x, _ int) color.NRGBA {
			v := uint8(255 - x)
			return color.NRGBA{R: v, G: v, B: v, A: 255}
		},
	},
	{
		Name:   "hue_ramp",
		Width:  192,
		Height: 96,
		Paint: func(x, y int) color.NRGBA {
			return color.NRGBA{
				R: uint8(255 * x / 191),
				G: uint8(255 * y / 95),
				B: uint8(255 - 255*x/191),
				A: 255,
			}
		},
	},
	{
		Name:   "alpha_ramp",
		Width:  128,
		Height: 32,
		Paint: func(x, _ int) color.NRGBA {
			return color.NRGBA{R: 40, G: 80, B: 160, A: uint8(2 * x)}
		},
	},
}
