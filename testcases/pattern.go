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

var patternCases = []TestCase{
	{
		Name:   "checkerboard",
		Width:  96,
		Height: 96,
		Paint: func(x, y int) color.NRGBA {
			if (x/16+y/16)%2 == 0 {
				return color.NRGBA{A: 255}
			}
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		},
	},
	{
		Name:   "disc",
		Width:  120,
		Height: 80,
		Paint:  disc(60, 40, 30),
	},
	{
		Name:   "stripes",
		Width:  200,
		Height: 20,
		Paint: func(x, _ int) color.NRGBA {
			if x%10 < 5 {
				return color.NRGBA{R: 200, G: 30, B: 30, A: 255}
			}
			return color.NRGBA{R: 30, G: 30, B: 200, A: 255}
		},
	},
}

// disc paints a dark disc with the given centre and radius on a light
// background.
func disc(cx, cy, r int) func(x, y int) color.NRGBA {
	return func(x, y int) color.NRGBA {
		dx, dy := x-cx, y-cy
		if dx*dx+dy*dy <= r*r {
			return color.NRGBA{R: 20, G: 20, B: 20, A: 255}
		}
		return color.NRGBA{R: 235, G: 230, B: 220, A: 255}
	}
}
