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

var flatCases = []TestCase{
	{Name: "white", Width: 100, Height: 50, Paint: gray(255)},
	{Name: "light_gray", Width: 100, Height: 50, Paint: gray(192)},
	{Name: "mid_gray", Width: 100, Height: 50, Paint: gray(128)},
	{Name: "dark_gray", Width: 100, Height: 50, Paint: gray(64)},
	{Name: "black", Width: 100, Height: 50, Paint: gray(0)},
	{Name: "red", Width: 80, Height: 80, Paint: solid(255, 0, 0)},
	{Name: "dark_teal", Width: 80, Height: 80, Paint: solid(0, 96, 96)},
	{Name: "portrait", Width: 30, Height: 90, Paint: gray(100)},
}
