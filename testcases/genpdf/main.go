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

// Command genpdf writes the black-plate halftone screen of every test case
// as a vector PDF, next to a PNG of the rasterised screen.  Comparing the
// two shows how well the raster screen follows the exact dot geometry.
// Run from the module root directory.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/term"

	"seehuhn.de/go/halftone/screen"
	"seehuhn.de/go/halftone/separation"
	"seehuhn.de/go/halftone/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/screens", "output directory")
	angle := flag.Float64("angle", 45, "screen angle in degrees")
	pitch := flag.Int("pitch", 8, "dot pitch in pixels")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	s := screen.Default
	s.Angle = *angle
	s.Pitch = *pitch

	verbose := term.IsTerminal(int(os.Stdout.Fd()))
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, s, filepath.Join(*outDir, name)); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			if verbose {
				fmt.Println(name)
			}
		}
	}
}

func generate(tc testcases.TestCase, s screen.Screen, base string) error {
	sep, err := separation.Separate(tc.Image())
	if err != nil {
		return err
	}

	pdfBuf := &bytes.Buffer{}
	if err := screen.WritePDF(pdfBuf, sep.K, s); err != nil {
		return err
	}
	if err := os.WriteFile(base+".pdf", pdfBuf.Bytes(), 0644); err != nil {
		return err
	}

	mask, err := screen.Render(sep.K, s)
	if err != nil {
		return err
	}
	pngBuf := &bytes.Buffer{}
	if err := png.Encode(pngBuf, mask); err != nil {
		return err
	}
	return os.WriteFile(base+".png", pngBuf.Bytes(), 0644)
}
