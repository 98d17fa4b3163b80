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

// Command export writes the resized images and previews for all test cases
// into a directory, for visual inspection.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/term"

	"seehuhn.de/go/halftone"
	"seehuhn.de/go/halftone/testcases"
)

func main() {
	outDir := flag.String("o", "debug", "output directory")
	cmyk := flag.Bool("cmyk", false, "screen all four plates")
	dither := flag.Bool("dither", false, "flat colour with a dithered gray layer")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	opt := halftone.DefaultOptions()
	switch {
	case *cmyk:
		opt.Process = halftone.ProcessCMYK
	case *dither:
		opt.Process = halftone.ProcessDither
	}

	verbose := term.IsTerminal(int(os.Stdout.Fd()))
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			sizes := []halftone.Size{
				{Width: 2 * tc.Width, Label: "lg"},
				{Width: tc.Width, Label: "md"},
			}
			outputs, err := halftone.Build(tc.Image(), sizes, &opt)
			if err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			for _, out := range outputs {
				imgName, previewName := out.FileNames(name)
				if err := writeFile(*outDir, imgName, out.Image); err != nil {
					log.Fatal(err)
				}
				if err := writeFile(*outDir, previewName, out.Preview); err != nil {
					log.Fatal(err)
				}
			}
			if verbose {
				fmt.Println(name)
			}
		}
	}
}

func writeFile(dir, name string, data []byte) error {
	return os.WriteFile(filepath.Join(dir, name), data, 0644)
}
