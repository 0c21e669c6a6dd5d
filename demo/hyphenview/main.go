// seehuhn.de/go/hyphen - a Knuth-Liang hyphenation engine
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
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

// Command hyphenview renders a word to a PNG image, marking every
// position where a Hyphenator would allow a break with a tick below
// the baseline. It exists to let a human eyeball a pattern file's
// output rather than read HyphenationType bytes.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/hyphen"
)

const (
	cellWidth  = 7 // advance of basicfont.Face7x13
	lineHeight = 16
	marginX    = 8
	marginY    = 16
	tickY      = 13
)

func main() {
	patPath := flag.String("pat", "", "path to a compiled pattern file (required)")
	locale := flag.String("locale", "en", "BCP 47 locale tag")
	outPath := flag.String("o", "hyphenview.png", "output PNG path")
	minPrefix := flag.Int("min-prefix", 2, "minimum characters before a break")
	minSuffix := flag.Int("min-suffix", 3, "minimum characters after a break")
	flag.Parse()

	word := flag.Arg(0)
	if *patPath == "" || word == "" {
		fmt.Fprintln(os.Stderr, "usage: hyphenview -pat FILE [-locale TAG] WORD")
		os.Exit(2)
	}

	data, err := hyphen.LoadPatternFile(*patPath)
	if err != nil {
		log.Fatal(err)
	}
	h := hyphen.New(data, *minPrefix, *minSuffix, *locale)

	runes := []rune(word)
	units := make([]uint16, len(runes))
	for i, r := range runes {
		units[i] = uint16(r)
	}
	breaks := make([]byte, len(units))
	h.Hyphenate(units, breaks)

	img := renderWord(runes, breaks)
	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
}

func renderWord(runes []rune, breaks []byte) *image.NRGBA {
	width := marginX*2 + len(runes)*cellWidth
	height := marginY + lineHeight
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(marginX),
			Y: fixed.I(marginY),
		},
	}
	d.DrawString(string(runes))

	tick := image.NewUniform(color.RGBA{R: 0xC0, A: 0xFF})
	for i, typ := range breaks {
		if hyphen.HyphenationType(typ) == hyphen.DontBreak {
			continue
		}
		x := marginX + i*cellWidth
		draw.Draw(img, image.Rect(x-1, marginY+tickY, x+1, marginY+tickY+2), tick, image.Point{}, draw.Src)
	}
	return img
}
