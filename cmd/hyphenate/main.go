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

// Command hyphenate reads words, one per line, and prints them back
// with the break points a Hyphenator would choose marked with a middle
// dot.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/hyphen"
)

func main() {
	patPath := flag.String("pat", "", "path to a compiled pattern file (required)")
	locale := flag.String("locale", "en", "BCP 47 locale tag")
	minPrefix := flag.Int("min-prefix", 2, "minimum characters before a break")
	minSuffix := flag.Int("min-suffix", 3, "minimum characters after a break")
	flag.Parse()

	if *patPath == "" {
		fmt.Fprintln(os.Stderr, "hyphenate: -pat is required")
		os.Exit(2)
	}

	data, err := hyphen.LoadPatternFile(*patPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	h := hyphen.New(data, *minPrefix, *minSuffix, *locale)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "enter words one per line, ^D to quit")
	}

	scanner := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for scanner.Scan() {
		printHyphenated(out, h, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printHyphenated(w *bufio.Writer, h *hyphen.Hyphenator, word string) {
	runes := []rune(word)
	units := make([]uint16, 0, len(runes))
	for _, r := range runes {
		if r > 0xFFFF {
			// Non-BMP code points are outside the Hyphenator's scope;
			// pass the word through unmarked rather than mangling it.
			fmt.Fprintln(w, word)
			return
		}
		units = append(units, uint16(r))
	}

	breaks := make([]byte, len(units))
	h.Hyphenate(units, breaks)

	for i, r := range runes {
		if i > 0 && hyphen.HyphenationType(breaks[i]) != hyphen.DontBreak {
			w.WriteRune('·')
		}
		w.WriteRune(r)
	}
	w.WriteByte('\n')
}
