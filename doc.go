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

// Package hyphen implements the Knuth-Liang hyphenation algorithm over
// a precompiled binary pattern table, the way Android's text layout
// stack (frameworks/minikin) hyphenates words.
//
// A Hyphenator is constructed once from a compiled pattern blob (see
// package pattern for the wire format) and is then a pure function of a
// word:
//
//	h := hyphen.New(patternData, 2, 3, "en")
//	out := make([]byte, len(word))
//	h.Hyphenate(word, out)
//
// out[i] holds a HyphenationType describing whether a break is
// permitted immediately before word[i], and if so what to draw there.
//
// Hyphenate degrades gracefully: a word too short, a Hyphenator with no
// pattern data, or a word containing an explicit hyphen or soft hyphen
// all fall back to the no-pattern path described in nopattern.go rather
// than returning an error.
package hyphen
