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

package hyphen

import "seehuhn.de/go/hyphen/pattern"

// alphabetLookup maps word into codes (padded with a leading and
// trailing 0 sentinel, as the trie walk expects) and returns the
// HyphenationType that a pattern break should use by default: the
// script-derived type of the first character whose script calls for
// something other than BreakAndInsertHyphen (BreakAndInsertHyphen if
// none does), or DontBreak and false if the blob carries no usable
// alphabet or word contains a code point the alphabet does not map.
//
// codes must have length >= len(word)+2.
func (h *Hyphenator) alphabetLookup(word []uint16, codes []uint16) (HyphenationType, bool) {
	header := pattern.NewHeader(h.data)
	alphabet, ok := header.Alphabet()
	if !ok {
		return DontBreak, false
	}

	result := BreakAndInsertHyphen
	codes[0] = 0
	for i, c := range word {
		code, ok := alphabet.Get(uint32(c))
		if !ok {
			return DontBreak, false
		}
		codes[i+1] = code
		if result == BreakAndInsertHyphen {
			result = h.hyphenationTypeBasedOnScript(rune(c))
		}
	}
	codes[len(word)+1] = 0
	return result, true
}
