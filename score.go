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

// hyphenateFromCodes walks the pattern trie for every starting position
// of codes[0:paddedLen] (the word flanked by the 0 sentinels
// alphabetLookup installed), combining overlapping pattern matches by
// pointwise maximum, then rewrites out in place from the resulting
// scores.
//
// defaultType is the HyphenationType a pattern break uses when nothing
// downstream overrides it (computed once, from the word's script, by
// alphabetLookup).
func (h *Hyphenator) hyphenateFromCodes(codes []uint16, word []uint16, defaultType HyphenationType, out []byte) {
	header := pattern.NewHeader(h.data)
	trie, err := header.Trie()
	if err != nil {
		h.hyphenateWithNoPattern(word, out)
		return
	}
	patterns, err := header.Pattern()
	if err != nil {
		h.hyphenateWithNoPattern(word, out)
		return
	}

	paddedLen := uint32(len(codes))
	minPrefix := uint32(h.minPrefix)
	minSuffix := uint32(h.minSuffix)
	maxOffset := paddedLen - minSuffix - 1
	if wordLen := uint32(len(out)); maxOffset > wordLen {
		// Only reached with minSuffix == 0: out has no slot past the
		// last code unit of word.
		maxOffset = wordLen
	}

	for i := uint32(0); i < paddedLen-1; i++ {
		var node uint32
		for j := i; j < paddedLen; j++ {
			c := uint32(codes[j])
			entry := trie.At(node + c)
			if entry&trie.CharMask != c {
				break
			}
			node = (entry & trie.LinkMask) >> trie.LinkShift

			patIx := trie.At(node) >> trie.PatternShift
			if patIx == 0 {
				continue
			}
			patEntry := patterns.EntryAt(patIx)
			offset := (j + 1) - (patEntry.Len + patEntry.Shift)
			if offset > maxOffset {
				continue
			}
			var start uint32
			if minPrefix < offset {
				start = 0
			} else {
				start = minPrefix - offset
			}
			end := patEntry.Len
			if rem := maxOffset - offset; rem < end {
				end = rem
			}
			for k := start; k < end; k++ {
				v := patEntry.ValueAt(k)
				if v > out[offset+k] {
					out[offset+k] = v
				}
			}
		}
	}

	// Positions outside [minPrefix, maxOffset) are untouched above and
	// stay at the zero value installed by Hyphenate, which is DontBreak.
	for i := h.minPrefix; i < int(maxOffset); i++ {
		if out[i]&1 == 0 {
			out[i] = byte(DontBreak)
			continue
		}

		if i == 0 || !isLineBreakingHyphen(word[i-1]) || !h.portuguesePreference {
			out[i] = byte(defaultType)
			continue
		}

		if h.locale == Portuguese {
			// Prefer to break before the hyphen: the next line starts
			// with it.
			out[i-1] = byte(BreakAndDontInsertHyphen)
			out[i] = byte(DontBreak)
		} else {
			out[i-1] = byte(DontBreak)
			out[i] = byte(BreakAndDontInsertHyphen)
		}
	}
}
