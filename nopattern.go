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

import "seehuhn.de/go/hyphen/script"

const (
	charSoftHyphen  uint16 = 0x00AD
	charMiddleDot   uint16 = 0x00B7
	charHyphenMinus uint16 = 0x002D
	charHyphen      uint16 = 0x2010
)

// isLineBreakingHyphen reports whether c behaves like U+2010 HYPHEN for
// line breaking: a break is allowed immediately after it, but words
// containing it should not be hyphenated by pattern. This is a curated
// set, built by inspecting every character with Unicode line breaking
// class BA or HY and keeping the ones that are actually hyphens.
func isLineBreakingHyphen(c uint16) bool {
	switch c {
	case 0x002D, // HYPHEN-MINUS
		0x058A, // ARMENIAN HYPHEN
		0x05BE, // HEBREW PUNCTUATION MAQAF
		0x1400, // CANADIAN SYLLABICS HYPHEN
		0x2010, // HYPHEN
		0x2013, // EN DASH
		0x2027, // HYPHENATION POINT
		0x2E17, // DOUBLE OBLIQUE HYPHEN
		0x2E40: // DOUBLE HYPHEN
		return true
	default:
		return false
	}
}

// hyphenationTypeBasedOnScript returns the HyphenationType a pattern
// break defaults to for a code point's script: most scripts insert a
// plain hyphen, but a few substitute a script-specific hyphen or
// suppress it entirely.
func (h *Hyphenator) hyphenationTypeBasedOnScript(c rune) HyphenationType {
	switch h.oracle.Script(c) {
	case script.Kannada, script.Malayalam, script.Tamil, script.Telugu:
		return BreakAndDontInsertHyphen
	case script.Armenian:
		return BreakAndInsertArmenianHyphen
	case script.CanadianAboriginal:
		return BreakAndInsertUcasHyphen
	default:
		return BreakAndInsertHyphen
	}
}

// getHyphTypeForArabic resolves the break type at location for a word
// whose script is Arabic: the joining form of the surrounding letters
// must survive the break, so a ZWJ is inserted where the two sides
// would otherwise cursively join.
func (h *Hyphenator) getHyphTypeForArabic(word []uint16, location int) HyphenationType {
	i := location
	joinType := script.NonJoining
	for i < len(word) {
		joinType = h.oracle.JoiningType(rune(word[i]))
		if joinType != script.Transparent {
			break
		}
		i++
	}

	if joinType == script.DualJoining || joinType == script.RightJoining || joinType == script.JoinCausing {
		// The next character may join the last one; check whether the
		// last character is of the right type too.
		joinType = script.NonJoining
		if i >= 2 {
			i = location - 2 // skip the soft hyphen
			for {
				joinType = h.oracle.JoiningType(rune(word[i]))
				if joinType != script.Transparent {
					break
				}
				if i == 0 {
					break
				}
				i--
			}
		}
		if joinType == script.DualJoining || joinType == script.LeftJoining || joinType == script.JoinCausing {
			return BreakAndInsertHyphenAndZwj
		}
	}
	return BreakAndInsertHyphen
}

// hyphenateWithNoPattern computes break opportunities for a word
// without consulting the pattern trie: positions adjacent to an
// explicit hyphen, soft hyphen, or (in Catalan) "l·l" are the only
// breaks this path produces.
func (h *Hyphenator) hyphenateWithNoPattern(word []uint16, out []byte) {
	wordLen := len(word)
	if wordLen == 0 {
		return
	}
	out[0] = byte(DontBreak)
	for i := 1; i < wordLen; i++ {
		prevChar := word[i-1]
		switch {
		case i > 1 && isLineBreakingHyphen(prevChar):
			if (prevChar == charHyphenMinus || prevChar == charHyphen) &&
				(h.locale == Polish || h.locale == Slovenian) &&
				h.oracle.Script(rune(word[i])) == script.Latin {
				// Polish and Slovenian repeat the hyphen on the next
				// line; only do this when the next character is Latin.
				out[i] = byte(BreakAndInsertHyphenAtNextLine)
			} else {
				out[i] = byte(BreakAndDontInsertHyphen)
			}

		case i > 1 && prevChar == charSoftHyphen:
			// A soft hyphen starting the word gives no useful break, so
			// i > 1 excludes it. The break type depends on the script
			// of the character we are breaking on.
			if h.oracle.Script(rune(word[i])) == script.Arabic {
				out[i] = byte(h.getHyphTypeForArabic(word, i))
			} else {
				out[i] = byte(h.hyphenationTypeBasedOnScript(rune(word[i])))
			}

		case i > 1 && prevChar == charMiddleDot &&
			h.minPrefix < i && i <= wordLen-h.minSuffix &&
			((word[i-2] == 'l' && word[i] == 'l') || (word[i-2] == 'L' && word[i] == 'L')) &&
			h.locale == Catalan:
			// "l·l" breaks as "l-" on the first line and "l" on the next.
			out[i] = byte(BreakAndReplaceWithHyphen)

		default:
			out[i] = byte(DontBreak)
		}
	}
}
