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

package script

import "unicode"

// unicodeOracle implements Oracle using the standard library's
// unicode.Scripts range tables for Script, and the curated joiningRanges
// table (joining_table.go, searched by joining.go) for JoiningType.
type unicodeOracle struct{}

func (unicodeOracle) Script(cp rune) Script {
	switch {
	case unicode.Is(unicode.Arabic, cp):
		return Arabic
	case unicode.Is(unicode.Kannada, cp):
		return Kannada
	case unicode.Is(unicode.Malayalam, cp):
		return Malayalam
	case unicode.Is(unicode.Tamil, cp):
		return Tamil
	case unicode.Is(unicode.Telugu, cp):
		return Telugu
	case unicode.Is(unicode.Armenian, cp):
		return Armenian
	case unicode.Is(unicode.Canadian_Aboriginal, cp):
		return CanadianAboriginal
	case unicode.Is(unicode.Latin, cp):
		return Latin
	default:
		return Other
	}
}

func (unicodeOracle) JoiningType(cp rune) JoiningType {
	return lookupJoiningType(cp)
}
