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

// Script identifies the Unicode script of a code point, restricted to
// the values the hyphenation post-processor distinguishes. Any script
// not in this set may be reported as any value outside [0,7]; the core
// only compares against the named constants.
type Script uint8

const (
	Latin Script = iota
	Arabic
	Kannada
	Malayalam
	Tamil
	Telugu
	Armenian
	CanadianAboriginal

	// Other is returned for scripts the hyphenation logic does not
	// special-case.
	Other
)

// JoiningType identifies the Unicode Arabic joining class of a code
// point.
type JoiningType uint8

const (
	NonJoining JoiningType = iota
	DualJoining
	RightJoining
	LeftJoining
	JoinCausing
	Transparent
)

// Oracle answers the two Unicode queries the hyphenation engine needs.
// It is the seam the core hyphenation logic is injected through instead
// of linking against ICU directly.
type Oracle interface {
	Script(codepoint rune) Script
	JoiningType(codepoint rune) JoiningType
}

// Default is the package-provided Oracle, backed by the standard
// library's unicode.Scripts tables and a small curated joining-type
// table. See unicodeOracle in script_unicode.go and joining.go for the
// implementations, and DESIGN.md for why no third-party module improves
// on either.
var Default Oracle = unicodeOracle{}
