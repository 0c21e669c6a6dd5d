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

// joiningRanges is a curated subset of Unicode's ArabicShaping.txt
// Joining_Type property, covering the Arabic and Syriac blocks plus the
// zero-width joiner/non-joiner. It is not a full transcription of the
// Unicode data file: code points outside these ranges (and any script
// the core does not special-case) default to NonJoining, which is the
// correct default for the vast majority of non-cursive-joining scripts.
// Regenerate with gen_joining.go against a newer ArabicShaping.txt when
// Unicode adds joining scripts this table doesn't yet cover.
var joiningRanges = []joinRange{
	{0x0608, 0x0608, RightJoining},  // ARABIC RAY
	{0x060B, 0x060B, NonJoining},    // AFGHANI SIGN
	{0x0620, 0x0620, DualJoining},   // ARABIC LETTER KASHMIRI YEH
	{0x0621, 0x0621, NonJoining},    // ARABIC LETTER HAMZA
	{0x0622, 0x0625, RightJoining},  // ALEF..ALEF WITH HAMZA BELOW
	{0x0626, 0x0626, DualJoining},   // YEH WITH HAMZA ABOVE
	{0x0627, 0x0627, RightJoining},  // ALEF
	{0x0628, 0x0628, DualJoining},   // BEH
	{0x0629, 0x0629, RightJoining},  // TEH MARBUTA
	{0x062A, 0x062E, DualJoining},   // TEH..KHAH
	{0x062F, 0x0632, RightJoining},  // DAL..ZAIN
	{0x0633, 0x063A, DualJoining},   // SEEN..GHAIN
	{0x063B, 0x063F, DualJoining},   // KEHEH variants (extended Arabic)
	{0x0641, 0x0647, DualJoining},   // FEH..HEH
	{0x0648, 0x0648, RightJoining},  // WAW
	{0x0649, 0x064A, DualJoining},   // ALEF MAKSURA, YEH
	{0x064B, 0x0655, Transparent},   // harakat / combining marks
	{0x0656, 0x065F, Transparent},   // further combining marks
	{0x0660, 0x0669, NonJoining},    // Arabic-Indic digits
	{0x066E, 0x066F, DualJoining},   // DOTLESS BEH, DOTLESS QAF
	{0x0670, 0x0670, Transparent},   // SUPERSCRIPT ALEF
	{0x0671, 0x0673, RightJoining},  // ALEF WASLA..ALEF WITH WAVY HAMZA BELOW
	{0x0674, 0x0674, NonJoining},    // HIGH HAMZA
	{0x0675, 0x0677, RightJoining},  // HIGH HAMZA ALEF..U WITH HAMZA ABOVE
	{0x0678, 0x0687, DualJoining},   // HIGH HAMZA YEH..TCHEHEH
	{0x0688, 0x0699, RightJoining},  // DDAL..REH WITH SMALL V
	{0x069A, 0x06BF, DualJoining},   // SEEN WITH DOT..RNOON
	{0x06C0, 0x06C0, RightJoining},  // HEH WITH YEH ABOVE
	{0x06C1, 0x06C2, DualJoining},   // HEH GOAL, HEH GOAL WITH HAMZA
	{0x06C3, 0x06CB, RightJoining},  // TEH MARBUTA GOAL..VE
	{0x06CC, 0x06CC, DualJoining},   // FARSI YEH
	{0x06CD, 0x06CD, RightJoining},  // YEH WITH TAIL
	{0x06CE, 0x06CE, DualJoining},   // YEH WITH SMALL V
	{0x06CF, 0x06CF, RightJoining},  // WAW WITH HAMZA ABOVE
	{0x06D0, 0x06D1, DualJoining},   // E, YEH WITH THREE DOTS BELOW
	{0x06D2, 0x06D3, RightJoining},  // YEH BARREE, YEH BARREE WITH HAMZA ABOVE
	{0x06D5, 0x06D5, RightJoining},  // AE
	{0x06D6, 0x06DC, Transparent},   // Quranic annotation marks
	{0x06DF, 0x06E4, Transparent},   // more Quranic marks
	{0x06E7, 0x06E8, Transparent},   // small high marks
	{0x06EA, 0x06ED, Transparent},   // empty centre marks, small low marks
	{0x0700, 0x070D, RightJoining},  // Syriac punctuation and letters (approximate)
	{0x070F, 0x070F, Transparent},   // SYRIAC ABBREVIATION MARK
	{0x0710, 0x0710, RightJoining},  // SYRIAC LETTER ALAPH
	{0x0712, 0x072C, DualJoining},   // Syriac letters BETH..ZQAPHA-family
	{0x0730, 0x074A, Transparent},   // Syriac combining marks
	{0x08A0, 0x08A9, DualJoining},   // Arabic Extended-A letters (approximate)
	{0x08AA, 0x08AC, RightJoining},  // Arabic Extended-A letters (approximate)
	{0x200C, 0x200C, NonJoining},    // ZERO WIDTH NON-JOINER
	{0x200D, 0x200D, JoinCausing},   // ZERO WIDTH JOINER
	{0xFB50, 0xFBB1, DualJoining},   // Arabic Presentation Forms-A (approximate)
	{0xFBD3, 0xFD3D, DualJoining},   // Arabic Presentation Forms-A (approximate)
	{0xFE70, 0xFEFC, DualJoining},   // Arabic Presentation Forms-B (approximate)
}
