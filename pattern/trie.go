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

package pattern

// Trie sub-blob layout:
//
//	version(4) | char_mask(4) | link_shift(4) | link_mask(4) | pattern_shift(4) | num_entries(4) | payload
const trieHeaderSize = 24

// Trie is a non-owning view over the packed trie transition table. Each
// payload entry is a u32 packing a pattern index, a link to the next
// node, and the alphabet code of the transition, at bit positions given
// by the header's mask/shift fields.
type Trie struct {
	b bytes

	CharMask     uint32
	LinkShift    uint32
	LinkMask     uint32
	PatternShift uint32
	NumEntries   uint32
}

func newTrie(sub bytes) (Trie, error) {
	charMask, err := sub.readU32(4)
	if err != nil {
		return Trie{}, err
	}
	linkShift, err := sub.readU32(8)
	if err != nil {
		return Trie{}, err
	}
	linkMask, err := sub.readU32(12)
	if err != nil {
		return Trie{}, err
	}
	patternShift, err := sub.readU32(16)
	if err != nil {
		return Trie{}, err
	}
	numEntries, err := sub.readU32(20)
	if err != nil {
		return Trie{}, err
	}
	return Trie{
		b:            sub,
		CharMask:     charMask,
		LinkShift:    linkShift,
		LinkMask:     linkMask,
		PatternShift: patternShift,
		NumEntries:   numEntries,
	}, nil
}

// At returns the raw u32 trie entry at index.
func (t Trie) At(index uint32) uint32 {
	return t.b.mustReadU32(trieHeaderSize + int(index)*4)
}
