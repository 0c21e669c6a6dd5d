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

import "testing"

// FuzzHeader checks that arbitrary bytes never cause Header's view
// constructors to panic: they must either report a usable view or fail
// cleanly, since a malformed pattern blob degrades to the no-pattern
// path rather than crashing the caller.
func FuzzHeader(f *testing.F) {
	alphabet := buildAlphabetV0(0x61, 0x7B, map[uint32]byte{0x61: 1})
	trie := buildTrie(0x7FF, 11, 0xFFFFF<<11, 31, []uint32{0})
	patTab, _ := buildPatternTable([]patDef{{length: 1, shift: 0, scores: []byte{1}}})
	f.Add(buildHeader(alphabet, trie, patTab))
	f.Add([]byte{})
	f.Add([]byte{1, 2, 3})

	f.Fuzz(func(t *testing.T, data []byte) {
		h := NewHeader(data)
		a, ok := h.Alphabet()
		if ok {
			// Get must never panic even for out-of-range code points.
			_, _ = a.Get(0)
			_, _ = a.Get(0x10FFFF)
		}

		tr, err := h.Trie()
		if err == nil {
			// Only probe an index the header reports and the data
			// actually holds; anything else is a documented
			// programming error, not a fuzz target.
			if tr.NumEntries > 0 && tr.b.len() >= trieHeaderSize+4 {
				_ = tr.At(0)
			}
		}

		_, _ = h.Pattern()
	})
}
