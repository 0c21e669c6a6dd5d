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

func TestAlphabetV0(t *testing.T) {
	blob := buildAlphabetV0(0x61, 0x7B, map[uint32]byte{
		0x61: 1, // 'a'
		0x62: 2, // 'b'
		0x7A: 26,
	})
	sub := bytes{data: blob}
	a, err := newAlphabetV0(sub)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		cp     uint32
		code   uint16
		wantOK bool
	}{
		{0x61, 1, true},
		{0x62, 2, true},
		{0x7A, 26, true},
		{0x63, 0, false}, // in range but never set -> 0 means absent
		{0x60, 0, false}, // below min
		{0x7B, 0, false}, // at max (exclusive)
	}
	for _, c := range cases {
		code, ok := a.Get(c.cp)
		if ok != c.wantOK || (ok && code != c.code) {
			t.Errorf("Get(%#x) = (%d, %v), want (%d, %v)", c.cp, code, ok, c.code, c.wantOK)
		}
	}
}

func TestAlphabetV1(t *testing.T) {
	entries := []uint32{
		(0x41 << 11) | 1,
		(0x62 << 11) | 2,
		(0x1F600 << 11) | 3,
	}
	blob := buildAlphabetV1(entries)
	sub := bytes{data: blob}
	a, err := newAlphabetV1(sub)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		cp     uint32
		code   uint16
		wantOK bool
	}{
		{0x41, 1, true},
		{0x62, 2, true},
		{0x1F600, 3, true},
		{0x42, 0, false},
		{0, 0, false},
	}
	for _, c := range cases {
		code, ok := a.Get(c.cp)
		if ok != c.wantOK || (ok && code != c.code) {
			t.Errorf("Get(%#x) = (%d, %v), want (%d, %v)", c.cp, code, ok, c.code, c.wantOK)
		}
	}
}

func TestHeaderUnknownAlphabetVersion(t *testing.T) {
	badAlphabet := appendU32(nil, 7) // unrecognized version
	trie := buildTrie(0x7FF, 11, 0xFFFF<<11, 27, nil)
	pat, _ := buildPatternTable(nil)
	blob := buildHeader(badAlphabet, trie, pat)

	h := NewHeader(blob)
	if _, ok := h.Alphabet(); ok {
		t.Fatal("expected Alphabet() to report unknown version as not ok")
	}
}
