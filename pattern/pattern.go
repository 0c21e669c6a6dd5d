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

// Pattern sub-blob layout:
//
//	version(4) | num_entries(4) | pattern_data_offset(4) | pattern_data_size(4) | entries...
const (
	patternHeaderSize    = 16
	offPatternDataOffset = 8
)

// PatternTable is a non-owning view over the packed list of Knuth-Liang
// digit strings ("patterns"), indexed by the trie's terminal pattern
// index.
type PatternTable struct {
	b                 bytes
	patternDataOffset uint32
}

func newPatternTable(sub bytes) (PatternTable, error) {
	off, err := sub.readU32(offPatternDataOffset)
	if err != nil {
		return PatternTable{}, err
	}
	return PatternTable{b: sub, patternDataOffset: off}, nil
}

// Entry is a single pattern record: the Len consecutive scores ending
// Shift positions before the end of the matched subword.
type Entry struct {
	b      bytes
	base   uint32 // patternDataOffset + data offset encoded in the entry
	Len    uint32
	Shift  uint32
}

// EntryAt unpacks the pattern entry at index. Bit layout of the packed
// u32: length in the top 6 bits, shift in the next 6 bits, and a data
// offset (relative to patternDataOffset) in the low 20 bits.
func (p PatternTable) EntryAt(index uint32) Entry {
	raw := p.b.mustReadU32(patternHeaderSize + int(index)*4)
	length := raw >> 26
	shift := (raw >> 20) & 0x3F
	dataOffset := raw & 0xFFFFF
	return Entry{
		b:     p.b,
		base:  p.patternDataOffset + dataOffset,
		Len:   length,
		Shift: shift,
	}
}

// ValueAt returns the k-th score byte of the pattern, k in [0, Len).
func (e Entry) ValueAt(k uint32) byte {
	v, err := e.b.byteAt(int(e.base + k))
	if err != nil {
		panic(err)
	}
	return v
}
