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

import "encoding/binary"

// The module does not implement a pattern-file compiler (that is out of
// scope, per the format's design); these helpers build just enough of a
// synthetic blob in memory to exercise the reader in tests, without
// depending on a real compiled pattern file.

func putU32(dst []byte, v uint32) {
	binary.LittleEndian.PutUint32(dst, v)
}

func appendU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	putU32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// buildHeader assembles the top-level header plus three sub-blobs placed
// back to back after it.
func buildHeader(alphabet, trie, patternTab []byte) []byte {
	const headerSize = 24
	alphabetOff := uint32(headerSize)
	trieOff := alphabetOff + uint32(len(alphabet))
	patternOff := trieOff + uint32(len(trie))
	fileSize := patternOff + uint32(len(patternTab))

	buf := make([]byte, 0, fileSize)
	buf = appendU32(buf, Magic) // magic "HYPH"
	buf = appendU32(buf, 1)          // format version
	buf = appendU32(buf, alphabetOff)
	buf = appendU32(buf, trieOff)
	buf = appendU32(buf, patternOff)
	buf = appendU32(buf, fileSize)
	buf = append(buf, alphabet...)
	buf = append(buf, trie...)
	buf = append(buf, patternTab...)
	return buf
}

func buildAlphabetV0(minCP, maxCP uint32, codes map[uint32]byte) []byte {
	buf := appendU32(nil, 0)
	buf = appendU32(buf, minCP)
	buf = appendU32(buf, maxCP)
	payload := make([]byte, maxCP-minCP)
	for cp, code := range codes {
		payload[cp-minCP] = code
	}
	return append(buf, payload...)
}

func buildAlphabetV1(entries []uint32) []byte {
	buf := appendU32(nil, 1)
	buf = appendU32(buf, uint32(len(entries)))
	for _, e := range entries {
		buf = appendU32(buf, e)
	}
	return buf
}

// trieEntry packs (patIndex, link, code) exactly as the scoring engine
// expects to unpack them, given the supplied shifts/masks.
func trieEntry(patIndex, link, code, patternShift, linkShift, linkMask uint32) uint32 {
	return (patIndex << patternShift) | ((link << linkShift) & linkMask) | code
}

func buildTrie(charMask, linkShift, linkMask, patternShift uint32, entries []uint32) []byte {
	buf := appendU32(nil, 0)
	buf = appendU32(buf, charMask)
	buf = appendU32(buf, linkShift)
	buf = appendU32(buf, linkMask)
	buf = appendU32(buf, patternShift)
	buf = appendU32(buf, uint32(len(entries)))
	for _, e := range entries {
		buf = appendU32(buf, e)
	}
	return buf
}

type patDef struct {
	length, shift uint32
	scores        []byte
}

// buildPatternTable lays out pattern entries and their score payload
// back to back and returns the encoded sub-blob. The returned slice of
// offsets gives each pattern's 1-based index for use in trie entries
// (index 0 is reserved for "no pattern here").
func buildPatternTable(defs []patDef) (blob []byte, indices []uint32) {
	// entries[0] is the reserved "no pattern here" sentinel; real
	// patterns occupy indices 1..len(defs).
	entries := []uint32{0}
	var data []byte
	indices = make([]uint32, len(defs))
	for i, d := range defs {
		offset := uint32(len(data))
		data = append(data, d.scores...)
		entries = append(entries, (d.length<<26)|(d.shift<<20)|(offset&0xFFFFF))
		indices[i] = uint32(i + 1)
	}

	const patternHeaderSize = 16
	dataOffset := uint32(patternHeaderSize + len(entries)*4)

	buf := appendU32(nil, 0)
	buf = appendU32(buf, uint32(len(entries)))
	buf = appendU32(buf, dataOffset)
	buf = appendU32(buf, uint32(len(data)))
	for _, e := range entries {
		buf = appendU32(buf, e)
	}
	buf = append(buf, data...)
	return buf, indices
}
