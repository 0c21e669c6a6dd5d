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

import "strconv"

// bytes is a borrowed, non-owning view over a compiled pattern blob. It
// never copies the payload; slicing produces another bytes value with
// its offset rebased to 0.
type bytes struct {
	data []byte
}

// ErrShort is returned when a read would run past the end of the blob.
// The pattern blob is otherwise assumed to be well-formed: once a
// caller has checked that readU32 did not fail, it is a programming
// error for subsequent offsets derived from the blob's own header
// fields to go out of bounds.
type ErrShort struct {
	Offset, Need, Have int
}

func (e *ErrShort) Error() string {
	return "pattern: short read at offset " + strconv.Itoa(e.Offset) +
		" (need " + strconv.Itoa(e.Need) + ", have " + strconv.Itoa(e.Have) + ")"
}

// readU32 reads a little-endian u32 at byte offset k.
func (b bytes) readU32(k int) (uint32, error) {
	if k < 0 || k+4 > len(b.data) {
		return 0, &ErrShort{Offset: k, Need: 4, Have: len(b.data) - k}
	}
	d := b.data[k : k+4]
	return uint32(d[0]) | uint32(d[1])<<8 | uint32(d[2])<<16 | uint32(d[3])<<24, nil
}

// mustReadU32 reads a little-endian u32, panicking on a short read. It is
// used deep inside the trie/pattern walk, where every offset is derived
// from fields already validated when the corresponding view was
// constructed; an out-of-range read there indicates a malformed blob,
// which is a programming error per the format's compatibility contract.
func (b bytes) mustReadU32(k int) uint32 {
	v, err := b.readU32(k)
	if err != nil {
		panic(err)
	}
	return v
}

// sliceFrom returns a nested view starting at byte offset k, re-based to
// offset 0, or an error if k is out of range.
func (b bytes) sliceFrom(k int) (bytes, error) {
	if k < 0 || k > len(b.data) {
		return bytes{}, &ErrShort{Offset: k, Need: 0, Have: len(b.data)}
	}
	return bytes{data: b.data[k:]}, nil
}

func (b bytes) byteAt(k int) (byte, error) {
	if k < 0 || k >= len(b.data) {
		return 0, &ErrShort{Offset: k, Need: 1, Have: len(b.data) - k}
	}
	return b.data[k], nil
}

func (b bytes) len() int {
	return len(b.data)
}
