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

import "errors"

// Header layout (all fields little-endian u32, byte offsets from 0):
//
//	magic(4) | version(4) | alphabet_offset(4) | trie_offset(4) | pattern_offset(4) | file_size(4)
const (
	offMagic          = 0
	offVersion        = 4
	offAlphabetOffset = 8
	offTrieOffset     = 12
	offPatternOffset  = 16
	offFileSize       = 20
)

// Magic is the four-byte magic number every compiled pattern blob
// starts with, read as a little-endian u32 ("HYPH").
const Magic = 0x48595048

// ErrBadMagic is returned by Validate when a blob's magic number does
// not match Magic.
var ErrBadMagic = errors.New("pattern: bad magic number")

// Validate performs the one eager, whole-blob check this package makes:
// that data is long enough to hold a header and that header starts with
// Magic. It does not otherwise inspect the alphabet, trie or pattern
// sub-blobs; those are validated lazily, on first use, by Alphabet,
// Trie and Pattern.
func (h Header) Validate() error {
	if need := offFileSize + 4; h.b.len() < need {
		return &ErrShort{Offset: 0, Need: need, Have: h.b.len()}
	}
	magic, err := h.b.readU32(offMagic)
	if err != nil {
		return err
	}
	if magic != Magic {
		return ErrBadMagic
	}
	return nil
}

// Header is a non-owning view over a compiled pattern blob's fixed-size
// header.
type Header struct {
	b bytes
}

// NewHeader wraps data as a Header view. data is borrowed, never copied.
func NewHeader(data []byte) Header {
	return Header{b: bytes{data: data}}
}

// Alphabet constructs the concrete alphabet view (dense v0 or sparse v1)
// addressed by the header's alphabet offset. It returns ok=false if the
// alphabet sub-blob carries an unrecognized version, per spec: an
// unknown alphabet version degrades to the no-pattern path rather than
// failing.
func (h Header) Alphabet() (Alphabet, bool) {
	sub, err := h.subBlob(offAlphabetOffset)
	if err != nil {
		return Alphabet{}, false
	}
	version, err := sub.readU32(0)
	if err != nil {
		return Alphabet{}, false
	}
	switch version {
	case 0:
		a, err := newAlphabetV0(sub)
		if err != nil {
			return Alphabet{}, false
		}
		return a, true
	case 1:
		a, err := newAlphabetV1(sub)
		if err != nil {
			return Alphabet{}, false
		}
		return a, true
	default:
		return Alphabet{}, false
	}
}

// Trie constructs the view over the trie sub-blob.
func (h Header) Trie() (Trie, error) {
	sub, err := h.subBlob(offTrieOffset)
	if err != nil {
		return Trie{}, err
	}
	return newTrie(sub)
}

// Pattern constructs the view over the pattern sub-blob.
func (h Header) Pattern() (PatternTable, error) {
	sub, err := h.subBlob(offPatternOffset)
	if err != nil {
		return PatternTable{}, err
	}
	return newPatternTable(sub)
}

func (h Header) subBlob(offsetField int) (bytes, error) {
	off, err := h.b.readU32(offsetField)
	if err != nil {
		return bytes{}, err
	}
	return h.b.sliceFrom(int(off))
}
