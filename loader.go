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

package hyphen

import "os"

// LoadPatternFile reads a compiled pattern blob from path. The returned
// bytes are suitable as the data argument to New; the caller owns the
// slice and may pass it to any number of Hyphenators.
//
// For an empty file, LoadPatternFile returns the empty data together
// with ErrEmptyFile. An empty blob is still a valid, if useless,
// Hyphenator input that always falls back to the no-pattern path, so
// callers that accept it can check for ErrEmptyFile with errors.Is.
func LoadPatternFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(data) == 0 {
		return data, ErrEmptyFile
	}
	return data, nil
}
