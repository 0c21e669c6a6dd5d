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

import "errors"

var (
	// ErrEmptyFile is returned by LoadPatternFile when the file exists
	// but contains no data.
	ErrEmptyFile = errors.New("hyphen: pattern file is empty")
)

// LoadError indicates that a pattern file could not be read from disk.
// It wraps the underlying filesystem error.
type LoadError struct {
	Path string
	Err  error
}

func (err *LoadError) Error() string {
	return "hyphen: cannot load pattern file " + err.Path + ": " + err.Err.Error()
}

func (err *LoadError) Unwrap() error {
	return err.Err
}
