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

package localeset

// TagError indicates that a tag passed to Set.Add is not a well-formed
// BCP 47 language tag.
type TagError struct {
	Tag string
	Err error
}

func (err *TagError) Error() string {
	return "localeset: invalid language tag " + err.Tag + ": " + err.Err.Error()
}

func (err *TagError) Unwrap() error {
	return err.Err
}

// BlobError indicates that the data passed to Set.Add for a given tag
// is not a well-formed compiled pattern blob.
type BlobError struct {
	Tag string
	Err error
}

func (err *BlobError) Error() string {
	return "localeset: invalid pattern data for " + err.Tag + ": " + err.Err.Error()
}

func (err *BlobError) Unwrap() error {
	return err.Err
}
