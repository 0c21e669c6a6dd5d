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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddRejectsMalformedTag(t *testing.T) {
	var s Set
	err := s.Add("not a tag!!", nil, 1, 1)
	if err == nil {
		t.Fatal("Add with malformed tag returned nil error")
	}
	var tagErr *TagError
	if _, ok := err.(*TagError); !ok {
		t.Errorf("Add error = %T, want *TagError (%v)", err, tagErr)
	}
}

func TestAddRejectsMalformedBlob(t *testing.T) {
	var s Set
	err := s.Add("en", []byte{1, 2, 3}, 1, 1)
	if err == nil {
		t.Fatal("Add with a too-short pattern blob returned nil error")
	}
	var blobErr *BlobError
	if _, ok := err.(*BlobError); !ok {
		t.Errorf("Add error = %T, want *BlobError (%v)", err, blobErr)
	}
}

func TestLookupEmptySet(t *testing.T) {
	var s Set
	if h := s.Lookup("en"); h != nil {
		t.Errorf("Lookup on empty set = %v, want nil", h)
	}
}

func TestLookupFallsBackToParent(t *testing.T) {
	var s Set
	if err := s.Add("pt", nil, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("en", nil, 1, 1); err != nil {
		t.Fatal(err)
	}

	got := s.Lookup("pt-BR")
	want := s.Lookup("pt")
	if got == nil || want == nil || got != want {
		t.Errorf("Lookup(%q) did not fall back to the pt registration", "pt-BR")
	}
}

func TestTagsSorted(t *testing.T) {
	var s Set
	for _, tag := range []string{"pt", "ca", "en", "pl"} {
		if err := s.Add(tag, nil, 0, 0); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"ca", "en", "pl", "pt"}
	if diff := cmp.Diff(want, s.Tags()); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}
}
