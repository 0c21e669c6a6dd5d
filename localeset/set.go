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
	"sync"

	"golang.org/x/exp/slices"
	"golang.org/x/text/language"

	"seehuhn.de/go/hyphen"
	"seehuhn.de/go/hyphen/pattern"
)

type registration struct {
	tag  string
	lang language.Tag
	hyph *hyphen.Hyphenator
}

// Set is a collection of Hyphenators, one per registered locale, with
// BCP 47 fallback matching for lookups. The zero value is ready to use.
//
// Add is not safe for concurrent use. Lookup is safe for any number of
// concurrent callers once all Add calls for this Set have returned,
// the same way a read-only map built once and shared afterwards would
// be: the matcher used by Lookup is rebuilt lazily on the first Lookup
// that follows a change, so a Lookup racing with an Add can observe a
// torn state.
type Set struct {
	regs    []registration
	mu      sync.Mutex // guards matcher and dirty during Lookup
	matcher language.Matcher
	dirty   bool
}

// Add registers a Hyphenator for tag, built from data with the given
// min_prefix/min_suffix. It returns an error if tag is not a
// well-formed BCP 47 language tag, or if data is non-empty but too
// short or wrongly tagged to be a compiled pattern blob. Unlike
// Hyphenate itself, which degrades silently to the no-pattern path for
// any data it cannot use, Add validates eagerly: a Set is normally
// built once at startup from files the caller controls, so a malformed
// blob is far more likely to be a packaging mistake worth failing loud
// for than genuinely absent pattern data.
func (s *Set) Add(tag string, data []byte, minPrefix, minSuffix int) error {
	t, err := language.Parse(tag)
	if err != nil {
		return &TagError{Tag: tag, Err: err}
	}
	if len(data) > 0 {
		if err := pattern.NewHeader(data).Validate(); err != nil {
			return &BlobError{Tag: tag, Err: err}
		}
	}
	s.regs = append(s.regs, registration{
		tag:  tag,
		lang: t,
		hyph: hyphen.New(data, minPrefix, minSuffix, tag),
	})
	s.dirty = true
	return nil
}

// Lookup returns the Hyphenator for the best match to tag among the
// registered locales, using standard BCP 47 fallback (e.g. a request
// for "pt-BR" matches a registration for "pt"). It returns nil if no
// locale has been registered.
func (s *Set) Lookup(tag string) *hyphen.Hyphenator {
	if len(s.regs) == 0 {
		return nil
	}
	s.mu.Lock()
	if s.dirty {
		s.rebuildMatcher()
	}
	matcher := s.matcher
	s.mu.Unlock()
	t, err := language.Parse(tag)
	if err != nil {
		return nil
	}
	_, index, _ := matcher.Match(t)
	return s.regs[index].hyph
}

// Tags returns the sorted list of registered BCP 47 tags.
func (s *Set) Tags() []string {
	out := make([]string, len(s.regs))
	for i, r := range s.regs {
		out[i] = r.tag
	}
	slices.Sort(out)
	return out
}

func (s *Set) rebuildMatcher() {
	tags := make([]language.Tag, len(s.regs))
	for i, r := range s.regs {
		tags[i] = r.lang
	}
	s.matcher = language.NewMatcher(tags)
	s.dirty = false
}
