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

import (
	"golang.org/x/text/language"

	"seehuhn.de/go/hyphen/script"
)

// MaxWordSize is the largest word (in UTF-16 code units) the pattern
// path can hyphenate, including the two sentinel entries added around
// the word. Words of L code units need L+2 <= MaxWordSize; longer words
// always take the no-pattern path.
const MaxWordSize = 64

// HyphenationType describes the break decision at one position of a
// word. The numeric values are a wire contract with callers (e.g. a
// line-breaking layer across a language boundary) and must not change.
type HyphenationType uint8

const (
	// DontBreak means no break is permitted immediately before this
	// position.
	DontBreak HyphenationType = 0
	// BreakAndInsertHyphen breaks the line and inserts a normal hyphen.
	BreakAndInsertHyphen HyphenationType = 1
	// BreakAndInsertArmenianHyphen breaks the line and inserts an
	// Armenian hyphen (U+058A).
	BreakAndInsertArmenianHyphen HyphenationType = 2
	// BreakAndInsertUcasHyphen breaks the line and inserts a Canadian
	// Syllabics hyphen (U+1400).
	BreakAndInsertUcasHyphen HyphenationType = 4
	// BreakAndDontInsertHyphen breaks the line without inserting a
	// hyphen: used when a hyphen-like character is already present, or
	// the script does not use hyphens (e.g. Malayalam).
	BreakAndDontInsertHyphen HyphenationType = 5
	// BreakAndReplaceWithHyphen breaks the line and replaces the
	// preceding code unit with a hyphen. Used for Catalan "l·l", which
	// hyphenates as "l-/l".
	BreakAndReplaceWithHyphen HyphenationType = 6
	// BreakAndInsertHyphenAtNextLine breaks the line and repeats the
	// hyphen at the start of the next line. Used in Polish ("czerwono-/
	// -niebieska") and Slovenian.
	BreakAndInsertHyphenAtNextLine HyphenationType = 7
	// BreakAndInsertHyphenAndZwj breaks the line, inserting a ZWJ and a
	// hyphen on the first line and a ZWJ on the second, preserving
	// Arabic cursive joining across the break.
	BreakAndInsertHyphenAndZwj HyphenationType = 8
)

// HyphenationLocale selects locale-specific post-processing rules. It is
// derived once at construction time from a BCP 47 language tag.
type HyphenationLocale uint8

const (
	Other HyphenationLocale = iota
	Catalan
	Polish
	Slovenian
	Portuguese
)

func localeFromTag(tag string) HyphenationLocale {
	t, err := language.Parse(tag)
	if err != nil {
		return Other
	}
	base, conf := t.Base()
	if conf == language.No {
		return Other
	}
	switch base.String() {
	case "ca":
		return Catalan
	case "pl":
		return Polish
	case "sl":
		return Slovenian
	case "pt":
		return Portuguese
	default:
		return Other
	}
}

// Hyphenator performs Knuth-Liang hyphenation against a single compiled
// pattern blob. It is immutable after New returns, holds only a
// borrowed view of data, and is safe for concurrent use by any number of
// goroutines, each with its own output buffer.
type Hyphenator struct {
	data      []byte
	minPrefix int
	minSuffix int
	locale    HyphenationLocale
	oracle    script.Oracle

	// portuguesePreference mirrors the Android build-time flag of the
	// same name: when true (the non-Android default), a pattern break
	// adjacent to an existing hyphen prefers to land before the hyphen
	// in Portuguese and after it otherwise. Modeled as a field, per
	// spec.md's design note, rather than a hidden global.
	portuguesePreference bool
}

// Option configures a Hyphenator constructed by New.
type Option func(*Hyphenator)

// WithOracle overrides the script/joining-type oracle used for
// post-processing. The default is script.Default.
func WithOracle(o script.Oracle) Option {
	return func(h *Hyphenator) { h.oracle = o }
}

// WithPortuguesePreference sets whether a break adjacent to an existing
// hyphen prefers to land before the hyphen for Portuguese text. The
// default is true.
func WithPortuguesePreference(enabled bool) Option {
	return func(h *Hyphenator) { h.portuguesePreference = enabled }
}

// New creates a Hyphenator. data is a borrowed, possibly empty, view of
// a compiled pattern blob (see package pattern); it must outlive the
// Hyphenator. minPrefix and minSuffix are the minimum number of
// characters that must remain on the left/right of any break.
// localeTag is a BCP 47 language tag; tags that fail to parse, or whose
// base language is not one of "ca", "pl", "sl", "pt", resolve to Other.
func New(data []byte, minPrefix, minSuffix int, localeTag string, opts ...Option) *Hyphenator {
	h := &Hyphenator{
		data:                 data,
		minPrefix:            minPrefix,
		minSuffix:            minSuffix,
		locale:               localeFromTag(localeTag),
		oracle:               script.Default,
		portuguesePreference: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Locale returns the Hyphenator's resolved locale.
func (h *Hyphenator) Locale() HyphenationLocale {
	return h.locale
}

// Hyphenate fills out with a HyphenationType for every position of
// word. len(out) must equal len(word); Hyphenate panics otherwise, the
// same way a slice index out of range would.
func (h *Hyphenator) Hyphenate(word []uint16, out []byte) {
	if len(out) != len(word) {
		panic("hyphen: len(out) != len(word)")
	}
	for i := range out {
		out[i] = byte(DontBreak)
	}

	l := len(word)
	paddedLen := l + 2
	if len(h.data) > 0 && l >= h.minPrefix+h.minSuffix && paddedLen <= MaxWordSize {
		var scratch [MaxWordSize]uint16
		defaultType, ok := h.alphabetLookup(word, scratch[:])
		if ok && defaultType != DontBreak {
			h.hyphenateFromCodes(scratch[:paddedLen], word, defaultType, out)
			return
		}
		// An unmappable character (in practice: the word contains a
		// hyphen or soft hyphen, which never appear in the alphabet)
		// falls through to the no-pattern path below.
	}
	h.hyphenateWithNoPattern(word, out)
}
