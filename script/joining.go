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

package script

import "sort"

// joinRange is one row of the curated joining-type table: all code
// points in [lo, hi] share typ. Ranges are sorted and non-overlapping so
// lookupJoiningType can binary search them.
type joinRange struct {
	lo, hi rune
	typ    JoiningType
}

func lookupJoiningType(cp rune) JoiningType {
	ranges := joiningRanges
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].hi >= cp })
	if i < len(ranges) && ranges[i].lo <= cp && cp <= ranges[i].hi {
		return ranges[i].typ
	}
	return NonJoining
}
