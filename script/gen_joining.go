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

//go:build ignore

// This program regenerates joining_table.go from Unicode's
// ArabicShaping.txt. It is not part of the build; run it manually with
// `go run gen_joining.go <path-to-ArabicShaping.txt> >joining_table.go`
// after formatting the output with gofmt.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

type row struct {
	cp  int64
	typ string // one of R, L, D, C, T, U
}

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: gen_joining ArabicShaping.txt")
	}
	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var rows []row
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) < 3 {
			continue
		}
		cp, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 16, 32)
		if err != nil {
			continue
		}
		typ := strings.TrimSpace(fields[2])
		rows = append(rows, row{cp: cp, typ: typ})
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].cp < rows[j].cp })

	fmt.Println("package script")
	fmt.Println()
	fmt.Println("var joiningRanges = []joinRange{")
	for i := 0; i < len(rows); {
		j := i + 1
		for j < len(rows) && rows[j].typ == rows[i].typ && rows[j].cp == rows[j-1].cp+1 {
			j++
		}
		fmt.Printf("\t{0x%04X, 0x%04X, %s},\n", rows[i].cp, rows[j-1].cp, goType(rows[i].typ))
		i = j
	}
	fmt.Println("}")
}

func goType(code string) string {
	switch code {
	case "R":
		return "RightJoining"
	case "L":
		return "LeftJoining"
	case "D":
		return "DualJoining"
	case "C":
		return "JoinCausing"
	case "T":
		return "Transparent"
	default:
		return "NonJoining"
	}
}
