// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package engine

import (
	"strconv"
	"strings"

	"github.com/js-arias/timetree"
)

// MillionYears is the number of years in a million years,
// the unit of branch lengths in Newick trees.
const MillionYears = 1_000_000

// Newick returns a tree in Newick format,
// with branch lengths in million years.
// Spaces in taxon names are replaced by underscores.
func Newick(t *timetree.Tree) string {
	var b strings.Builder
	writeNode(&b, t, t.Root())
	b.WriteString(";")
	return b.String()
}

func writeNode(b *strings.Builder, t *timetree.Tree, id int) {
	if t.IsTerm(id) {
		b.WriteString(strings.Join(strings.Fields(t.Taxon(id)), "_"))
	} else {
		b.WriteString("(")
		for i, c := range t.Children(id) {
			if i > 0 {
				b.WriteString(",")
			}
			writeNode(b, t, c)
		}
		b.WriteString(")")
	}

	if t.IsRoot(id) {
		return
	}
	brLen := float64(t.Age(t.Parent(id))-t.Age(id)) / MillionYears
	b.WriteString(":")
	b.WriteString(strconv.FormatFloat(brLen, 'f', -1, 64))
}
