// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/js-arias/timetree"
)

// RandomTrees generates a collection
// of random trees using the engine.
// Trees will be named with the given name
// and the index of the tree.
// If the request has a seed,
// each tree uses a consecutive seed.
func RandomTrees(ctx context.Context, e Engine, name string, numTrees int, req TreeRequest) (*timetree.Collection, error) {
	if req.NumTaxa < 3 {
		return nil, fmt.Errorf("invalid number of taxa: %d", req.NumTaxa)
	}
	if numTrees < 1 {
		return nil, fmt.Errorf("invalid number of trees: %d", numTrees)
	}

	coll := timetree.NewCollection()
	for i := 0; i < numTrees; i++ {
		r := req
		if r.Seed != 0 {
			r.Seed += int64(i)
		}
		nw, err := e.RandomTree(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("random tree %d: %w", i, err)
		}

		tn := fmt.Sprintf("%s.%d", name, i)
		nc, err := timetree.Newick(strings.NewReader(strings.TrimSpace(nw)), tn, 0)
		if err != nil {
			return nil, fmt.Errorf("random tree %d: %v", i, err)
		}
		for _, n := range nc.Names() {
			if err := coll.Add(nc.Tree(n)); err != nil {
				return nil, fmt.Errorf("random tree %d: %v", i, err)
			}
		}
	}
	return coll, nil
}
