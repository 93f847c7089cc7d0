// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package engine implements the boundary
// with the IQ-TREE engine.
//
// The engine is an opaque collaborator
// that receives a fully rendered model string,
// and other scalar arguments,
// and returns a serialized result.
package engine

import (
	"context"
	"fmt"
)

// An Engine is an implementation
// of the IQ-TREE engine.
// Each call is synchronous and single-shot.
type Engine interface {
	// Simulate runs an alignment simulation
	// and returns a YAML document
	// with the keys "alignment"
	// (a PHYLIP alignment)
	// and "log".
	Simulate(ctx context.Context, req *SimRequest) ([]byte, error)

	// RandomTree returns a random tree
	// in Newick format.
	RandomTree(ctx context.Context, req TreeRequest) (string, error)
}

// SimRequest contains the arguments
// of an alignment simulation,
// as they are passed to the engine.
type SimRequest struct {
	Trees         []string // trees in Newick format
	Model         string
	Seed          int64
	PartitionInfo []string
	PartitionType string
	Length        int
	InsertionRate float64
	DeletionRate  float64
	RootSeq       string
	Threads       int
	InsertionSize string
	DeletionSize  string
}

// Partition is the way in which
// the partitions of a simulation
// share branch lengths.
type Partition string

// Valid partition types.
const (
	NoPartition Partition = ""

	// Partitions share the same branch lengths.
	EqualPartition Partition = "equal"

	// Partitions have proportional branch lengths.
	ProportionPartition Partition = "proportion"

	// Each partition has its own branch lengths.
	UnlinkedPartition Partition = "unlinked"
)

// ParsePartition returns a partition type from a string.
func ParsePartition(s string) (Partition, error) {
	switch p := Partition(s); p {
	case NoPartition, EqualPartition, ProportionPartition, UnlinkedPartition:
		return p, nil
	}
	return NoPartition, fmt.Errorf("invalid partition type %q: expecting 'equal', 'proportion', or 'unlinked'", s)
}

// TreeGenMode is the setting used
// to generate random trees.
type TreeGenMode int

// Valid tree generation modes.
const (
	YuleHarding TreeGenMode = iota
	Uniform
	Caterpillar
	Balanced
	BirthDeath
	StarTree
)

var treeModes = [...]string{
	YuleHarding: "YULE_HARDING",
	Uniform:     "UNIFORM",
	Caterpillar: "CATERPILLAR",
	Balanced:    "BALANCED",
	BirthDeath:  "BIRTH_DEATH",
	StarTree:    "STAR_TREE",
}

// TreeGenModes returns the valid tree generation modes.
func TreeGenModes() []TreeGenMode {
	return []TreeGenMode{YuleHarding, Uniform, Caterpillar, Balanced, BirthDeath, StarTree}
}

// ParseTreeGenMode returns a tree generation mode
// from its name.
func ParseTreeGenMode(s string) (TreeGenMode, error) {
	for i, n := range treeModes {
		if n == s {
			return TreeGenMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tree generation mode %q", s)
}

// String returns the name of the mode.
func (m TreeGenMode) String() string {
	if m < 0 || int(m) >= len(treeModes) {
		return "UNKNOWN"
	}
	return treeModes[m]
}

// TreeRequest contains the arguments
// for the generation of a random tree.
type TreeRequest struct {
	NumTaxa int
	Mode    TreeGenMode

	// Random seed,
	// 0 means no seed.
	Seed int64
}
