// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/js-arias/iqmodel/indel"
	"github.com/js-arias/iqmodel/model"
	"github.com/js-arias/timetree"
	"gopkg.in/yaml.v3"
)

// Default values for an alignment simulation.
const (
	DefaultLength  = 1000
	DefaultThreads = 1
)

// SimOptions are the optional parameters
// of an alignment simulation.
// Zero values are replaced by the defaults.
type SimOptions struct {
	Seed          int64
	PartitionInfo []string
	PartitionType Partition

	// Length of the sequences,
	// by default 1000.
	Length int

	InsertionRate float64
	DeletionRate  float64

	// Sequence at the root of the trees.
	RootSeq string

	// Number of threads,
	// by default 1.
	Threads int

	InsertionSize indel.Dist
	DeletionSize  indel.Dist
}

// Result is the result of an alignment simulation.
type Result struct {
	Alignment *Alignment
	Log       string
}

// Request returns the engine request
// for the simulation of an alignment
// using the given trees and model.
func Request(trees []*timetree.Tree, m model.Model, opt SimOptions) (*SimRequest, error) {
	if len(trees) == 0 {
		return nil, errors.New("simulation without trees")
	}
	if m.Substitution() == nil {
		return nil, errors.New("simulation without substitution model")
	}

	if _, err := ParsePartition(string(opt.PartitionType)); err != nil {
		return nil, err
	}
	if opt.Length == 0 {
		opt.Length = DefaultLength
	}
	if opt.Length < 0 {
		return nil, fmt.Errorf("invalid sequence length: %d", opt.Length)
	}
	if opt.Threads == 0 {
		opt.Threads = DefaultThreads
	}
	if opt.Threads < 0 {
		return nil, fmt.Errorf("invalid number of threads: %d", opt.Threads)
	}
	if !finite(opt.InsertionRate) || opt.InsertionRate < 0 {
		return nil, fmt.Errorf("invalid insertion rate: %v", opt.InsertionRate)
	}
	if !finite(opt.DeletionRate) || opt.DeletionRate < 0 {
		return nil, fmt.Errorf("invalid deletion rate: %v", opt.DeletionRate)
	}

	req := &SimRequest{
		Model:         m.IQTree(),
		Seed:          opt.Seed,
		PartitionInfo: opt.PartitionInfo,
		PartitionType: string(opt.PartitionType),
		Length:        opt.Length,
		InsertionRate: opt.InsertionRate,
		DeletionRate:  opt.DeletionRate,
		RootSeq:       opt.RootSeq,
		Threads:       opt.Threads,
	}
	if req.PartitionInfo == nil {
		req.PartitionInfo = []string{}
	}
	if opt.InsertionSize != nil {
		if err := opt.InsertionSize.Validate(); err != nil {
			return nil, fmt.Errorf("insertion size: %v", err)
		}
		req.InsertionSize = opt.InsertionSize.IQTree()
	}
	if opt.DeletionSize != nil {
		if err := opt.DeletionSize.Validate(); err != nil {
			return nil, fmt.Errorf("deletion size: %v", err)
		}
		req.DeletionSize = opt.DeletionSize.IQTree()
	}

	for _, t := range trees {
		req.Trees = append(req.Trees, Newick(t))
	}
	return req, nil
}

// SimulateAlignment simulates an alignment
// using the given engine.
// Engines might limit the number of trees,
// for example, Command accepts a single tree.
func SimulateAlignment(ctx context.Context, e Engine, trees []*timetree.Tree, m model.Model, opt SimOptions) (*Result, error) {
	req, err := Request(trees, m, opt)
	if err != nil {
		return nil, err
	}

	data, err := e.Simulate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("simulation with model %q: %w", req.Model, err)
	}
	return DecodeResult(data)
}

type resultDoc struct {
	Alignment string `yaml:"alignment"`
	Log       string `yaml:"log"`
}

// DecodeResult decodes the YAML document
// returned by an engine simulation.
func DecodeResult(data []byte) (*Result, error) {
	var doc resultDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing engine result: %w", err)
	}
	if doc.Alignment == "" {
		return nil, errors.New("parsing engine result: empty alignment")
	}

	aln, err := ReadPhylip(strings.NewReader(doc.Alignment))
	if err != nil {
		return nil, fmt.Errorf("parsing engine result: %w", err)
	}
	return &Result{
		Alignment: aln,
		Log:       doc.Log,
	}, nil
}

// EncodeResult encodes the result of a simulation
// as the YAML document returned by an engine.
func EncodeResult(alignment, log string) ([]byte, error) {
	return yaml.Marshal(resultDoc{
		Alignment: alignment,
		Log:       log,
	})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
