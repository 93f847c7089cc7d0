// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of iqmodel project files.
//
// A project is a tab-delimited file (TSV)
// that keeps the paths of the input files of a simulation
// (trees and simulation parameters)
// and of its outputs
// (the simulated alignment and the engine log).
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File for phylogenetic trees.
	Trees Dataset = "trees"

	// File for the simulation parameters.
	SimParam Dataset = "simparam"

	// File for the simulated alignment,
	// in PHYLIP format.
	Alignment Dataset = "alignment"

	// File for the engine log
	// of the last simulation.
	Log Dataset = "log"
)

// datasets in file order,
// inputs first.
var datasets = []Dataset{Trees, SimParam, Alignment, Log}

// Datasets returns the valid datasets
// in the order they are stored in a project file.
func Datasets() []Dataset {
	return slices.Clone(datasets)
}

// IsOutput returns true if the dataset
// is produced by a simulation.
func (d Dataset) IsOutput() bool {
	return d == Alignment || d == Log
}

func parseDataset(s string) (Dataset, error) {
	d := Dataset(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(datasets, d) {
		return "", fmt.Errorf("unknown dataset %q", s)
	}
	return d, nil
}

// A Project is the set of files
// used by a simulation.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{
		paths: make(map[Dataset]string),
	}
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a project file from a TSV file.
//
// The TSV must contain the following fields:
//
//   - dataset, for the kind of file
//   - path, for the path of the file
//
// Here is an example file:
//
//	# iqmodel project files
//	dataset	path
//	trees	trees.tab
//	simparam	sim-params.tab
//	alignment	alignment.phy
//	log	alignment.log
//
// Unknown datasets,
// repeated datasets,
// and empty paths are errors.
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	p.name = name
	return p, nil
}

func read(r io.Reader) (*Project, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[strings.ToLower(h)] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		set, err := parseDataset(row[fields["dataset"]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if _, dup := p.paths[set]; dup {
			return nil, fmt.Errorf("on row %d: dataset %q already defined", ln, set)
		}
		path := strings.TrimSpace(row[fields["path"]])
		if path == "" {
			return nil, fmt.Errorf("on row %d: empty path for dataset %q", ln, set)
		}
		p.paths[set] = path
	}

	return p, nil
}

// Add adds a filepath of a dataset to a given project.
// It returns the previous value
// for the dataset.
// An empty path removes the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}

	p.paths[set] = path
	return prev
}

// ClearOutputs removes the simulation outputs
// from the project,
// so a project never points to an alignment
// simulated with different trees or parameters.
// The files are not deleted.
func (p *Project) ClearOutputs() {
	for set := range p.paths {
		if set.IsOutput() {
			delete(p.paths, set)
		}
	}
}

// Path returns the path of the given dataset.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// Sets returns the datasets defined on a project,
// inputs first.
func (p *Project) Sets() []Dataset {
	var sets []Dataset
	for _, s := range datasets {
		if _, ok := p.paths[s]; ok {
			sets = append(sets, s)
		}
	}
	return sets
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project into a file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := p.write(f); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	return nil
}

func (p *Project) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# iqmodel project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, s := range p.Sets() {
		row := []string{
			string(s),
			p.paths[s],
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
