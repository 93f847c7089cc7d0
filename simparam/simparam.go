// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package simparam implements reading and writing
// of the parameters for an alignment simulation.
package simparam

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/js-arias/iqmodel/engine"
	"github.com/js-arias/iqmodel/indel"
	"github.com/js-arias/iqmodel/model"
)

// Param is a keyword to identify
// the type of parameter in a simulation parameters file.
type Param string

// Valid parameters
const (
	// Model is the substitution model,
	// with its modifiers.
	Model Param = "model"

	// Seed is the random seed.
	Seed Param = "seed"

	// Length is the length of the simulated sequences.
	Length Param = "length"

	// Threads is the number of threads used by the engine.
	Threads Param = "threads"

	// Insertion is the insertion rate.
	Insertion Param = "insertion"

	// Deletion is the deletion rate.
	Deletion Param = "deletion"

	// InsertionSize is the distribution
	// of the insertion sizes.
	InsertionSize Param = "insertion-size"

	// DeletionSize is the distribution
	// of the deletion sizes.
	DeletionSize Param = "deletion-size"
)

// SP represents a collection of simulation parameters.
type SP struct {
	name string // file name

	m       model.Model
	seed    int64
	length  int
	threads int

	// indels
	ins     float64
	del     float64
	insSize indel.Dist
	delSize indel.Dist
}

// New creates a new parameter collection
// using the JC model
// and the engine defaults.
func New(name string) *SP {
	m, err := model.New(model.JC, model.DefaultFreq, nil, false)
	if err != nil {
		panic(err)
	}
	return &SP{
		name:    name,
		m:       m,
		length:  engine.DefaultLength,
		threads: engine.DefaultThreads,
	}
}

var header = []string{
	"parameter",
	"value",
}

// Read reads a simulation parameters file from a TSV file.
//
// The TSV must contains the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Here is an example file:
//
//	# iqmodel simulation parameters
//	parameter	value
//	model	GTR+G4+I
//	seed	1
//	length	1000
//	threads	1
//	insertion	0.03
//	deletion	0.04
//	insertion-size	POW{1.7/100}
//	deletion-size	GEO{0.5}
func Read(name string) (*SP, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sp, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	sp.name = name
	return sp, nil
}

func read(r io.Reader) (*SP, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	sp := New("")
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "parameter"
		p := Param(strings.ToLower(row[fields[f]]))

		f = "value"
		v := strings.TrimSpace(row[fields[f]])
		if err := sp.set(p, v); err != nil {
			return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
		}
	}
	return sp, nil
}

func (sp *SP) set(p Param, v string) error {
	switch p {
	case Model:
		return sp.SetModel(v)
	case Seed:
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		sp.seed = s
	case Length:
		l, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		return sp.SetLength(l)
	case Threads:
		t, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		return sp.SetThreads(t)
	case Insertion:
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		return sp.SetIndel(r, sp.del)
	case Deletion:
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		return sp.SetIndel(sp.ins, r)
	case InsertionSize:
		return sp.SetInsertionSize(v)
	case DeletionSize:
		return sp.SetDeletionSize(v)
	}
	return nil
}

// Model returns the substitution model.
func (sp *SP) Model() model.Model {
	return sp.m
}

// Name returns the name used for a set of parameters.
func (sp *SP) Name() string {
	return sp.name
}

// Options returns the engine options
// defined by the parameters.
func (sp *SP) Options() engine.SimOptions {
	return engine.SimOptions{
		Seed:          sp.seed,
		Length:        sp.length,
		Threads:       sp.threads,
		InsertionRate: sp.ins,
		DeletionRate:  sp.del,
		InsertionSize: sp.insSize,
		DeletionSize:  sp.delSize,
	}
}

// SetIndel sets the insertion
// and deletion rates.
func (sp *SP) SetIndel(ins, del float64) error {
	if math.IsNaN(ins) || math.IsInf(ins, 0) || ins < 0 {
		return fmt.Errorf("invalid insertion rate: %v", ins)
	}
	if math.IsNaN(del) || math.IsInf(del, 0) || del < 0 {
		return fmt.Errorf("invalid deletion rate: %v", del)
	}
	sp.ins = ins
	sp.del = del
	return nil
}

// SetInsertionSize sets the distribution
// of the insertion sizes.
// An empty string removes the distribution.
func (sp *SP) SetInsertionSize(s string) error {
	d, err := parseSize(s)
	if err != nil {
		return err
	}
	sp.insSize = d
	return nil
}

// SetDeletionSize sets the distribution
// of the deletion sizes.
// An empty string removes the distribution.
func (sp *SP) SetDeletionSize(s string) error {
	d, err := parseSize(s)
	if err != nil {
		return err
	}
	sp.delSize = d
	return nil
}

func parseSize(s string) (indel.Dist, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return indel.Parse(s)
}

// SetLength sets the length of the simulated sequences.
func (sp *SP) SetLength(l int) error {
	if l < 1 {
		return fmt.Errorf("invalid sequence length: %d", l)
	}
	sp.length = l
	return nil
}

// SetModel sets the model
// from a model string.
func (sp *SP) SetModel(s string) error {
	m, err := model.Parse(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	sp.m = m
	return nil
}

// SetName sets the name of a parameter collection.
func (sp *SP) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	sp.name = name
}

// SetSeed sets the random seed.
// A zero value means no seed.
func (sp *SP) SetSeed(seed int64) {
	sp.seed = seed
}

// SetThreads sets the number of threads.
func (sp *SP) SetThreads(t int) error {
	if t < 1 {
		return fmt.Errorf("invalid number of threads: %d", t)
	}
	sp.threads = t
	return nil
}

// Write writes a parameter collection into a file.
func (sp *SP) Write() (err error) {
	f, err := os.Create(sp.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := sp.write(f); err != nil {
		return fmt.Errorf("on file %q: %v", sp.name, err)
	}
	return nil
}

func (sp *SP) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# iqmodel simulation parameters\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	rows := [][]string{
		{string(Model), sp.m.IQTree()},
		{string(Seed), strconv.FormatInt(sp.seed, 10)},
		{string(Length), strconv.Itoa(sp.length)},
		{string(Threads), strconv.Itoa(sp.threads)},
		{string(Insertion), strconv.FormatFloat(sp.ins, 'g', -1, 64)},
		{string(Deletion), strconv.FormatFloat(sp.del, 'g', -1, 64)},
	}
	if sp.insSize != nil {
		rows = append(rows, []string{string(InsertionSize), sp.insSize.IQTree()})
	}
	if sp.delSize != nil {
		rows = append(rows, []string{string(DeletionSize), sp.delSize.IQTree()})
	}
	for _, row := range rows {
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
