// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package engine_test

import (
	"context"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/iqmodel/engine"
	"github.com/js-arias/iqmodel/indel"
	"github.com/js-arias/iqmodel/model"
	"github.com/js-arias/timetree"
	"golang.org/x/exp/slices"
)

const treeTSV = `# time calibrated phylogenetic tree
tree	node	parent	age	taxon
test	0	-1	10000000	
test	1	0	0	Alpha
test	2	0	5000000	
test	3	2	0	Beta
test	4	2	0	Gamma
`

const phylip = `3 8
Alpha  ACGTACGT
Beta   ACGTACGA
Gamma  ACCTACGA
`

type fakeEngine struct {
	req   *engine.SimRequest
	trees []engine.TreeRequest
	err   error
}

func (f *fakeEngine) Simulate(ctx context.Context, req *engine.SimRequest) ([]byte, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return engine.EncodeResult(phylip, "simulation done")
}

func (f *fakeEngine) RandomTree(ctx context.Context, req engine.TreeRequest) (string, error) {
	f.trees = append(f.trees, req)
	if f.err != nil {
		return "", f.err
	}
	return "((a:1,b:1):1,(c:0.5,d:0.5):1.5);\n", nil
}

func readTree(t testing.TB) *timetree.Tree {
	t.Helper()

	c, err := timetree.ReadTSV(strings.NewReader(treeTSV))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	return c.Tree("test")
}

func TestNewick(t *testing.T) {
	tr := readTree(t)
	nw := engine.Newick(tr)
	if !strings.HasSuffix(nw, ";") {
		t.Errorf("newick %q: expecting ';' at the end", nw)
	}

	c, err := timetree.Newick(strings.NewReader(nw), "back", 0)
	if err != nil {
		t.Fatalf("newick %q: unable to read: %v", nw, err)
	}
	names := c.Names()
	if len(names) != 1 {
		t.Fatalf("newick %q: got %d trees, want 1", nw, len(names))
	}
	back := c.Tree(names[0])

	want := tr.Terms()
	slices.Sort(want)
	got := back.Terms()
	slices.Sort(got)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("newick %q: terms: got %v, want %v", nw, got, want)
	}
	if a := back.Age(back.Root()); a != tr.Age(tr.Root()) {
		t.Errorf("newick %q: root age: got %d, want %d", nw, a, tr.Age(tr.Root()))
	}
}

func TestRequest(t *testing.T) {
	tr := readTree(t)
	m, err := model.Parse("GTR+G4+I")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, err := engine.Request([]*timetree.Tree{tr}, m, engine.SimOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Model != "GTR+G4+I" {
		t.Errorf("model: got %q, want %q", req.Model, "GTR+G4+I")
	}
	if req.Length != engine.DefaultLength {
		t.Errorf("length: got %d, want %d", req.Length, engine.DefaultLength)
	}
	if req.Threads != engine.DefaultThreads {
		t.Errorf("threads: got %d, want %d", req.Threads, engine.DefaultThreads)
	}
	if req.PartitionInfo == nil || len(req.PartitionInfo) != 0 {
		t.Errorf("partition info: got %v, want an empty list", req.PartitionInfo)
	}
	if req.PartitionType != "" || req.RootSeq != "" || req.InsertionSize != "" || req.DeletionSize != "" {
		t.Errorf("strings: expecting empty values, got %+v", req)
	}
	if len(req.Trees) != 1 || req.Trees[0] != engine.Newick(tr) {
		t.Errorf("trees: got %v, want %v", req.Trees, []string{engine.Newick(tr)})
	}

	opt := engine.SimOptions{
		Seed:          7,
		PartitionType: engine.UnlinkedPartition,
		Length:        500,
		InsertionRate: 0.03,
		DeletionRate:  0.04,
		Threads:       2,
		InsertionSize: indel.Geometric{P: 0.5},
		DeletionSize:  indel.Zipf{A: 1.7, Max: 100},
	}
	req, err = engine.Request([]*timetree.Tree{tr}, m, opt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Length != 500 || req.Threads != 2 || req.Seed != 7 {
		t.Errorf("scalars: got %+v", req)
	}
	if req.PartitionType != "unlinked" {
		t.Errorf("partition: got %q, want %q", req.PartitionType, "unlinked")
	}
	if req.InsertionSize != "GEO{0.5}" || req.DeletionSize != "POW{1.7/100}" {
		t.Errorf("indel size: got %q %q", req.InsertionSize, req.DeletionSize)
	}
}

func TestRequestErrors(t *testing.T) {
	tr := readTree(t)
	m, _ := model.New(model.JC, model.DefaultFreq, nil, false)

	tests := map[string]struct {
		trees []*timetree.Tree
		m     model.Model
		opt   engine.SimOptions
	}{
		"no trees":      {nil, m, engine.SimOptions{}},
		"no model":      {[]*timetree.Tree{tr}, model.Model{}, engine.SimOptions{}},
		"partition":     {[]*timetree.Tree{tr}, m, engine.SimOptions{PartitionType: "linked"}},
		"length":        {[]*timetree.Tree{tr}, m, engine.SimOptions{Length: -1}},
		"threads":       {[]*timetree.Tree{tr}, m, engine.SimOptions{Threads: -2}},
		"insertion":     {[]*timetree.Tree{tr}, m, engine.SimOptions{InsertionRate: -0.1}},
		"deletion":      {[]*timetree.Tree{tr}, m, engine.SimOptions{DeletionRate: -0.1}},
		"indel sizes":   {[]*timetree.Tree{tr}, m, engine.SimOptions{InsertionSize: indel.Geometric{P: 2}}},
		"insertion NaN": {[]*timetree.Tree{tr}, m, engine.SimOptions{InsertionRate: math.NaN()}},
		"deletion Inf":  {[]*timetree.Tree{tr}, m, engine.SimOptions{DeletionRate: math.Inf(1)}},
		"size NaN":      {[]*timetree.Tree{tr}, m, engine.SimOptions{DeletionSize: indel.Zipf{A: math.NaN(), Max: 100}}},
	}
	for name, test := range tests {
		if _, err := engine.Request(test.trees, test.m, test.opt); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestSimulateAlignment(t *testing.T) {
	tr := readTree(t)
	m, err := model.Parse("HKY+F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := &fakeEngine{}
	res, err := engine.SimulateAlignment(context.Background(), e, []*timetree.Tree{tr}, m, engine.SimOptions{Length: 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.req.Model != "HKY+F" {
		t.Errorf("request model: got %q, want %q", e.req.Model, "HKY+F")
	}
	if res.Log != "simulation done" {
		t.Errorf("log: got %q, want %q", res.Log, "simulation done")
	}
	if res.Alignment.Len() != 8 {
		t.Errorf("alignment length: got %d, want %d", res.Alignment.Len(), 8)
	}
	if res.Alignment.NumSeqs() != len(tr.Terms()) {
		t.Errorf("alignment sequences: got %d, want %d", res.Alignment.NumSeqs(), len(tr.Terms()))
	}

	fail := errors.New("engine failure")
	e = &fakeEngine{err: fail}
	if _, err := engine.SimulateAlignment(context.Background(), e, []*timetree.Tree{tr}, m, engine.SimOptions{}); !errors.Is(err, fail) {
		t.Errorf("engine error: got %v, want %v", err, fail)
	}
}

func TestDecodeResult(t *testing.T) {
	if _, err := engine.DecodeResult([]byte("log: only a log\n")); err == nil {
		t.Errorf("empty alignment: expecting error")
	}
	if _, err := engine.DecodeResult([]byte("alignment: [1, 2\n")); err == nil {
		t.Errorf("invalid yaml: expecting error")
	}
}

func TestReadPhylip(t *testing.T) {
	aln, err := engine.ReadPhylip(strings.NewReader(phylip))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testAlignment(t, "read", aln)

	var b strings.Builder
	if err := aln.Phylip(&b); err != nil {
		t.Fatalf("unable to write alignment: %v", err)
	}
	back, err := engine.ReadPhylip(strings.NewReader(b.String()))
	if err != nil {
		t.Logf("output:\n%s\n", b.String())
		t.Fatalf("unable to read alignment: %v", err)
	}
	testAlignment(t, "write", back)

	for _, in := range []string{
		"",
		"3\nAlpha ACGT\n",
		"2 4\nAlpha ACGT\n",
		"2 4\nAlpha ACGT\nBeta ACG\n",
		"2 4\nAlpha ACGT\nAlpha ACGT\n",
	} {
		if _, err := engine.ReadPhylip(strings.NewReader(in)); err == nil {
			t.Errorf("read %q: expecting error", in)
		}
	}
}

func testAlignment(t testing.TB, name string, aln *engine.Alignment) {
	t.Helper()

	names := []string{"Alpha", "Beta", "Gamma"}
	if got := aln.Names(); !reflect.DeepEqual(got, names) {
		t.Errorf("%s: names: got %v, want %v", name, got, names)
	}
	if aln.Len() != 8 {
		t.Errorf("%s: length: got %d, want %d", name, aln.Len(), 8)
	}
	if s := aln.Seq("Gamma"); s != "ACCTACGA" {
		t.Errorf("%s: sequence: got %q, want %q", name, s, "ACCTACGA")
	}
}

func TestRandomTrees(t *testing.T) {
	e := &fakeEngine{}
	req := engine.TreeRequest{
		NumTaxa: 4,
		Mode:    engine.Balanced,
		Seed:    10,
	}
	c, err := engine.RandomTrees(context.Background(), e, "random", 3, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(c.Names()); n != 3 {
		t.Errorf("trees: got %d, want %d", n, 3)
	}
	for i, r := range e.trees {
		if r.Seed != 10+int64(i) {
			t.Errorf("tree %d: seed: got %d, want %d", i, r.Seed, 10+i)
		}
		if r.Mode != engine.Balanced {
			t.Errorf("tree %d: mode: got %v, want %v", i, r.Mode, engine.Balanced)
		}
	}

	if _, err := engine.RandomTrees(context.Background(), e, "random", 1, engine.TreeRequest{NumTaxa: 2}); err == nil {
		t.Errorf("two taxa: expecting error")
	}
}

func TestTreeGenModes(t *testing.T) {
	for _, m := range engine.TreeGenModes() {
		got, err := engine.ParseTreeGenMode(m.String())
		if err != nil {
			t.Errorf("mode %v: unexpected error: %v", m, err)
			continue
		}
		if got != m {
			t.Errorf("mode %v: got %v", m, got)
		}
	}
	if _, err := engine.ParseTreeGenMode("yule"); err == nil {
		t.Errorf("unknown mode: expecting error")
	}
}

func TestParsePartition(t *testing.T) {
	for _, s := range []string{"", "equal", "proportion", "unlinked"} {
		if _, err := engine.ParsePartition(s); err != nil {
			t.Errorf("partition %q: unexpected error: %v", s, err)
		}
	}
	if _, err := engine.ParsePartition("Equal"); err == nil {
		t.Errorf("partition %q: expecting error", "Equal")
	}
}
