// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/js-arias/iqmodel/project"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Trees, "trees.tab"},
		{project.SimParam, "sim-params.tab"},
		{project.Alignment, "alignment.phy"},
		{project.Log, "alignment.log"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := "tmp-project-for-test.tab"
	defer os.Remove(name)

	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)

	if prev := np.Add(project.Log, ""); prev != "alignment.log" {
		t.Errorf("remove: got previous path %q, want %q", prev, "alignment.log")
	}
	if path := np.Path(project.Log); path != "" {
		t.Errorf("remove: got path %q, want an empty path", path)
	}
}

func TestProjectData(t *testing.T) {
	p := project.New()
	p.SetName("no-data.tab")

	if _, err := p.Trees(); err == nil {
		t.Errorf("trees: expecting error")
	}
	if _, err := p.Alignment(); err == nil {
		t.Errorf("alignment: expecting error")
	}
	sp, err := p.SimParam()
	if err != nil {
		t.Fatalf("simparam: unexpected error: %v", err)
	}
	if s := sp.Model().IQTree(); s != "JC" {
		t.Errorf("simparam: model: got %q, want %q", s, "JC")
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"unknown dataset": "dataset\tpath\nranges\tranges.tab\n",
		"repeated":        "dataset\tpath\ntrees\ta.tab\ntrees\tb.tab\n",
		"empty path":      "dataset\tpath\ntrees\t\n",
		"no path field":   "dataset\tfile\ntrees\ttrees.tab\n",
	}

	dir := t.TempDir()
	for name, data := range tests {
		fn := filepath.Join(dir, "project.tab")
		if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
			t.Fatalf("%s: unable to write file: %v", name, err)
		}
		if _, err := project.Read(fn); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestClearOutputs(t *testing.T) {
	p := project.New()
	p.Add(project.Log, "alignment.log")
	p.Add(project.Trees, "trees.tab")
	p.Add(project.Alignment, "alignment.phy")
	p.Add(project.SimParam, "sim-params.tab")

	if got, want := p.Sets(), project.Datasets(); !reflect.DeepEqual(got, want) {
		t.Errorf("sets: got %v, want %v", got, want)
	}

	p.ClearOutputs()
	want := []setPath{
		{project.Trees, "trees.tab"},
		{project.SimParam, "sim-params.tab"},
	}
	testProject(t, p, want)
	for _, d := range project.Datasets() {
		if d.IsOutput() && p.Path(d) != "" {
			t.Errorf("dataset %s: output not removed", d)
		}
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}

	// datasets are listed inputs first
	var want []project.Dataset
	for _, d := range project.Datasets() {
		for _, s := range sets {
			if s.set == d {
				want = append(want, d)
			}
		}
	}
	if ls := p.Sets(); !reflect.DeepEqual(ls, want) {
		t.Errorf("sets: got %v, want %v", ls, want)
	}
}
