// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/js-arias/iqmodel/model"
)

func TestCategories(t *testing.T) {
	tests := map[model.Category]struct {
		n    int
		kind model.Kind
		str  string
	}{
		model.StandardDNA: {int(model.Unrest) + 1, model.Nucleotide, "nucleotide"},
		model.AminoAcid:   {int(model.WAG) + 1, model.Protein, "protein"},
		model.LieMarkov:   {int(model.Lie12_12) + 1, model.Nucleotide, "nucleotide"},
	}

	for c, test := range tests {
		if c.Len() != test.n {
			t.Errorf("%s: len: got %d, want %d", c, c.Len(), test.n)
		}
		ms := c.Models()
		if len(ms) != test.n {
			t.Errorf("%s: models: got %d, want %d", c, len(ms), test.n)
		}
		if c.Type() != test.kind {
			t.Errorf("%s: type: got %s, want %s", c, c.Type(), test.kind)
		}
		for _, m := range ms {
			if m.Description() == "" {
				t.Errorf("%s: model %q: undefined description", c, m.IQTree())
			}
			if m.Type() != test.kind {
				t.Errorf("%s: model %q: type: got %s, want %s", c, m.IQTree(), m.Type(), test.kind)
			}
			if s := m.Type().String(); s != test.str {
				t.Errorf("%s: model %q: type string: got %q, want %q", c, m.IQTree(), s, test.str)
			}
		}
	}
}

func TestDeclarationOrder(t *testing.T) {
	ms := model.StandardDNA.Models()
	if ms[0] != model.JC || ms[len(ms)-1] != model.Unrest {
		t.Errorf("dna order: got %v ... %v, want %v ... %v", ms[0], ms[len(ms)-1], model.JC, model.Unrest)
	}
	for i, m := range model.LieMarkov.Models() {
		if m != model.Lie(i) {
			t.Errorf("lie order: model %d: got %v, want %v", i, m, model.Lie(i))
		}
	}
}

func TestUniqueStrings(t *testing.T) {
	seen := make(map[string]model.Substitution)
	for _, c := range model.Categories() {
		for _, m := range c.Models() {
			ls := []model.Substitution{m}
			if l, ok := m.(model.Lie); ok {
				for _, s := range l.Symmetries() {
					li, err := l.Qualify(string(s))
					if err != nil {
						t.Fatalf("model %q: symmetry %q: %v", l.IQTree(), s, err)
					}
					ls = append(ls, li)
				}
			}
			for _, v := range ls {
				if prev, ok := seen[v.IQTree()]; ok {
					t.Errorf("string %q: used by %v and %v", v.IQTree(), prev, v)
				}
				seen[v.IQTree()] = v
			}
		}
	}
}

func TestGet(t *testing.T) {
	ws44a, err := model.Lie4_4a.Qualify("WS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ry511c, err := model.Lie5_11c.Qualify("RY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		want model.Substitution
		str  string
	}{
		"F81":       {model.F81, "F81"},
		"10.34":     {model.Lie10_34, "10.34"},
		"WS4.4a":    {ws44a, "WS4.4a"},
		"RY5.11c":   {ry511c, "RY5.11c"},
		"NQ.insect": {model.NQInsect, "NQ.insect"},
		"NQ.yeast":  {model.NQYeast, "NQ.yeast"},
		"GTR":       {model.GTR, "GTR"},
		"2.2b":      {model.Lie2_2b, "2.2b"},
		"STRSYM":    {model.StrSym, "STRSYM"},
		"mtART":     {model.MtART, "mtART"},
		"MK12.12":   {nil, ""},
	}

	for in, test := range tests {
		got, err := model.Get(in)
		if test.want == nil {
			if err == nil {
				t.Errorf("get %q: expecting error, got %v", in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("get %q: unexpected error: %v", in, err)
			continue
		}
		if got != test.want {
			t.Errorf("get %q: got %v, want %v", in, got, test.want)
		}
		if s := got.IQTree(); s != test.str {
			t.Errorf("get %q: string: got %q, want %q", in, s, test.str)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	for _, in := range []string{"FQ", "F", "+GTR", "AA", "G8", "", "gtr", "ws4.4a", "XY4.4a", "GTR+G4"} {
		m, err := model.Get(in)
		if err == nil {
			t.Errorf("get %q: expecting error, got %v", in, m)
			continue
		}
		var ume *model.UnknownModelError
		if !errors.As(err, &ume) {
			t.Errorf("get %q: got error %T, want %T", in, err, ume)
		}
		want := fmt.Sprintf("Unknown substitution model: %q", in)
		if err.Error() != want {
			t.Errorf("get %q: message: got %q, want %q", in, err.Error(), want)
		}
	}
}

func TestResolve(t *testing.T) {
	li, _ := model.Lie6_7a.Qualify("MK")
	for _, v := range []model.Substitution{model.HKY, model.LG, model.Lie3_3b, li} {
		got, err := model.Resolve(v)
		if err != nil {
			t.Errorf("resolve %v: unexpected error: %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("resolve %v: got %v", v, got)
		}
	}

	got, err := model.Resolve("MK6.7a")
	if err != nil {
		t.Fatalf("resolve string: unexpected error: %v", err)
	}
	if got != li {
		t.Errorf("resolve string: got %v, want %v", got, li)
	}

	if _, err := model.Resolve(3); err == nil {
		t.Errorf("resolve int: expecting error")
	}

	got, err = model.Resolve(rawModel("GTR"))
	if err != nil {
		t.Fatalf("resolve external model: unexpected error: %v", err)
	}
	if got != model.GTR {
		t.Errorf("resolve external model: got %v, want %v", got, model.GTR)
	}
}

// rawModel is a substitution model
// defined outside the model package.
type rawModel string

func (r rawModel) IQTree() string      { return string(r) }
func (r rawModel) Type() model.Kind    { return model.Nucleotide }
func (r rawModel) Description() string { return "raw model" }

func TestResolveInvalid(t *testing.T) {
	tests := map[string]any{
		"zero Lie instance":   model.LieInstance{},
		"DNA out of range":    model.DNA(99),
		"negative DNA":        model.DNA(-1),
		"AA out of range":     model.AA(1000),
		"Lie out of range":    model.Lie(37),
		"unknown raw model":   rawModel("XYZ"),
		"raw lowercase model": rawModel("gtr"),
	}

	for name, v := range tests {
		var ume *model.UnknownModelError
		if _, err := model.Resolve(v); !errors.As(err, &ume) {
			t.Errorf("%s: got error %v, want %T", name, err, ume)
		}
		if _, err := model.New(v, model.DefaultFreq, nil, false); !errors.As(err, &ume) {
			t.Errorf("%s: new: got error %v, want %T", name, err, ume)
		}
	}
}

func TestQualify(t *testing.T) {
	li, err := model.Lie4_4a.Qualify("WS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if li.Model() != model.Lie4_4a {
		t.Errorf("model: got %v, want %v", li.Model(), model.Lie4_4a)
	}
	if li.Symmetry() != model.WS {
		t.Errorf("symmetry: got %v, want %v", li.Symmetry(), model.WS)
	}
	if li.Type() != model.Nucleotide {
		t.Errorf("type: got %v, want %v", li.Type(), model.Nucleotide)
	}

	var uqe *model.UnknownQualifierError
	for _, code := range []string{"ws", "XY", "RYW", " RY"} {
		if _, err := model.Lie4_4a.Qualify(code); !errors.As(err, &uqe) {
			t.Errorf("qualify %q: got error %v, want %T", code, err, uqe)
		}
	}
	for _, m := range []model.Lie{model.Lie1_1, model.Lie12_12} {
		if len(m.Symmetries()) != 0 {
			t.Errorf("model %v: got symmetries %v", m, m.Symmetries())
		}
		if _, err := m.Qualify("RY"); !errors.As(err, &uqe) {
			t.Errorf("model %v: got error %v, want %T", m, err, uqe)
		}
	}

	var mqe *model.MissingQualifierError
	if _, err := model.Lie5_11c.Qualify(""); !errors.As(err, &mqe) {
		t.Errorf("empty qualifier: got error %v, want %T", err, mqe)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range model.Categories() {
		for _, m := range c.Models() {
			testRoundTrip(t, m)
			l, ok := m.(model.Lie)
			if !ok {
				continue
			}
			for _, s := range l.Symmetries() {
				li, err := l.Qualify(string(s))
				if err != nil {
					t.Fatalf("model %v: symmetry %q: %v", l, s, err)
				}
				testRoundTrip(t, li)
			}
		}
	}
}

func testRoundTrip(t testing.TB, m model.Substitution) {
	t.Helper()

	s := m.IQTree()
	if s2 := m.IQTree(); s != s2 {
		t.Errorf("model %v: render not deterministic: %q %q", m, s, s2)
	}
	got, err := model.Get(s)
	if err != nil {
		t.Errorf("model %q: unexpected error: %v", s, err)
		return
	}
	if got != m {
		t.Errorf("model %q: got %v, want %v", s, got, m)
	}
	if got.IQTree() != s {
		t.Errorf("model %q: string: got %q", s, got.IQTree())
	}
}
