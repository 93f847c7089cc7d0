// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package model_test

import (
	"errors"
	"math"
	"testing"

	"github.com/js-arias/iqmodel/model"
	"pgregory.net/rapid"
)

func TestNew(t *testing.T) {
	tests := map[string]struct {
		base      any
		freq      model.FreqType
		rate      model.RateType
		invariant bool
		want      string
	}{
		"plain":      {model.GTR, model.DefaultFreq, nil, false, "GTR"},
		"string":     {"WS4.4a", model.DefaultFreq, nil, false, "WS4.4a"},
		"all":        {model.GTR, model.Optimized, model.Gamma{Cats: 4}, true, "GTR+FO+G4+I"},
		"gamma":      {model.GTR, model.DefaultFreq, model.Gamma{Cats: 4}, true, "GTR+G4+I"},
		"alpha":      {model.HKY, model.Empirical, model.Gamma{Cats: 8, Alpha: 0.5}, false, "HKY+F+G8{0.5}"},
		"free rate":  {model.LG, model.Equal, model.FreeRate{Cats: 6}, false, "LG+FQ+R6"},
		"invariant":  {model.Lie10_34, model.DefaultFreq, nil, true, "10.34+I"},
		"free rate2": {"NQ.insect", model.DefaultFreq, model.FreeRate{Cats: 3}, true, "NQ.insect+R3+I"},
	}

	for name, test := range tests {
		m, err := model.New(test.base, test.freq, test.rate, test.invariant)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if s := m.IQTree(); s != test.want {
			t.Errorf("%s: got %q, want %q", name, s, test.want)
		}
		if m.Freq() != test.freq {
			t.Errorf("%s: freq: got %v, want %v", name, m.Freq(), test.freq)
		}
		if m.Rate() != test.rate {
			t.Errorf("%s: rate: got %v, want %v", name, m.Rate(), test.rate)
		}
		if m.Invariant() != test.invariant {
			t.Errorf("%s: invariant: got %v, want %v", name, m.Invariant(), test.invariant)
		}
	}
}

func TestNewErrors(t *testing.T) {
	var ume *model.UnknownModelError
	if _, err := model.New("G8", model.DefaultFreq, nil, false); !errors.As(err, &ume) {
		t.Errorf("unknown base: got error %v, want %T", err, ume)
	}

	var mde *model.UnknownModifierError
	if _, err := model.New(model.GTR, model.FreqType(10), nil, false); !errors.As(err, &mde) {
		t.Errorf("invalid freq: got error %v, want %T", err, mde)
	}
	if _, err := model.New(model.GTR, model.DefaultFreq, model.Gamma{}, false); !errors.As(err, &mde) {
		t.Errorf("invalid gamma: got error %v, want %T", err, mde)
	}
	if _, err := model.New(model.GTR, model.DefaultFreq, model.FreeRate{Cats: -1}, false); !errors.As(err, &mde) {
		t.Errorf("invalid free rate: got error %v, want %T", err, mde)
	}
	for _, a := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		g := model.Gamma{Cats: 4, Alpha: a}
		if _, err := model.New(model.GTR, model.DefaultFreq, g, false); !errors.As(err, &mde) {
			t.Errorf("gamma alpha %v: got error %v, want %T", a, err, mde)
		}
	}
}

func TestParse(t *testing.T) {
	tests := map[string]string{
		"GTR":              "GTR",
		"GTR+G4+I":         "GTR+G4+I",
		"GTR+I+G4":         "GTR+G4+I",
		"GTR+I+G+F":        "GTR+F+G4+I",
		"JC+R":             "JC+R4",
		"RY5.11c+FO+R5":    "RY5.11c+FO+R5",
		"LG+G4{1.25}+FQ":   "LG+FQ+G4{1.25}",
		"Q.plant+I":        "Q.plant+I",
		"MK3.3b+FQ+G12+I":  "MK3.3b+FQ+G12+I",
		"UNREST+G4{2}+I+F": "UNREST+F+G4{2}+I",
	}

	for in, want := range tests {
		m, err := model.Parse(in)
		if err != nil {
			t.Errorf("parse %q: unexpected error: %v", in, err)
			continue
		}
		if s := m.IQTree(); s != want {
			t.Errorf("parse %q: got %q, want %q", in, s, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	var ume *model.UnknownModelError
	for _, in := range []string{"", "+GTR", "G8", "FQ", "gtr+G4"} {
		if _, err := model.Parse(in); !errors.As(err, &ume) {
			t.Errorf("parse %q: got error %v, want %T", in, err, ume)
		}
	}

	var mde *model.UnknownModifierError
	for _, in := range []string{"GTR+", "GTR+X", "GTR+I+I", "GTR+F+FO", "GTR+G4+R4", "GTR+G0", "GTR+Gx", "GTR+G4{-1}", "GTR+G4{1", "GTR++I", "GTR+G4{NaN}", "GTR+G4{inf}", "GTR+G4{+Inf}", "GTR+G{-Inf}"} {
		if _, err := model.Parse(in); !errors.As(err, &mde) {
			t.Errorf("parse %q: got error %v, want %T", in, err, mde)
		}
	}
}

func TestRateTypes(t *testing.T) {
	want := []string{"G4", "R4"}
	rt := model.RateTypes()
	if len(rt) != len(want) {
		t.Fatalf("rate types: got %d, want %d", len(rt), len(want))
	}
	for i, r := range rt {
		if r.IQTree() != want[i] {
			t.Errorf("rate type %d: got %q, want %q", i, r.IQTree(), want[i])
		}
		if r.Description() == "" {
			t.Errorf("rate type %q: undefined description", r.IQTree())
		}
	}
}

func TestFreqTypes(t *testing.T) {
	want := []string{"F", "FO", "FQ"}
	ft := model.FreqTypes()
	if len(ft) != len(want) {
		t.Fatalf("freq types: got %d, want %d", len(ft), len(want))
	}
	for i, f := range ft {
		if f.IQTree() != want[i] {
			t.Errorf("freq type %d: got %q, want %q", i, f.IQTree(), want[i])
		}
		if f.Description() == "" {
			t.Errorf("freq type %q: undefined description", f.IQTree())
		}
	}
}

func TestGammaRates(t *testing.T) {
	g := model.Gamma{Cats: 4, Alpha: 0.5}
	r := g.Rates()
	if len(r) != 4 {
		t.Fatalf("rates: got %d categories, want %d", len(r), 4)
	}
	var sum float64
	for _, v := range r {
		sum += v
	}
	if math.Abs(sum/4-1) > 1e-9 {
		t.Errorf("rates: got mean %.6f, want %.6f", sum/4, 1.0)
	}
}

func TestModelRoundTrip(t *testing.T) {
	var subs []model.Substitution
	for _, c := range model.Categories() {
		for _, m := range c.Models() {
			subs = append(subs, m)
			if l, ok := m.(model.Lie); ok {
				for _, s := range l.Symmetries() {
					li, _ := l.Qualify(string(s))
					subs = append(subs, li)
				}
			}
		}
	}
	freqs := append([]model.FreqType{model.DefaultFreq}, model.FreqTypes()...)

	rapid.Check(t, func(t *rapid.T) {
		sub := rapid.SampledFrom(subs).Draw(t, "sub")
		freq := rapid.SampledFrom(freqs).Draw(t, "freq")

		var rate model.RateType
		switch rapid.IntRange(0, 3).Draw(t, "rate") {
		case 1:
			rate = model.Gamma{Cats: rapid.IntRange(1, 16).Draw(t, "cats")}
		case 2:
			alpha := float64(rapid.IntRange(1, 400).Draw(t, "alpha")) / 100
			rate = model.Gamma{Cats: rapid.IntRange(1, 16).Draw(t, "cats"), Alpha: alpha}
		case 3:
			rate = model.FreeRate{Cats: rapid.IntRange(1, 16).Draw(t, "cats")}
		}
		inv := rapid.Bool().Draw(t, "invariant")

		m, err := model.New(sub, freq, rate, inv)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := m.IQTree()
		p, err := model.Parse(s)
		if err != nil {
			t.Fatalf("parse %q: unexpected error: %v", s, err)
		}
		if p != m {
			t.Fatalf("parse %q: got %v, want %v", s, p, m)
		}
		if p.IQTree() != s {
			t.Fatalf("parse %q: got %q", s, p.IQTree())
		}
	})
}
