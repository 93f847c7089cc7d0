// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package model

import (
	"math"
	"strings"
)

// Model is a substitution model
// with its optional modifiers:
// a frequency type,
// a rate heterogeneity model,
// and invariant sites.
type Model struct {
	sub       Substitution
	freq      FreqType
	rate      RateType
	invariant bool
}

// New creates a new model.
// The base model can be a Substitution value
// or a string accepted by Get.
// Use DefaultFreq and a nil rate
// for a model without frequency type
// or rate heterogeneity.
func New(base any, freq FreqType, rate RateType, invariant bool) (Model, error) {
	sub, err := Resolve(base)
	if err != nil {
		return Model{}, err
	}

	if freq < 0 || int(freq) >= len(freqTypes) {
		return Model{}, &UnknownModifierError{Model: sub.IQTree(), Modifier: freq.IQTree(), Reason: "invalid frequency type"}
	}
	if err := validRate(sub.IQTree(), rate); err != nil {
		return Model{}, err
	}

	return Model{
		sub:       sub,
		freq:      freq,
		rate:      rate,
		invariant: invariant,
	}, nil
}

func validRate(m string, rate RateType) error {
	switch r := rate.(type) {
	case nil:
		return nil
	case Gamma:
		if r.Cats < 1 {
			return &UnknownModifierError{Model: m, Modifier: r.IQTree(), Reason: "invalid number of categories"}
		}
		if math.IsNaN(r.Alpha) || math.IsInf(r.Alpha, 0) || r.Alpha < 0 {
			return &UnknownModifierError{Model: m, Modifier: r.IQTree(), Reason: "invalid alpha value"}
		}
	case FreeRate:
		if r.Cats < 1 {
			return &UnknownModifierError{Model: m, Modifier: r.IQTree(), Reason: "invalid number of categories"}
		}
	default:
		return &UnknownModifierError{Model: m, Modifier: rate.IQTree(), Reason: "unknown rate model"}
	}
	return nil
}

// Parse returns a model from a string.
// The string is a substitution model
// (as accepted by Get)
// optionally followed by modifiers
// separated with '+'.
// Valid modifiers are a frequency type
// ("F", "FO", or "FQ"),
// a rate heterogeneity model
// ("G", "G<n>", "G<n>{<alpha>}", "R", or "R<n>"),
// and invariant sites ("I").
// Each kind of modifier can be used only once.
func Parse(s string) (Model, error) {
	fields := strings.Split(s, "+")
	sub, err := Get(fields[0])
	if err != nil {
		return Model{}, err
	}

	m := Model{sub: sub}
	hasFreq := false
	for _, f := range fields[1:] {
		if f == "I" {
			if m.invariant {
				return Model{}, &UnknownModifierError{Model: s, Modifier: f, Reason: "repeated invariant sites"}
			}
			m.invariant = true
			continue
		}
		if fq, ok := parseFreq(f); ok {
			if hasFreq {
				return Model{}, &UnknownModifierError{Model: s, Modifier: f, Reason: "repeated frequency type"}
			}
			m.freq = fq
			hasFreq = true
			continue
		}
		if f != "" && (f[0] == 'G' || f[0] == 'R') {
			if m.rate != nil {
				return Model{}, &UnknownModifierError{Model: s, Modifier: f, Reason: "repeated rate model"}
			}
			r, err := ParseRate(f)
			if err != nil {
				return Model{}, &UnknownModifierError{Model: s, Modifier: f, Reason: err.Error()}
			}
			m.rate = r
			continue
		}
		return Model{}, &UnknownModifierError{Model: s, Modifier: f}
	}
	return m, nil
}

// Freq returns the frequency type of the model.
func (m Model) Freq() FreqType {
	return m.freq
}

// Invariant returns true if the model
// includes a proportion of invariable sites.
func (m Model) Invariant() bool {
	return m.invariant
}

// IQTree returns the string used by the engine for the model.
// The modifiers are added after the substitution model
// in the order:
// frequency type,
// rate heterogeneity,
// and invariant sites.
func (m Model) IQTree() string {
	if m.sub == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.sub.IQTree())
	if f := m.freq.IQTree(); f != "" {
		b.WriteString("+" + f)
	}
	if m.rate != nil {
		b.WriteString("+" + m.rate.IQTree())
	}
	if m.invariant {
		b.WriteString("+I")
	}
	return b.String()
}

// Rate returns the rate heterogeneity model.
// It returns nil if the model
// does not define a rate heterogeneity model.
func (m Model) Rate() RateType {
	return m.rate
}

// String implements the fmt.Stringer interface.
func (m Model) String() string {
	return m.IQTree()
}

// Substitution returns the substitution model.
func (m Model) Substitution() Substitution {
	return m.sub
}

// Type returns the kind of data of the model.
func (m Model) Type() Kind {
	if m.sub == nil {
		return Nucleotide
	}
	return m.sub.Type()
}
