// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package model

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Lie is a Lie-Markov substitution model
// (Woodhams et al., 2015).
// The name of each model is the number of parameters
// followed by the dimension of the model algebra.
type Lie int

// Lie-Markov models.
const (
	Lie1_1 Lie = iota
	Lie2_2b
	Lie3_3a
	Lie3_3b
	Lie3_3c
	Lie3_4
	Lie4_4a
	Lie4_4b
	Lie4_5a
	Lie4_5b
	Lie5_6a
	Lie5_6b
	Lie5_7a
	Lie5_7b
	Lie5_7c
	Lie5_11a
	Lie5_11b
	Lie5_11c
	Lie5_16
	Lie6_6
	Lie6_7a
	Lie6_7b
	Lie6_8a
	Lie6_8b
	Lie6_17a
	Lie6_17b
	Lie8_8
	Lie8_10a
	Lie8_10b
	Lie8_16
	Lie8_17
	Lie8_18
	Lie9_20a
	Lie9_20b
	Lie10_12
	Lie10_34
	Lie12_12
)

// Symmetry is a nucleotide pairing
// used to qualify a Lie-Markov model.
type Symmetry string

// Valid symmetries.
const (
	// Purine/pyrimidine pairing, {A,G} and {C,T}.
	RY Symmetry = "RY"

	// Weak/strong pairing, {A,T} and {C,G}.
	WS Symmetry = "WS"

	// Amino/keto pairing, {A,C} and {G,T}.
	MK Symmetry = "MK"
)

var pairings = []Symmetry{RY, WS, MK}

// Description returns a description of the pairing.
func (s Symmetry) Description() string {
	switch s {
	case RY:
		return "purine/pyrimidine"
	case WS:
		return "weak/strong"
	case MK:
		return "amino/keto"
	}
	return ""
}

type lieEntry struct {
	entry

	// qualified is true if the model
	// accepts a symmetry qualifier.
	qualified bool
}

var lieModels = [...]lieEntry{
	Lie1_1:   {entry{"Lie1_1", "1.1", "Lie-Markov model with 1 parameter, equivalent to JC."}, false},
	Lie2_2b:  {entry{"Lie2_2b", "2.2b", "Lie-Markov model with 2 parameters, equivalent to K2P."}, true},
	Lie3_3a:  {entry{"Lie3_3a", "3.3a", "Lie-Markov model with 3 parameters, equivalent to K3P."}, true},
	Lie3_3b:  {entry{"Lie3_3b", "3.3b", "Lie-Markov model with 3 parameters."}, true},
	Lie3_3c:  {entry{"Lie3_3c", "3.3c", "Lie-Markov model with 3 parameters, equivalent to TN with equal base frequencies."}, true},
	Lie3_4:   {entry{"Lie3_4", "3.4", "Lie-Markov model with 3 parameters and a 4-dimensional algebra."}, true},
	Lie4_4a:  {entry{"Lie4_4a", "4.4a", "Lie-Markov model with 4 parameters, equivalent to F81."}, true},
	Lie4_4b:  {entry{"Lie4_4b", "4.4b", "Lie-Markov model with 4 parameters."}, true},
	Lie4_5a:  {entry{"Lie4_5a", "4.5a", "Lie-Markov model with 4 parameters and a 5-dimensional algebra."}, true},
	Lie4_5b:  {entry{"Lie4_5b", "4.5b", "Lie-Markov model with 4 parameters and a 5-dimensional algebra."}, true},
	Lie5_6a:  {entry{"Lie5_6a", "5.6a", "Lie-Markov model with 5 parameters and a 6-dimensional algebra."}, true},
	Lie5_6b:  {entry{"Lie5_6b", "5.6b", "Lie-Markov model with 5 parameters and a 6-dimensional algebra."}, true},
	Lie5_7a:  {entry{"Lie5_7a", "5.7a", "Lie-Markov model with 5 parameters and a 7-dimensional algebra."}, true},
	Lie5_7b:  {entry{"Lie5_7b", "5.7b", "Lie-Markov model with 5 parameters and a 7-dimensional algebra."}, true},
	Lie5_7c:  {entry{"Lie5_7c", "5.7c", "Lie-Markov model with 5 parameters and a 7-dimensional algebra."}, true},
	Lie5_11a: {entry{"Lie5_11a", "5.11a", "Lie-Markov model with 5 parameters and an 11-dimensional algebra."}, true},
	Lie5_11b: {entry{"Lie5_11b", "5.11b", "Lie-Markov model with 5 parameters and an 11-dimensional algebra."}, true},
	Lie5_11c: {entry{"Lie5_11c", "5.11c", "Lie-Markov model with 5 parameters and an 11-dimensional algebra."}, true},
	Lie5_16:  {entry{"Lie5_16", "5.16", "Lie-Markov model with 5 parameters and a 16-dimensional algebra."}, true},
	Lie6_6:   {entry{"Lie6_6", "6.6", "Lie-Markov model with 6 parameters."}, true},
	Lie6_7a:  {entry{"Lie6_7a", "6.7a", "Lie-Markov model with 6 parameters and a 7-dimensional algebra."}, true},
	Lie6_7b:  {entry{"Lie6_7b", "6.7b", "Lie-Markov model with 6 parameters and a 7-dimensional algebra."}, true},
	Lie6_8a:  {entry{"Lie6_8a", "6.8a", "Lie-Markov model with 6 parameters and an 8-dimensional algebra."}, true},
	Lie6_8b:  {entry{"Lie6_8b", "6.8b", "Lie-Markov model with 6 parameters and an 8-dimensional algebra."}, true},
	Lie6_17a: {entry{"Lie6_17a", "6.17a", "Lie-Markov model with 6 parameters and a 17-dimensional algebra."}, true},
	Lie6_17b: {entry{"Lie6_17b", "6.17b", "Lie-Markov model with 6 parameters and a 17-dimensional algebra."}, true},
	Lie8_8:   {entry{"Lie8_8", "8.8", "Lie-Markov model with 8 parameters."}, true},
	Lie8_10a: {entry{"Lie8_10a", "8.10a", "Lie-Markov model with 8 parameters and a 10-dimensional algebra."}, true},
	Lie8_10b: {entry{"Lie8_10b", "8.10b", "Lie-Markov model with 8 parameters and a 10-dimensional algebra."}, true},
	Lie8_16:  {entry{"Lie8_16", "8.16", "Lie-Markov model with 8 parameters and a 16-dimensional algebra."}, true},
	Lie8_17:  {entry{"Lie8_17", "8.17", "Lie-Markov model with 8 parameters and a 17-dimensional algebra."}, true},
	Lie8_18:  {entry{"Lie8_18", "8.18", "Lie-Markov model with 8 parameters and an 18-dimensional algebra."}, true},
	Lie9_20a: {entry{"Lie9_20a", "9.20a", "Lie-Markov model with 9 parameters and a 20-dimensional algebra."}, true},
	Lie9_20b: {entry{"Lie9_20b", "9.20b", "Lie-Markov model with 9 parameters and a 20-dimensional algebra."}, true},
	Lie10_12: {entry{"Lie10_12", "10.12", "Lie-Markov model with 10 parameters and a 12-dimensional algebra."}, true},
	Lie10_34: {entry{"Lie10_34", "10.34", "Lie-Markov model with 10 parameters and a 34-dimensional algebra."}, true},
	Lie12_12: {entry{"Lie12_12", "12.12", "Lie-Markov model with 12 parameters, equivalent to UNREST."}, false},
}

// IQTree returns the string used by the engine for the model,
// without a symmetry qualifier.
func (m Lie) IQTree() string {
	return m.entry().str
}

// Description returns a description of the model.
func (m Lie) Description() string {
	return m.entry().desc
}

// Name returns the symbolic name of the model.
func (m Lie) Name() string {
	return m.entry().name
}

// String implements the fmt.Stringer interface.
func (m Lie) String() string {
	return m.IQTree()
}

// Type returns the kind of data of the model.
func (m Lie) Type() Kind {
	return LieMarkov.Type()
}

// Symmetries returns the symmetry qualifiers
// accepted by the model.
// It returns nil if the model
// does not accept a qualifier.
func (m Lie) Symmetries() []Symmetry {
	if !m.entry().qualified {
		return nil
	}
	return slices.Clone(pairings)
}

// Qualify returns a Lie-Markov model
// with the indicated symmetry.
// The code is case-sensitive.
func (m Lie) Qualify(code string) (LieInstance, error) {
	e := m.entry()
	if code == "" {
		return LieInstance{}, &MissingQualifierError{Model: e.str}
	}
	if !e.qualified || !slices.Contains(pairings, Symmetry(code)) {
		return LieInstance{}, &UnknownQualifierError{Model: e.str, Qualifier: code}
	}
	return LieInstance{model: m, sym: Symmetry(code)}, nil
}

func (m Lie) valid() bool {
	return m >= 0 && int(m) < len(lieModels)
}

func (m Lie) entry() lieEntry {
	if m < 0 || int(m) >= len(lieModels) {
		panic(CatalogIntegrityError{msg: fmt.Sprintf("undefined Lie-Markov model %d", int(m))})
	}
	e := lieModels[m]
	if e.str == "" || e.desc == "" {
		panic(CatalogIntegrityError{msg: fmt.Sprintf("incomplete entry for Lie-Markov model %d", int(m))})
	}
	return e
}

// A LieInstance is a Lie-Markov model
// qualified with a symmetry.
// Use Lie.Qualify to create a valid instance.
type LieInstance struct {
	model Lie
	sym   Symmetry
}

// IQTree returns the string used by the engine for the model.
// The qualifier is used as a prefix of the model name.
func (li LieInstance) IQTree() string {
	return string(li.sym) + li.model.IQTree()
}

// Description returns a description of the model.
func (li LieInstance) Description() string {
	return fmt.Sprintf("%s Using %s symmetry.", li.model.Description(), li.sym.Description())
}

// Model returns the unqualified model.
func (li LieInstance) Model() Lie {
	return li.model
}

// String implements the fmt.Stringer interface.
func (li LieInstance) String() string {
	return li.IQTree()
}

// Symmetry returns the symmetry qualifier.
func (li LieInstance) Symmetry() Symmetry {
	return li.sym
}

// Type returns the kind of data of the model.
func (li LieInstance) Type() Kind {
	return Nucleotide
}

// valid returns true if the instance
// was built by Qualify.
func (li LieInstance) valid() bool {
	if !li.model.valid() || !lieModels[li.model].qualified {
		return false
	}
	return slices.Contains(pairings, li.sym)
}
