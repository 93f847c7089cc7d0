// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package model implements the substitution models,
// rate heterogeneity,
// and state frequency types
// accepted by the IQ-TREE engine.
//
// Models are defined in closed catalogs
// (standard DNA models, amino acid models,
// and Lie-Markov models).
// Any value accepted by this package
// can be rendered into the exact string
// expected by the engine.
package model

// Kind is the kind of data
// a substitution model is defined for.
type Kind int

// Valid kinds.
const (
	Nucleotide Kind = iota
	Protein
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Nucleotide:
		return "nucleotide"
	case Protein:
		return "protein"
	}
	panic(CatalogIntegrityError{msg: "invalid model kind"})
}

// A Substitution is a substitution model
// that can be rendered for the engine.
// It is implemented by DNA, AA, Lie,
// and LieInstance values.
type Substitution interface {
	// IQTree returns the string
	// used by the engine for the model.
	IQTree() string

	// Type returns the kind of data of the model.
	Type() Kind

	// Description returns a human readable
	// description of the model.
	Description() string
}

// Category is a catalog of substitution models.
type Category int

// Valid categories.
const (
	StandardDNA Category = iota
	AminoAcid
	LieMarkov
)

// Categories returns the model categories
// in declaration order.
func Categories() []Category {
	return []Category{StandardDNA, AminoAcid, LieMarkov}
}

// Len returns the number of models in the category.
func (c Category) Len() int {
	switch c {
	case StandardDNA:
		return len(dnaModels)
	case AminoAcid:
		return len(aaModels)
	case LieMarkov:
		return len(lieModels)
	}
	return 0
}

// Models returns the models of the category
// in declaration order.
func (c Category) Models() []Substitution {
	ms := make([]Substitution, 0, c.Len())
	switch c {
	case StandardDNA:
		for i := range dnaModels {
			ms = append(ms, DNA(i))
		}
	case AminoAcid:
		for i := range aaModels {
			ms = append(ms, AA(i))
		}
	case LieMarkov:
		for i := range lieModels {
			ms = append(ms, Lie(i))
		}
	}
	return ms
}

// String returns the name of the category.
func (c Category) String() string {
	switch c {
	case StandardDNA:
		return "dna"
	case AminoAcid:
		return "protein"
	case LieMarkov:
		return "lie-markov"
	}
	return "unknown"
}

// Type returns the kind of data
// of the models in the category.
func (c Category) Type() Kind {
	if c == AminoAcid {
		return Protein
	}
	return Nucleotide
}

// An entry is the data associated
// with a catalog model.
type entry struct {
	name string // symbolic name
	str  string // engine string
	desc string
}
