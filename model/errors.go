// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package model

import "fmt"

// UnknownModelError is returned
// when a string does not match
// any known substitution model.
type UnknownModelError struct {
	Input string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("Unknown substitution model: %q", e.Input)
}

// UnknownQualifierError is returned
// when a symmetry qualifier is not accepted
// by a Lie-Markov model.
type UnknownQualifierError struct {
	Model     string
	Qualifier string
}

func (e *UnknownQualifierError) Error() string {
	return fmt.Sprintf("unknown symmetry %q for model %q", e.Qualifier, e.Model)
}

// MissingQualifierError is returned
// when a symmetry qualifier is required
// but not given.
type MissingQualifierError struct {
	Model string
}

func (e *MissingQualifierError) Error() string {
	return fmt.Sprintf("model %q: expecting a symmetry qualifier", e.Model)
}

// UnknownModifierError is returned
// when a model modifier
// (frequency type, rate heterogeneity, or invariant sites)
// is invalid or repeated.
type UnknownModifierError struct {
	Model    string
	Modifier string
	Reason   string
}

func (e *UnknownModifierError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("model %q: unknown modifier %q", e.Model, e.Modifier)
	}
	return fmt.Sprintf("model %q: modifier %q: %s", e.Model, e.Modifier, e.Reason)
}

// CatalogIntegrityError is a defect in the model catalogs.
// It is never returned,
// it is only used as a panic value.
type CatalogIntegrityError struct {
	msg string
}

func (e CatalogIntegrityError) Error() string {
	return "model catalog: " + e.msg
}
