// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package model

// FreqType is the way
// in which the state frequencies
// of a model are estimated.
type FreqType int

// Valid frequency types.
const (
	// DefaultFreq uses the frequencies
	// defined by the substitution model.
	DefaultFreq FreqType = iota

	// Empirical state frequencies
	// observed from the data.
	Empirical

	// Optimized state frequencies
	// by maximum likelihood.
	Optimized

	// Equal state frequencies.
	Equal
)

var freqTypes = [...]struct {
	str  string
	desc string
}{
	DefaultFreq: {"", "Frequencies defined by the substitution model."},
	Empirical:   {"F", "Empirical state frequency observed from the data."},
	Optimized:   {"FO", "State frequency optimized by maximum likelihood."},
	Equal:       {"FQ", "Equal state frequency."},
}

// FreqTypes returns the frequency types
// that can be added to a model.
func FreqTypes() []FreqType {
	return []FreqType{Empirical, Optimized, Equal}
}

// Description returns a description of the frequency type.
func (f FreqType) Description() string {
	if f < 0 || int(f) >= len(freqTypes) {
		return ""
	}
	return freqTypes[f].desc
}

// IQTree returns the string used by the engine
// for the frequency type.
// It returns an empty string for the default frequencies.
func (f FreqType) IQTree() string {
	if f < 0 || int(f) >= len(freqTypes) {
		return ""
	}
	return freqTypes[f].str
}

// String implements the fmt.Stringer interface.
func (f FreqType) String() string {
	return f.IQTree()
}

func parseFreq(s string) (FreqType, bool) {
	for _, f := range FreqTypes() {
		if f.IQTree() == s {
			return f, true
		}
	}
	return DefaultFreq, false
}
