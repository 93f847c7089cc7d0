// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package model

import "fmt"

// Index of engine strings
// of every model
// (qualified or not)
// in all catalogs.
var index = buildIndex()

func buildIndex() map[string]Substitution {
	idx := make(map[string]Substitution)
	add := func(m Substitution) {
		s := m.IQTree()
		if m.Description() == "" {
			panic(CatalogIntegrityError{msg: fmt.Sprintf("model %q without description", s)})
		}
		// panics on an undefined kind
		_ = m.Type().String()
		if prev, ok := idx[s]; ok {
			panic(CatalogIntegrityError{msg: fmt.Sprintf("string %q used by %T and %T", s, prev, m)})
		}
		idx[s] = m
	}

	for _, c := range Categories() {
		for _, m := range c.Models() {
			add(m)
			l, ok := m.(Lie)
			if !ok {
				continue
			}
			for _, sym := range l.Symmetries() {
				li, err := l.Qualify(string(sym))
				if err != nil {
					panic(CatalogIntegrityError{msg: err.Error()})
				}
				add(li)
			}
		}
	}
	return idx
}

// Get returns the substitution model
// that matches exactly the given string.
// The string must be the engine string
// of a catalog model,
// or a Lie-Markov model
// prefixed with one of its valid symmetries.
// Matching is case-sensitive.
func Get(s string) (Substitution, error) {
	m, ok := index[s]
	if !ok {
		return nil, &UnknownModelError{Input: s}
	}
	return m, nil
}

// Resolve returns a substitution model
// from a value.
// If the value is a catalog model
// (or a qualified Lie-Markov model)
// it is returned as is,
// if it is a string,
// it is resolved with Get.
// Values outside the catalogs,
// such as the zero LieInstance,
// return an UnknownModelError.
func Resolve(v any) (Substitution, error) {
	switch m := v.(type) {
	case DNA:
		if m.valid() {
			return m, nil
		}
		return nil, &UnknownModelError{Input: fmt.Sprintf("%T(%d)", m, m)}
	case AA:
		if m.valid() {
			return m, nil
		}
		return nil, &UnknownModelError{Input: fmt.Sprintf("%T(%d)", m, m)}
	case Lie:
		if m.valid() {
			return m, nil
		}
		return nil, &UnknownModelError{Input: fmt.Sprintf("%T(%d)", m, m)}
	case LieInstance:
		if m.valid() {
			return m, nil
		}
		return nil, &UnknownModelError{Input: fmt.Sprintf("%T{%d %q}", m, m.model, string(m.sym))}
	case string:
		return Get(m)
	case Substitution:
		// models outside the package
		// must render a catalog string.
		return Get(m.IQTree())
	}
	return nil, fmt.Errorf("invalid substitution model type %T", v)
}
