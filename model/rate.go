// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/js-arias/iqmodel/cats"
)

// DefaultRateCats is the number of rate categories
// used by the engine when not defined.
const DefaultRateCats = 4

// A RateType is a model of rate heterogeneity across sites.
type RateType interface {
	// IQTree returns the string used by the engine
	// for the rate heterogeneity model.
	IQTree() string

	// Description returns a description
	// of the rate heterogeneity model.
	Description() string
}

// RateTypes returns the rate heterogeneity models
// using the default number of categories.
func RateTypes() []RateType {
	return []RateType{
		Gamma{Cats: DefaultRateCats},
		FreeRate{Cats: DefaultRateCats},
	}
}

// Gamma is a discrete Gamma model of rate heterogeneity
// (Yang, 1994).
type Gamma struct {
	// Number of rate categories.
	Cats int

	// Shape parameter of the gamma distribution.
	// If zero, it will be estimated by the engine.
	Alpha float64
}

// Description returns a description of the rate model.
func (g Gamma) Description() string {
	return "Discrete Gamma model (Yang, 1994) with default 4 rate categories. The number of categories can be changed with e.g. +G8."
}

// IQTree returns the string used by the engine
// for the rate model.
func (g Gamma) IQTree() string {
	s := "G" + strconv.Itoa(g.Cats)
	if g.Alpha > 0 {
		s += "{" + strconv.FormatFloat(g.Alpha, 'g', -1, 64) + "}"
	}
	return s
}

// Rates returns the relative rates
// of each rate category.
// If alpha is not defined,
// it uses a shape parameter of 1.
func (g Gamma) Rates() []float64 {
	a := g.Alpha
	if a <= 0 {
		a = 1
	}
	return cats.NewGamma(a, g.Cats).Cats()
}

// String implements the fmt.Stringer interface.
func (g Gamma) String() string {
	return g.IQTree()
}

// FreeRate is a FreeRate model of rate heterogeneity
// (Yang, 1995; Soubrier et al., 2012).
type FreeRate struct {
	// Number of rate categories.
	Cats int
}

// Description returns a description of the rate model.
func (fr FreeRate) Description() string {
	return "FreeRate model (Yang, 1995; Soubrier et al., 2012) that generalizes the +G model by relaxing the assumption of Gamma-distributed rates. The number of categories can be specified with e.g. +R6 (default 4 categories if not specified)."
}

// IQTree returns the string used by the engine
// for the rate model.
func (fr FreeRate) IQTree() string {
	return "R" + strconv.Itoa(fr.Cats)
}

// String implements the fmt.Stringer interface.
func (fr FreeRate) String() string {
	return fr.IQTree()
}

// ParseRate returns a rate heterogeneity model
// from a string.
// Valid strings are "G", "G<n>", "G<n>{<alpha>}",
// "R", and "R<n>".
func ParseRate(s string) (RateType, error) {
	if s == "" {
		return nil, fmt.Errorf("empty rate model")
	}

	switch s[0] {
	case 'G':
		v := s[1:]
		var alpha float64
		if i := strings.IndexByte(v, '{'); i >= 0 {
			if !strings.HasSuffix(v, "}") {
				return nil, fmt.Errorf("rate model %q: expecting '}'", s)
			}
			a, err := strconv.ParseFloat(v[i+1:len(v)-1], 64)
			if err != nil {
				return nil, fmt.Errorf("rate model %q: %v", s, err)
			}
			if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
				return nil, fmt.Errorf("rate model %q: invalid alpha value %.6f", s, a)
			}
			alpha = a
			v = v[:i]
		}
		c, err := parseRateCats(s, v)
		if err != nil {
			return nil, err
		}
		return Gamma{Cats: c, Alpha: alpha}, nil
	case 'R':
		c, err := parseRateCats(s, s[1:])
		if err != nil {
			return nil, err
		}
		return FreeRate{Cats: c}, nil
	}
	return nil, fmt.Errorf("unknown rate model %q", s)
}

func parseRateCats(s, v string) (int, error) {
	if v == "" {
		return DefaultRateCats, nil
	}
	c, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("rate model %q: %v", s, err)
	}
	if c < 1 {
		return 0, fmt.Errorf("rate model %q: invalid number of categories: %d", s, c)
	}
	return c, nil
}
