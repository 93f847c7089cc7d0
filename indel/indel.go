// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package indel implements the distributions
// for the size of insertions and deletions
// used by the engine during alignment simulation.
package indel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Dist is an indel size distribution.
type Dist interface {
	// IQTree returns the string used by the engine
	// for the distribution.
	IQTree() string

	// Validate returns an error
	// if the distribution parameters are invalid.
	Validate() error
}

// Geometric is a geometric distribution
// with success probability P.
type Geometric struct {
	P float64
}

// IQTree returns the string used by the engine.
func (g Geometric) IQTree() string {
	return fmt.Sprintf("GEO{%s}", formatFloat(g.P))
}

// Validate checks the distribution parameters.
func (g Geometric) Validate() error {
	if !finite(g.P) || g.P <= 0 || g.P >= 1 {
		return fmt.Errorf("geometric distribution: invalid probability %v", g.P)
	}
	return nil
}

// NegBinomial is a negative binomial distribution
// with R successes
// and success probability Q.
type NegBinomial struct {
	R int
	Q float64
}

// IQTree returns the string used by the engine.
func (nb NegBinomial) IQTree() string {
	return fmt.Sprintf("NB{%d/%s}", nb.R, formatFloat(nb.Q))
}

// Validate checks the distribution parameters.
func (nb NegBinomial) Validate() error {
	if nb.R < 1 {
		return fmt.Errorf("negative binomial distribution: invalid number of successes %d", nb.R)
	}
	if !finite(nb.Q) || nb.Q <= 0 || nb.Q >= 1 {
		return fmt.Errorf("negative binomial distribution: invalid probability %v", nb.Q)
	}
	return nil
}

// Zipf is a Zipfian
// (power law)
// distribution with exponent A
// and a maximum size Max.
type Zipf struct {
	A   float64
	Max int
}

// IQTree returns the string used by the engine.
func (z Zipf) IQTree() string {
	return fmt.Sprintf("POW{%s/%d}", formatFloat(z.A), z.Max)
}

// Validate checks the distribution parameters.
func (z Zipf) Validate() error {
	return validPower("zipfian", z.A, z.Max)
}

// Lavalette is a Lavalette distribution
// with exponent A
// and a maximum size Max.
type Lavalette struct {
	A   float64
	Max int
}

// IQTree returns the string used by the engine.
func (l Lavalette) IQTree() string {
	return fmt.Sprintf("LAV{%s/%d}", formatFloat(l.A), l.Max)
}

// Validate checks the distribution parameters.
func (l Lavalette) Validate() error {
	return validPower("lavalette", l.A, l.Max)
}

func validPower(name string, a float64, max int) error {
	if !finite(a) || a <= 1 {
		return fmt.Errorf("%s distribution: invalid exponent %v", name, a)
	}
	if max < 1 {
		return fmt.Errorf("%s distribution: invalid maximum size %d", name, max)
	}
	return nil
}

// Parse returns an indel size distribution
// from a string.
// Valid strings are:
//
//	GEO{<p>}
//	NB{<r>/<q>}
//	POW{<a>/<max>}
//	LAV{<a>/<max>}
func Parse(s string) (Dist, error) {
	i := strings.IndexByte(s, '{')
	if i < 0 || !strings.HasSuffix(s, "}") {
		return nil, fmt.Errorf("invalid indel distribution %q", s)
	}
	name := s[:i]
	args := strings.Split(s[i+1:len(s)-1], "/")

	var d Dist
	switch name {
	case "GEO":
		if len(args) != 1 {
			return nil, fmt.Errorf("indel distribution %q: expecting one parameter", s)
		}
		p, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("indel distribution %q: %v", s, err)
		}
		d = Geometric{P: p}
	case "NB":
		if len(args) != 2 {
			return nil, fmt.Errorf("indel distribution %q: expecting two parameters", s)
		}
		r, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("indel distribution %q: %v", s, err)
		}
		q, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("indel distribution %q: %v", s, err)
		}
		d = NegBinomial{R: r, Q: q}
	case "POW", "LAV":
		if len(args) != 2 {
			return nil, fmt.Errorf("indel distribution %q: expecting two parameters", s)
		}
		a, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("indel distribution %q: %v", s, err)
		}
		max, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("indel distribution %q: %v", s, err)
		}
		if name == "POW" {
			d = Zipf{A: a, Max: max}
		} else {
			d = Lavalette{A: a, Max: max}
		}
	default:
		return nil, fmt.Errorf("unknown indel distribution %q", s)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("indel distribution %q: %v", s, err)
	}
	return d, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
