// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cats implements discrete categories
// from a continuous probability distribution function.
// Each category is expected to have the same probability.
//
// It is used to approximate the rate heterogeneity
// across sites,
// so the values of the categories are relative rates
// with a mean of one.
package cats

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Discrete is a discrete category distribution.
type Discrete interface {
	// Cats returns the values of the different categories.
	Cats() []float64

	// String output for the function name and parameters.
	String() string
}

// Gamma is a discretized Gamma distribution.
type Gamma struct {
	// Parameters of the gamma distribution.
	Param distuv.Gamma

	// Number of categories
	NumCat int
}

// NewGamma returns a discretized Gamma distribution
// with mean one
// (i.e., alpha and beta are equal)
// and the indicated number of categories.
func NewGamma(alpha float64, numCat int) Gamma {
	return Gamma{
		Param: distuv.Gamma{
			Alpha: alpha,
			Beta:  alpha,
		},
		NumCat: numCat,
	}
}

// Cats returns the values for a Gamma distribution
// discretized in equal probability categories.
// The value of each category is the median of the category,
// scaled so the mean of the categories is one
// (Yang, 1994).
func (g Gamma) Cats() []float64 {
	return scale(getCats(g.Param, g.NumCat))
}

// String output for the function name and parameters.
func (g Gamma) String() string {
	return fmt.Sprintf("gamma=%.6f", g.Param.Alpha)
}

// Quantiler is a interfaces for distributions
// with a Quantile function
// (the inverse of the CDF function).
type quantiler interface {
	Quantile(p float64) float64
}

func getCats(q quantiler, n int) []float64 {
	cats := make([]float64, n)
	for i := range cats {
		p := (float64(i) + 0.5) / float64(n)
		cats[i] = q.Quantile(p)
	}
	return cats
}

func scale(cats []float64) []float64 {
	var sum float64
	for _, c := range cats {
		sum += c
	}
	if sum == 0 {
		return cats
	}
	f := float64(len(cats)) / sum
	for i := range cats {
		cats[i] *= f
	}
	return cats
}
