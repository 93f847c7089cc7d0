// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package rates implements a command to print
// the rate heterogeneity types.
package rates

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/iqmodel/model"
)

var Command = &command.Command{
	Usage: "rates [--gamma <value>] [--cats <value>]",
	Short: "print the rate heterogeneity types",
	Long: `
Command rates prints the rate heterogeneity types that can be added to a
model string, as a tab-delimited table with the modifier and its description.

If the flag --gamma is set with a shape parameter, the command prints
instead the relative rates of each category of a discrete gamma. By default
the gamma uses 4 categories, use the flag --cats to set a different number.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var alpha float64
var numCats int

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&alpha, "gamma", 0, "")
	c.Flags().IntVar(&numCats, "cats", model.DefaultRateCats, "")
}

func run(c *command.Command, args []string) error {
	if alpha == 0 {
		fmt.Fprintf(c.Stdout(), "modifier\tdescription\n")
		for _, r := range model.RateTypes() {
			fmt.Fprintf(c.Stdout(), "%s\t%s\n", r.IQTree(), r.Description())
		}
		return nil
	}

	if alpha < 0 {
		return c.UsageError(fmt.Sprintf("invalid gamma shape %.6f", alpha))
	}
	if numCats < 1 {
		return c.UsageError(fmt.Sprintf("invalid number of categories %d", numCats))
	}
	g := model.Gamma{Cats: numCats, Alpha: alpha}
	fmt.Fprintf(c.Stdout(), "# %s\n", g.IQTree())
	fmt.Fprintf(c.Stdout(), "category\trate\n")
	for i, r := range g.Rates() {
		fmt.Fprintf(c.Stdout(), "%d\t%.6f\n", i+1, r)
	}
	return nil
}
