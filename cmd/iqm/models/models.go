// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package models implements a command to print
// the catalogs of substitution models.
package models

import (
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/iqmodel/model"
)

var Command = &command.Command{
	Usage: "models [--cat <catalog>] [--sym]",
	Short: "print the catalogs of substitution models",
	Long: `
Command models prints the substitution models accepted by the engine, as a
tab-delimited table with the catalog, the model string, the type of the data,
and a description of the model.

By default all catalogs are printed. Use the flag --cat to print only the
models of a catalog. Valid catalogs are:

	- dna
	- protein
	- lie-markov

If the flag --sym is set, the Lie-Markov models will be printed with each of
their accepted symmetry qualifiers.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var catFlag string
var symFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&catFlag, "cat", "", "")
	c.Flags().BoolVar(&symFlag, "sym", false, "")
}

func run(c *command.Command, args []string) error {
	cats := model.Categories()
	if catFlag != "" {
		cat, err := parseCategory(catFlag)
		if err != nil {
			return c.UsageError(err.Error())
		}
		cats = []model.Category{cat}
	}

	fmt.Fprintf(c.Stdout(), "catalog\tmodel\ttype\tdescription\n")
	for _, cat := range cats {
		for _, m := range cat.Models() {
			printModel(c.Stdout(), cat, m)
			if !symFlag {
				continue
			}
			lm, ok := m.(model.Lie)
			if !ok {
				continue
			}
			for _, s := range lm.Symmetries() {
				li, err := lm.Qualify(string(s))
				if err != nil {
					return err
				}
				printModel(c.Stdout(), cat, li)
			}
		}
	}
	return nil
}

func parseCategory(s string) (model.Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, cat := range model.Categories() {
		if cat.String() == s {
			return cat, nil
		}
	}
	return 0, fmt.Errorf("unknown catalog %q", s)
}

func printModel(w io.Writer, cat model.Category, m model.Substitution) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat, m.IQTree(), m.Type(), m.Description())
}
