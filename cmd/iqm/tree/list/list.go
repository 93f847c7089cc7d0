// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of trees in a project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/iqmodel/engine"
	"github.com/js-arias/iqmodel/project"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "list [--newick] <project-file>",
	Short: "print a list of the trees in a project",
	Long: `
Command list reads the trees from a project and print the tree names in the
standard output.

The argument of the command is the name of the project file.

If the flag --newick is set, each tree will be printed in Newick format, with
branch lengths in million years, preceded by the name of the tree.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var newickFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&newickFlag, "newick", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tc, err := p.Trees()
	if err != nil {
		return err
	}

	ls := tc.Names()
	slices.Sort(ls)
	for _, tn := range ls {
		if !newickFlag {
			fmt.Fprintf(c.Stdout(), "%s\n", tn)
			continue
		}
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", tn, engine.Newick(tc.Tree(tn)))
	}
	return nil
}
