// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package random implements a command to add
// random trees generated by the engine
// to a project.
package random

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/iqmodel/cmd/iqm/tree/add"
	"github.com/js-arias/iqmodel/engine"
)

var Command = &command.Command{
	Usage: `random [-f|--file <tree-file>] [--iqtree <path>]
	[--mode <name>] [--taxa <number>] [--trees <number>]
	[--seed <value>] [--verbose]
	<project-file> <name>`,
	Short: "add random trees to a project",
	Long: `
Command random generates one or more random trees using the IQ-TREE engine,
and adds them to a project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created. The second argument is
the name of the new trees. Each tree will be named using that name and the
index of the tree (e.g. 'rand.0').

Use the flag --taxa to set the number of terminals of the trees (10 by
default, at least 3). Use the flag --trees to set the number of trees to
generate (1 by default).

The flag --mode sets the process used to generate the trees. Valid values
are:

	- YULE_HARDING  (the default)
	- UNIFORM
	- CATERPILLAR
	- BALANCED
	- BIRTH_DEATH
	- STAR_TREE

Use the flag --seed to set the random seed. Each additional tree will use the
next seed.

By default, the engine executable is 'iqtree2', searched in the system path.
Use the flag --iqtree to set a different executable. If the flag --verbose is
set, the engine command line will be printed in the standard error.

By default the trees will be stored in the tree file currently defined for the
project. If the project does not have a tree file, a new one will be created
with the name 'trees.tab'. A different tree file name can be defined using the
flag --file, or -f.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var exePath string
var modeName string
var numTaxa int
var numTrees int
var seed int64
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().StringVar(&exePath, "iqtree", "", "")
	c.Flags().StringVar(&modeName, "mode", engine.YuleHarding.String(), "")
	c.Flags().IntVar(&numTaxa, "taxa", 10, "")
	c.Flags().IntVar(&numTrees, "trees", 1, "")
	c.Flags().Int64Var(&seed, "seed", 0, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting tree name")
	}
	name := strings.TrimSpace(args[1])
	if name == "" {
		return c.UsageError("expecting tree name")
	}

	mode, err := engine.ParseTreeGenMode(modeName)
	if err != nil {
		return c.UsageError(err.Error())
	}

	p, err := add.OpenProject(args[0])
	if err != nil {
		return err
	}
	tc, err := add.ProjectTrees(p)
	if err != nil {
		return err
	}

	e := &engine.Command{Path: exePath}
	if verbose {
		e.Logger = slog.New(slog.NewTextHandler(c.Stderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	req := engine.TreeRequest{
		NumTaxa: numTaxa,
		Mode:    mode,
		Seed:    seed,
	}
	nc, err := engine.RandomTrees(ctx, e, name, numTrees, req)
	if err != nil {
		return err
	}
	if err := add.Merge(tc, nc); err != nil {
		return fmt.Errorf("when adding random trees: %v", err)
	}

	return add.WriteTrees(p, tc, treeFile)
}
