// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sim implements a command to simulate
// an alignment using the trees of a project.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/iqmodel/engine"
	"github.com/js-arias/iqmodel/project"
	"github.com/js-arias/timetree"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: `sim [--iqtree <path>] [--tree <tree-name>]
	[-o|--output <file>] [--root <sequence-file>]
	[--verbose] <project-file>`,
	Short: "simulate an alignment",
	Long: `
Command sim reads the trees and the simulation parameters of a project and
simulates an alignment using the AliSim simulator of the IQ-TREE engine.

The argument of the command is the name of the project file. The project must
have a tree file. If the project does not define simulation parameters, the
default parameters will be used (see 'iqm param').

By default, the simulation uses the first tree of the project, in
alphabetical order. Use the flag --tree to simulate using the indicated tree.

By default, the engine executable is 'iqtree2', searched in the system path.
Use the flag --iqtree to set a different executable.

The simulated alignment is stored in PHYLIP format in the file
'alignment.phy', and the log of the engine in a file with the same name but
with the extension '.log'. Use the flag --output, or -o, to set a different
alignment file. Both files will be added to the project.

The flag --root can be used to read the sequence at the root of the trees
from a file. The file must contain only the sequence.

If the flag --verbose is set, the engine command line and its exit status
will be printed in the standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var exePath string
var treeName string
var output string
var rootFile string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&exePath, "iqtree", "", "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&output, "output", "alignment.phy", "")
	c.Flags().StringVar(&output, "o", "alignment.phy", "")
	c.Flags().StringVar(&rootFile, "root", "", "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
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
	trees, err := selectTrees(tc)
	if err != nil {
		return err
	}

	sp, err := p.SimParam()
	if err != nil {
		return err
	}
	opt := sp.Options()
	if rootFile != "" {
		seq, err := readRoot(rootFile)
		if err != nil {
			return err
		}
		opt.RootSeq = seq
	}

	e := &engine.Command{Path: exePath}
	if verbose {
		e.Logger = slog.New(slog.NewTextHandler(c.Stderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := engine.SimulateAlignment(ctx, e, trees, sp.Model(), opt)
	if err != nil {
		return err
	}

	if err := writeAlignment(output, res.Alignment); err != nil {
		return err
	}
	logFile := strings.TrimSuffix(output, filepath.Ext(output)) + ".log"
	if err := os.WriteFile(logFile, []byte(res.Log), 0o644); err != nil {
		return err
	}

	p.Add(project.Alignment, output)
	p.Add(project.Log, logFile)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func selectTrees(tc *timetree.Collection) ([]*timetree.Tree, error) {
	tn := treeName
	if tn == "" {
		names := tc.Names()
		if len(names) == 0 {
			return nil, errors.New("project without trees")
		}
		slices.Sort(names)
		tn = names[0]
	}

	t := tc.Tree(tn)
	if t == nil {
		return nil, fmt.Errorf("tree %q not found", tn)
	}
	return []*timetree.Tree{t}, nil
}

func readRoot(name string) (string, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	seq := strings.Join(strings.Fields(string(b)), "")
	if seq == "" {
		return "", fmt.Errorf("on file %q: empty root sequence", name)
	}
	return seq, nil
}

func writeAlignment(name string, aln *engine.Alignment) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := aln.Phylip(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
