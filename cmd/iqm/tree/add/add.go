// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add trees
// to a project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/iqmodel/engine"
	"github.com/js-arias/iqmodel/project"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `add [-f|--file <tree-file>]
	[--newick <name>] [--age <value>]
	<project-file> [<tree-file>...]`,
	Short: "add phylogenetic trees to a project",
	Long: `
Command add read one or more trees from one or more tree files, and add the
trees to a project. The trees must be time calibrated trees.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input.

By default, the input is expected to be in the form of tab-delimited tree
files. To import newick trees (i.e., trees in parenthetical format), use the
flag --newick with a name to be defined for the trees found in the input
files. It is expected that branch lengths were given in million years. By
default, the age of the root will be calculated from the largest branch length
between any terminal and the root. To set a different root age, use the
flag --age, with a value in million years.

By default the trees will be stored in the tree file currently defined for the
project. If the project does not have a tree file, a new one will be created
with the name 'trees.tab'. A different tree file name can be defined using the
flag --file, or -f. If this flag is used, and there is tree file already
defined, then a new file with that name will be created, and used as the tree
file for the project (previously defined trees will be kept).

As the trees are changed, any simulated alignment (and its log) is removed
from the project. The files are kept.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var newickName string
var rootAge float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().StringVar(&newickName, "newick", "", "")
	c.Flags().Float64Var(&rootAge, "age", 0, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := OpenProject(args[0])
	if err != nil {
		return err
	}

	tc, err := ProjectTrees(p)
	if err != nil {
		return err
	}

	args = args[1:]
	if len(args) == 0 {
		args = append(args, "-")
	}
	for i, a := range args {
		fn := a
		if fn == "-" {
			fn = ""
			a = "stdin"
		}
		var nc *timetree.Collection
		if newickName != "" {
			tn := newickName
			if i > 0 {
				tn = fmt.Sprintf("%s.%d", newickName, i)
			}
			nc, err = readNewick(c.Stdin(), fn, tn)
		} else {
			nc, err = readTreeFile(c.Stdin(), fn)
		}
		if err != nil {
			return err
		}

		if err := Merge(tc, nc); err != nil {
			return fmt.Errorf("when adding trees from %q: %v", a, err)
		}
	}

	return WriteTrees(p, tc, treeFile)
}

// OpenProject opens a project file,
// or creates a new one if the file does not exist.
func OpenProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

// ProjectTrees returns the trees already defined in a project,
// or an empty collection.
func ProjectTrees(p *project.Project) (*timetree.Collection, error) {
	tf := p.Path(project.Trees)
	if tf == "" {
		return timetree.NewCollection(), nil
	}
	tc, err := readTreeFile(nil, tf)
	if err != nil {
		return nil, fmt.Errorf("on project %q: %v", tf, err)
	}
	return tc, nil
}

// Merge adds the trees of a collection
// to another collection.
func Merge(dst, src *timetree.Collection) error {
	for _, tn := range src.Names() {
		if err := dst.Add(src.Tree(tn)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTrees writes a tree collection
// and sets it as the tree file of a project.
// Previous simulation outputs are removed from the project.
// If name is empty,
// the current tree file of the project is used.
func WriteTrees(p *project.Project, tc *timetree.Collection, name string) error {
	if name == "" {
		name = p.Path(project.Trees)
		if name == "" {
			name = "trees.tab"
		}
	}

	if err := writeTrees(name, tc); err != nil {
		return err
	}
	p.Add(project.Trees, name)
	p.ClearOutputs()
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func readTreeFile(r io.Reader, name string) (*timetree.Collection, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

func writeTrees(name string, tc *timetree.Collection) (err error) {
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

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}

func readNewick(r io.Reader, newickFile, treeName string) (*timetree.Collection, error) {
	if newickFile != "" {
		f, err := os.Open(newickFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		newickFile = "stdin"
	}

	c, err := timetree.Newick(r, treeName, int64(rootAge*engine.MillionYears))
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", newickFile, err)
	}
	return c, nil
}
