// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package param implements a command to manage
// the simulation parameters of a project.
package param

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/iqmodel/project"
	"github.com/js-arias/iqmodel/simparam"
)

var Command = &command.Command{
	Usage: `param [--add <param-file>] [--file <file-name>]
	[-m|--model <model>] [--seed <value>]
	[--length <value>] [--threads <value>]
	[--indel <ins,del>]
	[--ins-size <dist>] [--del-size <dist>]
	<project-file>`,
	Short: "manage simulation parameters",
	Long: `
Command param manages the parameters used to simulate alignments in a
project.

The argument of the command is the name of the project file. If no project
file exists, a new project will be created.

By default, the command will print the currently defined parameters.

If the flag --add is defined, it will use the indicated file for the
simulation parameters.

By default, any change on the parameters will be stored in the current
parameters file. If the project does not have a parameters file, a new one
will be created with the name 'sim-params.tab'. Use the flag --file to define
a new parameters file.

To set the substitution model, use the flag --model, or -m, with a model
string (see 'iqm help models-grammar'). By default, a new project uses the JC
model.

The flag --seed sets the random seed of the simulation. A seed of 0 means
that a random seed will be used.

The flag --length sets the length of the simulated sequences (1000 by
default). The flag --threads sets the number of threads used by the engine.

To simulate insertions and deletions, use the flag --indel with the
insertion and deletion rates, separated by a comma. The rates are relative to
the substitution rate. The size of the insertions and deletions can be set
with the flags --ins-size and --del-size (see 'iqm help sim-params').

Any change on the parameters removes the simulated alignment (and its log)
from the project. The files are kept.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var addFile string
var paramFile string
var modelFlag string
var indelFlag string
var insSize string
var delSize string
var seed int64
var length int
var threads int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&addFile, "add", "", "")
	c.Flags().StringVar(&paramFile, "file", "", "")
	c.Flags().StringVar(&modelFlag, "model", "", "")
	c.Flags().StringVar(&modelFlag, "m", "", "")
	c.Flags().StringVar(&indelFlag, "indel", "", "")
	c.Flags().StringVar(&insSize, "ins-size", "", "")
	c.Flags().StringVar(&delSize, "del-size", "", "")
	c.Flags().Int64Var(&seed, "seed", -1, "")
	c.Flags().IntVar(&length, "length", 0, "")
	c.Flags().IntVar(&threads, "threads", 0, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	if addFile != "" {
		if _, err := simparam.Read(addFile); err != nil {
			return err
		}
		p.Add(project.SimParam, addFile)
		p.ClearOutputs()
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}

	sp, err := p.SimParam()
	if err != nil {
		return err
	}
	if paramFile != "" {
		sp.SetName(paramFile)
	}

	ed := false
	if modelFlag != "" {
		if err := sp.SetModel(modelFlag); err != nil {
			return err
		}
		ed = true
	}
	if seed >= 0 {
		sp.SetSeed(seed)
		ed = true
	}
	if length > 0 {
		if err := sp.SetLength(length); err != nil {
			return err
		}
		ed = true
	}
	if threads > 0 {
		if err := sp.SetThreads(threads); err != nil {
			return err
		}
		ed = true
	}
	if indelFlag != "" {
		var ins, del float64
		if _, err := fmt.Sscanf(indelFlag, "%g,%g", &ins, &del); err != nil {
			return c.UsageError(fmt.Sprintf("invalid --indel value %q", indelFlag))
		}
		if err := sp.SetIndel(ins, del); err != nil {
			return err
		}
		ed = true
	}
	if insSize != "" {
		if err := sp.SetInsertionSize(insSize); err != nil {
			return err
		}
		ed = true
	}
	if delSize != "" {
		if err := sp.SetDeletionSize(delSize); err != nil {
			return err
		}
		ed = true
	}

	if ed || p.Path(project.SimParam) != sp.Name() {
		if err := sp.Write(); err != nil {
			return err
		}
		p.Add(project.SimParam, sp.Name())
		p.ClearOutputs()
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}

	printParams(c.Stdout(), sp)
	return nil
}

func openProject(name string) (*project.Project, error) {
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

func printParams(w io.Writer, sp *simparam.SP) {
	opt := sp.Options()
	fmt.Fprintf(w, "file:      %s\n", sp.Name())
	fmt.Fprintf(w, "model:     %s\n", sp.Model().IQTree())
	if opt.Seed != 0 {
		fmt.Fprintf(w, "seed:      %d\n", opt.Seed)
	}
	fmt.Fprintf(w, "length:    %d\n", opt.Length)
	fmt.Fprintf(w, "threads:   %d\n", opt.Threads)
	if opt.InsertionRate > 0 || opt.DeletionRate > 0 {
		fmt.Fprintf(w, "insertion: %g\n", opt.InsertionRate)
		fmt.Fprintf(w, "deletion:  %g\n", opt.DeletionRate)
	}
	if opt.InsertionSize != nil {
		fmt.Fprintf(w, "ins-size:  %s\n", opt.InsertionSize.IQTree())
	}
	if opt.DeletionSize != nil {
		fmt.Fprintf(w, "del-size:  %s\n", opt.DeletionSize.IQTree())
	}
}
