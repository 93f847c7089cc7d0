// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/iqmodel/engine"
	"github.com/js-arias/iqmodel/simparam"
	"github.com/js-arias/timetree"
)

// Alignment reads the simulated alignment
// as defined in a project.
func (p *Project) Alignment() (*engine.Alignment, error) {
	name := p.Path(Alignment)
	if name == "" {
		return nil, fmt.Errorf("alignment not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	aln, err := engine.ReadPhylip(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return aln, nil
}

// Name returns the file name of the project.
func (p *Project) Name() string {
	return p.name
}

// SimParam reads the simulation parameters
// as defined in a project.
// If no parameters are defined,
// it returns the default parameters.
func (p *Project) SimParam() (*simparam.SP, error) {
	name := p.Path(SimParam)
	if name == "" {
		return simparam.New("sim-params.tab"), nil
	}
	return simparam.Read(name)
}

// Trees reads a tree collection file
// as defined in a project.
func (p *Project) Trees() (*timetree.Collection, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}
