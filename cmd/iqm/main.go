// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Iqm is a tool to specify and validate substitution models
// and simulate alignments with the IQ-TREE engine.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/iqmodel/cmd/iqm/check"
	"github.com/js-arias/iqmodel/cmd/iqm/freqs"
	"github.com/js-arias/iqmodel/cmd/iqm/models"
	"github.com/js-arias/iqmodel/cmd/iqm/param"
	"github.com/js-arias/iqmodel/cmd/iqm/rates"
	"github.com/js-arias/iqmodel/cmd/iqm/sim"
	"github.com/js-arias/iqmodel/cmd/iqm/tree"
)

var app = &command.Command{
	Usage: "iqm <command> [<argument>...]",
	Short: "a tool for substitution models and alignment simulation",
}

func init() {
	app.Add(check.Command)
	app.Add(freqs.Command)
	app.Add(models.Command)
	app.Add(param.Command)
	app.Add(rates.Command)
	app.Add(sim.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
