// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package freqs implements a command to print
// the valid state frequency types.
package freqs

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/iqmodel/model"
)

var Command = &command.Command{
	Usage: "freqs",
	Short: "print the state frequency types",
	Long: `
Command freqs prints the state frequency types that can be added to a model
string, as a tab-delimited table with the modifier and its description.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	fmt.Fprintf(c.Stdout(), "modifier\tdescription\n")
	for _, f := range model.FreqTypes() {
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", f.IQTree(), f.Description())
	}
	return nil
}
