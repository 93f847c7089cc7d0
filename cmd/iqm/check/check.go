// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package check implements a command to validate
// model strings.
package check

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/iqmodel/model"
)

var Command = &command.Command{
	Usage: "check [<model>...]",
	Short: "validate model strings",
	Long: `
Command check reads one or more model strings and validates them. For each
valid model, it prints a tab-delimited line with the model as given, the
model in the form used by the engine, the type of the data, and the
description of the base substitution model.

If no model is given as argument, the models will be read from the standard
input, one per line. Blank lines and lines starting with '#' are ignored.

If any model is invalid, an error message is printed to the standard error
and the command ends with an error after checking all the models.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		var err error
		args, err = readModels(c.Stdin())
		if err != nil {
			return err
		}
	}

	var bad int
	for _, a := range args {
		m, err := model.Parse(a)
		if err != nil {
			fmt.Fprintf(c.Stderr(), "%s\n", errMessage(err))
			bad++
			continue
		}
		fmt.Fprintf(c.Stdout(), "%s\t%s\t%s\t%s\n", a, m.IQTree(), m.Type(), m.Substitution().Description())
	}
	if bad > 0 {
		return fmt.Errorf("found %d invalid models", bad)
	}
	return nil
}

func errMessage(err error) string {
	var unk *model.UnknownModelError
	if errors.As(err, &unk) {
		return fmt.Sprintf("%v (use 'iqm models' for the list of valid models)", err)
	}
	return err.Error()
}

func readModels(r io.Reader) ([]string, error) {
	var ls []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		ls = append(ls, ln)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("while reading models: %v", err)
	}
	return ls, nil
}
