// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(modelGuide)
	app.Add(paramGuide)
	app.Add(projectsGuide)
}

var modelGuide = &command.Command{
	Usage: "models-grammar",
	Short: "about model strings",
	Long: `
A model string defines the substitution model used by the IQ-TREE engine. It
is made of a base substitution model, optionally followed by one or more
modifiers, each one preceded by a plus sign.

The base substitution model must be one of the models of the catalogs. The
list of valid models can be printed with the command 'iqm models'. There are
three catalogs:

	- dna         standard nucleotide models (e.g. JC, HKY, GTR)
	- protein     empirical amino-acid models (e.g. LG, WAG, Q.pfam)
	- lie-markov  Lie-Markov nucleotide models (e.g. 3.3b, 12.12)

Models are case sensitive, so 'gtr' is not a valid model.

Most Lie-Markov models accept a symmetry qualifier, written as a prefix of the
model (e.g. RY3.3b). Valid qualifiers are:

	- RY  purine/pyrimidine pairing
	- WS  weak/strong pairing
	- MK  amino/keto pairing

The models 1.1 and 12.12 do not accept qualifiers.

The modifiers are:

	- F, FO, FQ   state frequencies (empirical, optimized, equal)
	- G, G<n>     discrete gamma rate heterogeneity with n categories
	              (4 by default). A fixed shape parameter can be set with
	              G<n>{alpha}.
	- R<n>        free rate heterogeneity with n categories
	- I           invariable sites

Each kind of modifier can be used only once. Modifiers are always rendered in
the order frequencies, rates, and invariable sites, so 'GTR+I+G4' is
rendered as 'GTR+G4+I'.

Use the command 'iqm check' to validate a model string.
	`,
}

var paramGuide = &command.Command{
	Usage: "sim-params",
	Short: "about the simulation parameters file",
	Long: `
The parameters used for an alignment simulation are stored in a
tab-delimited file. The recommended way to edit this file is by using the
command 'iqm param'.

The file has the following fields:

	- parameter  the name of the parameter
	- value      the value of the parameter

Here is an example file:

	# iqmodel simulation parameters
	parameter	value
	model	GTR+G4+I
	seed	1
	length	1000
	threads	1
	insertion	0.03
	deletion	0.04
	insertion-size	POW{1.7/100}
	deletion-size	GEO{0.5}

Valid parameters are:

	- model           the model string (see 'iqm help models-grammar')
	- seed            the random seed, 0 for a random seed
	- length          the length of the simulated sequences
	- threads         the number of threads used by the engine
	- insertion       the insertion rate, relative to the substitution rate
	- deletion        the deletion rate, relative to the substitution rate
	- insertion-size  the distribution of insertion sizes
	- deletion-size   the distribution of deletion sizes

The distribution of indel sizes can be one of:

	- GEO{p}        geometric, with 0 < p < 1
	- NB{r/q}       negative binomial, with r > 0 and 0 < q < 1
	- POW{a/max}    Zipfian, with a > 1 and max >= 1
	- LAV{a/max}    Lavalette, with a > 1 and max >= 1

If no size distribution is defined, the engine uses POW{1.7/100}.
	`,
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Simulations require several files. To reduce the burden of keeping track of
many files, a single project file is used to hold the reference of all files.
This guide explains the structure of the file, but most of the time, the best
and most secure way to edit or view this file is by using iqm commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# iqmodel project files
	dataset	path
	trees	trees.tab
	simparam	sim-params.tab
	alignment	alignment.phy
	log	alignment.log

The valid file types are:

- Time-calibrated trees. Defined by the dataset keyword "trees". This file
  contains one or more trees in the form of a tab-delimited file. The
  recommended way to add a tree file is by using the commands 'iqm tree add'
  or 'iqm tree random'.
- Simulation parameters. Defined by the dataset keyword "simparam". The
  recommended way to edit the parameters is by using the command
  'iqm param'.
- Simulated alignment. Defined by the dataset keyword "alignment". This file
  contains the last simulated alignment in PHYLIP format. It is created by
  the command 'iqm sim'.
- Engine log. Defined by the dataset keyword "log". This file contains the
  log of the engine for the last simulation. It is created by the command
  'iqm sim'.

Any other dataset keyword is an error. The alignment and the log are outputs
of a simulation, so they are removed from the project when the trees or the
simulation parameters are changed by an iqm command.
	`,
}
