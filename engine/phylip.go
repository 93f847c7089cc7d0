// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// An Alignment is a set of aligned sequences.
type Alignment struct {
	names []string
	seqs  map[string]string
	len   int
}

// ReadPhylip reads an alignment
// in relaxed sequential PHYLIP format.
func ReadPhylip(r io.Reader) (*Alignment, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)

	var aln *Alignment
	var numSeqs int
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		if aln == nil {
			if len(f) < 2 {
				return nil, fmt.Errorf("on line %d: expecting number of sequences and sites", ln)
			}
			n, err := strconv.Atoi(f[0])
			if err != nil {
				return nil, fmt.Errorf("on line %d: number of sequences: %v", ln, err)
			}
			l, err := strconv.Atoi(f[1])
			if err != nil {
				return nil, fmt.Errorf("on line %d: number of sites: %v", ln, err)
			}
			numSeqs = n
			aln = &Alignment{
				seqs: make(map[string]string, n),
				len:  l,
			}
			continue
		}

		if len(f) < 2 {
			return nil, fmt.Errorf("on line %d: expecting sequence name and sequence", ln)
		}
		name := f[0]
		seq := strings.Join(f[1:], "")
		if len(seq) != aln.len {
			return nil, fmt.Errorf("on line %d: sequence %q: got %d sites, want %d", ln, name, len(seq), aln.len)
		}
		if _, dup := aln.seqs[name]; dup {
			return nil, fmt.Errorf("on line %d: repeated sequence %q", ln, name)
		}
		aln.names = append(aln.names, name)
		aln.seqs[name] = seq
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if aln == nil {
		return nil, fmt.Errorf("empty alignment")
	}
	if len(aln.names) != numSeqs {
		return nil, fmt.Errorf("got %d sequences, want %d", len(aln.names), numSeqs)
	}
	return aln, nil
}

// Len returns the number of sites in the alignment.
func (a *Alignment) Len() int {
	return a.len
}

// Names returns the names of the sequences
// in input order.
func (a *Alignment) Names() []string {
	return append([]string(nil), a.names...)
}

// NumSeqs returns the number of sequences.
func (a *Alignment) NumSeqs() int {
	return len(a.names)
}

// Seq returns the sequence of a given name.
func (a *Alignment) Seq(name string) string {
	return a.seqs[name]
}

// Phylip writes the alignment
// in relaxed sequential PHYLIP format.
func (a *Alignment) Phylip(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(a.names), a.len)

	width := 0
	for _, n := range a.names {
		width = max(width, len(n))
	}
	for _, n := range a.names {
		fmt.Fprintf(bw, "%-*s  %s\n", width, n, a.seqs[n])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing alignment: %v", err)
	}
	return nil
}
