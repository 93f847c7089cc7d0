// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultIndelSize is the indel size distribution
// used by the engine when it is not defined.
const DefaultIndelSize = "POW{1.7/100}"

// Command is an engine
// that runs the IQ-TREE executable.
// Each call runs in a new temporary directory
// that is removed after the call,
// so the files produced by the engine
// are never exposed.
type Command struct {
	// Path of the executable,
	// by default "iqtree2".
	Path string

	// Logger for the engine calls.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

// Simulate runs an AliSim simulation.
// The executable writes an alignment for each input tree,
// so the request must have a single tree.
func (c *Command) Simulate(ctx context.Context, req *SimRequest) (_ []byte, err error) {
	if len(req.Trees) != 1 {
		return nil, fmt.Errorf("engine %q: expecting a single tree, got %d", c.path(), len(req.Trees))
	}

	dir, err := os.MkdirTemp("", "iqmodel-sim-")
	if err != nil {
		return nil, err
	}
	defer func() {
		e := os.RemoveAll(dir)
		if e != nil && err == nil {
			err = e
		}
	}()

	treeFile := filepath.Join(dir, "input.treefile")
	if err := os.WriteFile(treeFile, []byte(strings.Join(req.Trees, "\n")+"\n"), 0o644); err != nil {
		return nil, err
	}

	prefix := filepath.Join(dir, "alisim")
	args := []string{
		"--alisim", prefix,
		"-m", req.Model,
		"-t", treeFile,
		"--length", strconv.Itoa(req.Length),
		"-nt", strconv.Itoa(req.Threads),
		"-af", "phy",
	}
	if req.Seed != 0 {
		args = append(args, "--seed", strconv.FormatInt(req.Seed, 10))
	}
	if req.InsertionRate > 0 || req.DeletionRate > 0 {
		args = append(args, "--indel", formatFloat(req.InsertionRate)+","+formatFloat(req.DeletionRate))
		if req.InsertionSize != "" || req.DeletionSize != "" {
			ins, del := req.InsertionSize, req.DeletionSize
			if ins == "" {
				ins = DefaultIndelSize
			}
			if del == "" {
				del = DefaultIndelSize
			}
			args = append(args, "--indel-size", ins+","+del)
		}
	}
	if req.RootSeq != "" {
		rootFile := filepath.Join(dir, "root.fa")
		if err := os.WriteFile(rootFile, []byte(">root\n"+req.RootSeq+"\n"), 0o644); err != nil {
			return nil, err
		}
		args = append(args, "--root-seq", rootFile+",root")
	}
	if req.PartitionType != "" {
		flag, err := partitionFlag(req.PartitionType)
		if err != nil {
			return nil, err
		}
		partFile := filepath.Join(dir, "partitions.nex")
		if err := os.WriteFile(partFile, []byte(strings.Join(req.PartitionInfo, "\n")+"\n"), 0o644); err != nil {
			return nil, err
		}
		args = append(args, flag, partFile)
	}

	out, err := c.run(ctx, dir, args)
	if err != nil {
		return nil, err
	}

	aln, err := os.ReadFile(prefix + ".phy")
	if err != nil {
		return nil, fmt.Errorf("engine %q: while reading alignment: %v", c.path(), err)
	}
	return EncodeResult(string(aln), out)
}

// RandomTree generates a random tree.
func (c *Command) RandomTree(ctx context.Context, req TreeRequest) (_ string, err error) {
	dir, err := os.MkdirTemp("", "iqmodel-tree-")
	if err != nil {
		return "", err
	}
	defer func() {
		e := os.RemoveAll(dir)
		if e != nil && err == nil {
			err = e
		}
	}()

	flag, err := modeFlag(req.Mode)
	if err != nil {
		return "", err
	}
	out := filepath.Join(dir, "random.treefile")
	args := []string{flag, strconv.Itoa(req.NumTaxa), out}
	if req.Seed != 0 {
		args = append(args, "--seed", strconv.FormatInt(req.Seed, 10))
	}
	if _, err := c.run(ctx, dir, args); err != nil {
		return "", err
	}

	nw, err := os.ReadFile(out)
	if err != nil {
		return "", fmt.Errorf("engine %q: while reading tree: %v", c.path(), err)
	}
	return strings.TrimSpace(string(nw)), nil
}

func (c *Command) path() string {
	if c.Path == "" {
		return "iqtree2"
	}
	return c.Path
}

func (c *Command) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

func (c *Command) run(ctx context.Context, dir string, args []string) (string, error) {
	l := c.logger()
	l.Debug("running engine", "path", c.path(), "args", args)

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, c.path(), args...)
	cmd.Dir = dir
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		l.Error("engine failed", "path", c.path(), "err", err)
		return "", fmt.Errorf("engine %q: %v\n%s", c.path(), err, lastLines(out.String(), 10))
	}
	l.Debug("engine done", "path", c.path(), "output", out.Len())
	return out.String(), nil
}

func partitionFlag(p string) (string, error) {
	switch Partition(p) {
	case EqualPartition:
		return "-q", nil
	case ProportionPartition:
		return "-p", nil
	case UnlinkedPartition:
		return "-Q", nil
	}
	return "", fmt.Errorf("invalid partition type %q", p)
}

func modeFlag(m TreeGenMode) (string, error) {
	switch m {
	case YuleHarding:
		return "-r", nil
	case Uniform:
		return "-ru", nil
	case Caterpillar:
		return "-rcat", nil
	case Balanced:
		return "-rbal", nil
	case BirthDeath:
		return "-rbd", nil
	case StarTree:
		return "-rstar", nil
	}
	return "", fmt.Errorf("unknown tree generation mode %d", m)
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
