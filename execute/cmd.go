// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package execute runs external tools.
package execute

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/bazelboost/bzlboostgen/toolsupport/shutil"
)

// Executor is an interface to run the cmd.
type Executor interface {
	Run(ctx context.Context, cmd *Cmd) error
}

// Cmd is an external tool invocation.
type Cmd struct {
	// Desc is a short, human-readable description shown in logs.
	// Example: "buildifier MODULE.bazel"
	Desc string

	// Args holds command line arguments. Args[0] is the tool.
	Args []string

	// Dir specifies the working directory of the cmd.
	Dir string

	// ExitCodes are exit codes treated as success.
	// Only 0 is accepted if empty.
	ExitCodes []int

	// Stdout and Stderr receive the tool's output. Discarded if nil.
	Stdout io.Writer
	Stderr io.Writer
}

// String returns the command line of cmd.
func (c *Cmd) String() string {
	return shutil.Join(c.Args)
}

// Accepts reports whether exitCode is a success for cmd.
func (c *Cmd) Accepts(exitCode int) bool {
	if len(c.ExitCodes) == 0 {
		return exitCode == 0
	}
	return slices.Contains(c.ExitCodes, exitCode)
}

// ExitError is an error of cmd exit with unexpected exit code.
type ExitError struct {
	Args     []string
	Dir      string
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d from running command:\n        cd %s\n        %s", e.ExitCode, e.Dir, shutil.Join(e.Args))
}
