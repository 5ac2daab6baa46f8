// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package executetest provides a fake executor for tests.
package executetest

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/bazelboost/bzlboostgen/execute"
)

// Executor records commands instead of running them.
type Executor struct {
	// ExitCodes maps a tool name (Args[0]) to the exit code it returns.
	// Tools not listed exit with 0.
	ExitCodes map[string]int

	// Hook is called for each command, if set, before its exit code is
	// checked. It may be used to simulate the tool's side effects.
	Hook func(cmd *execute.Cmd)

	mu   sync.Mutex
	cmds []*execute.Cmd
}

// Run records cmd and returns *execute.ExitError if the configured exit
// code is not accepted by cmd.
func (e *Executor) Run(ctx context.Context, cmd *execute.Cmd) error {
	e.mu.Lock()
	e.cmds = append(e.cmds, cmd)
	e.mu.Unlock()
	if e.Hook != nil {
		e.Hook(cmd)
	}
	code := e.ExitCodes[cmd.Args[0]]
	if !cmd.Accepts(code) {
		return &execute.ExitError{Args: cmd.Args, Dir: cmd.Dir, ExitCode: code}
	}
	return nil
}

// Cmds returns recorded commands.
func (e *Executor) Cmds() []*execute.Cmd {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*execute.Cmd(nil), e.cmds...)
}

// CmdLines returns recorded command lines, prefixed by their working
// directory relative to root, e.g. "test: buildifier BUILD.bazel".
// Directories are not made relative if root is empty.
func (e *Executor) CmdLines(root string) []string {
	var lines []string
	for _, cmd := range e.Cmds() {
		dir := cmd.Dir
		if root != "" {
			if rel, err := filepath.Rel(root, cmd.Dir); err == nil {
				dir = filepath.ToSlash(rel)
			}
		}
		lines = append(lines, dir+": "+cmd.String())
	}
	return lines
}
