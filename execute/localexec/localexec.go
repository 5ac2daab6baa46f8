// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package localexec implements local command execution.
package localexec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/bazelboost/bzlboostgen/execute"
	"github.com/bazelboost/bzlboostgen/o11y/clog"
	"github.com/bazelboost/bzlboostgen/runtimex"
	"github.com/bazelboost/bzlboostgen/sync/semaphore"
)

// LocalExec implements execute.Executor interface that runs commands locally.
type LocalExec struct{}

// Run runs cmd with LocalExec.
func Run(ctx context.Context, cmd *execute.Cmd) error {
	return LocalExec{}.Run(ctx, cmd)
}

var forkSema = semaphore.New("fork", runtimex.NumCPU())

// Run runs a cmd and waits for it.
// A started command is not killed when ctx is canceled; ctx only
// bounds waiting for a fork slot.
// It returns *execute.ExitError if the exit code is not accepted by cmd.
func (LocalExec) Run(ctx context.Context, cmd *execute.Cmd) error {
	if len(cmd.Args) == 0 {
		return fmt.Errorf("no arguments in the command %q", cmd.Desc)
	}
	c := exec.Command(cmd.Args[0], cmd.Args[1:]...)
	c.Dir = cmd.Dir
	c.Stdout = cmd.Stdout
	if c.Stdout == nil {
		c.Stdout = io.Discard
	}
	c.Stderr = cmd.Stderr
	if c.Stderr == nil {
		c.Stderr = io.Discard
	}
	started := time.Now()
	err := forkSema.Do(ctx, func(ctx context.Context) error {
		return c.Start()
	})
	if err != nil {
		var eerr *exec.Error
		if errors.As(err, &eerr) {
			// tool not found etc.
			clog.FromContext(ctx).Warnf("%s: %v", cmd.Desc, err)
			return &execute.ExitError{Args: cmd.Args, Dir: cmd.Dir, ExitCode: 127}
		}
		return fmt.Errorf("failed to start %s: %w", cmd.Desc, err)
	}
	code := exitCode(c.Wait())
	clog.FromContext(ctx).Debugf("%s exit=%d %s", cmd.Desc, code, time.Since(started))
	if !cmd.Accepts(code) {
		return &execute.ExitError{Args: cmd.Args, Dir: cmd.Dir, ExitCode: code}
	}
	return nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var eerr *exec.ExitError
	if !errors.As(err, &eerr) {
		return 1
	}
	if code := eerr.ExitCode(); code >= 0 {
		return code
	}
	// killed by signal.
	return 1
}
