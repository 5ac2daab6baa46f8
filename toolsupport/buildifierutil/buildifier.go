// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package buildifierutil runs buildifier to format bazel files.
package buildifierutil

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bazelboost/bzlboostgen/execute"
	"github.com/bazelboost/bzlboostgen/toolsupport/shutil"
)

// Buildifier is a buildifier command line.
// nil Buildifier is disabled and formats nothing.
type Buildifier struct {
	args []string
}

// New parses cmdline such as "buildifier -lint=off".
// It returns nil for empty cmdline.
func New(cmdline string) (*Buildifier, error) {
	args, err := shutil.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("bad buildifier command line: %w", err)
	}
	if len(args) == 0 {
		return nil, nil
	}
	return &Buildifier{args: args}, nil
}

// Format formats fname in place. Only exit code 0 is success.
func (b *Buildifier) Format(ctx context.Context, ex execute.Executor, fname string) error {
	if b == nil {
		log.Debugf("buildifier disabled. not formatting %s", fname)
		return nil
	}
	args := append([]string(nil), b.args...)
	args = append(args, filepath.Base(fname))
	return ex.Run(ctx, &execute.Cmd{
		Desc: "buildifier " + fname,
		Args: args,
		Dir:  filepath.Dir(fname),
	})
}
