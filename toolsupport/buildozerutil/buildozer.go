// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package buildozerutil runs buildozer to edit bazel targets.
package buildozerutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bazelboost/bzlboostgen/execute"
	"github.com/bazelboost/bzlboostgen/toolsupport/shutil"
)

// ExitNoChanges is buildozer's exit code when the command made no changes.
const ExitNoChanges = 3

// Buildozer is a buildozer command line.
// nil Buildozer is disabled and edits nothing.
type Buildozer struct {
	args []string
}

// New parses cmdline such as "buildozer -quiet".
// It returns nil for empty cmdline.
func New(cmdline string) (*Buildozer, error) {
	args, err := shutil.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("bad buildozer command line: %w", err)
	}
	if len(args) == 0 {
		return nil, nil
	}
	return &Buildozer{args: args}, nil
}

// Run runs buildozer command on labels in dir as root dir.
// Exit code 0 and ExitNoChanges are success.
func (b *Buildozer) Run(ctx context.Context, ex execute.Executor, dir, command string, labels ...string) error {
	if b == nil {
		log.Debugf("buildozer disabled. not running %q %q in %s", command, labels, dir)
		return nil
	}
	args := append([]string(nil), b.args...)
	args = append(args, "-root_dir=.", command)
	args = append(args, labels...)
	return ex.Run(ctx, &execute.Cmd{
		Desc:      fmt.Sprintf("buildozer %s %s", command, strings.Join(labels, " ")),
		Args:      args,
		Dir:       dir,
		ExitCodes: []int{0, ExitNoChanges},
	})
}

// SetDeps returns buildozer command to set deps attribute to modules.
// e.g. "set deps @boost.assert @boost.config"
func SetDeps(repoPrefix string, modules []string) string {
	var sb strings.Builder
	sb.WriteString("set deps")
	for _, m := range modules {
		fmt.Fprintf(&sb, " @%s%s", repoPrefix, m)
	}
	return sb.String()
}
