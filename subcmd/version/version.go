// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package version provides version subcommand.
package version

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/maruel/subcommands"
)

// Cmd returns the Command for the `version` subcommand provided by this package.
func Cmd(ver string) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "version",
		ShortDesc: "prints the executable version",
		LongDesc:  "Prints the executable version and the go toolchain and VCS revision it was built with.",
		CommandRun: func() subcommands.CommandRun {
			return &versionRun{version: ver}
		},
	}
}

type versionRun struct {
	subcommands.CommandRunBase
	version string
}

func (c *versionRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 0 {
		fmt.Fprintf(a.GetErr(), "%s: position arguments not expected\n", a.GetName())
		return 1
	}
	buildInfo, _ := debug.ReadBuildInfo()
	printVersion(a.GetOut(), c.version, buildInfo)
	return 0
}

func printVersion(w io.Writer, ver string, buildInfo *debug.BuildInfo) {
	fmt.Fprintln(w, ver)
	if buildInfo == nil {
		return
	}
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		fmt.Fprintf(w, "module\t%s@%s\n", buildInfo.Main.Path, buildInfo.Main.Version)
	}
	if buildInfo.GoVersion != "" {
		fmt.Fprintf(w, "go\t%s\n", buildInfo.GoVersion)
	}
	for _, s := range buildInfo.Settings {
		if strings.HasPrefix(s.Key, "vcs.") {
			fmt.Fprintf(w, "build\t%s=%s\n", s.Key, s.Value)
		}
	}
}
