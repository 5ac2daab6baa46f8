// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// bzlboostgen generates bazel module files for boost modules.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/maruel/subcommands"
	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/system/signals"

	"github.com/bazelboost/bzlboostgen/subcmd/generate"
	"github.com/bazelboost/bzlboostgen/subcmd/help"
	"github.com/bazelboost/bzlboostgen/subcmd/scaffold"
	"github.com/bazelboost/bzlboostgen/subcmd/scandeps"
	"github.com/bazelboost/bzlboostgen/subcmd/version"
)

const (
	versionID  = "v0.1.0"
	versionStr = "bzlboostgen " + versionID

	defaultCmd = "generate"
)

func main() {
	os.Exit(bzlboostgenMain(os.Args[1:]))
}

func getApplication(ctx context.Context) *cli.Application {
	return &cli.Application{
		Name:  "bzlboostgen",
		Title: "Bazel module generator for boost modules",
		Context: func(context.Context) context.Context {
			return ctx
		},
		Commands: []*subcommands.Command{
			generate.Cmd(),
			scaffold.Cmd(),
			scandeps.Cmd(),

			help.Cmd(defaultCmd),
			version.Cmd(versionStr),
		},
	}
}

func bzlboostgenMain(args []string) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer signals.HandleInterrupt(cancel)()

	// Print a stack trace when a panic occurs.
	defer func() {
		if r := recover(); r != nil {
			const size = 64 << 10
			buf := make([]byte, size)
			buf = buf[:runtime.Stack(buf, false)]
			log.Fatalf("panic: %v\n%s", r, buf)
		}
	}()

	buildinfo, ok := debug.ReadBuildInfo()
	if ok {
		log.Debugf("main module: %s %s", moduleInfo(&buildinfo.Main), vcsInfo(buildinfo))
	}

	app := getApplication(ctx)
	return subcommands.Run(app, withDefaultCmd(app, args))
}

// withDefaultCmd prepends defaultCmd to args unless args starts with a
// command name or a help flag.
func withDefaultCmd(app subcommands.Application, args []string) []string {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "-help", "--help":
			return args
		}
		for _, cmd := range app.GetCommands() {
			if cmd.Name() == args[0] {
				return args
			}
		}
	}
	return append([]string{defaultCmd}, args...)
}

func moduleInfo(m *debug.Module) string {
	if m == nil {
		return "<nil>"
	}
	return fmt.Sprintf("path:%s version:%s sum:%s replace:%s", m.Path, m.Version, m.Sum, moduleInfo(m.Replace))
}

func vcsInfo(buildinfo *debug.BuildInfo) string {
	m := make(map[string]string)
	for _, bs := range buildinfo.Settings {
		if strings.HasPrefix(bs.Key, "vcs.") {
			m[bs.Key] = bs.Value
		}
	}
	return fmt.Sprintf("vcs[revision=%s time=%s modified=%s]", m["vcs.revision"], m["vcs.time"], m["vcs.modified"])
}
