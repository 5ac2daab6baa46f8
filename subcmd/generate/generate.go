// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package generate is generate subcommand to generate bazel module files.
package generate

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/maruel/subcommands"
	"go.chromium.org/luci/common/cli"

	"github.com/bazelboost/bzlboostgen/generate"
	"github.com/bazelboost/bzlboostgen/o11y/clog"
	"github.com/bazelboost/bzlboostgen/overrides"
	"github.com/bazelboost/bzlboostgen/toolsupport/buildifierutil"
	"github.com/bazelboost/bzlboostgen/toolsupport/buildozerutil"
	"github.com/bazelboost/bzlboostgen/ui"
)

const usage = `generate bazel module files for a boost module directory.

 $ bzlboostgen generate [-name <name>] [-version <version>] [<dir>]

<dir> is a boost module checkout, e.g. boost/libs/core, and defaults
to the current directory. It writes MODULE.bazel every time, and
BUILD.bazel, .bazelrc, WORKSPACE.bazel and the release workflow only
if they don't exist yet. If <dir>/test exists, test/MODULE.bazel and
test/BUILD.bazel are generated for the test module as well.

generate is the default command, so "bzlboostgen <dir>" works too.
Use "bzlboostgen generate <dir>" when <dir> has the name of a command,
e.g. "bzlboostgen generate help".
`

// Cmd returns the Command for the `generate` subcommand provided by this package.
func Cmd() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "generate [flags] [<dir>]",
		ShortDesc: "generate bazel module files",
		LongDesc:  usage,
		CommandRun: func() subcommands.CommandRun {
			c := &run{}
			c.init()
			return c
		},
	}
}

type run struct {
	subcommands.CommandRunBase

	name               string
	version            string
	compatibilityLevel int
	namespace          string
	overridesFile      string
	buildifier         string
	buildozer          string
	jobs               int
	logLevel           clog.Level
}

func (c *run) init() {
	c.Flags.StringVar(&c.name, "name", "", "module name without namespace, e.g. core. detected from <dir> if empty")
	c.Flags.StringVar(&c.version, "version", generate.DefaultVersion, "module version")
	c.Flags.IntVar(&c.compatibilityLevel, "compatibility_level", 0, "module compatibility level. derived from -version if 0")
	c.Flags.StringVar(&c.namespace, "namespace", generate.DefaultNamespace, "include namespace, also used as module name prefix")
	c.Flags.StringVar(&c.overridesFile, "overrides", "", "starlark file to add include path to module name overrides")
	c.Flags.StringVar(&c.buildifier, "buildifier", "buildifier", "buildifier command line. empty to disable")
	c.Flags.StringVar(&c.buildozer, "buildozer", "buildozer", "buildozer command line. empty to disable")
	c.Flags.IntVar(&c.jobs, "j", 4, "max number of concurrent jobs")
	c.logLevel.RegisterFlags(&c.Flags)
}

func (c *run) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, c, env)
	c.logLevel.Apply()
	return exitCode(os.Stderr, c.run(ctx, args))
}

// exitCode reports err to w and returns the exit code for err.
func exitCode(w io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		fmt.Fprintf(w, "%v\n%s\n", err, usage)
		return 2
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(w, "interrupted\n")
	default:
		ui.Default.Errorf("%v", err)
	}
	return generate.ExitCode(err)
}

func (c *run) run(ctx context.Context, args []string) error {
	dir := "."
	switch len(args) {
	case 0:
	case 1:
		dir = args[0]
	default:
		return fmt.Errorf("too many args %q: %w", args, flag.ErrHelp)
	}
	table := overrides.Default()
	if c.overridesFile != "" {
		var err error
		table, err = overrides.Load(c.overridesFile)
		if err != nil {
			return err
		}
	}
	buildifier, err := buildifierutil.New(c.buildifier)
	if err != nil {
		return fmt.Errorf("%w: %w", err, flag.ErrHelp)
	}
	buildozer, err := buildozerutil.New(c.buildozer)
	if err != nil {
		return fmt.Errorf("%w: %w", err, flag.ErrHelp)
	}
	g, err := generate.New(generate.Options{
		Dir:                dir,
		Name:               c.name,
		Version:            c.version,
		CompatibilityLevel: c.compatibilityLevel,
		Namespace:          c.namespace,
		Overrides:          table,
		Buildifier:         buildifier,
		Buildozer:          buildozer,
		Jobs:               c.jobs,
		UI:                 ui.Default,
	})
	if err != nil {
		return err
	}
	return g.Run(ctx)
}
