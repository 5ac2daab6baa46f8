// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package scandeps is scandeps subcommand for debugging scandeps.
package scandeps

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maruel/subcommands"
	"go.chromium.org/luci/common/cli"

	"github.com/bazelboost/bzlboostgen/o11y/clog"
	"github.com/bazelboost/bzlboostgen/overrides"
	"github.com/bazelboost/bzlboostgen/scandeps"
)

const usage = `run scandeps

 $ bzlboostgen scandeps [-self <name>] <dir>...

prints module names included from files in <dir>s, one per line,
as MODULE.bazel of the module would have as bazel_dep.

 $ bzlboostgen scandeps -resolve <include path>...

prints module name of each include path, e.g. boost/noncopyable.hpp.
`

// Cmd returns the Command for the `scandeps` subcommand provided by this package.
func Cmd() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "scandeps <args>...",
		ShortDesc: "run scandeps",
		LongDesc:  usage,
		Advanced:  true,
		CommandRun: func() subcommands.CommandRun {
			c := &run{}
			c.init()
			return c
		},
	}
}

type run struct {
	subcommands.CommandRunBase

	self          string
	namespace     string
	overridesFile string
	resolve       bool
	logLevel      clog.Level
}

func (c *run) init() {
	c.Flags.StringVar(&c.self, "self", "", "module name to exclude from deps, e.g. core")
	c.Flags.StringVar(&c.namespace, "namespace", "boost", "include namespace")
	c.Flags.StringVar(&c.overridesFile, "overrides", "", "starlark file to add include path to module name overrides")
	c.Flags.BoolVar(&c.resolve, "resolve", false, "resolve include paths given as args instead of scanning dirs")
	c.logLevel.RegisterFlags(&c.Flags)
}

func (c *run) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, c, env)
	c.logLevel.Apply()
	err := c.run(ctx, a.GetOut(), args)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fmt.Fprintf(os.Stderr, "%v\n%s\n", err, usage)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func (c *run) run(ctx context.Context, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no args: %w", flag.ErrHelp)
	}
	table := overrides.Default()
	if c.overridesFile != "" {
		var err error
		table, err = overrides.Load(c.overridesFile)
		if err != nil {
			return err
		}
	}
	s := scandeps.New(c.namespace, table)
	if c.resolve {
		resolver := s.Resolver()
		for _, incpath := range args {
			m, ok := resolver.Resolve(strings.Trim(incpath, `"<>`))
			if !ok {
				m = "<none>"
			}
			fmt.Fprintf(w, "%s\t%s\n", incpath, m)
		}
		return nil
	}
	deps, err := s.Scan(ctx, scandeps.Request{
		Self:  c.self,
		Roots: args,
	})
	if err != nil {
		return err
	}
	for _, dep := range deps {
		fmt.Fprintln(w, dep)
	}
	return nil
}
