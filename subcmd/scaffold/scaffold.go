// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package scaffold is scaffold subcommand to create a module directory
// from a template.
package scaffold

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/maruel/subcommands"
	"go.chromium.org/luci/common/cli"

	"github.com/bazelboost/bzlboostgen/o11y/clog"
	"github.com/bazelboost/bzlboostgen/scaffold"
	"github.com/bazelboost/bzlboostgen/ui"
)

const usage = `create a module directory from a template directory.

 $ bzlboostgen scaffold -template <dir> -dest <dir> -name <name>

copies files in -template to -dest, replacing {NAME} in file contents
with -name. Files that already exist in -dest are kept.
`

// Cmd returns the Command for the `scaffold` subcommand provided by this package.
func Cmd() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "scaffold -template <dir> -dest <dir> -name <name>",
		ShortDesc: "create a module directory from a template",
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

	template string
	dest     string
	name     string
	logLevel clog.Level
}

func (c *run) init() {
	c.Flags.StringVar(&c.template, "template", "module_template", "template directory")
	c.Flags.StringVar(&c.dest, "dest", "", "module directory to create")
	c.Flags.StringVar(&c.name, "name", "", "module name to replace {NAME}")
	c.logLevel.RegisterFlags(&c.Flags)
}

func (c *run) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, c, env)
	c.logLevel.Apply()
	err := c.run(ctx, args)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fmt.Fprintf(os.Stderr, "%v\n%s\n", err, usage)
			return 2
		default:
			ui.Default.Errorf("%v", err)
		}
		return 1
	}
	return 0
}

func (c *run) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("position arguments not expected: %w", flag.ErrHelp)
	}
	if c.name == "" {
		return fmt.Errorf("missing -name: %w", flag.ErrHelp)
	}
	if c.dest == "" {
		return fmt.Errorf("missing -dest: %w", flag.ErrHelp)
	}
	result, err := scaffold.Copy(ctx, scaffold.Options{
		Template: c.template,
		Dest:     c.dest,
		Name:     c.name,
		UI:       ui.Default,
	})
	if err != nil {
		return err
	}
	for _, fname := range result.Kept {
		fmt.Printf("skipping %s because it already exists\n", fname)
	}
	return nil
}
