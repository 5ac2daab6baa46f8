// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package help provides help subcommand.
package help

import (
	"fmt"
	"io"

	"github.com/maruel/subcommands"
)

// Cmd returns the Command for the `help` subcommand provided by this package.
// defaultCmd is the command run when no command is given.
func Cmd(defaultCmd string) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "help [<command>|-advanced]",
		ShortDesc: "prints help about a command",
		LongDesc:  "Prints commands or help about a specific command.\nUse -advanced to display all commands.",
		CommandRun: func() subcommands.CommandRun {
			ret := &helpCmdRun{defaultCmd: defaultCmd}
			ret.Flags.BoolVar(&ret.advanced, "advanced", false, "show advanced commands")
			return ret
		},
	}
}

type helpCmdRun struct {
	subcommands.CommandRunBase
	defaultCmd string
	advanced   bool
}

func (h *helpCmdRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) == 0 {
		subcommands.Usage(a.GetOut(), a, h.advanced)
		printDefaultCmd(a.GetOut(), a.GetName(), h.defaultCmd)
		return 0
	}
	return subcommands.CmdHelp.CommandRun().Run(a, args, env)
}

// printDefaultCmd explains how args without a command name are run.
func printDefaultCmd(w io.Writer, name, defaultCmd string) {
	if defaultCmd == "" {
		return
	}
	fmt.Fprintf(w, "If <command> is omitted, %q is run.\n", defaultCmd)
	fmt.Fprintf(w, "Use \"%s %s <dir>\" if <dir> has the name of a command, e.g. %q.\n", name, defaultCmd, "help")
}
