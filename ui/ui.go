// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package ui reports progress of generation jobs to the user.
package ui

import (
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// FileStatus is what happened to an output file.
type FileStatus int

const (
	// Wrote means the file was (re)written.
	Wrote FileStatus = iota
	// Kept means the file existed and was left untouched.
	Kept
)

func (s FileStatus) String() string {
	switch s {
	case Wrote:
		return "wrote"
	case Kept:
		return "kept"
	}
	return "unknown"
}

// UI is a user interface. Implementations are safe for concurrent use
// by jobs.
type UI interface {
	// File reports status of an output file.
	File(path string, status FileStatus)
	// JobDone reports a finished job and how long it took.
	JobDone(name string, d time.Duration, err error)
	// Errorf reports an error to the user.
	Errorf(format string, args ...any)
}

// Default holds the default UI interface.
// Making changes to this variable after init is undefined behavior.
var Default UI

func init() {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		Default = NewTermUI(os.Stdout, os.Stderr)
	} else {
		Default = &LogUI{}
	}
}

// IsTerminal returns whether currently using a terminal UI.
func IsTerminal() bool {
	_, ok := Default.(*TermUI)
	return ok
}

// StripANSIEscapeCodes strips ANSI escape codes.
func StripANSIEscapeCodes(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\033' {
			sb.WriteByte(s[i])
			continue
		}
		// Only strip CSIs for now.
		if i+1 >= len(s) {
			break
		}
		if s[i+1] != '[' {
			continue
		}
		i += 2
		for i < len(s) && !((s[i] >= 'a' && s[i] <= 'z') || s[i] >= 'A' && s[i] <= 'Z') {
			i++
		}
	}
	return sb.String()
}
