// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	wroteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	keptStyle   = lipgloss.NewStyle().Faint(true)
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// TermUI is a terminal-based UI.
type TermUI struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
}

// NewTermUI creates a TermUI writing to stdout and stderr.
func NewTermUI(stdout, stderr io.Writer) *TermUI {
	return &TermUI{stdout: stdout, stderr: stderr}
}

// File implements UI.
func (t *TermUI) File(path string, status FileStatus) {
	style := wroteStyle
	if status == Kept {
		style = keptStyle
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	s := status.String()
	fmt.Fprintf(t.stdout, "%s%s %s\n", style.Render(s), strings.Repeat(" ", max(0, 5-len(s))), path)
}

// JobDone implements UI.
// Successful jobs are only shown if they took long.
func (t *TermUI) JobDone(name string, d time.Duration, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		fmt.Fprintf(t.stderr, "%6s %s %s %v\n", FormatDuration(d), name, failedStyle.Render("failed"), err)
		return
	}
	if d < DurationThreshold {
		return
	}
	fmt.Fprintf(t.stdout, "%6s %s\n", FormatDuration(d), name)
}

// Errorf implements UI.
func (t *TermUI) Errorf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.stderr, "%s %s\n", failedStyle.Render("[ERROR]"), fmt.Sprintf(format, args...))
}
