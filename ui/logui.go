// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// LogUI is a log-based UI.
type LogUI struct{}

// File implements UI.
func (LogUI) File(path string, status FileStatus) {
	log.Infof("%s %s", status, path)
}

// JobDone implements UI.
func (LogUI) JobDone(name string, d time.Duration, err error) {
	if err != nil {
		log.Warnf("%s failed %s: %v", name, FormatDuration(d), err)
		return
	}
	log.Infof("%s done %s", name, FormatDuration(d))
}

// Errorf reports to stderr, stripping ansi escape sequence.
func (LogUI) Errorf(format string, args ...any) {
	log.Helper()
	log.Error(StripANSIEscapeCodes(fmt.Sprintf(format, args...)))
}
