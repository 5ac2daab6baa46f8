// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package shutil provides shell command line utilities.
package shutil

import "strings"

// Join joins command line args to a single string that a POSIX shell
// would split back into args.
func Join(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, Quote(arg))
	}
	return strings.Join(quoted, " ")
}

// Quote quotes arg for a POSIX shell if needed.
func Quote(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsFunc(arg, needsQuote) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./=:@+,%", r)
}
