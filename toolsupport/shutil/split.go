// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shutil

import (
	"fmt"
	"strings"
)

// Split splits a command line into args.
// It supports single and double quotes and backslash escapes, and
// returns error for pipelines, redirects and other shell syntax.
func Split(cmdline string) ([]string, error) {
	var args []string
	var sb strings.Builder
	inArg := false
	var quote rune
	escaped := false
	for _, ch := range cmdline {
		switch {
		case escaped:
			sb.WriteRune(ch)
			escaped = false
			continue
		case quote == '\'':
			if ch == '\'' {
				quote = 0
				continue
			}
			sb.WriteRune(ch)
			continue
		case quote == '"':
			switch ch {
			case '"':
				quote = 0
			case '\\':
				escaped = true
			default:
				sb.WriteRune(ch)
			}
			continue
		}
		switch ch {
		case ' ', '\t', '\n':
			if inArg {
				args = append(args, sb.String())
				sb.Reset()
				inArg = false
			}
		case '\\':
			escaped = true
			inArg = true
		case '\'', '"':
			quote = ch
			inArg = true
		case ';', '&', '|', '<', '>', '$', '`', '(', ')':
			return nil, fmt.Errorf("failed to split %q: shell metachar %c", cmdline, ch)
		default:
			sb.WriteRune(ch)
			inArg = true
		}
	}
	if escaped {
		return nil, fmt.Errorf("failed to split %q: trailing backslash", cmdline)
	}
	if quote != 0 {
		return nil, fmt.Errorf("failed to split %q: unterminated %c", cmdline, quote)
	}
	if inArg {
		args = append(args, sb.String())
	}
	return args, nil
}
