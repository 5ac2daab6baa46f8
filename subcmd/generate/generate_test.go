// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package generate

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bazelboost/bzlboostgen/generate"
)

func setupModule(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "core")
	fname := filepath.Join(dir, "include", "boost", "core", "ref.hpp")
	err := os.MkdirAll(filepath.Dir(fname), 0755)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(fname, []byte("#include <boost/config.hpp>\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		name     string
		flags    []string
		args     func(dir string) []string
		wantErr  bool
		wantHelp bool
		wantCode int
	}{
		{
			name:  "ok",
			flags: []string{"-buildifier=", "-buildozer="},
			args: func(dir string) []string {
				return []string{dir}
			},
		},
		{
			name:  "too many args",
			flags: []string{"-buildifier=", "-buildozer="},
			args: func(dir string) []string {
				return []string{dir, dir}
			},
			wantErr:  true,
			wantHelp: true,
			wantCode: 2,
		},
		{
			name:  "bad buildifier",
			flags: []string{"-buildifier=buildifier 'unterminated", "-buildozer="},
			args: func(dir string) []string {
				return []string{dir}
			},
			wantErr:  true,
			wantHelp: true,
			wantCode: 2,
		},
		{
			name:  "bad buildozer",
			flags: []string{"-buildifier=", `-buildozer=buildozer "unterminated`},
			args: func(dir string) []string {
				return []string{dir}
			},
			wantErr:  true,
			wantHelp: true,
			wantCode: 2,
		},
		{
			name:  "missing overrides",
			flags: []string{"-buildifier=", "-buildozer=", "-overrides=missing.star"},
			args: func(dir string) []string {
				return []string{dir}
			},
			wantErr:  true,
			wantCode: 1,
		},
		{
			name:  "bad version",
			flags: []string{"-buildifier=", "-buildozer=", "-version=1.83"},
			args: func(dir string) []string {
				return []string{dir}
			},
			wantErr:  true,
			wantCode: generate.ExitUserInput,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dir := setupModule(t)
			c := &run{}
			c.init()
			err := c.Flags.Parse(tc.flags)
			if err != nil {
				t.Fatal(err)
			}
			err = c.run(ctx, tc.args(dir))
			if (err != nil) != tc.wantErr {
				t.Fatalf("run(%q)=%v; want err=%t", tc.flags, err, tc.wantErr)
			}
			if got := errors.Is(err, flag.ErrHelp); got != tc.wantHelp {
				t.Errorf("run(%q)=%v; errors.Is(err, flag.ErrHelp)=%t; want %t", tc.flags, err, got, tc.wantHelp)
			}
			var buf bytes.Buffer
			if got := exitCode(&buf, err); got != tc.wantCode {
				t.Errorf("exitCode(%v)=%d; want %d", err, got, tc.wantCode)
			}
			if tc.wantErr {
				return
			}
			_, err = os.Stat(filepath.Join(dir, "MODULE.bazel"))
			if err != nil {
				t.Errorf("MODULE.bazel: %v", err)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	for _, tc := range []struct {
		err     error
		want    int
		wantOut string
	}{
		{
			err:  nil,
			want: 0,
		},
		{
			err:     fmt.Errorf("too many args: %w", flag.ErrHelp),
			want:    2,
			wantOut: "too many args: flag: help requested\n",
		},
		{
			err:     fmt.Errorf("module: %w", context.Canceled),
			want:    130,
			wantOut: "interrupted\n",
		},
	} {
		var buf bytes.Buffer
		if got := exitCode(&buf, tc.err); got != tc.want {
			t.Errorf("exitCode(%v)=%d; want %d", tc.err, got, tc.want)
		}
		if !strings.HasPrefix(buf.String(), tc.wantOut) {
			t.Errorf("exitCode(%v) output=%q; want prefix %q", tc.err, buf.String(), tc.wantOut)
		}
	}
}
