// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bazelboost/bzlboostgen/ui"
)

func TestStripANSIEscapeCodes(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{
			in:   "foo\033",
			want: "foo",
		},
		{
			in:   "foo\033[",
			want: "foo",
		},
		{
			in:   "\033[32mwrote\033[0m MODULE.bazel",
			want: "wrote MODULE.bazel",
		},
	} {
		got := ui.StripANSIEscapeCodes(tc.in)
		if got != tc.want {
			t.Errorf("ui.StripANSIEscapeCodes(%q)=%q; want=%q", tc.in, got, tc.want)
		}
	}
}

func TestTermUI(t *testing.T) {
	var stdout, stderr bytes.Buffer
	u := ui.NewTermUI(&stdout, &stderr)
	u.File("MODULE.bazel", ui.Wrote)
	u.File(".bazelrc", ui.Kept)
	u.JobDone("fast", time.Millisecond, nil)
	u.JobDone("slow", 2*time.Second, nil)
	u.JobDone("main", time.Second, errors.New("exit code 1"))

	out := ui.StripANSIEscapeCodes(stdout.String())
	for _, want := range []string{"wrote MODULE.bazel\n", "kept  .bazelrc\n", " 2.00s slow\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout=%q; want to contain %q", out, want)
		}
	}
	if strings.Contains(out, "fast") {
		t.Errorf("stdout=%q; want no short successful job", out)
	}
	errout := ui.StripANSIEscapeCodes(stderr.String())
	if !strings.Contains(errout, "main failed exit code 1") {
		t.Errorf("stderr=%q; want failure of main", errout)
	}
}
