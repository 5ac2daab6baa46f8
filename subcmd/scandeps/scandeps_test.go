// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scandeps

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for fname, content := range map[string]string{
		"include/boost/core/ref.hpp": "#include <boost/config.hpp>\n#include <boost/core/addressof.hpp>\n",
		"src/swap.cpp":               "#include \"boost/noncopyable.hpp\"\n#include <boost/static_assert.hpp>\n",
	} {
		fname = filepath.Join(dir, filepath.FromSlash(fname))
		err := os.MkdirAll(filepath.Dir(fname), 0755)
		if err != nil {
			t.Fatal(err)
		}
		err = os.WriteFile(fname, []byte(content), 0644)
		if err != nil {
			t.Fatal(err)
		}
	}

	for _, tc := range []struct {
		name  string
		flags []string
		args  []string
		want  string
	}{
		{
			name:  "scan",
			flags: []string{"-self", "core"},
			args:  []string{filepath.Join(dir, "include"), filepath.Join(dir, "src")},
			want:  "config\nstatic_assert\n",
		},
		{
			name: "scan-noself",
			args: []string{filepath.Join(dir, "src")},
			want: "core\nstatic_assert\n",
		},
		{
			name:  "resolve",
			flags: []string{"-resolve"},
			args: []string{
				"<boost/noncopyable.hpp>",
				`"boost/config.hpp"`,
				"boost/core/ref.hpp",
				"boost/",
			},
			want: "<boost/noncopyable.hpp>\tcore\n" +
				"\"boost/config.hpp\"\tconfig\n" +
				"boost/core/ref.hpp\tcore\n" +
				"boost/\t<none>\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := &run{}
			c.init()
			err := c.Flags.Parse(tc.flags)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			err = c.run(ctx, &buf, tc.args)
			if err != nil {
				t.Fatalf("run(%q, %q)=%v; want nil error", tc.flags, tc.args, err)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("run(%q, %q) diff -want +got:\n%s", tc.flags, tc.args, diff)
			}
		})
	}
}

func TestRun_errors(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		name     string
		flags    []string
		args     []string
		wantHelp bool
	}{
		{
			name:     "noargs",
			wantHelp: true,
		},
		{
			name:  "missing overrides",
			flags: []string{"-overrides", filepath.Join(t.TempDir(), "missing.star")},
			args:  []string{"."},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := &run{}
			c.init()
			err := c.Flags.Parse(tc.flags)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			err = c.run(ctx, &buf, tc.args)
			if err == nil {
				t.Fatalf("run(%q, %q)=nil; want error", tc.flags, tc.args)
			}
			if got := errors.Is(err, flag.ErrHelp); got != tc.wantHelp {
				t.Errorf("run(%q, %q)=%v; errors.Is(err, flag.ErrHelp)=%t; want %t", tc.flags, tc.args, err, got, tc.wantHelp)
			}
			if buf.Len() != 0 {
				t.Errorf("run(%q, %q) output=%q; want empty", tc.flags, tc.args, buf.String())
			}
		})
	}
}
