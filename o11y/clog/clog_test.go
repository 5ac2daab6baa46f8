// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package clog_test

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/bazelboost/bzlboostgen/o11y/clog"
)

func TestNewSpan(t *testing.T) {
	ctx := context.Background()
	if got := clog.FromContext(ctx); got != log.Default() {
		t.Errorf("FromContext(empty)=%p; want default logger %p", got, log.Default())
	}

	var buf bytes.Buffer
	logger := log.New(&buf)
	ctx = clog.NewContext(ctx, logger)
	ctx = clog.NewSpan(ctx, "job", "module")
	clog.FromContext(ctx).Info("scan")

	got := buf.String()
	if !strings.Contains(got, "scan") || !strings.Contains(got, "job=module") {
		t.Errorf("log=%q; want message with job=module", got)
	}
}

func TestLevel(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	for _, tc := range []struct {
		args    []string
		want    log.Level
		wantErr bool
	}{
		{
			want: log.InfoLevel,
		},
		{
			args: []string{"-log_level=debug"},
			want: log.DebugLevel,
		},
		{
			args: []string{"-log_level", "warn"},
			want: log.WarnLevel,
		},
		{
			args:    []string{"-log_level=verbose"},
			wantErr: true,
		},
	} {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(&bytes.Buffer{})
		var level clog.Level
		level.RegisterFlags(fs)
		err := fs.Parse(tc.args)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q)=nil; want error", tc.args)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q)=%v; want nil error", tc.args, err)
			continue
		}
		level.Apply()
		if got := log.GetLevel(); got != tc.want {
			t.Errorf("Parse(%q); level=%v; want %v", tc.args, got, tc.want)
		}
	}
}
