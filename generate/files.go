// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package generate

import (
	"context"
	"embed"
	"fmt"

	"github.com/bazelboost/bzlboostgen/o11y/clog"
	"github.com/bazelboost/bzlboostgen/toolsupport/tmplutil"
	"github.com/bazelboost/bzlboostgen/ui"
)

//go:embed templates/*.tmpl
var templates embed.FS

const (
	buildTemplate     = "BUILD.bazel.tmpl"
	testBuildTemplate = "BUILD.test.bazel.tmpl"
	bazelrcTemplate   = "bazelrc.tmpl"
	workflowTemplate  = "bzlmod-archive.yml.tmpl"
	workspaceTemplate = "WORKSPACE.bazel.tmpl"
)

// Output file names relative to the module directory.
const (
	buildFile     = "BUILD.bazel"
	bazelrcFile   = ".bazelrc"
	workflowFile  = ".github/workflows/bzlmod-archive.yml"
	workspaceFile = "WORKSPACE.bazel"
	testDir       = "test"
)

func expand(name string, vars map[string]string) ([]byte, error) {
	buf, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("missing template %s: %w", name, err)
	}
	return []byte(tmplutil.Expand(string(buf), vars)), nil
}

// writeTemplateIfAbsent expands template tmpl into fname unless fname
// exists.
func (g *Generator) writeTemplateIfAbsent(ctx context.Context, fname, tmpl string, vars map[string]string) error {
	buf, err := expand(tmpl, vars)
	if err != nil {
		return err
	}
	written, err := g.fs.WriteFileIfAbsent(ctx, fname, buf, 0644)
	if err != nil {
		return err
	}
	if !written {
		clog.FromContext(ctx).Debugf("keep %s", fname)
		g.opts.UI.File(fname, ui.Kept)
		return nil
	}
	g.opts.UI.File(fname, ui.Wrote)
	return nil
}
