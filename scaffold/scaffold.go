// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package scaffold creates a module directory from a template directory.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bazelboost/bzlboostgen/o11y/clog"
	"github.com/bazelboost/bzlboostgen/osfs"
	"github.com/bazelboost/bzlboostgen/toolsupport/tmplutil"
	"github.com/bazelboost/bzlboostgen/ui"
)

// Options is options to scaffold a module directory.
type Options struct {
	// Template is the template directory.
	Template string

	// Dest is the module directory to create.
	Dest string

	// Name replaces "{NAME}" in template files.
	Name string

	// UI reports created and skipped files. ui.Default if nil.
	UI ui.UI
}

// Result is the result of Copy.
type Result struct {
	// Wrote and Kept are files relative to Dest, in walk order.
	Wrote []string
	Kept  []string
}

// Copy copies files in opts.Template to opts.Dest, replacing "{NAME}"
// in their contents. Files that exist in opts.Dest are kept as is.
func Copy(ctx context.Context, opts Options) (Result, error) {
	if opts.Name == "" {
		return Result{}, errors.New("missing module name")
	}
	if opts.UI == nil {
		opts.UI = ui.Default
	}
	fi, err := os.Stat(opts.Template)
	if err != nil {
		return Result{}, fmt.Errorf("bad template dir: %w", err)
	}
	if !fi.IsDir() {
		return Result{}, fmt.Errorf("bad template dir %s: not a directory", opts.Template)
	}
	fsys := osfs.New("scaffold")
	vars := map[string]string{"NAME": opts.Name}
	var result Result
	err = filepath.WalkDir(opts.Template, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(opts.Template, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(opts.Dest, rel)
		if d.IsDir() {
			return os.MkdirAll(dest, 0755)
		}
		if !d.Type().IsRegular() {
			clog.FromContext(ctx).Debugf("skip non regular file %s", path)
			return nil
		}
		buf, err := fsys.ReadFile(ctx, path)
		if err != nil {
			return err
		}
		buf = []byte(tmplutil.Expand(string(buf), vars))
		written, err := fsys.WriteFileIfAbsent(ctx, dest, buf, 0644)
		if err != nil {
			return err
		}
		if !written {
			opts.UI.File(dest, ui.Kept)
			result.Kept = append(result.Kept, filepath.ToSlash(rel))
			return nil
		}
		opts.UI.File(dest, ui.Wrote)
		result.Wrote = append(result.Wrote, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("failed to scaffold %s from %s: %w", opts.Dest, opts.Template, err)
	}
	return result, nil
}
