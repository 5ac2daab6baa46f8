// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package bzlmod renders MODULE.bazel files.
package bzlmod

import (
	"sort"
	"strconv"

	"github.com/bazelbuild/buildtools/build"
)

// FileName is the name of a bzlmod manifest.
const FileName = "MODULE.bazel"

// Manifest is the content of MODULE.bazel.
type Manifest struct {
	Name               string
	Version            string
	CompatibilityLevel int

	Deps               []Dep
	LocalPathOverrides []LocalPathOverride
}

// Dep is a bazel_dep.
// Version is omitted if empty, e.g. when the dependency is overridden.
type Dep struct {
	Name    string
	Version string
}

// LocalPathOverride is a local_path_override.
type LocalPathOverride struct {
	ModuleName string
	Path       string
}

// Format renders m in buildifier style. Deps and overrides are sorted
// by name, so the output doesn't depend on their order in m.
func Format(m Manifest) []byte {
	f := &build.File{
		Path: FileName,
		Type: build.TypeModule,
	}

	args := []build.Expr{kwarg("name", str(m.Name))}
	if m.Version != "" {
		args = append(args, kwarg("version", str(m.Version)))
	}
	args = append(args, kwarg("compatibility_level", &build.LiteralExpr{Token: strconv.Itoa(m.CompatibilityLevel)}))
	f.Stmt = append(f.Stmt, call("module", args, true))

	deps := append([]Dep(nil), m.Deps...)
	sort.Slice(deps, func(i, j int) bool {
		return deps[i].Name < deps[j].Name
	})
	for _, d := range deps {
		args := []build.Expr{kwarg("name", str(d.Name))}
		if d.Version != "" {
			args = append(args, kwarg("version", str(d.Version)))
		}
		f.Stmt = append(f.Stmt, call("bazel_dep", args, false))
	}

	overrides := append([]LocalPathOverride(nil), m.LocalPathOverrides...)
	sort.Slice(overrides, func(i, j int) bool {
		return overrides[i].ModuleName < overrides[j].ModuleName
	})
	for _, o := range overrides {
		f.Stmt = append(f.Stmt, call("local_path_override", []build.Expr{
			kwarg("module_name", str(o.ModuleName)),
			kwarg("path", str(o.Path)),
		}, true))
	}
	return build.Format(f)
}

// Render renders m and checks the result is a valid manifest.
// fname is used in error messages.
func Render(fname string, m Manifest) ([]byte, error) {
	buf := Format(m)
	err := Validate(fname, buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func call(fn string, args []build.Expr, multiLine bool) *build.CallExpr {
	return &build.CallExpr{
		X:              &build.Ident{Name: fn},
		List:           args,
		ForceCompact:   !multiLine,
		ForceMultiLine: multiLine,
	}
}

func kwarg(key string, value build.Expr) *build.AssignExpr {
	return &build.AssignExpr{
		LHS: &build.Ident{Name: key},
		Op:  "=",
		RHS: value,
	}
}

func str(s string) *build.StringExpr {
	return &build.StringExpr{Value: s}
}
