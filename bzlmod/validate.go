// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bzlmod

import (
	"fmt"
	"strconv"
	"strings"

	"go.starlark.net/syntax"
)

// directives are top-level calls allowed in MODULE.bazel.
var directives = map[string]bool{
	"module":                  true,
	"bazel_dep":               true,
	"local_path_override":     true,
	"single_version_override": true,
}

// Validate checks buf is a MODULE.bazel that starts with module()
// followed only by known directive calls.
func Validate(fname string, buf []byte) error {
	f, err := (&syntax.FileOptions{}).Parse(fname, buf, 0)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", fname, err)
	}
	for i, stmt := range f.Stmts {
		name, ok := callName(stmt)
		if !ok {
			pos, _ := stmt.Span()
			return fmt.Errorf("invalid %s at %s: not a directive call", fname, pos)
		}
		if !directives[name] {
			pos, _ := stmt.Span()
			return fmt.Errorf("invalid %s at %s: unknown directive %s", fname, pos, name)
		}
		if (i == 0) != (name == "module") {
			pos, _ := stmt.Span()
			return fmt.Errorf("invalid %s at %s: module() must be the first statement", fname, pos)
		}
	}
	if len(f.Stmts) == 0 {
		return fmt.Errorf("invalid %s: no module()", fname)
	}
	return nil
}

// Directives returns the top-level calls of a valid MODULE.bazel in
// order, each as a single line `fn(key = value, ...)`, regardless of
// how the file is formatted.
func Directives(fname string, buf []byte) ([]string, error) {
	err := Validate(fname, buf)
	if err != nil {
		return nil, err
	}
	f, err := (&syntax.FileOptions{}).Parse(fname, buf, 0)
	if err != nil {
		return nil, err
	}
	var directives []string
	for _, stmt := range f.Stmts {
		call := stmt.(*syntax.ExprStmt).X.(*syntax.CallExpr)
		var args []string
		for _, arg := range call.Args {
			kv, ok := arg.(*syntax.BinaryExpr)
			if !ok || kv.Op != syntax.EQ {
				pos, _ := arg.Span()
				return nil, fmt.Errorf("invalid %s at %s: not a keyword argument", fname, pos)
			}
			key, ok := kv.X.(*syntax.Ident)
			lit, lok := kv.Y.(*syntax.Literal)
			if !ok || !lok {
				pos, _ := arg.Span()
				return nil, fmt.Errorf("invalid %s at %s: not a literal argument", fname, pos)
			}
			value := fmt.Sprint(lit.Value)
			if s, ok := lit.Value.(string); ok {
				value = strconv.Quote(s)
			}
			args = append(args, key.Name+" = "+value)
		}
		directives = append(directives, fmt.Sprintf("%s(%s)", call.Fn.(*syntax.Ident).Name, strings.Join(args, ", ")))
	}
	return directives, nil
}

func callName(stmt syntax.Stmt) (string, bool) {
	expr, ok := stmt.(*syntax.ExprStmt)
	if !ok {
		return "", false
	}
	call, ok := expr.X.(*syntax.CallExpr)
	if !ok {
		return "", false
	}
	ident, ok := call.Fn.(*syntax.Ident)
	if !ok {
		return "", false
	}
	return ident.Name, true
}
