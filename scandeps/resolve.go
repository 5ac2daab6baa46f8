// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scandeps

import (
	"strings"

	"github.com/bazelboost/bzlboostgen/overrides"
)

// headerExtensions are stripped from boost/MODULE_NAME.hpp style paths.
var headerExtensions = []string{".hpp", ".hh", ".hxx", ".h"}

// Resolver maps include paths to module names.
type Resolver struct {
	overrides *overrides.Table
}

// NewResolver creates a resolver consulting table before the path layout.
// A nil table means no overrides.
func NewResolver(table *overrides.Table) *Resolver {
	return &Resolver{overrides: table}
}

// Resolve returns the module name of incpath.
// It returns false if incpath has no module component, e.g. "boost"
// or "boost/".
func (r *Resolver) Resolve(incpath string) (string, bool) {
	if m, ok := r.overrides.Lookup(incpath); ok {
		return m, true
	}
	parts := strings.Split(incpath, "/")
	if len(parts) < 2 {
		return "", false
	}
	name := parts[1]
	for _, ext := range headerExtensions {
		if strings.HasSuffix(name, ext) {
			name = strings.TrimSuffix(name, ext)
			break
		}
	}
	if name == "" {
		return "", false
	}
	return name, true
}
