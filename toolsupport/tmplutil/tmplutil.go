// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package tmplutil expands {KEY} placeholders in templates.
package tmplutil

import (
	"sort"
	"strings"
)

// Expand replaces each "{KEY}" in s with vars[KEY].
// Unknown placeholders are left as is.
func Expand(s string, vars map[string]string) string {
	if len(vars) == 0 {
		return s
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	oldnew := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		oldnew = append(oldnew, "{"+k+"}", vars[k])
	}
	return strings.NewReplacer(oldnew...).Replace(s)
}
