// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package overrides provides the table of include paths that don't follow
// the <boost/MODULE_NAME/...> layout.
//
// A rule pattern is either an exact include path
//
//	boost/noncopyable.hpp
//
// or a prefix terminated by a wildcard
//
//	boost/concept/*
//
// Lookup checks all exact rules first, then wildcard rules from the
// longest prefix to the shortest, so the result never depends on the
// order rules were given in.
package overrides

import (
	"fmt"
	"sort"
	"strings"
)

// Wildcard is the marker that terminates a prefix pattern.
const Wildcard = "*"

// Rule maps an include path pattern to a module name.
type Rule struct {
	Pattern string
	Module  string
}

// IsWildcard reports whether r matches by prefix.
func (r Rule) IsWildcard() bool {
	return strings.HasSuffix(r.Pattern, Wildcard)
}

// Prefix returns the prefix of a wildcard rule, or the full pattern of
// an exact rule.
func (r Rule) Prefix() string {
	return strings.TrimSuffix(r.Pattern, Wildcard)
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.Pattern, r.Module)
}

// Table is an immutable set of override rules.
// The zero value and nil are empty tables.
type Table struct {
	exact    map[string]string
	wildcard []Rule // longest prefix first
}

// New creates a table from rules.
// A later rule with the same pattern replaces an earlier one.
func New(rules ...Rule) (*Table, error) {
	t := &Table{
		exact: make(map[string]string),
	}
	wildcards := make(map[string]Rule)
	for _, r := range rules {
		if r.Module == "" {
			return nil, fmt.Errorf("empty module for pattern %q", r.Pattern)
		}
		if !r.IsWildcard() {
			if r.Pattern == "" {
				return nil, fmt.Errorf("empty pattern for module %q", r.Module)
			}
			t.exact[r.Pattern] = r.Module
			continue
		}
		if r.Prefix() == "" || strings.Contains(r.Prefix(), Wildcard) {
			return nil, fmt.Errorf("bad wildcard pattern %q: wildcard must follow a non-empty prefix", r.Pattern)
		}
		wildcards[r.Pattern] = r
	}
	for _, r := range wildcards {
		t.wildcard = append(t.wildcard, r)
	}
	sort.Slice(t.wildcard, func(i, j int) bool {
		pi, pj := t.wildcard[i].Prefix(), t.wildcard[j].Prefix()
		if len(pi) != len(pj) {
			return len(pi) > len(pj)
		}
		return pi < pj
	})
	return t, nil
}

// Lookup returns the module for incpath if any rule matches.
func (t *Table) Lookup(incpath string) (string, bool) {
	if t == nil {
		return "", false
	}
	if m, ok := t.exact[incpath]; ok {
		return m, true
	}
	for _, r := range t.wildcard {
		if strings.HasPrefix(incpath, r.Prefix()) {
			return r.Module, true
		}
	}
	return "", false
}

// Rules returns the rules in lookup order: exact rules sorted by pattern,
// then wildcard rules.
func (t *Table) Rules() []Rule {
	if t == nil {
		return nil
	}
	rules := make([]Rule, 0, len(t.exact)+len(t.wildcard))
	for p, m := range t.exact {
		rules = append(rules, Rule{Pattern: p, Module: m})
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Pattern < rules[j].Pattern
	})
	return append(rules, t.wildcard...)
}

// Len returns the number of rules.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.exact) + len(t.wildcard)
}
