// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package overrides

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// starVar is the global a Starlark override file must define.
//
//	overrides = {
//	    "boost/noncopyable.hpp": "core",
//	    "boost/concept/*": "concept_check",
//	}
const starVar = "overrides"

// Load reads override rules from a Starlark file and returns the default
// table extended with them. A rule in the file replaces a default rule
// with the same pattern.
func Load(fname string) (*Table, error) {
	buf, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("failed to load overrides: %w", err)
	}
	rules, err := parseStar(fname, buf)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %d override rules from %s", len(rules), fname)
	return New(append(DefaultRules(), rules...)...)
}

func parseStar(fname string, buf []byte) ([]Rule, error) {
	thread := &starlark.Thread{
		Name: "overrides",
		Print: func(thread *starlark.Thread, msg string) {
			log.Infof("thread:%s %s", thread.Name, msg)
		},
	}
	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, fname, buf, nil)
	if err != nil {
		var eerr *starlark.EvalError
		if errors.As(err, &eerr) {
			log.Warnf("stacktrace:\n%s", eerr.Backtrace())
		}
		return nil, fmt.Errorf("failed to exec %s: %w", fname, err)
	}
	v, ok := globals[starVar]
	if !ok {
		return nil, fmt.Errorf("%s is not defined in %s", starVar, fname)
	}
	d, ok := v.(*starlark.Dict)
	if !ok {
		return nil, fmt.Errorf("%s is %s, not dict in %s", starVar, v.Type(), fname)
	}
	var rules []Rule
	for _, item := range d.Items() {
		pattern, ok := starlark.AsString(item[0])
		if !ok {
			return nil, fmt.Errorf("%s key %s is not string in %s", starVar, item[0], fname)
		}
		module, ok := starlark.AsString(item[1])
		if !ok {
			return nil, fmt.Errorf("%s[%q]=%s is not string in %s", starVar, pattern, item[1], fname)
		}
		rules = append(rules, Rule{Pattern: pattern, Module: module})
	}
	return rules, nil
}
