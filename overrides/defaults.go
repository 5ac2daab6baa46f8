// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package overrides

// Some boost headers don't follow the <boost/MODULE_NAME.hpp> format.
// Those non-standard (mostly deprecated) headers are listed here.
var defaultRules = []Rule{
	{Pattern: "boost/current_function.hpp", Module: "assert"},

	{Pattern: "boost/cstdint.hpp", Module: "config"},
	{Pattern: "boost/cxx11_char_types.hpp", Module: "config"},
	{Pattern: "boost/limits.hpp", Module: "config"},
	{Pattern: "boost/version.hpp", Module: "config"},
	{Pattern: "boost/detail/workaround.hpp", Module: "config"},

	{Pattern: "boost/noncopyable.hpp", Module: "core"},

	{Pattern: "boost/make_shared.hpp", Module: "smart_ptr"},

	{Pattern: "boost/exception/exception.hpp", Module: "throw_exception"},

	{Pattern: "boost/blank.hpp", Module: "detail"},
	{Pattern: "boost/blank_fwd.hpp", Module: "detail"},
	{Pattern: "boost/cstdlib.hpp", Module: "detail"},

	{Pattern: "boost/none.hpp", Module: "optional"},
	{Pattern: "boost/none_t.hpp", Module: "optional"},

	// Modules living below a shared directory.
	{Pattern: "boost/concept/*", Module: "concept_check"},
	{Pattern: "boost/numeric/conversion/*", Module: "numeric_conversion"},
	{Pattern: "boost/numeric/interval/*", Module: "interval"},
	{Pattern: "boost/numeric/odeint/*", Module: "odeint"},
	{Pattern: "boost/numeric/ublas/*", Module: "ublas"},
}

var defaultTable = mustNew(defaultRules...)

func mustNew(rules ...Rule) *Table {
	t, err := New(rules...)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the built-in table for boost.
// The returned table is shared and must be treated as read-only.
func Default() *Table {
	return defaultTable
}

// DefaultRules returns a copy of the built-in rules.
func DefaultRules() []Rule {
	return append([]Rule(nil), defaultRules...)
}
