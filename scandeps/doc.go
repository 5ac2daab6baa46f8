// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package scandeps provides forged boost module dependency scanner.
// It is not a C preprocessor. It only recognizes lines of the form
//
//	#include <boost/foo/bar.hpp>
//	#include "boost/foo.hpp"
//	# include <boost/foo.hpp>
//
// by splitting each line on '#', ' ' and '\t'.
//
// Since it doesn't process `#if`, `#ifdef` nor comments, includes in
// disabled blocks or commented out lines are also reported.
// Dependency lists of boost modules have been curated against this
// behavior, so don't make it smarter.
//
// An include path is mapped to a module name by its second path
// component (boost/MODULE_NAME/... or boost/MODULE_NAME.hpp), unless
// the overrides table says otherwise.
package scandeps
