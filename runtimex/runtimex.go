// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package runtimex provides the number of CPUs usable for concurrent
// jobs and subprocesses.
package runtimex

import (
	"runtime"
	"sync"
)

var numCPU = sync.OnceValue(func() int {
	if n := activeProcessorCount(); n > 0 {
		return n
	}
	return runtime.NumCPU()
})

// NumCPU returns the number of logical CPUs usable by the current process.
// Unlike runtime.NumCPU, it counts CPUs of all processor groups on Windows.
func NumCPU() int {
	return numCPU()
}
