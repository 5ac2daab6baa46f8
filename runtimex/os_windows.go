// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

//go:build windows

package runtimex

import (
	"syscall"

	"golang.org/x/sys/windows"
)

const allProcessorGroups = 0xFFFF

var procGetActiveProcessorCount = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetActiveProcessorCount")

// activeProcessorCount returns the number of CPUs in all processor groups.
func activeProcessorCount() int {
	if procGetActiveProcessorCount.Find() != nil {
		return 0
	}
	r0, _, _ := syscall.SyscallN(procGetActiveProcessorCount.Addr(), allProcessorGroups)
	return int(r0)
}
