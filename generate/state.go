// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package generate

// State is a state of a generation run.
type State int

const (
	// Init is the state before Run.
	Init State = iota
	// Validate checks the module directory and its identity.
	// No files are written in this state.
	Validate
	// Dispatch starts generation jobs.
	Dispatch
	// Joining waits for all jobs to finish.
	Joining
	// Done means all jobs succeeded.
	Done
	// Failed means validation or some job failed.
	Failed
)

func (s State) String() string {
	switch s {
	case Init:
		return "init"
	case Validate:
		return "validate"
	case Dispatch:
		return "dispatch"
	case Joining:
		return "joining"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return "unknown"
}
