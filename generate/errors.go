// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package generate

import (
	"context"
	"errors"
	"fmt"

	"github.com/bazelboost/bzlboostgen/execute"
)

const (
	// ExitUserInput is the exit code for a directory that is not a
	// module directory.
	ExitUserInput = 1

	// ExitAmbiguous is the exit code when the module name can't be
	// decided from the directory.
	ExitAmbiguous = 3
)

// UserInputError is an error in the directory given by the user.
type UserInputError struct {
	Dir       string
	Namespace string
	Msg       string
	ExitCode  int
}

func (e *UserInputError) Error() string {
	return fmt.Sprintf("%s\n        Are you sure '%s' is a %s module directory?", e.Msg, e.Dir, e.Namespace)
}

// ExitCode returns process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var uerr *UserInputError
	if errors.As(err, &uerr) && uerr.ExitCode != 0 {
		return uerr.ExitCode
	}
	var eerr *execute.ExitError
	if errors.As(err, &eerr) && eerr.ExitCode != 0 {
		return eerr.ExitCode
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}
	return 1
}
