// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bzlmod

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ParseVersion parses a module version in strict X.Y.Z form.
func ParseVersion(raw string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("bad module version %q: %w", raw, err)
	}
	return v, nil
}

// CompatibilityLevel returns the boost convention of compatibility level
// for v, i.e. 108300 for 1.83.0.
func CompatibilityLevel(v *semver.Version) int {
	return int(v.Major())*100000 + int(v.Minor())*100 + int(v.Patch())
}
