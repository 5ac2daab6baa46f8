// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ui

import (
	"fmt"
	"time"
)

// DurationThreshold is the shortest duration of a successful job worth
// reporting in TermUI.
const DurationThreshold = 500 * time.Millisecond

// FormatDuration formats a job duration as "XXXms" under a second,
// "X.XXs" under a minute and "XmXX.XXs" otherwise.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	d = d.Round(10 * time.Millisecond)
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := d.Truncate(time.Minute)
	return fmt.Sprintf("%dm%05.2fs", int(mins.Minutes()), (d - mins).Seconds())
}
