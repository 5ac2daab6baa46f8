// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package osfs provides OS Filesystem access.
package osfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/bazelboost/bzlboostgen/o11y/clog"
)

// slowOp is the duration to log a filesystem operation as slow.
const slowOp = 10 * time.Second

// OSFS provides OS Filesystem access.
// It counts operations and errors.
type OSFS struct {
	name string
	ops  atomic.Int64
	errs atomic.Int64
}

// New creates new OSFS.
func New(name string) *OSFS {
	return &OSFS{name: name}
}

func (fsys *OSFS) done(ctx context.Context, op, fname string, started time.Time, err error) {
	fsys.ops.Add(1)
	if err != nil {
		fsys.errs.Add(1)
	}
	if dur := time.Since(started); dur > slowOp {
		clog.FromContext(ctx).Warnf("slow op %s %s %s: %s %v", fsys.name, op, fname, dur, err)
	}
}

// Ops returns the number of operations and errors.
func (fsys *OSFS) Ops() (ops, errs int64) {
	return fsys.ops.Load(), fsys.errs.Load()
}

// ReadFile reads the named file.
func (fsys *OSFS) ReadFile(ctx context.Context, fname string) ([]byte, error) {
	started := time.Now()
	buf, err := os.ReadFile(fname)
	fsys.done(ctx, "read", fname, started, err)
	return buf, err
}

// WriteFile writes buf to the named file, creating its parent
// directories. An existing file is truncated.
func (fsys *OSFS) WriteFile(ctx context.Context, fname string, buf []byte, perm fs.FileMode) error {
	started := time.Now()
	err := os.MkdirAll(filepath.Dir(fname), 0755)
	if err == nil {
		err = os.WriteFile(fname, buf, perm)
	}
	fsys.done(ctx, "write", fname, started, err)
	return err
}

// WriteFileIfAbsent writes buf to the named file unless it exists,
// creating its parent directories. It reports whether the file was
// written. An existing file is never opened for writing.
func (fsys *OSFS) WriteFileIfAbsent(ctx context.Context, fname string, buf []byte, perm fs.FileMode) (bool, error) {
	started := time.Now()
	written, err := writeFileIfAbsent(fname, buf, perm)
	fsys.done(ctx, "create", fname, started, err)
	return written, err
}

func writeFileIfAbsent(fname string, buf []byte, perm fs.FileMode) (bool, error) {
	err := os.MkdirAll(filepath.Dir(fname), 0755)
	if err != nil {
		return false, err
	}
	f, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	_, err = f.Write(buf)
	cerr := f.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		return false, fmt.Errorf("failed to write %s: %w", fname, err)
	}
	return true, nil
}
