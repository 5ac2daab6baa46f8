// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package osfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileIfAbsent(t *testing.T) {
	ctx := context.Background()
	fsys := New(t.Name())
	dir := t.TempDir()
	fname := filepath.Join(dir, "a/b/WORKSPACE.bazel")

	written, err := fsys.WriteFileIfAbsent(ctx, fname, []byte("first\n"), 0644)
	if err != nil || !written {
		t.Fatalf("WriteFileIfAbsent(new)=%t, %v; want true, nil", written, err)
	}
	written, err = fsys.WriteFileIfAbsent(ctx, fname, []byte("second\n"), 0644)
	if err != nil || written {
		t.Fatalf("WriteFileIfAbsent(existing)=%t, %v; want false, nil", written, err)
	}
	buf, err := fsys.ReadFile(ctx, fname)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), "first\n"; got != want {
		t.Errorf("content=%q; want %q", got, want)
	}
	if ops, errs := fsys.Ops(); ops != 3 || errs != 0 {
		t.Errorf("Ops=%d, %d; want 3, 0", ops, errs)
	}
}

func TestWriteFile(t *testing.T) {
	ctx := context.Background()
	fsys := New(t.Name())
	fname := filepath.Join(t.TempDir(), "sub", "MODULE.bazel")
	for _, content := range []string{"old\n", "new\n"} {
		err := fsys.WriteFile(ctx, fname, []byte(content), 0644)
		if err != nil {
			t.Fatalf("WriteFile(%q)=%v; want nil error", content, err)
		}
		buf, err := os.ReadFile(fname)
		if err != nil {
			t.Fatal(err)
		}
		if got := string(buf); got != content {
			t.Errorf("content=%q; want %q", got, content)
		}
	}
}

func TestReadFile_notExist(t *testing.T) {
	ctx := context.Background()
	fsys := New(t.Name())
	_, err := fsys.ReadFile(ctx, filepath.Join(t.TempDir(), "missing"))
	if !os.IsNotExist(err) {
		t.Errorf("ReadFile(missing)=%v; want not exist error", err)
	}
	if _, errs := fsys.Ops(); errs != 1 {
		t.Errorf("errs=%d; want 1", errs)
	}
}
