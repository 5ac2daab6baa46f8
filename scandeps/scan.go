// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scandeps

import (
	"bufio"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultExtensions are file extensions of C++ headers and sources.
var DefaultExtensions = []string{
	".hpp",
	".hh",
	".h",
	".hxx",
	".cpp",
	".cc",
	".cxx",
}

// maxLineSize is the longest line the scanner reads.
// Rest of a file with longer line is skipped.
const maxLineSize = 1 << 20

// Scanner collects include paths of a namespace in a directory tree.
type Scanner struct {
	// Namespace is the first path component of include paths to collect,
	// e.g. "boost".
	Namespace string

	// Extensions are extensions of files to scan.
	// DefaultExtensions is used if empty.
	Extensions []string
}

func (s *Scanner) isTarget(fname string) bool {
	exts := s.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	ext := filepath.Ext(fname)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// Scan scans files under root and returns include paths found in them.
// Files or directories that can't be read are skipped.
func (s *Scanner) Scan(ctx context.Context, root string) (map[string]bool, error) {
	started := time.Now()
	incpaths := make(map[string]bool)
	nfiles := 0
	err := filepath.WalkDir(root, func(pathname string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debugf("skip %s: %v", pathname, err)
			if d != nil && d.IsDir() && pathname != root {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !s.isTarget(pathname) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		nfiles++
		s.scanFile(pathname, incpaths)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Debugf("scan %s: files=%d includes=%d %s", root, nfiles, len(incpaths), time.Since(started))
	return incpaths, nil
}

func (s *Scanner) scanFile(fname string, incpaths map[string]bool) {
	f, err := os.Open(fname)
	if err != nil {
		log.Debugf("skip %s: %v", fname, err)
		return
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for sc.Scan() {
		incpath, ok := ParseLine(sc.Text())
		if !ok || !s.inNamespace(incpath) {
			continue
		}
		incpaths[incpath] = true
	}
	if err := sc.Err(); err != nil {
		log.Debugf("skip rest of %s: %v", fname, err)
	}
}

func (s *Scanner) inNamespace(incpath string) bool {
	return strings.HasPrefix(incpath, s.Namespace+"/")
}

// ParseLine returns include path if line is an include directive.
//
// The line is split on '#', ' ' and '\t'. It is a directive if its
// first token is "include" and it has a second token. The include path
// is the second token without surrounding quotes or brackets.
func ParseLine(line string) (string, bool) {
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == '#' || r == ' ' || r == '\t'
	})
	if len(tokens) < 2 || tokens[0] != "include" {
		return "", false
	}
	incpath := strings.Trim(tokens[1], `"<>`)
	if incpath == "" {
		return "", false
	}
	return incpath, true
}
