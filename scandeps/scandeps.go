// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scandeps

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/bazelboost/bzlboostgen/overrides"
)

// ScanDeps is a simple boost module dependency scanner.
// It is safe for concurrent use.
type ScanDeps struct {
	scanner  *Scanner
	resolver *Resolver
}

// New creates new ScanDeps for include paths in namespace.
func New(namespace string, table *overrides.Table) *ScanDeps {
	return &ScanDeps{
		scanner:  &Scanner{Namespace: namespace},
		resolver: NewResolver(table),
	}
}

// Resolver returns the resolver used by s.
func (s *ScanDeps) Resolver() *Resolver {
	return s.resolver
}

// Request is a request to scan deps of a module.
type Request struct {
	// Self is the module name being generated.
	// It is never reported as its own dependency.
	Self string

	// Roots are directories to scan.
	// Roots that don't exist are ignored.
	Roots []string
}

// Scan scans req.Roots and returns sorted module names included from them.
func (s *ScanDeps) Scan(ctx context.Context, req Request) ([]string, error) {
	modules := make(map[string]bool)
	for _, root := range req.Roots {
		_, err := os.Stat(root)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Warnf("skip %s: %v", root, err)
			}
			continue
		}
		incpaths, err := s.scanner.Scan(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", root, err)
		}
		for incpath := range incpaths {
			m, ok := s.resolver.Resolve(incpath)
			if !ok {
				log.Debugf("ignore malformed include %q", incpath)
				continue
			}
			modules[m] = true
		}
	}
	delete(modules, req.Self)
	deps := make([]string, 0, len(modules))
	for m := range modules {
		deps = append(deps, m)
	}
	sort.Strings(deps)
	log.Debugf("deps of %s: %q", req.Self, deps)
	return deps, nil
}
