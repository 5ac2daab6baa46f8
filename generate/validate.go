// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bazelboost/bzlboostgen/bzlmod"
)

func (g *Generator) userInputError(code int, format string, args ...any) *UserInputError {
	return &UserInputError{
		Dir:       g.opts.Dir,
		Namespace: g.opts.Namespace,
		Msg:       fmt.Sprintf(format, args...),
		ExitCode:  code,
	}
}

// validate checks the module directory and decides module identity.
// It never writes files.
func (g *Generator) validate(ctx context.Context) (module, error) {
	if err := ctx.Err(); err != nil {
		return module{}, err
	}
	m := module{dir: g.opts.Dir}
	incdir := filepath.Join(g.opts.Dir, "include", g.opts.Namespace)
	fi, err := os.Stat(incdir)
	if err != nil || !fi.IsDir() {
		return module{}, g.userInputError(ExitUserInput, "Cannot find 'include/%s' dir", g.opts.Namespace)
	}

	v, err := bzlmod.ParseVersion(g.opts.Version)
	if err != nil {
		return module{}, g.userInputError(ExitUserInput, "%v", err)
	}
	m.version = v.Original()
	m.compatibilityLevel = g.opts.CompatibilityLevel
	if m.compatibilityLevel == 0 {
		m.compatibilityLevel = bzlmod.CompatibilityLevel(v)
	}

	m.name, err = g.identity(incdir)
	if err != nil {
		return module{}, err
	}

	fi, err = os.Stat(filepath.Join(g.opts.Dir, testDir))
	m.hasTest = err == nil && fi.IsDir()
	return m, nil
}

// identity returns the module name of the module directory.
// An explicit name is used as is. Otherwise the directory basename is
// used if it is one of the modules found in incdir, or the only module
// found in incdir.
func (g *Generator) identity(incdir string) (string, error) {
	if g.opts.Name != "" {
		return g.opts.Name, nil
	}
	base := filepath.Base(g.opts.Dir)
	found, err := g.topLevelModules(incdir)
	if err != nil {
		return "", g.userInputError(ExitUserInput, "Cannot read 'include/%s' dir: %v", g.opts.Namespace, err)
	}
	switch {
	case found[base]:
		return base, nil
	case len(found) == 0:
		return "", g.userInputError(ExitUserInput, "Cannot find any module headers in 'include/%s' dir", g.opts.Namespace)
	case len(found) == 1:
		for name := range found {
			log.Warnf("directory name %q is not a module name. use %q", base, name)
			return name, nil
		}
	}
	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)
	return "", g.userInputError(ExitAmbiguous, "Ambiguous module name: directory name %q is none of %s. Use -name", base, strings.Join(names, ", "))
}

// topLevelModules returns modules resolved from the headers in incdir
// and the entries of its subdirectories. Subdirectories are looked into
// so that modules below a shared directory, e.g. boost/numeric/ublas,
// are found.
func (g *Generator) topLevelModules(incdir string) (map[string]bool, error) {
	ents, err := os.ReadDir(incdir)
	if err != nil {
		return nil, err
	}
	resolver := g.scandeps.Resolver()
	found := make(map[string]bool)
	add := func(incpath string) {
		name, ok := resolver.Resolve(incpath)
		if !ok {
			return
		}
		found[name] = true
	}
	for _, ent := range ents {
		incpath := g.opts.Namespace + "/" + ent.Name()
		if !ent.IsDir() {
			if isHeader(ent.Name()) {
				add(incpath)
			}
			continue
		}
		subents, err := os.ReadDir(filepath.Join(incdir, ent.Name()))
		if err != nil {
			log.Debugf("skip %s: %v", incpath, err)
			continue
		}
		for _, subent := range subents {
			switch {
			case subent.IsDir():
				add(incpath + "/" + subent.Name() + "/")
			case isHeader(subent.Name()):
				add(incpath + "/" + subent.Name())
			}
		}
	}
	return found, nil
}

func isHeader(fname string) bool {
	switch filepath.Ext(fname) {
	case ".hpp", ".hh", ".hxx", ".h":
		return true
	}
	return false
}
