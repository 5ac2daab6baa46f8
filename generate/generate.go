// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package generate generates bazel module files for a boost module
// directory.
package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bazelboost/bzlboostgen/execute"
	"github.com/bazelboost/bzlboostgen/execute/localexec"
	"github.com/bazelboost/bzlboostgen/o11y/clog"
	"github.com/bazelboost/bzlboostgen/osfs"
	"github.com/bazelboost/bzlboostgen/overrides"
	"github.com/bazelboost/bzlboostgen/runtimex"
	"github.com/bazelboost/bzlboostgen/scandeps"
	"github.com/bazelboost/bzlboostgen/toolsupport/buildifierutil"
	"github.com/bazelboost/bzlboostgen/toolsupport/buildozerutil"
	"github.com/bazelboost/bzlboostgen/ui"
)

// DefaultVersion is the default module version.
const DefaultVersion = "1.83.0"

// DefaultNamespace is the default include namespace.
const DefaultNamespace = "boost"

// Options is options of a generation run.
type Options struct {
	// Dir is the module directory.
	Dir string

	// Name is the module name without namespace, e.g. "core".
	// If empty, it is detected from Dir.
	Name string

	// Version is the module version. DefaultVersion if empty.
	Version string

	// CompatibilityLevel is derived from Version if 0.
	CompatibilityLevel int

	// Namespace is the include namespace, also used as module name
	// prefix. DefaultNamespace if empty.
	Namespace string

	// Overrides is the override table. overrides.Default() if nil.
	Overrides *overrides.Table

	// Buildifier and Buildozer may be nil to disable them.
	Buildifier *buildifierutil.Buildifier
	Buildozer  *buildozerutil.Buildozer

	// Jobs is the max number of concurrent jobs.
	// runtimex.NumCPU() if 0.
	Jobs int

	// Executor runs buildifier and buildozer.
	// localexec.LocalExec if nil.
	Executor execute.Executor

	// UI reports progress. ui.Default if nil.
	UI ui.UI
}

// Generator generates bazel module files.
type Generator struct {
	opts     Options
	scandeps *scandeps.ScanDeps
	fs       *osfs.OSFS

	mu    sync.Mutex
	state State
}

// New creates a generator for opts.
func New(opts Options) (*Generator, error) {
	if opts.Dir == "" {
		return nil, errors.New("no module directory")
	}
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, err
	}
	opts.Dir = dir
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	if opts.Overrides == nil {
		opts.Overrides = overrides.Default()
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtimex.NumCPU()
	}
	if opts.Executor == nil {
		opts.Executor = localexec.LocalExec{}
	}
	if opts.UI == nil {
		opts.UI = ui.Default
	}
	return &Generator{
		opts:     opts,
		scandeps: scandeps.New(opts.Namespace, opts.Overrides),
		fs:       osfs.New("generate"),
	}, nil
}

// State returns current state.
func (g *Generator) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Generator) setState(s State) {
	g.mu.Lock()
	old := g.state
	g.state = s
	g.mu.Unlock()
	log.Infof("%s -> %s", old, s)
}

// module is a validated module identity.
type module struct {
	dir                string
	name               string // without namespace, e.g. "core"
	version            string
	compatibilityLevel int
	hasTest            bool
}

// Run validates the module directory and generates files.
// It returns *UserInputError if the directory is not a module directory,
// or *execute.ExitError if buildifier or buildozer failed.
func (g *Generator) Run(ctx context.Context) error {
	ctx = clog.NewSpan(ctx, "run", uuid.New().String())
	g.setState(Validate)
	m, err := g.validate(ctx)
	if err != nil {
		g.setState(Failed)
		return err
	}
	clog.FromContext(ctx).Infof("generate %s@%s in %s", g.moduleName(m.name), m.version, m.dir)

	g.setState(Dispatch)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Jobs)
	for _, j := range g.jobs(m) {
		j := j
		eg.Go(func() error {
			started := time.Now()
			err := j.run(clog.NewSpan(ctx, "job", j.name))
			if err != nil && !errors.Is(err, context.Canceled) {
				err = fmt.Errorf("%s: %w", j.name, err)
			}
			g.opts.UI.JobDone(j.name, time.Since(started), err)
			return err
		})
	}
	g.setState(Joining)
	err = eg.Wait()
	ops, errs := g.fs.Ops()
	log.Debugf("fs ops=%d errs=%d", ops, errs)
	if err != nil {
		g.setState(Failed)
		return err
	}
	g.setState(Done)
	return nil
}

// moduleName returns the full module name of name, e.g. "boost.core".
func (g *Generator) moduleName(name string) string {
	return g.opts.Namespace + "." + name
}
