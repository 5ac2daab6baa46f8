// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package generate

import (
	"context"
	"path/filepath"

	"github.com/bazelboost/bzlboostgen/bzlmod"
	"github.com/bazelboost/bzlboostgen/o11y/clog"
	"github.com/bazelboost/bzlboostgen/scandeps"
	"github.com/bazelboost/bzlboostgen/toolsupport/buildozerutil"
	"github.com/bazelboost/bzlboostgen/ui"
)

// testSuffix is appended to the module name for the test module.
const testSuffix = ".test"

type job struct {
	name string
	run  func(ctx context.Context) error
}

// steps runs fs in order. It stops before the next step once ctx is
// done, so that a step never starts after a sibling job failed.
func steps(ctx context.Context, fs ...func(context.Context) error) error {
	for _, f := range fs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) jobs(m module) []job {
	vars := map[string]string{
		"NAME": g.moduleName(m.name),
	}
	testVars := map[string]string{
		"NAME": g.moduleName(m.name) + testSuffix,
	}
	jobs := []job{
		{
			name: "module",
			run: func(ctx context.Context) error {
				return g.generateModule(ctx, m)
			},
		},
	}
	if m.hasTest {
		jobs = append(jobs, job{
			name: "test module",
			run: func(ctx context.Context) error {
				return g.generateTestModule(ctx, m)
			},
		})
	}
	jobs = append(jobs,
		g.templateJob(".bazelrc", filepath.Join(m.dir, bazelrcFile), bazelrcTemplate, vars),
		g.templateJob("workflow", filepath.Join(m.dir, filepath.FromSlash(workflowFile)), workflowTemplate, vars),
		g.templateJob("workspace", filepath.Join(m.dir, workspaceFile), workspaceTemplate, vars),
	)
	if m.hasTest {
		jobs = append(jobs, g.templateJob("test workspace", filepath.Join(m.dir, testDir, workspaceFile), workspaceTemplate, testVars))
	}
	return jobs
}

func (g *Generator) templateJob(name, fname, tmpl string, vars map[string]string) job {
	return job{
		name: name,
		run: func(ctx context.Context) error {
			return steps(ctx, func(ctx context.Context) error {
				return g.writeTemplateIfAbsent(ctx, fname, tmpl, vars)
			})
		},
	}
}

// generateModule generates MODULE.bazel and BUILD.bazel of the module.
// MODULE.bazel is always rewritten, and BUILD.bazel is created only if
// absent, and its deps are updated by buildozer.
func (g *Generator) generateModule(ctx context.Context, m module) error {
	name := g.moduleName(m.name)
	var deps []string
	return steps(ctx,
		func(ctx context.Context) error {
			var err error
			deps, err = g.scandeps.Scan(ctx, scandeps.Request{
				Self: m.name,
				Roots: []string{
					filepath.Join(m.dir, "include"),
					filepath.Join(m.dir, "src"),
				},
			})
			return err
		},
		func(ctx context.Context) error {
			return g.writeManifest(ctx, m.dir, g.manifest(m, name, deps, false))
		},
		func(ctx context.Context) error {
			return g.opts.Buildifier.Format(ctx, g.opts.Executor, filepath.Join(m.dir, bzlmod.FileName))
		},
		func(ctx context.Context) error {
			return g.writeTemplateIfAbsent(ctx, filepath.Join(m.dir, buildFile), buildTemplate, map[string]string{"NAME": name})
		},
		func(ctx context.Context) error {
			return g.setDeps(ctx, m.dir, name, deps)
		},
		func(ctx context.Context) error {
			return g.opts.Buildifier.Format(ctx, g.opts.Executor, filepath.Join(m.dir, buildFile))
		},
	)
}

// generateTestModule generates test/MODULE.bazel and test/BUILD.bazel.
// The test module depends on the tested module from the parent
// directory.
func (g *Generator) generateTestModule(ctx context.Context, m module) error {
	dir := filepath.Join(m.dir, testDir)
	name := g.moduleName(m.name) + testSuffix
	var deps []string
	return steps(ctx,
		func(ctx context.Context) error {
			var err error
			deps, err = g.scandeps.Scan(ctx, scandeps.Request{
				Self:  m.name + testSuffix,
				Roots: []string{dir},
			})
			return err
		},
		func(ctx context.Context) error {
			return g.writeManifest(ctx, dir, g.manifest(m, name, deps, true))
		},
		func(ctx context.Context) error {
			return g.opts.Buildifier.Format(ctx, g.opts.Executor, filepath.Join(dir, bzlmod.FileName))
		},
		func(ctx context.Context) error {
			return g.writeTemplateIfAbsent(ctx, filepath.Join(dir, buildFile), testBuildTemplate, map[string]string{"NAME": name})
		},
		func(ctx context.Context) error {
			return g.setDeps(ctx, dir, name, deps)
		},
		func(ctx context.Context) error {
			return g.opts.Buildifier.Format(ctx, g.opts.Executor, filepath.Join(dir, buildFile))
		},
	)
}

// manifest returns manifest of module name with deps.
// For a test manifest, dependency on the tested module m has no version
// and is overridden by the parent directory.
func (g *Generator) manifest(m module, name string, deps []string, test bool) bzlmod.Manifest {
	mf := bzlmod.Manifest{
		Name:               name,
		Version:            m.version,
		CompatibilityLevel: m.compatibilityLevel,
	}
	for _, dep := range deps {
		d := bzlmod.Dep{
			Name:    g.moduleName(dep),
			Version: m.version,
		}
		if test && dep == m.name {
			d.Version = ""
			mf.LocalPathOverrides = append(mf.LocalPathOverrides, bzlmod.LocalPathOverride{
				ModuleName: d.Name,
				Path:       "..",
			})
		}
		mf.Deps = append(mf.Deps, d)
	}
	return mf
}

func (g *Generator) writeManifest(ctx context.Context, dir string, mf bzlmod.Manifest) error {
	fname := filepath.Join(dir, bzlmod.FileName)
	clog.FromContext(ctx).Debugf("write %s deps=%d", fname, len(mf.Deps))
	buf, err := bzlmod.Render(fname, mf)
	if err != nil {
		return err
	}
	err = g.fs.WriteFile(ctx, fname, buf, 0644)
	if err != nil {
		return err
	}
	g.opts.UI.File(fname, ui.Wrote)
	return nil
}

func (g *Generator) setDeps(ctx context.Context, dir, name string, deps []string) error {
	if len(deps) == 0 {
		clog.FromContext(ctx).Debugf("no deps for %s", name)
		return nil
	}
	return g.opts.Buildozer.Run(ctx, g.opts.Executor, dir, buildozerutil.SetDeps(g.opts.Namespace+".", deps), "//:"+name)
}
