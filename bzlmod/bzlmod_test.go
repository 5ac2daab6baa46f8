// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package bzlmod

import (
	"bytes"
	"testing"

	"github.com/bazelbuild/buildtools/build"
	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    Manifest
		want []string
	}{
		{
			name: "nodeps",
			m: Manifest{
				Name:               "boost.config",
				Version:            "1.83.0",
				CompatibilityLevel: 108300,
			},
			want: []string{
				`module(name = "boost.config", version = "1.83.0", compatibility_level = 108300)`,
			},
		},
		{
			name: "deps",
			m: Manifest{
				Name:               "boost.core",
				Version:            "1.83.0",
				CompatibilityLevel: 108300,
				Deps: []Dep{
					{Name: "boost.static_assert", Version: "1.83.0"},
					{Name: "boost.assert", Version: "1.83.0"},
					{Name: "boost.config", Version: "1.83.0"},
				},
			},
			want: []string{
				`module(name = "boost.core", version = "1.83.0", compatibility_level = 108300)`,
				`bazel_dep(name = "boost.assert", version = "1.83.0")`,
				`bazel_dep(name = "boost.config", version = "1.83.0")`,
				`bazel_dep(name = "boost.static_assert", version = "1.83.0")`,
			},
		},
		{
			name: "test",
			m: Manifest{
				Name:               "boost.core.test",
				Version:            "1.83.0",
				CompatibilityLevel: 108300,
				Deps: []Dep{
					{Name: "boost.core"},
					{Name: "boost.config", Version: "1.83.0"},
				},
				LocalPathOverrides: []LocalPathOverride{
					{ModuleName: "boost.core", Path: ".."},
				},
			},
			want: []string{
				`module(name = "boost.core.test", version = "1.83.0", compatibility_level = 108300)`,
				`bazel_dep(name = "boost.config", version = "1.83.0")`,
				`bazel_dep(name = "boost.core")`,
				`local_path_override(module_name = "boost.core", path = "..")`,
			},
		},
		{
			name: "noversion",
			m: Manifest{
				Name:               "boost.core",
				CompatibilityLevel: 0,
			},
			want: []string{
				`module(name = "boost.core", compatibility_level = 0)`,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := Format(tc.m)
			directives, err := Directives(FileName, got)
			if err != nil {
				t.Fatalf("Directives(Format(%v))=%v; want nil error\n%s", tc.m, err, got)
			}
			if diff := cmp.Diff(tc.want, directives); diff != "" {
				t.Errorf("Format(%v) diff -want +got:\n%s", tc.m, diff)
			}
			if again := Format(tc.m); !bytes.Equal(got, again) {
				t.Errorf("Format(%v) is not deterministic:\n%s\n%s", tc.m, got, again)
			}

			// Output is already formatted as buildifier does.
			f, err := build.ParseModule(FileName, got)
			if err != nil {
				t.Fatalf("build.ParseModule(Format(%v))=%v", tc.m, err)
			}
			if diff := cmp.Diff(string(got), string(build.Format(f))); diff != "" {
				t.Errorf("Format(%v) is not buildifier formatted: diff -want +got:\n%s", tc.m, diff)
			}
		})
	}
}

func TestRender(t *testing.T) {
	m := Manifest{
		Name:               "boost.core",
		Version:            "1.83.0",
		CompatibilityLevel: 108300,
		Deps:               []Dep{{Name: "boost.config", Version: "1.83.0"}},
	}
	got, err := Render(FileName, m)
	if err != nil {
		t.Fatalf("Render(%v)=%v; want nil error", m, err)
	}
	if diff := cmp.Diff(string(Format(m)), string(got)); diff != "" {
		t.Errorf("Render(%v) diff -want +got:\n%s", m, diff)
	}
}

func TestValidate_errors(t *testing.T) {
	for name, src := range map[string]string{
		"empty":         "",
		"syntax":        "module(\n",
		"nomodule":      `bazel_dep(name = "boost.core", version = "1.83.0")`,
		"modulenotlast": "bazel_dep(name = \"boost.core\")\nmodule(name = \"boost.x\")\n",
		"twomodules":    "module(name = \"a\")\nmodule(name = \"b\")\n",
		"assign":        "module(name = \"a\")\nx = 1\n",
		"unknown":       "module(name = \"a\")\ngit_override(module_name = \"b\")\n",
	} {
		err := Validate(FileName, []byte(src))
		if err == nil {
			t.Errorf("Validate(%s)=nil; want error", name)
		}
		_, err = Directives(FileName, []byte(src))
		if err == nil {
			t.Errorf("Directives(%s)=nil error; want error", name)
		}
	}
}

func TestDirectives(t *testing.T) {
	for _, tc := range []struct {
		name    string
		src     string
		want    []string
		wantErr bool
	}{
		{
			name: "multiline",
			src: `module(
    name = "boost.core",
    compatibility_level = 108300,
)

bazel_dep(
    name = "boost.config",
    version = "1.83.0",
)
`,
			want: []string{
				`module(name = "boost.core", compatibility_level = 108300)`,
				`bazel_dep(name = "boost.config", version = "1.83.0")`,
			},
		},
		{
			name:    "positional",
			src:     `module("boost.core")`,
			wantErr: true,
		},
		{
			name:    "nonliteral",
			src:     `module(name = "boost." + "core")`,
			wantErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Directives(FileName, []byte(tc.src))
			if (err != nil) != tc.wantErr {
				t.Fatalf("Directives=%q, %v; want err=%t", got, err, tc.wantErr)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Directives diff -want +got:\n%s", diff)
			}
		})
	}
}

func TestCompatibilityLevel(t *testing.T) {
	for _, tc := range []struct {
		version string
		want    int
	}{
		{version: "1.83.0", want: 108300},
		{version: "1.84.1", want: 108401},
		{version: "2.0.0", want: 200000},
	} {
		v, err := ParseVersion(tc.version)
		if err != nil {
			t.Fatalf("ParseVersion(%q)=%v; want nil error", tc.version, err)
		}
		if got := CompatibilityLevel(v); got != tc.want {
			t.Errorf("CompatibilityLevel(%q)=%d; want %d", tc.version, got, tc.want)
		}
	}
}

func TestParseVersion_errors(t *testing.T) {
	for _, raw := range []string{"", "1.83", "v1.83.0", "latest"} {
		_, err := ParseVersion(raw)
		if err == nil {
			t.Errorf("ParseVersion(%q)=nil; want error", raw)
		}
	}
}
