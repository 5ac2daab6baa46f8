// Copyright 2024 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scandeps

import (
	"testing"

	"github.com/bazelboost/bzlboostgen/overrides"
)

func TestResolve(t *testing.T) {
	table, err := overrides.New(
		overrides.Rule{Pattern: "ns/*", Module: "wildcard_all"},
		overrides.Rule{Pattern: "ns/noncopyable.hpp", Module: "core"},
		overrides.Rule{Pattern: "ns/concept/*", Module: "concept_check"},
	)
	if err != nil {
		t.Fatal(err)
	}
	r := NewResolver(table)
	noOverrides := NewResolver(nil)
	for _, tc := range []struct {
		r       *Resolver
		incpath string
		want    string
		wantOK  bool
	}{
		{
			r:       r,
			incpath: "ns/noncopyable.hpp",
			want:    "core",
			wantOK:  true,
		},
		{
			r:       r,
			incpath: "ns/concept/anything.hpp",
			want:    "concept_check",
			wantOK:  true,
		},
		{
			r:       r,
			incpath: "ns/asio/ip/tcp.hpp",
			want:    "wildcard_all",
			wantOK:  true,
		},
		{
			r:       noOverrides,
			incpath: "ns/asio/ip/tcp.hpp",
			want:    "asio",
			wantOK:  true,
		},
		{
			r:       noOverrides,
			incpath: "ns/smart_ptr.hpp",
			want:    "smart_ptr",
			wantOK:  true,
		},
		{
			r:       noOverrides,
			incpath: "ns/detail.h",
			want:    "detail",
			wantOK:  true,
		},
		{
			r:       noOverrides,
			incpath: "ns/core/ref.hpp",
			want:    "core",
			wantOK:  true,
		},
		{
			r:       noOverrides,
			incpath: "ns",
		},
		{
			r:       noOverrides,
			incpath: "ns/",
		},
		{
			r:       noOverrides,
			incpath: "ns/.hpp",
		},
	} {
		got, ok := tc.r.Resolve(tc.incpath)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("Resolve(%q)=%q, %t; want %q, %t", tc.incpath, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestResolve_pure(t *testing.T) {
	r := NewResolver(overrides.Default())
	for _, incpath := range []string{
		"boost/noncopyable.hpp",
		"boost/concept/assert.hpp",
		"boost/asio/ip/tcp.hpp",
		"boost",
	} {
		first, firstOK := r.Resolve(incpath)
		second, secondOK := r.Resolve(incpath)
		if first != second || firstOK != secondOK {
			t.Errorf("Resolve(%q)=%q, %t then %q, %t; want same", incpath, first, firstOK, second, secondOK)
		}
	}
}
