/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package strategy_test

import (
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/assoc/apis"
	"dirpx.dev/assoc/strategy"
)

type namedClass struct{ name string }

func (c namedClass) Name() string { return c.name }

// Ensure the local type actually satisfies apis.Namer (compile-time).
var _ apis.Namer = namedClass{}

func TestClassNameStrategy_TryResolve(t *testing.T) {
	s := strategy.NewClassNameStrategy()

	got, ok := s.TryResolve("tags", apis.EmbedsMany, apis.Options{"class_name": "Label"})
	if !ok || got != "Label" {
		t.Fatalf("TryResolve: got (%q,%v), want (Label,true)", got, ok)
	}

	// Missing, empty or non-string option -> miss.
	for _, opts := range []apis.Options{nil, {"class_name": ""}, {"class_name": 42}} {
		got, ok = s.TryResolve("tags", apis.EmbedsMany, opts)
		if ok || got != "" {
			t.Fatalf("TryResolve(%v): got (%q,%v), want ('',false)", opts, got, ok)
		}
	}
}

func TestAnonymousClassStrategy_TryResolve(t *testing.T) {
	s := strategy.NewAnonymousClassStrategy()

	got, ok := s.TryResolve("tags", apis.EmbedsMany, apis.Options{"anonymous_class": namedClass{name: "InlineTag"}})
	if !ok || got != "InlineTag" {
		t.Fatalf("TryResolve: got (%q,%v), want (InlineTag,true)", got, ok)
	}

	// Unnamed or non-namer anonymous class -> miss.
	for _, opts := range []apis.Options{
		{"anonymous_class": namedClass{}},
		{"anonymous_class": struct{}{}},
		{},
	} {
		got, ok = s.TryResolve("tags", apis.EmbedsMany, opts)
		if ok || got != "" {
			t.Fatalf("TryResolve(%v): got (%q,%v), want ('',false)", opts, got, ok)
		}
	}
}

func TestInflectionStrategy_TryResolve(t *testing.T) {
	s := strategy.NewInflectionStrategy()

	cases := []struct {
		name  string
		macro apis.Macro
		want  string
	}{
		{"tags", apis.EmbedsMany, "Tag"},
		{"line_items", apis.EmbedsMany, "LineItem"},
		{"people", apis.EmbedsMany, "Person"},
		{"address", apis.EmbedsOne, "Address"},
		{"shipping_address", apis.EmbedsOne, "ShippingAddress"},
		{"post", apis.EmbeddedIn, "Post"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.TryResolve(tc.name, tc.macro, nil)
			if !ok || got != tc.want {
				t.Fatalf("TryResolve(%q, %v) = (%q,%v), want (%q,true)", tc.name, tc.macro, got, ok, tc.want)
			}
		})
	}

	if got, ok := s.TryResolve("", apis.EmbedsOne, nil); ok || got != "" {
		t.Fatalf("TryResolve(empty): got (%q,%v), want ('',false)", got, ok)
	}
}

// TestInflectionStrategy_ConcurrentMemoization checks that the shared cache
// stays consistent under concurrent derivation.
func TestInflectionStrategy_ConcurrentMemoization(t *testing.T) {
	s := strategy.NewInflectionStrategy()
	names := []string{"tags", "comments", "line_items", "people"}
	want := []string{"Tag", "Comment", "LineItem", "Person"}

	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				j := i % len(names)
				if got, _ := s.TryResolve(names[j], apis.EmbedsMany, nil); got != want[j] {
					t.Errorf("TryResolve(%q) = %q, want %q", names[j], got, want[j])
					return
				}
			}
		}()
	}
	wg.Wait()
}
