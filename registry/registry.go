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

package registry

import (
	"errors"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	"dirpx.dev/assoc/apis"
)

var (
	// ErrNilExtension is returned when a nil extension is provided.
	ErrNilExtension = errors.New("assoc(registry): nil extension provided")
)

// New constructs an empty extension registry.
func New() apis.ExtensionRegistry {
	r := &registry{}
	r.snap.Store(&[]apis.Extension{})
	return r
}

// registry is an append-only extension list published as copy-on-write
// snapshots, so readers never lock and never see a partial append.
type registry struct {
	// mu serializes writers.
	mu sync.Mutex
	// snap is the current, never-mutated extension slice.
	snap atomic.Pointer[[]apis.Extension]
}

// Ensure registry implements apis.ExtensionRegistry.
var _ apis.ExtensionRegistry = (*registry)(nil)

// Register appends ext to the registry.
// Registering the same pointer twice is a no-op.
func (r *registry) Register(ext apis.Extension) error {
	if ext == nil {
		return ErrNilExtension
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := *r.snap.Load()
	for _, e := range old {
		if samePointer(e, ext) {
			return nil // idempotent re-registration
		}
	}

	next := make([]apis.Extension, len(old), len(old)+1)
	copy(next, old)
	next = append(next, ext)
	r.snap.Store(&next)
	return nil
}

// All returns the extensions in registration order.
// The returned slice is a copy and may be modified by the caller.
func (r *registry) All() []apis.Extension {
	cur := *r.snap.Load()
	out := make([]apis.Extension, len(cur))
	copy(out, cur)
	return out
}

// AcceptedKeys returns the sorted union of every extension's option keys.
func (r *registry) AcceptedKeys() []string {
	return AcceptedKeysOf(*r.snap.Load()...)
}

// Count returns the number of registered extensions.
func (r *registry) Count() int {
	return len(*r.snap.Load())
}

// AcceptedKeysOf returns the sorted, de-duplicated option keys contributed
// by exts.
func AcceptedKeysOf(exts ...apis.Extension) []string {
	seen := make(map[string]struct{})
	for _, e := range exts {
		for _, k := range e.ValidOptions() {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// samePointer reports whether a and b are the same pointer value.
// Non-pointer extensions are never considered equal; comparing arbitrary
// dynamic values could panic.
func samePointer(a, b apis.Extension) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || ta.Kind() != reflect.Pointer {
		return false
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
