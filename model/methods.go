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

package model

import (
	"sort"
	"sync"

	"dirpx.dev/assoc/apis"
)

// MethodTable is a concurrency-safe apis.MethodTable.
type MethodTable struct {
	mu sync.RWMutex
	m  map[string]apis.Method
}

// Ensure MethodTable implements apis.MethodTable.
var _ apis.MethodTable = (*MethodTable)(nil)

// NewMethodTable returns an empty table.
func NewMethodTable() *MethodTable {
	return &MethodTable{m: make(map[string]apis.Method)}
}

// Define installs m under name, replacing any previous method.
func (t *MethodTable) Define(name string, m apis.Method) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[name] = m
}

// Lookup returns the method installed under name.
func (t *MethodTable) Lookup(name string) (apis.Method, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.m[name]
	return m, ok
}

// Remove deletes name.
func (t *MethodTable) Remove(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.m, name)
}

// Names returns the installed names, sorted.
func (t *MethodTable) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.m))
	for name := range t.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
