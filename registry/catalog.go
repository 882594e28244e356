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
	"sync"

	"dirpx.dev/assoc/apis"
)

var (
	// ErrNilReflection is returned when a nil reflection or a reflection
	// without owner is provided.
	ErrNilReflection = errors.New("assoc(registry): nil reflection or owner provided")
	// ErrConflictingReflection indicates an attempt to record a second,
	// different reflection for the same (owner, name).
	ErrConflictingReflection = errors.New("assoc(registry): conflicting reflection registration")
)

// NewCatalog constructs an empty reflection catalog.
func NewCatalog() apis.Catalog {
	return &catalog{
		byOwner: make(map[string][]apis.Reflection),
		index:   make(map[catalogKey]int),
	}
}

// catalogKey identifies a reflection by owner name and association name.
type catalogKey struct {
	owner string
	name  string
}

// catalog keeps reflections per owner in declaration order.
type catalog struct {
	mu sync.RWMutex
	// byOwner maps owner name to its reflections in declaration order.
	byOwner map[string][]apis.Reflection
	// index maps (owner, name) to the position in byOwner[owner].
	index map[catalogKey]int
	// count tracks the number of recorded reflections.
	count int
}

// Ensure catalog implements apis.Catalog.
var _ apis.Catalog = (*catalog)(nil)

// Add records r. It is idempotent for the same reflection.
func (c *catalog) Add(r apis.Reflection) error {
	key, err := keyOf(r)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[key]; ok {
		if c.byOwner[key.owner][i] == r {
			return nil
		}
		return ErrConflictingReflection
	}
	c.insert(key, r)
	return nil
}

// Replace records r, overwriting any previous reflection in place.
func (c *catalog) Replace(r apis.Reflection) error {
	key, err := keyOf(r)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[key]; ok {
		c.byOwner[key.owner][i] = r
		return nil
	}
	c.insert(key, r)
	return nil
}

// insert appends r; callers hold c.mu.
func (c *catalog) insert(key catalogKey, r apis.Reflection) {
	c.index[key] = len(c.byOwner[key.owner])
	c.byOwner[key.owner] = append(c.byOwner[key.owner], r)
	c.count++
}

// Lookup returns the reflection for (owner, name) if present.
func (c *catalog) Lookup(owner apis.Model, name string) (apis.Reflection, bool) {
	if owner == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	key := catalogKey{owner: owner.Name(), name: name}
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.byOwner[key.owner][i], true
}

// For returns owner's reflections in declaration order.
func (c *catalog) For(owner apis.Model) []apis.Reflection {
	if owner == nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	cur := c.byOwner[owner.Name()]
	out := make([]apis.Reflection, len(cur))
	copy(out, cur)
	return out
}

// Count returns the number of recorded reflections.
func (c *catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count
}

// Reset clears all recorded reflections.
func (c *catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byOwner = make(map[string][]apis.Reflection)
	c.index = make(map[catalogKey]int)
	c.count = 0
}

// keyOf validates r and derives its catalog key.
func keyOf(r apis.Reflection) (catalogKey, error) {
	if r == nil || r.Owner() == nil {
		return catalogKey{}, ErrNilReflection
	}
	return catalogKey{owner: r.Owner().Name(), name: r.Name()}, nil
}
