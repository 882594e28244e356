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
	"errors"
	"fmt"
	"sync"

	"dirpx.dev/assoc/apis"
)

var (
	// ErrUnknownAssociation is returned when no accessor exists for a name.
	ErrUnknownAssociation = errors.New("assoc(model): unknown association")
	// ErrNoMethod is returned by Call for a name missing from the method table.
	ErrNoMethod = errors.New("assoc(model): undefined method")
)

// Record is an instance of a Class. Each record owns its association
// runtimes; they are not shared across records.
type Record struct {
	class *Class

	mu     sync.Mutex
	assocs map[string]apis.Association
}

// Ensure Record implements apis.Instance.
var _ apis.Instance = (*Record)(nil)

// Class returns the record's class.
func (r *Record) Class() *Class { return r.class }

// Association returns the runtime for name, creating it on first use.
// name must have a reader installed on the class.
func (r *Record) Association(name string) (apis.Association, error) {
	if _, ok := r.class.methods.Lookup(name); !ok {
		return nil, fmt.Errorf("%w %q on %s", ErrUnknownAssociation, name, r.class.name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.assocs[name]; ok {
		return a, nil
	}
	a, err := r.class.runtime(r, name)
	if err != nil {
		return nil, fmt.Errorf("assoc(model): create runtime for %s.%s: %w", r.class.name, name, err)
	}
	r.assocs[name] = a
	return a, nil
}

// Call invokes the generated method name with args.
func (r *Record) Call(name string, args ...any) (any, error) {
	m, ok := r.class.methods.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q on %s", ErrNoMethod, name, r.class.name)
	}
	return m(r, args...)
}

// Get calls the reader of association name.
func (r *Record) Get(name string) (any, error) {
	return r.Call(name)
}

// Set calls the writer of association name.
func (r *Record) Set(name string, value any) error {
	_, err := r.Call(name+"=", value)
	return err
}

// RunCallbacks runs the class callbacks for event in order and stops at
// the first error.
func (r *Record) RunCallbacks(event apis.CallbackEvent) error {
	for _, cb := range r.class.Callbacks(event) {
		if cb.Fn == nil {
			continue
		}
		if err := cb.Fn(r); err != nil {
			return fmt.Errorf("assoc(model): %s callback %s: %w", event, cb.Name, err)
		}
	}
	return nil
}

// holderRuntime is the default RuntimeFactory.
func holderRuntime(*Record, string) (apis.Association, error) {
	return &holder{}, nil
}

// holder keeps the last written value.
type holder struct {
	mu    sync.RWMutex
	value any
}

func (h *holder) Reader() any {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value
}

func (h *holder) Writer(value any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.value = value
	return nil
}
