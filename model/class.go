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
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/assoc/apis"
	uref "dirpx.dev/assoc/utils/reflect"
)

// DefaultDangerousNames are the members every Class relies on; an
// association may never be named after one of them.
var DefaultDangerousNames = []string{
	"association",
	"attributes",
	"call",
	"class",
	"errors",
	"id",
	"new",
	"reload",
	"save",
	"valid",
}

// RuntimeFactory creates the association runtime for name on rec.
type RuntimeFactory func(rec *Record, name string) (apis.Association, error)

// ClassOption configures a Class.
type ClassOption func(*Class)

// WithDangerousNames marks additional member names as dangerous.
func WithDangerousNames(names ...string) ClassOption {
	return func(c *Class) {
		for _, n := range names {
			c.dangerous[n] = struct{}{}
		}
	}
}

// WithRuntime sets the factory used by records to create association runtimes.
func WithRuntime(f RuntimeFactory) ClassOption {
	return func(c *Class) {
		if f != nil {
			c.runtime = f
		}
	}
}

// Class is a modeling class that associations can be declared on.
type Class struct {
	name      string
	dangerous map[string]struct{}
	methods   *MethodTable
	runtime   RuntimeFactory

	mu          sync.RWMutex
	validations []apis.Rule
	callbacks   []apis.Callback
}

// Ensure Class implements the owner contracts.
var (
	_ apis.Model               = (*Class)(nil)
	_ apis.ValidationRegistrar = (*Class)(nil)
	_ apis.CallbackRegistrar   = (*Class)(nil)
)

// NewClass creates a class called name.
func NewClass(name string, opts ...ClassOption) *Class {
	c := &Class{
		name:      name,
		dangerous: make(map[string]struct{}, len(DefaultDangerousNames)),
		methods:   NewMethodTable(),
		runtime:   holderRuntime,
	}
	for _, n := range DefaultDangerousNames {
		c.dangerous[n] = struct{}{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClassFor creates a class backed by the Go struct type T. The class is
// named after T, and the snake_case names of T's exported fields and methods
// are dangerous.
func ClassFor[T any](opts ...ClassOption) (*Class, error) {
	t := reflect.TypeFor[T]()
	name, err := uref.ModelName(t)
	if err != nil {
		return nil, fmt.Errorf("assoc(model): %v: %w", t, err)
	}
	members, err := uref.MethodNames(t)
	if err != nil {
		return nil, fmt.Errorf("assoc(model): %v: %w", t, err)
	}
	return NewClass(name, append([]ClassOption{WithDangerousNames(members...)}, opts...)...), nil
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// DangerousAttributeMethod reports whether name is a member the class relies on.
func (c *Class) DangerousAttributeMethod(name string) bool {
	_, ok := c.dangerous[name]
	return ok
}

// GeneratedAssociationMethods returns the class's accessor table.
func (c *Class) GeneratedAssociationMethods() apis.MethodTable { return c.methods }

// AddValidation registers rule. A rule with the same name is replaced.
func (c *Class) AddValidation(rule apis.Rule) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.validations {
		if c.validations[i].Name == rule.Name {
			c.validations[i] = rule
			return
		}
	}
	c.validations = append(c.validations, rule)
}

// Validations returns the registered rules in registration order.
func (c *Class) Validations() []apis.Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]apis.Rule(nil), c.validations...)
}

// AddCallback registers cb. A callback with the same name is replaced.
func (c *Class) AddCallback(cb apis.Callback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.callbacks {
		if c.callbacks[i].Name == cb.Name {
			c.callbacks[i] = cb
			return
		}
	}
	c.callbacks = append(c.callbacks, cb)
}

// RemoveCallback deletes the callback called name, if any.
func (c *Class) RemoveCallback(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.callbacks {
		if c.callbacks[i].Name == name {
			c.callbacks = append(c.callbacks[:i], c.callbacks[i+1:]...)
			return
		}
	}
}

// Callbacks returns the callbacks attached to event in registration order.
func (c *Class) Callbacks(event apis.CallbackEvent) []apis.Callback {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []apis.Callback
	for _, cb := range c.callbacks {
		if cb.Event == event {
			out = append(out, cb)
		}
	}
	return out
}

// New returns a fresh instance of the class.
func (c *Class) New() *Record {
	return &Record{class: c, assocs: make(map[string]apis.Association)}
}
