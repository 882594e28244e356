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

// Package accessor installs the generated read/write entry points of an
// association into an owner's method table.
//
// Accessors are closures over the association name; nothing is synthesized
// at runtime. Each one resolves the association runtime of the receiving
// instance and delegates to it.
package accessor

import (
	"errors"
	"fmt"

	"dirpx.dev/assoc/apis"
)

var (
	// ErrArity is returned by a writer called with other than one argument,
	// or by a reader called with any.
	ErrArity = errors.New("assoc(accessor): wrong number of arguments")
	// ErrNilReceiver is returned when an accessor is called without an instance.
	ErrNilReceiver = errors.New("assoc(accessor): nil receiver")
)

// ReaderName returns the method name of the reader for association name.
func ReaderName(name string) string { return name }

// WriterName returns the method name of the writer for association name.
func WriterName(name string) string { return name + "=" }

// Install defines the reader and writer for name on table, replacing any
// existing definitions.
func Install(table apis.MethodTable, name string) {
	table.Define(ReaderName(name), reader(name))
	table.Define(WriterName(name), writer(name))
}

// Defined reports whether either accessor of name is present in table.
func Defined(table apis.MethodTable, name string) bool {
	if _, ok := table.Lookup(ReaderName(name)); ok {
		return true
	}
	_, ok := table.Lookup(WriterName(name))
	return ok
}

func reader(name string) apis.Method {
	return func(recv apis.Instance, args ...any) (any, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w for %s (given %d, expected 0)", ErrArity, ReaderName(name), len(args))
		}
		a, err := association(recv, name)
		if err != nil {
			return nil, err
		}
		return a.Reader(), nil
	}
}

func writer(name string) apis.Method {
	return func(recv apis.Instance, args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w for %s (given %d, expected 1)", ErrArity, WriterName(name), len(args))
		}
		a, err := association(recv, name)
		if err != nil {
			return nil, err
		}
		if err := a.Writer(args[0]); err != nil {
			return nil, err
		}
		return args[0], nil
	}
}

func association(recv apis.Instance, name string) (apis.Association, error) {
	if recv == nil {
		return nil, ErrNilReceiver
	}
	return recv.Association(name)
}
