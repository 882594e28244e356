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

package reflect

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"dirpx.dev/assoc/utils/ident"
)

// DefaultMaxUnwrap bounds container unwrapping when callers pass a
// non-positive limit.
const DefaultMaxUnwrap = 8

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// containers) is not a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no name")
	// ErrReflectNotStruct indicates that the nearest named type is not a struct,
	// so it cannot back a model class.
	ErrReflectNotStruct = errors.New("reflect: model type is not a struct")
)

// Normalize unwraps ptr/slice/array containers at most maxUnwrap times and
// returns the nearest named inner type, or an error if none is found.
//
// If maxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, maxUnwrap int) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if maxUnwrap <= 0 {
		maxUnwrap = DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			// Named, return; anonymous -> error
			if t.Name() != "" {
				return t, nil
			}
			return nil, ErrReflectTypeNotNamed
		}
	}

	// After reaching max depth, ensure we ended on a named type.
	if t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// ModelName returns the class name a Go struct type stands for: the name of
// its nearest named type without generic instantiation parameters.
func ModelName(t reflect.Type) (string, error) {
	base, err := Normalize(t, DefaultMaxUnwrap)
	if err != nil {
		return "", err
	}
	if base.Kind() != reflect.Struct {
		return "", ErrReflectNotStruct
	}
	return stripTypeParams(base.Name()), nil
}

// MethodNames returns the snake_case names of the exported methods and
// fields of t's nearest named type (methods of both T and *T), sorted and
// de-duplicated. These are the members an association accessor must not
// shadow.
func MethodNames(t reflect.Type) ([]string, error) {
	base, err := Normalize(t, DefaultMaxUnwrap)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	add := func(name string) {
		seen[ident.Snake(name)] = struct{}{}
	}

	ptr := reflect.PointerTo(base)
	for i := 0; i < ptr.NumMethod(); i++ {
		add(ptr.Method(i).Name)
	}
	if base.Kind() == reflect.Struct {
		for i := 0; i < base.NumField(); i++ {
			if f := base.Field(i); f.IsExported() {
				add(f.Name)
			}
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
