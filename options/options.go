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

// Package options validates association option maps against the keys
// accepted by the built-in set, the association kind and every registered
// extension.
package options

import (
	"sort"

	"dirpx.dev/assoc/apis"
)

// Builtin are the option keys every association accepts.
var Builtin = []string{
	apis.OptionClassName,
	apis.OptionAnonymousClass,
	apis.OptionValidate,
}

// Accepted returns the sorted union of Builtin, kind's ValidOptions and the
// keys of exts. Callers pass the registry snapshot they will also run hooks
// from, so the accepted set and the hook list always agree.
func Accepted(kind apis.Kind, exts []apis.Extension) []string {
	seen := make(map[string]struct{}, len(Builtin))
	for _, k := range Builtin {
		seen[k] = struct{}{}
	}
	if kind != nil {
		for _, k := range kind.ValidOptions() {
			seen[k] = struct{}{}
		}
	}
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

// Validate fails with an *apis.OptionError for the first key of opts (in
// sorted order) that is not in accepted. It is a pure membership check.
func Validate(opts apis.Options, accepted []string) error {
	set := make(map[string]struct{}, len(accepted))
	for _, k := range accepted {
		set[k] = struct{}{}
	}
	for _, k := range opts.Keys() {
		if _, ok := set[k]; !ok {
			return &apis.OptionError{Key: k, Accepted: append([]string(nil), accepted...)}
		}
	}
	return nil
}

// ValidateDependent checks the value of the dependent option, when present,
// against allowed. Strings and fmt.Stringer values are compared by their
// string form; anything else is rejected.
func ValidateDependent(opts apis.Options, allowed []string) error {
	v, ok := opts[apis.OptionDependent]
	if !ok || v == nil {
		return nil
	}
	s, isString := asString(v)
	if isString {
		for _, a := range allowed {
			if a == s {
				return nil
			}
		}
	}
	return &apis.OptionError{Key: apis.OptionDependent, Value: v, Accepted: append([]string(nil), allowed...)}
}

// asString accepts strings and fmt.Stringer values.
func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case interface{ String() string }:
		return s.String(), true
	default:
		return "", false
	}
}
