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

package apis

import "sort"

// Built-in option keys understood by every association kind.
const (
	// OptionClassName overrides the target class name derived from the
	// association name.
	OptionClassName = "class_name"
	// OptionAnonymousClass supplies the target class itself instead of a name.
	OptionAnonymousClass = "anonymous_class"
	// OptionValidate controls whether the association participates in the
	// owner's validation.
	OptionValidate = "validate"
)

// Kind-specific option keys shared by several kinds.
const (
	// OptionDependent selects what happens to targets when the owner goes away.
	// Accepted values are given by Kind.ValidDependentOptions.
	OptionDependent = "dependent"
	// OptionInverseOf names the association on the target pointing back.
	OptionInverseOf = "inverse_of"
)

// Options is an association's configuration map. Keys are order-independent.
type Options map[string]any

// Keys returns the keys of o, sorted.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of o. Cloning nil yields an empty map.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Has reports whether key is present.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// String returns the string value of key, or "" if absent or not a string.
func (o Options) String(key string) string {
	s, _ := o[key].(string)
	return s
}

// Bool returns the bool value of key and whether it was present as a bool.
func (o Options) Bool(key string) (value, ok bool) {
	value, ok = o[key].(bool)
	return value, ok
}
