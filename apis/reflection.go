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

// Reflection is the immutable descriptor of one declared association.
//
// A Reflection is created once per (owner, name) at declaration time and
// shared by every owner instance. Implementations must not expose mutable
// state: Options returns a copy.
type Reflection interface {
	// Macro is the kind tag supplied by the concrete association kind.
	Macro() Macro
	// Name is the association name.
	Name() string
	// Options returns a copy of the validated options.
	Options() Options
	// Option returns a single option value.
	Option(key string) (any, bool)
	// Owner is the declaring class. It is a back-reference used for lookups
	// and messages only.
	Owner() Model
	// Scope is an opaque value for concrete kinds; nil when not given.
	Scope() any
	// ClassName is the resolved target class name.
	ClassName() string
	// AnonymousClass returns the anonymous_class option, if any.
	AnonymousClass() any
	// Collection reports whether the association holds many targets.
	Collection() bool
	// Validate reports whether the association participates in validation.
	Validate() bool
	// String returns a short "Owner.macro :name" form for messages.
	String() string
}
