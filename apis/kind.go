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

// Kind is the contract every concrete association kind implements.
//
// The kinds package provides an embeddable abstract base whose Macro is
// MacroUnknown and whose ValidDependentOptions is nil; builders treat both as
// "not implemented" and fail with a NotImplementedError.
type Kind interface {
	// Macro returns the tag stored on every Reflection built for this kind.
	Macro() Macro
	// ValidOptions returns option keys accepted by this kind on top of the
	// built-in ones.
	ValidOptions() []string
	// ValidDependentOptions returns the values accepted for the "dependent"
	// option. A nil slice means the kind did not implement the contract; an
	// empty slice means no value is accepted.
	ValidDependentOptions() []string
	// DefineValidations registers kind-specific rule checks on owner.
	// It runs after every extension hook.
	DefineValidations(owner Model, r Reflection) error
}
