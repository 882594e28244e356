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

// Package kinds provides the association kinds: an embeddable abstract
// base and the concrete EmbedsOne, EmbedsMany and EmbeddedIn.
package kinds

import (
	"dirpx.dev/assoc/apis"
)

// Option keys contributed by concrete kinds.
const (
	OptionIndexErrors = "index_errors"
	OptionTouch       = "touch"
)

// Values accepted for the dependent option.
const (
	DependentDestroy   = "destroy"
	DependentDeleteAll = "delete_all"
	DependentNullify   = "nullify"
)

// ValidationPrefix prefixes the rule registered for validated associations.
const ValidationPrefix = "validates_associated_"

// Association is the abstract base of every kind. It fulfils apis.Kind
// structurally but leaves Macro and ValidDependentOptions unimplemented;
// builders reject it with apis.NotImplementedError. Concrete kinds embed it
// and override what they support.
type Association struct{}

// Ensure Association satisfies apis.Kind.
var _ apis.Kind = Association{}

// Macro returns apis.MacroUnknown.
func (Association) Macro() apis.Macro { return apis.MacroUnknown }

// ValidOptions returns no extra keys.
func (Association) ValidOptions() []string { return nil }

// ValidDependentOptions returns nil, meaning not implemented.
func (Association) ValidDependentOptions() []string { return nil }

// DefineValidations registers nothing.
func (Association) DefineValidations(apis.Model, apis.Reflection) error { return nil }

// EmbedsOne declares a single embedded target.
type EmbedsOne struct{ Association }

func (EmbedsOne) Macro() apis.Macro { return apis.EmbedsOne }

func (EmbedsOne) ValidOptions() []string {
	return []string{apis.OptionDependent, apis.OptionInverseOf}
}

func (EmbedsOne) ValidDependentOptions() []string {
	return []string{DependentDestroy, DependentNullify}
}

func (EmbedsOne) DefineValidations(owner apis.Model, r apis.Reflection) error {
	validateAssociated(owner, r)
	return nil
}

// EmbedsMany declares a collection of embedded targets. Collections are
// validated unless validate is false.
type EmbedsMany struct{ Association }

func (EmbedsMany) Macro() apis.Macro { return apis.EmbedsMany }

func (EmbedsMany) ValidOptions() []string {
	return []string{apis.OptionDependent, OptionIndexErrors, apis.OptionInverseOf}
}

func (EmbedsMany) ValidDependentOptions() []string {
	return []string{DependentDeleteAll, DependentDestroy, DependentNullify}
}

func (EmbedsMany) DefineValidations(owner apis.Model, r apis.Reflection) error {
	validateAssociated(owner, r)
	return nil
}

// EmbeddedIn declares the parent an embedded record lives in.
type EmbeddedIn struct{ Association }

func (EmbeddedIn) Macro() apis.Macro { return apis.EmbeddedIn }

func (EmbeddedIn) ValidOptions() []string {
	return []string{apis.OptionInverseOf, OptionTouch}
}

// ValidDependentOptions returns an empty set: the parent is never dependent.
func (EmbeddedIn) ValidDependentOptions() []string { return []string{} }

// ByMacro returns the concrete kind for m.
func ByMacro(m apis.Macro) (apis.Kind, bool) {
	switch m {
	case apis.EmbedsOne:
		return EmbedsOne{}, true
	case apis.EmbedsMany:
		return EmbedsMany{}, true
	case apis.EmbeddedIn:
		return EmbeddedIn{}, true
	default:
		return nil, false
	}
}

func validateAssociated(owner apis.Model, r apis.Reflection) {
	if !r.Validate() {
		return
	}
	vr, ok := owner.(apis.ValidationRegistrar)
	if !ok {
		return
	}
	vr.AddValidation(apis.Rule{
		Name:        ValidationPrefix + r.Name(),
		Association: r.Name(),
		Macro:       r.Macro(),
	})
}
