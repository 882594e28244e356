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

// Namer is implemented by anything that carries a class-like name.
type Namer interface {
	// Name returns the name used in lookups and error messages.
	Name() string
}

// Model is the owning class an association is declared on.
type Model interface {
	Namer

	// DangerousAttributeMethod reports whether defining an accessor called
	// name would override essential owner behavior.
	DangerousAttributeMethod(name string) bool

	// GeneratedAssociationMethods returns the mutable method table the
	// builder installs accessors into.
	GeneratedAssociationMethods() MethodTable
}

// Rule is a validation rule registered by a kind's validation hook.
// Evaluating it is the owner's business.
type Rule struct {
	// Name identifies the rule on the owner.
	Name string
	// Association is the association the rule checks.
	Association string
	// Macro is the macro of that association.
	Macro Macro
}

// ValidationRegistrar is implemented by owners that accept validation rules.
type ValidationRegistrar interface {
	AddValidation(rule Rule)
}

// CallbackEvent names a lifecycle point on owner instances.
type CallbackEvent string

const (
	// BeforeSave runs before an owner instance is saved.
	BeforeSave CallbackEvent = "before_save"
	// AfterSave runs after an owner instance is saved.
	AfterSave CallbackEvent = "after_save"
)

// Callback is a lifecycle hook registered on an owner.
type Callback struct {
	// Name identifies the callback; it is the key for RemoveCallback.
	Name string
	// Event is the lifecycle point the callback is attached to.
	Event CallbackEvent
	// Fn runs against an owner instance.
	Fn func(recv Instance) error
}

// CallbackRegistrar is implemented by owners that accept lifecycle callbacks.
type CallbackRegistrar interface {
	AddCallback(cb Callback)
	RemoveCallback(name string)
}
