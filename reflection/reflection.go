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

// Package reflection creates the immutable descriptors of declared
// associations.
package reflection

import (
	"fmt"

	"dirpx.dev/assoc/apis"
	"dirpx.dev/assoc/options"
	"dirpx.dev/assoc/resolver"
	"dirpx.dev/assoc/utils/ident"
)

// Create validates name and opts and returns the reflection of an
// association declared on owner.
//
// accepted is the full accepted-key set for this declaration (see
// options.Accepted). Option errors are returned unchanged. macro is stored
// verbatim; res resolves the target class name and defaults to
// resolver.Default when nil.
func Create(owner apis.Model, macro apis.Macro, name string, scope any, opts apis.Options, accepted []string, res apis.Resolver) (apis.Reflection, error) {
	if !ident.Valid(name) {
		return nil, &apis.InvalidNameError{Name: name}
	}
	if err := options.Validate(opts, accepted); err != nil {
		return nil, err
	}
	if res == nil {
		res = resolver.Default()
	}

	cloned := opts.Clone()
	return &reflection{
		macro:     macro,
		name:      name,
		opts:      cloned,
		owner:     owner,
		scope:     scope,
		className: res.Resolve(name, macro, cloned),
	}, nil
}

// reflection is the concrete apis.Reflection. All fields are set once by
// Create and never written again.
type reflection struct {
	macro     apis.Macro
	name      string
	opts      apis.Options
	owner     apis.Model
	scope     any
	className string
}

// Ensure reflection implements apis.Reflection.
var _ apis.Reflection = (*reflection)(nil)

func (r *reflection) Macro() apis.Macro     { return r.macro }
func (r *reflection) Name() string          { return r.name }
func (r *reflection) Options() apis.Options { return r.opts.Clone() }
func (r *reflection) Owner() apis.Model     { return r.owner }
func (r *reflection) Scope() any            { return r.scope }
func (r *reflection) ClassName() string     { return r.className }

// Option returns a single option value.
func (r *reflection) Option(key string) (any, bool) {
	v, ok := r.opts[key]
	return v, ok
}

// AnonymousClass returns the anonymous_class option, or nil.
func (r *reflection) AnonymousClass() any {
	return r.opts[apis.OptionAnonymousClass]
}

// Collection reports whether the macro declares many targets.
func (r *reflection) Collection() bool {
	return r.macro.Collection()
}

// Validate returns the validate option; without it, collections validate
// and singular associations do not.
func (r *reflection) Validate() bool {
	if v, ok := r.opts.Bool(apis.OptionValidate); ok {
		return v
	}
	return r.macro.Collection()
}

// String returns "Owner.macro :name".
func (r *reflection) String() string {
	owner := "<nil>"
	if r.owner != nil {
		owner = r.owner.Name()
	}
	return fmt.Sprintf("%s.%s :%s", owner, r.macro, r.name)
}
