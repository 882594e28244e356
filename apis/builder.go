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

// Builder turns an association declaration into a Reflection and wires the
// owner's accessors. Implementations sequence option validation, reflection
// creation, accessor installation, extension hooks and the kind's
// validation hook, in that order.
type Builder interface {
	// Build declares association name of the given kind on owner.
	// On success the owner's method table holds a reader (name) and a
	// writer (name=) and the returned Reflection is recorded.
	Build(kind Kind, owner Model, name string, opts Options) (Reflection, error)
	// BuildScoped is Build with an opaque scope stored on the Reflection.
	// The scope is not interpreted by the builder.
	BuildScoped(kind Kind, owner Model, name string, scope any, opts Options) (Reflection, error)
}
