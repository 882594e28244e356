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

// Method is a generated owner method. recv is the owner instance the method
// is invoked on.
type Method func(recv Instance, args ...any) (any, error)

// MethodTable is an owner's generated-accessor namespace.
//
// The table trusts its caller: Define overwrites silently. Guarding against
// collisions with unrelated members is the builder's job.
type MethodTable interface {
	// Define installs m under name.
	Define(name string, m Method)
	// Lookup returns the method installed under name.
	Lookup(name string) (Method, bool)
	// Remove deletes name. Removing a missing name is a no-op.
	Remove(name string)
	// Names returns the installed names, sorted.
	Names() []string
}
