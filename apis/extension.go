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

// Extension attaches behavior to every association declared after it is
// registered.
type Extension interface {
	// ValidOptions returns additional option keys this extension accepts.
	ValidOptions() []string
	// Build runs once per declaration, after accessors are installed.
	// It observes the fully-formed Reflection the builder returns.
	Build(owner Model, r Reflection) error
}

// Reverter is implemented by extensions that can undo what Build did.
// Builders call Revert, in reverse registration order, when a step of the
// same declaration fails and rollback is enabled. The extension whose Build
// failed is reverted too, so Revert must accept a partial Build. When the
// failed declaration redefined an earlier one, Build is called again with
// the earlier reflection right after Revert.
type Reverter interface {
	Revert(owner Model, r Reflection)
}
