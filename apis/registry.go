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

// ExtensionRegistry is the append-only, process-wide list of extensions.
// Reads are expected to vastly outnumber writes; implementations must hand
// out consistent snapshots so a Build never sees a half-registered list.
type ExtensionRegistry interface {
	// Register appends ext. There is no removal.
	Register(ext Extension) error
	// All returns a snapshot in registration order.
	All() []Extension
	// AcceptedKeys returns the sorted union of every extension's option keys.
	AcceptedKeys() []string
	// Count returns the number of registered extensions.
	Count() int
}

// Catalog records the reflections built for each owner so they can be
// queried after declaration.
type Catalog interface {
	// Add records r. Re-adding the same reflection is a no-op; adding a
	// different reflection for an already recorded (owner, name) fails.
	Add(r Reflection) error
	// Replace records r, overwriting any reflection for the same (owner, name)
	// while keeping its declaration position.
	Replace(r Reflection) error
	// Lookup returns the reflection for (owner, name) if present.
	Lookup(owner Model, name string) (Reflection, bool)
	// For returns owner's reflections in declaration order.
	For(owner Model) []Reflection
	// Count returns the number of recorded reflections.
	Count() int
	// Reset clears all recorded reflections.
	Reset()
}
