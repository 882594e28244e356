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

// Instance is an owner instance. Each instance holds its own association
// runtimes, keyed by association name.
type Instance interface {
	// Association returns (creating it on first use) the runtime for name.
	Association(name string) (Association, error)
}

// Association is the per-instance runtime of one declared association. It
// resolves, caches and mutates targets; the builder only delegates to it.
type Association interface {
	// Reader returns the current target(s).
	Reader() any
	// Writer replaces the target(s) with value.
	Writer(value any) error
}
