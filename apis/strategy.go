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

// Strategy is a pluggable class-name resolution step. A Resolver chains
// multiple strategies in order (e.g., option -> anonymous class -> inflection).
type Strategy interface {
	// TryResolve attempts to resolve the target class name of association
	// name declared with macro and opts.
	// It returns (className, true) if handled; otherwise ("", false) to fall through.
	TryResolve(name string, macro Macro, opts Options) (className string, handled bool)
}
