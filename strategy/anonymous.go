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

package strategy

import (
	"dirpx.dev/assoc/apis"
)

// NewAnonymousClassStrategy creates an apis.Strategy that names the target
// after the anonymous_class option.
func NewAnonymousClassStrategy() apis.Strategy {
	return &anonymousClassStrategy{}
}

// anonymousClassStrategy uses the anonymous class's own name when it has one.
// An anonymous class without a name falls through to derivation.
type anonymousClassStrategy struct{}

// Ensure anonymousClassStrategy implements apis.Strategy.
var _ apis.Strategy = (*anonymousClassStrategy)(nil)

// TryResolve checks whether anonymous_class implements apis.Namer.
func (*anonymousClassStrategy) TryResolve(_ string, _ apis.Macro, opts apis.Options) (string, bool) {
	n, ok := opts[apis.OptionAnonymousClass].(apis.Namer)
	if !ok {
		return "", false
	}
	if name := n.Name(); name != "" {
		return name, true
	}
	return "", false
}
