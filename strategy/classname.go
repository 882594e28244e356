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

// NewClassNameStrategy creates an apis.Strategy that honors the class_name option.
func NewClassNameStrategy() apis.Strategy {
	return &classNameStrategy{}
}

// classNameStrategy is the explicit override: a non-empty class_name string
// wins over anything derived.
type classNameStrategy struct{}

// Ensure classNameStrategy implements apis.Strategy.
var _ apis.Strategy = (*classNameStrategy)(nil)

// TryResolve returns the class_name option verbatim.
func (*classNameStrategy) TryResolve(_ string, _ apis.Macro, opts apis.Options) (string, bool) {
	if name := opts.String(apis.OptionClassName); name != "" {
		return name, true
	}
	return "", false
}
