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
	"sync"

	"github.com/jinzhu/inflection"

	"dirpx.dev/assoc/apis"
	"dirpx.dev/assoc/utils/ident"
)

// NewInflectionStrategy creates an apis.Strategy that derives the class name
// from the association name: camelized, and singularized for collections.
func NewInflectionStrategy() apis.Strategy {
	return inflectionStrategy{}
}

// inflectionStrategy is the universal fallback ("line_items" -> "LineItem").
type inflectionStrategy struct{}

// Ensure inflectionStrategy implements apis.Strategy.
var _ apis.Strategy = (*inflectionStrategy)(nil)

// cacheKey ensures memoization respects everything that affects derivation.
type cacheKey struct {
	name       string
	collection bool
}

// classNameCache caches derived class names.
var classNameCache sync.Map // key: cacheKey, val: string

// TryResolve derives the class name; it handles every non-empty name.
func (inflectionStrategy) TryResolve(name string, macro apis.Macro, _ apis.Options) (string, bool) {
	if name == "" {
		return "", false
	}
	return derive(name, macro.Collection()), true
}

// derive computes the class name for name with memoization.
func derive(name string, collection bool) string {
	key := cacheKey{name: name, collection: collection}
	if v, ok := classNameCache.Load(key); ok {
		return v.(string)
	}

	base := name
	if collection {
		base = inflection.Singular(base)
	}
	out := ident.Camel(base)

	classNameCache.Store(key, out)
	return out
}
