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

// Package ident holds the identifier grammar for association names and the
// case conversions used to derive names from Go identifiers.
package ident

import (
	"regexp"

	"github.com/iancoleman/strcase"
)

// MaxLen bounds the length of an identifier.
const MaxLen = 128

// pattern is the identifier grammar: a letter or underscore followed by
// letters, digits or underscores.
var pattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Valid reports whether s is a well-formed identifier token.
func Valid(s string) bool {
	return len(s) <= MaxLen && pattern.MatchString(s)
}

// Snake converts a Go identifier ("FullName") to snake_case ("full_name").
func Snake(s string) string {
	return strcase.ToSnake(s)
}

// Camel converts snake_case ("line_items") to CamelCase ("LineItems").
func Camel(s string) string {
	return strcase.ToCamel(s)
}
