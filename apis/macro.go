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

import (
	"fmt"
	"strings"
)

// Macro tags the category of a declared association. Each concrete kind
// supplies its own Macro; the builder stores it verbatim and never branches
// on it.
//
// The zero value, MacroUnknown, is what the abstract base kind reports and is
// rejected by builders.
type Macro int

const (
	// MacroUnknown is the macro of the abstract base kind.
	MacroUnknown Macro = iota
	// EmbedsOne declares a singular, owning association.
	EmbedsOne
	// EmbedsMany declares a collection, owning association.
	EmbedsMany
	// EmbeddedIn declares a singular, owned association (the inverse side).
	EmbeddedIn
)

// String returns the declaration token of the macro ("embeds_one", ...).
// Unknown values yield a diagnostic form such as "Unknown(42)".
func (m Macro) String() string {
	switch m {
	case MacroUnknown:
		return "unknown"
	case EmbedsOne:
		return "embeds_one"
	case EmbedsMany:
		return "embeds_many"
	case EmbeddedIn:
		return "embedded_in"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// IsValid reports whether m names a concrete association kind.
func (m Macro) IsValid() bool {
	switch m {
	case EmbedsOne, EmbedsMany, EmbeddedIn:
		return true
	default:
		return false
	}
}

// Collection reports whether associations of this macro hold many targets.
func (m Macro) Collection() bool {
	return m == EmbedsMany
}

// ParseMacro converts a declaration token into a Macro.
// Parsing is case-insensitive and ignores surrounding whitespace.
func ParseMacro(s string) (Macro, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return MacroUnknown, fmt.Errorf("assoc: empty macro")
	}

	switch strings.ToLower(trimmed) {
	case "embeds_one":
		return EmbedsOne, nil
	case "embeds_many":
		return EmbedsMany, nil
	case "embedded_in":
		return EmbeddedIn, nil
	default:
		return MacroUnknown, fmt.Errorf("assoc: unknown macro %q", s)
	}
}

// MustParseMacro is like ParseMacro but panics on error.
// It is intended for package-level initialization with constant input.
func MustParseMacro(s string) Macro {
	m, err := ParseMacro(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalText implements encoding.TextMarshaler.
func (m Macro) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("assoc: cannot marshal macro %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Macro) UnmarshalText(text []byte) error {
	v, err := ParseMacro(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
