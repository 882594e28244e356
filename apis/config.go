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

// Config carries read-only builder knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// AllowRedefinition controls whether declaring an association whose
	// accessors already exist on the owner replaces them. If false, such a
	// declaration fails with a NameConflictError.
	AllowRedefinition bool `koanf:"allow_redefinition"`

	// Rollback controls whether a failure after accessor installation
	// (extension hook, validation hook, catalog) restores the owner's
	// method table and reverts extensions that already ran.
	Rollback bool `koanf:"rollback"`

	// ReservedNames are rejected as association names on every owner, in
	// addition to whatever the owner reports as dangerous.
	ReservedNames []string `koanf:"reserved_names"`

	// LogLevel is a zap level name ("debug", "info", ...).
	LogLevel string `koanf:"log_level"`

	// LogFormat is "json" or "console".
	LogFormat string `koanf:"log_format"`
}
