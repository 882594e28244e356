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

package config

import (
	"dirpx.dev/assoc/apis"
)

const (
	// DefaultAllowRedefinition represents the default for AllowRedefinition.
	// When false, re-declaring an association name is a NameConflictError.
	DefaultAllowRedefinition = false
	// DefaultRollback represents the default for Rollback.
	// When true, a failed declaration leaves no accessors behind.
	DefaultRollback = true
	// DefaultLogLevel represents the default for LogLevel.
	DefaultLogLevel = "info"
	// DefaultLogFormat represents the default for LogFormat.
	DefaultLogFormat = "json"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure logging knobs are never empty.
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		AllowRedefinition: DefaultAllowRedefinition,
		Rollback:          DefaultRollback,
		LogLevel:          DefaultLogLevel,
		LogFormat:         DefaultLogFormat,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithAllowRedefinition sets the AllowRedefinition option.
func WithAllowRedefinition(allow bool) Option {
	return func(c *apis.Config) {
		c.AllowRedefinition = allow
	}
}

// WithRollback sets the Rollback option.
func WithRollback(rollback bool) Option {
	return func(c *apis.Config) {
		c.Rollback = rollback
	}
}

// WithReservedNames appends names to ReservedNames.
func WithReservedNames(names ...string) Option {
	return func(c *apis.Config) {
		c.ReservedNames = append(append([]string(nil), c.ReservedNames...), names...)
	}
}

// WithLogLevel sets the LogLevel option.
// An empty value resets to the default.
func WithLogLevel(level string) Option {
	return func(c *apis.Config) {
		if level == "" {
			level = DefaultLogLevel
		}
		c.LogLevel = level
	}
}

// WithLogFormat sets the LogFormat option.
// An empty value resets to the default.
func WithLogFormat(format string) Option {
	return func(c *apis.Config) {
		if format == "" {
			format = DefaultLogFormat
		}
		c.LogFormat = format
	}
}
