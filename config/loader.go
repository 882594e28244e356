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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/assoc/apis"
	"dirpx.dev/assoc/utils/ident"
)

// EnvPrefix is the prefix of environment variables read by Load.
// ASSOC_ALLOW_REDEFINITION maps to allow_redefinition, and so on.
const EnvPrefix = "ASSOC_"

// maxConfigFileSize bounds the YAML file read by Load.
const maxConfigFileSize = 1024 * 1024

// ErrConfigTooLarge is returned when the config file exceeds 1MB.
var ErrConfigTooLarge = errors.New("assoc(config): config file too large")

// Load reads configuration from a YAML file, then overrides it with
// ASSOC_* environment variables.
//
// Precedence (highest to lowest):
//  1. Environment variables
//  2. YAML file at path (skipped when path is empty or missing)
//  3. DefaultConfig
func Load(path string) (apis.Config, error) {
	var content []byte
	if path != "" {
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Missing file: defaults plus environment.
		case err != nil:
			return apis.Config{}, fmt.Errorf("assoc(config): stat %s: %w", path, err)
		case info.Size() > maxConfigFileSize:
			return apis.Config{}, ErrConfigTooLarge
		default:
			content, err = os.ReadFile(path)
			if err != nil {
				return apis.Config{}, fmt.Errorf("assoc(config): read %s: %w", path, err)
			}
		}
	}
	return LoadBytes(content)
}

// LoadBytes is Load for an in-memory YAML document. Environment overrides
// still apply.
func LoadBytes(content []byte) (apis.Config, error) {
	k := koanf.New(".")

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return apis.Config{}, fmt.Errorf("assoc(config): parse yaml: %w", err)
		}
	}

	// ASSOC_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return apis.Config{}, fmt.Errorf("assoc(config): load environment: %w", err)
	}

	// Start from defaults so keys absent from every source keep them.
	cfg := DefaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return apis.Config{}, fmt.Errorf("assoc(config): unmarshal: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return apis.Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg for values the builder cannot work with.
func Validate(cfg apis.Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("assoc(config): log_level: %w", err)
	}
	switch cfg.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("assoc(config): log_format must be json or console, got %q", cfg.LogFormat)
	}
	for _, name := range cfg.ReservedNames {
		if !ident.Valid(name) {
			return fmt.Errorf("assoc(config): reserved_names: %q is not a valid identifier", name)
		}
	}
	return nil
}
