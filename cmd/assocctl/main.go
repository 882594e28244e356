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

// Package main implements assocctl, a checker for association schemas.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/assoc/builder"
	"dirpx.dev/assoc/config"
	"dirpx.dev/assoc/extensions/autosave"
	"dirpx.dev/assoc/logging"
	"dirpx.dev/assoc/registry"
	"dirpx.dev/assoc/schema"
)

var (
	// configPath is the builder configuration file.
	configPath string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "assocctl",
	Short: "Check and describe association schemas",
	Long: `assocctl declares every association of a YAML or TOML schema file
through the builder and reports what it produced.

Builder settings come from --config and ASSOC_* environment variables.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "builder configuration file (YAML)")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(describeCmd)
}

// apply loads the configuration and the schema at path and declares it.
func apply(path string) (*schema.Result, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = log.Sync() }()

	s, err := schema.Load(path)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	if err := reg.Register(autosave.New()); err != nil {
		return nil, err
	}
	b := builder.New(reg, builder.WithConfig(cfg), builder.WithLogger(log.With(zap.String("schema", path))))
	return schema.Apply(s, b)
}
