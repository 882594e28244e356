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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCmd validates a schema file
var checkCmd = &cobra.Command{
	Use:   "check <schema>",
	Short: "Validate a schema file",
	Long: `Declare every association of a schema and exit non-zero if any
declaration fails. All failures are listed.

Examples:
  # Check a YAML schema
  assocctl check blog.yaml

  # Check with a builder configuration
  assocctl check --config assoc.yaml blog.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	res, err := apply(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d associations on %d classes\n",
		len(res.Reflections), len(res.Classes))
	return nil
}
