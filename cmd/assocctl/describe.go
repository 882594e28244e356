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
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// describeCmd prints the reflections of a schema
var describeCmd = &cobra.Command{
	Use:   "describe <schema>",
	Short: "List the associations a schema declares",
	Long: `Declare every association of a schema and print one line per
reflection: owner, macro, name, resolved class and options.

Examples:
  assocctl describe blog.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	res, err := apply(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OWNER\tMACRO\tNAME\tCLASS\tOPTIONS")
	for _, r := range res.Reflections {
		opts := r.Options()
		pairs := make([]string, 0, len(opts))
		for _, k := range opts.Keys() {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, opts[k]))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Owner().Name(), r.Macro(), r.Name(), r.ClassName(), strings.Join(pairs, ","))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d classes, %d associations\n", len(res.Classes), len(res.Reflections))
	return nil
}
