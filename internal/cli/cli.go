// Copyright 2026 The ltlequiv Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the transform subcommand: a small cobra command
// tree around the shared driver pipeline, taking its five arguments
// positionally to stay compatible with the original worked examples.
package cli

import (
	"context"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/corvidlogic/ltlequiv/pkg/driver"
)

// NewRootCommand builds the root command tree. logger is shared by every
// invocation of the transform subcommand.
func NewRootCommand(logger hclog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "ltlequiv",
		Short: "Generate and filter equivalent propositional/LTL formulae",
	}
	root.AddCommand(newTransformCommand(logger))
	return root
}

func newTransformCommand(logger hclog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "transform formula operators complexity depth show_unfiltered timeout",
		Short: "Expand a formula into equivalents and filter by operator alphabet",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, logger, args)
		},
	}
}

func runTransform(cmd *cobra.Command, logger hclog.Logger, args []string) error {
	formulaText := args[0]
	raw := driver.RawFields{
		Operators:      args[1],
		Complexity:     args[2],
		Depth:          args[3],
		ShowUnfiltered: args[4],
		Timeout:        args[5],
	}

	req, err := driver.DecodeRequest(formulaText, raw)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "formula: %s\n", formulaText)
	fmt.Fprintf(out, "operators: %s\n", driver.FormatOperators(req.Operators))
	fmt.Fprintf(out, "complexity factor: %v\n", req.ComplexityFactor)
	fmt.Fprintf(out, "depth: %d\n", req.Depth)
	fmt.Fprintf(out, "timeout: %s\n", req.Timeout)

	result, err := driver.Run(context.Background(), logger, req)
	if err != nil {
		return err
	}

	if len(result.Unreachable) > 0 {
		fmt.Fprintf(out, "warning: alphabet cannot express: %v\n", result.Unreachable)
	}

	if req.ShowUnfiltered {
		fmt.Fprintln(out, "unfiltered equivalents:")
		for _, f := range result.Unfiltered {
			fmt.Fprintf(out, "  %s\n", f.String())
		}
	}

	if len(result.Filtered) == 0 {
		fmt.Fprintln(out, "no equivalents")
		return nil
	}

	fmt.Fprintln(out, "filtered equivalents:")
	for _, f := range result.Filtered {
		fmt.Fprintf(out, "  %s\n", f.String())
	}
	return nil
}
