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

// Binary ltlequiv is the CLI entry point for the transform pipeline.
package main

import (
	"os"

	hclog "github.com/hashicorp/go-hclog"

	"github.com/corvidlogic/ltlequiv/internal/cli"
)

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "ltlequiv",
		Level: hclog.Info,
	})

	root := cli.NewRootCommand(logger)
	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
