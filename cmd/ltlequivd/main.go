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

// Binary ltlequivd serves the HTTP form adapter over the same transform
// pipeline as the ltlequiv CLI.
package main

import (
	"net/http"
	"os"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/corvidlogic/ltlequiv/internal/httpserver"
)

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "ltlequivd",
		Level: hclog.Info,
	})

	var addr string
	root := &cobra.Command{
		Use:   "ltlequivd",
		Short: "Serve the ltlequiv HTTP form adapter",
	}
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			router := httpserver.NewRouter(logger)
			logger.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, router)
		},
	}
	serve.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	root.AddCommand(serve)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
