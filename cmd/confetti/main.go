// Copyright 2015 Matthew Holt and The Caddy Authors
// Copyright 2026 The confetti-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command confetti is a small CLI front-end over the confetti package:
// it formats, parses, and validates Confetti documents. The library
// stays pure and silent; all logging lives here.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "confetti",
		Short: "Format, parse, and validate Confetti configuration files",
		Long: `confetti is a command-line front end for the Confetti configuration
language: a tree of directives in the style of nginx or HCL config files.

Use 'confetti fmt' to reformat a file into canonical form, 'confetti parse'
to print its parsed structure, and 'confetti validate' to check a file
against an optional set of syntax extensions without printing its contents.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var cfg zap.Config
			if verbose {
				cfg = zap.NewDevelopmentConfig()
			} else {
				cfg = zap.NewProductionConfig()
				cfg.DisableStacktrace = true
			}
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			logger = l
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (development-mode) logging")

	root.AddCommand(newFmtCommand())
	root.AddCommand(newParseCommand())
	root.AddCommand(newValidateCommand())

	return root
}
