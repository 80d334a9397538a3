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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	confetti "github.com/bobuk/confetti-go"
)

func newParseCommand() *cobra.Command {
	var flags extensionFlags

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Confetti file and print its directive tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			unit, err := confetti.Parse(src, flags.options())
			if err != nil {
				logger.Error("parse failed", zap.String("file", path), zap.Error(err))
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range unit.Comments {
				fmt.Fprintf(out, "# [%d] %s\n", c.Offset, c.Text)
			}
			for _, d := range unit.Directives {
				printDirective(out, d, 0)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func printDirective(out io.Writer, d *confetti.Directive, depth int) {
	indent := strings.Repeat("    ", depth)
	fmt.Fprintf(out, "%s%s\n", indent, strings.Join(d.Args(), " "))
	if len(d.Subdirectives) == 0 {
		return
	}
	fmt.Fprintf(out, "%s{\n", indent)
	for _, child := range d.Subdirectives {
		printDirective(out, child, depth+1)
	}
	fmt.Fprintf(out, "%s}\n", indent)
}
