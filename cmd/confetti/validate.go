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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	confetti "github.com/bobuk/confetti-go"
)

func newValidateCommand() *cobra.Command {
	var flags extensionFlags

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a Confetti file for syntax errors without printing its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			_, err = confetti.Parse(src, flags.options())
			if err != nil {
				var parseErr *confetti.ParseError
				if errors.As(err, &parseErr) {
					logger.Error("invalid",
						zap.String("file", path),
						zap.String("kind", string(parseErr.Kind)),
						zap.Int("offset", parseErr.Offset),
					)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
