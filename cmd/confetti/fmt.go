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
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	confetti "github.com/bobuk/confetti-go"
)

func newFmtCommand() *cobra.Command {
	var flags extensionFlags
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reformat a Confetti file into canonical form",
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

			out := confetti.Format(unit)
			if write {
				if err := os.WriteFile(path, out, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				logger.Info("formatted", zap.String("file", path))
				return nil
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to the source file instead of stdout")
	return cmd
}
