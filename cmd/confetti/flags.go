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
	"github.com/spf13/cobra"

	confetti "github.com/bobuk/confetti-go"
)

// extensionFlags holds the command-line surface for confetti.Options,
// shared by parse, fmt, and validate.
type extensionFlags struct {
	cStyleComments      bool
	expressionArguments bool
	punctuatorArguments []string
	maxDepth            int
}

func (f *extensionFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.cStyleComments, "c-style-comments", false, "recognize // and /* */ comments")
	cmd.Flags().BoolVar(&f.expressionArguments, "expression-arguments", false, "recognize (...) as a single verbatim argument")
	cmd.Flags().StringSliceVar(&f.punctuatorArguments, "punctuator-arguments", nil, "comma-separated list of multi-character punctuator tokens")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "maximum block nesting depth (0 = default of 1024)")
}

func (f *extensionFlags) options() confetti.Options {
	return confetti.Options{
		CStyleComments:      f.cStyleComments,
		ExpressionArguments: f.expressionArguments,
		PunctuatorArguments: f.punctuatorArguments,
		MaxDepth:            f.maxDepth,
	}
}
