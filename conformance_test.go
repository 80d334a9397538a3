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

package confetti

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConformanceSuite walks testdata/suite, which pairs each *.conf
// fixture with either a *.pass file (the expected CanonicalText output)
// or a *.fail file (the input must fail to parse), grounded on
// original_source/run_test_suite.py's own conf/.pass/.fail convention
// and its format_for_comparison/generate_expected_output functions.
func TestConformanceSuite(t *testing.T) {
	entries, err := os.ReadDir("testdata/suite")
	require.NoError(t, err)

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".conf") {
			continue
		}
		base := strings.TrimSuffix(name, ".conf")

		t.Run(base, func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join("testdata/suite", name))
			require.NoError(t, err)

			unit, parseErr := Parse(src, Options{})

			if _, statErr := os.Stat(filepath.Join("testdata/suite", base+".fail")); statErr == nil {
				require.Error(t, parseErr, "expected parse failure")
				return
			}

			require.NoError(t, parseErr)
			expected, err := os.ReadFile(filepath.Join("testdata/suite", base+".pass"))
			require.NoError(t, err)
			require.Equal(t, string(expected), CanonicalText(unit))
		})
	}
}
