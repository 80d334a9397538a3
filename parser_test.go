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
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEmptyInput(t *testing.T) {
	unit, err := Parse([]byte(""), Options{})
	require.NoError(t, err)
	require.Empty(t, unit.Directives)
	require.Empty(t, unit.Comments)
}

func TestParseBOMOnlyInput(t *testing.T) {
	unit, err := Parse([]byte{0xEF, 0xBB, 0xBF}, Options{})
	require.NoError(t, err)
	require.Empty(t, unit.Directives)
}

func TestParseNestedBlock(t *testing.T) {
	unit, err := Parse([]byte("server {\n host localhost\n port 8080 \n }\n"), Options{})
	require.NoError(t, err)
	require.Len(t, unit.Directives, 1)

	server := unit.Directives[0]
	require.Equal(t, []string{"server"}, server.Args())
	require.Len(t, server.Subdirectives, 2)
	require.Equal(t, []string{"host", "localhost"}, server.Subdirectives[0].Args())
	require.Equal(t, []string{"port", "8080"}, server.Subdirectives[1].Args())
}

func TestParseQuotedArgDirective(t *testing.T) {
	unit, err := Parse([]byte(`db "primary" { url "postgres://u:p@h/d" }`), Options{})
	require.NoError(t, err)
	require.Len(t, unit.Directives, 1)
	db := unit.Directives[0]
	require.Equal(t, []string{"db", "primary"}, db.Args())
	require.Len(t, db.Subdirectives, 1)
	require.Equal(t, []string{"url", "postgres://u:p@h/d"}, db.Subdirectives[0].Args())
}

func TestParseLineContinuationJoinsArguments(t *testing.T) {
	unit, err := Parse([]byte("a \\\n b\n"), Options{})
	require.NoError(t, err)
	require.Len(t, unit.Directives, 1)
	require.Equal(t, []string{"a", "b"}, unit.Directives[0].Args())
}

func TestParseTripleQuotedArgumentPreservesNewline(t *testing.T) {
	unit, err := Parse([]byte("x \"\"\"line1\nline2\"\"\"\n"), Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"x", "line1\nline2"}, unit.Directives[0].Args())
}

func TestParseUnclosedBlock(t *testing.T) {
	_, err := Parse([]byte("server {\n host localhost\n"), Options{})
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnclosedBlock, perr.Kind)
}

func TestParseUnexpectedClosingBrace(t *testing.T) {
	_, err := Parse([]byte("a\n}\n"), Options{})
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnexpectedClosingBrace, perr.Kind)
}

func TestParseUnexpectedOpeningBrace(t *testing.T) {
	_, err := Parse([]byte("{ a }\n"), Options{})
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnexpectedOpeningBrace, perr.Kind)
}

func TestParseImplicitTerminationBeforeEOF(t *testing.T) {
	unit, err := Parse([]byte("a b"), Options{})
	require.NoError(t, err)
	require.Len(t, unit.Directives, 1)
	require.Equal(t, []string{"a", "b"}, unit.Directives[0].Args())
}

func TestParseImplicitTerminationBeforeClosingBrace(t *testing.T) {
	unit, err := Parse([]byte("a { b }"), Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, unit.Directives[0].Subdirectives[0].Args())
}

func TestParseConsecutiveTermsCollapse(t *testing.T) {
	unit, err := Parse([]byte("a\n\n\n\nb\n"), Options{})
	require.NoError(t, err)
	require.Len(t, unit.Directives, 2)
}

func TestParseMaxNestingDepth(t *testing.T) {
	var open, close string
	for i := 0; i < 1024; i++ {
		open += "a {"
		close += "}"
	}
	src := open + "x" + close
	_, err := Parse([]byte(src), Options{})
	require.NoError(t, err)
}

func TestParseNestingTooDeep(t *testing.T) {
	var open, close string
	for i := 0; i < 1025; i++ {
		open += "a {"
		close += "}"
	}
	src := open + "x" + close
	_, err := Parse([]byte(src), Options{})
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, NestingTooDeep, perr.Kind)
}

func TestParseCStyleCommentCollected(t *testing.T) {
	unit, err := Parse([]byte("/* c */ server { host h }\n"), Options{CStyleComments: true})
	require.NoError(t, err)
	require.Len(t, unit.Directives, 1)
	require.Len(t, unit.Directives[0].Subdirectives, 1)
	require.Len(t, unit.Comments, 1)
	require.Equal(t, " c ", unit.Comments[0].Text)
}

func TestParseArgumentOffsetsWithinSource(t *testing.T) {
	src := []byte("host localhost\n")
	unit, err := Parse(src, Options{})
	require.NoError(t, err)
	for _, d := range unit.Directives {
		for _, a := range d.Arguments {
			require.LessOrEqual(t, a.Offset+a.Length, len(src))
		}
	}
}

func TestParseTrailingNewlineDoesNotChangeArgumentValues(t *testing.T) {
	withNL, err := Parse([]byte("a b\n"), Options{})
	require.NoError(t, err)
	withoutNL, err := Parse([]byte("a b"), Options{})
	require.NoError(t, err)
	require.Equal(t, withNL.Directives[0].Args(), withoutNL.Directives[0].Args())
}

// TestParseConcurrentIndependentInputs fires N goroutines, each calling
// Parse on its own independent input and Options value, to back up
// SPEC_FULL.md §5's claim that Parse holds no process-wide mutable
// state: run with "go test -race", a shared package-level cursor/lexer
// global would surface as a data race here.
func TestParseConcurrentIndependentInputs(t *testing.T) {
	const n = 64
	type result struct {
		unit *Unit
		err  error
	}
	results := make([]result, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			src := []byte(fmt.Sprintf("server%d {\n host%d localhost%d\n port %d\n}\n", i, i, i, i))
			unit, err := Parse(src, Options{})
			results[i] = result{unit: unit, err: err}
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		require.NoError(t, r.err)
		require.Len(t, r.unit.Directives, 1)
		require.Equal(t, fmt.Sprintf("server%d", i), r.unit.Directives[0].Name())
	}
}
