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
	"testing"

	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string, opts Options) []token {
	t.Helper()
	l := newLexer([]byte(src), opts)
	var toks []token
	for {
		tok, err := l.next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks
		}
	}
}

func TestLexerBareArgument(t *testing.T) {
	toks := lexAll(t, "host localhost\n", Options{})
	require.Len(t, toks, 4)
	require.Equal(t, tokArgBare, toks[0].kind)
	require.Equal(t, "host", toks[0].text)
	require.Equal(t, tokArgBare, toks[1].kind)
	require.Equal(t, "localhost", toks[1].text)
	require.Equal(t, tokTerm, toks[2].kind)
	require.Equal(t, tokEOF, toks[3].kind)
}

func TestLexerBraceAndSemicolon(t *testing.T) {
	toks := lexAll(t, "a { b; }", Options{})
	kinds := make([]tokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.kind
	}
	require.Equal(t, []tokenKind{
		tokArgBare, tokLBrace, tokArgBare, tokTerm, tokRBrace, tokEOF,
	}, kinds)
}

func TestLexerLineContinuation(t *testing.T) {
	toks := lexAll(t, "a \\\n b\n", Options{})
	require.Equal(t, tokArgBare, toks[0].kind)
	require.Equal(t, "a", toks[0].text)
	require.Equal(t, tokArgBare, toks[1].kind)
	require.Equal(t, "b", toks[1].text)
	require.Equal(t, tokTerm, toks[2].kind)
}

func TestLexerEscapeAtEOF(t *testing.T) {
	l := newLexer([]byte("a \\"), Options{})
	_, err := l.next() // "a"
	require.NoError(t, err)
	_, err = l.next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, EscapeAtEOF, perr.Kind)
}

func TestLexerDanglingContinuation(t *testing.T) {
	l := newLexer([]byte("a \\\n"), Options{})
	_, err := l.next() // "a"
	require.NoError(t, err)
	_, err = l.next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, DanglingContinuation, perr.Kind)
}

func TestLexerQuotedArgument(t *testing.T) {
	toks := lexAll(t, `"hello \"world\""`+"\n", Options{})
	require.Equal(t, tokArgQuoted, toks[0].kind)
	require.Equal(t, `hello "world"`, toks[0].text)
}

func TestLexerQuotedUnterminated(t *testing.T) {
	l := newLexer([]byte(`"abc`), Options{})
	_, err := l.next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnterminatedQuote, perr.Kind)
}

func TestLexerQuotedLineTerminatorIsIllegal(t *testing.T) {
	l := newLexer([]byte("\"abc\ndef\""), Options{})
	_, err := l.next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnterminatedQuote, perr.Kind)
}

func TestLexerTripleQuoted(t *testing.T) {
	toks := lexAll(t, "\"\"\"line1\nline2\"\"\"\n", Options{})
	require.Equal(t, tokArgTriple, toks[0].kind)
	require.Equal(t, "line1\nline2", toks[0].text)
}

func TestLexerTripleQuotedUnterminated(t *testing.T) {
	l := newLexer([]byte(`"""no closer`), Options{})
	_, err := l.next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnterminatedTriple, perr.Kind)
}

func TestLexerTwoAdjacentQuotedArgumentsAreDistinct(t *testing.T) {
	toks := lexAll(t, `"a""b"`+"\n", Options{})
	require.Equal(t, tokArgQuoted, toks[0].kind)
	require.Equal(t, "a", toks[0].text)
	require.Equal(t, tokArgQuoted, toks[1].kind)
	require.Equal(t, "b", toks[1].text)
}

func TestLexerLineComment(t *testing.T) {
	toks := lexAll(t, "# a comment\nx\n", Options{})
	require.Equal(t, tokCommentLine, toks[0].kind)
	require.Equal(t, " a comment", toks[0].text)
	require.Equal(t, tokTerm, toks[1].kind)
	require.Equal(t, tokArgBare, toks[2].kind)
}

func TestLexerHashInsideArgumentIsNotAComment(t *testing.T) {
	toks := lexAll(t, `a\#b`+"\n", Options{})
	require.Equal(t, tokArgBare, toks[0].kind)
	require.Equal(t, "a#b", toks[0].text)
}

func TestLexerCStyleComments(t *testing.T) {
	toks := lexAll(t, "// line\n/* block */\nx\n", Options{CStyleComments: true})
	require.Equal(t, tokCommentLine, toks[0].kind)
	require.Equal(t, " line", toks[0].text)
	require.Equal(t, tokTerm, toks[1].kind)
	require.Equal(t, tokCommentBlock, toks[2].kind)
	require.Equal(t, " block ", toks[2].text)
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	l := newLexer([]byte("/* no closer"), Options{CStyleComments: true})
	_, err := l.next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnterminatedComment, perr.Kind)
}

func TestLexerExpressionArgument(t *testing.T) {
	toks := lexAll(t, "(a (b) c)\n", Options{ExpressionArguments: true})
	require.Equal(t, tokArgExpression, toks[0].kind)
	require.Equal(t, "a (b) c", toks[0].text)
}

func TestLexerUnbalancedExpression(t *testing.T) {
	l := newLexer([]byte("(a (b)"), Options{ExpressionArguments: true})
	_, err := l.next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnbalancedExpression, perr.Kind)
}

func TestLexerPunctuatorArgument(t *testing.T) {
	toks := lexAll(t, "a := b\n", Options{PunctuatorArguments: []string{":", ":="}})
	require.Equal(t, tokArgBare, toks[0].kind)
	require.Equal(t, tokArgPunctuator, toks[1].kind)
	require.Equal(t, ":=", toks[1].text)
	require.Equal(t, tokArgBare, toks[2].kind)
}

func TestLexerCRLFIsOneTerm(t *testing.T) {
	toks := lexAll(t, "a\r\nb\n", Options{})
	require.Equal(t, tokArgBare, toks[0].kind)
	require.Equal(t, tokTerm, toks[1].kind)
	require.Equal(t, tokArgBare, toks[2].kind)
}

func TestLexerMalformedUTF8(t *testing.T) {
	l := newLexer([]byte{0xff, 0xfe}, Options{})
	_, err := l.next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, MalformedEncoding, perr.Kind)
}

func TestLexerBOMIsConsumed(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x\n")...)
	toks := lexAll(t, string(src), Options{})
	require.Equal(t, 3, toks[0].offset)
	require.Equal(t, "x", toks[0].text)
}
