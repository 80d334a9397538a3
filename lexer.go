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

package confetti

import "strings"

// lexer pulls tokens, one at a time, from a source cursor. It mirrors
// the shape of caddyconfig/caddyfile's lexer (a value holding a reader
// and producing one Token per call to next()) generalized from a single
// "word" token kind to Confetti's richer token set, and cross-checked
// against the scanning rules in
// other_examples/1fe9d0d2_demen1n-confetti__lexer.go.go for escape and
// triple-quote handling.
type lexer struct {
	c    *cursor
	opts Options
}

func newLexer(src []byte, opts Options) *lexer {
	return &lexer{c: newCursor(src), opts: opts}
}

// isEscapableRune reports whether r is one of the fixed set of punctuators
// that may be escaped with a backslash in a bare or (singly) quoted argument.
func isEscapableRune(r rune) bool {
	switch r {
	case '{', '}', ';', '#', '"', '\'', '\\':
		return true
	}
	return false
}

// next returns the next token or a *ParseError.
func (l *lexer) next() (token, error) {
	for {
		if err := l.skipHorizontalWhitespace(); err != nil {
			return token{}, err
		}

		r, _, err := l.c.peek()
		if err != nil {
			return token{}, err
		}

		if l.c.eof() {
			return token{kind: tokEOF, offset: l.c.offset()}, nil
		}

		start := l.c.offset()

		switch {
		case r == '\\':
			consumedLine, err := l.tryTopLevelLineContinuation()
			if err != nil {
				return token{}, err
			}
			if consumedLine {
				continue
			}
			// Not a line continuation: an escaped punctuator starting a
			// bare argument, e.g. `\{foo`.
			return l.scanBareArgument()

		case isLineTerminatorRune(r):
			if err := l.consumeLineTerminator(); err != nil {
				return token{}, err
			}
			return token{kind: tokTerm, offset: start, length: l.c.offset() - start}, nil

		case r == ';':
			l.c.advance()
			return token{kind: tokTerm, offset: start, length: 1}, nil

		case r == '{':
			l.c.advance()
			return token{kind: tokLBrace, offset: start, length: 1}, nil

		case r == '}':
			l.c.advance()
			return token{kind: tokRBrace, offset: start, length: 1}, nil

		case r == '#':
			l.c.advance()
			return l.scanLineComment(start)

		case l.opts.CStyleComments && r == '/':
			r2, _ := l.c.peekAt(1)
			if r2 == '/' {
				l.c.advance()
				l.c.advance()
				return l.scanLineComment(start)
			}
			if r2 == '*' {
				return l.scanBlockComment()
			}
			return l.scanBareArgument()

		case r == '"' || r == '\'':
			return l.scanQuoted(r)

		case l.opts.ExpressionArguments && r == '(':
			return l.scanExpression()

		default:
			if pn, ok := l.matchPunctuatorArgument(); ok {
				l.c.pos += len(pn)
				return token{kind: tokArgPunctuator, text: pn, offset: start, length: len(pn)}, nil
			}
			if isForbiddenControl(r) {
				return token{}, newParseError(ControlCharacter, start, "control character U+%04X not allowed here", r)
			}
			if !isArgumentRune(r) {
				return token{}, newParseError(ControlCharacter, start, "unexpected character %q", r)
			}
			return l.scanBareArgument()
		}
	}
}

func (l *lexer) matchPunctuatorArgument() (string, bool) {
	if len(l.opts.PunctuatorArguments) == 0 {
		return "", false
	}
	rest := l.c.src[l.c.pos:]
	var best string
	for _, p := range l.opts.PunctuatorArguments {
		if strings.HasPrefix(string(rest), p) && len(p) > len(best) {
			best = p
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// skipHorizontalWhitespace consumes runs of horizontal whitespace. It
// does not consume line terminators, which are meaningful (TERM).
func (l *lexer) skipHorizontalWhitespace() error {
	for {
		r, _, err := l.c.peek()
		if err != nil {
			return err
		}
		if l.c.eof() || !isHorizontalWhitespace(r) {
			return nil
		}
		l.c.advance()
	}
}

// consumeLineTerminator consumes one line terminator, treating CRLF as
// a single unit.
func (l *lexer) consumeLineTerminator() error {
	r, err := l.c.advance()
	if err != nil {
		return err
	}
	if r == '\r' {
		if next, _, _ := l.c.peek(); next == '\n' {
			l.c.advance()
		}
	}
	return nil
}

// tryTopLevelLineContinuation checks whether the backslash at the
// cursor begins a line continuation (backslash immediately followed by a
// line terminator) occurring *between* tokens (i.e. not yet inside a
// bare argument). If so it consumes the backslash and the line
// terminator and returns true. If the backslash is followed by EOF, that
// is EscapeAtEOF; if the line terminator it escapes is followed by EOF,
// that is DanglingContinuation. Otherwise it returns false, leaving the
// cursor untouched so the caller can treat '\' as the start of an
// escaped bare argument.
func (l *lexer) tryTopLevelLineContinuation() (bool, error) {
	r2, w2 := l.c.peekAt(1)
	if w2 == 0 {
		return false, newParseError(EscapeAtEOF, l.c.offset(), "backslash at end of input")
	}
	if !isLineTerminatorRune(r2) {
		return false, nil
	}
	l.c.advance() // consume '\'
	if err := l.consumeLineTerminator(); err != nil {
		return false, err
	}
	if l.c.eof() {
		return false, newParseError(DanglingContinuation, l.c.offset(), "line continuation at end of input")
	}
	return true, nil
}

// scanLineComment scans a line comment's content up to (but not
// including) the next line terminator or EOF. The caller has already
// consumed the introducer ("#" or "//"); start is the offset of the
// introducer's first byte.
func (l *lexer) scanLineComment(start int) (token, error) {
	contentStart := l.c.offset()
	for {
		r, _, err := l.c.peek()
		if err != nil {
			return token{}, err
		}
		if l.c.eof() || isLineTerminatorRune(r) {
			break
		}
		l.c.advance()
	}
	text := string(l.c.src[contentStart:l.c.offset()])
	return token{kind: tokCommentLine, text: text, offset: start, length: l.c.offset() - start}, nil
}

func (l *lexer) scanBlockComment() (token, error) {
	start := l.c.offset()
	l.c.advance() // '/'
	l.c.advance() // '*'
	contentStart := l.c.offset()
	for {
		if l.c.eof() {
			return token{}, newParseError(UnterminatedComment, start, "unterminated block comment")
		}
		r, _, err := l.c.peek()
		if err != nil {
			return token{}, err
		}
		if r == '*' {
			if r2, _ := l.c.peekAt(1); r2 == '/' {
				contentEnd := l.c.offset()
				l.c.advance()
				l.c.advance()
				text := string(l.c.src[contentStart:contentEnd])
				return token{kind: tokCommentBlock, text: text, offset: start, length: l.c.offset() - start}, nil
			}
		}
		l.c.advance()
	}
}

// scanBareArgument scans the maximal run of argument-class code points,
// processing escapes as it goes. Grounded on caddyfile/lexer.go's escape
// handling in next(), generalized to Confetti's explicit escapable set.
func (l *lexer) scanBareArgument() (token, error) {
	start := l.c.offset()
	var b strings.Builder

	for {
		if l.c.eof() {
			break
		}
		r, _, err := l.c.peek()
		if err != nil {
			return token{}, err
		}

		if r == '\\' {
			r2, w2 := l.c.peekAt(1)
			if w2 == 0 {
				return token{}, newParseError(EscapeAtEOF, l.c.offset(), "backslash at end of input")
			}
			if isLineTerminatorRune(r2) {
				l.c.advance() // '\'
				if err := l.consumeLineTerminator(); err != nil {
					return token{}, err
				}
				if l.c.eof() {
					return token{}, newParseError(DanglingContinuation, l.c.offset(), "line continuation at end of input")
				}
				continue
			}
			if isEscapableRune(r2) {
				l.c.advance() // '\'
				l.c.advance() // escaped rune
				b.WriteRune(r2)
				continue
			}
			return token{}, newParseError(BadEscape, l.c.offset(), "invalid escape sequence \\%c", r2)
		}

		if !isArgumentRune(r) {
			break
		}
		l.c.advance()
		b.WriteRune(r)
	}

	return token{kind: tokArgBare, text: b.String(), offset: start, length: l.c.offset() - start}, nil
}

// scanQuoted scans a singly- or triple-quoted argument opened by quote
// rune q ('"' or '\'').
func (l *lexer) scanQuoted(q rune) (token, error) {
	start := l.c.offset()
	l.c.advance() // consume opening quote

	// Detect triple-quote: two more of the same quote rune immediately
	// follow. Scan greedily so the longer form always wins the tie-break.
	if n1, w1 := l.c.peekAt(0); w1 > 0 && n1 == q {
		if n2, w2 := l.c.peekAt(int(w1)); w2 > 0 && n2 == q {
			return l.scanTripleQuoted(q, start)
		}
	}

	var b strings.Builder
	for {
		if l.c.eof() {
			return token{}, newParseError(UnterminatedQuote, start, "unterminated quoted argument")
		}
		r, _, err := l.c.peek()
		if err != nil {
			return token{}, err
		}
		if r == q {
			l.c.advance()
			return token{kind: tokArgQuoted, text: b.String(), offset: start, length: l.c.offset() - start}, nil
		}
		if r == '\\' {
			r2, w2 := l.c.peekAt(1)
			if w2 == 0 {
				return token{}, newParseError(EscapeAtEOF, l.c.offset(), "backslash at end of input")
			}
			if isLineTerminatorRune(r2) {
				l.c.advance()
				if err := l.consumeLineTerminator(); err != nil {
					return token{}, err
				}
				if l.c.eof() {
					return token{}, newParseError(DanglingContinuation, l.c.offset(), "line continuation at end of input")
				}
				continue
			}
			if isEscapableRune(r2) || r2 == q {
				l.c.advance()
				l.c.advance()
				b.WriteRune(r2)
				continue
			}
			return token{}, newParseError(BadEscape, l.c.offset(), "invalid escape sequence \\%c", r2)
		}
		if isLineTerminatorRune(r) {
			return token{}, newParseError(UnterminatedQuote, l.c.offset(), "line terminator inside quoted argument")
		}
		if isForbiddenControl(r) {
			return token{}, newParseError(ControlCharacter, l.c.offset(), "control character U+%04X not allowed here", r)
		}
		l.c.advance()
		b.WriteRune(r)
	}
}

// scanTripleQuoted scans verbatim content (no escape processing, no
// line-continuation semantics) until the closing triple sequence.
func (l *lexer) scanTripleQuoted(q rune, start int) (token, error) {
	l.c.advance() // 2nd quote
	l.c.advance() // 3rd quote

	var b strings.Builder
	for {
		if l.c.eof() {
			return token{}, newParseError(UnterminatedTriple, start, "unterminated triple-quoted argument")
		}
		r, _, err := l.c.peek()
		if err != nil {
			return token{}, err
		}
		if r == q {
			if n1, w1 := l.c.peekAt(1); w1 > 0 && n1 == q {
				if n2, w2 := l.c.peekAt(1 + int(w1)); w2 > 0 && n2 == q {
					l.c.advance()
					l.c.advance()
					l.c.advance()
					return token{kind: tokArgTriple, text: b.String(), offset: start, length: l.c.offset() - start}, nil
				}
			}
		}
		l.c.advance()
		b.WriteRune(r)
	}
}

// scanExpression scans a "(...)" expression argument verbatim, with
// balanced-parenthesis tracking (expression_arguments extension).
func (l *lexer) scanExpression() (token, error) {
	start := l.c.offset()
	depth := 0
	for {
		if l.c.eof() {
			return token{}, newParseError(UnbalancedExpression, start, "unbalanced expression argument")
		}
		r, _, err := l.c.peek()
		if err != nil {
			return token{}, err
		}
		l.c.advance()
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				text := string(l.c.src[start+1 : l.c.offset()-1])
				return token{kind: tokArgExpression, text: text, offset: start, length: l.c.offset() - start}, nil
			}
		}
	}
}
