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

import "fmt"

// ErrorKind discriminates the kind of a ParseError as a closed set of
// string constants rather than an error class hierarchy.
type ErrorKind string

// The ParseError kinds.
const (
	MalformedEncoding      ErrorKind = "malformed_encoding"
	ControlCharacter       ErrorKind = "control_character"
	BadEscape              ErrorKind = "bad_escape"
	EscapeAtEOF            ErrorKind = "escape_at_eof"
	DanglingContinuation   ErrorKind = "dangling_continuation"
	UnterminatedQuote      ErrorKind = "unterminated_quote"
	UnterminatedTriple     ErrorKind = "unterminated_triple_quote"
	UnterminatedComment    ErrorKind = "unterminated_comment"
	UnbalancedExpression   ErrorKind = "unbalanced_expression"
	UnexpectedOpeningBrace ErrorKind = "unexpected_opening_brace"
	UnexpectedClosingBrace ErrorKind = "unexpected_closing_brace"
	UnclosedBlock          ErrorKind = "unclosed_block"
	NestingTooDeep         ErrorKind = "nesting_too_deep"
)

// ParseError is returned by Parse when the input is ill-formed. It
// carries the byte offset of the offending code point so callers can
// derive line/column for diagnostics.
type ParseError struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("confetti: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

// Is supports errors.Is(err, someParseError) comparisons by Kind, so
// callers can write errors.Is(err, &confetti.ParseError{Kind: confetti.UnclosedBlock})
// without caring about Offset/Message.
func (e *ParseError) Is(target error) bool {
	other, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newParseError(kind ErrorKind, offset int, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// Sentinel *kind-only* errors for errors.Is convenience, grounded on the
// same idea as the WrapErr/Errf pair in caddyfile/dispenser.go but
// upgraded to a typed Kind since Confetti's conformance suite (unlike
// Caddyfile's) distinguishes error kinds, not just pass/fail.
var (
	ErrMalformedEncoding      = &ParseError{Kind: MalformedEncoding}
	ErrControlCharacter       = &ParseError{Kind: ControlCharacter}
	ErrBadEscape              = &ParseError{Kind: BadEscape}
	ErrEscapeAtEOF            = &ParseError{Kind: EscapeAtEOF}
	ErrDanglingContinuation   = &ParseError{Kind: DanglingContinuation}
	ErrUnterminatedQuote      = &ParseError{Kind: UnterminatedQuote}
	ErrUnterminatedTriple     = &ParseError{Kind: UnterminatedTriple}
	ErrUnterminatedComment    = &ParseError{Kind: UnterminatedComment}
	ErrUnbalancedExpression   = &ParseError{Kind: UnbalancedExpression}
	ErrUnexpectedOpeningBrace = &ParseError{Kind: UnexpectedOpeningBrace}
	ErrUnexpectedClosingBrace = &ParseError{Kind: UnexpectedClosingBrace}
	ErrUnclosedBlock          = &ParseError{Kind: UnclosedBlock}
	ErrNestingTooDeep         = &ParseError{Kind: NestingTooDeep}
)
