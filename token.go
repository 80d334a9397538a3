package confetti

// tokenKind is a closed tag for lexer output, a sum type expressed as
// typed constants. It generalizes caddyconfig/caddyfile.Token, which has
// no Kind field because Caddyfile syntax only has one kind of word
// token; Confetti's multiple quoting/escaping modes and brace/terminator
// punctuation require the lexer to report what it found.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLBrace
	tokRBrace
	tokTerm
	tokArgBare
	tokArgQuoted
	tokArgTriple
	tokArgExpression
	tokArgPunctuator
	tokCommentLine
	tokCommentBlock
)

// token is the unexported unit the lexer hands to the parser one at a
// time through a straightforward pull interface.
type token struct {
	kind   tokenKind
	text   string // decoded/escaped value for ARG_* kinds; raw text for comments
	offset int    // syntactic start, including quotes/braces
	length int    // syntactic byte length, including quotes/braces
}
