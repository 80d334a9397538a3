package confetti

// Unit is the root of a parse: an ordered sequence of top-level
// Directives plus a flat, source-ordered sequence of every Comment
// encountered. Comments are not embedded in the directive tree; callers
// that need to correlate a comment with nearby directives must do so
// themselves using byte offsets.
//
// A Unit is immutable once returned by Parse. The Unit owns its
// directives; each Directive owns its own arguments and children. There
// are no shared-ownership edges or back-references anywhere in the tree.
type Unit struct {
	Directives []*Directive
	Comments   []Comment
}

// Directive is one logical statement: a non-empty ordered sequence of
// Arguments, plus an ordered (possibly empty) sequence of child
// Directives. A directive with no children was written either without a
// "{...}" block or with an empty one; the two are not distinguished.
type Directive struct {
	Arguments     []Argument
	Subdirectives []*Directive
}

// Name returns the text of the directive's first argument, or the empty
// string for a zero-value Directive. By convention this is the "key" of
// the directive (its directive name).
func (d *Directive) Name() string {
	if len(d.Arguments) == 0 {
		return ""
	}
	return d.Arguments[0].Value
}

// Args returns the argument values as plain strings, including the
// directive name at index 0.
func (d *Directive) Args() []string {
	out := make([]string, len(d.Arguments))
	for i, a := range d.Arguments {
		out[i] = a.Value
	}
	return out
}

// Argument is one token in a directive: bare, quoted, or triple-quoted.
// Value is the logical content after escape and quote processing. Offset
// and Length describe the half-open byte range [Offset, Offset+Length)
// of the argument's *syntactic* form (including quotes) in the original
// source, for error messages and tooling.
type Argument struct {
	Value  string
	Offset int
	Length int
}

// Comment is a single comment's text (without its "#", "//", or
// "/*"..."*/" introducer/delimiters) plus its byte offset.
type Comment struct {
	Text   string
	Offset int
}
