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

// Parse parses src as Confetti source and returns the resulting Unit, or
// a *ParseError describing the first problem encountered. Parsing is
// fail-fast: no partial AST is returned on failure.
//
// Parse holds no package-level state and may be called concurrently from
// multiple goroutines on independent inputs without interference.
func Parse(src []byte, opts Options) (*Unit, error) {
	p := &parser{lex: newLexer(src, opts), opts: opts}
	if err := p.advance(); err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	return &Unit{Directives: directives, Comments: p.comments}, nil
}

// parser is a recursive-descent parser built directly on the pull-based
// lexer, grounded on caddyconfig/caddyfile/parse.go's directive/block
// recursion (directives()/directive()/blockContents()), generalized from
// Caddy's two-level address+segment grammar to Confetti's uniform
// directive tree, and cross-checked against
// other_examples/f27bb4e1_demen1n-confetti__parser.go.go's
// parseDirectives/parseDirective/parseBlock for the terminator and brace
// tie-break rules.
type parser struct {
	lex      *lexer
	opts     Options
	cur      token
	comments []Comment
	depth    int
}

// advance loads the next non-comment token into p.cur, appending any
// comments encountered to p.comments in source order. Comments never
// affect grammar.
func (p *parser) advance() error {
	for {
		tok, err := p.lex.next()
		if err != nil {
			return err
		}
		if tok.kind == tokCommentLine || tok.kind == tokCommentBlock {
			p.comments = append(p.comments, Comment{Text: tok.text, Offset: tok.offset})
			continue
		}
		p.cur = tok
		return nil
	}
}

func isArgumentToken(k tokenKind) bool {
	switch k {
	case tokArgBare, tokArgQuoted, tokArgTriple, tokArgExpression, tokArgPunctuator:
		return true
	}
	return false
}

// parseDirectives parses a sequence of directives. If insideBlock is
// true, it expects to be terminated by a matching RBRACE (consuming it)
// and treats EOF as UnclosedBlock; otherwise it runs to EOF and treats a
// stray RBRACE as UnexpectedClosingBrace.
func (p *parser) parseDirectives(insideBlock bool) ([]*Directive, error) {
	var directives []*Directive

	for {
		for p.cur.kind == tokTerm {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}

		switch {
		case p.cur.kind == tokEOF:
			if insideBlock {
				return nil, newParseError(UnclosedBlock, p.cur.offset, "unexpected end of input, expected '}'")
			}
			return directives, nil

		case p.cur.kind == tokRBrace:
			if insideBlock {
				if err := p.advance(); err != nil {
					return nil, err
				}
				return directives, nil
			}
			return nil, newParseError(UnexpectedClosingBrace, p.cur.offset, "unexpected '}' with no matching '{'")

		case p.cur.kind == tokLBrace:
			return nil, newParseError(UnexpectedOpeningBrace, p.cur.offset, "unexpected '{', expecting an argument")

		default:
			d, err := p.parseOneDirective()
			if err != nil {
				return nil, err
			}
			directives = append(directives, d)
		}
	}
}

// parseOneDirective parses a single directive. p.cur must already be an
// argument-start token when this is called.
func (p *parser) parseOneDirective() (*Directive, error) {
	d := &Directive{}

	for isArgumentToken(p.cur.kind) {
		d.Arguments = append(d.Arguments, Argument{
			Value:  p.cur.text,
			Offset: p.cur.offset,
			Length: p.cur.length,
		})
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if p.cur.kind == tokLBrace {
		p.depth++
		if p.depth > p.opts.maxDepth() {
			return nil, newParseError(NestingTooDeep, p.cur.offset, "block nesting exceeds maximum depth of %d", p.opts.maxDepth())
		}
		if err := p.advance(); err != nil { // consume '{'
			return nil, err
		}
		children, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		d.Subdirectives = children
		p.depth--

		if p.cur.kind == tokTerm {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		return d, nil
	}

	if p.cur.kind == tokTerm {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return d, nil
	}

	// Implicit termination before RBRACE or EOF.
	return d, nil
}
