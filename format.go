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

// Format renders u as canonical Confetti text: one directive per line, 4
// spaces of indentation per nesting level, LF line endings, and scalar
// arguments quoted only when necessary. Unlike
// caddyconfig/caddyfile.Format, which re-lexes raw source in a single
// pass to preserve as much of the original token stream as possible,
// this operates directly on the already-parsed tree: Confetti's dump
// path is defined over typed/AST values rather than over source text,
// so there is no original formatting left to preserve.
func Format(u *Unit) []byte {
	var b strings.Builder
	for _, d := range u.Directives {
		writeDirective(&b, d, 0)
	}
	return []byte(b.String())
}

func writeDirective(b *strings.Builder, d *Directive, depth int) {
	writeIndent(b, depth)
	for i, a := range d.Arguments {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(quoteArgument(a.Value))
	}
	if len(d.Subdirectives) > 0 {
		b.WriteString(" {\n")
		for _, child := range d.Subdirectives {
			writeDirective(b, child, depth+1)
		}
		writeIndent(b, depth)
		b.WriteString("}\n")
	} else {
		b.WriteByte('\n')
	}
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("    ")
	}
}

// quoteArgument renders one argument value the way the dump path does:
// bare when it needs no protection, double-quoted with escapes when it
// contains whitespace or a punctuator but no line terminator, and
// triple-quoted verbatim when it contains a line terminator (the only
// quoting style that can carry one).
func quoteArgument(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, "\n\r\u0085\u2028\u2029") {
		return `"""` + s + `"""`
	}
	if isBareSafe(s) {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// isBareSafe reports whether s can be emitted as a bare argument
// unchanged: every code point must be argument-class, i.e. exactly what
// the lexer's scanBareArgument would accept without any escape.
func isBareSafe(s string) bool {
	for _, r := range s {
		if !isArgumentRune(r) {
			return false
		}
	}
	return true
}

// CanonicalText renders u in the flat comparison format used by the
// conformance suite: each directive on one line as
// "<arg1> <arg2> …", with any child block wrapped "[ … ]", one top-level
// directive per output line. It is distinct from Format, which produces
// human-oriented, re-parseable Confetti source; CanonicalText exists
// purely so tests can diff two parses without caring about quoting
// style, grounded on run_test_suite.py's format_for_comparison and
// generate_expected_output.
func CanonicalText(u *Unit) string {
	lines := make([]string, len(u.Directives))
	for i, d := range u.Directives {
		lines[i] = canonicalDirective(d)
	}
	return strings.Join(lines, "\n")
}

func canonicalDirective(d *Directive) string {
	parts := make([]string, len(d.Arguments))
	for i, a := range d.Arguments {
		parts[i] = "<" + a.Value + ">"
	}
	argsStr := strings.Join(parts, " ")
	if len(d.Subdirectives) == 0 {
		return argsStr
	}
	children := make([]string, len(d.Subdirectives))
	for i, c := range d.Subdirectives {
		children[i] = canonicalDirective(c)
	}
	return argsStr + " [" + strings.Join(children, " ") + "]"
}
