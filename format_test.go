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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCanonicalTextFlatDirective(t *testing.T) {
	unit, err := Parse([]byte("a b c\n"), Options{})
	require.NoError(t, err)
	require.Equal(t, "<a> <b> <c>", CanonicalText(unit))
}

func TestCanonicalTextWithChildren(t *testing.T) {
	unit, err := Parse([]byte("server {\n host h\n port 80\n}\n"), Options{})
	require.NoError(t, err)
	require.Equal(t, "<server> [<host> <h> <port> <80>]", CanonicalText(unit))
}

func TestFormatRoundTrip(t *testing.T) {
	src := []byte(`db "primary" { url "postgres://u:p@h/d" }`)
	unit, err := Parse(src, Options{})
	require.NoError(t, err)

	out := Format(unit)
	reparsed, err := Parse(out, Options{})
	require.NoError(t, err)

	if diff := cmp.Diff(CanonicalText(unit), CanonicalText(reparsed)); diff != "" {
		t.Fatalf("round trip changed structure (-want +got):\n%s", diff)
	}
}

func TestFormatQuotesWhitespaceContainingArgument(t *testing.T) {
	unit := &Unit{Directives: []*Directive{
		{Arguments: []Argument{{Value: "name"}, {Value: "has space"}}},
	}}
	out := string(Format(unit))
	require.Equal(t, "name \"has space\"\n", out)
}

func TestFormatEmptyArgumentIsQuoted(t *testing.T) {
	unit := &Unit{Directives: []*Directive{
		{Arguments: []Argument{{Value: "name"}, {Value: ""}}},
	}}
	out := string(Format(unit))
	require.Equal(t, "name \"\"\n", out)
}

func TestFormatTripleQuotesMultilineArgument(t *testing.T) {
	unit := &Unit{Directives: []*Directive{
		{Arguments: []Argument{{Value: "x"}, {Value: "a\nb"}}},
	}}
	out := string(Format(unit))
	require.Equal(t, "x \"\"\"a\nb\"\"\"\n", out)
}

func TestFormatIndentsNestedBlocks(t *testing.T) {
	unit, err := Parse([]byte("a { b { c } }\n"), Options{})
	require.NoError(t, err)
	require.Equal(t, "a {\n    b {\n        c\n    }\n}\n", string(Format(unit)))
}
