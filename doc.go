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

// Package confetti implements the Confetti configuration language: a
// line-oriented, nginx/HCL-style directive format. A Confetti document is
// a tree of directives, each directive a non-empty sequence of arguments
// optionally followed by a brace-delimited block of child directives.
//
// Parse turns a byte buffer into a Unit: an ordered tree of Directive
// nodes plus a flat, source-ordered list of Comments. Format renders a
// parsed Unit back into canonical Confetti text.
//
// Parsing is synchronous, single-threaded per call, and free of package-
// level mutable state: two goroutines calling Parse on independent
// inputs never interfere with one another.
package confetti
