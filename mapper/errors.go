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

package mapper

import "fmt"

// ErrorKind discriminates a mapping failure, kept distinct from the
// parser's ErrorKind because the two families have no overlapping
// members.
type ErrorKind string

const (
	UnknownField    ErrorKind = "unknown_field"
	MissingField    ErrorKind = "missing_field"
	DuplicateField  ErrorKind = "duplicate_field"
	TypeMismatch    ErrorKind = "type_mismatch"
	EnumOutOfRange  ErrorKind = "enum_out_of_range"
	ExpectedBlock   ErrorKind = "expected_block"
	UnexpectedBlock ErrorKind = "unexpected_block"
	BadScalar       ErrorKind = "bad_scalar"
	RootMismatch    ErrorKind = "root_mismatch"
)

// Error is returned by Load and Dump. Path is a dotted field path (e.g.
// "database.port") identifying where in the target type the problem
// occurred; it is empty for root-level errors such as RootMismatch.
type Error struct {
	Kind    ErrorKind
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("confetti mapper: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("confetti mapper: %s at %q: %s", e.Kind, e.Path, e.Message)
}

func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newError(kind ErrorKind, path, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
