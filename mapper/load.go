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

import (
	"reflect"
	"strconv"
	"strings"

	confetti "github.com/bobuk/confetti-go"
)

// Load binds u to target, which must be a non-nil pointer to a struct.
// The AST's single top-level directive must name the target type's
// directive; its block supplies field values per the descriptor built
// by reflection from target's struct tags.
func Load(u *confetti.Unit, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return newError(TypeMismatch, "", "Load target must be a non-nil pointer to a struct")
	}

	desc, err := describe(rv.Elem().Type())
	if err != nil {
		return err
	}

	if len(u.Directives) != 1 {
		return newError(RootMismatch, "", "expected exactly one top-level directive, found %d", len(u.Directives))
	}
	root := u.Directives[0]
	if root.Name() != desc.DirectiveName {
		return newError(RootMismatch, "", "expected root directive %q, found %q", desc.DirectiveName, root.Name())
	}

	return loadStruct(rv.Elem(), desc, root.Subdirectives, "")
}

func loadStruct(rv reflect.Value, desc *Descriptor, block []*confetti.Directive, path string) error {
	counts := make(map[string]int, len(block))

	for _, d := range block {
		key := d.Name()
		field, ok := desc.lookup(key)
		if !ok {
			return newError(UnknownField, joinPath(path, key), "no such field %q", key)
		}
		counts[key]++
		fieldPath := joinPath(path, key)
		fv := rv.FieldByIndex(field.Index)

		switch field.Kind {
		case KindScalar:
			if counts[key] > 1 {
				return newError(DuplicateField, fieldPath, "field %q may only appear once", key)
			}
			if len(d.Subdirectives) > 0 {
				return newError(UnexpectedBlock, fieldPath, "field %q does not take a block", key)
			}
			if err := setScalarField(fv, field.Scalar, d, fieldPath); err != nil {
				return err
			}

		case KindEnum:
			if counts[key] > 1 {
				return newError(DuplicateField, fieldPath, "field %q may only appear once", key)
			}
			if len(d.Subdirectives) > 0 {
				return newError(UnexpectedBlock, fieldPath, "field %q does not take a block", key)
			}
			if err := setEnumField(fv, d, fieldPath); err != nil {
				return err
			}

		case KindStruct:
			if counts[key] > 1 {
				return newError(DuplicateField, fieldPath, "field %q may only appear once", key)
			}
			if err := loadStruct(fv, field.Elem, d.Subdirectives, fieldPath); err != nil {
				return err
			}

		case KindOption:
			if counts[key] > 1 {
				return newError(DuplicateField, fieldPath, "field %q may only appear once", key)
			}
			elem := reflect.New(fv.Type().Elem()).Elem()
			if err := setLeaf(elem, field, d, fieldPath); err != nil {
				return err
			}
			ptr := reflect.New(fv.Type().Elem())
			ptr.Elem().Set(elem)
			fv.Set(ptr)

		case KindList:
			if err := appendListField(fv, field, d, fieldPath); err != nil {
				return err
			}

		case KindMap:
			if err := setMapField(fv, field, d, fieldPath); err != nil {
				return err
			}
		}
	}

	for _, field := range desc.Fields {
		if field.Required && counts[field.Name] == 0 {
			return newError(MissingField, joinPath(path, field.Name), "required field %q is missing", field.Name)
		}
	}

	return nil
}

// setLeaf dispatches to the element kind carried by field.ElemKind, used
// for the wrapped value inside option/list/map fields.
func setLeaf(elem reflect.Value, field Field, d *confetti.Directive, path string) error {
	switch field.ElemKind {
	case KindScalar:
		return setScalarField(elem, field.Scalar, d, path)
	case KindEnum:
		return setEnumField(elem, d, path)
	case KindStruct:
		return loadStruct(elem, field.Elem, d.Subdirectives, path)
	default:
		return newError(TypeMismatch, path, "unsupported element kind")
	}
}

func setScalarField(fv reflect.Value, st ScalarType, d *confetti.Directive, path string) error {
	args := d.Arguments[1:]
	if len(args) != 1 {
		return newError(TypeMismatch, path, "expected exactly one argument, got %d", len(args))
	}
	return setScalar(fv, st, args[0].Value, path)
}

func setScalar(fv reflect.Value, st ScalarType, s string, path string) error {
	switch st {
	case ScalarString:
		fv.SetString(s)
		return nil
	case ScalarBool:
		b, ok := parseBool(s)
		if !ok {
			return newError(BadScalar, path, "invalid boolean value %q", s)
		}
		fv.SetBool(b)
		return nil
	case ScalarInt:
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return newError(BadScalar, path, "invalid integer value %q", s)
		}
		fv.SetInt(n)
		return nil
	case ScalarFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return newError(BadScalar, path, "invalid float value %q", s)
		}
		fv.SetFloat(f)
		return nil
	}
	return newError(TypeMismatch, path, "unsupported scalar type")
}

// parseBool accepts true|false|yes|no|on|off|1|0, case-insensitively.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}

func setEnumField(fv reflect.Value, d *confetti.Directive, path string) error {
	args := d.Arguments[1:]
	if len(args) != 1 {
		return newError(TypeMismatch, path, "expected exactly one argument, got %d", len(args))
	}
	return setEnum(fv, args[0].Value, path)
}

func setEnum(fv reflect.Value, value string, path string) error {
	e, ok := fv.Addr().Interface().(Enum)
	if !ok {
		return newError(TypeMismatch, path, "field type does not implement Enum")
	}
	for _, member := range e.ConfettiMembers() {
		if strings.EqualFold(member, value) {
			return e.SetConfettiMember(member)
		}
	}
	return newError(EnumOutOfRange, path, "%q is not a valid member", value)
}

// appendListField handles list(K) fields: each occurrence of the
// directive key contributes element(s) to the slice. For list(string),
// an occurrence supplying exactly one argument that contains a comma is
// split on "," with surrounding whitespace trimmed around each piece;
// comma-splitting is applied per-occurrence rather than only when the
// field has a single occurrence overall (see DESIGN.md).
func appendListField(fv reflect.Value, field Field, d *confetti.Directive, path string) error {
	args := d.Arguments[1:]

	if field.ElemKind == KindStruct {
		elem := reflect.New(fv.Type().Elem()).Elem()
		if err := loadStruct(elem, field.Elem, d.Subdirectives, path); err != nil {
			return err
		}
		fv.Set(reflect.Append(fv, elem))
		return nil
	}

	if field.ElemKind == KindScalar && field.Scalar == ScalarString && len(args) == 1 && strings.Contains(args[0].Value, ",") {
		for _, part := range strings.Split(args[0].Value, ",") {
			elem := reflect.New(fv.Type().Elem()).Elem()
			elem.SetString(strings.TrimSpace(part))
			fv.Set(reflect.Append(fv, elem))
		}
		return nil
	}

	if len(args) != 1 {
		return newError(TypeMismatch, path, "expected exactly one argument, got %d", len(args))
	}
	elem := reflect.New(fv.Type().Elem()).Elem()
	if field.ElemKind == KindEnum {
		if err := setEnum(elem, args[0].Value, path); err != nil {
			return err
		}
	} else if err := setScalar(elem, field.Scalar, args[0].Value, path); err != nil {
		return err
	}
	fv.Set(reflect.Append(fv, elem))
	return nil
}

// setMapField handles map(string,V) fields: each occurrence
// contributes one entry; the second argument is the entry key, and the
// value derives from the remainder per V's kind.
func setMapField(fv reflect.Value, field Field, d *confetti.Directive, path string) error {
	if len(d.Arguments) < 2 {
		return newError(TypeMismatch, path, "map entry requires a key argument")
	}
	entryKey := d.Arguments[1].Value
	entryPath := path + "[" + entryKey + "]"

	if fv.IsNil() {
		fv.Set(reflect.MakeMap(fv.Type()))
	}

	elem := reflect.New(fv.Type().Elem()).Elem()
	switch field.ElemKind {
	case KindStruct:
		if err := loadStruct(elem, field.Elem, d.Subdirectives, entryPath); err != nil {
			return err
		}
	case KindEnum:
		if len(d.Arguments) != 3 {
			return newError(TypeMismatch, entryPath, "expected exactly one value argument")
		}
		if err := setEnum(elem, d.Arguments[2].Value, entryPath); err != nil {
			return err
		}
	default:
		if len(d.Arguments) != 3 {
			return newError(TypeMismatch, entryPath, "expected exactly one value argument")
		}
		if err := setScalar(elem, field.Scalar, d.Arguments[2].Value, entryPath); err != nil {
			return err
		}
	}

	fv.SetMapIndex(reflect.ValueOf(entryKey), elem)
	return nil
}
