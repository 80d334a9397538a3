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

	confetti "github.com/bobuk/confetti-go"
)

// Dump renders source, a struct value (or pointer to one) previously
// produced by Load or built by hand, as canonical Confetti text.
// Feeding the result back through Load must reproduce a
// structurally equal value; Dump builds an intermediate *confetti.Unit
// and hands it to confetti.Format rather than assembling text directly,
// so the two halves of the mapper never drift from the parser's own
// idea of canonical form.
func Dump(source any) ([]byte, error) {
	rv := reflect.ValueOf(source)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, newError(TypeMismatch, "", "Dump source must not be nil")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, newError(TypeMismatch, "", "Dump source must be a struct or pointer to struct")
	}
	if !rv.CanAddr() {
		// A struct passed by value is not addressable; enum fields are
		// read through Addr(), so work on an addressable copy.
		addressable := reflect.New(rv.Type()).Elem()
		addressable.Set(rv)
		rv = addressable
	}

	desc, err := describe(rv.Type())
	if err != nil {
		return nil, err
	}

	root := &confetti.Directive{
		Arguments: []confetti.Argument{{Value: desc.DirectiveName}},
	}
	children, err := dumpStruct(rv, desc, "")
	if err != nil {
		return nil, err
	}
	root.Subdirectives = children

	return confetti.Format(&confetti.Unit{Directives: []*confetti.Directive{root}}), nil
}

func dumpStruct(rv reflect.Value, desc *Descriptor, path string) ([]*confetti.Directive, error) {
	var out []*confetti.Directive

	for _, field := range desc.Fields {
		fv := rv.FieldByIndex(field.Index)
		fieldPath := joinPath(path, field.Name)

		switch field.Kind {
		case KindScalar:
			d, err := dumpScalarDirective(field.Name, field.Scalar, fv, fieldPath)
			if err != nil {
				return nil, err
			}
			out = append(out, d)

		case KindEnum:
			d, err := dumpEnumDirective(field.Name, fv, fieldPath)
			if err != nil {
				return nil, err
			}
			out = append(out, d)

		case KindStruct:
			children, err := dumpStruct(fv, field.Elem, fieldPath)
			if err != nil {
				return nil, err
			}
			out = append(out, &confetti.Directive{
				Arguments:     []confetti.Argument{{Value: field.Name}},
				Subdirectives: children,
			})

		case KindOption:
			if fv.IsNil() {
				continue
			}
			d, err := dumpLeafDirective(field.Name, field, fv.Elem(), fieldPath)
			if err != nil {
				return nil, err
			}
			out = append(out, d)

		case KindList:
			for i := 0; i < fv.Len(); i++ {
				d, err := dumpLeafDirective(field.Name, field, fv.Index(i), fieldPath)
				if err != nil {
					return nil, err
				}
				out = append(out, d)
			}

		case KindMap:
			iter := fv.MapRange()
			for iter.Next() {
				d, err := dumpMapEntry(field.Name, field, iter.Key().String(), iter.Value(), fieldPath)
				if err != nil {
					return nil, err
				}
				out = append(out, d)
			}
		}
	}

	return out, nil
}

func dumpLeafDirective(name string, field Field, value reflect.Value, path string) (*confetti.Directive, error) {
	switch field.ElemKind {
	case KindStruct:
		children, err := dumpStruct(value, field.Elem, path)
		if err != nil {
			return nil, err
		}
		return &confetti.Directive{
			Arguments:     []confetti.Argument{{Value: name}},
			Subdirectives: children,
		}, nil
	case KindEnum:
		return dumpEnumDirective(name, value, path)
	default:
		return dumpScalarDirective(name, field.Scalar, value, path)
	}
}

func dumpScalarDirective(name string, st ScalarType, fv reflect.Value, path string) (*confetti.Directive, error) {
	text, err := scalarText(st, fv, path)
	if err != nil {
		return nil, err
	}
	return &confetti.Directive{
		Arguments: []confetti.Argument{{Value: name}, {Value: text}},
	}, nil
}

func dumpEnumDirective(name string, fv reflect.Value, path string) (*confetti.Directive, error) {
	e, ok := fv.Addr().Interface().(Enum)
	if !ok {
		return nil, newError(TypeMismatch, path, "field type does not implement Enum")
	}
	return &confetti.Directive{
		Arguments: []confetti.Argument{{Value: name}, {Value: e.String()}},
	}, nil
}

func dumpMapEntry(name string, field Field, key string, value reflect.Value, path string) (*confetti.Directive, error) {
	entryPath := path + "[" + key + "]"
	if field.ElemKind == KindStruct {
		children, err := dumpStruct(value, field.Elem, entryPath)
		if err != nil {
			return nil, err
		}
		return &confetti.Directive{
			Arguments:     []confetti.Argument{{Value: name}, {Value: key}},
			Subdirectives: children,
		}, nil
	}
	if field.ElemKind == KindEnum {
		// value comes from reflect.Value.MapRange, which is never
		// addressable; copy it somewhere addressable before taking its
		// Addr() the way dumpEnumDirective needs to.
		addressable := reflect.New(value.Type()).Elem()
		addressable.Set(value)
		d, err := dumpEnumDirective(name, addressable, entryPath)
		if err != nil {
			return nil, err
		}
		d.Arguments = []confetti.Argument{{Value: name}, {Value: key}, d.Arguments[1]}
		return d, nil
	}
	text, err := scalarText(field.Scalar, value, entryPath)
	if err != nil {
		return nil, err
	}
	return &confetti.Directive{
		Arguments: []confetti.Argument{{Value: name}, {Value: key}, {Value: text}},
	}, nil
}

func scalarText(st ScalarType, fv reflect.Value, path string) (string, error) {
	switch st {
	case ScalarString:
		return fv.String(), nil
	case ScalarBool:
		if fv.Bool() {
			return "true", nil
		}
		return "false", nil
	case ScalarInt:
		return strconv.FormatInt(fv.Int(), 10), nil
	case ScalarFloat:
		return strconv.FormatFloat(fv.Float(), 'g', -1, 64), nil
	}
	return "", newError(TypeMismatch, path, "unsupported scalar type")
}
