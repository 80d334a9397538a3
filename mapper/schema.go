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

// Package mapper binds a confetti.Unit to a user-declared Go struct, and
// the reverse: a Go struct back to canonical Confetti text. It plays the
// role pyconfetti's @confetti dataclass decorator plays in
// original_source/examples/advanced_mapper_example.py, but built the
// idiomatic Go way: a reflect-driven schema descriptor derived from
// struct tags, cached per type the way encoding/json's cachedTypeFields
// is, rather than a decorator that rewrites the class at definition
// time.
package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// Kind discriminates how a field's Confetti representation maps to its
// Go type, a closed tag expressed as typed constants.
type Kind int

const (
	KindScalar Kind = iota
	KindEnum
	KindStruct
	KindOption
	KindList
	KindMap
)

// ScalarType names one of the four Confetti primitive types.
type ScalarType int

const (
	ScalarString ScalarType = iota
	ScalarBool
	ScalarInt
	ScalarFloat
)

// Enum is implemented by a field's Go type when that field should be
// treated as Kind == KindEnum. ConfettiMembers lists every accepted
// member spelling, in declaration order; SetConfettiMember receives the
// member spelling the mapper matched (case-insensitively) against the
// source argument, always one of the strings ConfettiMembers returned.
//
// A type implements this on a pointer receiver so SetConfettiMember can
// mutate it; the mapper only ever calls it through an addressable
// reflect.Value.
type Enum interface {
	ConfettiMembers() []string
	SetConfettiMember(member string) error
	String() string
}

// Named is implemented by a root struct type that wants a directive name
// other than its lowercased Go type name, mirroring pyconfetti's
// @confetti(name="db_pool").
type Named interface {
	ConfettiName() string
}

// Field is one entry of a Descriptor: a named slot plus how to read and
// write it via reflection. For a wrapper Kind (option/list/map), ElemKind
// names the kind of the wrapped value K in option(K), list(K), or
// map(string,K), and Scalar/Elem describe that wrapped K, not the
// wrapper itself.
type Field struct {
	Name     string // directive key this field binds to
	Kind     Kind
	ElemKind Kind        // meaningful when Kind is KindOption, KindList, or KindMap
	Scalar   ScalarType  // valid when the relevant Kind (Kind or ElemKind) is KindScalar
	Elem     *Descriptor // valid when the relevant Kind (Kind or ElemKind) is KindStruct
	MapKey   ScalarType  // valid when Kind == KindMap; spec restricts map keys to string
	Required bool
	Index    []int // reflect.Value.FieldByIndex path
}

// Descriptor is the schema for one struct type: its Confetti directive
// name and its fields, built once per type by reflection and cached.
type Descriptor struct {
	DirectiveName string
	Fields        []Field
}

func (d *Descriptor) lookup(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var descriptorCache sync.Map // reflect.Type -> *Descriptor

// describe returns the Descriptor for struct type t, building and
// caching it on first use.
func describe(t reflect.Type) (*Descriptor, error) {
	if cached, ok := descriptorCache.Load(t); ok {
		return cached.(*Descriptor), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, &Error{Kind: TypeMismatch, Path: t.Name(), Message: "mapper target must be a struct"}
	}

	d := &Descriptor{DirectiveName: directiveNameOf(t)}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" { // unexported
			continue
		}
		tag := sf.Tag.Get("confetti")
		if tag == "-" {
			continue
		}
		name, required := parseTag(tag)
		if name == "" {
			name = toSnakeCase(sf.Name)
		}

		field, err := describeField(sf.Type)
		if err != nil {
			return nil, err
		}
		field.Name = name
		field.Required = required
		field.Index = append(append([]int{}, sf.Index...))
		d.Fields = append(d.Fields, field)
	}

	descriptorCache.Store(t, d)
	return d, nil
}

// parseTag splits a `confetti:"name,required"` tag into its name
// override and required marker.
func parseTag(tag string) (name string, required bool) {
	if tag == "" {
		return "", false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	for _, opt := range parts[1:] {
		if opt == "required" {
			required = true
		}
	}
	return name, required
}

var enumType = reflect.TypeOf((*Enum)(nil)).Elem()

// describeField classifies a single Go field type into a Kind: scalar,
// enum, struct, option, list, or map.
func describeField(t reflect.Type) (Field, error) {
	if reflect.PointerTo(t).Implements(enumType) {
		return Field{Kind: KindEnum}, nil
	}

	switch t.Kind() {
	case reflect.String:
		return Field{Kind: KindScalar, Scalar: ScalarString}, nil
	case reflect.Bool:
		return Field{Kind: KindScalar, Scalar: ScalarBool}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Field{Kind: KindScalar, Scalar: ScalarInt}, nil
	case reflect.Float32, reflect.Float64:
		return Field{Kind: KindScalar, Scalar: ScalarFloat}, nil
	case reflect.Struct:
		elem, err := describe(t)
		if err != nil {
			return Field{}, err
		}
		return Field{Kind: KindStruct, Elem: elem}, nil
	case reflect.Pointer:
		leaf, err := describeField(t.Elem())
		if err != nil {
			return Field{}, err
		}
		leaf.ElemKind = leaf.Kind
		leaf.Kind = KindOption
		return leaf, nil
	case reflect.Slice:
		leaf, err := describeField(t.Elem())
		if err != nil {
			return Field{}, err
		}
		leaf.ElemKind = leaf.Kind
		leaf.Kind = KindList
		return leaf, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return Field{}, &Error{Kind: TypeMismatch, Message: "map fields must have string keys"}
		}
		leaf, err := describeField(t.Elem())
		if err != nil {
			return Field{}, err
		}
		leaf.ElemKind = leaf.Kind
		leaf.Kind = KindMap
		leaf.MapKey = ScalarString
		return leaf, nil
	default:
		return Field{}, &Error{Kind: TypeMismatch, Message: "unsupported field type " + t.String()}
	}
}

// directiveNameOf returns t's directive name: the Named interface's
// ConfettiName if t (or *t) implements it, else t's Go name lowercased.
func directiveNameOf(t reflect.Type) string {
	if reflect.PointerTo(t).Implements(reflect.TypeOf((*Named)(nil)).Elem()) {
		v := reflect.New(t).Interface().(Named)
		return v.ConfettiName()
	}
	return strings.ToLower(t.Name())
}

// toSnakeCase converts an exported Go field name like "MaxSizeMB" into
// its directive-key spelling "max_size_mb".
func toSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
				nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
				if prevLower || (nextLower && b.Len() > 0) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
