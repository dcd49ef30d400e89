package ast

import (
	"strconv"

	"github.com/profusion/cppgraphqlgen/errors"
)

// Ident is a parsed GraphQL Name token together with its source position,
// grounded on the teacher's internal/common.Ident.
type Ident struct {
	Name string
	Loc  errors.Location
}

// Type is any GraphQL type reference as it appears in the grammar:
// NamedType, [Type] (List), or Type! (NonNull). The schema builder's
// TypeVisitor walks this shape into the canonical, non-null-inverted
// TypeRef described in spec.md §3.3/§9; the AST keeps the grammar's own
// nesting untouched.
type Type interface {
	String() string
}

// TypeName is an unresolved reference to a named type by name. The schema
// builder resolves it by name into a separate TypeRef and leaves the AST
// node unchanged; query documents keep it as-is (queries don't carry a
// type model, only the type names fragments are conditioned `on`).
type TypeName struct {
	Ident
}

func (t *TypeName) String() string { return t.Name }

// List is `[OfType]`.
type List struct {
	OfType Type
}

func (t *List) String() string { return "[" + t.OfType.String() + "]" }

// NonNull is `OfType!`.
type NonNull struct {
	OfType Type
}

func (t *NonNull) String() string { return t.OfType.String() + "!" }

// Value is any GraphQL literal value: a scalar literal, a list, an input
// object, a variable reference, or a null/enum keyword-like bare name.
// Defaults in the schema (spec.md §3.3, §4.D) and arguments in queries
// are both Values.
type Value interface {
	Location() errors.Location
	String() string
}

// IntValue is a literal 32-bit integer constant.
type IntValue struct {
	Value int32
	Loc   errors.Location
}

func (v *IntValue) Location() errors.Location { return v.Loc }
func (v *IntValue) String() string             { return strconv.FormatInt(int64(v.Value), 10) }

// FloatValue is a literal double-precision constant.
type FloatValue struct {
	Value float64
	Loc   errors.Location
}

func (v *FloatValue) Location() errors.Location { return v.Loc }
func (v *FloatValue) String() string             { return strconv.FormatFloat(v.Value, 'g', -1, 64) }

// StringValue is a literal string, from either a single-line `"…"` or a
// block `"""…"""` literal. Unescaped holds the literal's unescaped text:
// Borrowed is a slice of the original source when a single-line literal
// contains no escapes, Owned is a heap string when an escape (including
// any `\uXXXX` that expands to multi-byte UTF-8) forced an allocation, per
// spec.md §3.2/§9. Block literals are always Owned.
type StringValue struct {
	Block     bool
	Unescaped UnescapedText
	Loc       errors.Location
}

func (v *StringValue) Location() errors.Location { return v.Loc }
func (v *StringValue) String() string             { return v.Unescaped.Text() }

// UnescapedText is the borrowing discipline spec.md §9 describes for
// string literal children: a slice of the original input when possible,
// an owned string only when escapes forced it.
type UnescapedText struct {
	Borrowed string
	Owned    string
	IsOwned  bool
}

// Text returns the literal's unescaped content regardless of storage.
func (u UnescapedText) Text() string {
	if u.IsOwned {
		return u.Owned
	}
	return u.Borrowed
}

// BooleanValue is `true` or `false`.
type BooleanValue struct {
	Value bool
	Loc   errors.Location
}

func (v *BooleanValue) Location() errors.Location { return v.Loc }
func (v *BooleanValue) String() string {
	if v.Value {
		return "true"
	}
	return "false"
}

// NullValue is the `null` keyword used as a value.
type NullValue struct {
	Loc errors.Location
}

func (v *NullValue) Location() errors.Location { return v.Loc }
func (v *NullValue) String() string             { return "null" }

// EnumValue is a bare name used as a value, distinct from a GraphQL
// String literal (spec.md §3.1's from_json ambiguity only applies to
// JSON-sourced strings, never to an EnumValue parsed directly from SDL or
// a query document).
type EnumValue struct {
	Name string
	Loc  errors.Location
}

func (v *EnumValue) Location() errors.Location { return v.Loc }
func (v *EnumValue) String() string             { return v.Name }

// Variable is a `$name` reference. It is only legal outside a schema
// default value; spec.md §4.D requires the DefaultValueVisitor to reject
// it.
type Variable struct {
	Name string
	Loc  errors.Location
}

func (v *Variable) Location() errors.Location { return v.Loc }
func (v *Variable) String() string             { return "$" + v.Name }

// ListValue is `[v1, v2, ...]` as a value (not to be confused with the
// List *type*).
type ListValue struct {
	Values []Value
	Loc    errors.Location
}

func (v *ListValue) Location() errors.Location { return v.Loc }
func (v *ListValue) String() string {
	s := "["
	for i, e := range v.Values {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + "]"
}

// ObjectValue is `{ field: v, ... }` as a value.
type ObjectValue struct {
	Fields []*ObjectField
	Loc    errors.Location
}

func (v *ObjectValue) Location() errors.Location { return v.Loc }
func (v *ObjectValue) String() string {
	s := "{"
	for i, f := range v.Fields {
		if i > 0 {
			s += ", "
		}
		s += f.Name.Name + ": " + f.Value.String()
	}
	return s + "}"
}

// ObjectField is one `name: value` pair of an ObjectValue.
type ObjectField struct {
	Name  Ident
	Value Value
}

// Directive is a `@name(arg: value, ...)` annotation.
type Directive struct {
	Name      Ident
	Arguments ArgumentList
}

type DirectiveList []*Directive

// Get returns the first directive named name, or nil.
func (l DirectiveList) Get(name string) *Directive {
	for _, d := range l {
		if d.Name.Name == name {
			return d
		}
	}
	return nil
}

// Argument is one `name: value` pair passed to a field or directive.
type Argument struct {
	Name  Ident
	Value Value
}

type ArgumentList []*Argument

func (l ArgumentList) Get(name string) (Value, bool) {
	for _, a := range l {
		if a.Name.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

func (l ArgumentList) MustGet(name string) Value {
	v, ok := l.Get(name)
	if !ok {
		panic("ast: argument " + name + " not found")
	}
	return v
}

// InputValueDefinition is one argument or input-object-field declaration:
// `name: Type = default`.
type InputValueDefinition struct {
	Name       Ident
	Type       Type
	Default    Value
	Desc       string
	Directives DirectiveList
	Loc        errors.Location
	TypeLoc    errors.Location
}

type InputValueList []*InputValueDefinition

func (l InputValueList) Get(name string) *InputValueDefinition {
	for _, v := range l {
		if v.Name.Name == name {
			return v
		}
	}
	return nil
}

