// Package schema implements components D and E of the compiler, plus the
// SDL half of component C's grammar: the SDL parser, the two-pass schema
// model builder with extension merging, schema validation, and the
// built-in introspection meta-schema. It is
// grounded on the teacher's internal/schema package (same Schema/Object/
// Interface/Union/Enum/InputObject shape, same Parse/resolve pipeline)
// rebuilt to produce the canonical, non-null-inverted TypeRef described
// in spec.md §3.3/§9 instead of keeping the grammar's own NonNull/List
// nesting.
package schema

import (
	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/errors"
	"github.com/profusion/cppgraphqlgen/value"
)

// NamedType is any of the six built schema kinds.
type NamedType interface {
	TypeName() string
	Kind() string
	Description() string
	Location() errors.Location
}

// Modifier is one entry of a TypeRef's canonical modifier stack.
type Modifier int

const (
	// ModList marks "list of the rest of the stack".
	ModList Modifier = iota
	// ModNullable marks "the rest of the stack is nullable at this
	// position"; its absence means non-null, per spec.md §9's inversion.
	ModNullable
)

// TypeRef is a named type plus the canonical modifier stack of spec.md
// §3.3: Named is the resolved base type, Modifiers reads outside-in and
// contains only ModList and ModNullable entries.
type TypeRef struct {
	Named     NamedType
	Modifiers []Modifier
}

// levels reconstructs, outside-in, one nullable flag per list-nesting
// level (including the terminal, non-list level holding Named).
func (t TypeRef) levels() []bool {
	var levels []bool
	i := 0
	for {
		nullable := false
		if i < len(t.Modifiers) && t.Modifiers[i] == ModNullable {
			nullable = true
			i++
		}
		if i < len(t.Modifiers) && t.Modifiers[i] == ModList {
			levels = append(levels, nullable)
			i++
			continue
		}
		levels = append(levels, nullable)
		return levels
	}
}

// IsNonNull reports whether the outermost level of t is non-null.
func (t TypeRef) IsNonNull() bool {
	if len(t.Modifiers) == 0 {
		return true
	}
	return t.Modifiers[0] != ModNullable
}

// IsList reports whether t's outermost level is a list.
func (t TypeRef) IsList() bool {
	i := 0
	if i < len(t.Modifiers) && t.Modifiers[i] == ModNullable {
		i++
	}
	return i < len(t.Modifiers) && t.Modifiers[i] == ModList
}

// OfType strips t's outer list wrapper, mirroring introspection's `ofType`
// chain (spec.md §4.F): LIST(T)'s ofType is T. Callers only ever call this
// when IsList() is true, so the nullability guard and the ModList marker
// that together encode "this level is a list" are one unit and must be
// stripped together — peeling the ModNullable alone and leaving ModList
// in place would hand back the same level OfType was called on. It
// panics if t has no list wrapper.
func (t TypeRef) OfType() TypeRef {
	i := 0
	if i < len(t.Modifiers) && t.Modifiers[i] == ModNullable {
		i++
	}
	if i < len(t.Modifiers) && t.Modifiers[i] == ModList {
		return TypeRef{Named: t.Named, Modifiers: t.Modifiers[i+1:]}
	}
	panic("schema: OfType called on a named type with no wrapper")
}

// String renders t back into GraphQL SDL surface syntax (e.g. "[Int!]!"),
// the inverse of the TypeVisitor's non-null inversion.
func (t TypeRef) String() string {
	return renderLevels(t.levels(), t.Named.TypeName())
}

func renderLevels(levels []bool, base string) string {
	if len(levels) == 1 {
		if levels[0] {
			return base
		}
		return base + "!"
	}
	inner := renderLevels(levels[1:], base)
	s := "[" + inner + "]"
	if !levels[0] {
		s += "!"
	}
	return s
}

// CompatibleWithInterfaceField reports whether obj (an Object field's
// TypeRef) satisfies iface (the Interface field's TypeRef) per spec.md
// §4.E rule 2 and §8 property 8: identical base type and list shape, and
// obj may be non-null where iface is nullable, never the reverse.
func (obj TypeRef) CompatibleWithInterfaceField(iface TypeRef) bool {
	if obj.Named.TypeName() != iface.Named.TypeName() {
		return false
	}
	ol, il := obj.levels(), iface.levels()
	if len(ol) != len(il) {
		return false
	}
	for i := range ol {
		if ol[i] && !il[i] {
			return false
		}
	}
	return true
}

// Equal reports structural equality, used by the schema-build idempotence
// property (spec.md §8 property 6).
func (t TypeRef) Equal(o TypeRef) bool {
	if t.Named.TypeName() != o.Named.TypeName() {
		return false
	}
	if len(t.Modifiers) != len(o.Modifiers) {
		return false
	}
	for i := range t.Modifiers {
		if t.Modifiers[i] != o.Modifiers[i] {
			return false
		}
	}
	return true
}

// Scalar is an opaque custom scalar (spec.md Non-goal (d): the host
// resolves its serialization, this model only names it).
type Scalar struct {
	Name string
	Desc string
	Loc  errors.Location
}

func (t *Scalar) Kind() string             { return "SCALAR" }
func (t *Scalar) TypeName() string         { return t.Name }
func (t *Scalar) Description() string      { return t.Desc }
func (t *Scalar) Location() errors.Location { return t.Loc }

// Object is a built `type Name implements ... { fields }`.
type Object struct {
	Name       string
	Desc       string
	Interfaces []*Interface
	Fields     FieldList
	Loc        errors.Location
}

func (t *Object) Kind() string             { return "OBJECT" }
func (t *Object) TypeName() string         { return t.Name }
func (t *Object) Description() string      { return t.Desc }
func (t *Object) Location() errors.Location { return t.Loc }

// Interface is a built `interface Name { fields }`.
type Interface struct {
	Name          string
	Desc          string
	Fields        FieldList
	PossibleTypes []*Object
	Loc           errors.Location
}

func (t *Interface) Kind() string             { return "INTERFACE" }
func (t *Interface) TypeName() string         { return t.Name }
func (t *Interface) Description() string      { return t.Desc }
func (t *Interface) Location() errors.Location { return t.Loc }

// Union is a built `union Name = A | B`.
type Union struct {
	Name          string
	Desc          string
	PossibleTypes []*Object
	Loc           errors.Location
}

func (t *Union) Kind() string             { return "UNION" }
func (t *Union) TypeName() string         { return t.Name }
func (t *Union) Description() string      { return t.Desc }
func (t *Union) Location() errors.Location { return t.Loc }

// Enum is a built `enum Name { VALUES }`.
type Enum struct {
	Name   string
	Desc   string
	Values []*EnumValue
	Loc    errors.Location
}

func (t *Enum) Kind() string             { return "ENUM" }
func (t *Enum) TypeName() string         { return t.Name }
func (t *Enum) Description() string      { return t.Desc }
func (t *Enum) Location() errors.Location { return t.Loc }

// EnumValue is one member of an Enum.
type EnumValue struct {
	Name            string
	Desc            string
	Directives      ast.DirectiveList
	DeprecationReason string
	Loc             errors.Location
}

// InputObject is a built `input Name { fields }`.
type InputObject struct {
	Name   string
	Desc   string
	Values InputValueList
	Loc    errors.Location
}

func (t *InputObject) Kind() string             { return "INPUT_OBJECT" }
func (t *InputObject) TypeName() string         { return t.Name }
func (t *InputObject) Description() string      { return t.Desc }
func (t *InputObject) Location() errors.Location { return t.Loc }

// FieldList is an ordered list of built output fields.
type FieldList []*Field

func (l FieldList) Get(name string) *Field {
	for _, f := range l {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (l FieldList) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name
	}
	return names
}

// Field is one built output field of an Object or Interface.
type Field struct {
	Name              string
	Desc              string
	Args              InputValueList
	Type              TypeRef
	Directives        ast.DirectiveList
	DeprecationReason string
	IsInterfaceField  bool
	Loc               errors.Location
}

// InputValueDefinition is one built argument or input-object field.
type InputValueDefinition struct {
	Name              string
	Desc              string
	Type              TypeRef
	Default           value.Value
	HasDefault        bool
	Directives        ast.DirectiveList
	DeprecationReason string
	Loc               errors.Location
}

type InputValueList []*InputValueDefinition

func (l InputValueList) Get(name string) *InputValueDefinition {
	for _, v := range l {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// DirectiveDecl is a built `directive @name(args) on LOCATIONS`.
type DirectiveDecl struct {
	Name       string
	Desc       string
	Locations  []string
	Args       InputValueList
	Repeatable bool
	Loc        errors.Location
}

// Schema is the fully built model of spec.md §3.3: named, ordered
// collections keyed by GraphQL type name, plus entry points and the
// first-declaration position of every name (used for error reporting).
type Schema struct {
	Types         map[string]NamedType
	Directives    map[string]*DirectiveDecl
	EntryPoints   map[string]NamedType
	TypePositions map[string]errors.Location

	Scalars    []*Scalar
	Objects    []*Object
	Interfaces []*Interface
	Unions     []*Union
	Enums      []*Enum
	Inputs     []*InputObject

	// BuildID is a ksuid stamped by the compiler package, not by Build
	// itself (Build is a pure function per spec.md §5); it travels with
	// the model once the compiler layer assigns it.
	BuildID string
}

// Resolve looks up a named type by name, implementing the lookup common
// needs during type resolution.
func (s *Schema) Resolve(name string) (NamedType, bool) {
	t, ok := s.Types[name]
	return t, ok
}
