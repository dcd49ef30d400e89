package ast

import "github.com/profusion/cppgraphqlgen/errors"

// NamedType is any of the six GraphQL type kinds once declared: Scalar,
// Object, Interface, Union, Enum, InputObject. It is what a TypeName
// resolves to.
type NamedType interface {
	Type
	TypeName() string
	Kind() string
	Description() string
	Location() errors.Location
}

// FieldsDefinition is an ordered list of field declarations, shared by
// Object and Interface types.
type FieldsDefinition []*FieldDefinition

func (l FieldsDefinition) Get(name string) *FieldDefinition {
	for _, f := range l {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (l FieldsDefinition) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name
	}
	return names
}

// FieldDefinition is one field of an Object or Interface type.
type FieldDefinition struct {
	Name       string
	Arguments  InputValueList
	Type       Type
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

// ScalarTypeDefinition declares an opaque custom scalar (spec.md's Non-goal
// (d) means this module never interprets a scalar's serialization, only
// its name).
type ScalarTypeDefinition struct {
	Name       string
	Desc       string
	Directives DirectiveList
	Loc        errors.Location
}

func (t *ScalarTypeDefinition) Kind() string                    { return "SCALAR" }
func (t *ScalarTypeDefinition) String() string                   { return t.Name }
func (t *ScalarTypeDefinition) TypeName() string                 { return t.Name }
func (t *ScalarTypeDefinition) Description() string              { return t.Desc }
func (t *ScalarTypeDefinition) Location() errors.Location        { return t.Loc }

// ObjectTypeDefinition declares `type Name implements I1 & I2 { ... }`.
type ObjectTypeDefinition struct {
	Name           string
	Interfaces     []*InterfaceTypeDefinition
	Fields         FieldsDefinition
	Desc           string
	Loc            errors.Location
	InterfaceNames []string // unresolved, populated by the parser; resolved in Pass 2
}

func (t *ObjectTypeDefinition) Kind() string             { return "OBJECT" }
func (t *ObjectTypeDefinition) String() string            { return t.Name }
func (t *ObjectTypeDefinition) TypeName() string          { return t.Name }
func (t *ObjectTypeDefinition) Description() string       { return t.Desc }
func (t *ObjectTypeDefinition) Location() errors.Location { return t.Loc }

// InterfaceTypeDefinition declares `interface Name { ... }`.
type InterfaceTypeDefinition struct {
	Name          string
	Fields        FieldsDefinition
	PossibleTypes []*ObjectTypeDefinition
	Desc          string
	Loc           errors.Location
}

func (t *InterfaceTypeDefinition) Kind() string             { return "INTERFACE" }
func (t *InterfaceTypeDefinition) String() string            { return t.Name }
func (t *InterfaceTypeDefinition) TypeName() string          { return t.Name }
func (t *InterfaceTypeDefinition) Description() string       { return t.Desc }
func (t *InterfaceTypeDefinition) Location() errors.Location { return t.Loc }

// Union declares `union Name = A | B`.
type Union struct {
	Name             string
	TypeNames        []string // unresolved, resolved in Pass 2
	UnionMemberTypes []*ObjectTypeDefinition
	Desc             string
	Loc              errors.Location
}

func (t *Union) Kind() string             { return "UNION" }
func (t *Union) String() string            { return t.Name }
func (t *Union) TypeName() string          { return t.Name }
func (t *Union) Description() string       { return t.Desc }
func (t *Union) Location() errors.Location { return t.Loc }

// EnumValueDefinition is one member of an EnumTypeDefinition.
type EnumValueDefinition struct {
	EnumValue  string
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

// EnumTypeDefinition declares `enum Name { A B C }`.
type EnumTypeDefinition struct {
	Name                 string
	EnumValuesDefinition []*EnumValueDefinition
	Desc                 string
	Loc                  errors.Location
}

func (t *EnumTypeDefinition) Kind() string             { return "ENUM" }
func (t *EnumTypeDefinition) String() string            { return t.Name }
func (t *EnumTypeDefinition) TypeName() string          { return t.Name }
func (t *EnumTypeDefinition) Description() string       { return t.Desc }
func (t *EnumTypeDefinition) Location() errors.Location { return t.Loc }

// InputObject declares `input Name { ... }`.
type InputObject struct {
	Name   string
	Values InputValueList
	Desc   string
	Loc    errors.Location
}

func (t *InputObject) Kind() string             { return "INPUT_OBJECT" }
func (t *InputObject) String() string            { return t.Name }
func (t *InputObject) TypeName() string          { return t.Name }
func (t *InputObject) Description() string       { return t.Desc }
func (t *InputObject) Location() errors.Location { return t.Loc }

// DirectiveDefinition declares `directive @name(...) on LOCATION | ...`.
type DirectiveDefinition struct {
	Name       string
	Desc       string
	Loc        errors.Location
	Locations  []string
	Arguments  InputValueList
	Repeatable bool
}

// Extension is any `extend <kind> Name { ... }` declaration. Exactly one
// of the typed fields is populated, matching which kind was extended;
// Kind reports which.
type Extension struct {
	Kind string // "SCALAR", "OBJECT", "INTERFACE", "UNION", "ENUM", "INPUT_OBJECT", "SCHEMA"
	Name string // empty for SCHEMA
	Loc  errors.Location

	Directives     DirectiveList
	Fields         FieldsDefinition       // OBJECT, INTERFACE
	InterfaceNames []string               // OBJECT
	InputValues    InputValueList         // INPUT_OBJECT
	EnumValues     []*EnumValueDefinition // ENUM
	UnionTypeNames []string               // UNION

	// SchemaOperations holds `extend schema { query: ... }` root-operation
	// overrides, the supplemented SchemaExtension of SPEC_FULL.md §6/§8.
	SchemaOperations map[string]Ident
}

// Schema is the built document-level result of parsing an SDL document:
// every top-level definition and extension found, before the schema
// builder (component D) resolves and merges them into a Schema model.
type Schema struct {
	SchemaDefinition
	Objects    []*ObjectTypeDefinition
	Interfaces []*InterfaceTypeDefinition
	Unions     []*Union
	Enums      []*EnumTypeDefinition
	Inputs     []*InputObject
	Scalars    []*ScalarTypeDefinition
	Directives []*DirectiveDefinition
	Extensions []*Extension

	// DeclOrder records every top-level item (base declaration or
	// extension) in the order it appeared in the source document, so the
	// builder can reject an extension whose base declaration appears
	// later (spec.md §4.D Pass 1: "a base declaration following an
	// extension is an error").
	DeclOrder []DeclRef
}

// DeclRef is one entry of Schema.DeclOrder.
type DeclRef struct {
	Kind        string
	Name        string
	IsExtension bool
	Loc         errors.Location
}

// SchemaDefinition is the optional `schema { query: Q, mutation: M,
// subscription: S }` block.
type SchemaDefinition struct {
	Present         bool
	EntryPointNames map[string]Ident // "query"/"mutation"/"subscription" -> type name ident
	Desc            string
	Directives      DirectiveList
	Loc             errors.Location
}
