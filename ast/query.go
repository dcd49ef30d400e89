package ast

import "github.com/profusion/cppgraphqlgen/errors"

// OperationType is "QUERY", "MUTATION", or "SUBSCRIPTION".
type OperationType string

// ExecutableDefinition is the root of a parsed query document: zero or
// more operations plus zero or more fragment definitions, per spec.md
// §6 ("Query input at runtime").
type ExecutableDefinition struct {
	Operations []*OperationDefinition
	Fragments  []*FragmentDefinition
}

// OperationDefinition is one `query Name(...) { ... }` (or the anonymous
// shorthand `{ ... }`, which parses to Type: Query, Name zero-valued).
type OperationDefinition struct {
	Type            OperationType
	Name            Ident
	Vars            InputValueList
	Directives      DirectiveList
	Selections      []Selection
	SelectionSetLoc errors.Location
	Loc             errors.Location
}

// FragmentDefinition is `fragment Name on Type { ... }`.
type FragmentDefinition struct {
	Name       Ident
	On         TypeName
	Directives DirectiveList
	Selections []Selection
	Loc        errors.Location
}

// Selection is one member of a selection set: a Field, a FragmentSpread,
// or an InlineFragment.
type Selection interface {
	Location() errors.Location
}

// Field is `alias: name(args) @directives { selections }`.
type Field struct {
	Alias           Ident
	Name            Ident
	Arguments       ArgumentList
	Directives      DirectiveList
	SelectionSet    []Selection
	SelectionSetLoc errors.Location
}

func (f *Field) Location() errors.Location { return f.Name.Loc }

// ResponseKey is the field's result key: the alias if present, else the
// field name.
func (f *Field) ResponseKey() string {
	if f.Alias.Name != "" {
		return f.Alias.Name
	}
	return f.Name.Name
}

// FragmentSpread is `...Name @directives`.
type FragmentSpread struct {
	Name       Ident
	Directives DirectiveList
	Loc        errors.Location
}

func (f *FragmentSpread) Location() errors.Location { return f.Loc }

// InlineFragment is `... on Type @directives { selections }`; On.Name is
// empty when the `on Type` clause is omitted.
type InlineFragment struct {
	On         TypeName
	Directives DirectiveList
	Selections []Selection
	Loc        errors.Location
}

func (f *InlineFragment) Location() errors.Location { return f.Loc }
