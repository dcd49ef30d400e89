package schema

import (
	"strings"

	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/errors"
	"github.com/profusion/cppgraphqlgen/value"
)

// Build runs the two-pass schema model builder of spec.md §4.D over a
// parsed SDL document and returns the built model. It seeds Types and
// Directives with the built-in introspection meta-schema (__Schema,
// __Type, @skip, @include, @deprecated, ...), matching the teacher's
// Schema.Parse seeding every real schema from its package-level Meta.
func Build(doc *ast.Schema) (*Schema, *errors.QueryError) {
	return buildSchema(doc, true)
}

func newSchema() *Schema {
	return &Schema{
		Types:         map[string]NamedType{},
		Directives:    map[string]*DirectiveDecl{},
		EntryPoints:   map[string]NamedType{},
		TypePositions: map[string]errors.Location{},
	}
}

func buildSchema(doc *ast.Schema, seedMeta bool) (*Schema, *errors.QueryError) {
	s := newSchema()
	if seedMeta && Meta != nil {
		for n, t := range Meta.Types {
			s.Types[n] = t
		}
		for n, d := range Meta.Directives {
			s.Directives[n] = d
		}
	}

	if err := pass1Declarations(s, doc, seedMeta); err != nil {
		return nil, err
	}
	if err := pass2Bodies(s, doc); err != nil {
		return nil, err
	}
	if err := mergeExtensions(s, doc); err != nil {
		return nil, err
	}
	if err := resolveEntryPoints(s, doc, seedMeta); err != nil {
		return nil, err
	}
	return s, nil
}

// pass1Declarations records every top-level definition's name and kind,
// rejecting duplicate names (across kinds, and against the built-ins) and
// extensions whose base declaration is missing or appears later in the
// document (spec.md §4.D Pass 1).
func pass1Declarations(s *Schema, doc *ast.Schema, checkBuiltins bool) *errors.QueryError {
	for _, o := range doc.Objects {
		if err := declareType(s, o.Name, o.Loc, checkBuiltins); err != nil {
			return err
		}
		obj := &Object{Name: o.Name, Desc: o.Desc, Loc: o.Loc}
		s.Types[o.Name] = obj
		s.Objects = append(s.Objects, obj)
		s.TypePositions[o.Name] = o.Loc
	}
	for _, i := range doc.Interfaces {
		if err := declareType(s, i.Name, i.Loc, checkBuiltins); err != nil {
			return err
		}
		iface := &Interface{Name: i.Name, Desc: i.Desc, Loc: i.Loc}
		s.Types[i.Name] = iface
		s.Interfaces = append(s.Interfaces, iface)
		s.TypePositions[i.Name] = i.Loc
	}
	for _, u := range doc.Unions {
		if err := declareType(s, u.Name, u.Loc, checkBuiltins); err != nil {
			return err
		}
		union := &Union{Name: u.Name, Desc: u.Desc, Loc: u.Loc}
		s.Types[u.Name] = union
		s.Unions = append(s.Unions, union)
		s.TypePositions[u.Name] = u.Loc
	}
	for _, e := range doc.Enums {
		if err := declareType(s, e.Name, e.Loc, checkBuiltins); err != nil {
			return err
		}
		enum := &Enum{Name: e.Name, Desc: e.Desc, Loc: e.Loc}
		s.Types[e.Name] = enum
		s.Enums = append(s.Enums, enum)
		s.TypePositions[e.Name] = e.Loc
	}
	for _, in := range doc.Inputs {
		if err := declareType(s, in.Name, in.Loc, checkBuiltins); err != nil {
			return err
		}
		input := &InputObject{Name: in.Name, Desc: in.Desc, Loc: in.Loc}
		s.Types[in.Name] = input
		s.Inputs = append(s.Inputs, input)
		s.TypePositions[in.Name] = in.Loc
	}
	for _, sc := range doc.Scalars {
		if err := declareType(s, sc.Name, sc.Loc, checkBuiltins); err != nil {
			return err
		}
		scalar := &Scalar{Name: sc.Name, Desc: sc.Desc, Loc: sc.Loc}
		s.Types[sc.Name] = scalar
		s.Scalars = append(s.Scalars, scalar)
		s.TypePositions[sc.Name] = sc.Loc
	}
	for _, d := range doc.Directives {
		if checkBuiltins {
			if _, ok := s.Directives[d.Name]; ok {
				return errors.Errorf("built-in or duplicate directive %q redefined", d.Name).WithRule("DuplicateDefinition").At(d.Loc)
			}
		} else if _, ok := s.Directives[d.Name]; ok {
			return errors.Errorf("directive %q defined more than once", d.Name).WithRule("DuplicateDefinition").At(d.Loc)
		}
		s.Directives[d.Name] = &DirectiveDecl{Name: d.Name, Desc: d.Desc, Locations: d.Locations, Repeatable: d.Repeatable, Loc: d.Loc}
	}

	// extension-without-base and base-after-extension.
	firstDecl := map[string]int{}
	for i, ref := range doc.DeclOrder {
		if !ref.IsExtension {
			if _, ok := firstDecl[ref.Name]; !ok {
				firstDecl[ref.Name] = i
			}
		}
	}
	for i, ref := range doc.DeclOrder {
		if !ref.IsExtension || ref.Kind == "SCHEMA" {
			continue
		}
		baseIdx, ok := firstDecl[ref.Name]
		if !ok {
			return errors.Errorf("cannot extend type %q because it is not defined", ref.Name).WithRule("DuplicateDefinition").At(ref.Loc)
		}
		if baseIdx > i {
			return errors.Errorf("cannot extend type %q before it is defined", ref.Name).WithRule("DuplicateDefinition").At(ref.Loc)
		}
	}
	return nil
}

func declareType(s *Schema, name string, loc errors.Location, checkBuiltins bool) *errors.QueryError {
	if checkBuiltins && strings.HasPrefix(name, "__") {
		return errors.Errorf("%q must not begin with \"__\", reserved for introspection types", name).WithRule("DuplicateDefinition").At(loc)
	}
	if prev, ok := s.Types[name]; ok {
		err := errors.Errorf("%q defined more than once (previously at line %d, column %d)", name, prev.Location().Line, prev.Location().Column).WithRule("DuplicateDefinition")
		return err.At(loc)
	}
	return nil
}

// pass2Bodies populates fields, arguments, members, and default values for
// every declaration registered by Pass 1, per spec.md §4.D Pass 2.
func pass2Bodies(s *Schema, doc *ast.Schema) *errors.QueryError {
	for _, o := range doc.Objects {
		obj := s.Types[o.Name].(*Object)
		ifaces, err := resolveInterfaceNames(s, o.InterfaceNames)
		if err != nil {
			return err
		}
		obj.Interfaces = ifaces
		for _, iface := range ifaces {
			iface.PossibleTypes = append(iface.PossibleTypes, obj)
		}
		fields, err := buildFieldList(s, o.Fields)
		if err != nil {
			return err
		}
		obj.Fields = fields
	}
	for _, i := range doc.Interfaces {
		iface := s.Types[i.Name].(*Interface)
		fields, err := buildFieldList(s, i.Fields)
		if err != nil {
			return err
		}
		for _, f := range fields {
			f.IsInterfaceField = true
		}
		iface.Fields = fields
	}
	for _, u := range doc.Unions {
		union := s.Types[u.Name].(*Union)
		members, err := resolveUnionMembers(s, u.TypeNames)
		if err != nil {
			return err
		}
		union.PossibleTypes = members
	}
	for _, e := range doc.Enums {
		enum := s.Types[e.Name].(*Enum)
		values, err := buildEnumValues(e.EnumValuesDefinition)
		if err != nil {
			return err
		}
		enum.Values = values
	}
	for _, in := range doc.Inputs {
		input := s.Types[in.Name].(*InputObject)
		values, err := buildInputValueList(s, in.Values)
		if err != nil {
			return err
		}
		input.Values = values
	}
	for _, d := range doc.Directives {
		decl := s.Directives[d.Name]
		args, err := buildInputValueList(s, d.Arguments)
		if err != nil {
			return err
		}
		decl.Args = args
	}
	return nil
}

func resolveInterfaceNames(s *Schema, names []string) ([]*Interface, *errors.QueryError) {
	var out []*Interface
	for _, name := range names {
		t, ok := s.Types[name]
		if !ok {
			return nil, errors.Errorf("unknown interface %q", name).WithRule("UnknownType")
		}
		iface, ok := t.(*Interface)
		if !ok {
			return nil, errors.Errorf("type %q is not an interface", name).WithRule("KindMismatch")
		}
		out = append(out, iface)
	}
	return out, nil
}

func resolveUnionMembers(s *Schema, names []string) ([]*Object, *errors.QueryError) {
	var out []*Object
	for _, name := range names {
		t, ok := s.Types[name]
		if !ok {
			return nil, errors.Errorf("unknown type %q", name).WithRule("UnknownType")
		}
		obj, ok := t.(*Object)
		if !ok {
			return nil, errors.Errorf("union member %q is not an object type", name).WithRule("KindMismatch")
		}
		out = append(out, obj)
	}
	return out, nil
}

func buildFieldList(s *Schema, defs ast.FieldsDefinition) (FieldList, *errors.QueryError) {
	seen := map[string]bool{}
	var fields FieldList
	for _, d := range defs {
		if seen[d.Name] {
			return nil, errors.Errorf("field %q defined more than once", d.Name).WithRule("DuplicateDefinition").At(d.Loc)
		}
		seen[d.Name] = true
		typeRef, err := buildTypeRef(s, d.Type)
		if err != nil {
			return nil, err
		}
		args, err := buildInputValueList(s, d.Arguments)
		if err != nil {
			return nil, err
		}
		fields = append(fields, &Field{
			Name:              d.Name,
			Desc:              d.Desc,
			Args:              args,
			Type:              typeRef,
			Directives:        d.Directives,
			DeprecationReason: deprecationReason(d.Directives),
			Loc:               d.Loc,
		})
	}
	return fields, nil
}

func buildEnumValues(defs []*ast.EnumValueDefinition) ([]*EnumValue, *errors.QueryError) {
	seen := map[string]bool{}
	var values []*EnumValue
	for _, d := range defs {
		if seen[d.EnumValue] {
			return nil, errors.Errorf("enum value %q defined more than once", d.EnumValue).WithRule("DuplicateDefinition").At(d.Loc)
		}
		seen[d.EnumValue] = true
		values = append(values, &EnumValue{
			Name:              d.EnumValue,
			Desc:              d.Desc,
			Directives:        d.Directives,
			DeprecationReason: deprecationReason(d.Directives),
			Loc:               d.Loc,
		})
	}
	return values, nil
}

func buildInputValueList(s *Schema, defs ast.InputValueList) (InputValueList, *errors.QueryError) {
	seen := map[string]bool{}
	var out InputValueList
	for _, d := range defs {
		if seen[d.Name.Name] {
			return nil, errors.Errorf("%q defined more than once", d.Name.Name).WithRule("DuplicateDefinition").At(d.Loc)
		}
		seen[d.Name.Name] = true
		typeRef, err := buildTypeRef(s, d.Type)
		if err != nil {
			return nil, err
		}
		iv := &InputValueDefinition{
			Name:              d.Name.Name,
			Desc:              d.Desc,
			Type:              typeRef,
			Directives:        d.Directives,
			DeprecationReason: deprecationReason(d.Directives),
			Loc:               d.Loc,
		}
		if d.Default != nil {
			defaultVal, err := buildDefaultValue(d.Default)
			if err != nil {
				return nil, err
			}
			iv.Default = defaultVal
			iv.HasDefault = true
		}
		out = append(out, iv)
	}
	return out, nil
}

func deprecationReason(directives ast.DirectiveList) string {
	d := directives.Get("deprecated")
	if d == nil {
		return ""
	}
	if v, ok := d.Arguments.Get("reason"); ok {
		if sv, ok := v.(*ast.StringValue); ok {
			return sv.Unescaped.Text()
		}
	}
	return "No longer supported"
}

// buildTypeRef is the TypeVisitor of spec.md §4.D: it walks
// NamedType|[Type]|Type! and produces the canonical, non-null-inverted
// TypeRef of spec.md §9 directly, rather than building an intermediate
// nested representation and inverting it afterward.
func buildTypeRef(s *Schema, t ast.Type) (TypeRef, *errors.QueryError) {
	var mods []Modifier
	cur := t
	for {
		inner, nonNull := unwrapNonNull(cur)
		if !nonNull {
			mods = append(mods, ModNullable)
		}
		switch x := inner.(type) {
		case *ast.List:
			mods = append(mods, ModList)
			cur = x.OfType
			continue
		case *ast.TypeName:
			named, ok := s.Types[x.Name]
			if !ok {
				return TypeRef{}, errors.Errorf("unknown type %q", x.Name).WithRule("UnknownType").At(x.Loc)
			}
			return TypeRef{Named: named, Modifiers: mods}, nil
		default:
			return TypeRef{}, errors.Errorf("invalid type reference").WithRule("ParseError")
		}
	}
}

func unwrapNonNull(t ast.Type) (ast.Type, bool) {
	if nn, ok := t.(*ast.NonNull); ok {
		return nn.OfType, true
	}
	return t, false
}

// buildDefaultValue is the DefaultValueVisitor of spec.md §4.D: it
// converts a default-value literal into a Response Value of the
// corresponding shape, rejecting variable references.
func buildDefaultValue(v ast.Value) (value.Value, *errors.QueryError) {
	switch x := v.(type) {
	case *ast.IntValue:
		return value.NewInt(x.Value), nil
	case *ast.FloatValue:
		return value.NewFloat(x.Value), nil
	case *ast.StringValue:
		return value.NewString(x.Unescaped.Text()), nil
	case *ast.BooleanValue:
		return value.NewBool(x.Value), nil
	case *ast.NullValue:
		return value.New(value.KindNull), nil
	case *ast.EnumValue:
		return value.NewEnum(x.Name), nil
	case *ast.Variable:
		return value.Value{}, errors.Errorf("variables are not allowed in default values").WithRule("InvalidDefault").At(x.Loc)
	case *ast.ListValue:
		list := value.New(value.KindList)
		for _, e := range x.Values {
			ev, err := buildDefaultValue(e)
			if err != nil {
				return value.Value{}, err
			}
			if err := list.EmplaceList(ev); err != nil {
				return value.Value{}, err.(*errors.QueryError)
			}
		}
		return list, nil
	case *ast.ObjectValue:
		m := value.New(value.KindMap)
		for _, f := range x.Fields {
			fv, err := buildDefaultValue(f.Value)
			if err != nil {
				return value.Value{}, err
			}
			if err := m.EmplaceMap(f.Name.Name, fv); err != nil {
				return value.Value{}, err.(*errors.QueryError)
			}
		}
		return m, nil
	default:
		return value.Value{}, errors.Errorf("unsupported default value").WithRule("InvalidDefault")
	}
}

// resolveEntryPoints resolves the schema's query/mutation/subscription
// root Object types, falling back to the implicit Query/Mutation/
// Subscription type names when no explicit `schema { ... }` block is
// present, per spec.md §4.E rule 4.
func resolveEntryPoints(s *Schema, doc *ast.Schema, checkBuiltins bool) *errors.QueryError {
	if !checkBuiltins {
		return nil // building Meta itself: no entry points to resolve
	}
	names := map[string]string{}
	if doc.SchemaDefinition.Present {
		for op, ident := range doc.SchemaDefinition.EntryPointNames {
			names[op] = ident.Name
		}
	} else {
		implicitNames := map[string]string{"query": "Query", "mutation": "Mutation", "subscription": "Subscription"}
		for op, implicit := range implicitNames {
			if _, ok := s.Types[implicit]; ok {
				names[op] = implicit
			}
		}
	}
	for op, typeName := range names {
		switch op {
		case "query", "mutation", "subscription":
		default:
			return errors.Errorf("unexpected %q, expected \"query\", \"mutation\" or \"subscription\"", op).WithRule("ParseError")
		}
		t, ok := s.Types[typeName]
		if !ok {
			return errors.Errorf("type %q not found", typeName).WithRule("UnknownType")
		}
		if _, ok := t.(*Object); !ok {
			return errors.Errorf("entry point %q must be an object type, got %q", op, t.Kind()).WithRule("KindMismatch")
		}
		s.EntryPoints[op] = t
	}
	if _, ok := s.EntryPoints["query"]; !ok {
		return errors.Errorf("schema must declare a query type").WithRule("UnknownType")
	}
	return nil
}
