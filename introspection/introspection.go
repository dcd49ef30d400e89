// Package introspection builds the runtime introspection table of
// spec.md §4.F: a language-neutral value, expressed in the same typed
// Response Value this module already uses for resolver output, that a
// generated runtime returns for `__schema` and `__type(name)`. It is
// grounded on the teacher's introspection package (same __Schema/__Type
// field shape) but produces data directly from the built schema.Schema
// instead of a tree of GraphQL resolvers, since resolver dispatch is out
// of scope here.
package introspection

import (
	"sort"

	"github.com/profusion/cppgraphqlgen/internal/schema"
	"github.com/profusion/cppgraphqlgen/value"
)

// BuildSchema produces the `__schema` value: every named type in s, the
// three operation root types, and every declared directive.
func BuildSchema(s *schema.Schema) value.Value {
	out := value.New(value.KindMap)

	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	types := value.New(value.KindList)
	for _, name := range names {
		_ = types.EmplaceList(BuildNamedType(s.Types[name]))
	}
	_ = out.EmplaceMap("types", types)

	_ = out.EmplaceMap("queryType", entryPointRef(s, "query"))
	_ = out.EmplaceMap("mutationType", entryPointRef(s, "mutation"))
	_ = out.EmplaceMap("subscriptionType", entryPointRef(s, "subscription"))

	directiveNames := make([]string, 0, len(s.Directives))
	for name := range s.Directives {
		directiveNames = append(directiveNames, name)
	}
	sort.Strings(directiveNames)

	directives := value.New(value.KindList)
	for _, name := range directiveNames {
		_ = directives.EmplaceList(BuildDirective(s.Directives[name]))
	}
	_ = out.EmplaceMap("directives", directives)

	return out
}

func entryPointRef(s *schema.Schema, key string) value.Value {
	t, ok := s.EntryPoints[key]
	if !ok {
		return value.New(value.KindNull)
	}
	m := value.New(value.KindMap)
	_ = m.EmplaceMap("name", value.NewString(t.TypeName()))
	return m
}

// BuildType resolves a type by name and builds its `__type(name)` value,
// or a Null Value if the schema has no such type.
func BuildType(s *schema.Schema, name string) value.Value {
	t, ok := s.Resolve(name)
	if !ok {
		return value.New(value.KindNull)
	}
	return BuildNamedType(t)
}

// BuildNamedType builds the full `{kind, name, description, fields,
// interfaces, possibleTypes, enumValues, inputFields, ofType}` value for
// one named type, per spec.md §4.F.
func BuildNamedType(t schema.NamedType) value.Value {
	m := value.New(value.KindMap)
	_ = m.EmplaceMap("kind", value.NewEnum(t.Kind()))
	_ = m.EmplaceMap("name", value.NewString(t.TypeName()))
	_ = m.EmplaceMap("description", descriptionValue(t.Description()))
	_ = m.EmplaceMap("ofType", value.New(value.KindNull))

	switch x := t.(type) {
	case *schema.Object:
		_ = m.EmplaceMap("fields", buildFieldList(x.Fields))
		_ = m.EmplaceMap("interfaces", buildInterfaceRefs(x.Interfaces))
		_ = m.EmplaceMap("possibleTypes", value.New(value.KindNull))
		_ = m.EmplaceMap("enumValues", value.New(value.KindNull))
		_ = m.EmplaceMap("inputFields", value.New(value.KindNull))
	case *schema.Interface:
		_ = m.EmplaceMap("fields", buildFieldList(x.Fields))
		_ = m.EmplaceMap("interfaces", value.New(value.KindNull))
		_ = m.EmplaceMap("possibleTypes", buildObjectRefs(x.PossibleTypes))
		_ = m.EmplaceMap("enumValues", value.New(value.KindNull))
		_ = m.EmplaceMap("inputFields", value.New(value.KindNull))
	case *schema.Union:
		_ = m.EmplaceMap("fields", value.New(value.KindNull))
		_ = m.EmplaceMap("interfaces", value.New(value.KindNull))
		_ = m.EmplaceMap("possibleTypes", buildObjectRefs(x.PossibleTypes))
		_ = m.EmplaceMap("enumValues", value.New(value.KindNull))
		_ = m.EmplaceMap("inputFields", value.New(value.KindNull))
	case *schema.Enum:
		_ = m.EmplaceMap("fields", value.New(value.KindNull))
		_ = m.EmplaceMap("interfaces", value.New(value.KindNull))
		_ = m.EmplaceMap("possibleTypes", value.New(value.KindNull))
		_ = m.EmplaceMap("enumValues", buildEnumValues(x.Values))
		_ = m.EmplaceMap("inputFields", value.New(value.KindNull))
	case *schema.InputObject:
		_ = m.EmplaceMap("fields", value.New(value.KindNull))
		_ = m.EmplaceMap("interfaces", value.New(value.KindNull))
		_ = m.EmplaceMap("possibleTypes", value.New(value.KindNull))
		_ = m.EmplaceMap("enumValues", value.New(value.KindNull))
		_ = m.EmplaceMap("inputFields", buildInputValueList(x.Values))
	default: // *schema.Scalar
		_ = m.EmplaceMap("fields", value.New(value.KindNull))
		_ = m.EmplaceMap("interfaces", value.New(value.KindNull))
		_ = m.EmplaceMap("possibleTypes", value.New(value.KindNull))
		_ = m.EmplaceMap("enumValues", value.New(value.KindNull))
		_ = m.EmplaceMap("inputFields", value.New(value.KindNull))
	}
	return m
}

func buildFieldList(fields schema.FieldList) value.Value {
	l := value.New(value.KindList)
	for _, f := range fields {
		_ = l.EmplaceList(buildField(f))
	}
	return l
}

func buildField(f *schema.Field) value.Value {
	m := value.New(value.KindMap)
	_ = m.EmplaceMap("name", value.NewString(f.Name))
	_ = m.EmplaceMap("description", descriptionValue(f.Desc))
	_ = m.EmplaceMap("args", buildInputValueList(f.Args))
	_ = m.EmplaceMap("type", BuildTypeRef(f.Type))
	_ = m.EmplaceMap("isDeprecated", value.NewBool(f.DeprecationReason != ""))
	_ = m.EmplaceMap("deprecationReason", descriptionValue(f.DeprecationReason))
	return m
}

func buildInputValueList(values schema.InputValueList) value.Value {
	l := value.New(value.KindList)
	for _, v := range values {
		l2 := value.New(value.KindMap)
		_ = l2.EmplaceMap("name", value.NewString(v.Name))
		_ = l2.EmplaceMap("description", descriptionValue(v.Desc))
		_ = l2.EmplaceMap("type", BuildTypeRef(v.Type))
		if v.HasDefault {
			s, _ := value.ToJSON(v.Default, 0)
			_ = l2.EmplaceMap("defaultValue", value.NewString(s))
		} else {
			_ = l2.EmplaceMap("defaultValue", value.New(value.KindNull))
		}
		_ = l.EmplaceList(l2)
	}
	return l
}

func buildEnumValues(values []*schema.EnumValue) value.Value {
	l := value.New(value.KindList)
	for _, v := range values {
		m := value.New(value.KindMap)
		_ = m.EmplaceMap("name", value.NewString(v.Name))
		_ = m.EmplaceMap("description", descriptionValue(v.Desc))
		_ = m.EmplaceMap("isDeprecated", value.NewBool(v.DeprecationReason != ""))
		_ = m.EmplaceMap("deprecationReason", descriptionValue(v.DeprecationReason))
		_ = l.EmplaceList(m)
	}
	return l
}

func buildInterfaceRefs(ifaces []*schema.Interface) value.Value {
	l := value.New(value.KindList)
	for _, i := range ifaces {
		m := value.New(value.KindMap)
		_ = m.EmplaceMap("kind", value.NewEnum(i.Kind()))
		_ = m.EmplaceMap("name", value.NewString(i.Name))
		_ = m.EmplaceMap("ofType", value.New(value.KindNull))
		_ = l.EmplaceList(m)
	}
	return l
}

func buildObjectRefs(objs []*schema.Object) value.Value {
	l := value.New(value.KindList)
	for _, o := range objs {
		m := value.New(value.KindMap)
		_ = m.EmplaceMap("kind", value.NewEnum(o.Kind()))
		_ = m.EmplaceMap("name", value.NewString(o.Name))
		_ = m.EmplaceMap("ofType", value.New(value.KindNull))
		_ = l.EmplaceList(m)
	}
	return l
}

// BuildDirective builds one `__Directive` value.
func BuildDirective(d *schema.DirectiveDecl) value.Value {
	m := value.New(value.KindMap)
	_ = m.EmplaceMap("name", value.NewString(d.Name))
	_ = m.EmplaceMap("description", descriptionValue(d.Desc))
	_ = m.EmplaceMap("isRepeatable", value.NewBool(d.Repeatable))

	locs := value.New(value.KindList)
	for _, loc := range d.Locations {
		_ = locs.EmplaceList(value.NewEnum(loc))
	}
	_ = m.EmplaceMap("locations", locs)
	_ = m.EmplaceMap("args", buildInputValueList(d.Args))
	return m
}

// BuildTypeRef builds the `{kind, name?, ofType?}` chain of spec.md §4.F
// for one resolved field/argument type, peeling NON_NULL and LIST layers
// one at a time until it reaches the named base type.
func BuildTypeRef(t schema.TypeRef) value.Value {
	m := value.New(value.KindMap)
	switch {
	case t.IsNonNull():
		_ = m.EmplaceMap("kind", value.NewEnum("NON_NULL"))
		_ = m.EmplaceMap("name", value.New(value.KindNull))
		_ = m.EmplaceMap("ofType", BuildTypeRef(asNullable(t)))
	case t.IsList():
		_ = m.EmplaceMap("kind", value.NewEnum("LIST"))
		_ = m.EmplaceMap("name", value.New(value.KindNull))
		_ = m.EmplaceMap("ofType", BuildTypeRef(t.OfType()))
	default:
		_ = m.EmplaceMap("kind", value.NewEnum(t.Named.Kind()))
		_ = m.EmplaceMap("name", value.NewString(t.Named.TypeName()))
		_ = m.EmplaceMap("ofType", value.New(value.KindNull))
	}
	return m
}

// asNullable strips t's outermost non-null wrapper, leaving any List
// wrapper at that level intact, so the NON_NULL chain link's ofType can
// recurse into BuildTypeRef using the same exported TypeRef shape.
func asNullable(t schema.TypeRef) schema.TypeRef {
	return schema.TypeRef{
		Named:     t.Named,
		Modifiers: append([]schema.Modifier{schema.ModNullable}, t.Modifiers...),
	}
}

func descriptionValue(s string) value.Value {
	if s == "" {
		return value.New(value.KindNull)
	}
	return value.NewString(s)
}
