package schema

import (
	"github.com/profusion/cppgraphqlgen/errors"
	"github.com/profusion/cppgraphqlgen/value"
)

// Validate runs component E over an already-built Schema: cross-reference
// checks that require the whole model, beyond what Build must already
// guarantee to complete at all (name resolution, spec.md §4.E rule 1).
// It fails fast: the first violation is returned, matching spec.md §7
// ("the first error aborts with full context").
func Validate(s *Schema) *errors.QueryError {
	if err := validateInterfaceCompatibility(s); err != nil {
		return err
	}
	if err := validateKindDiscipline(s); err != nil {
		return err
	}
	if err := validateOperationRoots(s); err != nil {
		return err
	}
	if err := validateDefaultValues(s); err != nil {
		return err
	}
	if err := validateDirectives(s); err != nil {
		return err
	}
	return nil
}

// validateInterfaceCompatibility implements spec.md §4.E rule 2 and the
// non-null widening property of §8: every Object declares every field of
// every Interface it implements, with a compatible TypeRef.
func validateInterfaceCompatibility(s *Schema) *errors.QueryError {
	for _, obj := range s.Objects {
		for _, iface := range obj.Interfaces {
			for _, ifaceField := range iface.Fields {
				objField := obj.Fields.Get(ifaceField.Name)
				if objField == nil {
					return errors.Errorf("interface %q implemented by %q requires field %q", iface.Name, obj.Name, ifaceField.Name).
						WithRule("InterfaceMismatch").At(obj.Loc)
				}
				if !objField.Type.CompatibleWithInterfaceField(ifaceField.Type) {
					return errors.Errorf("field %q on %q is not compatible with interface %q (expected %s, got %s)",
						ifaceField.Name, obj.Name, iface.Name, ifaceField.Type.String(), objField.Type.String()).
						WithRule("InterfaceMismatch").At(objField.Loc)
				}
			}
		}
	}
	return nil
}

// validateKindDiscipline implements spec.md §4.E rule 3: input fields and
// argument definitions only reference Scalar/Enum/Input kinds; output
// fields reference Scalar/Enum/Object/Interface/Union kinds.
func validateKindDiscipline(s *Schema) *errors.QueryError {
	isInputKind := func(k string) bool {
		return k == "SCALAR" || k == "ENUM" || k == "INPUT_OBJECT"
	}
	isOutputKind := func(k string) bool {
		return k == "SCALAR" || k == "ENUM" || k == "OBJECT" || k == "INTERFACE" || k == "UNION"
	}
	checkArgs := func(args InputValueList) *errors.QueryError {
		for _, a := range args {
			if !isInputKind(a.Type.Named.Kind()) {
				return errors.Errorf("argument %q must have an input type, got %s %q", a.Name, a.Type.Named.Kind(), a.Type.Named.TypeName()).
					WithRule("KindMismatch").At(a.Loc)
			}
		}
		return nil
	}
	checkOutputFields := func(fields FieldList) *errors.QueryError {
		for _, f := range fields {
			if !isOutputKind(f.Type.Named.Kind()) {
				return errors.Errorf("field %q must have an output type, got %s %q", f.Name, f.Type.Named.Kind(), f.Type.Named.TypeName()).
					WithRule("KindMismatch").At(f.Loc)
			}
			if err := checkArgs(f.Args); err != nil {
				return err
			}
		}
		return nil
	}
	for _, o := range s.Objects {
		if err := checkOutputFields(o.Fields); err != nil {
			return err
		}
	}
	for _, i := range s.Interfaces {
		if err := checkOutputFields(i.Fields); err != nil {
			return err
		}
	}
	for _, in := range s.Inputs {
		for _, v := range in.Values {
			if !isInputKind(v.Type.Named.Kind()) {
				return errors.Errorf("input field %q must have an input type, got %s %q", v.Name, v.Type.Named.Kind(), v.Type.Named.TypeName()).
					WithRule("KindMismatch").At(v.Loc)
			}
		}
	}
	return nil
}

// validateOperationRoots implements spec.md §4.E rule 4: operation roots
// name Object types, and query is mandatory. Build's resolveEntryPoints
// already enforces this while constructing EntryPoints; this re-asserts
// it against the finished model as an explicit, independent check.
func validateOperationRoots(s *Schema) *errors.QueryError {
	q, ok := s.EntryPoints["query"]
	if !ok {
		return errors.Errorf("schema must declare a query type").WithRule("UnknownType")
	}
	if q.Kind() != "OBJECT" {
		return errors.Errorf("query root %q must be an object type", q.TypeName()).WithRule("KindMismatch")
	}
	for _, op := range []string{"mutation", "subscription"} {
		if t, ok := s.EntryPoints[op]; ok && t.Kind() != "OBJECT" {
			return errors.Errorf("%s root %q must be an object type", op, t.TypeName()).WithRule("KindMismatch")
		}
	}
	return nil
}

// validateDefaultValues implements spec.md §4.E rule 5: every default
// value is well-typed for its declared TypeRef, including list/non-null
// shape.
func validateDefaultValues(s *Schema) *errors.QueryError {
	check := func(values InputValueList) *errors.QueryError {
		for _, v := range values {
			if !v.HasDefault {
				continue
			}
			if err := valueMatchesType(v.Default, v.Type); err != nil {
				return errors.Errorf("default value for %q is invalid: %s", v.Name, err.Error()).WithRule("InvalidDefault").At(v.Loc)
			}
		}
		return nil
	}
	for _, o := range s.Objects {
		for _, f := range o.Fields {
			if err := check(f.Args); err != nil {
				return err
			}
		}
	}
	for _, i := range s.Interfaces {
		for _, f := range i.Fields {
			if err := check(f.Args); err != nil {
				return err
			}
		}
	}
	for _, in := range s.Inputs {
		if err := check(in.Values); err != nil {
			return err
		}
	}
	for _, d := range s.Directives {
		if err := check(d.Args); err != nil {
			return err
		}
	}
	return nil
}

func valueMatchesType(v value.Value, t TypeRef) *errors.QueryError {
	if v.Kind() == value.KindNull {
		if t.IsNonNull() {
			return errors.Errorf("null is not valid for non-null type %s", t.String()).WithRule("InvalidDefault")
		}
		return nil
	}
	if t.IsList() {
		inner := t.OfType()
		if v.Kind() == value.KindList {
			for _, e := range v.List() {
				if err := valueMatchesType(e, inner); err != nil {
					return err
				}
			}
			return nil
		}
		return valueMatchesType(v, inner)
	}
	switch t.Named.Kind() {
	case "ENUM":
		if v.Kind() != value.KindEnumValue {
			return errors.Errorf("expected enum value for %s", t.Named.TypeName()).WithRule("InvalidDefault")
		}
	case "INPUT_OBJECT":
		if v.Kind() != value.KindMap {
			return errors.Errorf("expected input object value for %s", t.Named.TypeName()).WithRule("InvalidDefault")
		}
		input := t.Named.(*InputObject)
		for _, field := range input.Values {
			fv, ok := v.Find(field.Name)
			if !ok {
				if field.Type.IsNonNull() && !field.HasDefault {
					return errors.Errorf("missing required input field %q", field.Name).WithRule("InvalidDefault")
				}
				continue
			}
			if err := valueMatchesType(*fv, field.Type); err != nil {
				return err
			}
		}
	case "SCALAR":
		// Opaque: accept any non-container literal (spec.md Non-goal (d)).
		if v.Kind() == value.KindList || v.Kind() == value.KindMap {
			return errors.Errorf("expected scalar value for %s", t.Named.TypeName()).WithRule("InvalidDefault")
		}
	}
	return nil
}

// validateDirectives implements spec.md §4.E rule 6: directive argument
// types are input-kinded, and every declared location is a member of the
// GraphQL June-2018 DirectiveLocation enum (spec.md §9 Open Question (b)).
// It also enforces the supplemented rule that @deprecated is never legal
// on an argument or input-object field, matching the GraphQL spec's own
// restriction of DeprecationReason to FIELD_DEFINITION and ENUM_VALUE.
func validateDirectives(s *Schema) *errors.QueryError {
	for _, d := range s.Directives {
		for _, loc := range d.Locations {
			if !isValidDirectiveLocation(loc) {
				return errors.Errorf("unknown directive location %q for @%s", loc, d.Name).WithRule("KindMismatch").At(d.Loc)
			}
		}
		for _, a := range d.Args {
			if k := a.Type.Named.Kind(); k != "SCALAR" && k != "ENUM" && k != "INPUT_OBJECT" {
				return errors.Errorf("argument %q of @%s must have an input type, got %s %q", a.Name, d.Name, k, a.Type.Named.TypeName()).
					WithRule("KindMismatch").At(a.Loc)
			}
		}
	}
	checkNoDeprecatedArgs := func(args InputValueList) *errors.QueryError {
		for _, a := range args {
			if a.Directives.Get("deprecated") != nil {
				return errors.Errorf("@deprecated is not legal on argument %q", a.Name).WithRule("InvalidDefault").At(a.Loc)
			}
		}
		return nil
	}
	for _, o := range s.Objects {
		for _, f := range o.Fields {
			if err := checkNoDeprecatedArgs(f.Args); err != nil {
				return err
			}
		}
	}
	for _, i := range s.Interfaces {
		for _, f := range i.Fields {
			if err := checkNoDeprecatedArgs(f.Args); err != nil {
				return err
			}
		}
	}
	for _, in := range s.Inputs {
		for _, v := range in.Values {
			if v.Directives.Get("deprecated") != nil {
				return errors.Errorf("@deprecated is not legal on input field %q", v.Name).WithRule("InvalidDefault").At(v.Loc)
			}
		}
	}
	for _, d := range s.Directives {
		if err := checkNoDeprecatedArgs(d.Args); err != nil {
			return err
		}
	}
	return nil
}
