package schema

import (
	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/errors"
)

// mergeExtensions applies every `extend` declaration onto its already-
// built base, appending new fields/values/members, union-merging
// interface lists, and rejecting a duplicate field/value name within the
// merged type, per spec.md §4.D "Extensions" and the Extension
// commutativity property of §8 property 7: extensions are applied in
// document order, so two non-overlapping extensions merge in the order
// they appeared.
func mergeExtensions(s *Schema, doc *ast.Schema) *errors.QueryError {
	for _, ext := range doc.Extensions {
		if ext.Kind == "SCHEMA" {
			for op, ident := range ext.SchemaOperations {
				t, ok := s.Types[ident.Name]
				if !ok {
					return errors.Errorf("type %q not found", ident.Name).WithRule("UnknownType").At(ext.Loc)
				}
				obj, ok := t.(*Object)
				if !ok {
					return errors.Errorf("entry point %q must be an object type", op).WithRule("KindMismatch").At(ext.Loc)
				}
				s.EntryPoints[op] = obj
			}
			continue
		}

		base, ok := s.Types[ext.Name]
		if !ok {
			return errors.Errorf("cannot extend unknown type %q", ext.Name).WithRule("UnknownType").At(ext.Loc)
		}
		if base.Kind() != ext.Kind {
			return errors.Errorf("cannot extend %q as %s, it is a %s", ext.Name, ext.Kind, base.Kind()).WithRule("KindMismatch").At(ext.Loc)
		}

		switch t := base.(type) {
		case *Object:
			newFields, err := buildFieldList(s, ext.Fields)
			if err != nil {
				return err
			}
			if err := appendFields(&t.Fields, newFields); err != nil {
				return err
			}
			ifaces, err := resolveInterfaceNames(s, ext.InterfaceNames)
			if err != nil {
				return err
			}
			for _, iface := range ifaces {
				if !containsInterface(t.Interfaces, iface) {
					t.Interfaces = append(t.Interfaces, iface)
					iface.PossibleTypes = append(iface.PossibleTypes, t)
				}
			}

		case *Interface:
			newFields, err := buildFieldList(s, ext.Fields)
			if err != nil {
				return err
			}
			for _, f := range newFields {
				f.IsInterfaceField = true
			}
			if err := appendFields(&t.Fields, newFields); err != nil {
				return err
			}

		case *Union:
			members, err := resolveUnionMembers(s, ext.UnionTypeNames)
			if err != nil {
				return err
			}
			for _, m := range members {
				if !containsObject(t.PossibleTypes, m) {
					t.PossibleTypes = append(t.PossibleTypes, m)
				}
			}

		case *Enum:
			newValues, err := buildEnumValues(ext.EnumValues)
			if err != nil {
				return err
			}
			if err := appendEnumValues(&t.Values, newValues); err != nil {
				return err
			}

		case *InputObject:
			newValues, err := buildInputValueList(s, ext.InputValues)
			if err != nil {
				return err
			}
			if err := appendInputValues(&t.Values, newValues); err != nil {
				return err
			}

		case *Scalar:
			// Directives-only extension: nothing structural to merge.
		}
	}
	return nil
}

func appendFields(existing *FieldList, add FieldList) *errors.QueryError {
	for _, f := range add {
		if existing.Get(f.Name) != nil {
			return errors.Errorf("field %q defined more than once", f.Name).WithRule("DuplicateDefinition").At(f.Loc)
		}
		*existing = append(*existing, f)
	}
	return nil
}

func appendEnumValues(existing *[]*EnumValue, add []*EnumValue) *errors.QueryError {
	for _, v := range add {
		for _, e := range *existing {
			if e.Name == v.Name {
				return errors.Errorf("enum value %q defined more than once", v.Name).WithRule("DuplicateDefinition").At(v.Loc)
			}
		}
		*existing = append(*existing, v)
	}
	return nil
}

func appendInputValues(existing *InputValueList, add InputValueList) *errors.QueryError {
	for _, v := range add {
		if existing.Get(v.Name) != nil {
			return errors.Errorf("%q defined more than once", v.Name).WithRule("DuplicateDefinition").At(v.Loc)
		}
		*existing = append(*existing, v)
	}
	return nil
}

func containsInterface(l []*Interface, t *Interface) bool {
	for _, x := range l {
		if x == t {
			return true
		}
	}
	return false
}

func containsObject(l []*Object, t *Object) bool {
	for _, x := range l {
		if x == t {
			return true
		}
	}
	return false
}
