package schema

import (
	"fmt"

	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/errors"
	"github.com/profusion/cppgraphqlgen/internal/common"
	"github.com/profusion/cppgraphqlgen/internal/lexer"
)

// Parse tokenizes and parses an SDL document into the raw, unresolved
// *ast.Schema: every top-level definition and `extend` found, in
// declaration order. It implements the schema grammar of component C;
// resolving names into a built Schema model is Build's job. Grounded on
// the teacher's internal/schema.parseSchema, generalized to also accept
// `extend` for every kind (spec.md §8's Extension commutativity property
// and the SchemaExtension supplement of SPEC_FULL.md §8).
func Parse(schemaString string) (*ast.Schema, *errors.QueryError) {
	l := lexer.NewLexer(schemaString, true)

	doc := &ast.Schema{}
	var overflow *errors.QueryError
	err := l.CatchSyntaxError(func() {
		defer func() {
			if r := recover(); r != nil {
				o, ok := common.IsOverflowPanic(r)
				if !ok {
					panic(r)
				}
				overflow = errors.Errorf("IntValue %s overflows 32-bit signed range", o.Text()).WithRule("Overflow").At(l.Location())
			}
		}()
		parseDocument(doc, l)
	})
	if err != nil {
		return nil, err
	}
	if overflow != nil {
		return nil, overflow
	}
	return doc, nil
}

func parseDocument(doc *ast.Schema, l *lexer.Lexer) {
	for l.Peek() != lexer.EOF {
		desc := l.DescComment()
		loc := l.Location()
		switch name := l.ConsumeIdent(); name {
		case "schema":
			parseSchemaDefinition(doc, l, desc, loc)
		case "type":
			o := parseObjectDecl(l, desc, loc)
			doc.Objects = append(doc.Objects, o)
			doc.DeclOrder = append(doc.DeclOrder, ast.DeclRef{Kind: "OBJECT", Name: o.Name, Loc: loc})
		case "interface":
			i := parseInterfaceDecl(l, desc, loc)
			doc.Interfaces = append(doc.Interfaces, i)
			doc.DeclOrder = append(doc.DeclOrder, ast.DeclRef{Kind: "INTERFACE", Name: i.Name, Loc: loc})
		case "union":
			u := parseUnionDecl(l, desc, loc)
			doc.Unions = append(doc.Unions, u)
			doc.DeclOrder = append(doc.DeclOrder, ast.DeclRef{Kind: "UNION", Name: u.Name, Loc: loc})
		case "enum":
			e := parseEnumDecl(l, desc, loc)
			doc.Enums = append(doc.Enums, e)
			doc.DeclOrder = append(doc.DeclOrder, ast.DeclRef{Kind: "ENUM", Name: e.Name, Loc: loc})
		case "input":
			in := parseInputDecl(l, desc, loc)
			doc.Inputs = append(doc.Inputs, in)
			doc.DeclOrder = append(doc.DeclOrder, ast.DeclRef{Kind: "INPUT_OBJECT", Name: in.Name, Loc: loc})
		case "scalar":
			ident := l.ConsumeIdentWithLoc()
			sc := &ast.ScalarTypeDefinition{
				Name: ident.Name, Desc: desc, Directives: common.ParseDirectives(l, true), Loc: loc,
			}
			doc.Scalars = append(doc.Scalars, sc)
			doc.DeclOrder = append(doc.DeclOrder, ast.DeclRef{Kind: "SCALAR", Name: sc.Name, Loc: loc})
		case "directive":
			doc.Directives = append(doc.Directives, parseDirectiveDecl(l, desc, loc))
		case "extend":
			ext := parseExtension(l, loc)
			doc.Extensions = append(doc.Extensions, ext)
			doc.DeclOrder = append(doc.DeclOrder, ast.DeclRef{Kind: ext.Kind, Name: ext.Name, IsExtension: true, Loc: loc})
		default:
			l.SyntaxError(fmt.Sprintf(`unexpected %q, expecting "schema", "type", "interface", "union", "enum", "input", "scalar", "directive" or "extend"`, name))
		}
	}
}

func parseSchemaDefinition(doc *ast.Schema, l *lexer.Lexer, desc string, loc errors.Location) {
	doc.SchemaDefinition.Present = true
	doc.SchemaDefinition.Desc = desc
	doc.SchemaDefinition.Loc = loc
	doc.SchemaDefinition.Directives = common.ParseDirectives(l, true)
	doc.SchemaDefinition.EntryPointNames = map[string]ast.Ident{}
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		name := l.ConsumeIdentWithLoc()
		l.ConsumeToken(':')
		typeIdent := l.ConsumeIdentWithLoc()
		doc.SchemaDefinition.EntryPointNames[name.Name] = typeIdent
	}
	l.ConsumeToken('}')
}

func parseObjectDecl(l *lexer.Lexer, desc string, loc errors.Location) *ast.ObjectTypeDefinition {
	o := &ast.ObjectTypeDefinition{Desc: desc, Loc: loc}
	ident := l.ConsumeIdentWithLoc()
	o.Name = ident.Name
	if l.PeekKeyword("implements") {
		l.ConsumeKeyword("implements")
		if l.Peek() == '&' {
			l.ConsumeToken('&')
		}
		o.InterfaceNames = append(o.InterfaceNames, l.ConsumeIdent())
		for l.Peek() == '&' {
			l.ConsumeToken('&')
			o.InterfaceNames = append(o.InterfaceNames, l.ConsumeIdent())
		}
	}
	common.ParseDirectives(l, true) // type-level directives are not modeled; parsed and discarded
	if l.Peek() == '{' {
		o.Fields = parseFieldsDefinition(l)
	}
	return o
}

func parseInterfaceDecl(l *lexer.Lexer, desc string, loc errors.Location) *ast.InterfaceTypeDefinition {
	i := &ast.InterfaceTypeDefinition{Desc: desc, Loc: loc}
	ident := l.ConsumeIdentWithLoc()
	i.Name = ident.Name
	common.ParseDirectives(l, true)
	if l.Peek() == '{' {
		i.Fields = parseFieldsDefinition(l)
	}
	return i
}

func parseUnionDecl(l *lexer.Lexer, desc string, loc errors.Location) *ast.Union {
	u := &ast.Union{Desc: desc, Loc: loc}
	ident := l.ConsumeIdentWithLoc()
	u.Name = ident.Name
	common.ParseDirectives(l, true)
	if l.Peek() == '=' {
		l.ConsumeToken('=')
		if l.Peek() == '|' {
			l.ConsumeToken('|')
		}
		u.TypeNames = append(u.TypeNames, l.ConsumeIdent())
		for l.Peek() == '|' {
			l.ConsumeToken('|')
			u.TypeNames = append(u.TypeNames, l.ConsumeIdent())
		}
	}
	return u
}

func parseEnumDecl(l *lexer.Lexer, desc string, loc errors.Location) *ast.EnumTypeDefinition {
	e := &ast.EnumTypeDefinition{Desc: desc, Loc: loc}
	ident := l.ConsumeIdentWithLoc()
	e.Name = ident.Name
	common.ParseDirectives(l, true)
	if l.Peek() == '{' {
		l.ConsumeToken('{')
		for l.Peek() != '}' {
			e.EnumValuesDefinition = append(e.EnumValuesDefinition, parseEnumValue(l))
		}
		l.ConsumeToken('}')
	}
	return e
}

func parseEnumValue(l *lexer.Lexer) *ast.EnumValueDefinition {
	v := &ast.EnumValueDefinition{Desc: l.DescComment(), Loc: l.Location()}
	v.EnumValue = l.ConsumeIdent()
	v.Directives = common.ParseDirectives(l, true)
	return v
}

func parseInputDecl(l *lexer.Lexer, desc string, loc errors.Location) *ast.InputObject {
	i := &ast.InputObject{Desc: desc, Loc: loc}
	ident := l.ConsumeIdentWithLoc()
	i.Name = ident.Name
	common.ParseDirectives(l, true)
	if l.Peek() == '{' {
		i.Values = common.ParseInputFieldList(l)
	}
	return i
}

func parseDirectiveDecl(l *lexer.Lexer, desc string, loc errors.Location) *ast.DirectiveDefinition {
	d := &ast.DirectiveDefinition{Desc: desc, Loc: loc}
	l.ConsumeToken('@')
	ident := l.ConsumeIdentWithLoc()
	d.Name = ident.Name
	d.Arguments = common.ParseArgumentDefinitionList(l)
	if l.PeekKeyword("repeatable") {
		l.ConsumeKeyword("repeatable")
		d.Repeatable = true
	}
	l.ConsumeKeyword("on")
	if l.Peek() == '|' {
		l.ConsumeToken('|')
	}
	d.Locations = append(d.Locations, l.ConsumeIdent())
	for l.Peek() == '|' {
		l.ConsumeToken('|')
		d.Locations = append(d.Locations, l.ConsumeIdent())
	}
	return d
}

func parseFieldsDefinition(l *lexer.Lexer) ast.FieldsDefinition {
	var fields ast.FieldsDefinition
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		fields = append(fields, parseFieldDefinition(l))
	}
	l.ConsumeToken('}')
	return fields
}

func parseFieldDefinition(l *lexer.Lexer) *ast.FieldDefinition {
	f := &ast.FieldDefinition{Desc: l.DescComment(), Loc: l.Location()}
	f.Name = l.ConsumeIdent()
	f.Arguments = common.ParseArgumentDefinitionList(l)
	l.ConsumeToken(':')
	f.Type = common.ParseType(l)
	f.Directives = common.ParseDirectives(l, true)
	return f
}

// parseExtension parses `extend <kind> Name { ... }` (or `extend schema {
// ... }`), the SchemaExtension and per-kind extensions supplemented by
// SPEC_FULL.md §8, grounded on the `extend` handling described in
// original_source/ (GraphQLTree.cpp / SchemaGenerator.cpp).
func parseExtension(l *lexer.Lexer, loc errors.Location) *ast.Extension {
	ext := &ast.Extension{Loc: loc}
	switch kw := l.ConsumeIdent(); kw {
	case "schema":
		ext.Kind = "SCHEMA"
		ext.Directives = common.ParseDirectives(l, true)
		ext.SchemaOperations = map[string]ast.Ident{}
		l.ConsumeToken('{')
		for l.Peek() != '}' {
			name := l.ConsumeIdentWithLoc()
			l.ConsumeToken(':')
			typeIdent := l.ConsumeIdentWithLoc()
			ext.SchemaOperations[name.Name] = typeIdent
		}
		l.ConsumeToken('}')

	case "type":
		ext.Kind = "OBJECT"
		ident := l.ConsumeIdentWithLoc()
		ext.Name = ident.Name
		if l.PeekKeyword("implements") {
			l.ConsumeKeyword("implements")
			if l.Peek() == '&' {
				l.ConsumeToken('&')
			}
			ext.InterfaceNames = append(ext.InterfaceNames, l.ConsumeIdent())
			for l.Peek() == '&' {
				l.ConsumeToken('&')
				ext.InterfaceNames = append(ext.InterfaceNames, l.ConsumeIdent())
			}
		}
		ext.Directives = common.ParseDirectives(l, true)
		if l.Peek() == '{' {
			ext.Fields = parseFieldsDefinition(l)
		}

	case "interface":
		ext.Kind = "INTERFACE"
		ident := l.ConsumeIdentWithLoc()
		ext.Name = ident.Name
		ext.Directives = common.ParseDirectives(l, true)
		if l.Peek() == '{' {
			ext.Fields = parseFieldsDefinition(l)
		}

	case "union":
		ext.Kind = "UNION"
		ident := l.ConsumeIdentWithLoc()
		ext.Name = ident.Name
		ext.Directives = common.ParseDirectives(l, true)
		if l.Peek() == '=' {
			l.ConsumeToken('=')
			if l.Peek() == '|' {
				l.ConsumeToken('|')
			}
			ext.UnionTypeNames = append(ext.UnionTypeNames, l.ConsumeIdent())
			for l.Peek() == '|' {
				l.ConsumeToken('|')
				ext.UnionTypeNames = append(ext.UnionTypeNames, l.ConsumeIdent())
			}
		}

	case "enum":
		ext.Kind = "ENUM"
		ident := l.ConsumeIdentWithLoc()
		ext.Name = ident.Name
		ext.Directives = common.ParseDirectives(l, true)
		if l.Peek() == '{' {
			l.ConsumeToken('{')
			for l.Peek() != '}' {
				ext.EnumValues = append(ext.EnumValues, parseEnumValue(l))
			}
			l.ConsumeToken('}')
		}

	case "input":
		ext.Kind = "INPUT_OBJECT"
		ident := l.ConsumeIdentWithLoc()
		ext.Name = ident.Name
		ext.Directives = common.ParseDirectives(l, true)
		if l.Peek() == '{' {
			ext.InputValues = common.ParseInputFieldList(l)
		}

	case "scalar":
		ext.Kind = "SCALAR"
		ident := l.ConsumeIdentWithLoc()
		ext.Name = ident.Name
		ext.Directives = common.ParseDirectives(l, true)

	default:
		l.SyntaxError(fmt.Sprintf(`unexpected %q, expecting "schema", "type", "interface", "union", "enum", "input" or "scalar"`, kw))
	}
	return ext
}
