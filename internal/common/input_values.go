package common

import (
	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/internal/lexer"
)

// ParseInputValue parses one `name: Type = default @directives` production,
// shared by argument declarations and input-object fields, grounded on the
// teacher's internal/common.ParseInputValue.
func ParseInputValue(l *lexer.Lexer) *ast.InputValueDefinition {
	desc := l.DescComment()
	loc := l.Location()
	name := l.ConsumeIdentWithLoc()
	l.ConsumeToken(':')
	typeLoc := l.Location()
	typ := ParseType(l)
	v := &ast.InputValueDefinition{Name: name, Type: typ, Desc: desc, Loc: loc, TypeLoc: typeLoc}
	if l.Peek() == '=' {
		l.ConsumeToken('=')
		v.Default = ParseValue(l, true)
	}
	v.Directives = ParseDirectives(l, true)
	return v
}

// ParseArgumentDefinitionList parses an optional `(name: Type, ...)`
// argument-declaration list, as found on a field or directive definition.
func ParseArgumentDefinitionList(l *lexer.Lexer) ast.InputValueList {
	if l.Peek() != '(' {
		return nil
	}
	var args ast.InputValueList
	l.ConsumeToken('(')
	for l.Peek() != ')' {
		args = append(args, ParseInputValue(l))
	}
	l.ConsumeToken(')')
	return args
}

// ParseInputFieldList parses the `{ name: Type, ... }` body of an `input`
// type definition or its extension.
func ParseInputFieldList(l *lexer.Lexer) ast.InputValueList {
	var fields ast.InputValueList
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		fields = append(fields, ParseInputValue(l))
	}
	l.ConsumeToken('}')
	return fields
}
