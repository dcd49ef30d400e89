package common

import (
	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/internal/lexer"
)

// ParseArgumentList parses an optional `(name: value, ...)` production,
// grounded on the teacher's internal/common.ParseArguments. constOnly
// forces every argument value into a const context (used when parsing
// directive arguments that appear in a schema, per spec.md §4.D).
func ParseArgumentList(l *lexer.Lexer, constOnly bool) ast.ArgumentList {
	if l.Peek() != '(' {
		return nil
	}
	var args ast.ArgumentList
	l.ConsumeToken('(')
	for l.Peek() != ')' {
		name := l.ConsumeIdentWithLoc()
		l.ConsumeToken(':')
		value := ParseValue(l, constOnly)
		args = append(args, &ast.Argument{Name: name, Value: value})
	}
	l.ConsumeToken(')')
	return args
}
