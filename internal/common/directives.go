package common

import (
	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/internal/lexer"
)

// ParseDirectives parses zero or more `@name(args)` annotations, grounded
// on the teacher's internal/common.ParseDirectives. constOnly is forwarded
// to ParseArgumentList: directive arguments in a schema are always const.
func ParseDirectives(l *lexer.Lexer, constOnly bool) ast.DirectiveList {
	var directives ast.DirectiveList
	for l.Peek() == '@' {
		l.ConsumeToken('@')
		name := l.ConsumeIdentWithLoc()
		args := ParseArgumentList(l, constOnly)
		directives = append(directives, &ast.Directive{Name: name, Arguments: args})
	}
	return directives
}
