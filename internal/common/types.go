package common

import (
	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/internal/lexer"
)

// ParseType parses one Type production: NamedType, [Type], or Type!,
// grounded on the teacher's internal/common.ParseType. The result is the
// grammar's own nesting; the schema builder's TypeVisitor later inverts
// it into the canonical List/Nullable modifier stack of spec.md §3.3/§9.
func ParseType(l *lexer.Lexer) ast.Type {
	var t ast.Type
	if l.Peek() == '[' {
		l.ConsumeToken('[')
		ofType := ParseType(l)
		l.ConsumeToken(']')
		t = &ast.List{OfType: ofType}
	} else {
		name := l.ConsumeIdentWithLoc()
		t = &ast.TypeName{Ident: name}
	}
	if l.Peek() == '!' {
		l.ConsumeToken('!')
		t = &ast.NonNull{OfType: t}
	}
	return t
}
