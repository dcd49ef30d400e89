// Package query parses a GraphQL query document — the secondary grammar
// of spec.md §6 — into an *ast.ExecutableDefinition. It is grounded on
// the teacher's internal/query package (same recursive-descent shape,
// same function names) rebuilt on this module's ast and internal/lexer
// packages.
package query

import (
	"fmt"

	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/errors"
	"github.com/profusion/cppgraphqlgen/internal/common"
	"github.com/profusion/cppgraphqlgen/internal/lexer"
)

const (
	Query        ast.OperationType = "QUERY"
	Mutation     ast.OperationType = "MUTATION"
	Subscription ast.OperationType = "SUBSCRIPTION"
)

// Parse tokenizes and parses queryString as a full query document.
func Parse(queryString string) (*ast.ExecutableDefinition, *errors.QueryError) {
	l := lexer.NewLexer(queryString, false)

	var doc *ast.ExecutableDefinition
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
		doc = parseExecutableDefinition(l)
	})
	if err != nil {
		return nil, err
	}
	if overflow != nil {
		return nil, overflow
	}
	return doc, nil
}

func parseExecutableDefinition(l *lexer.Lexer) *ast.ExecutableDefinition {
	doc := &ast.ExecutableDefinition{}
	for l.Peek() != lexer.EOF {
		if l.Peek() == '{' {
			op := &ast.OperationDefinition{Type: Query, Loc: l.Location()}
			op.Selections = parseSelectionSet(l)
			doc.Operations = append(doc.Operations, op)
			continue
		}

		loc := l.Location()
		switch name := l.ConsumeIdent(); name {
		case "query":
			op := parseOperation(l, Query)
			op.Loc = loc
			doc.Operations = append(doc.Operations, op)

		case "mutation":
			op := parseOperation(l, Mutation)
			op.Loc = loc
			doc.Operations = append(doc.Operations, op)

		case "subscription":
			op := parseOperation(l, Subscription)
			op.Loc = loc
			doc.Operations = append(doc.Operations, op)

		case "fragment":
			frag := parseFragment(l)
			frag.Loc = loc
			doc.Fragments = append(doc.Fragments, frag)

		default:
			l.SyntaxError(fmt.Sprintf("unexpected %q, expecting \"query\", \"mutation\", \"subscription\" or \"fragment\"", name))
		}
	}
	return doc
}

func parseOperation(l *lexer.Lexer, opType ast.OperationType) *ast.OperationDefinition {
	op := &ast.OperationDefinition{Type: opType}
	if l.Peek() == lexer.Ident {
		op.Name = l.ConsumeIdentWithLoc()
	}
	if l.Peek() == '(' {
		l.ConsumeToken('(')
		for l.Peek() != ')' {
			loc := l.Location()
			l.ConsumeToken('$')
			iv := common.ParseInputValue(l)
			iv.Loc = loc
			op.Vars = append(op.Vars, iv)
		}
		l.ConsumeToken(')')
	}
	op.Directives = common.ParseDirectives(l, false)
	op.SelectionSetLoc = l.Location()
	op.Selections = parseSelectionSet(l)
	return op
}

func parseFragment(l *lexer.Lexer) *ast.FragmentDefinition {
	f := &ast.FragmentDefinition{}
	f.Name = l.ConsumeIdentWithLoc()
	l.ConsumeKeyword("on")
	f.On = ast.TypeName{Ident: l.ConsumeIdentWithLoc()}
	f.Directives = common.ParseDirectives(l, false)
	f.Selections = parseSelectionSet(l)
	return f
}

func parseSelectionSet(l *lexer.Lexer) []ast.Selection {
	var sels []ast.Selection
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		sels = append(sels, parseSelection(l))
	}
	l.ConsumeToken('}')
	return sels
}

func parseSelection(l *lexer.Lexer) ast.Selection {
	if l.Peek() == '.' {
		return parseSpread(l)
	}
	return parseField(l)
}

func parseField(l *lexer.Lexer) *ast.Field {
	f := &ast.Field{}
	f.Alias = l.ConsumeIdentWithLoc()
	f.Name = f.Alias
	if l.Peek() == ':' {
		l.ConsumeToken(':')
		f.Name = l.ConsumeIdentWithLoc()
	}
	f.Arguments = common.ParseArgumentList(l, false)
	f.Directives = common.ParseDirectives(l, false)
	if l.Peek() == '{' {
		f.SelectionSetLoc = l.Location()
		f.SelectionSet = parseSelectionSet(l)
	}
	return f
}

func parseSpread(l *lexer.Lexer) ast.Selection {
	loc := l.Location()
	l.ConsumeToken('.')
	l.ConsumeToken('.')
	l.ConsumeToken('.')

	if l.Peek() == lexer.Ident && !l.PeekKeyword("on") {
		ident := l.ConsumeIdentWithLoc()
		fs := &ast.FragmentSpread{Name: ident, Loc: loc}
		fs.Directives = common.ParseDirectives(l, false)
		return fs
	}

	frag := &ast.InlineFragment{Loc: loc}
	if l.PeekKeyword("on") {
		l.ConsumeKeyword("on")
		frag.On = ast.TypeName{Ident: l.ConsumeIdentWithLoc()}
	}
	frag.Directives = common.ParseDirectives(l, false)
	frag.Selections = parseSelectionSet(l)
	return frag
}
