// Package common holds the grammar productions shared between the schema
// and query parsers: literal values, type references, argument lists,
// directive lists, and input value definitions. It is grounded on the
// teacher's internal/common package (same file-per-production layout,
// same function names), adapted to build the typed ast package nodes
// defined in this module rather than the teacher's own ast types.
package common

import (
	"math"
	"strconv"

	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/internal/lexer"
)

// ParseValue parses one GraphQL Value production. constOnly rejects a
// `$variable` reference, which is how both schema default values and
// const-context arguments reject variables per the grammar.
func ParseValue(l *lexer.Lexer, constOnly bool) ast.Value {
	loc := l.Location()
	switch l.Peek() {
	case '$':
		if constOnly {
			l.SyntaxError("variable not allowed in a const context")
		}
		l.ConsumeToken('$')
		name := l.ConsumeIdent()
		return &ast.Variable{Name: name, Loc: loc}

	case lexer.Int:
		_, text, _ := l.ConsumeLiteral()
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
			panic(overflowPanic{text})
		}
		return &ast.IntValue{Value: int32(n), Loc: loc}

	case lexer.Float:
		_, text, _ := l.ConsumeLiteral()
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.SyntaxError("invalid FloatValue " + text)
		}
		return &ast.FloatValue{Value: f, Loc: loc}

	case lexer.String:
		_, _, lit := l.ConsumeLiteral()
		return &ast.StringValue{Block: lit.Block, Unescaped: lit.Unescaped, Loc: loc}

	case lexer.Ident:
		text := l.TokenText()
		switch text {
		case "true":
			l.ConsumeIdent()
			return &ast.BooleanValue{Value: true, Loc: loc}
		case "false":
			l.ConsumeIdent()
			return &ast.BooleanValue{Value: false, Loc: loc}
		case "null":
			l.ConsumeIdent()
			return &ast.NullValue{Loc: loc}
		default:
			name := l.ConsumeIdent()
			return &ast.EnumValue{Name: name, Loc: loc}
		}

	case '[':
		l.ConsumeToken('[')
		var values []ast.Value
		for l.Peek() != ']' {
			values = append(values, ParseValue(l, constOnly))
		}
		l.ConsumeToken(']')
		return &ast.ListValue{Values: values, Loc: loc}

	case '{':
		l.ConsumeToken('{')
		var fields []*ast.ObjectField
		for l.Peek() != '}' {
			name := l.ConsumeIdentWithLoc()
			l.ConsumeToken(':')
			value := ParseValue(l, constOnly)
			fields = append(fields, &ast.ObjectField{Name: name, Value: value})
		}
		l.ConsumeToken('}')
		return &ast.ObjectValue{Fields: fields, Loc: loc}

	default:
		l.Expect("Value")
		panic("unreachable")
	}
}

// overflowPanic is recovered by the schema/query Parse entrypoints and
// turned into an *errors.QueryError tagged "Overflow", matching how the
// JSON decoder reports the same condition (spec.md §7).
type overflowPanic struct{ text string }

func (o overflowPanic) Text() string { return o.text }

// IsOverflowPanic reports whether r (a recovered panic value) was raised
// by ParseValue's IntValue overflow check.
func IsOverflowPanic(r interface{}) (overflowPanic, bool) {
	o, ok := r.(overflowPanic)
	return o, ok
}
