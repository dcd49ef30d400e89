package common_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/internal/common"
	"github.com/profusion/cppgraphqlgen/internal/lexer"
)

func TestParseTypeNonNullList(t *testing.T) {
	l := lexer.NewLexer(`[Int!]!`, false)
	typ := common.ParseType(l)
	require.Equal(t, "[Int!]!", typ.String())
	nn, ok := typ.(*ast.NonNull)
	require.True(t, ok)
	list, ok := nn.OfType.(*ast.List)
	require.True(t, ok)
	inner, ok := list.OfType.(*ast.NonNull)
	require.True(t, ok)
	name, ok := inner.OfType.(*ast.TypeName)
	require.True(t, ok)
	require.Equal(t, "Int", name.Name)
}

func TestParseValueLiterals(t *testing.T) {
	l := lexer.NewLexer(`42`, false)
	v := common.ParseValue(l, true)
	iv, ok := v.(*ast.IntValue)
	require.True(t, ok)
	require.EqualValues(t, 42, iv.Value)
}

func TestParseValueRejectsVariableInConstContext(t *testing.T) {
	l := lexer.NewLexer(`$x`, false)
	var caught interface{}
	func() {
		defer func() { caught = recover() }()
		common.ParseValue(l, true)
	}()
	require.NotNil(t, caught)
}

func TestParseValueAllowsVariableInNonConstContext(t *testing.T) {
	l := lexer.NewLexer(`$x`, false)
	v := common.ParseValue(l, false)
	vv, ok := v.(*ast.Variable)
	require.True(t, ok)
	require.Equal(t, "x", vv.Name)
}

func TestParseValueIntOverflowPanics(t *testing.T) {
	l := lexer.NewLexer(`99999999999`, false)
	var caught interface{}
	func() {
		defer func() { caught = recover() }()
		common.ParseValue(l, true)
	}()
	require.NotNil(t, caught)
	_, ok := common.IsOverflowPanic(caught)
	require.True(t, ok)
}

func TestParseValueListAndObject(t *testing.T) {
	l := lexer.NewLexer(`[1, 2, 3]`, false)
	v := common.ParseValue(l, true)
	lv, ok := v.(*ast.ListValue)
	require.True(t, ok)
	require.Len(t, lv.Values, 3)

	l2 := lexer.NewLexer(`{x: 1, y: "s"}`, false)
	v2 := common.ParseValue(l2, true)
	ov, ok := v2.(*ast.ObjectValue)
	require.True(t, ok)
	require.Len(t, ov.Fields, 2)
	require.Equal(t, "x", ov.Fields[0].Name.Name)
}

func TestParseArgumentList(t *testing.T) {
	l := lexer.NewLexer(`(id: 1, name: "bob")`, false)
	args := common.ParseArgumentList(l, true)
	require.Len(t, args, 2)
	v, ok := args.Get("name")
	require.True(t, ok)
	sv, ok := v.(*ast.StringValue)
	require.True(t, ok)
	require.Equal(t, "bob", sv.Unescaped.Text())
}

func TestParseDirectives(t *testing.T) {
	l := lexer.NewLexer(`@deprecated(reason: "old") @skip(if: true)`, false)
	dirs := common.ParseDirectives(l, true)
	require.Len(t, dirs, 2)
	dep := dirs.Get("deprecated")
	require.NotNil(t, dep)
	v, ok := dep.Arguments.Get("reason")
	require.True(t, ok)
	sv := v.(*ast.StringValue)
	require.Equal(t, "old", sv.Unescaped.Text())
}

func TestParseArgumentDefinitionListWithDefault(t *testing.T) {
	l := lexer.NewLexer(`(limit: Int = 10)`, false)
	args := common.ParseArgumentDefinitionList(l)
	require.Len(t, args, 1)
	require.Equal(t, "limit", args[0].Name.Name)
	require.NotNil(t, args[0].Default)
}

func TestParseInputFieldList(t *testing.T) {
	l := lexer.NewLexer(`{ name: String! age: Int }`, false)
	fields := common.ParseInputFieldList(l)
	require.Len(t, fields, 2)
	require.Equal(t, "name", fields[0].Name.Name)
	require.Equal(t, "age", fields[1].Name.Name)
}
