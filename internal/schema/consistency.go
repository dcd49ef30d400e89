package schema

import "github.com/profusion/cppgraphqlgen/internal/grammar"

// productionGraph mirrors parseDocument and its callees in parse.go
// (plus internal/common's ParseType/ParseInputValue helpers, which both
// grammars share): every production dispatches on ConsumeIdent or a
// concrete lookahead token before recursing, so every edge here already
// carries progress. ParseType's own recursion into itself for `[T]` is
// guarded by consuming '[' first, so it too is progress-bearing.
var productionGraph = grammar.Grammar{
	"Document": {
		{To: "SchemaDefinition", Progress: true},
		{To: "TypeDefinition", Progress: true},
		{To: "DirectiveDefinition", Progress: true},
		{To: "Extension", Progress: true},
	},
	"TypeDefinition": {
		{To: "FieldsDefinition", Progress: true},      // type/interface bodies
		{To: "InputFieldsDefinition", Progress: true}, // input object bodies
		{To: "Type", Progress: true},                  // union member / enum value lists consume idents directly
	},
	"FieldsDefinition": {
		{To: "ArgumentsDefinition", Progress: true},
		{To: "Type", Progress: true},
	},
	"ArgumentsDefinition": {
		{To: "InputValueDefinition", Progress: true},
	},
	"InputFieldsDefinition": {
		{To: "InputValueDefinition", Progress: true},
	},
	"InputValueDefinition": {
		{To: "Type", Progress: true},
	},
	"Type": {
		{To: "Type", Progress: true}, // `[T]`, only after consuming '['
	},
	"DirectiveDefinition": {
		{To: "ArgumentsDefinition", Progress: true},
	},
	"Extension": {
		{To: "FieldsDefinition", Progress: true},
		{To: "InputFieldsDefinition", Progress: true},
	},
	"SchemaDefinition": {},
}

// CheckGrammarConsistency runs the cycles-without-progress analysis over
// the schema grammar's production graph, per spec.md §4.C.
func CheckGrammarConsistency() error {
	return grammar.Analyze(productionGraph)
}
