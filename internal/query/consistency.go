package query

import "github.com/profusion/cppgraphqlgen/internal/grammar"

// productionGraph mirrors parseExecutableDefinition and its callees in
// query.go: every production below dispatches on a concrete lookahead
// token (l.Peek()) or consumes one outright (l.ConsumeToken/ConsumeIdent)
// before it recurses into another production, so every edge here already
// carries progress. CheckGrammarConsistency runs the same cycle search
// the teacher's analogue would, over this graph, so the absence of a
// no-progress cycle is a checked fact rather than an assumption.
var productionGraph = grammar.Grammar{
	"ExecutableDefinition": {
		{To: "SelectionSet", Progress: true},        // bare `{ ... }` shorthand query
		{To: "OperationDefinition", Progress: true}, // after ConsumeIdent("query"/"mutation"/"subscription")
		{To: "FragmentDefinition", Progress: true},  // after ConsumeIdent("fragment")
	},
	"OperationDefinition": {
		{To: "SelectionSet", Progress: true},
	},
	"FragmentDefinition": {
		{To: "SelectionSet", Progress: true},
	},
	"SelectionSet": {
		{To: "Selection", Progress: true}, // after ConsumeToken('{')
	},
	"Selection": {
		{To: "Field", Progress: true},  // l.Peek() != '.'
		{To: "Spread", Progress: true}, // l.Peek() == '.'
	},
	"Field": {
		{To: "SelectionSet", Progress: true}, // only entered when l.Peek() == '{'
	},
	"Spread": {
		{To: "SelectionSet", Progress: true}, // inline fragment body, after consuming "..." and optional "on Type"
	},
}

// CheckGrammarConsistency runs the cycles-without-progress analysis over
// the query grammar's production graph, per spec.md §4.C.
func CheckGrammarConsistency() error {
	return grammar.Analyze(productionGraph)
}
