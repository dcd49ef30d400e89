package query

import "testing"

func TestCheckGrammarConsistency(t *testing.T) {
	if err := CheckGrammarConsistency(); err != nil {
		t.Fatalf("query grammar has a cycle without progress: %v", err)
	}
}
