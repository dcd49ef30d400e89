package schema

import "testing"

func TestCheckGrammarConsistency(t *testing.T) {
	if err := CheckGrammarConsistency(); err != nil {
		t.Fatalf("schema grammar has a cycle without progress: %v", err)
	}
}
