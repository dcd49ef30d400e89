package grammar

import "testing"

func TestAnalyzeAcceptsAcyclicGraph(t *testing.T) {
	g := Grammar{
		"A": {{To: "B", Progress: true}},
		"B": {{To: "C", Progress: true}},
		"C": {},
	}
	if err := Analyze(g); err != nil {
		t.Fatalf("unexpected cycle: %v", err)
	}
}

func TestAnalyzeIgnoresCyclesThatMakeProgress(t *testing.T) {
	g := Grammar{
		"A": {{To: "B", Progress: true}},
		"B": {{To: "A", Progress: true}},
	}
	if err := Analyze(g); err != nil {
		t.Fatalf("progress-bearing cycle must not be reported: %v", err)
	}
}

func TestAnalyzeDetectsNoProgressCycle(t *testing.T) {
	g := Grammar{
		"A": {{To: "B", Progress: false}},
		"B": {{To: "A", Progress: false}},
	}
	if err := Analyze(g); err == nil {
		t.Fatal("expected a cycles-without-progress error")
	}
}
