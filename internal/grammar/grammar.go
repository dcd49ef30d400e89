// Package grammar implements the grammar-consistency analysis of spec.md
// §4.C: before the first document is parsed, report "cycles without
// progress" and refuse to run if any are found. The original C++
// generator gets this for free from tao/pegtl's peg::analyze<Rule>(),
// which walks a PEG grammar's rule *templates* for cycles (see
// _examples/original_source/samples/parser/parser.cpp). This module's
// parsers are hand-written recursive-descent functions, not PEG rule
// templates, so there is no rule table for a library to inspect;
// instead each grammar package (internal/query, internal/schema)
// authors its own production graph describing which productions can
// call which others, and whether that call is preceded by consuming a
// token. Analyze finds a cycle made entirely of no-progress edges,
// exactly the defect peg::analyze reports.
package grammar

import "fmt"

// Edge records that a production can call another production, To, and
// whether the call site first consumes a token (Progress). A cycle made
// up entirely of Progress=false edges means some production can recurse
// into itself forever without the lexer ever advancing.
type Edge struct {
	To       string
	Progress bool
}

// Grammar maps a production name to its outgoing edges.
type Grammar map[string][]Edge

// Analyze reports the first cycle reachable using only no-progress
// edges, or nil if g has none.
func Analyze(g Grammar) error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(g))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("cycles without progress detected: %v -> %s", path, name)
		}
		state[name] = visiting
		path = append(path, name)
		for _, e := range g[name] {
			if e.Progress {
				continue
			}
			if err := visit(e.To); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}

	for name := range g {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}
