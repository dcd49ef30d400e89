// Package compiler is the public entry point of spec.md §6: it wires the
// grammar parser, the schema model builder and validator, and the query
// parser together, and stamps every build/parse with tracing, latency
// metrics, and a ksuid build identity, per SPEC_FULL.md §2. It performs
// no code generation and no resolver dispatch — those remain external
// collaborators.
package compiler

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/profusion/cppgraphqlgen/ast"
	"github.com/profusion/cppgraphqlgen/errors"
	"github.com/profusion/cppgraphqlgen/internal/metrics"
	"github.com/profusion/cppgraphqlgen/internal/query"
	"github.com/profusion/cppgraphqlgen/internal/schema"
	"github.com/profusion/cppgraphqlgen/trace/noop"
	"github.com/profusion/cppgraphqlgen/trace/tracer"
)

// Options configures a Compiler. There is no external flag-parsing
// library wired here: the CLI surrounding the code generator is out of
// scope per spec.md §1, so there is no flag surface for one to parse.
type Options struct {
	// Tracer observes phase boundaries. Defaults to trace/noop.Tracer.
	Tracer tracer.Tracer
	// Metrics accumulates phase latency distributions. Defaults to a
	// fresh *metrics.Recorder.
	Metrics *metrics.Recorder
}

// Compiler runs the parse/build/validate pipeline for one host process.
// It is safe for concurrent use: the pipeline itself is a pure function
// per call (spec.md §5), and Metrics/Tracer are the only shared state.
type Compiler struct {
	tracer  tracer.Tracer
	metrics *metrics.Recorder

	consistencyOnce sync.Once
	consistencyErr  *errors.QueryError
}

// checkGrammarConsistency runs the cycles-without-progress analysis of
// spec.md §4.C over both grammars exactly once per Compiler, before the
// first document is parsed, and remembers the verdict: if either
// grammar's production graph contains a no-progress cycle, every
// subsequent ParseQuery/CompileSchema call on this Compiler refuses to
// run rather than re-checking (or silently parsing anyway).
func (c *Compiler) checkGrammarConsistency() *errors.QueryError {
	c.consistencyOnce.Do(func() {
		if err := query.CheckGrammarConsistency(); err != nil {
			c.consistencyErr = errors.Errorf("query grammar consistency check failed: %v", err).WithRule("GrammarInconsistent")
			return
		}
		if err := schema.CheckGrammarConsistency(); err != nil {
			c.consistencyErr = errors.Errorf("schema grammar consistency check failed: %v", err).WithRule("GrammarInconsistent")
		}
	})
	return c.consistencyErr
}

// New builds a Compiler from opts, filling in defaults for any field left
// zero.
func New(opts Options) *Compiler {
	c := &Compiler{tracer: opts.Tracer, metrics: opts.Metrics}
	if c.tracer == nil {
		c.tracer = noop.Tracer{}
	}
	if c.metrics == nil {
		c.metrics = metrics.NewRecorder()
	}
	return c
}

// Document is a parsed query document (spec.md §6's secondary output)
// stamped with a build identity so a host can correlate it with the
// schema it will be validated and executed against.
type Document struct {
	*ast.ExecutableDefinition
	ParseID string
}

// ParseQuery runs the query parser (component C's secondary grammar)
// under tracing and latency observation.
func (c *Compiler) ParseQuery(ctx context.Context, queryString string) (*Document, *errors.QueryError) {
	if err := c.checkGrammarConsistency(); err != nil {
		return nil, err
	}
	start := time.Now()
	ctx, finish := c.tracer.TraceParse(ctx, len(queryString))
	doc, err := query.Parse(queryString)
	finish(err)
	c.metrics.RecordParse(time.Since(start), err != nil)
	if err != nil {
		return nil, err
	}
	return &Document{ExecutableDefinition: doc, ParseID: ksuid.New().String()}, nil
}

// CompileSchema runs the full pipeline over an SDL document: grammar
// parse (component C), schema build (component D), and validation
// (component E). The returned Schema is stamped with a ksuid BuildID.
func (c *Compiler) CompileSchema(ctx context.Context, sdl string) (*schema.Schema, *errors.QueryError) {
	if err := c.checkGrammarConsistency(); err != nil {
		return nil, err
	}
	parseStart := time.Now()
	ctx, finishParse := c.tracer.TraceParse(ctx, len(sdl))
	doc, err := schema.Parse(sdl)
	finishParse(err)
	c.metrics.RecordParse(time.Since(parseStart), err != nil)
	if err != nil {
		return nil, err
	}

	buildID := ksuid.New().String()

	buildStart := time.Now()
	ctx, finishBuild := c.tracer.TraceBuild(ctx, buildID)
	s, err := schema.Build(doc)
	finishBuild(err)
	c.metrics.RecordBuild(time.Since(buildStart), err != nil)
	if err != nil {
		return nil, err
	}
	s.BuildID = buildID

	validateStart := time.Now()
	_, finishValidate := c.tracer.TraceValidate(ctx, buildID)
	verr := schema.Validate(s)
	finishValidate(verr)
	c.metrics.RecordValidate(time.Since(validateStart), verr != nil)
	if verr != nil {
		return nil, verr
	}

	return s, nil
}

// Report snapshots the Compiler's accumulated latency/error metrics.
func (c *Compiler) Report() metrics.BuildReport {
	return c.metrics.Report()
}
