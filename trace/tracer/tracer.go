// Package tracer defines the Tracer interface the compiler entry point
// calls around each phase. It is grounded on the teacher's
// trace/tracer.Tracer (same around-call shape: a start hook returning a
// context and a finish func), retargeted from query execution
// (TraceQuery/TraceField) to the three phases this core actually runs
// (TraceParse/TraceBuild/TraceValidate) since resolver dispatch is out of
// scope.
package tracer

import (
	"context"

	"github.com/profusion/cppgraphqlgen/errors"
)

type ParseFinishFunc func(*errors.QueryError)
type BuildFinishFunc func(*errors.QueryError)
type ValidateFinishFunc func(*errors.QueryError)

// Tracer is implemented by anything that wants to observe compiler phase
// boundaries: OpenTracing spans, metrics, logging.
type Tracer interface {
	TraceParse(ctx context.Context, sourceLen int) (context.Context, ParseFinishFunc)
	TraceBuild(ctx context.Context, buildID string) (context.Context, BuildFinishFunc)
	TraceValidate(ctx context.Context, buildID string) (context.Context, ValidateFinishFunc)
}
