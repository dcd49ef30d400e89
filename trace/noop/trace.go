// Package noop is the default Tracer: every phase hook is a no-op, so a
// caller that never configures a real Tracer pays nothing for tracing.
package noop

import (
	"context"

	"github.com/profusion/cppgraphqlgen/errors"
	"github.com/profusion/cppgraphqlgen/trace/tracer"
)

type Tracer struct{}

func (Tracer) TraceParse(ctx context.Context, sourceLen int) (context.Context, tracer.ParseFinishFunc) {
	return ctx, func(*errors.QueryError) {}
}

func (Tracer) TraceBuild(ctx context.Context, buildID string) (context.Context, tracer.BuildFinishFunc) {
	return ctx, func(*errors.QueryError) {}
}

func (Tracer) TraceValidate(ctx context.Context, buildID string) (context.Context, tracer.ValidateFinishFunc) {
	return ctx, func(*errors.QueryError) {}
}
