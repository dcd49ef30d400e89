// Package opentracing implements tracer.Tracer on top of
// github.com/opentracing/opentracing-go, grounded on the teacher's
// trace/opentracing/trace.go (same StartSpanFromContext/SetTag/Finish
// shape), retargeted at the compiler's three phases instead of query
// execution.
package opentracing

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"github.com/profusion/cppgraphqlgen/errors"
	"github.com/profusion/cppgraphqlgen/trace/tracer"
)

// Tracer creates an OpenTracing span for each compiler phase.
type Tracer struct{}

func (Tracer) TraceParse(ctx context.Context, sourceLen int) (context.Context, tracer.ParseFinishFunc) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, "graphql.Parse")
	span.SetTag("graphql.source_len", sourceLen)
	return spanCtx, func(err *errors.QueryError) {
		finishSpan(span, err)
	}
}

func (Tracer) TraceBuild(ctx context.Context, buildID string) (context.Context, tracer.BuildFinishFunc) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, "graphql.Build")
	span.SetTag("graphql.build_id", buildID)
	return spanCtx, func(err *errors.QueryError) {
		finishSpan(span, err)
	}
}

func (Tracer) TraceValidate(ctx context.Context, buildID string) (context.Context, tracer.ValidateFinishFunc) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, "graphql.Validate")
	span.SetTag("graphql.build_id", buildID)
	return spanCtx, func(err *errors.QueryError) {
		finishSpan(span, err)
	}
}

func finishSpan(span opentracing.Span, err *errors.QueryError) {
	if err != nil {
		ext.Error.Set(span, true)
		span.SetTag("graphql.error", err.Error())
	}
	span.Finish()
}
