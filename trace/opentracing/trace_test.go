package opentracing_test

import (
	"context"
	"testing"

	ot "github.com/opentracing/opentracing-go"
	jaeger "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegermetrics "github.com/uber/jaeger-lib/metrics"
	"github.com/stretchr/testify/require"

	"github.com/profusion/cppgraphqlgen/errors"
	"github.com/profusion/cppgraphqlgen/trace/opentracing"
	"github.com/profusion/cppgraphqlgen/trace/tracer"
)

func TestTracerSatisfiesInterface(t *testing.T) {
	var _ tracer.Tracer = opentracing.Tracer{}
}

// newTestTracer wires a real jaeger-client-go tracer, configured through
// its jaegercfg package the way a host process would, with an in-memory
// reporter so span.Finish() can be observed without a collector, and
// jaeger-lib's NullFactory standing in for a real metrics backend.
func newTestTracer() (ot.Tracer, *jaeger.InMemoryReporter) {
	reporter := jaeger.NewInMemoryReporter()
	cfg := jaegercfg.Configuration{
		ServiceName: "cppgraphqlgen-test",
		Sampler:     &jaegercfg.SamplerConfig{Type: "const", Param: 1},
	}
	tr, _, _ := cfg.NewTracer(
		jaegercfg.Reporter(reporter),
		jaegercfg.Metrics(jaegermetrics.NullFactory),
	)
	return tr, reporter
}

func TestTraceParseRecordsFinishedSpan(t *testing.T) {
	tr, reporter := newTestTracer()
	ot.SetGlobalTracer(tr)

	ctx, finish := opentracing.Tracer{}.TraceParse(context.Background(), 123)
	require.NotNil(t, ctx)
	require.Empty(t, reporter.GetSpans())

	finish(nil)
	require.Len(t, reporter.GetSpans(), 1)
}

func TestTraceBuildTagsErrorOnFailure(t *testing.T) {
	tr, reporter := newTestTracer()
	ot.SetGlobalTracer(tr)

	_, finish := opentracing.Tracer{}.TraceBuild(context.Background(), "build-id")
	finish(errors.Errorf("build failed"))

	spans := reporter.GetSpans()
	require.Len(t, spans, 1)
	span := spans[0].(*jaeger.Span)
	require.True(t, span.Context().(jaeger.SpanContext).IsSampled())
	require.Equal(t, true, span.Tags()["error"])
}

func TestTraceValidateReturnsUsableFinishFunc(t *testing.T) {
	tr, reporter := newTestTracer()
	ot.SetGlobalTracer(tr)

	ctx, finish := opentracing.Tracer{}.TraceValidate(context.Background(), "build-id")
	require.NotNil(t, ctx)
	require.NotPanics(t, func() { finish(nil) })
	require.Len(t, reporter.GetSpans(), 1)
}
