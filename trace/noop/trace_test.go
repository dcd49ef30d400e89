package noop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/profusion/cppgraphqlgen/errors"
	"github.com/profusion/cppgraphqlgen/trace/noop"
	"github.com/profusion/cppgraphqlgen/trace/tracer"
)

func TestTracerSatisfiesInterface(t *testing.T) {
	var _ tracer.Tracer = noop.Tracer{}
}

func TestTraceParseReturnsUsableFinishFunc(t *testing.T) {
	ctx, finish := noop.Tracer{}.TraceParse(context.Background(), 42)
	require.NotNil(t, ctx)
	require.NotPanics(t, func() { finish(nil) })
	require.NotPanics(t, func() { finish(errors.Errorf("boom")) })
}

func TestTraceBuildReturnsUsableFinishFunc(t *testing.T) {
	ctx, finish := noop.Tracer{}.TraceBuild(context.Background(), "build-id")
	require.NotNil(t, ctx)
	require.NotPanics(t, func() { finish(nil) })
}

func TestTraceValidateReturnsUsableFinishFunc(t *testing.T) {
	ctx, finish := noop.Tracer{}.TraceValidate(context.Background(), "build-id")
	require.NotNil(t, ctx)
	require.NotPanics(t, func() { finish(nil) })
}
