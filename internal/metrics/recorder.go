// Package metrics records wall-clock latency distributions for the
// compiler's three phases (parse, build, validate) without requiring a
// caller to wire up an external metrics system.
package metrics

import (
	"sync"
	"time"

	"github.com/codahale/hdrhistogram"
	"go.uber.org/atomic"
)

const (
	minLatencyMicros = 1
	maxLatencyMicros = int64(time.Minute / time.Microsecond)
	sigFigures       = 3
)

// Recorder accumulates per-phase latency samples and call/error counts.
// A Recorder is safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	parse      *hdrhistogram.Histogram
	build      *hdrhistogram.Histogram
	validate   *hdrhistogram.Histogram
	parseErrs  atomic.Int64
	buildErrs  atomic.Int64
	validErrs  atomic.Int64
	parseCalls atomic.Int64
	buildCalls atomic.Int64
	validCalls atomic.Int64
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		parse:    hdrhistogram.New(minLatencyMicros, maxLatencyMicros, sigFigures),
		build:    hdrhistogram.New(minLatencyMicros, maxLatencyMicros, sigFigures),
		validate: hdrhistogram.New(minLatencyMicros, maxLatencyMicros, sigFigures),
	}
}

// RecordParse records one parse call's latency and whether it failed.
func (r *Recorder) RecordParse(d time.Duration, failed bool) {
	r.parseCalls.Inc()
	if failed {
		r.parseErrs.Inc()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.parse.RecordValue(d.Microseconds())
}

// RecordBuild records one build call's latency and whether it failed.
func (r *Recorder) RecordBuild(d time.Duration, failed bool) {
	r.buildCalls.Inc()
	if failed {
		r.buildErrs.Inc()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.build.RecordValue(d.Microseconds())
}

// RecordValidate records one validate call's latency and whether it failed.
func (r *Recorder) RecordValidate(d time.Duration, failed bool) {
	r.validCalls.Inc()
	if failed {
		r.validErrs.Inc()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.validate.RecordValue(d.Microseconds())
}

// PhaseReport summarizes one phase's recorded samples.
type PhaseReport struct {
	Calls  int64
	Errors int64
	P50    time.Duration
	P99    time.Duration
	Max    time.Duration
}

// BuildReport snapshots the Recorder's state at call time.
type BuildReport struct {
	Parse    PhaseReport
	Build    PhaseReport
	Validate PhaseReport
}

func snapshot(h *hdrhistogram.Histogram, calls, errs *atomic.Int64) PhaseReport {
	return PhaseReport{
		Calls:  calls.Load(),
		Errors: errs.Load(),
		P50:    time.Duration(h.ValueAtQuantile(50)) * time.Microsecond,
		P99:    time.Duration(h.ValueAtQuantile(99)) * time.Microsecond,
		Max:    time.Duration(h.Max()) * time.Microsecond,
	}
}

// Report returns a point-in-time snapshot of every phase's distribution.
func (r *Recorder) Report() BuildReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return BuildReport{
		Parse:    snapshot(r.parse, &r.parseCalls, &r.parseErrs),
		Build:    snapshot(r.build, &r.buildCalls, &r.buildErrs),
		Validate: snapshot(r.validate, &r.validCalls, &r.validErrs),
	}
}
