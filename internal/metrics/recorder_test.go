package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecorderTracksCallsAndErrors(t *testing.T) {
	r := NewRecorder()
	r.RecordParse(5*time.Millisecond, false)
	r.RecordParse(10*time.Millisecond, true)
	r.RecordBuild(1*time.Millisecond, false)

	report := r.Report()
	require.EqualValues(t, 2, report.Parse.Calls)
	require.EqualValues(t, 1, report.Parse.Errors)
	require.EqualValues(t, 1, report.Build.Calls)
	require.EqualValues(t, 0, report.Build.Errors)
	require.EqualValues(t, 0, report.Validate.Calls)
}

func TestRecorderQuantilesReflectRecordedLatencies(t *testing.T) {
	r := NewRecorder()
	for _, d := range []time.Duration{1 * time.Millisecond, 2 * time.Millisecond, 100 * time.Millisecond} {
		r.RecordValidate(d, false)
	}

	report := r.Report().Validate
	require.EqualValues(t, 3, report.Calls)
	require.GreaterOrEqual(t, report.Max, 99*time.Millisecond)
	require.LessOrEqual(t, report.P50, report.Max)
}

func TestRecorderIsSafeForConcurrentUse(t *testing.T) {
	r := NewRecorder()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				r.RecordParse(time.Microsecond, false)
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	require.EqualValues(t, 400, r.Report().Parse.Calls)
}
