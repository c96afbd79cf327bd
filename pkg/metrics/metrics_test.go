package metrics_test

import (
	"errors"
	"testing"
	"time"
	"xds/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestTranscodeObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewTranscode(reg)

	m.Observe("Register", "2.1", "3.0", time.Now(), nil)
	m.Observe("Register", "2.1", "3.0", time.Now(), nil)
	m.Observe("Register", "2.1", "3.0", time.Now(), errors.New("boom"))

	require.InDelta(t, 2, testutil.ToFloat64(m.Total.WithLabelValues("Register", "2.1", "3.0", metrics.ResultSuccess)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.Total.WithLabelValues("Register", "2.1", "3.0", metrics.ResultError)), 0)
	require.Equal(t, 1, testutil.CollectAndCount(m.Duration, "xds_transcode_duration_seconds"))

	count, err := testutil.GatherAndCount(reg, "xds_transcode_total")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestNewTranscodeUnregistered(t *testing.T) {
	require.NotPanics(t, func() {
		metrics.NewTranscode(nil)
		metrics.NewTranscode(nil)
	})
}
