// Package metrics holds the prometheus metrics of the transcoding service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric exported by this module.
const Namespace = "xds"

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// DefaultBuckets are histogram buckets in seconds for in-process conversions,
// which complete in microseconds to milliseconds.
var DefaultBuckets = []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1} //nolint: gochecknoglobals

// Transcode tracks conversions between wire versions.
type Transcode struct {
	Total    *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewTranscode creates the transcoding metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewTranscode(reg prometheus.Registerer) *Transcode {
	factory := promauto.With(reg)

	return &Transcode{
		Total: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "transcode_total",
			Help:      "Total number of transcoded messages",
		}, []string{"kind", "from", "to", "result"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "transcode_duration_seconds",
			Help:      "Duration of decoding, converting and encoding one message",
			Buckets:   DefaultBuckets,
		}, []string{"kind"}),
	}
}

// Observe records one transcoding that started at start.
func (m *Transcode) Observe(kind, from, to string, start time.Time, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.Total.WithLabelValues(kind, from, to, result).Inc()
	m.Duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
