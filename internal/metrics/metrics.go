package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Subtitle request metrics
var (
	SubtitleRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subtitle_requests_total",
			Help: "Total number of subtitle requests by terminal status.",
		},
		[]string{"status"},
	)

	SubtitleRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "subtitle_request_duration_seconds",
			Help:    "Time from submission to terminal status for accepted subtitle requests.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	ClipboardReadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subtitle_clipboard_reads_total",
			Help: "Total number of clipboard reads.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		SubtitleRequestsTotal,
		SubtitleRequestDuration,
		ClipboardReadsTotal,
	)
}

// ObserveRequest records one finished request under status.
func ObserveRequest(status string, started time.Time) {
	SubtitleRequestsTotal.WithLabelValues(status).Inc()
	SubtitleRequestDuration.Observe(time.Since(started).Seconds())
}
