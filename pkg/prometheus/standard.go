package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PanicCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "area_panic_num",
		Help: "panic total counter.",
	}, []string{"method", "path"})

	RequestCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "area_http_requests_total",
		Help: "http request total counter.",
	}, []string{"method", "path", "status"})

	RequestDurationVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "area_http_request_duration_seconds",
		Help:    "http request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
