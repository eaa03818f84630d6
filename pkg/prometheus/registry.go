package prometheus

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry registers the http metrics, the host collector and, when db is
// not nil, the connection pool statistics of db
func NewRegistry(serviceName string, db *sql.DB) *prometheus.Registry {
	register := prometheus.NewRegistry()
	register.MustRegister(
		PanicCounterVec,
		RequestCounterVec,
		RequestDurationVec,
		collectors.NewGoCollector(),
		NewCpuMemoryMetricsHandler(serviceName),
	)
	if db != nil {
		register.MustRegister(collectors.NewDBStatsCollector(db, serviceName))
	}
	return register
}

// Handler serves the registry in the prometheus text or openmetrics format
func Handler(register *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(register, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
