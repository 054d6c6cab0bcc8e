package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreQueries counts upstream reads per table, outcome "ok" or
	// "error". Fail-open degradation is invisible to viewers, so this
	// is the only place a broken store shows up besides the logs.
	StoreQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "citybeat_store_queries_total",
		Help: "Upstream store list queries by table and outcome.",
	}, []string{"table", "outcome"})

	// CalendarExports counts generated artifacts, format "ics" or
	// "google".
	CalendarExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "citybeat_calendar_exports_total",
		Help: "Calendar export artifacts generated by format.",
	}, []string{"format"})
)

func QueryOK(table string) {
	StoreQueries.WithLabelValues(table, "ok").Inc()
}

func QueryError(table string) {
	StoreQueries.WithLabelValues(table, "error").Inc()
}
