package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "revenue"

var (
	// ReportsGenerated counts successfully rendered reports.
	ReportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_total",
		Help:      "Number of revenue reports rendered, by output format and country.",
	}, []string{"format", "country"})

	// ReportFailures counts reports that could not be produced.
	ReportFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_failures_total",
		Help:      "Number of revenue reports that failed, by output format.",
	}, []string{"format"})

	// OrderStoreQuery observes the order aggregate query latency.
	OrderStoreQuery = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_store_query_seconds",
		Help:      "Latency of the daily order aggregate query.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
)

// Format labels.
const (
	FormatHTML = "html"
	FormatCSV  = "csv"
	FormatJSON = "json"
)
