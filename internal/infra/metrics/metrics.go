// Package metrics holds the Prometheus collectors shared by the binaries.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "greenlake"

var (
	DatasetMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_messages_processed_total",
			Help:      "Number of dataset records upserted into the store",
		},
		[]string{"dataset"},
	)

	DatasetMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_messages_failed_total",
			Help:      "Number of dataset records the ingestor could not store",
		},
		[]string{"dataset", "reason"},
	)

	DatasetMessagesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_messages_dlq_total",
			Help:      "Number of dataset records transferred to the DLQ",
		},
	)

	DatasetProcessingTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_processing_seconds",
			Help:      "Time taken to process one dataset record, retries included",
			Buckets:   prometheus.DefBuckets,
		},
	)

	LedgerRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ledger_request_duration_seconds",
			Help:      "Latency of token-ledger calls",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)

	DBQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Latency of SQL statements by verb",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"verb", "outcome"},
	)

	DBPoolConnections = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_connections",
			Help:      "Connections in the Postgres pool by state",
		},
		[]string{"state"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by route template",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	DBPoolWaitSeconds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_pool_wait_seconds_total",
			Help:      "Time spent waiting for a free Postgres connection",
		},
	)
)

var registerOnce sync.Once

// Register adds every collector to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			DatasetMessagesProcessed,
			DatasetMessagesFailed,
			DatasetMessagesDLQ,
			DatasetProcessingTime,
			LedgerRequestDuration,
			DBQueryDuration,
			DBPoolConnections,
			DBPoolWaitSeconds,
			HTTPRequestDuration,
		)
	})
}
