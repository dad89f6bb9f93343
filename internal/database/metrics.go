package database

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipebook_db_query_duration_seconds",
			Help:    "Database statement latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	queryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebook_db_query_failures_total",
			Help: "Total number of failed database statements",
		},
		[]string{"op", "code"},
	)
)
