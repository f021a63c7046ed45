package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts API requests by route and status code
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fretmap_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "code"})

	// requestDuration tracks request latency by route
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fretmap_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00005, 2, 12),
	}, []string{"route"})

	// queryPositions tracks how many positions scale and chord queries return
	queryPositions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fretmap_query_positions",
		Help:    "Number of positions returned per query",
		Buckets: []float64{0, 5, 10, 20, 40, 80},
	}, []string{"kind"})
)
