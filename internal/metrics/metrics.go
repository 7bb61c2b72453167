package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UIEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookconnect_ui_events_total",
		Help: "Total number of UI events dispatched to sessions",
	}, []string{"event"})

	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookconnect_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookconnect_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bookconnect_sessions_active",
		Help: "Number of live browser sessions",
	})
)
