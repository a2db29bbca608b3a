package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics is a private registry so tests can construct many servers.
type metrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	tabSelections *prometheus.CounterVec
	tooltips      *prometheus.CounterVec
	exports       *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "qualmodel",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "qualmodel",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		tabSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "qualmodel",
			Name:      "tab_selections_total",
			Help:      "Tab selections by target tab.",
		}, []string{"tab"}),
		tooltips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "qualmodel",
			Name:      "tooltips_total",
			Help:      "Tooltip requests by formatter.",
		}, []string{"formatter"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "qualmodel",
			Name:      "exports_total",
			Help:      "Exports by format.",
		}, []string{"format"}),
	}
	m.registry.MustRegister(m.requests, m.duration, m.tabSelections, m.tooltips, m.exports)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) observeRequest(route string, code int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}
