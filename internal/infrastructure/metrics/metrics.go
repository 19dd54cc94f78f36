package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "rota", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rota", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	OracleRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "rota", Name: "oracle_requests_total", Help: "Plan oracle calls."},
		[]string{"provider", "outcome"}, // outcome: ok|error|invalid
	)
	OracleLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rota", Name: "oracle_request_duration_seconds",
			Help:    "Plan oracle call duration seconds.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"provider"},
	)
	PlanSource = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "rota", Name: "plan_source_total", Help: "Itineraries by planning path."},
		[]string{"source"}, // source: oracle|fallback
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "rota", Name: "cache_events_total", Help: "Cache hits/misses/sets/errors."},
		[]string{"cache", "event"},
	)
)

// InitRegistry はアプリケーションのコレクタを登録したレジストリを返す
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, OracleRequests, OracleLatency, PlanSource, CacheEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveOracle(provider, outcome string, dur time.Duration) {
	OracleRequests.WithLabelValues(provider, outcome).Inc()
	OracleLatency.WithLabelValues(provider).Observe(dur.Seconds())
}

func ObservePlanSource(source string) {
	PlanSource.WithLabelValues(source).Inc()
}

func ObserveCache(cache, event string) { // event: hit|miss|set|error
	CacheEvents.WithLabelValues(cache, event).Inc()
}
