package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fund-selector/domain"
	"fund-selector/service"
)

var _ service.Observer = (*Metrics)(nil)

// Metrics holds the Prometheus collectors for the service. It implements
// service.Observer.
type Metrics struct {
	registry *prometheus.Registry

	Profiles           *prometheus.CounterVec
	Alerts             *prometheus.CounterVec
	FundSearches       *prometheus.CounterVec
	FundSearchDuration prometheus.Histogram
	Requests           *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Profiles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fund_selector_profiles_total",
				Help: "Profiles evaluated, by final risk tier and horizon",
			},
			[]string{"final_risk", "horizon"},
		),
		Alerts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fund_selector_alerts_total",
				Help: "Alerts attached to evaluated profiles",
			},
			[]string{"code"},
		),
		FundSearches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fund_selector_fund_searches_total",
				Help: "Fund-search attempts by outcome",
			},
			[]string{"outcome"},
		),
		FundSearchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fund_selector_fund_search_duration_seconds",
				Help:    "Duration of fund-search attempts",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fund_selector_http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fund_selector_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}

	m.registry.MustRegister(
		m.Profiles,
		m.Alerts,
		m.FundSearches,
		m.FundSearchDuration,
		m.Requests,
		m.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveProfile(p domain.Profile) {
	m.Profiles.WithLabelValues(p.FinalRisk.String(), p.Horizon.String()).Inc()
	for _, a := range p.Alerts {
		m.Alerts.WithLabelValues(a.Code).Inc()
	}
}

func (m *Metrics) ObserveFundSearch(outcome string, elapsed time.Duration) {
	m.FundSearches.WithLabelValues(outcome).Inc()
	m.FundSearchDuration.Observe(elapsed.Seconds())
}

// Middleware records request counts and latency keyed by the chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
