package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus collectors of one App. They live in their own
// registry so several Apps can coexist in a process.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	elementsTotal   prometheus.Gauge
	renderSeconds   prometheus.Gauge
	pageBytes       *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "enhance_http_requests_total",
			Help: "HTTP requests served, by route pattern and status code",
		}, []string{"route", "code"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "enhance_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		elementsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "enhance_elements_total",
			Help: "Number of elements in the registry handed to the renderer",
		}),
		renderSeconds: factory.NewGauge(prometheus.GaugeOpts{
			Name: "enhance_render_duration_seconds",
			Help: "Time spent in the SSR engine at startup",
		}),
		pageBytes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "enhance_page_bytes",
			Help: "Size of each precomputed page",
		}, []string{"page"}),
	}
}

func (m *Metrics) ObserveStartup(elements int, render time.Duration, primaryBytes, constructedBytes int) {
	m.elementsTotal.Set(float64(elements))
	m.renderSeconds.Set(render.Seconds())
	m.pageBytes.WithLabelValues("primary").Set(float64(primaryBytes))
	m.pageBytes.WithLabelValues("constructed").Set(float64(constructedBytes))
}

func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
