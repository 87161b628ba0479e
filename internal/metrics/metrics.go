// Package metrics содержит Prometheus-метрики сервиса обработки чеков.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "receipt_processor"

// Metrics группирует коллекторы HTTP-запросов и обработки чеков.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	receipts        *prometheus.CounterVec
	points          prometheus.Histogram
}

// New регистрирует метрики в собственном реестре.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		receipts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "receipts_total",
			Help:      "Receipts submitted for processing by result.",
		}, []string{"result"}),
		points: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "receipt_points",
			Help:      "Distribution of points awarded per receipt.",
			Buckets:   []float64{10, 25, 50, 75, 100, 150, 250, 500},
		}),
	}

	reg.MustRegister(m.requests, m.requestDuration, m.receipts, m.points)

	return m
}

// Handler отдаёт метрики в формате Prometheus.
// Сжатие ответа выполняет middleware роутера, поэтому собственное сжатие promhttp отключено.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{DisableCompression: true})
}

// ReceiptProcessed учитывает успешно обработанный чек.
func (m *Metrics) ReceiptProcessed(points int) {
	if m == nil {
		return
	}
	m.receipts.WithLabelValues("processed").Inc()
	m.points.Observe(float64(points))
}

// ReceiptRejected учитывает отклонённый чек.
func (m *Metrics) ReceiptRejected() {
	if m == nil {
		return
	}
	m.receipts.WithLabelValues("rejected").Inc()
}

// Middleware считает запросы и их длительность по шаблону маршрута chi.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		route := "unknown"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
