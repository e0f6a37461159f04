package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	submissions        *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	selectionPicks     *prometheus.CounterVec
	remoteCalls        *prometheus.HistogramVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Booking submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_validation_failures_total",
			Help:        "Booking submissions blocked by local validation",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		selectionPicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "selection_picks_total",
			Help:        "Calendar date picks by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		remoteCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "holidaze_api_request_duration_seconds",
			Help:        "Holidaze API call duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.submissions,
		m.validationFailures,
		m.selectionPicks,
		m.remoteCalls,
	)

	return m
}

// Handler HTTP-обработчик для отдачи метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry реестр метрик (для тестов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncSubmission(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncValidationFailure(reason string) {
	m.validationFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncSelectionPick(result string) {
	m.selectionPicks.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveRemoteCall(operation string, status string, duration time.Duration) {
	m.remoteCalls.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// Nop реализация без сбора метрик, когда метрики выключены в конфиге
type Nop struct{}

func (Nop) IncSubmission(string)                                  {}
func (Nop) IncValidationFailure(string)                           {}
func (Nop) IncSelectionPick(string)                               {}
func (Nop) ObserveRemoteCall(string, string, time.Duration)       {}
func (Nop) ObserveHTTPRequest(string, string, int, time.Duration) {}
