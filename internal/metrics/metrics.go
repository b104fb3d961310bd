package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the voluntariado API
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Business Metrics
	VoluntariosAtivos   prometheus.Gauge
	AssociacoesTotal    prometheus.Counter
	TermosGeradosTotal  prometheus.Counter
	ExportacoesTotal    prometheus.CounterVec
	LoginFailuresTotal  prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voluntariado_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "voluntariado_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "voluntariado_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voluntariado_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "voluntariado_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Business Metrics
		VoluntariosAtivos: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "voluntariado_voluntarios_ativos",
				Help: "Current number of active volunteers",
			},
		),
		AssociacoesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "voluntariado_associacoes_total",
				Help: "Total workshop associations recorded",
			},
		),
		TermosGeradosTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "voluntariado_termos_gerados_total",
				Help: "Total volunteer term PDFs generated",
			},
		),
		ExportacoesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voluntariado_exportacoes_total",
				Help: "Total export downloads by format",
			},
			[]string{"format"},
		),
		LoginFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voluntariado_login_failures_total",
				Help: "Total failed login attempts by reason",
			},
			[]string{"reason"},
		),
	}
}
