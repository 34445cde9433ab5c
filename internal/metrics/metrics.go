package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Business metrics
	tradesRecorded  *prometheus.CounterVec
	journalClears   prometheus.Counter
	csvExports      prometheus.Counter
	reportsComputed prometheus.Counter
	journalSize     prometheus.Gauge
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently in flight",
			},
		),
	}

	reg.MustRegister(r.httpRequestsTotal)
	reg.MustRegister(r.httpRequestDuration)
	reg.MustRegister(r.httpRequestsInFlight)

	// Business metrics
	r.tradesRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradelog_trades_recorded_total",
			Help: "Total number of trades recorded",
		},
		[]string{"type"},
	)
	r.journalClears = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tradelog_journal_clears_total",
			Help: "Total number of clear-all resets",
		},
	)
	r.csvExports = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tradelog_csv_exports_total",
			Help: "Total number of CSV exports",
		},
	)
	r.reportsComputed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tradelog_reports_computed_total",
			Help: "Total number of stats reports computed",
		},
	)
	r.journalSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tradelog_journal_trades",
			Help: "Number of trades currently in the journal",
		},
	)

	reg.MustRegister(r.tradesRecorded)
	reg.MustRegister(r.journalClears)
	reg.MustRegister(r.csvExports)
	reg.MustRegister(r.reportsComputed)
	reg.MustRegister(r.journalSize)

	return r
}

// RecordRequest records metrics for an HTTP request.
func (r *Registry) RecordRequest(method, path string, status int, duration float64) {
	statusStr := strconv.Itoa(status)
	r.httpRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// InFlightInc increments in-flight requests.
func (r *Registry) InFlightInc() {
	r.httpRequestsInFlight.Inc()
}

// InFlightDec decrements in-flight requests.
func (r *Registry) InFlightDec() {
	r.httpRequestsInFlight.Dec()
}

// TradeRecorded counts a recorded trade by type.
func (r *Registry) TradeRecorded(tradeType string) {
	r.tradesRecorded.WithLabelValues(tradeType).Inc()
}

// JournalCleared counts a clear-all reset.
func (r *Registry) JournalCleared() {
	r.journalClears.Inc()
}

// CSVExported counts a CSV export.
func (r *Registry) CSVExported() {
	r.csvExports.Inc()
}

// ReportComputed counts a stats report computation.
func (r *Registry) ReportComputed() {
	r.reportsComputed.Inc()
}

// SetJournalSize updates the journal size gauge.
func (r *Registry) SetJournalSize(n int) {
	r.journalSize.Set(float64(n))
}
