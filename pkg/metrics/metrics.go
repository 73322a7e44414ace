package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках код вызывает их без проверок
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// DB
	DBQueriesTotal       *prometheus.CounterVec
	DBQueryDuration      *prometheus.HistogramVec
	DBOpenConnections    prometheus.Gauge
	DBInUseConnections   prometheus.Gauge
	DBIdleConnections    prometheus.Gauge
	DBWaitCount          prometheus.Gauge
	DBWaitDurationSecond prometheus.Gauge

	// Бизнес-метрики
	AvailabilityChecksTotal *prometheus.CounterVec
	BookingConflictsTotal   prometheus.Counter
	BookingsCreatedTotal    *prometheus.CounterVec
	SuggestionsTotal        *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdleConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
		DBWaitDurationSecond: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_duration_seconds",
			Help:        "Total time blocked waiting for a new connection",
			ConstLabels: labels,
		}),

		AvailabilityChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_checks_total",
			Help:        "Total number of room availability checks",
			ConstLabels: labels,
		}, []string{"result"}),
		BookingConflictsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Total number of booking attempts rejected with a conflict",
			ConstLabels: labels,
		}),
		BookingsCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created bookings",
			ConstLabels: labels,
		}, []string{"source"}),
		SuggestionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "suggestions_total",
			Help:        "Total number of alternative suggestions by kind",
			ConstLabels: labels,
		}, []string{"kind"}),
	}
}

// ObserveHTTPRequest фиксирует HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetPoolStats обновляет метрики connection pool
func (m *Metrics) SetPoolStats(open, inUse, idle int, waitCount int64, waitDuration time.Duration) {
	if m == nil {
		return
	}
	m.DBOpenConnections.Set(float64(open))
	m.DBInUseConnections.Set(float64(inUse))
	m.DBIdleConnections.Set(float64(idle))
	m.DBWaitCount.Set(float64(waitCount))
	m.DBWaitDurationSecond.Set(waitDuration.Seconds())
}

// IncAvailabilityCheck фиксирует проверку доступности (result: available / busy)
func (m *Metrics) IncAvailabilityCheck(available bool) {
	if m == nil {
		return
	}
	result := "busy"
	if available {
		result = "available"
	}
	m.AvailabilityChecksTotal.WithLabelValues(result).Inc()
}

// IncBookingConflict фиксирует отказ в бронировании из-за пересечения
func (m *Metrics) IncBookingConflict() {
	if m == nil {
		return
	}
	m.BookingConflictsTotal.Inc()
}

// IncBookingCreated фиксирует созданное бронирование
func (m *Metrics) IncBookingCreated(source string) {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.WithLabelValues(source).Inc()
}

// IncSuggestion фиксирует результат поиска альтернатив (kind: same_room / other_room / none)
func (m *Metrics) IncSuggestion(kind string) {
	if m == nil {
		return
	}
	m.SuggestionsTotal.WithLabelValues(kind).Inc()
}
