package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты обновления индекса занятости
const (
	RefreshApplied = "applied"
	RefreshStale   = "stale"
	RefreshFailed  = "failed"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RefreshTotal    *prometheus.CounterVec
	RefreshDuration prometheus.Histogram

	OccupancyEntries    prometheus.Gauge
	OccupancyGeneration prometheus.Gauge

	SelectionRejected prometheus.Counter
	ActiveSessions    prometheus.Gauge
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		RefreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "occupancy_refresh_total",
			Help:        "Occupancy refreshes by result (applied, stale, failed)",
			ConstLabels: labels,
		}, []string{"result"}),

		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "occupancy_refresh_duration_seconds",
			Help:        "Time spent fetching and ingesting reservation records",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),

		OccupancyEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "occupancy_entries",
			Help:        "Occupied (date, slot, table) triples in the published index",
			ConstLabels: labels,
		}),

		OccupancyGeneration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "occupancy_generation",
			Help:        "Generation of the published occupancy index",
			ConstLabels: labels,
		}),

		SelectionRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "selection_rejected_total",
			Help:        "Attempts to select a table that is already booked",
			ConstLabels: labels,
		}),

		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "selection_sessions_active",
			Help:        "Open selection sessions",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.RefreshTotal,
		m.RefreshDuration,
		m.OccupancyEntries,
		m.OccupancyGeneration,
		m.SelectionRejected,
		m.ActiveSessions,
	)

	return m
}

// Методы ниже безопасно вызывать на nil (метрики выключены в конфиге)

// ObserveRefresh фиксирует результат и длительность обновления
func (m *Metrics) ObserveRefresh(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.RefreshTotal.WithLabelValues(result).Inc()
	m.RefreshDuration.Observe(duration.Seconds())
}

// SetOccupancy фиксирует размер и поколение опубликованного индекса
func (m *Metrics) SetOccupancy(entries int, generation uint64) {
	if m == nil {
		return
	}
	m.OccupancyEntries.Set(float64(entries))
	m.OccupancyGeneration.Set(float64(generation))
}

// IncSelectionRejected считает отказы в выборе занятого столика
func (m *Metrics) IncSelectionRejected() {
	if m == nil {
		return
	}
	m.SelectionRejected.Inc()
}

// SetActiveSessions фиксирует количество открытых сессий выбора
func (m *Metrics) SetActiveSessions(count int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(count))
}
