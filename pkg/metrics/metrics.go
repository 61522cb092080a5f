package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Бизнес-метрики движка
	BookingsCreatedTotal   *prometheus.CounterVec
	RelocationsTotal       *prometheus.CounterVec
	SearchFallbackTotal    prometheus.Counter
	MaintenanceOffersTotal prometheus.Counter

	// Connection pool БД
	DBOpenConnections prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections prometheus.Gauge
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: prometheus.Labels{"service": serviceName},
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created, by activity type",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"activity"}),

		RelocationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_relocations_total",
			Help:        "Total number of booking relocation attempts, by outcome",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"outcome"}),

		SearchFallbackTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "slot_search_fallback_total",
			Help:        "Number of slot searches that fell back to the hypothesis phase",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),

		MaintenanceOffersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "maintenance_offers_total",
			Help:        "Number of maintenance slot offer requests served",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),

		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),

		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreatedTotal,
		m.RelocationsTotal,
		m.SearchFallbackTotal,
		m.MaintenanceOffersTotal,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
	)

	return m
}
