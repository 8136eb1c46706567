package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Detail metrics
	DetailsCreated prometheus.Counter
	DetailsUpdated prometheus.Counter
	DetailsDeleted prometheus.Counter
	DetailDuration *prometheus.HistogramVec
	DetailErrors   *prometheus.CounterVec
	DateCollisions prometheus.Counter

	// Account metrics
	AccountsCreated   prometheus.Counter
	AccountOperations *prometheus.CounterVec

	// Balance metrics
	RebuildsRun      prometheus.Counter
	RebuildRows      prometheus.Counter
	RebuildDuration  prometheus.Histogram
	BalanceDrift     *prometheus.CounterVec
	BalanceShiftRows prometheus.Histogram

	// Voucher metrics
	VouchersAttached prometheus.Counter
	VouchersDeleted  prometheus.Counter
	VoucherBytes     prometheus.Histogram
	VoucherErrors    *prometheus.CounterVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Detail metrics
		DetailsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_details_created_total",
			Help: "Total number of details created",
		}),
		DetailsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_details_updated_total",
			Help: "Total number of details updated",
		}),
		DetailsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_details_deleted_total",
			Help: "Total number of details deleted",
		}),
		DetailDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookkeeper_detail_duration_seconds",
				Help:    "Duration of detail operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		DetailErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookkeeper_detail_errors_total",
				Help: "Total number of detail errors by type",
			},
			[]string{"error_type"},
		),
		DateCollisions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_date_collisions_total",
			Help: "Total number of entry date collisions resolved by bumping",
		}),

		// Account metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookkeeper_account_operations_total",
				Help: "Total account operations by type",
			},
			[]string{"operation"},
		),

		// Balance metrics
		RebuildsRun: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_rebuilds_total",
			Help: "Total number of balance rebuilds",
		}),
		RebuildRows: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_rebuild_rows_total",
			Help: "Total number of rows rewritten by rebuilds",
		}),
		RebuildDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bookkeeper_rebuild_duration_seconds",
			Help:    "Duration of balance rebuilds",
			Buckets: prometheus.DefBuckets,
		}),
		BalanceDrift: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookkeeper_balance_drift_total",
				Help: "Total number of drifted balances found by verification",
			},
			[]string{"account_id"},
		),
		BalanceShiftRows: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bookkeeper_balance_shift_rows",
			Help:    "Number of rows touched by incremental balance updates",
			Buckets: []float64{1, 10, 100, 1000, 10000},
		}),

		// Voucher metrics
		VouchersAttached: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_vouchers_attached_total",
			Help: "Total number of vouchers attached",
		}),
		VouchersDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookkeeper_vouchers_deleted_total",
			Help: "Total number of vouchers deleted",
		}),
		VoucherBytes: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bookkeeper_voucher_bytes",
			Help:    "Voucher file sizes in bytes",
			Buckets: []float64{1024, 10240, 102400, 1048576, 10485760},
		}),
		VoucherErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookkeeper_voucher_errors_total",
				Help: "Total number of voucher errors by type",
			},
			[]string{"error_type"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookkeeper_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookkeeper_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "bookkeeper_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookkeeper_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookkeeper_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookkeeper_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookkeeper_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
