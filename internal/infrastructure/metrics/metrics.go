package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus metrics.
type Metrics struct {
	// Auth metrics
	LoginAttempts *prometheus.CounterVec
	Registrations prometheus.Counter

	// Transaction metrics
	TransactionsCreated prometheus.Counter
	TransactionsDeleted prometheus.Counter
	TransactionAmount   prometheus.Histogram

	// Store metrics
	SeedRuns prometheus.Counter
}

// New creates and registers the service metrics.
func New() *Metrics {
	return &Metrics{
		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "chapapay_login_attempts_total",
			Help: "Total number of login attempts by outcome",
		}, []string{"outcome"}),
		Registrations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chapapay_registrations_total",
			Help: "Total number of successful registrations",
		}),
		TransactionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chapapay_transactions_created_total",
			Help: "Total number of transactions created",
		}),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chapapay_transactions_deleted_total",
			Help: "Total number of transactions deleted",
		}),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "chapapay_transaction_amount",
			Help:    "Distribution of created transaction amounts",
			Buckets: []float64{10, 50, 100, 500, 1000, 2500, 5000, 10000},
		}),
		SeedRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chapapay_seed_runs_total",
			Help: "Total number of times the store was seeded or reset",
		}),
	}
}
