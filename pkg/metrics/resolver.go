// Package metrics holds the prometheus collectors of the resolver, store and listener.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nemtx"

var (
	resolverBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "batches_total",
		Help:      "Count of alias resolution batches.",
	}, []string{"network", "status"})
	resolverBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "batch_duration_seconds",
		Help:      "Duration of alias resolution batches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	resolverTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "transactions_total",
		Help:      "Count of transactions passed through alias resolution.",
	}, []string{"network"})
	resolverStatementFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "statement_fetches_total",
		Help:      "Count of block statement fetches.",
	}, []string{"network", "status"})
	resolverStatementFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "statement_fetch_duration_seconds",
		Help:      "Duration of block statement fetches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	resolverAliasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "aliases_total",
		Help:      "Count of alias lookups by kind and outcome.",
	}, []string{"network", "kind", "outcome"})
)

// Resolver tracks metrics of the alias resolution service.
type Resolver struct {
	network string
}

// NewResolver constructs a metrics collector for alias resolution.
func NewResolver(network string) *Resolver {
	if network == "" {
		network = "unknown"
	}
	return &Resolver{network: network}
}

// ObserveBatch records a resolution batch of count transactions.
func (m *Resolver) ObserveBatch(err error, count int, started time.Time) {
	if m == nil {
		return
	}
	status := statusOf(err)
	resolverBatchTotal.WithLabelValues(m.network, status).Inc()
	resolverBatchDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	if err == nil {
		resolverTransactionsTotal.WithLabelValues(m.network).Add(float64(count))
	}
}

// ObserveStatementFetch records a single statement fetch.
func (m *Resolver) ObserveStatementFetch(err error, started time.Time) {
	if m == nil {
		return
	}
	status := statusOf(err)
	resolverStatementFetchTotal.WithLabelValues(m.network, status).Inc()
	resolverStatementFetchDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveAlias records the outcome of an alias lookup. kind is address or mosaic.
func (m *Resolver) ObserveAlias(kind string, resolved bool) {
	if m == nil {
		return
	}
	outcome := "resolved"
	if !resolved {
		outcome = "unresolved"
	}
	resolverAliasesTotal.WithLabelValues(m.network, kind, outcome).Inc()
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
