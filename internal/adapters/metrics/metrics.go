// Package metrics implements ports.Metrics with Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "peerseek"

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus records query statistics on its own registry.
// Messages and visited nodes are only counted for computed results,
// since a cache hit sends nothing through the network.
type Prometheus struct {
	registry *prometheus.Registry

	queries  *prometheus.CounterVec
	messages *prometheus.CounterVec
	visited  *prometheus.CounterVec
	found    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a Prometheus recorder with a private registry.
func New() *Prometheus {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Answered queries by strategy and cache result.",
		}, []string{"strategy", "cache"}),
		messages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_total",
			Help:      "Messages sent by computed queries.",
		}, []string{"strategy"}),
		visited: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_visited_total",
			Help:      "Nodes examined by computed queries.",
		}, []string{"strategy"}),
		found: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "found_total",
			Help:      "Answered queries that located the target.",
		}, []string{"strategy"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Time to answer a query, cache lookups included.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"strategy"}),
	}
}

// ObserveQuery records one answered query.
func (p *Prometheus) ObserveQuery(kind domain.StrategyKind, res domain.Result, cacheHit bool, elapsed time.Duration) {
	strategy := string(kind)
	cache := "miss"
	if cacheHit {
		cache = "hit"
	}

	p.queries.WithLabelValues(strategy, cache).Inc()
	p.duration.WithLabelValues(strategy).Observe(elapsed.Seconds())
	if res.Outcome.Found {
		p.found.WithLabelValues(strategy).Inc()
	}
	if cacheHit {
		return
	}
	p.messages.WithLabelValues(strategy).Add(float64(res.Messages))
	p.visited.WithLabelValues(strategy).Add(float64(res.VisitedCount))
}

// WriteTextfile writes every collected metric to path in the text exposition format.
func (p *Prometheus) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", path)
	}
	return nil
}

// Registry returns the registry the collectors are registered on.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
