package ports

import (
	"time"

	"go.trai.ch/peerseek/internal/core/domain"
)

// Metrics records query statistics.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveQuery records one answered query.
	ObserveQuery(kind domain.StrategyKind, res domain.Result, cacheHit bool, elapsed time.Duration)

	// WriteTextfile writes the current metrics to path in the Prometheus text format.
	WriteTextfile(path string) error
}
