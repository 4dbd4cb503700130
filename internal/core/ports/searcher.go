// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/peerseek/internal/core/domain"

// Searcher propagates a query through a network looking for a resource.
//
//go:generate go run go.uber.org/mock/mockgen -source=searcher.go -destination=mocks/mock_searcher.go -package=mocks
type Searcher interface {
	// Kind returns the strategy implemented by the searcher.
	Kind() domain.StrategyKind

	// Search looks for target starting at start, bounded by ttl.
	//
	// A target hosted nowhere within reach is reported through the NotFound outcome, not an error.
	// It returns an error if start is not a node of net or ttl is negative.
	Search(net *domain.Network, start domain.NodeID, target domain.ResourceID, ttl int) (domain.Result, error)
}
