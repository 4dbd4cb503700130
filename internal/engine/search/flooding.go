package search

import (
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
)

var _ ports.Searcher = (*Flooding)(nil)

// Flooding forwards the query to every neighbor of each visited node, breadth first.
type Flooding struct{}

// NewFlooding creates a flooding searcher.
func NewFlooding() *Flooding {
	return &Flooding{}
}

// Kind returns domain.StrategyFlooding.
func (*Flooding) Kind() domain.StrategyKind {
	return domain.StrategyFlooding
}

// Search visits nodes in non-decreasing hop order up to ttl hops from start.
func (*Flooding) Search(net *domain.Network, start domain.NodeID, target domain.ResourceID, ttl int) (domain.Result, error) {
	if err := checkQuery(net, start, ttl); err != nil {
		return domain.Result{}, err
	}
	return propagate(net, start, target, ttl, &queue{}), nil
}
