package search

import (
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
)

var _ ports.Searcher = (*DepthFirst)(nil)

// DepthFirst forwards the query down one branch before backtracking.
// Neighbors are pushed in enumeration order, so the last listed neighbor is explored first.
type DepthFirst struct{}

// NewDepthFirst creates a depth-first searcher.
func NewDepthFirst() *DepthFirst {
	return &DepthFirst{}
}

// Kind returns domain.StrategyDepthFirst.
func (*DepthFirst) Kind() domain.StrategyKind {
	return domain.StrategyDepthFirst
}

// Search explores from start with a stack, dropping hops deeper than ttl.
//
// A node first reached through a long path is visited at that depth and is not revisited
// from a shorter one, so nodes within ttl hops can be missed on cyclic networks.
func (*DepthFirst) Search(net *domain.Network, start domain.NodeID, target domain.ResourceID, ttl int) (domain.Result, error) {
	if err := checkQuery(net, start, ttl); err != nil {
		return domain.Result{}, err
	}
	return propagate(net, start, target, ttl, &stack{}), nil
}
