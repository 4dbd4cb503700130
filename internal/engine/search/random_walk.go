package search

import (
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
)

var _ ports.Searcher = (*RandomWalk)(nil)

// RandomWalk forwards the query along a single path, one random neighbor per step.
type RandomWalk struct {
	src Source
}

// NewRandomWalk creates a random walk searcher drawing neighbor choices from src.
func NewRandomWalk(src Source) *RandomWalk {
	return &RandomWalk{src: src}
}

// Kind returns domain.StrategyRandomWalk.
func (*RandomWalk) Kind() domain.StrategyKind {
	return domain.StrategyRandomWalk
}

// Search examines at most ttl nodes, revisits included, and sends one message per step taken.
// The walk stops early at a node without neighbors.
func (w *RandomWalk) Search(net *domain.Network, start domain.NodeID, target domain.ResourceID, ttl int) (domain.Result, error) {
	if err := checkQuery(net, start, ttl); err != nil {
		return domain.Result{}, err
	}

	tr := newTrace(net)
	messages := 0
	current := start

	for range ttl {
		tr.visit(current)
		if net.HasResource(current, target) {
			return tr.result(messages, domain.FoundAt(current)), nil
		}

		neighbors := net.Neighbors(current)
		if len(neighbors) == 0 {
			break
		}
		current = neighbors[w.src.IntN(len(neighbors))]
		messages++
	}

	return tr.result(messages, domain.NotFound()), nil
}
