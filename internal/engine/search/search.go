// Package search implements the query propagation strategies run over an overlay network.
package search

import (
	"math/rand/v2"

	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
	"go.trai.ch/zerr"
)

// Source picks neighbors for the random walk.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniformly distributed value in [0, n). n is always positive.
	IntN(n int) int
}

// NewSource returns a reproducible Source: the same seed yields the same walk.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // simulation, not security
}

// NewRandomSource returns a Source seeded from the runtime's random generator.
func NewRandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // simulation, not security
}

// New returns the searcher for kind. src is only used by the random walk;
// a nil src gives the random walk an unseeded source.
func New(kind domain.StrategyKind, src Source) (ports.Searcher, error) {
	switch kind {
	case domain.StrategyFlooding:
		return NewFlooding(), nil
	case domain.StrategyDepthFirst:
		return NewDepthFirst(), nil
	case domain.StrategyRandomWalk:
		if src == nil {
			src = NewRandomSource()
		}
		return NewRandomWalk(src), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownStrategy, "cannot select strategy"), "strategy", string(kind))
	}
}

// checkQuery enforces the preconditions shared by every strategy.
func checkQuery(net *domain.Network, start domain.NodeID, ttl int) error {
	if !net.Contains(start) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidStart, "cannot start search"), "start", start.String())
	}
	if ttl < 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidTTL, "cannot start search"), "ttl", ttl)
	}
	return nil
}
