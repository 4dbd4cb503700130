package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// StrategyKind names a query propagation strategy.
type StrategyKind string

const (
	// StrategyFlooding forwards the query to every neighbor, breadth first.
	StrategyFlooding StrategyKind = "flooding"
	// StrategyRandomWalk forwards the query to one random neighbor per step.
	StrategyRandomWalk StrategyKind = "random_walk"
	// StrategyDepthFirst forwards the query along one branch before backtracking.
	StrategyDepthFirst StrategyKind = "depth_first"
)

// StrategyKinds returns every known strategy in a stable order.
func StrategyKinds() []StrategyKind {
	return []StrategyKind{StrategyFlooding, StrategyRandomWalk, StrategyDepthFirst}
}

// ParseStrategyKind converts a user supplied name to a StrategyKind.
// Dashes are accepted in place of underscores.
func ParseStrategyKind(s string) (StrategyKind, error) {
	normalized := StrategyKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, kind := range StrategyKinds() {
		if kind == normalized {
			return kind, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrUnknownStrategy, "cannot select strategy"), "strategy", s)
}
