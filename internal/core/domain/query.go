package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Query is a single search request against a network.
type Query struct {
	Start    NodeID
	Target   ResourceID
	TTL      int
	Strategy StrategyKind
}

// KeyPolicy decides which query fields identify a cached result.
type KeyPolicy string

const (
	// KeyPolicyQuery keys results by start node and target only.
	// A cached result is returned even when ttl or strategy differ from the call that produced it.
	KeyPolicyQuery KeyPolicy = "query"
	// KeyPolicyFull keys results by start node, target, ttl and strategy.
	KeyPolicyFull KeyPolicy = "full"
)

// ParseKeyPolicy converts a configuration value to a KeyPolicy. The empty string selects KeyPolicyQuery.
func ParseKeyPolicy(s string) (KeyPolicy, error) {
	switch KeyPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", KeyPolicyQuery:
		return KeyPolicyQuery, nil
	case KeyPolicyFull:
		return KeyPolicyFull, nil
	default:
		return "", zerr.With(ConfigError(ErrUnknownKeyPolicy), "policy", s)
	}
}

// CacheKey identifies a cached search result.
type CacheKey struct {
	Start    NodeID
	Target   ResourceID
	TTL      int
	Strategy StrategyKind
}

// Key derives the cache key of q under policy p.
func (p KeyPolicy) Key(q Query) CacheKey {
	key := CacheKey{Start: q.Start, Target: q.Target}
	if p == KeyPolicyFull {
		key.TTL = q.TTL
		key.Strategy = q.Strategy
	}
	return key
}
