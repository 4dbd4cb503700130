// Package cache implements the in-memory search result cache.
package cache

import (
	"sync"

	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultCache = (*Store)(nil)

// Store implements ports.ResultCache with a map guarded by a single mutex.
// A Store belongs to one network, identified by its digest, and lives for one run.
type Store struct {
	digest string
	policy domain.KeyPolicy

	mu      sync.Mutex
	results map[domain.CacheKey]domain.Result
	hits    int
	misses  int
}

// NewStore creates an empty Store for the network with the given digest.
func NewStore(digest string, policy domain.KeyPolicy) *Store {
	if policy == "" {
		policy = domain.KeyPolicyQuery
	}
	return &Store{
		digest:  digest,
		policy:  policy,
		results: make(map[domain.CacheKey]domain.Result),
	}
}

// GetOrCompute returns the stored result for the key of q, or runs s and stores its result.
// Under domain.KeyPolicyQuery a stored result is returned even if it was computed
// with another ttl or strategy.
func (s *Store) GetOrCompute(
	net *domain.Network,
	q domain.Query,
	searcher ports.Searcher,
) (domain.Result, bool, error) {
	key := s.policy.Key(q)

	s.mu.Lock()
	defer s.mu.Unlock()

	if res, ok := s.results[key]; ok {
		s.hits++
		return res, true, nil
	}

	res, err := searcher.Search(net, q.Start, q.Target, q.TTL)
	if err != nil {
		return domain.Result{}, false, zerr.With(zerr.Wrap(err, "search failed"), "strategy", string(searcher.Kind()))
	}

	s.misses++
	s.results[key] = res
	return res, false, nil
}

// Digest returns the digest of the network the store was created for.
func (s *Store) Digest() string {
	return s.digest
}

// Policy returns the key policy of the store.
func (s *Store) Policy() domain.KeyPolicy {
	return s.policy
}

// Len returns the number of stored results.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// Stats returns how many lookups were answered from the store and how many were computed.
func (s *Store) Stats() (hits, misses int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits, s.misses
}
