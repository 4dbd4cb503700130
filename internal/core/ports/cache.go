package ports

import "go.trai.ch/peerseek/internal/core/domain"

// ResultCache memoizes search results for one network.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ResultCache interface {
	// GetOrCompute returns the stored result for the key of q if there is one,
	// otherwise it runs s, stores the result and returns it.
	// The boolean reports whether the result came from the cache.
	// Errors from s are returned and nothing is stored.
	GetOrCompute(net *domain.Network, q domain.Query, s Searcher) (domain.Result, bool, error)

	// Digest returns the digest of the network the cache was created for.
	Digest() string
}
