package cache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/peerseek/internal/adapters/cache"
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports/mocks"
	"go.trai.ch/peerseek/internal/engine/search"
	"go.uber.org/mock/gomock"
)

func id(s string) domain.NodeID {
	return domain.NewInternedString(s)
}

// chain is n1-n2-n3-n4-n5 with r7 hosted only by n5.
func chain(t *testing.T) *domain.Network {
	t.Helper()
	nodes := []domain.NodeSpec{
		{ID: id("n1"), Resources: []domain.ResourceID{id("r1")}},
		{ID: id("n2"), Resources: []domain.ResourceID{id("r2")}},
		{ID: id("n3"), Resources: []domain.ResourceID{id("r3")}},
		{ID: id("n4"), Resources: []domain.ResourceID{id("r4")}},
		{ID: id("n5"), Resources: []domain.ResourceID{id("r7")}},
	}
	edges := []domain.Edge{
		{A: id("n1"), B: id("n2")},
		{A: id("n2"), B: id("n3")},
		{A: id("n3"), B: id("n4")},
		{A: id("n4"), B: id("n5")},
	}
	net, err := domain.NewNetwork(nodes, edges)
	require.NoError(t, err)
	return net
}

func query(ttl int, kind domain.StrategyKind) domain.Query {
	return domain.Query{Start: id("n1"), Target: id("r7"), TTL: ttl, Strategy: kind}
}

func TestStore_MissThenHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	net := chain(t)
	want := domain.Result{VisitedCount: 5, Messages: 7, Outcome: domain.FoundAt(id("n5"))}

	searcher := mocks.NewMockSearcher(ctrl)
	searcher.EXPECT().Search(net, id("n1"), id("r7"), 8).Return(want, nil).Times(1)

	store := cache.NewStore("digest", domain.KeyPolicyQuery)

	got, hit, err := store.GetOrCompute(net, query(8, domain.StrategyFlooding), searcher)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, want, got)

	got, hit, err = store.GetOrCompute(net, query(8, domain.StrategyFlooding), searcher)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, got)

	hits, misses := store.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "digest", store.Digest())
}

func TestStore_QueryKeyIgnoresTTL(t *testing.T) {
	net := chain(t)
	store := cache.NewStore("digest", domain.KeyPolicyQuery)

	short, hit, err := store.GetOrCompute(net, query(3, domain.StrategyFlooding), search.NewFlooding())
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, domain.NotFound(), short.Outcome)

	// A larger ttl would find n5, but the cached ttl=3 result is returned as is.
	long, hit, err := store.GetOrCompute(net, query(8, domain.StrategyFlooding), search.NewFlooding())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, short, long)

	// So is a different strategy for the same start and target.
	dfs, hit, err := store.GetOrCompute(net, query(8, domain.StrategyDepthFirst), search.NewDepthFirst())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, short, dfs)
}

func TestStore_FullKeySeparatesTTLAndStrategy(t *testing.T) {
	net := chain(t)
	store := cache.NewStore("digest", domain.KeyPolicyFull)
	assert.Equal(t, domain.KeyPolicyFull, store.Policy())

	short, hit, err := store.GetOrCompute(net, query(3, domain.StrategyFlooding), search.NewFlooding())
	require.NoError(t, err)
	require.False(t, hit)
	assert.Equal(t, domain.NotFound(), short.Outcome)

	long, hit, err := store.GetOrCompute(net, query(8, domain.StrategyFlooding), search.NewFlooding())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, domain.FoundAt(id("n5")), long.Outcome)

	_, hit, err = store.GetOrCompute(net, query(8, domain.StrategyDepthFirst), search.NewDepthFirst())
	require.NoError(t, err)
	assert.False(t, hit)

	_, hit, err = store.GetOrCompute(net, query(8, domain.StrategyFlooding), search.NewFlooding())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 3, store.Len())
}

func TestStore_ErrorsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	net := chain(t)
	failure := errors.New("boom")

	searcher := mocks.NewMockSearcher(ctrl)
	searcher.EXPECT().Kind().Return(domain.StrategyFlooding).AnyTimes()
	searcher.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Result{}, failure).Times(2)

	store := cache.NewStore("digest", "")
	assert.Equal(t, domain.KeyPolicyQuery, store.Policy())

	for range 2 {
		_, hit, err := store.GetOrCompute(net, query(8, domain.StrategyFlooding), searcher)
		require.ErrorIs(t, err, failure)
		assert.False(t, hit)
	}
	assert.Equal(t, 0, store.Len())
}

func TestStore_HitReturnsOriginalTrace(t *testing.T) {
	net := chain(t)
	store := cache.NewStore("digest", domain.KeyPolicyQuery)

	first, _, err := store.GetOrCompute(net, query(8, domain.StrategyRandomWalk), search.NewRandomWalk(search.NewSource(3)))
	require.NoError(t, err)

	second, hit, err := store.GetOrCompute(net, query(8, domain.StrategyRandomWalk), search.NewRandomWalk(search.NewSource(99)))
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first.Trace, second.Trace)
}
