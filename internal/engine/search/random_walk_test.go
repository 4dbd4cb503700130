package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/engine/search"
)

// fixedPick always chooses the neighbor at the same end of the list.
type fixedPick struct {
	last bool
}

func (p fixedPick) IntN(n int) int {
	if p.last {
		return n - 1
	}
	return 0
}

func TestRandomWalk_ChainAlwaysForward(t *testing.T) {
	// On the chain every node lists its predecessor first, so the last neighbor moves forward.
	res, err := search.NewRandomWalk(fixedPick{last: true}).Search(chain(t), id("n1"), id("r7"), 8)
	require.NoError(t, err)

	assert.Equal(t, domain.FoundAt(id("n5")), res.Outcome)
	assert.Equal(t, 4, res.Messages)
	assert.Equal(t, 5, res.VisitedCount)
	assert.Equal(t, []string{"n1", "n2", "n3", "n4", "n5"}, visitOrder(res))
}

func TestRandomWalk_BouncingRevisits(t *testing.T) {
	res, err := search.NewRandomWalk(fixedPick{}).Search(chain(t), id("n1"), id("r7"), 8)
	require.NoError(t, err)

	assert.Equal(t, domain.NotFound(), res.Outcome)
	assert.Equal(t, 2, res.VisitedCount)
	assert.Equal(t, 8, res.Messages)
	assert.Equal(t, []string{"n1", "n2", "n1", "n2", "n1", "n2", "n1", "n2"}, visitOrder(res))
}

func TestRandomWalk_TTLBoundsSteps(t *testing.T) {
	res, err := search.NewRandomWalk(fixedPick{last: true}).Search(chain(t), id("n1"), id("r7"), 3)
	require.NoError(t, err)

	assert.Equal(t, domain.NotFound(), res.Outcome)
	assert.Equal(t, 3, res.VisitedCount)
	assert.Equal(t, 3, res.Messages)
}

func TestRandomWalk_StopsAtIsolatedNode(t *testing.T) {
	net := build(t, []string{"n1"}, nil, nil)

	res, err := search.NewRandomWalk(fixedPick{}).Search(net, id("n1"), id("r7"), 5)
	require.NoError(t, err)

	assert.Equal(t, 1, res.VisitedCount)
	assert.Equal(t, 0, res.Messages)
	assert.Len(t, res.Trace, 1)
}

func TestRandomWalk_SeedIsReproducible(t *testing.T) {
	net := build(t,
		[]string{"n1", "n2", "n3", "n4", "n5", "n6"},
		[][2]string{{"n1", "n2"}, {"n1", "n3"}, {"n2", "n4"}, {"n3", "n4"}, {"n4", "n5"}, {"n5", "n6"}, {"n6", "n1"}},
		nil,
	)

	first, err := search.NewRandomWalk(search.NewSource(42)).Search(net, id("n1"), id("absent"), 20)
	require.NoError(t, err)
	second, err := search.NewRandomWalk(search.NewSource(42)).Search(net, id("n1"), id("absent"), 20)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 20, first.Messages)
	assert.Len(t, first.Trace, 20)
}
