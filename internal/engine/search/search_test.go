package search_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
	"go.trai.ch/peerseek/internal/engine/search"
)

func id(s string) domain.NodeID {
	return domain.NewInternedString(s)
}

func names(ids []domain.NodeID) []string {
	out := make([]string, len(ids))
	for i, n := range ids {
		out[i] = n.String()
	}
	return out
}

// build creates a network whose node i hosts resource "r<i>" unless resources overrides it.
func build(t *testing.T, nodes []string, edges [][2]string, resources map[string][]string) *domain.Network {
	t.Helper()
	specs := make([]domain.NodeSpec, len(nodes))
	for i, n := range nodes {
		res, ok := resources[n]
		if !ok {
			res = []string{fmt.Sprintf("r%d", i+1)}
		}
		specs[i] = domain.NodeSpec{ID: id(n), Resources: domain.NewInternedStrings(res)}
	}
	es := make([]domain.Edge, len(edges))
	for i, e := range edges {
		es[i] = domain.Edge{A: id(e[0]), B: id(e[1])}
	}
	net, err := domain.NewNetwork(specs, es)
	require.NoError(t, err)
	return net
}

// chain is n1-n2-n3-n4-n5 with r7 hosted only by n5.
func chain(t *testing.T) *domain.Network {
	t.Helper()
	return build(t,
		[]string{"n1", "n2", "n3", "n4", "n5"},
		[][2]string{{"n1", "n2"}, {"n2", "n3"}, {"n3", "n4"}, {"n4", "n5"}},
		map[string][]string{"n5": {"r7"}},
	)
}

// visitOrder returns the node visited by each frame.
func visitOrder(res domain.Result) []string {
	out := make([]string, len(res.Trace))
	for i, f := range res.Trace {
		out[i] = f.Node.String()
	}
	return out
}

func visitedSet(res domain.Result) map[string]bool {
	set := make(map[string]bool)
	for _, f := range res.Trace {
		set[f.Node.String()] = true
	}
	return set
}

func TestNew(t *testing.T) {
	for _, kind := range domain.StrategyKinds() {
		s, err := search.New(kind, nil)
		require.NoError(t, err)
		assert.Equal(t, kind, s.Kind())
	}

	_, err := search.New("gossip", nil)
	require.ErrorIs(t, err, domain.ErrUnknownStrategy)
}

func TestSearch_InvalidQuery(t *testing.T) {
	net := chain(t)
	for _, kind := range domain.StrategyKinds() {
		t.Run(string(kind), func(t *testing.T) {
			s, err := search.New(kind, search.NewSource(1))
			require.NoError(t, err)

			_, err = s.Search(net, id("ghost"), id("r7"), 8)
			require.ErrorIs(t, err, domain.ErrInvalidStart)

			_, err = s.Search(net, id("n1"), id("r7"), -1)
			require.ErrorIs(t, err, domain.ErrInvalidTTL)
		})
	}
}

func TestSearch_MissingTargetIsNotAnError(t *testing.T) {
	net := chain(t)
	for _, kind := range domain.StrategyKinds() {
		t.Run(string(kind), func(t *testing.T) {
			s, err := search.New(kind, search.NewSource(1))
			require.NoError(t, err)

			res, err := s.Search(net, id("n1"), id("nowhere"), 8)
			require.NoError(t, err)
			assert.False(t, res.Outcome.Found)
		})
	}
}

func TestSearch_ZeroTTL(t *testing.T) {
	net := chain(t)

	res, err := search.NewFlooding().Search(net, id("n1"), id("r1"), 0)
	require.NoError(t, err)
	assert.Equal(t, domain.FoundAt(id("n1")), res.Outcome)

	res, err = search.NewFlooding().Search(net, id("n1"), id("r7"), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.VisitedCount)
	assert.Equal(t, 1, res.Messages)

	res, err = search.NewRandomWalk(search.NewSource(1)).Search(net, id("n1"), id("r1"), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.VisitedCount)
	assert.Empty(t, res.Trace)
	assert.False(t, res.Outcome.Found)
}

func TestTrace_FramesAreCumulative(t *testing.T) {
	net := chain(t)
	res, err := search.NewFlooding().Search(net, id("n1"), id("r7"), 8)
	require.NoError(t, err)

	require.Len(t, res.Trace, 5)
	for i, f := range res.Trace {
		assert.Equal(t, i+1, f.Step)
		assert.Len(t, f.Visited, i+1)
		require.Len(t, f.Marked, net.Len())
		for j, n := range net.Nodes() {
			assert.Equal(t, j <= i, f.Marked[j], "frame %d node %s", f.Step, n)
		}
	}
	assert.Equal(t, []string{"n1", "n2", "n3"}, names(res.Trace[2].Visited))
}

// randomNetwork returns a connected network: a random spanning tree plus extra random edges.
func randomNetwork(t *testing.T, r *rand.Rand, size, extra int) *domain.Network {
	t.Helper()
	nodes := make([]string, size)
	var edges [][2]string
	for i := range size {
		nodes[i] = fmt.Sprintf("p%d", i)
		if i > 0 {
			edges = append(edges, [2]string{nodes[r.IntN(i)], nodes[i]})
		}
	}
	for range extra {
		a, b := r.IntN(size), r.IntN(size)
		if a != b {
			edges = append(edges, [2]string{nodes[a], nodes[b]})
		}
	}
	return build(t, nodes, edges, nil)
}

// hopDistances returns the breadth-first hop count of every node from start.
func hopDistances(net *domain.Network, start domain.NodeID) map[domain.NodeID]int {
	dist := map[domain.NodeID]int{start: 0}
	queue := []domain.NodeID{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range net.Neighbors(u) {
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

func TestProperties_RandomNetworks(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for round := range 25 {
		net := randomNetwork(t, r, 4+r.IntN(12), r.IntN(10))
		start := net.Nodes()[r.IntN(net.Len())]
		dist := hopDistances(net, start)
		ttl := r.IntN(6)

		within := 0
		for _, d := range dist {
			if d <= ttl {
				within++
			}
		}

		t.Run(fmt.Sprintf("round-%d", round), func(t *testing.T) {
			flood, err := search.NewFlooding().Search(net, start, id("absent"), ttl)
			require.NoError(t, err)
			assert.Equal(t, within, flood.VisitedCount)

			walk, err := search.NewRandomWalk(search.NewSource(uint64(round))).Search(net, start, id("absent"), ttl)
			require.NoError(t, err)
			assert.LessOrEqual(t, walk.VisitedCount, ttl+1)
			assert.LessOrEqual(t, walk.Messages, ttl)

			// Any simple path has at most Len()-1 hops, so both strategies reach every node.
			full := net.Len() - 1
			flood, err = search.NewFlooding().Search(net, start, id("absent"), full)
			require.NoError(t, err)
			dfs, err := search.NewDepthFirst().Search(net, start, id("absent"), full)
			require.NoError(t, err)
			assert.Equal(t, visitedSet(flood), visitedSet(dfs))
			assert.Equal(t, net.Len(), dfs.VisitedCount)

			last := net.Nodes()[net.Len()-1]
			target := net.ResourcesOf(last)[0]
			for _, s := range []ports.Searcher{search.NewFlooding(), search.NewDepthFirst()} {
				res, err := s.Search(net, start, target, full)
				require.NoError(t, err)
				assert.Equal(t, domain.FoundAt(last), res.Outcome)
			}
		})
	}
}
