package search

import "go.trai.ch/peerseek/internal/core/domain"

// trace tracks the visited set of one search and records a frame per visit.
type trace struct {
	net     *domain.Network
	nodes   []domain.NodeID
	marked  []bool
	visited int
	frames  []domain.Frame
}

func newTrace(net *domain.Network) *trace {
	return &trace{
		net:    net,
		nodes:  net.Nodes(),
		marked: make([]bool, net.Len()),
	}
}

func (t *trace) seen(node domain.NodeID) bool {
	return t.marked[t.net.Index(node)]
}

// visit marks node and appends a frame holding the cumulative visited set.
func (t *trace) visit(node domain.NodeID) {
	i := t.net.Index(node)
	if !t.marked[i] {
		t.marked[i] = true
		t.visited++
	}

	visited := make([]domain.NodeID, 0, t.visited)
	for j, m := range t.marked {
		if m {
			visited = append(visited, t.nodes[j])
		}
	}

	t.frames = append(t.frames, domain.Frame{
		Step:    len(t.frames) + 1,
		Node:    node,
		Visited: visited,
		Marked:  append([]bool(nil), t.marked...),
	})
}

func (t *trace) result(messages int, outcome domain.Outcome) domain.Result {
	return domain.Result{
		VisitedCount: t.visited,
		Messages:     messages,
		Outcome:      outcome,
		Trace:        t.frames,
	}
}
