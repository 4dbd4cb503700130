package search

import "go.trai.ch/peerseek/internal/core/domain"

// hop is a pending delivery of the query to node, depth hops away from the start.
type hop struct {
	node  domain.NodeID
	depth int
}

// frontier holds pending hops. The pop order is what tells flooding and depth-first apart.
type frontier interface {
	push(h hop)
	pop() hop
	len() int
}

// queue pops hops first in, first out.
type queue struct {
	hops []hop
	head int
}

func (q *queue) push(h hop) { q.hops = append(q.hops, h) }

func (q *queue) pop() hop {
	h := q.hops[q.head]
	q.head++
	return h
}

func (q *queue) len() int { return len(q.hops) - q.head }

// stack pops hops last in, first out.
type stack struct {
	hops []hop
}

func (s *stack) push(h hop) { s.hops = append(s.hops, h) }

func (s *stack) pop() hop {
	h := s.hops[len(s.hops)-1]
	s.hops = s.hops[:len(s.hops)-1]
	return h
}

func (s *stack) len() int { return len(s.hops) }

// propagate runs a ttl bounded traversal from start, draining f.
// Hops deeper than ttl or to visited nodes are dropped without being visited.
// Every neighbor of a visited node costs one message, whether or not its hop is later dropped.
func propagate(net *domain.Network, start domain.NodeID, target domain.ResourceID, ttl int, f frontier) domain.Result {
	tr := newTrace(net)
	messages := 0

	f.push(hop{node: start})
	for f.len() > 0 {
		h := f.pop()
		if h.depth > ttl || tr.seen(h.node) {
			continue
		}

		tr.visit(h.node)
		if net.HasResource(h.node, target) {
			return tr.result(messages, domain.FoundAt(h.node))
		}

		for _, neighbor := range net.Neighbors(h.node) {
			messages++
			f.push(hop{node: neighbor, depth: h.depth + 1})
		}
	}

	return tr.result(messages, domain.NotFound())
}
