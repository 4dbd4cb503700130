package domain

import "go.trai.ch/zerr"

// Validate checks the structural invariants a network must satisfy before it is searched:
// it is connected, every node has between minNeighbors and maxNeighbors neighbors,
// every node hosts at least one resource and no edge is a self loop.
// It stops at the first violation.
func (n *Network) Validate(minNeighbors, maxNeighbors int) error {
	if reached := n.reachable(); reached < len(n.order) || len(n.order) == 0 {
		err := zerr.With(ValidationError(ErrDisconnectedNetwork), "reached", reached)
		return zerr.With(err, "nodes", len(n.order))
	}

	for _, id := range n.order {
		if degree := n.Degree(id); degree < minNeighbors || degree > maxNeighbors {
			err := zerr.With(ValidationError(ErrDegreeViolation), "node", id.String())
			err = zerr.With(err, "degree", degree)
			err = zerr.With(err, "min_neighbors", minNeighbors)
			return zerr.With(err, "max_neighbors", maxNeighbors)
		}
		if len(n.resources[id]) == 0 {
			return zerr.With(ValidationError(ErrEmptyResources), "node", id.String())
		}
	}

	if len(n.selfLoops) > 0 {
		return zerr.With(ValidationError(ErrSelfLoop), "node", n.selfLoops[0].String())
	}

	return nil
}

// reachable counts the nodes reachable from the first declared node with a breadth-first walk.
func (n *Network) reachable() int {
	if len(n.order) == 0 {
		return 0
	}

	seen := map[NodeID]struct{}{n.order[0]: {}}
	queue := []NodeID{n.order[0]}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.adjacency[u] {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			queue = append(queue, v)
		}
	}
	return len(seen)
}
