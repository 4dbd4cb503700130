// Package domain contains the core domain models for the overlay network and its searches.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Network is an undirected overlay of peers and the resources they host.
// Nodes are stored in an id-keyed arena; adjacency keeps neighbors in the order
// their edges were added, which is the order searches enumerate them in.
// A Network is never mutated after NewNetwork returns.
type Network struct {
	order     []NodeID
	index     map[NodeID]int
	resources map[NodeID][]ResourceID
	hosted    map[NodeID]map[ResourceID]struct{}
	adjacency map[NodeID][]NodeID
	edges     []Edge
	selfLoops []NodeID
}

// NewNetwork builds a network from declared nodes and edges.
// It returns an error if a node is declared twice or an edge references an unknown node.
func NewNetwork(nodes []NodeSpec, edges []Edge) (*Network, error) {
	n := &Network{
		order:     make([]NodeID, 0, len(nodes)),
		index:     make(map[NodeID]int, len(nodes)),
		resources: make(map[NodeID][]ResourceID, len(nodes)),
		hosted:    make(map[NodeID]map[ResourceID]struct{}, len(nodes)),
		adjacency: make(map[NodeID][]NodeID, len(nodes)),
	}

	for _, spec := range nodes {
		if _, exists := n.index[spec.ID]; exists {
			return nil, zerr.With(ConfigError(ErrDuplicateNode), "node", spec.ID.String())
		}
		n.index[spec.ID] = len(n.order)
		n.order = append(n.order, spec.ID)

		set := make(map[ResourceID]struct{}, len(spec.Resources))
		list := make([]ResourceID, 0, len(spec.Resources))
		for _, r := range spec.Resources {
			if _, dup := set[r]; dup {
				continue
			}
			set[r] = struct{}{}
			list = append(list, r)
		}
		n.hosted[spec.ID] = set
		n.resources[spec.ID] = list
	}

	for _, e := range edges {
		for _, end := range []NodeID{e.A, e.B} {
			if _, ok := n.index[end]; !ok {
				err := zerr.With(ConfigError(ErrUnknownNode), "node", end.String())
				return nil, zerr.With(err, "edge", e.String())
			}
		}
		n.addEdge(e)
	}

	return n, nil
}

func (n *Network) addEdge(e Edge) {
	if n.linked(e.A, e.B) {
		return
	}
	n.edges = append(n.edges, e)
	if e.IsSelfLoop() {
		n.selfLoops = append(n.selfLoops, e.A)
		n.adjacency[e.A] = append(n.adjacency[e.A], e.A)
		return
	}
	n.adjacency[e.A] = append(n.adjacency[e.A], e.B)
	n.adjacency[e.B] = append(n.adjacency[e.B], e.A)
}

func (n *Network) linked(a, b NodeID) bool {
	for _, nb := range n.adjacency[a] {
		if nb == b {
			return true
		}
	}
	return false
}

// Contains reports whether id is a node of the network.
func (n *Network) Contains(id NodeID) bool {
	_, ok := n.index[id]
	return ok
}

// Len returns the number of nodes.
func (n *Network) Len() int {
	return len(n.order)
}

// Nodes returns the node ids in declaration order.
func (n *Network) Nodes() []NodeID {
	out := make([]NodeID, len(n.order))
	copy(out, n.order)
	return out
}

// Index returns the declaration position of a node, or -1 if it is unknown.
func (n *Network) Index(id NodeID) int {
	i, ok := n.index[id]
	if !ok {
		return -1
	}
	return i
}

// Neighbors returns the nodes adjacent to id in edge insertion order.
// The result is empty for isolated or unknown nodes and must not be modified.
func (n *Network) Neighbors(id NodeID) []NodeID {
	return n.adjacency[id]
}

// Degree returns the number of distinct neighbors of id.
func (n *Network) Degree(id NodeID) int {
	return len(n.adjacency[id])
}

// ResourcesOf returns the resources hosted by id, in declaration order without duplicates.
func (n *Network) ResourcesOf(id NodeID) []ResourceID {
	return n.resources[id]
}

// HasResource reports whether node id hosts resource r.
func (n *Network) HasResource(id NodeID, r ResourceID) bool {
	_, ok := n.hosted[id][r]
	return ok
}

// Edges returns an iterator over the distinct edges in insertion order.
func (n *Network) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range n.edges {
			if !yield(e) {
				return
			}
		}
	}
}
