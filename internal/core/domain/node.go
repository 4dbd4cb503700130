package domain

// NodeID identifies a peer in the overlay network.
type NodeID = InternedString

// ResourceID identifies a resource hosted by one or more peers.
type ResourceID = InternedString

// NodeSpec declares a node and the resources it hosts.
// It uses InternedString for ids since the same ids repeat across edges, queries and frames.
type NodeSpec struct {
	ID        NodeID
	Resources []ResourceID
}

// Edge is an undirected link between two nodes.
type Edge struct {
	A NodeID
	B NodeID
}

// IsSelfLoop reports whether the edge connects a node to itself.
func (e Edge) IsSelfLoop() bool {
	return e.A == e.B
}

// String returns the edge as "a-b".
func (e Edge) String() string {
	return e.A.String() + "-" + e.B.String()
}
