package domain

// Outcome is the result of looking for a resource: either the node that hosts it or not found.
type Outcome struct {
	Found bool   `json:"found"`
	Node  NodeID `json:"node,omitzero"`
}

// NotFound returns the outcome of a search that exhausted its frontier or ttl.
func NotFound() Outcome {
	return Outcome{}
}

// FoundAt returns the outcome of a search that matched at node.
func FoundAt(node NodeID) Outcome {
	return Outcome{Found: true, Node: node}
}

// String returns a human-readable form of the outcome.
func (o Outcome) String() string {
	if !o.Found {
		return "not found"
	}
	return "found at " + o.Node.String()
}

// Frame is one replayable snapshot of a traversal, recorded each time a node is visited.
type Frame struct {
	// Step is the 1-based position of the frame in its trace.
	Step int `json:"step"`
	// Node is the node visited at this step.
	Node NodeID `json:"node"`
	// Visited is the cumulative visited set in network declaration order.
	Visited []NodeID `json:"visited"`
	// Marked holds one coloring hint per network node, in declaration order.
	Marked []bool `json:"marked"`
}

// Result is what a search reports.
type Result struct {
	VisitedCount int     `json:"visited_count"`
	Messages     int     `json:"messages"`
	Outcome      Outcome `json:"outcome"`
	Trace        []Frame `json:"trace,omitempty"`
}
