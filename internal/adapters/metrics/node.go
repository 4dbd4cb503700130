package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/peerseek/internal/core/ports"
)

// NodeID is the graft node id of the metrics recorder.
const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[ports.Metrics]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Metrics, error) {
			return New(), nil
		},
	})
}
