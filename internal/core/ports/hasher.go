package ports

import "go.trai.ch/peerseek/internal/core/domain"

// Hasher defines the interface for computing network digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// NetworkDigest returns a stable digest of the nodes, resources and edges of net.
	NetworkDigest(net *domain.Network) string
}
