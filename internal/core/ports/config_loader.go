package ports

import "go.trai.ch/peerseek/internal/core/domain"

// ConfigLoader defines the interface for loading a network configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the network it describes
	// together with its settings. The network is not validated.
	Load(path string) (*domain.Network, domain.Settings, error)
}
