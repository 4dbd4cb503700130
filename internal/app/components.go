package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/peerseek/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Metrics      ports.Metrics
	Telemetry    ports.Telemetry
}

// NewComponents resolves the dependency graph and returns the wired Components.
// The graft nodes are registered by importing internal/wiring.
func NewComponents(ctx context.Context) (*Components, error) {
	components, _, err := graft.ExecuteFor[*Components](ctx)
	if err != nil {
		return nil, err
	}
	return components, nil
}
