// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/peerseek/internal/adapters/config"
	_ "go.trai.ch/peerseek/internal/adapters/fs"
	_ "go.trai.ch/peerseek/internal/adapters/logger"
	_ "go.trai.ch/peerseek/internal/adapters/metrics"
	_ "go.trai.ch/peerseek/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/peerseek/internal/app"
)
