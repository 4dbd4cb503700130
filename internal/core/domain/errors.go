package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrConfig is the parent of every error caused by malformed network input data.
	ErrConfig = zerr.New("invalid network configuration")

	// ErrUnknownNode is returned when an edge references a node that was never declared.
	ErrUnknownNode = zerr.New("edge references unknown node")

	// ErrDuplicateNode is returned when the same node id is declared twice.
	ErrDuplicateNode = zerr.New("node declared more than once")

	// ErrInvalidEdge is returned when an edge entry is not a pair of node ids.
	ErrInvalidEdge = zerr.New("edge must be a pair of node ids")

	// ErrInvalidBounds is returned when the neighbor bounds are negative or inverted.
	ErrInvalidBounds = zerr.New("invalid neighbor bounds")

	// ErrUnknownKeyPolicy is returned when the configured cache key policy is not recognized.
	ErrUnknownKeyPolicy = zerr.New("unknown cache key policy")
)

var (
	// ErrValidation is the parent of every structural invariant violation.
	ErrValidation = zerr.New("network validation failed")

	// ErrDisconnectedNetwork is returned when some node cannot be reached from the others.
	ErrDisconnectedNetwork = zerr.New("network is not connected")

	// ErrDegreeViolation is returned when a node's neighbor count is outside the configured bounds.
	ErrDegreeViolation = zerr.New("node violates neighbor bounds")

	// ErrEmptyResources is returned when a node hosts no resources.
	ErrEmptyResources = zerr.New("node has no resources")

	// ErrSelfLoop is returned when an edge connects a node to itself.
	ErrSelfLoop = zerr.New("network has a self loop")
)

var (
	// ErrInvalidStart is returned when a search starts from a node that is not in the network.
	ErrInvalidStart = zerr.New("start node not in network")

	// ErrInvalidTTL is returned when a search is requested with a negative ttl.
	ErrInvalidTTL = zerr.New("ttl must not be negative")

	// ErrUnknownStrategy is returned when the requested strategy kind is not recognized.
	ErrUnknownStrategy = zerr.New("unknown search strategy")

	// ErrCacheNetworkMismatch is returned when a result cache is used with a network it was not built for.
	ErrCacheNetworkMismatch = zerr.New("result cache belongs to a different network")
)

// ConfigError ties a specific configuration error to ErrConfig so both match with errors.Is.
func ConfigError(err error) error {
	return fmt.Errorf("%w: %w", ErrConfig, err)
}

// ValidationError ties a specific invariant violation to ErrValidation.
func ValidationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
