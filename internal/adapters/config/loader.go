// Package config provides the network configuration loader.
package config

import (
	"os"

	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for YAML and JSON network files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a Loader that reports what it loaded through logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the network file at path.
func (l *Loader) Load(path string) (*domain.Network, domain.Settings, error) {
	net, settings, err := Load(path)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	l.logger.Info("network loaded", "path", path, "nodes", net.Len(), "cache_key", string(settings.CacheKey))
	return net, settings, nil
}

// Load reads a configuration file from the given path and returns the network and its settings.
func Load(path string) (*domain.Network, domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	net, settings, err := Parse(data)
	if err != nil {
		return nil, domain.Settings{}, zerr.With(err, "path", path)
	}
	return net, settings, nil
}

// Parse decodes a network file. JSON input is accepted since it is valid YAML.
func Parse(data []byte) (*domain.Network, domain.Settings, error) {
	var file Networkfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, domain.Settings{}, zerr.Wrap(domain.ConfigError(err), "failed to parse config file")
	}

	nodes, err := parseResources(&file.Resources)
	if err != nil {
		return nil, domain.Settings{}, err
	}

	edges, err := parseEdges(file.Edges)
	if err != nil {
		return nil, domain.Settings{}, err
	}

	settings, err := parseSettings(&file)
	if err != nil {
		return nil, domain.Settings{}, err
	}

	net, err := domain.NewNetwork(nodes, edges)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	return net, settings, nil
}

func parseResources(node *yaml.Node) ([]domain.NodeSpec, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		err := zerr.Wrap(domain.ConfigError(zerr.New("resources must be a mapping")), "failed to parse config file")
		return nil, zerr.With(err, "line", node.Line)
	}

	nodes := make([]domain.NodeSpec, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var resources []string
		if err := value.Decode(&resources); err != nil {
			err = zerr.Wrap(domain.ConfigError(err), "failed to parse resources")
			return nil, zerr.With(err, "node", key.Value)
		}
		nodes = append(nodes, domain.NodeSpec{
			ID:        domain.NewInternedString(key.Value),
			Resources: domain.NewInternedStrings(resources),
		})
	}
	return nodes, nil
}

func parseEdges(pairs [][]string) ([]domain.Edge, error) {
	edges := make([]domain.Edge, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			err := zerr.With(domain.ConfigError(domain.ErrInvalidEdge), "index", i)
			return nil, zerr.With(err, "length", len(pair))
		}
		edges = append(edges, domain.Edge{
			A: domain.NewInternedString(pair[0]),
			B: domain.NewInternedString(pair[1]),
		})
	}
	return edges, nil
}

func parseSettings(file *Networkfile) (domain.Settings, error) {
	if file.MinNeighbors == nil || file.MaxNeighbors == nil {
		return domain.Settings{}, zerr.Wrap(domain.ConfigError(domain.ErrInvalidBounds), "min_neighbors and max_neighbors are required")
	}
	minN, maxN := *file.MinNeighbors, *file.MaxNeighbors
	if minN < 0 || minN > maxN {
		err := zerr.With(domain.ConfigError(domain.ErrInvalidBounds), "min_neighbors", minN)
		return domain.Settings{}, zerr.With(err, "max_neighbors", maxN)
	}

	policy, err := domain.ParseKeyPolicy(file.Cache.Key)
	if err != nil {
		return domain.Settings{}, err
	}

	q := file.Query
	if q.Strategy != "" {
		if _, err := domain.ParseStrategyKind(q.Strategy); err != nil {
			return domain.Settings{}, domain.ConfigError(err)
		}
	}

	defaults := domain.QueryDefaults{
		Start:    q.Start,
		Target:   q.Target,
		Strategy: q.Strategy,
	}
	if q.TTL != nil {
		defaults.TTL, defaults.HasTTL = *q.TTL, true
	}
	if q.Seed != nil {
		defaults.Seed, defaults.Seeded = *q.Seed, true
	}

	return domain.Settings{
		MinNeighbors: minN,
		MaxNeighbors: maxN,
		CacheKey:     policy,
		Defaults:     defaults,
	}, nil
}
