package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/peerseek/internal/adapters/config"
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const chainYAML = `
resources:
  n3: [r3]
  n1: [r1, r2]
  n2: [r2]
  n5: [r7]
  n4: [r4]
edges:
  - [n1, n2]
  - [n2, n3]
  - [n3, n4]
  - [n4, n5]
min_neighbors: 1
max_neighbors: 2
query:
  start: n1
  target: r7
  ttl: 8
  strategy: random-walk
  seed: 42
cache:
  key: full
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func names(ids []domain.NodeID) []string {
	out := make([]string, len(ids))
	for i, n := range ids {
		out[i] = n.String()
	}
	return out
}

func TestLoad_Success(t *testing.T) {
	net, settings, err := config.Load(writeConfig(t, chainYAML))
	require.NoError(t, err)

	// Node order follows the resources mapping, not the edges or the ids.
	assert.Equal(t, []string{"n3", "n1", "n2", "n5", "n4"}, names(net.Nodes()))
	assert.Equal(t, []string{"n1", "n3"}, names(net.Neighbors(domain.NewInternedString("n2"))))
	assert.True(t, net.HasResource(domain.NewInternedString("n1"), domain.NewInternedString("r2")))
	require.NoError(t, net.Validate(settings.MinNeighbors, settings.MaxNeighbors))

	assert.Equal(t, 1, settings.MinNeighbors)
	assert.Equal(t, 2, settings.MaxNeighbors)
	assert.Equal(t, domain.KeyPolicyFull, settings.CacheKey)
	assert.Equal(t, domain.QueryDefaults{
		Start:    "n1",
		Target:   "r7",
		TTL:      8,
		HasTTL:   true,
		Strategy: "random-walk",
		Seed:     42,
		Seeded:   true,
	}, settings.Defaults)
}

func TestLoad_JSON(t *testing.T) {
	content := `{
  "resources": {"a": ["x"], "b": ["y"]},
  "edges": [["a", "b"]],
  "min_neighbors": 1,
  "max_neighbors": 1
}`
	net, settings, err := config.Load(writeConfig(t, content))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, names(net.Nodes()))
	assert.Equal(t, domain.KeyPolicyQuery, settings.CacheKey)
	assert.False(t, settings.Defaults.HasTTL)
	assert.False(t, settings.Defaults.Seeded)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "edge is not a pair",
			content: `
resources: {a: [x], b: [y]}
edges: [[a, b, a]]
min_neighbors: 1
max_neighbors: 1
`,
			wantErr: domain.ErrInvalidEdge,
		},
		{
			name: "edge references unknown node",
			content: `
resources: {a: [x]}
edges: [[a, ghost]]
min_neighbors: 1
max_neighbors: 1
`,
			wantErr: domain.ErrUnknownNode,
		},
		{
			name: "inverted bounds",
			content: `
resources: {a: [x]}
min_neighbors: 3
max_neighbors: 1
`,
			wantErr: domain.ErrInvalidBounds,
		},
		{
			name: "negative bounds",
			content: `
resources: {a: [x]}
min_neighbors: -1
max_neighbors: 1
`,
			wantErr: domain.ErrInvalidBounds,
		},
		{
			name: "missing bounds",
			content: `
resources: {a: [x]}
`,
			wantErr: domain.ErrInvalidBounds,
		},
		{
			name: "unknown cache key policy",
			content: `
resources: {a: [x]}
min_neighbors: 0
max_neighbors: 1
cache: {key: everything}
`,
			wantErr: domain.ErrUnknownKeyPolicy,
		},
		{
			name: "unknown default strategy",
			content: `
resources: {a: [x]}
min_neighbors: 0
max_neighbors: 1
query: {strategy: gossip}
`,
			wantErr: domain.ErrUnknownStrategy,
		},
		{
			name: "resources is a list",
			content: `
resources: [a, b]
min_neighbors: 0
max_neighbors: 1
`,
			wantErr: domain.ErrConfig,
		},
		{
			name: "resources of a node is a scalar",
			content: `
resources: {a: x}
min_neighbors: 0
max_neighbors: 1
`,
			wantErr: domain.ErrConfig,
		},
		{
			name:    "malformed yaml",
			content: "resources: [",
			wantErr: domain.ErrConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, _, err := config.Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrConfig)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, path, zErr.Metadata()["path"])
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, domain.ErrConfig)
}

func TestLoader_LogsLoadedNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("network loaded", "path", gomock.Any(), "nodes", 5, "cache_key", "full")

	loader := config.NewLoader(log)
	net, _, err := loader.Load(writeConfig(t, chainYAML))
	require.NoError(t, err)
	assert.Equal(t, 5, net.Len())
}

func TestLoader_DoesNotLogFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	loader := config.NewLoader(log)
	_, _, err := loader.Load(writeConfig(t, "resources: {a: [x]}\n"))
	require.ErrorIs(t, err, domain.ErrInvalidBounds)
}
