package domain

// QueryDefaults are query parameters taken from the configuration file.
// Command line flags override them.
type QueryDefaults struct {
	Start    string
	Target   string
	TTL      int
	HasTTL   bool
	Strategy string
	Seed     uint64
	Seeded   bool
}

// Settings holds the non-topology part of a network configuration.
type Settings struct {
	MinNeighbors int
	MaxNeighbors int
	CacheKey     KeyPolicy
	Defaults     QueryDefaults
}
