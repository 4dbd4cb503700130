package config

import "gopkg.in/yaml.v3"

// Networkfile represents the structure of a network configuration file.
// Resources is kept as a raw node so that the mapping order becomes the node order.
type Networkfile struct {
	Resources    yaml.Node  `yaml:"resources"`
	Edges        [][]string `yaml:"edges"`
	MinNeighbors *int       `yaml:"min_neighbors"`
	MaxNeighbors *int       `yaml:"max_neighbors"`
	Query        QueryDTO   `yaml:"query"`
	Cache        CacheDTO   `yaml:"cache"`
}

// QueryDTO holds the optional query defaults of a network file.
type QueryDTO struct {
	Start    string  `yaml:"start"`
	Target   string  `yaml:"target"`
	TTL      *int    `yaml:"ttl"`
	Strategy string  `yaml:"strategy"`
	Seed     *uint64 `yaml:"seed"`
}

// CacheDTO holds the result cache settings of a network file.
type CacheDTO struct {
	Key string `yaml:"key"`
}
