package config

import "time"

type ExplorerConfig struct {
	GraphQL    GraphQLConfig    `yaml:"graphql"`
	KG         KGConfig         `yaml:"kg"`
	Pagination PaginationConfig `yaml:"pagination"`
	Cache      CacheConfig      `yaml:"cache"`
	Benchmarks []BenchmarkRef   `yaml:"benchmarks"`
}

type GraphQLConfig struct {
	Endpoint            string        `yaml:"endpoint"`
	Timeout             time.Duration `yaml:"timeout"`
	MaxIdleConns        int           `yaml:"max_idle_conns"`
	MaxIdleConnsPerHost int           `yaml:"max_idle_conns_per_host"`
}

type KGConfig struct {
	DefaultID string `yaml:"default_id"`
}

type PaginationConfig struct {
	DefaultLimit     int   `yaml:"default_limit"`
	MaxLimit         int   `yaml:"max_limit"`
	PageSizes        []int `yaml:"page_sizes"`
	AutocompleteSize int   `yaml:"autocomplete_size"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Prefix  string        `yaml:"prefix"`
	TTL     time.Duration `yaml:"ttl"`
}

type BenchmarkRef struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}
