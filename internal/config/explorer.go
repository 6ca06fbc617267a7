package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"go.yaml.in/yaml/v3"
)

func LoadExplorerConfig() (*ExplorerConfig, error) {
	path := os.Getenv("EXPLORER_CONFIG_PATH")
	if path == "" {
		path = "configs/explorer.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg ExplorerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *ExplorerConfig) {
	if cfg.GraphQL.Timeout == 0 {
		cfg.GraphQL.Timeout = 30 * time.Second
	}
	if cfg.GraphQL.MaxIdleConns == 0 {
		cfg.GraphQL.MaxIdleConns = 100
	}
	if cfg.GraphQL.MaxIdleConnsPerHost == 0 {
		cfg.GraphQL.MaxIdleConnsPerHost = 10
	}
	if cfg.Pagination.DefaultLimit == 0 {
		cfg.Pagination.DefaultLimit = 10
	}
	if cfg.Pagination.MaxLimit == 0 {
		cfg.Pagination.MaxLimit = 100
	}
	if len(cfg.Pagination.PageSizes) == 0 {
		cfg.Pagination.PageSizes = []int{10, 25, 50, 100}
	}
	if cfg.Pagination.AutocompleteSize == 0 {
		cfg.Pagination.AutocompleteSize = 5
	}
	if cfg.Cache.Prefix == "" {
		cfg.Cache.Prefix = "page_cache:"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 30 * time.Minute
	}
}

func (c *ExplorerConfig) Validate() error {
	if c.GraphQL.Endpoint == "" {
		return fmt.Errorf("graphql.endpoint is required")
	}
	if c.KG.DefaultID == "" {
		return fmt.Errorf("kg.default_id is required")
	}
	if c.Pagination.DefaultLimit <= 0 || c.Pagination.DefaultLimit > c.Pagination.MaxLimit {
		return fmt.Errorf("pagination.default_limit must be in (0, %d], got %d", c.Pagination.MaxLimit, c.Pagination.DefaultLimit)
	}
	for _, size := range c.Pagination.PageSizes {
		if size <= 0 || size > c.Pagination.MaxLimit {
			return fmt.Errorf("pagination.page_sizes entry %d out of range (0, %d]", size, c.Pagination.MaxLimit)
		}
	}

	seen := make(map[string]struct{}, len(c.Benchmarks))
	for _, benchmark := range c.Benchmarks {
		if benchmark.ID == "" {
			return fmt.Errorf("benchmark id is required")
		}
		if _, ok := seen[benchmark.ID]; ok {
			return fmt.Errorf("duplicate benchmark id %q", benchmark.ID)
		}
		seen[benchmark.ID] = struct{}{}
	}

	return nil
}

// AllowedPageSize reports whether limit is one of the configured page sizes.
func (c *ExplorerConfig) AllowedPageSize(limit int) bool {
	return slices.Contains(c.Pagination.PageSizes, limit)
}
