package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "explorer.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("EXPLORER_CONFIG_PATH", configPath)
}

func TestLoadExplorerConfig_Success(t *testing.T) {
	writeConfig(t, `graphql:
  endpoint: "http://kg.example/api/graphql"
  timeout: 5s

kg:
  default_id: "cskg"

pagination:
  page_sizes: [10, 20]

cache:
  enabled: true
  ttl: 10m

benchmarks:
  - id: "csqa"
    name: "CommonsenseQA"
`)

	cfg, err := LoadExplorerConfig()
	if err != nil {
		t.Fatalf("LoadExplorerConfig() failed: %v", err)
	}

	if cfg.GraphQL.Endpoint != "http://kg.example/api/graphql" {
		t.Errorf("unexpected endpoint %s", cfg.GraphQL.Endpoint)
	}
	if cfg.GraphQL.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.GraphQL.Timeout)
	}
	if cfg.Cache.TTL != 10*time.Minute || !cfg.Cache.Enabled {
		t.Errorf("unexpected cache config %+v", cfg.Cache)
	}
	if len(cfg.Benchmarks) != 1 || cfg.Benchmarks[0].Name != "CommonsenseQA" {
		t.Errorf("unexpected benchmarks %+v", cfg.Benchmarks)
	}
	if !cfg.AllowedPageSize(20) || cfg.AllowedPageSize(25) {
		t.Errorf("unexpected page sizes %v", cfg.Pagination.PageSizes)
	}
}

func TestLoadExplorerConfig_AppliesDefaults(t *testing.T) {
	writeConfig(t, `graphql:
  endpoint: "http://kg.example/api/graphql"
kg:
  default_id: "cskg"
`)

	cfg, err := LoadExplorerConfig()
	if err != nil {
		t.Fatalf("LoadExplorerConfig() failed: %v", err)
	}

	if cfg.GraphQL.Timeout != 30*time.Second {
		t.Errorf("expected default timeout, got %s", cfg.GraphQL.Timeout)
	}
	if cfg.Pagination.DefaultLimit != 10 || cfg.Pagination.MaxLimit != 100 {
		t.Errorf("unexpected pagination defaults %+v", cfg.Pagination)
	}
	if len(cfg.Pagination.PageSizes) != 4 {
		t.Errorf("expected 4 default page sizes, got %v", cfg.Pagination.PageSizes)
	}
	if cfg.Cache.Prefix != "page_cache:" || cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("unexpected cache defaults %+v", cfg.Cache)
	}
}

func TestLoadExplorerConfig_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		errorContains string
	}{
		{
			name:          "missing endpoint",
			content:       "kg:\n  default_id: cskg\n",
			errorContains: "graphql.endpoint",
		},
		{
			name:          "missing kg id",
			content:       "graphql:\n  endpoint: http://x\n",
			errorContains: "kg.default_id",
		},
		{
			name:          "page size above max",
			content:       "graphql:\n  endpoint: http://x\nkg:\n  default_id: cskg\npagination:\n  max_limit: 50\n  page_sizes: [10, 500]\n",
			errorContains: "page_sizes",
		},
		{
			name:          "duplicate benchmark",
			content:       "graphql:\n  endpoint: http://x\nkg:\n  default_id: cskg\nbenchmarks:\n  - id: a\n  - id: a\n",
			errorContains: "duplicate benchmark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.content)

			_, err := LoadExplorerConfig()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("expected error containing %q, got %v", tt.errorContains, err)
			}
		})
	}
}

func TestLoadExplorerConfig_MissingFile(t *testing.T) {
	t.Setenv("EXPLORER_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := LoadExplorerConfig(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
