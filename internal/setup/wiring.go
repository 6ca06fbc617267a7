package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/cache"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/config"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/explorer"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/graphql"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Config struct {
	GraphQLEndpoint string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RedisMaxRetries int
	CacheTTL        time.Duration
	APIPort         string
	LogLevel        string
}

type Dependencies struct {
	Explorer  *config.ExplorerConfig
	Service   *explorer.Service
	PageCache *cache.PageCache
	Redis     *goredis.Client
	Logger    *zerolog.Logger
}

// Close releases the Redis connection, if any.
func (d *Dependencies) Close() error {
	if d.Redis == nil {
		return nil
	}
	return d.Redis.Close()
}

func LoadConfig() *Config {
	return &Config{
		GraphQLEndpoint: getEnv("GRAPHQL_ENDPOINT", ""),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisMaxRetries: getEnvInt("REDIS_MAX_RETRIES", 3),
		CacheTTL:        getEnvDuration("PAGE_CACHE_TTL", 0),
		APIPort:         getEnv("KG_EXPLORER_API_PORT", "18082"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	// Load explorer configuration from YAML
	explorerConfig, err := config.LoadExplorerConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load explorer config: %w", err)
	}

	if cfg.GraphQLEndpoint != "" {
		explorerConfig.GraphQL.Endpoint = cfg.GraphQLEndpoint
	}
	if cfg.CacheTTL > 0 {
		explorerConfig.Cache.TTL = cfg.CacheTTL
	}

	// GraphQL
	client := graphql.NewClient(graphql.ClientConfig{
		Endpoint:            explorerConfig.GraphQL.Endpoint,
		Timeout:             explorerConfig.GraphQL.Timeout,
		MaxIdleConns:        explorerConfig.GraphQL.MaxIdleConns,
		MaxIdleConnsPerHost: explorerConfig.GraphQL.MaxIdleConnsPerHost,
	})
	queries := graphql.NewQueries(client)

	// Page cache
	var (
		redisClient *goredis.Client
		pageCache   *cache.PageCache
	)
	if explorerConfig.Cache.Enabled {
		redisClient, err = redis.Connect(ctx, redis.Options{
			Addr:       cfg.RedisAddr,
			Password:   cfg.RedisPassword,
			DB:         cfg.RedisDB,
			MaxRetries: cfg.RedisMaxRetries,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		pageCache = cache.NewPageCache(redisClient, explorerConfig.Cache.Prefix, explorerConfig.Cache.TTL)
	}

	service := explorer.NewService(queries, pageCache, explorerConfig.Pagination, logger)

	logger.Info().
		Str("endpoint", explorerConfig.GraphQL.Endpoint).
		Str("default_kg", explorerConfig.KG.DefaultID).
		Bool("cache", pageCache != nil).
		Msg("Explorer wired")

	return &Dependencies{
		Explorer:  explorerConfig,
		Service:   service,
		PageCache: pageCache,
		Redis:     redisClient,
		Logger:    logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
