package cache

import (
	"context"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/graphql"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/pagination"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
	"github.com/rs/zerolog"
)

// Fetcher serves pages from the cache and falls through to next on a miss.
// Only successful pages are stored; cache failures never fail the fetch.
type Fetcher[R any] struct {
	next   pagination.Fetcher[R]
	cache  *PageCache
	scope  string
	logger *zerolog.Logger
}

func NewFetcher[R any](next pagination.Fetcher[R], cache *PageCache, scope string, logger *zerolog.Logger) *Fetcher[R] {
	return &Fetcher[R]{
		next:   next,
		cache:  cache,
		scope:  scope,
		logger: logger,
	}
}

func (f *Fetcher[R]) FetchPage(ctx context.Context, window searchquery.Window) graphql.Result[pagination.Page[R]] {
	key := f.cache.Key(f.scope, window)

	var cached pagination.Page[R]
	hit, err := f.cache.Get(ctx, key, &cached)
	if err != nil {
		f.logger.Warn().Err(err).Str("key", key).Msg("page cache read failed, bypassing")
	}
	if hit {
		f.logger.Debug().Str("key", key).Msg("page cache hit")
		return graphql.Success(cached)
	}

	result := f.next.FetchPage(ctx, window)
	if !result.OK() {
		return result
	}

	if err := f.cache.Set(ctx, key, result.Data); err != nil {
		f.logger.Warn().Err(err).Str("key", key).Msg("page cache write failed")
	}

	return result
}
