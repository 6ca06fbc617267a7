package pagination

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/graphql"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
	"github.com/rs/zerolog"
)

// ErrStale is returned when a newer request was started before this one resolved.
var ErrStale = errors.New("response superseded by a newer request")

type Page[R any] struct {
	Rows       []R `json:"rows"`
	TotalCount int `json:"totalCount"`
}

// Fetcher loads one window of rows.
type Fetcher[R any] interface {
	FetchPage(ctx context.Context, window searchquery.Window) graphql.Result[Page[R]]
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc[R any] func(ctx context.Context, window searchquery.Window) graphql.Result[Page[R]]

func (f FetcherFunc[R]) FetchPage(ctx context.Context, window searchquery.Window) graphql.Result[Page[R]] {
	return f(ctx, window)
}

// Navigator receives the URL parameters of every accepted window.
type Navigator interface {
	Navigate(values url.Values)
}

// State is a consistent snapshot of the controller.
type State[R any] struct {
	Window     searchquery.Window
	Rows       []R
	TotalCount int
	PageIndex  int
	PageCount  int
	Status     graphql.Status
	Err        error
}

// Controller owns the current window of a paginated table. Only the most recently
// requested page is ever applied.
type Controller[R any] struct {
	fetcher   Fetcher[R]
	navigator Navigator
	logger    *zerolog.Logger

	seq atomic.Uint64

	mu       sync.RWMutex
	window   searchquery.Window
	initial  Page[R]
	override *Page[R]
	status   graphql.Status
	err      error
}

func NewController[R any](window searchquery.Window, initial Page[R], fetcher Fetcher[R], navigator Navigator, logger *zerolog.Logger) *Controller[R] {
	return &Controller[R]{
		fetcher:   fetcher,
		navigator: navigator,
		logger:    logger,
		window:    window,
		initial:   Page[R]{Rows: truncate(initial.Rows, window.Limit), TotalCount: initial.TotalCount},
		status:    graphql.StatusSuccess,
	}
}

func (c *Controller[R]) ChangePage(ctx context.Context, pageIndex int) error {
	c.mu.RLock()
	window, err := WindowForPage(c.window, pageIndex)
	c.mu.RUnlock()
	if err != nil {
		return err
	}
	return c.load(ctx, window)
}

func (c *Controller[R]) ChangePageSize(ctx context.Context, limit int) error {
	c.mu.RLock()
	window, err := WindowForPageSize(c.window, limit)
	c.mu.RUnlock()
	if err != nil {
		return err
	}
	return c.load(ctx, window)
}

func (c *Controller[R]) load(ctx context.Context, window searchquery.Window) error {
	seq := c.seq.Add(1)

	c.mu.Lock()
	c.status = graphql.StatusLoading
	c.err = nil
	c.mu.Unlock()

	c.logger.Debug().
		Uint64("request", seq).
		Int("limit", window.Limit).
		Int("offset", window.Offset).
		Msg("fetching page")

	result := c.fetcher.FetchPage(ctx, window)

	c.mu.Lock()
	defer c.mu.Unlock()

	if latest := c.seq.Load(); seq != latest {
		c.logger.Debug().
			Uint64("request", seq).
			Uint64("latest", latest).
			Msg("discarding stale page")
		return ErrStale
	}

	if !result.OK() {
		c.status = graphql.StatusError
		c.err = result.Err
		if c.err == nil {
			c.err = fmt.Errorf("page fetch ended in status %s", result.Status)
		}
		c.logger.Warn().
			Err(c.err).
			Int("limit", window.Limit).
			Int("offset", window.Offset).
			Msg("page fetch failed, keeping previous rows")
		return c.err
	}

	page := Page[R]{Rows: truncate(result.Data.Rows, window.Limit), TotalCount: result.Data.TotalCount}
	changed := !c.window.Equal(window)

	c.override = &page
	c.window = window
	c.status = graphql.StatusSuccess
	c.err = nil

	if changed && c.navigator != nil {
		c.navigator.Navigate(window.Values())
	}

	return nil
}

func (c *Controller[R]) Snapshot() State[R] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	page := c.initial
	if c.override != nil {
		page = *c.override
	}

	rows := make([]R, len(page.Rows))
	copy(rows, page.Rows)

	return State[R]{
		Window:     c.window,
		Rows:       rows,
		TotalCount: page.TotalCount,
		PageIndex:  PageIndex(c.window),
		PageCount:  PageCount(page.TotalCount, c.window.Limit),
		Status:     c.status,
		Err:        c.err,
	}
}

func truncate[R any](rows []R, limit int) []R {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
