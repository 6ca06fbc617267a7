package pagination

import (
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
)

var (
	ErrInvalidPage     = errors.New("invalid page index")
	ErrInvalidPageSize = errors.New("invalid page size")
)

// PageIndex is the zero-based page the window starts on.
func PageIndex(window searchquery.Window) int {
	if window.Limit <= 0 {
		return 0
	}
	return window.Offset / window.Limit
}

// PageCount is the number of pages needed to show total rows, limit rows at a time.
func PageCount(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// WindowForPage keeps limit and query and moves the offset to the start of pageIndex.
func WindowForPage(window searchquery.Window, pageIndex int) (searchquery.Window, error) {
	if pageIndex < 0 {
		return window, fmt.Errorf("page %d: %w", pageIndex, ErrInvalidPage)
	}
	return searchquery.Window{
		Limit:  window.Limit,
		Offset: pageIndex * window.Limit,
		Query:  window.Query,
	}, nil
}

// WindowForPageSize changes the limit and resets the offset to the first page.
func WindowForPageSize(window searchquery.Window, limit int) (searchquery.Window, error) {
	if limit <= 0 {
		return window, fmt.Errorf("page size %d: %w", limit, ErrInvalidPageSize)
	}
	return searchquery.Window{
		Limit:  limit,
		Offset: 0,
		Query:  window.Query,
	}, nil
}
